package domain

import "time"

// KitchenMenu is the persisted menu document for a single kitchen. The whole
// document is replaced on menu updates, never patched item by item.
type KitchenMenu struct {
	KitchenID string     `bson:"_id" json:"kitchen_id"`
	Items     []MenuItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// MenuItem price is in the smallest currency unit.
type MenuItem struct {
	ID          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Price       int    `bson:"price" json:"price"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Img         string `bson:"img,omitempty" json:"img,omitempty"`
}
