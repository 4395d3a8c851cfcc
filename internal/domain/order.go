package domain

import "time"

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "New"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusDelivered OrderStatus = "Delivered"
)

type OrderSource string

const (
	SourceWebForm  OrderSource = "WebForm"
	SourceWhatsApp OrderSource = "WhatsApp"
)

// Order rows are append-only. ItemsSummary is a human-readable rendering
// ("2x burger, 1x fries") and never changes after creation.
type Order struct {
	ID           string      `bson:"_id" json:"id"`
	KitchenID    string      `bson:"kitchen_id" json:"owner"`
	ItemsSummary string      `bson:"items_summary" json:"items"`
	Total        int         `bson:"total" json:"total"`
	Status       OrderStatus `bson:"status" json:"status"`
	Time         string      `bson:"time" json:"time"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	Customer     Customer    `bson:"customer" json:"customer"`
}

type Customer struct {
	Name   string      `bson:"name" json:"name"`
	Phone  string      `bson:"phone" json:"phone"`
	Source OrderSource `bson:"source" json:"source"`
}
