package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   string             `bson:"order_id" json:"order_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	KitchenID string             `bson:"kitchen_id" json:"kitchen_id"`
	Total     int                `bson:"total" json:"total"`
	Source    OrderSource        `bson:"source" json:"source"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
