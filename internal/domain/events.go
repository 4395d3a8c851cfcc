package domain

import "time"

type MenuImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
	KitchenID     string `json:"kitchen_id"`
}

type OrderEvent struct {
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	KitchenID string      `json:"kitchen_id"`
	Total     int         `json:"total"`
	Source    OrderSource `json:"source"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventOrderCreated = "order.created"
)
