package models

import "time"

// Order statuses. PENDING is the initial state; CANCELLED and FINALIZED are
// terminal.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusFinalized = "FINALIZED"
)

type Order struct {
	ID         int         `json:"id"`
	UserID     int         `json:"user_id"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"total_price"`
	Items      []OrderItem `json:"items,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"order_id"`
	Quantity  int     `json:"quantity"`
	Flavor    string  `json:"flavor"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"unit_price"`
}
