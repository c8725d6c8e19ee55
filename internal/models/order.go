package models

import "time"

// Order statuses. The only valid transitions are
// pending -> confirmed -> shipped -> delivered and pending -> cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a snapshot of one cart line at checkout time. Price and
// quantity are frozen here; later catalog edits must not change them.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Image       string `json:"image"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"` // unit price at the time of order
}

// Order represents a checkout submission.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Items         []OrderItem `json:"items" gorm:"serializer:json"`
	Total         int         `json:"total"`
	Status        string      `json:"status"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Address       string      `json:"address"` // single formatted string
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// validTransitions maps a status to the statuses an order may move to.
var validTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
