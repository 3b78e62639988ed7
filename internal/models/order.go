package models

import (
	"time"
)

// Order status constants. Orders move forward through the baking pipeline;
// cancellation is allowed until the order is out the door.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusBaking    = "baking"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderStatusTransitions lists the allowed next statuses per current status.
var OrderStatusTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusBaking, OrderStatusCancelled},
	OrderStatusBaking:    {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// CanTransitionOrderStatus reports whether an order may move from one status
// to another.
func CanTransitionOrderStatus(from, to string) bool {
	for _, allowed := range OrderStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Order represents a customer order in the database.
type Order struct {
	ID             int        `json:"id"`
	Reference      string     `json:"reference"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	Phone          string     `json:"phone"`
	Status         string     `json:"status"`
	Subtotal       float64    `json:"subtotal"`
	DiscountCode   *string    `json:"discount_code,omitempty"`
	DiscountAmount float64    `json:"discount_amount"`
	TotalAmount    float64    `json:"total_amount"`
	Notes          *string    `json:"notes,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// OrderItem represents one line of an order.
type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed baking ready delivered cancelled"`
}

// OrderStatusChange is one entry in an order's status history.
type OrderStatusChange struct {
	ID         int       `json:"id"`
	OrderID    int       `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  int       `json:"changed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}
