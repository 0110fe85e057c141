package models

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCOD  = "cod"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// OrderStatusPending is the only status issued in this scope; orders
// have no further lifecycle transitions after creation.
const OrderStatusPending = "pending"

// OrderItem is a snapshotted line item. It copies name and price at
// checkout time so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

// Order is a checkout record.
type Order struct {
	ID            int         `json:"id"`
	UserID        *int        `json:"userId,omitempty"`
	SessionID     string      `json:"sessionId"`
	CustomerName  string      `json:"customerName"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Pincode       string      `json:"pincode"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	Items         []OrderItem `json:"items"`
}

// OrderInput carries a checkout submission. Total and Items are taken
// as declared by the caller; they are not recomputed from the live
// cart.
type OrderInput struct {
	UserID        *int        `json:"userId,omitempty"`
	SessionID     string      `json:"-"`
	CustomerName  string      `json:"customerName" validate:"required"`
	Email         string      `json:"email" validate:"required,email"`
	Phone         string      `json:"phone" validate:"required,min=10"`
	Address       string      `json:"address" validate:"required"`
	City          string      `json:"city" validate:"required"`
	State         string      `json:"state" validate:"required"`
	Pincode       string      `json:"pincode" validate:"required,min=6"`
	Total         float64     `json:"total" validate:"required,gt=0"`
	PaymentMethod string      `json:"paymentMethod" validate:"omitempty,oneof=cod card upi"`
	Items         []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// OrderStats aggregates the order book for the admin dashboard.
type OrderStats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int     `json:"pendingOrders"`
}
