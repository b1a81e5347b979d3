package models

import "github.com/google/uuid"

// Order statuses used by the checkout saga.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCancelled = "CANCELLED"
)

// DefaultPaymentMethod is applied when checkout creates the payment record.
const DefaultPaymentMethod = "CREDIT_CARD"

// Order is the snapshot returned by the Order Service. Dates stay as strings
// (the upstream emits second-precision ISO-8601).
type Order struct {
	OrderID    uuid.UUID `json:"order_id"`
	UserID     uuid.UUID `json:"user_id"`
	OrderDate  string    `json:"order_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
}

// OrderCreate is the payload for POST /orders.
type OrderCreate struct {
	UserID     uuid.UUID `json:"user_id"`
	OrderDate  string    `json:"order_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
}

// OrderDetail is one line of an order.
type OrderDetail struct {
	OrderDetailID *uuid.UUID `json:"order_detail_id,omitempty"`
	OrderID       uuid.UUID  `json:"order_id"`
	ProdID        uuid.UUID  `json:"prod_id"`
	Quantity      int        `json:"quantity"`
	Subtotal      float64    `json:"subtotal"`
}

// OrderDetailCreate is the payload for POST /order-details.
type OrderDetailCreate struct {
	OrderID  uuid.UUID `json:"order_id"`
	ProdID   uuid.UUID `json:"prod_id"`
	Quantity int       `json:"quantity"`
	Subtotal float64   `json:"subtotal"`
}

// Payment is the snapshot returned by the Order Service.
type Payment struct {
	PaymentID     *uuid.UUID `json:"payment_id,omitempty"`
	OrderID       uuid.UUID  `json:"order_id"`
	PaymentMethod string     `json:"payment_method"`
	PaymentDate   string     `json:"payment_date"`
	Amount        float64    `json:"amount"`
}

// PaymentCreate is the payload for POST /payments.
type PaymentCreate struct {
	OrderID       uuid.UUID `json:"order_id"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   string    `json:"payment_date"`
	Amount        float64   `json:"amount"`
}
