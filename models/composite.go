package models

import "github.com/google/uuid"

// CheckoutItem is one requested product/quantity pair.
type CheckoutItem struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest is the body of POST /composite/users/:user_id/checkout.
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// CheckoutResult is the composed response of a successful checkout. It is
// returned to the caller and never stored.
type CheckoutResult struct {
	User         User          `json:"user"`
	Order        Order         `json:"order"`
	OrderDetails []OrderDetail `json:"order_details"`
	Payment      Payment       `json:"payment"`
}

// OrderSummary is the aggregated view of a user's profile and order history.
// Preference is rendered as an explicit null when the user has none.
type OrderSummary struct {
	User       User            `json:"user"`
	Preference *Preference     `json:"preference"`
	Addresses  []Address       `json:"addresses"`
	Orders     []EnrichedOrder `json:"orders"`
}

// EnrichedOrder is an order augmented with its payments and detail lines.
type EnrichedOrder struct {
	Order    Order                 `json:"order"`
	Payments []Payment             `json:"payments"`
	Details  []EnrichedOrderDetail `json:"details"`
}

// EnrichedOrderDetail is an order-detail row with best-effort product and
// inventory snapshots attached. Absent upstream resources are simply omitted.
type EnrichedOrderDetail struct {
	OrderDetail
	Product   *Product   `json:"product,omitempty"`
	Inventory *Inventory `json:"inventory,omitempty"`
}

// Operation statuses. PENDING transitions exactly once to COMPLETED or FAILED.
const (
	OperationPending   = "PENDING"
	OperationCompleted = "COMPLETED"
	OperationFailed    = "FAILED"
)

// Operation tracks one asynchronously running aggregation job.
type Operation struct {
	OperationID string        `json:"operation_id"`
	Status      string        `json:"status"`
	Result      *OrderSummary `json:"result,omitempty"`
	Error       string        `json:"error,omitempty"`
}
