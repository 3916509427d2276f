package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/cathedralnet/storefront/internal/modules/cart"
)

// Status is the lifecycle state of an order. Transitions are one-directional:
// pending orders are fulfilled or cancelled, fulfilled orders may be refunded.
type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

// Address is the customer's shipping destination.
type Address struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// Order is an archived checkout. Totals are stored alongside the items they
// were computed from and the record is immutable except for its status and
// external references.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	TenantID        string          `json:"tenant_id"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name,omitempty"`
	ShippingAddress Address         `json:"shipping_address"`
	Items           []cart.LineItem `json:"items"`
	Totals          cart.Totals     `json:"totals"`
	Status          Status          `json:"status"`

	FulfillmentOrderID string `json:"fulfillment_order_id,omitempty"`
	PaymentID          string `json:"payment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckoutRequest is the payload for submitting a checkout.
type CheckoutRequest struct {
	CartID          string  `json:"cart_id"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerName    string  `json:"customer_name,omitempty"`
	ShippingAddress Address `json:"shipping_address"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
