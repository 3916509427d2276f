package payment

import (
	"context"
	"errors"

	"github.com/cathedralnet/storefront/internal/money"
)

// ErrNotConfigured is returned when no processor credentials are present.
var ErrNotConfigured = errors.New("payment processor not configured")

// Gateway is the processor-agnostic interface for collecting a payment.
// The storefront charges the customer here and pays the fulfillment provider
// separately (pass-through model), so a gateway only ever needs to create a
// charge for the order total.
type Gateway interface {
	// CreateIntent registers a pending charge for the order total and
	// returns the processor's reference for it.
	CreateIntent(ctx context.Context, amount money.Cents, currency, orderID string) (string, error)
}
