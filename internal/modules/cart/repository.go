package cart

import "context"

// Store persists cart contents keyed per tenant and cart id. A cart that has
// never been saved reads back as empty, not as an error.
type Store interface {
	Get(ctx context.Context, tenantID, cartID string) ([]LineItem, error)
	Save(ctx context.Context, tenantID, cartID string, items []LineItem) error
	Clear(ctx context.Context, tenantID, cartID string) error
}
