package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no order matches the given id.
var ErrNotFound = errors.New("order not found")

// Repository defines the interface for order storage.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// List returns all orders, newest first, optionally scoped to a tenant.
	List(ctx context.Context, tenantID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
