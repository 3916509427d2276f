package cart

import (
	"context"
	"fmt"

	"github.com/cathedralnet/storefront/internal/modules/catalog"
	"github.com/cathedralnet/storefront/internal/modules/tenant"
)

// Service defines cart business logic. Every returned Cart carries totals
// computed fresh from its items.
type Service interface {
	GetCart(ctx context.Context, tenantID, cartID string) (*Cart, error)
	AddItem(ctx context.Context, tenantID, cartID string, req AddItemRequest) (*Cart, error)
	UpdateQuantity(ctx context.Context, tenantID, cartID string, index, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, tenantID, cartID string, index int) (*Cart, error)
	ClearCart(ctx context.Context, tenantID, cartID string) error
}

type service struct {
	store   Store
	catalog catalog.Service
	tenants tenant.Service
}

func NewService(store Store, catalogSvc catalog.Service, tenants tenant.Service) Service {
	return &service{store: store, catalog: catalogSvc, tenants: tenants}
}

func (s *service) GetCart(ctx context.Context, tenantID, cartID string) (*Cart, error) {
	items, err := s.store.Get(ctx, tenantID, cartID)
	if err != nil {
		return nil, err
	}
	return view(items), nil
}

func (s *service) AddItem(ctx context.Context, tenantID, cartID string, req AddItemRequest) (*Cart, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	p, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if p.ComingSoon {
		return nil, fmt.Errorf("product %q is not yet available", p.Name)
	}
	if err := validateOption("size", req.Size, p.Sizes); err != nil {
		return nil, err
	}
	if err := validateOption("color", req.Color, p.Colors); err != nil {
		return nil, err
	}
	if err := s.tenants.ValidatePhrase(tenantID, req.Phrase); err != nil {
		return nil, err
	}

	items, err := s.store.Get(ctx, tenantID, cartID)
	if err != nil {
		return nil, err
	}

	item := LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Size:      req.Size,
		Color:     req.Color,
		Phrase:    req.Phrase,
		Quantity:  req.Quantity,
	}

	merged := false
	for i := range items {
		if items[i].sameConfiguration(item) {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.store.Save(ctx, tenantID, cartID, items); err != nil {
		return nil, err
	}
	return view(items), nil
}

func (s *service) UpdateQuantity(ctx context.Context, tenantID, cartID string, index, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	items, err := s.store.Get(ctx, tenantID, cartID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("no line item at position %d", index)
	}
	items[index].Quantity = quantity

	if err := s.store.Save(ctx, tenantID, cartID, items); err != nil {
		return nil, err
	}
	return view(items), nil
}

func (s *service) RemoveItem(ctx context.Context, tenantID, cartID string, index int) (*Cart, error) {
	items, err := s.store.Get(ctx, tenantID, cartID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("no line item at position %d", index)
	}
	items = append(items[:index], items[index+1:]...)

	if err := s.store.Save(ctx, tenantID, cartID, items); err != nil {
		return nil, err
	}
	return view(items), nil
}

func (s *service) ClearCart(ctx context.Context, tenantID, cartID string) error {
	return s.store.Clear(ctx, tenantID, cartID)
}

func view(items []LineItem) *Cart {
	if items == nil {
		items = []LineItem{}
	}
	return &Cart{Items: items, Totals: ComputeTotals(items)}
}

func validateOption(kind, value string, allowed []string) error {
	if value == "" || len(allowed) == 0 {
		return nil
	}
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return fmt.Errorf("%s %q is not offered for this product", kind, value)
}
