package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cathedralnet/storefront/internal/modules/fulfillment"
)

// SelectionSource reports which fulfillment product ids the admin has chosen
// to expose in the storefront.
type SelectionSource interface {
	Selected(ctx context.Context) ([]int, error)
}

// Service defines catalog business logic.
type Service interface {
	// ListProducts returns the storefront catalog: the static fallback list
	// plus any admin-selected provider products when the provider is
	// configured. Provider failures degrade to the fallback list.
	ListProducts(ctx context.Context) ([]*Product, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, id string) (*Product, error)
}

type service struct {
	provider  *fulfillment.Client
	selection SelectionSource
}

// NewService creates a catalog service. provider and selection may be nil,
// in which case only the fallback catalog is served.
func NewService(provider *fulfillment.Client, selection SelectionSource) Service {
	return &service{provider: provider, selection: selection}
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	products := make([]*Product, 0, len(fallbackProducts))
	seen := make(map[int]bool)
	for _, p := range fallbackProducts {
		products = append(products, p)
		seen[p.FulfillmentProductID] = true
	}

	for _, p := range s.selectedProviderProducts(ctx) {
		if !seen[p.FulfillmentProductID] {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("product %q not found", id)
}

// selectedProviderProducts expands the admin selection into storefront
// products. Any provider error degrades to an empty slice so the storefront
// keeps serving the fallback catalog.
func (s *service) selectedProviderProducts(ctx context.Context) []*Product {
	if s.provider == nil || !s.provider.Configured() || s.selection == nil {
		return nil
	}
	ids, err := s.selection.Selected(ctx)
	if err != nil || len(ids) == 0 {
		return nil
	}
	sort.Ints(ids)

	var out []*Product
	for _, id := range ids {
		variants, err := s.provider.GetProductVariants(ctx, id)
		if err != nil || len(variants) == 0 {
			continue
		}
		out = append(out, productFromVariants(id, variants))
	}
	return out
}

// productFromVariants folds a variant list into one storefront product:
// lowest variant price, sizes and colors in first-seen order.
func productFromVariants(productID int, variants []fulfillment.Variant) *Product {
	p := &Product{
		ID:                   fmt.Sprintf("pf-%d", productID),
		Name:                 baseName(variants[0].Name),
		Price:                variants[0].PriceCents,
		Category:             "apparel",
		FulfillmentProductID: productID,
	}
	sizeSeen := make(map[string]bool)
	colorSeen := make(map[string]bool)
	for _, v := range variants {
		if v.PriceCents < p.Price {
			p.Price = v.PriceCents
		}
		if v.Size != "" && !sizeSeen[v.Size] {
			sizeSeen[v.Size] = true
			p.Sizes = append(p.Sizes, v.Size)
		}
		if v.Color != "" && !colorSeen[v.Color] {
			colorSeen[v.Color] = true
			p.Colors = append(p.Colors, v.Color)
		}
	}
	return p
}

// baseName strips the variant suffix from a provider variant name, e.g.
// "Unisex Tee - Black / M" -> "Unisex Tee".
func baseName(name string) string {
	if i := strings.Index(name, " - "); i > 0 {
		return name[:i]
	}
	return name
}
