package catalog

import "github.com/cathedralnet/storefront/internal/money"

// Product is a purchasable item in the storefront. Products are immutable
// once loaded: they come from the static fallback list or from the
// fulfillment provider's catalog, never from user input.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       money.Cents `json:"price_cents"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Sizes       []string    `json:"sizes"`
	Colors      []string    `json:"colors"`
	Details     []string    `json:"details,omitempty"`

	FulfillmentProductID int    `json:"fulfillment_product_id,omitempty"`
	DesignURL            string `json:"design_url,omitempty"`
	ComingSoon           bool   `json:"coming_soon"`
}

// DisplayPrice is the presentation-boundary rendering of Price.
func (p *Product) DisplayPrice() string { return p.Price.Format() }
