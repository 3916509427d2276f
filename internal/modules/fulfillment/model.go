package fulfillment

import "github.com/cathedralnet/storefront/internal/money"

// StoreProduct is one entry in the provider's sync-product catalog.
type StoreProduct struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	Image              string  `json:"image"`
	VariantCount       int     `json:"variant_count"`
	Currency           string  `json:"currency"`
	IsDiscontinued     bool    `json:"is_discontinued"`
	AvgFulfillmentTime float64 `json:"avg_fulfillment_time"`
}

// Variant is one size/color configuration of a provider product. The
// provider quotes prices as decimal strings; PriceCents carries the parsed
// value after ingress.
type Variant struct {
	ID                 int    `json:"id"`
	ProductID          int    `json:"product_id"`
	Name               string `json:"name"`
	Size               string `json:"size"`
	Color              string `json:"color"`
	ColorCode          string `json:"color_code"`
	AvailabilityStatus string `json:"availability_status"`
	Price              string `json:"price"`
	Currency           string `json:"currency"`
	Image              string `json:"image,omitempty"`

	PriceCents money.Cents `json:"price_cents"`
}

// Recipient is the shipping destination for a draft order.
type Recipient struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state_code"`
	Zip      string `json:"zip"`
	Country  string `json:"country_code"`
	Email    string `json:"email"`
}

// OrderItem is one line of a draft order sent to the provider.
type OrderItem struct {
	VariantID int         `json:"variant_id"`
	Quantity  int         `json:"quantity"`
	Files     []OrderFile `json:"files,omitempty"`
}

// OrderFile points the provider at the print design for an item.
type OrderFile struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// DraftOrder is the provider's reference for an unconfirmed order, plus what
// the provider will charge us for it (pass-through payment model: the
// customer pays the storefront, the storefront pays the provider).
type DraftOrder struct {
	ExternalID string      `json:"external_id"`
	CostCents  money.Cents `json:"cost_cents"`
}
