package cart

import "github.com/cathedralnet/storefront/internal/money"

const (
	// ShippingFlatCents is the flat shipping fee applied to any non-empty cart.
	ShippingFlatCents = money.Cents(599)
	// TaxRateBasisPoints is the flat tax estimate: 8%.
	TaxRateBasisPoints = 800
)

// Totals is the priced breakdown of a cart or order. All amounts are integer
// cents; decimal rendering happens only in Formatted.
type Totals struct {
	Subtotal money.Cents `json:"subtotal_cents"`
	Shipping money.Cents `json:"shipping_cents"`
	Tax      money.Cents `json:"tax_cents"`
	Total    money.Cents `json:"total_cents"`
}

// FormattedTotals is the presentation form of Totals.
type FormattedTotals struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func (t Totals) Formatted() FormattedTotals {
	return FormattedTotals{
		Subtotal: t.Subtotal.Format(),
		Shipping: t.Shipping.Format(),
		Tax:      t.Tax.Format(),
		Total:    t.Total.Format(),
	}
}

// ComputeTotals prices a list of line items. Pure function: subtotal is the
// sum of price x quantity, shipping is flat and waived for an empty cart,
// tax is rounded half-up at the cent, and total is the exact sum of the
// three.
func ComputeTotals(items []LineItem) Totals {
	var subtotal money.Cents
	for _, li := range items {
		subtotal += li.UnitPrice * money.Cents(li.Quantity)
	}

	var shipping money.Cents
	if subtotal > 0 {
		shipping = ShippingFlatCents
	}

	tax := money.Cents((int64(subtotal)*TaxRateBasisPoints + 5000) / 10000)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
