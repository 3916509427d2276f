package cart

import "github.com/cathedralnet/storefront/internal/money"

// LineItem is one product configuration plus quantity in a cart. Product
// fields are copied in at add time so later catalog changes never mutate an
// existing cart.
type LineItem struct {
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	UnitPrice money.Cents `json:"unit_price_cents"`
	Size      string      `json:"size,omitempty"`
	Color     string      `json:"color,omitempty"`
	Phrase    string      `json:"phrase,omitempty"`
	Quantity  int         `json:"quantity"`
}

// sameConfiguration reports whether two line items describe the same product
// configuration and can be merged by summing quantities.
func (li LineItem) sameConfiguration(other LineItem) bool {
	return li.ProductID == other.ProductID &&
		li.Size == other.Size &&
		li.Color == other.Color &&
		li.Phrase == other.Phrase
}

// Cart is the API view of a cart: its items plus totals computed fresh from
// them. Totals are never stored.
type Cart struct {
	Items  []LineItem `json:"items"`
	Totals Totals     `json:"totals"`
}

// AddItemRequest is the payload for adding a product to a cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Phrase    string `json:"phrase,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest is the payload for changing a line item's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
