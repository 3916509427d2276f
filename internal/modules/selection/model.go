package selection

import (
	"fmt"

	"github.com/cathedralnet/storefront/internal/modules/fulfillment"
)

// Filter narrows the admin catalog view.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterSelected  Filter = "selected"
	FilterAvailable Filter = "available"
)

// ParseFilter validates a filter query parameter; empty defaults to all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterSelected, FilterAvailable:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("unknown filter %q (want all, selected or available)", s)
	}
}

// CatalogProduct is a provider product annotated with its selection state.
type CatalogProduct struct {
	fulfillment.StoreProduct
	Selected bool `json:"selected"`
}

// CatalogView is the filtered admin catalog plus selection summary.
type CatalogView struct {
	Products      []CatalogProduct `json:"products"`
	SelectedCount int              `json:"selected_count"`
}

// ToggleRequest identifies the product whose selection state flips.
type ToggleRequest struct {
	ProductID int `json:"product_id"`
}

// SelectAllRequest scopes select-all to the currently visible list.
type SelectAllRequest struct {
	Query  string `json:"query,omitempty"`
	Filter string `json:"filter,omitempty"`
}

// SyncResult reports the outcome of pushing the selection to the remote
// save endpoint. Local persistence has already succeeded by the time a
// SyncResult exists; Synced=false means only the remote echo failed.
type SyncResult struct {
	Count  int    `json:"count"`
	Synced bool   `json:"synced"`
	Error  string `json:"error,omitempty"`
}
