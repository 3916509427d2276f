package selection

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/cathedralnet/storefront/internal/modules/fulfillment"
)

// CatalogSource lists the provider catalog the selection is made against.
type CatalogSource interface {
	Configured() bool
	GetStoreProducts(ctx context.Context) ([]fulfillment.StoreProduct, error)
}

// Service maintains the admin's selected-product set.
type Service interface {
	// List returns the provider catalog filtered by query and filter, each
	// product annotated with its selection state.
	List(ctx context.Context, query string, filter Filter) (*CatalogView, error)

	// Toggle flips one product id in or out of the set. Toggling twice
	// restores the original set.
	Toggle(ctx context.Context, productID int) ([]int, error)

	// SelectAllVisible adds every product visible under the query/filter to
	// the set; ids outside the filtered view are untouched.
	SelectAllVisible(ctx context.Context, query string, filter Filter) ([]int, error)

	DeselectAll(ctx context.Context) error

	// Selected returns the current id set, sorted.
	Selected(ctx context.Context) ([]int, error)

	// Sync pushes the locally persisted set to the remote save endpoint,
	// retrying with backoff. The local copy stays authoritative if the
	// remote never acknowledges.
	Sync(ctx context.Context) (*SyncResult, error)
}

type service struct {
	store    Store
	catalog  CatalogSource
	remote   RemoteSaver
	attempts uint64
}

// NewService creates a selection service. remote may be nil, in which case
// Sync only confirms the local write.
func NewService(store Store, catalogSrc CatalogSource, remote RemoteSaver) Service {
	return &service{store: store, catalog: catalogSrc, remote: remote, attempts: 4}
}

func (s *service) List(ctx context.Context, query string, filter Filter) (*CatalogView, error) {
	if s.catalog == nil || !s.catalog.Configured() {
		return nil, fulfillment.ErrNotConfigured
	}
	products, err := s.catalog.GetStoreProducts(ctx)
	if err != nil {
		return nil, err
	}
	selected, err := s.selectedSet(ctx)
	if err != nil {
		return nil, err
	}

	view := &CatalogView{Products: []CatalogProduct{}, SelectedCount: len(selected)}
	for _, p := range products {
		if !visible(p, selected, query, filter) {
			continue
		}
		view.Products = append(view.Products, CatalogProduct{
			StoreProduct: p,
			Selected:     selected[p.ID],
		})
	}
	return view, nil
}

func (s *service) Toggle(ctx context.Context, productID int) ([]int, error) {
	selected, err := s.selectedSet(ctx)
	if err != nil {
		return nil, err
	}
	if selected[productID] {
		delete(selected, productID)
	} else {
		selected[productID] = true
	}
	return s.persist(ctx, selected)
}

func (s *service) SelectAllVisible(ctx context.Context, query string, filter Filter) ([]int, error) {
	if s.catalog == nil || !s.catalog.Configured() {
		return nil, fulfillment.ErrNotConfigured
	}
	products, err := s.catalog.GetStoreProducts(ctx)
	if err != nil {
		return nil, err
	}
	selected, err := s.selectedSet(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if visible(p, selected, query, filter) {
			selected[p.ID] = true
		}
	}
	return s.persist(ctx, selected)
}

func (s *service) DeselectAll(ctx context.Context) error {
	return s.store.Save(ctx, []int{})
}

func (s *service) Selected(ctx context.Context) ([]int, error) {
	ids, err := s.store.Selected(ctx)
	if err != nil {
		return nil, err
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	ids, err := s.Selected(ctx)
	if err != nil {
		return nil, err
	}
	result := &SyncResult{Count: len(ids), Synced: true}
	if s.remote == nil {
		return result, nil
	}

	backoff := retry.WithMaxRetries(s.attempts, retry.NewExponential(250*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.remote.Save(ctx, ids); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		result.Synced = false
		result.Error = err.Error()
	}
	return result, nil
}

func (s *service) selectedSet(ctx context.Context) (map[int]bool, error) {
	ids, err := s.store.Selected(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *service) persist(ctx context.Context, selected map[int]bool) ([]int, error) {
	ids := make([]int, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if err := s.store.Save(ctx, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// visible applies the admin catalog filters: a text query matches name,
// type or brand case-insensitively; the status filter keeps everything,
// only selected products, or only non-discontinued products.
func visible(p fulfillment.StoreProduct, selected map[int]bool, query string, filter Filter) bool {
	if query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Type), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	switch filter {
	case FilterSelected:
		return selected[p.ID]
	case FilterAvailable:
		return !p.IsDiscontinued
	default:
		return true
	}
}
