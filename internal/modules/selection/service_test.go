package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cathedralnet/storefront/internal/modules/fulfillment"
)

type fakeCatalog struct {
	configured bool
	products   []fulfillment.StoreProduct
	err        error
}

func (f *fakeCatalog) Configured() bool { return f.configured }
func (f *fakeCatalog) GetStoreProducts(ctx context.Context) ([]fulfillment.StoreProduct, error) {
	return f.products, f.err
}

type fakeRemote struct {
	calls     int
	failUntil int
	got       []int
}

func (f *fakeRemote) Save(ctx context.Context, ids []int) error {
	f.calls++
	if f.calls <= f.failUntil {
		return errors.New("remote unavailable")
	}
	f.got = ids
	return nil
}

func testProducts() []fulfillment.StoreProduct {
	return []fulfillment.StoreProduct{
		{ID: 1, Name: "Unisex Tee", Type: "T-SHIRT", Brand: "Bella"},
		{ID: 2, Name: "Pullover Hoodie", Type: "HOODIE", Brand: "Gildan"},
		{ID: 3, Name: "Retired Tee", Type: "T-SHIRT", Brand: "Anvil", IsDiscontinued: true},
		{ID: 4, Name: "Sticker Pack", Type: "STICKER", Brand: "Generic"},
	}
}

func newTestService(remote RemoteSaver) Service {
	svc := NewService(NewMemoryStore(), &fakeCatalog{configured: true, products: testProducts()}, remote)
	svc.(*service).attempts = 2
	return svc
}

func TestToggleIsIdempotentInPairs(t *testing.T) {
	s := newTestService(nil)
	ctx := context.Background()

	before, err := s.Selected(ctx)
	require.NoError(t, err)

	ids, err := s.Toggle(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids)

	ids, err = s.Toggle(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, before, ids)
}

func TestListFilters(t *testing.T) {
	s := newTestService(nil)
	ctx := context.Background()

	_, err := s.Toggle(ctx, 1)
	require.NoError(t, err)

	// Text query matches name, type or brand, case-insensitively.
	view, err := s.List(ctx, "tee", FilterAll)
	require.NoError(t, err)
	assert.Len(t, view.Products, 2)

	view, err = s.List(ctx, "gildan", FilterAll)
	require.NoError(t, err)
	require.Len(t, view.Products, 1)
	assert.Equal(t, 2, view.Products[0].ID)

	// Status filters.
	view, err = s.List(ctx, "", FilterSelected)
	require.NoError(t, err)
	require.Len(t, view.Products, 1)
	assert.Equal(t, 1, view.Products[0].ID)
	assert.True(t, view.Products[0].Selected)

	view, err = s.List(ctx, "", FilterAvailable)
	require.NoError(t, err)
	assert.Len(t, view.Products, 3)
}

func TestSelectAllRespectsFilter(t *testing.T) {
	s := newTestService(nil)
	ctx := context.Background()

	// Only the two tees are visible under the query; the rest stay untouched.
	ids, err := s.SelectAllVisible(ctx, "t-shirt", FilterAll)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	// Selecting all available products adds to, never replaces, the set.
	ids, err = s.SelectAllVisible(ctx, "", FilterAvailable)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
}

func TestDeselectAll(t *testing.T) {
	s := newTestService(nil)
	ctx := context.Background()

	_, err := s.SelectAllVisible(ctx, "", FilterAll)
	require.NoError(t, err)
	require.NoError(t, s.DeselectAll(ctx))

	ids, err := s.Selected(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestNotConfigured(t *testing.T) {
	s := NewService(NewMemoryStore(), &fakeCatalog{configured: false}, nil)

	_, err := s.List(context.Background(), "", FilterAll)
	assert.ErrorIs(t, err, fulfillment.ErrNotConfigured)

	_, err = s.SelectAllVisible(context.Background(), "", FilterAll)
	assert.ErrorIs(t, err, fulfillment.ErrNotConfigured)
}

func TestSyncRetriesUntilAcknowledged(t *testing.T) {
	remote := &fakeRemote{failUntil: 2}
	s := newTestService(remote)
	ctx := context.Background()

	_, err := s.Toggle(ctx, 4)
	require.NoError(t, err)

	result, err := s.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, result.Synced)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 3, remote.calls)
	assert.Equal(t, []int{4}, remote.got)
}

func TestSyncReportsExhaustedRetries(t *testing.T) {
	remote := &fakeRemote{failUntil: 100}
	s := newTestService(remote)
	ctx := context.Background()

	_, err := s.Toggle(ctx, 4)
	require.NoError(t, err)

	result, err := s.Sync(ctx)
	require.NoError(t, err)
	assert.False(t, result.Synced)
	assert.NotEmpty(t, result.Error)

	// The local write-ahead copy is still authoritative.
	ids, err := s.Selected(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, ids)
}

func TestSyncWithoutRemote(t *testing.T) {
	s := newTestService(nil)
	result, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Synced)
	assert.Zero(t, result.Count)
}
