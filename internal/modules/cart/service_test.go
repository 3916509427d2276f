package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cathedralnet/storefront/internal/modules/catalog"
	"github.com/cathedralnet/storefront/internal/modules/tenant"
)

const testTenant = "git-is-life"

func newTestService() Service {
	return NewService(NewMemoryStore(), catalog.NewService(nil, nil), tenant.NewService("gitislife.com"))
}

func TestAddItemAndTotals(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	c, err := s.AddItem(ctx, testTenant, "cart-1", AddItemRequest{
		ProductID: "git-is-life-tee",
		Size:      "M",
		Color:     "Black",
		Phrase:    "Git is Forever",
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, c.Totals.Subtotal+c.Totals.Shipping+c.Totals.Tax, c.Totals.Total)
}

func TestAddItemMergesSameConfiguration(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	req := AddItemRequest{ProductID: "git-is-life-tee", Size: "M", Color: "Black", Quantity: 1}

	_, err := s.AddItem(ctx, testTenant, "cart-1", req)
	require.NoError(t, err)
	c, err := s.AddItem(ctx, testTenant, "cart-1", req)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)

	// A different size is a separate line.
	req.Size = "L"
	c, err = s.AddItem(ctx, testTenant, "cart-1", req)
	require.NoError(t, err)
	assert.Len(t, c.Items, 2)
}

func TestAddItemValidation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, testTenant, "c", AddItemRequest{ProductID: "git-is-life-tee", Quantity: 0})
	assert.Error(t, err)

	_, err = s.AddItem(ctx, testTenant, "c", AddItemRequest{ProductID: "missing", Quantity: 1})
	assert.Error(t, err)

	_, err = s.AddItem(ctx, testTenant, "c", AddItemRequest{ProductID: "git-is-life-tee", Size: "XXS", Quantity: 1})
	assert.Error(t, err)

	_, err = s.AddItem(ctx, testTenant, "c", AddItemRequest{ProductID: "git-is-life-tee", Phrase: "Not a phrase", Quantity: 1})
	assert.Error(t, err)
}

func TestUpdateAndRemove(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, testTenant, "c", AddItemRequest{ProductID: "git-is-life-tee", Quantity: 1})
	require.NoError(t, err)

	c, err := s.UpdateQuantity(ctx, testTenant, "c", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Items[0].Quantity)

	_, err = s.UpdateQuantity(ctx, testTenant, "c", 0, 0)
	assert.Error(t, err, "quantity below 1 must be rejected")

	_, err = s.UpdateQuantity(ctx, testTenant, "c", 3, 1)
	assert.Error(t, err, "out-of-range index must be rejected")

	c, err = s.RemoveItem(ctx, testTenant, "c", 0)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, Totals{}, c.Totals)
}

func TestCartsAreTenantScoped(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "git-is-life", "shared-id", AddItemRequest{ProductID: "git-is-life-tee", Quantity: 1})
	require.NoError(t, err)

	other, err := s.GetCart(ctx, "git-is-truth", "shared-id")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestClearCart(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, testTenant, "c", AddItemRequest{ProductID: "gitislife-sticker-pack", Quantity: 3})
	require.NoError(t, err)
	require.NoError(t, s.ClearCart(ctx, testTenant, "c"))

	c, err := s.GetCart(ctx, testTenant, "c")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
