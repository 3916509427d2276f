package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cathedralnet/storefront/internal/money"
	"github.com/cathedralnet/storefront/internal/modules/cart"
	"github.com/cathedralnet/storefront/internal/modules/catalog"
	"github.com/cathedralnet/storefront/internal/modules/tenant"
)

const testTenant = "git-is-life"

type fakeGateway struct {
	intentID string
	err      error
	calls    int
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount money.Cents, currency, orderID string) (string, error) {
	g.calls++
	return g.intentID, g.err
}

func newCheckoutFixture(t *testing.T) (Service, cart.Service) {
	t.Helper()
	tenants := tenant.NewService("gitislife.com")
	catalogSvc := catalog.NewService(nil, nil)
	carts := cart.NewService(cart.NewMemoryStore(), catalogSvc, tenants)
	svc := NewService(NewMemoryRepository(), carts, catalogSvc, nil, &fakeGateway{intentID: "pi_test_123"})
	return svc, carts
}

func fillCart(t *testing.T, carts cart.Service, cartID string) {
	t.Helper()
	_, err := carts.AddItem(context.Background(), testTenant, cartID, cart.AddItemRequest{
		ProductID: "git-is-life-tee",
		Size:      "M",
		Color:     "Black",
		Quantity:  2,
	})
	require.NoError(t, err)
}

func TestCheckout(t *testing.T) {
	svc, carts := newCheckoutFixture(t)
	ctx := context.Background()
	fillCart(t, carts, "cart-1")

	o, err := svc.Checkout(ctx, testTenant, CheckoutRequest{
		CartID:        "cart-1",
		CustomerEmail: "dev@example.com",
		ShippingAddress: Address{
			Name: "Dev", Address1: "1 Main St", City: "Portland",
			State: "OR", Zip: "97201", Country: "US",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, money.Cents(5998), o.Totals.Subtotal)
	assert.Equal(t, o.Totals.Subtotal+o.Totals.Shipping+o.Totals.Tax, o.Totals.Total)
	assert.Equal(t, "pi_test_123", o.PaymentID)
	assert.Empty(t, o.FulfillmentOrderID, "no provider configured")
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{4}$`, o.OrderNumber)

	// Checkout consumes the cart.
	c, err := carts.GetCart(ctx, testTenant, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	got, err := svc.GetOrder(ctx, o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, o.OrderNumber, got.OrderNumber)
}

func TestCheckoutValidation(t *testing.T) {
	svc, carts := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, testTenant, CheckoutRequest{CartID: "c", CustomerEmail: ""})
	assert.Error(t, err)

	_, err = svc.Checkout(ctx, testTenant, CheckoutRequest{CartID: "", CustomerEmail: "a@b.c"})
	assert.Error(t, err)

	// Empty cart.
	_, err = svc.Checkout(ctx, testTenant, CheckoutRequest{CartID: "empty", CustomerEmail: "a@b.c"})
	assert.Error(t, err)

	fillCart(t, carts, "ok")
	_, err = svc.Checkout(ctx, testTenant, CheckoutRequest{CartID: "ok", CustomerEmail: "a@b.c"})
	assert.NoError(t, err)
}

func TestCheckoutPaymentFailureIsNonFatal(t *testing.T) {
	tenants := tenant.NewService("gitislife.com")
	catalogSvc := catalog.NewService(nil, nil)
	carts := cart.NewService(cart.NewMemoryStore(), catalogSvc, tenants)
	gw := &fakeGateway{err: assert.AnError}
	svc := NewService(NewMemoryRepository(), carts, catalogSvc, nil, gw)

	fillCart(t, carts, "c")
	o, err := svc.Checkout(context.Background(), testTenant, CheckoutRequest{
		CartID: "c", CustomerEmail: "a@b.c",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gw.calls)
	assert.Empty(t, o.PaymentID)
	assert.Equal(t, StatusPending, o.Status)
}

func TestStatusTransitions(t *testing.T) {
	svc, carts := newCheckoutFixture(t)
	ctx := context.Background()
	fillCart(t, carts, "c")

	o, err := svc.Checkout(ctx, testTenant, CheckoutRequest{CartID: "c", CustomerEmail: "a@b.c"})
	require.NoError(t, err)
	id := o.ID.String()

	// pending -> refunded is not allowed.
	_, err = svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "refunded"})
	assert.Error(t, err)

	o, err = svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "fulfilled"})
	require.NoError(t, err)
	assert.Equal(t, StatusFulfilled, o.Status)

	// fulfilled -> cancelled is not allowed.
	_, err = svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "cancelled"})
	assert.Error(t, err)

	o, err = svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "refunded"})
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, o.Status)

	// refunded is terminal.
	_, err = svc.UpdateStatus(ctx, id, UpdateStatusRequest{Status: "pending"})
	assert.Error(t, err)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, _ := newCheckoutFixture(t)
	_, err := svc.UpdateStatus(context.Background(), "no-such-id", UpdateStatusRequest{Status: "fulfilled"})
	assert.ErrorIs(t, err, ErrNotFound)
}
