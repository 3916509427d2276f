package cart

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cathedralnet/storefront/internal/money"
)

func TestComputeTotalsEmptyCart(t *testing.T) {
	got := ComputeTotals(nil)
	assert.Equal(t, Totals{}, got)

	got = ComputeTotals([]LineItem{})
	assert.Equal(t, Totals{}, got)
}

func TestComputeTotalsKnownScenario(t *testing.T) {
	// 29.99 x 1 + 49.99 x 2 = 129.97; flat shipping 5.99; 8% tax.
	items := []LineItem{
		{UnitPrice: 2999, Quantity: 1},
		{UnitPrice: 4999, Quantity: 2},
	}
	got := ComputeTotals(items)

	assert.Equal(t, money.Cents(12997), got.Subtotal)
	assert.Equal(t, money.Cents(599), got.Shipping)
	assert.Equal(t, money.Cents(1040), got.Tax)
	assert.Equal(t, money.Cents(14636), got.Total)

	display := got.Formatted()
	assert.Equal(t, "129.97", display.Subtotal)
	assert.Equal(t, "5.99", display.Shipping)
	assert.Equal(t, "10.40", display.Tax)
	assert.Equal(t, "146.36", display.Total)
}

func TestComputeTotalsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(8)
		items := make([]LineItem, n)
		var wantSubtotal money.Cents
		for i := range items {
			items[i] = LineItem{
				UnitPrice: money.Cents(rng.Intn(20000)),
				Quantity:  1 + rng.Intn(5),
			}
			wantSubtotal += items[i].UnitPrice * money.Cents(items[i].Quantity)
		}

		got := ComputeTotals(items)
		assert.Equal(t, wantSubtotal, got.Subtotal)
		assert.Equal(t, got.Subtotal+got.Shipping+got.Tax, got.Total)
		if got.Subtotal > 0 {
			assert.Equal(t, ShippingFlatCents, got.Shipping)
		} else {
			assert.Zero(t, got.Shipping)
		}
	}
}
