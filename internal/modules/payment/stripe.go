package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"

	"github.com/cathedralnet/storefront/internal/money"
)

type stripeGateway struct {
	secretKey string
}

// NewStripeGateway creates a Stripe-backed gateway. An empty secret key
// yields a gateway whose calls return ErrNotConfigured.
func NewStripeGateway(secretKey string) Gateway {
	return &stripeGateway{secretKey: secretKey}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount money.Cents, currency, orderID string) (string, error) {
	if g.secretKey == "" {
		return "", ErrNotConfigured
	}
	if amount <= 0 {
		return "", fmt.Errorf("amount must be greater than 0")
	}

	stripe.Key = g.secretKey
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount)),
		Currency: stripe.String(currency),
		Metadata: map[string]string{
			"order_id": orderID,
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ID, nil
}
