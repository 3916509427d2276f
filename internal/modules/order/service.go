package order

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cathedralnet/storefront/internal/modules/cart"
	"github.com/cathedralnet/storefront/internal/modules/catalog"
	"github.com/cathedralnet/storefront/internal/modules/fulfillment"
	"github.com/cathedralnet/storefront/internal/modules/payment"
)

// Service defines checkout and order lifecycle logic.
type Service interface {
	// Checkout prices the cart fresh, hands the order to the fulfillment
	// provider and payment processor when they are configured, persists it,
	// and clears the cart. Missing integrations leave the corresponding
	// reference empty; they never fail the checkout.
	Checkout(ctx context.Context, tenantID string, req CheckoutRequest) (*Order, error)

	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, tenantID string) ([]*Order, error)

	// UpdateStatus advances an order along the one-directional lifecycle.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)
}

type service struct {
	repo     Repository
	carts    cart.Service
	catalog  catalog.Service
	provider *fulfillment.Client
	gateway  payment.Gateway
}

// NewService creates an order service. provider and gateway are optional;
// nil (or unconfigured) integrations degrade to local-only checkout.
func NewService(repo Repository, carts cart.Service, catalogSvc catalog.Service,
	provider *fulfillment.Client, gateway payment.Gateway) Service {
	return &service{repo: repo, carts: carts, catalog: catalogSvc, provider: provider, gateway: gateway}
}

// validTransitions is the allowed status state machine.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusFulfilled, StatusCancelled},
	StatusFulfilled: {StatusRefunded},
	StatusCancelled: {},
	StatusRefunded:  {},
}

func (s *service) Checkout(ctx context.Context, tenantID string, req CheckoutRequest) (*Order, error) {
	if req.CustomerEmail == "" {
		return nil, fmt.Errorf("customer_email is required")
	}
	if req.CartID == "" {
		return nil, fmt.Errorf("cart_id is required")
	}

	c, err := s.carts.GetCart(ctx, tenantID, req.CartID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(c.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	for _, li := range c.Items {
		if li.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1 for %s", li.Name)
		}
	}

	now := time.Now().UTC()
	o := &Order{
		ID:              uuid.New(),
		OrderNumber:     generateOrderNumber(),
		TenantID:        tenantID,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		Items:           c.Items,
		Totals:          cart.ComputeTotals(c.Items),
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Best-effort hand-offs. The order stays pending either way; webhooks
	// from the provider and processor advance it later.
	o.FulfillmentOrderID = s.submitDraftOrder(ctx, o)
	o.PaymentID = s.createPaymentIntent(ctx, o)

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.carts.ClearCart(ctx, tenantID, req.CartID); err != nil {
		log.Printf("order %s: clearing cart %s failed: %v", o.OrderNumber, req.CartID, err)
	}
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context, tenantID string) ([]*Order, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := Status(strings.ToLower(req.Status))
	allowed := false
	for _, next := range validTransitions[o.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	o.Status = newStatus
	return o, nil
}

// submitDraftOrder creates an unconfirmed order with the fulfillment
// provider and returns its reference, or "" when the provider is missing,
// unconfigured, or failing.
func (s *service) submitDraftOrder(ctx context.Context, o *Order) string {
	if s.provider == nil || !s.provider.Configured() {
		return ""
	}

	var items []fulfillment.OrderItem
	for _, li := range o.Items {
		p, err := s.catalog.GetProduct(ctx, li.ProductID)
		if err != nil || p.FulfillmentProductID == 0 {
			continue
		}
		item := fulfillment.OrderItem{
			VariantID: p.FulfillmentProductID,
			Quantity:  li.Quantity,
		}
		if p.DesignURL != "" {
			item.Files = []fulfillment.OrderFile{{Type: "default", URL: p.DesignURL}}
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return ""
	}

	draft, err := s.provider.CreateDraftOrder(ctx, fulfillment.Recipient{
		Name:     o.ShippingAddress.Name,
		Address1: o.ShippingAddress.Address1,
		City:     o.ShippingAddress.City,
		State:    o.ShippingAddress.State,
		Zip:      o.ShippingAddress.Zip,
		Country:  o.ShippingAddress.Country,
		Email:    o.CustomerEmail,
	}, items)
	if err != nil {
		log.Printf("order %s: fulfillment draft failed: %v", o.OrderNumber, err)
		return ""
	}
	return draft.ExternalID
}

// createPaymentIntent registers the charge with the processor and returns
// its reference, or "" when the processor is missing or failing.
func (s *service) createPaymentIntent(ctx context.Context, o *Order) string {
	if s.gateway == nil {
		return ""
	}
	id, err := s.gateway.CreateIntent(ctx, o.Totals.Total, "usd", o.ID.String())
	if err != nil {
		if err != payment.ErrNotConfigured {
			log.Printf("order %s: payment intent failed: %v", o.OrderNumber, err)
		}
		return ""
	}
	return id
}

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}
