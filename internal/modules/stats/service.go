package stats

import (
	"context"
	"sort"
	"time"

	"github.com/cathedralnet/storefront/internal/money"
	"github.com/cathedralnet/storefront/internal/modules/catalog"
	"github.com/cathedralnet/storefront/internal/modules/order"
)

// Service produces the admin dashboard report.
type Service interface {
	Stats(ctx context.Context, w Window) (*Report, error)
}

type service struct {
	orders  order.Repository
	catalog catalog.Service
}

func NewService(orders order.Repository, catalogSvc catalog.Service) Service {
	return &service{orders: orders, catalog: catalogSvc}
}

func (s *service) Stats(ctx context.Context, w Window) (*Report, error) {
	orders, err := s.orders.List(ctx, "")
	if err != nil {
		return nil, err
	}
	report := Compute(orders, w, time.Now())

	if s.catalog != nil {
		if products, err := s.catalog.ListProducts(ctx); err == nil {
			report.Products.Total = len(products)
			for _, p := range products {
				if !p.ComingSoon {
					report.Products.Active++
				}
			}
		}
	}
	return report, nil
}

// Compute is a pure reduction over the order list. The clock is passed in so
// the today/week/month sub-buckets are testable.
func Compute(orders []*order.Order, w Window, now time.Time) *Report {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := midnight.AddDate(0, 0, -7)
	monthAgo := midnight.AddDate(0, 0, -30)

	// Window filter first, fixed sub-windows over the result.
	var cutoff time.Time
	switch w {
	case WindowWeek:
		cutoff = weekAgo
	case WindowMonth:
		cutoff = monthAgo
	case WindowQuarter:
		cutoff = midnight.AddDate(0, 0, -90)
	}

	var windowed []*order.Order
	for _, o := range orders {
		if cutoff.IsZero() || !o.CreatedAt.Before(cutoff) {
			windowed = append(windowed, o)
		}
	}

	r := &Report{}
	sellerIndex := make(map[string]int)
	earliestByCustomer := make(map[string]time.Time)

	for _, o := range windowed {
		r.Orders.Total++
		r.Revenue.Total += o.Totals.Total

		if !o.CreatedAt.Before(midnight) {
			r.Orders.Today++
			r.Revenue.Today += o.Totals.Total
		}
		if !o.CreatedAt.Before(weekAgo) {
			r.Orders.ThisWeek++
			r.Revenue.ThisWeek += o.Totals.Total
		}
		if !o.CreatedAt.Before(monthAgo) {
			r.Orders.ThisMonth++
			r.Revenue.ThisMonth += o.Totals.Total
		}

		switch o.Status {
		case order.StatusPending:
			r.Orders.ByStatus.Pending++
			r.Revenue.ByStatus.Pending += o.Totals.Total
		case order.StatusFulfilled:
			r.Orders.ByStatus.Fulfilled++
			r.Revenue.ByStatus.Fulfilled += o.Totals.Total
		case order.StatusCancelled:
			r.Orders.ByStatus.Cancelled++
		case order.StatusRefunded:
			r.Orders.ByStatus.Refunded++
		}

		for _, li := range o.Items {
			i, ok := sellerIndex[li.Name]
			if !ok {
				i = len(r.Products.TopSelling)
				sellerIndex[li.Name] = i
				r.Products.TopSelling = append(r.Products.TopSelling, TopSeller{Name: li.Name})
			}
			r.Products.TopSelling[i].Quantity += li.Quantity
			r.Products.TopSelling[i].Revenue += li.UnitPrice * money.Cents(li.Quantity)
		}

		if first, ok := earliestByCustomer[o.CustomerEmail]; !ok || o.CreatedAt.Before(first) {
			earliestByCustomer[o.CustomerEmail] = o.CreatedAt
		}
	}

	if r.Orders.Total > 0 {
		r.Revenue.AverageOrder = r.Revenue.Total / money.Cents(r.Orders.Total)
	}

	sort.Slice(r.Products.TopSelling, func(i, j int) bool {
		a, b := r.Products.TopSelling[i], r.Products.TopSelling[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if len(r.Products.TopSelling) > 3 {
		r.Products.TopSelling = r.Products.TopSelling[:3]
	}

	r.Customers.Total = len(earliestByCustomer)
	for _, first := range earliestByCustomer {
		if !first.Before(midnight) {
			r.Customers.New++
		}
	}
	r.Customers.Returning = r.Customers.Total - r.Customers.New

	return r
}
