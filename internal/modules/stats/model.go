package stats

import (
	"fmt"

	"github.com/cathedralnet/storefront/internal/money"
)

// Window selects how far back the aggregation looks.
type Window string

const (
	WindowWeek    Window = "7d"
	WindowMonth   Window = "30d"
	WindowQuarter Window = "90d"
	WindowAll     Window = "all"
)

// ParseWindow validates a range query parameter; empty defaults to 30 days.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "":
		return WindowMonth, nil
	case WindowWeek, WindowMonth, WindowQuarter, WindowAll:
		return Window(s), nil
	default:
		return "", fmt.Errorf("unknown range %q (want 7d, 30d, 90d or all)", s)
	}
}

// Report is the dashboard aggregation over the selected window.
type Report struct {
	Orders    OrderStats    `json:"orders"`
	Revenue   RevenueStats  `json:"revenue"`
	Products  ProductStats  `json:"products"`
	Customers CustomerStats `json:"customers"`
}

type StatusCounts struct {
	Pending   int `json:"pending"`
	Fulfilled int `json:"fulfilled"`
	Cancelled int `json:"cancelled"`
	Refunded  int `json:"refunded"`
}

type OrderStats struct {
	Total     int          `json:"total"`
	Today     int          `json:"today"`
	ThisWeek  int          `json:"this_week"`
	ThisMonth int          `json:"this_month"`
	ByStatus  StatusCounts `json:"by_status"`
}

type RevenueByStatus struct {
	Pending   money.Cents `json:"pending_cents"`
	Fulfilled money.Cents `json:"fulfilled_cents"`
}

type RevenueStats struct {
	Total        money.Cents     `json:"total_cents"`
	Today        money.Cents     `json:"today_cents"`
	ThisWeek     money.Cents     `json:"this_week_cents"`
	ThisMonth    money.Cents     `json:"this_month_cents"`
	AverageOrder money.Cents     `json:"average_order_cents"`
	ByStatus     RevenueByStatus `json:"by_status"`
}

type TopSeller struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Revenue  money.Cents `json:"revenue_cents"`
}

type ProductStats struct {
	Total      int         `json:"total"`
	Active     int         `json:"active"`
	TopSelling []TopSeller `json:"top_selling"`
}

// CustomerStats splits the window's distinct customers into new and
// returning. "New" is scoped to the window: a customer whose earliest
// in-window order falls today. It is not a first-ever-purchase signal.
type CustomerStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Returning int `json:"returning"`
}
