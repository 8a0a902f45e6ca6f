// Package stats holds the pure reducers behind the dashboard cards and
// charts. They run over the full (capped) order collection fetched for the
// selected year, never over the visible page.
package stats

import (
	"math"

	"github.com/krishivishwa/agriadmin/internal/backend"
)

// Summary backs the dashboard stat cards.
type Summary struct {
	TotalOrders int
	Pending     int // pending + payment_pending
	Delivered   int
	Revenue     float64
	// RevenueChangePct compares against an estimated previous period
	// (85% of current revenue) until the backend exposes real history.
	RevenueChangePct float64
	MostSold         string
	MostSoldQty      int
}

// Summarize reduces the order collection to the card values. An empty slice
// yields a zero Summary.
func Summarize(orders []backend.Order) Summary {
	var s Summary
	s.TotalOrders = len(orders)

	qtyByProduct := make(map[string]int)
	for _, o := range orders {
		switch o.Status {
		case backend.OrderPending, backend.OrderPaymentPending:
			s.Pending++
		case backend.OrderDelivered:
			s.Delivered++
		}
		s.Revenue += o.Pricing.Total
		for _, it := range o.Items {
			qtyByProduct[it.Name] += it.Quantity
		}
	}

	prev := s.Revenue * 0.85
	if prev > 0 {
		s.RevenueChangePct = round1((s.Revenue - prev) / prev * 100)
	}

	for name, qty := range qtyByProduct {
		if qty > s.MostSoldQty || (qty == s.MostSoldQty && name < s.MostSold) {
			s.MostSold, s.MostSoldQty = name, qty
		}
	}
	return s
}

// Bucket is one bar in the orders/earnings charts.
type Bucket struct {
	Label    string
	Count    int
	Earnings float64
}

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekdaySeries buckets orders into fixed Mon..Sun bars by creation day.
func WeekdaySeries(orders []backend.Order) []Bucket {
	buckets := make([]Bucket, len(weekdayLabels))
	for i, l := range weekdayLabels {
		buckets[i].Label = l
	}
	for _, o := range orders {
		// time.Weekday is Sunday-first; shift to a Monday-first index.
		idx := (int(o.OrderDate.Weekday()) + 6) % 7
		buckets[idx].Count++
		buckets[idx].Earnings += o.Pricing.Total
	}
	return buckets
}

// MonthlySeries buckets orders into fixed Jan..Dec bars by creation month.
func MonthlySeries(orders []backend.Order) []Bucket {
	buckets := make([]Bucket, len(monthLabels))
	for i, l := range monthLabels {
		buckets[i].Label = l
	}
	for _, o := range orders {
		idx := int(o.OrderDate.Month()) - 1
		buckets[idx].Count++
		buckets[idx].Earnings += o.Pricing.Total
	}
	return buckets
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
