package charts

import (
	"strings"
	"testing"

	"github.com/krishivishwa/agriadmin/internal/app/system/stats"
)

func weekBuckets() []stats.Bucket {
	return []stats.Bucket{
		{Label: "Mon", Count: 2, Earnings: 500},
		{Label: "Tue", Count: 0, Earnings: 0},
		{Label: "Wed", Count: 1, Earnings: 120},
		{Label: "Thu"}, {Label: "Fri"}, {Label: "Sat"}, {Label: "Sun"},
	}
}

func TestOrders_RendersFragment(t *testing.T) {
	html, err := Orders("Weekly Orders", weekBuckets())
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	s := string(html)
	if !strings.Contains(s, "Weekly Orders") {
		t.Error("fragment missing chart title")
	}
	if !strings.Contains(s, "Mon") {
		t.Error("fragment missing axis labels")
	}
}

func TestEarnings_RendersFragment(t *testing.T) {
	html, err := Earnings("Weekly Earnings", weekBuckets())
	if err != nil {
		t.Fatalf("Earnings: %v", err)
	}
	if !strings.Contains(string(html), "Weekly Earnings") {
		t.Error("fragment missing chart title")
	}
}

func TestStatusPie_RendersFragment(t *testing.T) {
	html, err := StatusPie("Order Status", stats.Summary{Pending: 3, Delivered: 4})
	if err != nil {
		t.Fatalf("StatusPie: %v", err)
	}
	s := string(html)
	if !strings.Contains(s, "Pending") || !strings.Contains(s, "Delivered") {
		t.Error("fragment missing status slices")
	}
}
