// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"html/template"
	"net/http"
	"sort"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/charts"
	"github.com/krishivishwa/agriadmin/internal/app/system/listkit"
	"github.com/krishivishwa/agriadmin/internal/app/system/sharelink"
	"github.com/krishivishwa/agriadmin/internal/app/system/stats"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// Orders per table page; the stats cards and charts are computed over a
// separate capped fetch so the table page never skews them.
const (
	ordersPerPage = 5
	statsLimit    = 1000
)

type Handler struct {
	Backend    *backend.Client
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(client *backend.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend:    client,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

// orderRow is one rendered line of the orders table.
type orderRow struct {
	ID          string
	OrderID     string
	Customer    string
	Phone       string
	Date        string
	Total       string
	Status      string
	StatusLabel string
	Payment     string
}

type pageData struct {
	viewdata.BaseVM

	Status string
	Year   string
	Years  []int

	Rows       []orderRow
	Pagination listkit.Pagination
	Query      listkit.Query

	TotalOrders      int
	PendingOrders    int
	DeliveredOrders  int
	Revenue          string
	RevenueChangePct float64
	MostSold         string
	MostSoldQty      int

	WeeklyOrdersChart    template.HTML
	MonthlyOrdersChart   template.HTML
	MonthlyEarningsChart template.HTML
	StatusPieChart       template.HTML
}

// ServeDashboard handles GET /.
// Supports HTMX partial refresh of the table when HX-Target="orders-table-wrap".
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	page := listkit.ParsePage(r)
	status := query.Get(r, "status")
	if status == "" {
		status = "all"
	}
	year := query.Get(r, "year")
	if year == "" {
		year = "all"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tablePage, err := h.Backend.ListOrders(ctx, token, backend.ListOrdersParams{
		Page:      page,
		Limit:     ordersPerPage,
		Status:    status,
		SortBy:    "orderDate",
		SortOrder: "desc",
	})
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list orders failed", err, "Unable to load orders.", "/")
		return
	}

	// Stats run over their own capped fetch, filtered by year only. The
	// table's status filter and page do not affect them.
	statsCtx, statsCancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "dashboard stats fetch")
	defer statsCancel()

	statsPage, err := h.Backend.ListOrders(statsCtx, token, backend.ListOrdersParams{
		Limit: statsLimit,
		Year:  year,
	})
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "fetch order stats failed", err, "Unable to load order statistics.", "/")
		return
	}

	summary := stats.Summarize(statsPage.Orders)
	weekly := stats.WeekdaySeries(statsPage.Orders)
	monthly := stats.MonthlySeries(statsPage.Orders)

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/"),
		Status: status,
		Year:   year,
		Years:  orderYears(statsPage.Orders, year),

		Rows:       orderRows(tablePage.Orders),
		Pagination: listkit.Paginate(page, tablePage.TotalOrders, ordersPerPage),
		Query:      listkit.NewQuery(r),

		TotalOrders:      summary.TotalOrders,
		PendingOrders:    summary.Pending,
		DeliveredOrders:  summary.Delivered,
		Revenue:          sharelink.FormatINR(summary.Revenue),
		RevenueChangePct: summary.RevenueChangePct,
		MostSold:         summary.MostSold,
		MostSoldQty:      summary.MostSoldQty,
	}
	if data.MostSold == "" {
		data.MostSold = "No data"
	}

	data.WeeklyOrdersChart = h.chart(charts.Orders("Weekly Orders", weekly))
	data.MonthlyOrdersChart = h.chart(charts.Orders("Monthly Orders", monthly))
	data.MonthlyEarningsChart = h.chart(charts.Earnings("Monthly Earnings", monthly))
	data.StatusPieChart = h.chart(charts.StatusPie("Order Status", summary))

	// HTMX partial: just the orders table
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "orders-table-wrap" {
		templates.RenderSnippet(w, "dashboard_orders_table", data)
		return
	}

	templates.Render(w, r, "dashboard", data)
}

func (h *Handler) chart(html template.HTML, err error) template.HTML {
	if err != nil {
		h.Log.Warn("chart render failed", zap.Error(err))
		return ""
	}
	return html
}

func orderRows(orders []backend.Order) []orderRow {
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, newOrderRow(o))
	}
	return rows
}

func newOrderRow(o backend.Order) orderRow {
	return orderRow{
		ID:          o.ID,
		OrderID:     o.OrderID,
		Customer:    customerName(o),
		Phone:       o.Customer.Phone,
		Date:        formatDate(o),
		Total:       sharelink.FormatINR(o.Pricing.Total),
		Status:      o.Status,
		StatusLabel: statusLabel(o.Status),
		Payment:     paymentLabel(o.PaymentMethod),
	}
}

func customerName(o backend.Order) string {
	name := o.Customer.FirstName
	if o.Customer.LastName != "" {
		if name != "" {
			name += " "
		}
		name += o.Customer.LastName
	}
	return name
}

func formatDate(o backend.Order) string {
	d := o.OrderDate
	return strconv.Itoa(d.Day()) + "/" + strconv.Itoa(int(d.Month())) + "/" + strconv.Itoa(d.Year())
}

func statusLabel(status string) string {
	switch status {
	case backend.OrderDelivered:
		return "Delivered"
	case backend.OrderPaymentPending:
		return "Payment Pending"
	default:
		return "Pending"
	}
}

func paymentLabel(method string) string {
	if method == "online" {
		return "Online Payment"
	}
	return "Cash on Delivery"
}

// orderYears lists the distinct order years, newest first, for the filter.
// The selected year stays in the list even when the current page has no
// orders from it.
func orderYears(orders []backend.Order, selected string) []int {
	seen := map[int]bool{}
	for _, o := range orders {
		if y := o.OrderDate.Year(); y > 1 {
			seen[y] = true
		}
	}
	if y, err := strconv.Atoi(selected); err == nil {
		seen[y] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
