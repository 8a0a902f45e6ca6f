// internal/app/features/dashboard/detail.go
package dashboard

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/sharelink"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// itemLine is one product line in the detail panel.
type itemLine struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

type detailData struct {
	viewdata.BaseVM

	Row                 orderRow
	Items               []itemLine
	Subtotal            string
	DeliveryCharges     string
	Address             string
	Email               string
	SpecialInstructions string

	// WhatsApp language choices for the status message.
	WhatsAppEnglish string
	WhatsAppMarathi string

	ToggleError string
	ReturnURL   string
}

// ServeOrderDetail handles GET /orders/{id}.
func (h *Handler) ServeOrderDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	o, err := h.Backend.GetOrder(ctx, token, id)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "fetch order failed", err, "Unable to load the order.", "/")
		return
	}

	ret := urlutil.SafeReturn(r.URL.Query().Get("return"), "", "/")
	templates.Render(w, r, "order_detail", h.detailData(r, o, "", ret))
}

// HandleToggleStatus handles POST /orders/{id}/toggle-status.
//
// The admin's name is required before the backend is asked to flip the
// status, and the new state shown comes only from the backend's response.
func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/")
		return
	}

	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)
	adminName := strings.TrimSpace(r.FormValue("adminName"))
	ret := urlutil.SafeReturn(r.FormValue("return"), "", "/")

	if !inputval.ValidAdminName(adminName) {
		h.renderToggleError(w, r, id, token, "Please enter your name (at least 2 characters).", ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Backend.ToggleOrderStatus(ctx, token, id, adminName)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "toggle order status failed", err, "Unable to update the order status.", ret)
		return
	}

	h.Log.Info("order status toggled",
		zap.String("order_id", updated.OrderID),
		zap.String("status", updated.Status),
		zap.String("admin", adminName),
	)

	// HTMX: swap only the affected row with the state the backend returned.
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "dashboard_order_row", newOrderRow(updated))
		return
	}

	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) renderToggleError(w http.ResponseWriter, r *http.Request, id, token, msg, ret string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	o, err := h.Backend.GetOrder(ctx, token, id)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "fetch order failed", err, "Unable to load the order.", ret)
		return
	}
	templates.Render(w, r, "order_detail", h.detailData(r, o, msg, ret))
}

func (h *Handler) detailData(r *http.Request, o backend.Order, toggleErr, ret string) detailData {
	items := make([]itemLine, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemLine{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    sharelink.FormatINR(it.Price),
			Total:    sharelink.FormatINR(float64(it.Quantity) * it.Price),
		})
	}

	address := o.Customer.Address
	if o.Customer.City != "" {
		address += ", " + o.Customer.City
	}
	if o.Customer.State != "" {
		address += ", " + o.Customer.State
	}
	if o.Customer.ZipCode != "" {
		address += " - " + o.Customer.ZipCode
	}

	return detailData{
		BaseVM: viewdata.NewBaseVM(r, "Order "+o.OrderID, ret),

		Row:                 newOrderRow(o),
		Items:               items,
		Subtotal:            sharelink.FormatINR(o.Pricing.Subtotal),
		DeliveryCharges:     sharelink.FormatINR(o.Pricing.DeliveryCharges),
		Address:             address,
		Email:               o.Customer.Email,
		SpecialInstructions: o.SpecialInstructions,

		WhatsAppEnglish: sharelink.WhatsAppIN(o.Customer.Phone, sharelink.OrderMessage(o, sharelink.English)),
		WhatsAppMarathi: sharelink.WhatsAppIN(o.Customer.Phone, sharelink.OrderMessage(o, sharelink.Marathi)),

		ToggleError: toggleErr,
		ReturnURL:   ret,
	}
}
