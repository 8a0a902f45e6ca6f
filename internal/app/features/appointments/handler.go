// internal/app/features/appointments/handler.go
package appointments

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/listkit"
	"github.com/krishivishwa/agriadmin/internal/app/system/sharelink"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const appointmentsPerPage = 4

// Statuses an appointment can move through.
var statuses = []string{"pending", "confirmed", "completed", "cancelled"}

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

// apptRow is one rendered card of the appointments list.
type apptRow struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	Date          string
	Time          string
	Purpose       string
	Status        string
	PaymentStatus string
	WhatsAppURL   string
}

type listData struct {
	viewdata.BaseVM

	Search  string
	Status  string
	Payment string
	Date    string

	Statuses   []string
	Rows       []apptRow
	Pagination listkit.Pagination
	Query      listkit.Query
}

// ServeList handles GET /appointments (with optional ?q=, ?status=,
// ?payment=, ?date=). Supports HTMX partial refresh of the list when
// HX-Target="appointments-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	page := listkit.ParsePage(r)
	search := query.Search(r, "q")
	status := query.Get(r, "status")
	payment := query.Get(r, "payment")
	date := query.Get(r, "date")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	apptPage, err := h.Backend.ListAppointments(ctx, token, backend.ListAppointmentsParams{
		Page:    page,
		Limit:   appointmentsPerPage,
		Search:  search,
		Status:  status,
		Payment: payment,
		Date:    date,
	})
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list appointments failed", err, "Unable to load appointments.", "/appointments")
		return
	}

	rows := make([]apptRow, 0, len(apptPage.Appointments))
	for _, a := range apptPage.Appointments {
		rows = append(rows, newApptRow(a))
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "Appointments", "/appointments"),
		Search:     search,
		Status:     status,
		Payment:    payment,
		Date:       date,
		Statuses:   statuses,
		Rows:       rows,
		Pagination: listkit.Paginate(page, apptPage.Total, appointmentsPerPage),
		Query:      listkit.NewQuery(r),
	}

	// HTMX partial: just the list
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "appointments-wrap" {
		templates.RenderSnippet(w, "appointments_table", data)
		return
	}

	templates.Render(w, r, "appointments_list", data)
}

// HandleSetStatus handles POST /appointments/{id}/status.
// The new state shown always comes from the backend's response.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/appointments")
		return
	}

	status := r.FormValue("status")
	if !validStatus(status) {
		h.ErrLog.LogBadRequest(w, r, "bad appointment status", nil, "Unknown appointment status.", "/appointments")
		return
	}

	h.update(w, r, map[string]string{"status": status})
}

// HandleTogglePayment handles POST /appointments/{id}/payment.
// Flips the payment state between paid and pending.
func (h *Handler) HandleTogglePayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/appointments")
		return
	}

	next := "paid"
	if r.FormValue("current") == "paid" {
		next = "pending"
	}

	h.update(w, r, map[string]string{"paymentStatus": next})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Backend.UpdateAppointment(ctx, token, id, fields)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "update appointment failed", err, "Unable to update the appointment.", "/appointments")
		return
	}

	h.Log.Info("appointment updated",
		zap.String("id", id),
		zap.String("status", updated.Status),
		zap.String("payment", updated.PaymentStatus),
	)

	// HTMX: swap only the affected card with the backend's state.
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "appointment_card", newApptRow(updated))
		return
	}

	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

func newApptRow(a backend.Appointment) apptRow {
	return apptRow{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		Email:         a.Email,
		Date:          a.Date,
		Time:          a.Time,
		Purpose:       a.Purpose,
		Status:        a.Status,
		PaymentStatus: a.PaymentStatus,
		WhatsAppURL:   sharelink.WhatsApp(a.Phone, sharelink.AppointmentFollowUp),
	}
}

func validStatus(s string) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}

func backTo(r *http.Request) string {
	if ret := r.FormValue("return"); ret != "" && ret[0] == '/' {
		return ret
	}
	return "/appointments"
}
