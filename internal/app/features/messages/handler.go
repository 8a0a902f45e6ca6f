// internal/app/features/messages/handler.go
package messages

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/htmlsanitize"
	"github.com/krishivishwa/agriadmin/internal/app/system/listkit"
	"github.com/krishivishwa/agriadmin/internal/app/system/sharelink"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const messagesPerPage = 5

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

// msgRow is one rendered message card. Body is the sanitized message
// text, safe to emit unescaped.
type msgRow struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Subject       string
	Body          template.HTML
	Category      string
	Status        string
	Starred       bool
	IsTestimonial bool
	Date          string
	WhatsAppURL   string
	MailtoURL     string
}

type listData struct {
	viewdata.BaseVM

	Search      string
	Status      string
	Category    string
	Starred     bool
	Testimonial bool

	Stats      backend.MessageStats
	Rows       []msgRow
	Pagination listkit.Pagination
	Query      listkit.Query
}

// ServeList handles GET /messages with ?q=, ?status=, ?category=,
// ?starred=1 and ?testimonial=1 filters. Supports HTMX partial refresh
// of the list when HX-Target="messages-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	page := listkit.ParsePage(r)
	search := query.Search(r, "q")
	status := query.Get(r, "status")
	category := query.Get(r, "category")
	starred := boolFlag(query.Get(r, "starred"))
	testimonial := boolFlag(query.Get(r, "testimonial"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msgPage, err := h.Backend.ListMessages(ctx, token, backend.ListMessagesParams{
		Page:        page,
		Limit:       messagesPerPage,
		Search:      search,
		Status:      status,
		Category:    category,
		Starred:     starred,
		Testimonial: testimonial,
	})
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list messages failed", err, "Unable to load messages.", "/messages")
		return
	}

	rows := make([]msgRow, 0, len(msgPage.Messages))
	for _, m := range msgPage.Messages {
		rows = append(rows, newMsgRow(m))
	}

	data := listData{
		BaseVM:      viewdata.NewBaseVM(r, "Messages", "/messages"),
		Search:      search,
		Status:      status,
		Category:    category,
		Starred:     starred,
		Testimonial: testimonial,
		Stats:       msgPage.Stats,
		Rows:        rows,
		Pagination:  listkit.Paginate(page, msgPage.Total, messagesPerPage),
		Query:       listkit.NewQuery(r),
	}

	// HTMX partial: just the list
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "messages-wrap" {
		templates.RenderSnippet(w, "messages_table", data)
		return
	}

	templates.Render(w, r, "messages_list", data)
}

// HandleMarkRead handles POST /messages/{id}/read, fired when a card
// is expanded. The state shown comes from the backend's response.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Backend.MarkMessageRead(ctx, token, id)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "mark message read failed", err, "Unable to update the message.", "/messages")
		return
	}

	h.respondWithCard(w, r, updated)
}

// HandleToggleStar handles POST /messages/{id}/star. The form carries
// the currently shown state and the backend is asked for its opposite.
func (h *Handler) HandleToggleStar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/messages")
		return
	}

	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)
	next := r.FormValue("current") != "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Backend.ToggleMessageStar(ctx, token, id, next)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "toggle message star failed", err, "Unable to update the message.", "/messages")
		return
	}

	h.Log.Info("message star toggled", zap.String("id", id), zap.Bool("starred", updated.Starred))
	h.respondWithCard(w, r, updated)
}

// HandleAddTestimonial handles POST /messages/{id}/testimonial.
func (h *Handler) HandleAddTestimonial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.AddTestimonial(ctx, token, id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "add testimonial failed", err, "Unable to publish the testimonial.", "/messages")
		return
	}

	h.Log.Info("testimonial published", zap.String("messageId", id))
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// HandleRemoveTestimonial handles POST /messages/{id}/testimonial/remove.
func (h *Handler) HandleRemoveTestimonial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.RemoveTestimonialByMessage(ctx, token, id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "remove testimonial failed", err, "Unable to retract the testimonial.", "/messages")
		return
	}

	h.Log.Info("testimonial retracted", zap.String("messageId", id))
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// respondWithCard swaps the affected card on HTMX requests, otherwise
// falls back to a redirect.
func (h *Handler) respondWithCard(w http.ResponseWriter, r *http.Request, m backend.Message) {
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "message_card", newMsgRow(m))
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

func newMsgRow(m backend.Message) msgRow {
	row := msgRow{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Subject:       m.Subject,
		Body:          htmlsanitize.PrepareForDisplay(m.Message),
		Category:      m.Category,
		Status:        m.Status,
		Starred:       m.Starred,
		IsTestimonial: m.IsTestimonial,
	}
	if !m.CreatedAt.IsZero() {
		row.Date = m.CreatedAt.Format("2/1/2006")
	}
	if m.Phone != "" {
		row.WhatsAppURL = sharelink.WhatsApp(m.Phone, "")
	}
	if m.Email != "" {
		subject := "Re: " + m.Subject
		if m.Subject == "" {
			subject = "Re: your message to Krishivishwa"
		}
		row.MailtoURL = sharelink.Mailto(m.Email, subject, "")
	}
	return row
}

func boolFlag(v string) bool {
	return v == "1" || v == "true"
}

func backTo(r *http.Request) string {
	if ret := r.FormValue("return"); ret != "" && ret[0] == '/' {
		return ret
	}
	return "/messages"
}
