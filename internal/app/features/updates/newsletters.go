// internal/app/features/updates/newsletters.go
package updates

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/sharelink"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// HandleNewsletterToggle handles POST /updates/newsletters/{id}/status.
// Flips the subscriber between active and inactive.
func (h *Handler) HandleNewsletterToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", tabURL("newsletters"))
		return
	}

	id := chi.URLParam(r, "id")
	next := "active"
	if r.FormValue("current") == "active" {
		next = "inactive"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.UpdateNewsletter(ctx, h.SessionMgr.Token(r), id, next); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "update newsletter failed", err, "Unable to update the subscriber.", tabURL("newsletters"))
		return
	}

	h.Log.Info("newsletter status changed", zap.String("id", id), zap.String("status", next))
	http.Redirect(w, r, tabURL("newsletters"), http.StatusSeeOther)
}

// HandleNewsletterDelete handles POST /updates/newsletters/{id}/delete.
func (h *Handler) HandleNewsletterDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.DeleteNewsletter(ctx, h.SessionMgr.Token(r), id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete newsletter failed", err, "Unable to delete the subscriber.", tabURL("newsletters"))
		return
	}

	h.Log.Info("newsletter subscriber deleted", zap.String("id", id))
	http.Redirect(w, r, tabURL("newsletters"), http.StatusSeeOther)
}

// HandleSettingsSave handles POST /updates/settings, storing the
// welcome message used for subscriber outreach.
func (h *Handler) HandleSettingsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", tabURL("settings"))
		return
	}

	s := backend.NewsletterSettings{
		WelcomeMessage: r.FormValue("welcome_message"),
		GroupLink:      r.FormValue("group_link"),
	}
	if !inputval.Required(s.WelcomeMessage) {
		h.ErrLog.LogBadRequest(w, r, "settings missing welcome message", nil, "A welcome message is required.", tabURL("settings"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.PutNewsletterSettings(ctx, h.SessionMgr.Token(r), s); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "save newsletter settings failed", err, "Unable to save the settings.", tabURL("settings"))
		return
	}

	h.Log.Info("newsletter settings saved")
	http.Redirect(w, r, tabURL("settings")+"&saved=1", http.StatusSeeOther)
}

func newSubscriberRow(s backend.Newsletter, settings backend.NewsletterSettings) subscriberRow {
	row := subscriberRow{Newsletter: s}
	if !s.CreatedAt.IsZero() {
		row.Date = s.CreatedAt.Format("2/1/2006")
	}
	if s.Phone != "" {
		row.WhatsAppURL = sharelink.WhatsApp(s.Phone, sharelink.WelcomeMessage(settings))
	}
	if s.Email != "" {
		row.MailtoURL = sharelink.Mailto(s.Email, sharelink.WelcomeSubject, sharelink.WelcomeMessage(settings))
	}
	return row
}
