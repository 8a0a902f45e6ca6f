// internal/app/features/updates/marquee.go
package updates

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
)

// HandleMarqueeCreate handles POST /updates/marquee.
func (h *Handler) HandleMarqueeCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", tabURL("marquee"))
		return
	}

	text := r.FormValue("text")
	if !inputval.Required(text) {
		h.ErrLog.LogBadRequest(w, r, "marquee missing text", nil, "Marquee text is required.", tabURL("marquee"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	active := r.FormValue("active") == "on"
	if err := h.Backend.CreateMarquee(ctx, h.SessionMgr.Token(r), text, active); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "create marquee failed", err, "Unable to add the marquee line.", tabURL("marquee"))
		return
	}

	h.Log.Info("marquee created", zap.Bool("active", active))
	http.Redirect(w, r, tabURL("marquee"), http.StatusSeeOther)
}

// HandleMarqueeUpdate handles POST /updates/marquee/{id}/edit.
func (h *Handler) HandleMarqueeUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", tabURL("marquee"))
		return
	}

	id := chi.URLParam(r, "id")
	text := r.FormValue("text")
	if !inputval.Required(text) {
		h.ErrLog.LogBadRequest(w, r, "marquee missing text", nil, "Marquee text is required.", tabURL("marquee"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	active := r.FormValue("active") == "on"
	if err := h.Backend.UpdateMarquee(ctx, h.SessionMgr.Token(r), id, text, active); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "update marquee failed", err, "Unable to update the marquee line.", tabURL("marquee"))
		return
	}

	http.Redirect(w, r, tabURL("marquee"), http.StatusSeeOther)
}

// HandleMarqueeDelete handles POST /updates/marquee/{id}/delete.
func (h *Handler) HandleMarqueeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.DeleteMarquee(ctx, h.SessionMgr.Token(r), id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete marquee failed", err, "Unable to delete the marquee line.", tabURL("marquee"))
		return
	}

	h.Log.Info("marquee deleted", zap.String("id", id))
	http.Redirect(w, r, tabURL("marquee"), http.StatusSeeOther)
}
