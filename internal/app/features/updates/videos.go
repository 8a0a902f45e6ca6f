// internal/app/features/updates/videos.go
package updates

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// HandleVideoCreate handles POST /updates/videos.
func (h *Handler) HandleVideoCreate(w http.ResponseWriter, r *http.Request) {
	h.saveVideo(w, r, "")
}

// HandleVideoUpdate handles POST /updates/videos/{id}/edit.
func (h *Handler) HandleVideoUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveVideo(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) saveVideo(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", tabURL("videos"))
		return
	}

	v := backend.Video{
		Title:       r.FormValue("title"),
		URL:         strings.TrimSpace(r.FormValue("url")),
		Description: r.FormValue("description"),
		Active:      r.FormValue("active") == "on",
	}
	if msg := validateVideo(v); msg != "" {
		h.ErrLog.LogBadRequest(w, r, "bad video", nil, msg, tabURL("videos"))
		return
	}

	token := h.SessionMgr.Token(r)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var err error
	if id == "" {
		err = h.Backend.CreateVideo(ctx, token, v)
	} else {
		err = h.Backend.UpdateVideo(ctx, token, id, v)
	}
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "save video failed", err, "Unable to save the video.", tabURL("videos"))
		return
	}

	h.Log.Info("video saved", zap.String("id", id), zap.String("title", v.Title))
	http.Redirect(w, r, tabURL("videos"), http.StatusSeeOther)
}

// HandleVideoDelete handles POST /updates/videos/{id}/delete.
func (h *Handler) HandleVideoDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.DeleteVideo(ctx, h.SessionMgr.Token(r), id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete video failed", err, "Unable to delete the video.", tabURL("videos"))
		return
	}

	h.Log.Info("video deleted", zap.String("id", id))
	http.Redirect(w, r, tabURL("videos"), http.StatusSeeOther)
}

func validateVideo(v backend.Video) string {
	if !inputval.Required(v.Title) {
		return "Video title is required."
	}
	if !strings.HasPrefix(v.URL, "http://") && !strings.HasPrefix(v.URL, "https://") {
		return "Video URL must start with http:// or https://."
	}
	return ""
}
