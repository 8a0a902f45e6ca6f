// internal/app/features/content/timeline.go
package content

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const timelineTab = "/contents?tab=timeline"

// HandleTimelineCreate handles POST /contents/timeline.
func (h *Handler) HandleTimelineCreate(w http.ResponseWriter, r *http.Request) {
	h.saveTimeline(w, r, "")
}

// HandleTimelineUpdate handles POST /contents/timeline/{id}/edit.
func (h *Handler) HandleTimelineUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveTimeline(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) saveTimeline(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", timelineTab)
		return
	}

	item := backend.TimelineItem{
		Year:        r.FormValue("year"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Achievement: r.FormValue("achievement"),
		Metric:      r.FormValue("metric"),
		Highlight:   r.FormValue("highlight") == "on",
		Icon:        r.FormValue("icon"),
		Image:       r.FormValue("image"),
	}

	if msg := validateTimeline(item); msg != "" {
		h.ErrLog.LogBadRequest(w, r, "bad timeline item", nil, msg, timelineTab)
		return
	}

	token := h.SessionMgr.Token(r)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var err error
	if id == "" {
		err = h.Backend.CreateTimelineItem(ctx, token, item)
	} else {
		err = h.Backend.UpdateTimelineItem(ctx, token, id, item)
	}
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "save timeline item failed", err, "Unable to save the milestone.", timelineTab)
		return
	}

	h.Log.Info("timeline item saved", zap.String("id", id), zap.String("year", item.Year))
	http.Redirect(w, r, timelineTab, http.StatusSeeOther)
}

// HandleTimelineDelete handles POST /contents/timeline/{id}/delete.
func (h *Handler) HandleTimelineDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.DeleteTimelineItem(ctx, token, id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete timeline item failed", err, "Unable to delete the milestone.", timelineTab)
		return
	}

	h.Log.Info("timeline item deleted", zap.String("id", id))
	http.Redirect(w, r, timelineTab, http.StatusSeeOther)
}

func validateTimeline(item backend.TimelineItem) string {
	if !inputval.Required(item.Year) || !inputval.IsDigits(item.Year) || len(item.Year) != 4 {
		return "Year must be a four digit number."
	}
	if !inputval.Required(item.Title) {
		return "Milestone title is required."
	}
	if !inputval.Required(item.Description) {
		return "Milestone description is required."
	}
	return ""
}
