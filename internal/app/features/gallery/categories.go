// internal/app/features/gallery/categories.go
package gallery

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
)

const categoriesTab = "/gallery?tab=categories"

// HandleCategoryCreate handles POST /gallery/categories.
func (h *Handler) HandleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", categoriesTab)
		return
	}

	name := r.FormValue("name")
	if !inputval.Required(name) {
		h.ErrLog.LogBadRequest(w, r, "gallery category missing name", nil, "Category name is required.", categoriesTab)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.CreateGalleryCategory(ctx, h.SessionMgr.Token(r), name); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "create gallery category failed", err, "Unable to create the category.", categoriesTab)
		return
	}

	h.Log.Info("gallery category created", zap.String("name", name))
	http.Redirect(w, r, categoriesTab, http.StatusSeeOther)
}

// HandleCategoryUpdate handles POST /gallery/categories/{id}/edit.
func (h *Handler) HandleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", categoriesTab)
		return
	}

	id := chi.URLParam(r, "id")
	name := r.FormValue("name")
	if !inputval.Required(name) {
		h.ErrLog.LogBadRequest(w, r, "gallery category missing name", nil, "Category name is required.", categoriesTab)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.UpdateGalleryCategory(ctx, h.SessionMgr.Token(r), id, name); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "update gallery category failed", err, "Unable to rename the category.", categoriesTab)
		return
	}

	http.Redirect(w, r, categoriesTab, http.StatusSeeOther)
}

// HandleCategoryDelete handles POST /gallery/categories/{id}/delete.
func (h *Handler) HandleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.DeleteGalleryCategory(ctx, h.SessionMgr.Token(r), id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete gallery category failed", err, "Unable to delete the category.", categoriesTab)
		return
	}

	h.Log.Info("gallery category deleted", zap.String("id", id))
	http.Redirect(w, r, categoriesTab, http.StatusSeeOther)
}
