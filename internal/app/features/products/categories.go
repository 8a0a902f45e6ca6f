// internal/app/features/products/categories.go
package products

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
)

const categoriesTab = "/products?tab=categories"

// HandleCategoryCreate handles POST /products/categories.
func (h *Handler) HandleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", categoriesTab)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	color := strings.TrimSpace(r.FormValue("color"))
	if !inputval.Required(name) {
		h.ErrLog.LogBadRequest(w, r, "empty category name", nil, "Category name is required.", categoriesTab)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.CreateProductCategory(ctx, h.SessionMgr.Token(r), name, color); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "create product category failed", err, "Unable to create the category.", categoriesTab)
		return
	}

	h.Log.Info("product category created", zap.String("name", name))
	http.Redirect(w, r, categoriesTab, http.StatusSeeOther)
}

// HandleCategoryUpdate handles POST /products/categories/{id}/edit.
func (h *Handler) HandleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", categoriesTab)
		return
	}
	id := chi.URLParam(r, "id")
	name := strings.TrimSpace(r.FormValue("name"))
	color := strings.TrimSpace(r.FormValue("color"))
	if !inputval.Required(name) {
		h.ErrLog.LogBadRequest(w, r, "empty category name", nil, "Category name is required.", categoriesTab)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.UpdateProductCategory(ctx, h.SessionMgr.Token(r), id, name, color); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "update product category failed", err, "Unable to update the category.", categoriesTab)
		return
	}

	http.Redirect(w, r, categoriesTab, http.StatusSeeOther)
}

// HandleCategoryDelete handles POST /products/categories/{id}/delete.
func (h *Handler) HandleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.DeleteProductCategory(ctx, h.SessionMgr.Token(r), id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete product category failed", err, "Unable to delete the category.", categoriesTab)
		return
	}

	h.Log.Info("product category deleted", zap.String("id", id))
	http.Redirect(w, r, categoriesTab, http.StatusSeeOther)
}
