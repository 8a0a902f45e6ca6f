// internal/app/features/products/routes.go
package products

import (
	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts all product routes under /products.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// LIST (products + categories tabs)
		pr.Get("/", h.ServeList)

		// CREATE
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		// EDIT
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleUpdate)

		// DELETE
		pr.Post("/{id}/delete", h.HandleDelete)

		// CATEGORIES
		pr.Post("/categories", h.HandleCategoryCreate)
		pr.Post("/categories/{id}/edit", h.HandleCategoryUpdate)
		pr.Post("/categories/{id}/delete", h.HandleCategoryDelete)
	})

	return r
}
