// internal/app/features/gallery/routes.go
package gallery

import (
	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts all gallery routes under /gallery.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)

		pr.Post("/items", h.HandleItemCreate)
		pr.Post("/items/{id}/edit", h.HandleItemUpdate)
		pr.Post("/items/{id}/delete", h.HandleItemDelete)

		pr.Post("/categories", h.HandleCategoryCreate)
		pr.Post("/categories/{id}/edit", h.HandleCategoryUpdate)
		pr.Post("/categories/{id}/delete", h.HandleCategoryDelete)
	})

	return r
}
