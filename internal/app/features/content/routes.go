// internal/app/features/content/routes.go
package content

import (
	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts all content manager routes under /contents.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServePage)

		pr.Post("/banners", h.HandleBannerCreate)
		pr.Post("/banners/{id}/edit", h.HandleBannerUpdate)
		pr.Post("/banners/{id}/toggle", h.HandleBannerToggle)
		pr.Post("/banners/{id}/delete", h.HandleBannerDelete)

		pr.Post("/timeline", h.HandleTimelineCreate)
		pr.Post("/timeline/{id}/edit", h.HandleTimelineUpdate)
		pr.Post("/timeline/{id}/delete", h.HandleTimelineDelete)
	})

	return r
}
