// internal/app/features/updates/routes.go
package updates

import (
	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts all update manager routes under /updates.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServePage)

		pr.Post("/marquee", h.HandleMarqueeCreate)
		pr.Post("/marquee/{id}/edit", h.HandleMarqueeUpdate)
		pr.Post("/marquee/{id}/delete", h.HandleMarqueeDelete)

		pr.Post("/news", h.HandleNewsCreate)
		pr.Post("/news/{id}/edit", h.HandleNewsUpdate)
		pr.Post("/news/{id}/delete", h.HandleNewsDelete)

		pr.Post("/videos", h.HandleVideoCreate)
		pr.Post("/videos/{id}/edit", h.HandleVideoUpdate)
		pr.Post("/videos/{id}/delete", h.HandleVideoDelete)

		pr.Post("/newsletters/{id}/status", h.HandleNewsletterToggle)
		pr.Post("/newsletters/{id}/delete", h.HandleNewsletterDelete)

		pr.Post("/settings", h.HandleSettingsSave)
	})

	return r
}
