// internal/app/features/settings/routes.go
package settings

import (
	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts all settings routes under /settings.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServePage)
		pr.Post("/profile", h.HandleProfileSave)
		pr.Post("/password", h.HandleChangePassword)
	})

	return r
}
