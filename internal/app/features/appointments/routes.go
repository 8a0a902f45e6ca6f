// internal/app/features/appointments/routes.go
package appointments

import (
	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts all appointment routes under /appointments.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/status", h.HandleSetStatus)
		pr.Post("/{id}/payment", h.HandleTogglePayment)
	})

	return r
}
