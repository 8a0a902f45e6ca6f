// internal/app/features/dashboard/routes.go
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts the dashboard at the site root.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeDashboard)
		pr.Get("/orders/{id}", h.ServeOrderDetail)
		pr.Post("/orders/{id}/toggle-status", h.HandleToggleStatus)
	})

	// Unknown paths land here because the dashboard owns the root mount.
	// Sending them to "/" lets the sign-in guard sort out where they go.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	return r
}
