// internal/app/features/messages/routes.go
package messages

import (
	"github.com/go-chi/chi/v5"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

// Routes mounts all message routes under /messages.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/read", h.HandleMarkRead)
		pr.Post("/{id}/star", h.HandleToggleStar)
		pr.Post("/{id}/testimonial", h.HandleAddTestimonial)
		pr.Post("/{id}/testimonial/remove", h.HandleRemoveTestimonial)
	})

	return r
}
