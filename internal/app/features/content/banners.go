// internal/app/features/content/banners.go
package content

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const heroTab = "/contents?tab=hero"

// HandleBannerCreate handles POST /contents/banners.
func (h *Handler) HandleBannerCreate(w http.ResponseWriter, r *http.Request) {
	h.saveBanner(w, r, "")
}

// HandleBannerUpdate handles POST /contents/banners/{id}/edit.
func (h *Handler) HandleBannerUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveBanner(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) saveBanner(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "Invalid form data.", heroTab)
		return
	}

	fields := map[string]string{
		"page":     r.FormValue("page"),
		"title":    r.FormValue("title"),
		"subtitle": r.FormValue("subtitle"),
	}
	if !validBannerPage(fields["page"]) {
		h.ErrLog.LogBadRequest(w, r, "bad banner page", nil, "Unknown site page for the banner.", heroTab)
		return
	}
	if !inputval.Required(fields["title"]) {
		h.ErrLog.LogBadRequest(w, r, "banner missing title", nil, "Banner title is required.", heroTab)
		return
	}

	image, err := imageFile(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "read banner image failed", err, "Unable to read the image file.", heroTab)
		return
	}
	if id == "" && image == nil {
		h.ErrLog.LogBadRequest(w, r, "banner missing image", nil, "A banner image is required.", heroTab)
		return
	}

	token := h.SessionMgr.Token(r)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if id == "" {
		err = h.Backend.CreateBanner(ctx, token, fields, image)
	} else {
		err = h.Backend.UpdateBanner(ctx, token, id, fields, image)
	}
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "save banner failed", err, "Unable to save the banner.", heroTab)
		return
	}

	h.Log.Info("banner saved", zap.String("id", id), zap.String("page", fields["page"]))
	http.Redirect(w, r, heroTab, http.StatusSeeOther)
}

// HandleBannerToggle handles POST /contents/banners/{id}/toggle. The
// active flag shown afterwards comes from the backend's response.
func (h *Handler) HandleBannerToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Backend.ToggleBanner(ctx, token, id)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "toggle banner failed", err, "Unable to update the banner.", heroTab)
		return
	}

	h.Log.Info("banner toggled", zap.String("id", id), zap.Bool("active", updated.Active))

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "banner_card", updated)
		return
	}
	http.Redirect(w, r, heroTab, http.StatusSeeOther)
}

// HandleBannerDelete handles POST /contents/banners/{id}/delete.
func (h *Handler) HandleBannerDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.DeleteBanner(ctx, token, id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete banner failed", err, "Unable to delete the banner.", heroTab)
		return
	}

	h.Log.Info("banner deleted", zap.String("id", id))
	http.Redirect(w, r, heroTab, http.StatusSeeOther)
}

func validBannerPage(p string) bool {
	for _, v := range backend.BannerPages {
		if v == p {
			return true
		}
	}
	return false
}

// imageFile reads the optional uploaded image. Missing file means the
// backend keeps the current one.
func imageFile(r *http.Request) (*backend.FileField, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &backend.FileField{
		Field:    "image",
		Filename: header.Filename,
		Reader:   file,
	}, nil
}
