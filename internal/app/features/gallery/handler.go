// internal/app/features/gallery/handler.go
package gallery

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	Backend    *backend.Client
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(client *backend.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend:    client,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

type listData struct {
	viewdata.BaseVM

	Tab      string
	Search   string
	Category string

	Categories []backend.GalleryCategory
	Items      []backend.GalleryItem
}

// ServeList handles GET /gallery with ?tab=items|categories,
// ?category= and ?q=. Supports HTMX partial refresh of the item grid
// when HX-Target="gallery-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	tab := query.Get(r, "tab")
	if tab != "categories" {
		tab = "items"
	}
	search := query.Search(r, "q")
	category := query.Get(r, "category")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cats, err := h.Backend.ListGalleryCategories(ctx, token)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list gallery categories failed", err, "Unable to load the gallery.", "/gallery")
		return
	}

	var items []backend.GalleryItem
	if tab == "items" {
		items, err = h.Backend.ListGalleryItems(ctx, token, category, search)
		if err != nil {
			h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list gallery items failed", err, "Unable to load the gallery.", "/gallery")
			return
		}
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "Gallery", "/gallery"),
		Tab:        tab,
		Search:     search,
		Category:   category,
		Categories: cats,
		Items:      items,
	}

	// HTMX partial: just the grid
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "gallery-wrap" {
		templates.RenderSnippet(w, "gallery_grid", data)
		return
	}

	templates.Render(w, r, "gallery_list", data)
}

// HandleItemCreate handles POST /gallery/items. The image file is
// pushed through the backend's upload endpoint first and the item is
// created with the returned URL.
func (h *Handler) HandleItemCreate(w http.ResponseWriter, r *http.Request) {
	h.saveItem(w, r, "")
}

// HandleItemUpdate handles POST /gallery/items/{id}/edit.
func (h *Handler) HandleItemUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveItem(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) saveItem(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "Invalid form data.", "/gallery")
		return
	}

	token := h.SessionMgr.Token(r)
	title := r.FormValue("title")
	category := r.FormValue("category")
	imageURL := r.FormValue("image_url")

	if !inputval.Required(title) || !inputval.Required(category) {
		h.ErrLog.LogBadRequest(w, r, "gallery item missing fields", nil, "Title and category are required.", "/gallery")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	file, err := imageFile(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "read gallery image failed", err, "Unable to read the image file.", "/gallery")
		return
	}
	if file != nil {
		imageURL, err = h.Backend.Upload(ctx, token, *file)
		if err != nil {
			h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "gallery image upload failed", err, "Unable to upload the image.", "/gallery")
			return
		}
	}

	if id == "" {
		if imageURL == "" {
			h.ErrLog.LogBadRequest(w, r, "gallery item missing image", nil, "An image is required.", "/gallery")
			return
		}
		err = h.Backend.CreateGalleryItem(ctx, token, title, category, imageURL)
	} else {
		err = h.Backend.UpdateGalleryItem(ctx, token, id, title, category, imageURL)
	}
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "save gallery item failed", err, "Unable to save the gallery item.", "/gallery")
		return
	}

	h.Log.Info("gallery item saved", zap.String("id", id), zap.String("title", title))
	http.Redirect(w, r, "/gallery", http.StatusSeeOther)
}

// HandleItemDelete handles POST /gallery/items/{id}/delete.
func (h *Handler) HandleItemDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.DeleteGalleryItem(ctx, token, id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete gallery item failed", err, "Unable to delete the gallery item.", "/gallery")
		return
	}

	h.Log.Info("gallery item deleted", zap.String("id", id))
	http.Redirect(w, r, "/gallery", http.StatusSeeOther)
}

// imageFile reads the optional uploaded image. A missing file is not
// an error; updates may keep the current image URL.
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
