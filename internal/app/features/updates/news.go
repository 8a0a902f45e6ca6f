// internal/app/features/updates/news.go
package updates

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// HandleNewsCreate handles POST /updates/news.
func (h *Handler) HandleNewsCreate(w http.ResponseWriter, r *http.Request) {
	h.saveNews(w, r, "")
}

// HandleNewsUpdate handles POST /updates/news/{id}/edit.
func (h *Handler) HandleNewsUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveNews(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) saveNews(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "Invalid form data.", tabURL("news"))
		return
	}

	fields := map[string]string{
		"title":   r.FormValue("title"),
		"excerpt": r.FormValue("excerpt"),
		"content": r.FormValue("content"),
		"active":  checkboxValue(r, "active"),
	}
	if msg := validateNews(fields); msg != "" {
		h.ErrLog.LogBadRequest(w, r, "bad news item", nil, msg, tabURL("news"))
		return
	}

	image, err := imageFile(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "read news image failed", err, "Unable to read the image file.", tabURL("news"))
		return
	}

	token := h.SessionMgr.Token(r)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if id == "" {
		err = h.Backend.CreateNews(ctx, token, fields, image)
	} else {
		err = h.Backend.UpdateNews(ctx, token, id, fields, image)
	}
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "save news failed", err, "Unable to save the news item.", tabURL("news"))
		return
	}

	h.Log.Info("news saved", zap.String("id", id), zap.String("title", fields["title"]))
	http.Redirect(w, r, tabURL("news"), http.StatusSeeOther)
}

// HandleNewsDelete handles POST /updates/news/{id}/delete.
func (h *Handler) HandleNewsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.DeleteNews(ctx, h.SessionMgr.Token(r), id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete news failed", err, "Unable to delete the news item.", tabURL("news"))
		return
	}

	h.Log.Info("news deleted", zap.String("id", id))
	http.Redirect(w, r, tabURL("news"), http.StatusSeeOther)
}

func validateNews(fields map[string]string) string {
	if !inputval.Required(fields["title"]) {
		return "News title is required."
	}
	if !inputval.WithinWordLimit(fields["title"], newsTitleMaxWords) {
		return "News title must be 10 words or fewer."
	}
	if !inputval.Required(fields["excerpt"]) {
		return "News excerpt is required."
	}
	if !inputval.WithinWordLimit(fields["excerpt"], newsExcerptMaxWords) {
		return "News excerpt must be 40 words or fewer."
	}
	return ""
}

func checkboxValue(r *http.Request, name string) string {
	if r.FormValue(name) == "on" {
		return "true"
	}
	return "false"
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
