// internal/app/features/products/form.go
package products

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/formutil"
	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const maxUploadBytes = 10 << 20

type formData struct {
	formutil.Base

	ID                string
	Name              string
	Category          string
	Price             string
	OriginalPrice     string
	Stock             string
	Description       string
	Use               string
	Benefits          string
	ApplicationMethod string
	Image             string
	Featured          bool
	Selected          map[string]bool

	Sections   []string
	Categories []backend.ProductCategory
}

// ServeNew handles GET /products/new.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data, ok := h.emptyForm(w, r)
	if !ok {
		return
	}
	templates.Render(w, r, "product_form", data)
}

// ServeEdit handles GET /products/{id}/edit.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Backend.GetProduct(ctx, token, id)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "fetch product failed", err, "Unable to load the product.", "/products")
		return
	}
	categories, err := h.Backend.ListProductCategories(ctx, token)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list product categories failed", err, "Unable to load categories.", "/products")
		return
	}

	selected := map[string]bool{}
	for _, s := range p.Sections {
		selected[s] = true
	}

	data := formData{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Price:             trimFloat(p.Price),
		OriginalPrice:     trimFloat(p.OriginalPrice),
		Stock:             strconv.Itoa(p.Stock),
		Description:       p.Description,
		Use:               p.Use,
		Benefits:          p.Benefits,
		ApplicationMethod: p.ApplicationMethod,
		Image:             p.Image,
		Featured:          p.Featured,
		Selected:          selected,
		Sections:          sections,
		Categories:        categories,
	}
	formutil.SetBase(&data.Base, r, "Edit Product", "/products")
	templates.Render(w, r, "product_form", data)
}

// HandleCreate handles POST /products.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, "")
}

// HandleUpdate handles POST /products/{id}/edit.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "Invalid form data.", "/products")
		return
	}
	token := h.SessionMgr.Token(r)

	data, ok := h.formFromRequest(w, r, id)
	if !ok {
		return
	}

	if msg := validate(data); msg != "" {
		data.SetError(msg)
		templates.Render(w, r, "product_form", data)
		return
	}

	fields := map[string]string{
		"name":              data.Name,
		"category":          data.Category,
		"price":             data.Price,
		"originalPrice":     data.OriginalPrice,
		"stock":             data.Stock,
		"description":       data.Description,
		"use":               data.Use,
		"benefits":          data.Benefits,
		"applicationMethod": data.ApplicationMethod,
		"sections":          strings.Join(r.Form["sections"], ","),
		"featured":          strconv.FormatBool(data.Featured),
	}

	image, err := fileField(r, "image")
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "read image upload failed", err, "Unable to read the uploaded image.", "/products")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if id == "" {
		_, err = h.Backend.CreateProduct(ctx, token, fields, image)
	} else {
		_, err = h.Backend.UpdateProduct(ctx, token, id, fields, image)
	}
	if err != nil {
		h.renderSaveError(w, r, data, err)
		return
	}

	h.Log.Info("product saved", zap.String("name", data.Name), zap.Bool("created", id == ""))
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// HandleDelete handles POST /products/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.DeleteProduct(ctx, token, id); err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "delete product failed", err, "Unable to delete the product.", "/products")
		return
	}

	h.Log.Info("product deleted", zap.String("id", id))
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *Handler) emptyForm(w http.ResponseWriter, r *http.Request) (formData, bool) {
	token := h.SessionMgr.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	categories, err := h.Backend.ListProductCategories(ctx, token)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list product categories failed", err, "Unable to load categories.", "/products")
		return formData{}, false
	}

	data := formData{
		Selected:   map[string]bool{},
		Sections:   sections,
		Categories: categories,
	}
	formutil.SetBase(&data.Base, r, "Add Product", "/products")
	return data, true
}

// formFromRequest echoes the submitted values back into a formData so a
// failed save re-renders with everything the admin typed.
func (h *Handler) formFromRequest(w http.ResponseWriter, r *http.Request, id string) (formData, bool) {
	data, ok := h.emptyForm(w, r)
	if !ok {
		return formData{}, false
	}
	title := "Add Product"
	if id != "" {
		title = "Edit Product"
	}
	formutil.SetBase(&data.Base, r, title, "/products")

	data.ID = id
	data.Name = strings.TrimSpace(r.FormValue("name"))
	data.Category = r.FormValue("category")
	data.Price = strings.TrimSpace(r.FormValue("price"))
	data.OriginalPrice = strings.TrimSpace(r.FormValue("originalPrice"))
	data.Stock = strings.TrimSpace(r.FormValue("stock"))
	data.Description = strings.TrimSpace(r.FormValue("description"))
	data.Use = strings.TrimSpace(r.FormValue("use"))
	data.Benefits = strings.TrimSpace(r.FormValue("benefits"))
	data.ApplicationMethod = strings.TrimSpace(r.FormValue("applicationMethod"))
	data.Featured = r.FormValue("featured") != ""
	for _, s := range r.Form["sections"] {
		data.Selected[s] = true
	}
	return data, true
}

func (h *Handler) renderSaveError(w http.ResponseWriter, r *http.Request, data formData, err error) {
	h.Log.Error("save product failed", zap.Error(err))
	data.SetError("Unable to save the product. Please try again.")
	templates.Render(w, r, "product_form", data)
}

func validate(data formData) string {
	if !inputval.Required(data.Name) {
		return "Product name is required."
	}
	if !inputval.Required(data.Category) {
		return "Please choose a category."
	}
	if v, err := strconv.ParseFloat(data.Price, 64); err != nil || v <= 0 {
		return "Price must be a positive number."
	}
	if data.OriginalPrice != "" {
		if v, err := strconv.ParseFloat(data.OriginalPrice, 64); err != nil || v < 0 {
			return "Original price must be a number."
		}
	}
	if v, err := strconv.Atoi(data.Stock); err != nil || v < 0 {
		return "Stock must be zero or more."
	}
	if !inputval.Required(data.Description) {
		return "Description is required."
	}
	return ""
}

// fileField reads an optional uploaded file into a backend.FileField.
// A missing file is not an error; the backend keeps the existing image.
func fileField(r *http.Request, field string) (*backend.FileField, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &backend.FileField{
		Field:    field,
		Filename: header.Filename,
		Reader:   file,
	}, nil
}

func trimFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
