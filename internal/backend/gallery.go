package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListGalleryCategories returns the gallery category list.
// GET /categories
func (c *Client) ListGalleryCategories(ctx context.Context, token string) ([]GalleryCategory, error) {
	var out struct {
		Categories []GalleryCategory `json:"categories"`
	}
	err := c.do(ctx, token, http.MethodGet, "/categories", nil, nil, &out)
	return out.Categories, err
}

// CreateGalleryCategory adds a gallery category.
// POST /categories
func (c *Client) CreateGalleryCategory(ctx context.Context, token, name string) error {
	return c.do(ctx, token, http.MethodPost, "/categories", nil, map[string]string{"name": name}, nil)
}

// UpdateGalleryCategory renames a gallery category.
// PUT /categories/{id}
func (c *Client) UpdateGalleryCategory(ctx context.Context, token, id, name string) error {
	return c.do(ctx, token, http.MethodPut, "/categories/"+id, nil, map[string]string{"name": name}, nil)
}

// DeleteGalleryCategory removes a gallery category.
// DELETE /categories/{id}
func (c *Client) DeleteGalleryCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/categories/"+id, nil, nil, nil)
}

// ListGalleryItems returns gallery items, optionally filtered by category
// and search term.
// GET /gallery-items
func (c *Client) ListGalleryItems(ctx context.Context, token, category, search string) ([]GalleryItem, error) {
	q := url.Values{}
	if category != "" && category != "all" {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("search", search)
	}
	var out struct {
		Items []GalleryItem `json:"items"`
	}
	err := c.do(ctx, token, http.MethodGet, "/gallery-items", q, nil, &out)
	return out.Items, err
}

// CreateGalleryItem records a gallery item pointing at an uploaded image.
// POST /gallery-items
func (c *Client) CreateGalleryItem(ctx context.Context, token, title, category, imageURL string) error {
	body := map[string]string{"title": title, "category": category, "image": imageURL}
	return c.do(ctx, token, http.MethodPost, "/gallery-items", nil, body, nil)
}

// UpdateGalleryItem edits a gallery item; empty imageURL keeps the current one.
// PUT /gallery-items/{id}
func (c *Client) UpdateGalleryItem(ctx context.Context, token, id, title, category, imageURL string) error {
	body := map[string]string{"title": title, "category": category}
	if imageURL != "" {
		body["image"] = imageURL
	}
	return c.do(ctx, token, http.MethodPut, "/gallery-items/"+id, nil, body, nil)
}

// DeleteGalleryItem removes a gallery item.
// DELETE /gallery-items/{id}
func (c *Client) DeleteGalleryItem(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/gallery-items/"+id, nil, nil, nil)
}

// Upload pushes an image to the backend's storage and returns its hosted URL.
// POST /upload (multipart)
func (c *Client) Upload(ctx context.Context, token string, file FileField) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.doMultipart(ctx, token, http.MethodPost, "/upload", nil, []FileField{file}, &out)
	return out.URL, err
}
