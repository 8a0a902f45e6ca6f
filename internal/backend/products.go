package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListProductsParams narrows a product list request.
type ListProductsParams struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Section  string
}

// ProductPage is one page of products.
type ProductPage struct {
	Products []Product
	Total    int
}

// ListProducts fetches a page of products.
// GET /products
func (c *Client) ListProducts(ctx context.Context, token string, p ListProductsParams) (ProductPage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" && p.Category != "all" {
		q.Set("category", p.Category)
	}
	if p.Section != "" && p.Section != "all" {
		q.Set("section", p.Section)
	}

	var out struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/products", q, nil, &out); err != nil {
		return ProductPage{}, err
	}
	return ProductPage{Products: out.Products, Total: out.Total}, nil
}

// GetProduct fetches a single product.
// GET /products/{id}
func (c *Client) GetProduct(ctx context.Context, token, id string) (Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	err := c.do(ctx, token, http.MethodGet, "/products/"+id, nil, nil, &out)
	return out.Product, err
}

// CreateProduct creates a product from form fields plus an optional image.
// POST /products (multipart)
func (c *Client) CreateProduct(ctx context.Context, token string, fields map[string]string, image *FileField) (Product, error) {
	var files []FileField
	if image != nil {
		files = append(files, *image)
	}
	var out struct {
		Product Product `json:"product"`
	}
	err := c.doMultipart(ctx, token, http.MethodPost, "/products", fields, files, &out)
	return out.Product, err
}

// UpdateProduct updates a product; a nil image keeps the existing one.
// PUT /products/{id} (multipart)
func (c *Client) UpdateProduct(ctx context.Context, token, id string, fields map[string]string, image *FileField) (Product, error) {
	var files []FileField
	if image != nil {
		files = append(files, *image)
	}
	var out struct {
		Product Product `json:"product"`
	}
	err := c.doMultipart(ctx, token, http.MethodPut, "/products/"+id, fields, files, &out)
	return out.Product, err
}

// DeleteProduct removes a product.
// DELETE /products/{id}
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/products/"+id, nil, nil, nil)
}

// ListProductCategories returns every product category.
// GET /product-categories
func (c *Client) ListProductCategories(ctx context.Context, token string) ([]ProductCategory, error) {
	var out struct {
		Categories []ProductCategory `json:"categories"`
	}
	err := c.do(ctx, token, http.MethodGet, "/product-categories", nil, nil, &out)
	return out.Categories, err
}

// CreateProductCategory adds a category with a display color.
// POST /product-categories
func (c *Client) CreateProductCategory(ctx context.Context, token, name, color string) error {
	body := map[string]string{"name": name, "color": color}
	return c.do(ctx, token, http.MethodPost, "/product-categories", nil, body, nil)
}

// UpdateProductCategory renames/recolors a category.
// PUT /product-categories/{id}
func (c *Client) UpdateProductCategory(ctx context.Context, token, id, name, color string) error {
	body := map[string]string{"name": name, "color": color}
	return c.do(ctx, token, http.MethodPut, "/product-categories/"+id, nil, body, nil)
}

// DeleteProductCategory removes a category.
// DELETE /product-categories/{id}
func (c *Client) DeleteProductCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/product-categories/"+id, nil, nil, nil)
}
