// internal/app/features/products/handler.go
package products

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/listkit"
	"github.com/krishivishwa/agriadmin/internal/app/system/sharelink"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const productsPerPage = 8

// Sections a product can be pinned to on the storefront.
var sections = []string{"new-arrivals", "best-sellers", "top-rated"}

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

// productRow is one rendered card/line of the products grid.
type productRow struct {
	ID       string
	Name     string
	Category string
	Price    string
	Original string
	Stock    int
	Image    string
	Featured bool
	Sections []string
}

type listData struct {
	viewdata.BaseVM

	Tab      string // "products" or "categories"
	Search   string
	Category string
	Section  string
	Sections []string

	Rows       []productRow
	Pagination listkit.Pagination
	Query      listkit.Query

	Categories []backend.ProductCategory
}

// ServeList handles GET /products (with optional ?q=, ?category=, ?section=,
// ?tab=). Supports HTMX partial refresh of the grid when
// HX-Target="products-table-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	tab := query.Get(r, "tab")
	if tab != "categories" {
		tab = "products"
	}
	page := listkit.ParsePage(r)
	search := query.Search(r, "q")
	category := query.Get(r, "category")
	section := query.Get(r, "section")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	productPage, err := h.Backend.ListProducts(ctx, token, backend.ListProductsParams{
		Page:     page,
		Limit:    productsPerPage,
		Search:   search,
		Category: category,
		Section:  section,
	})
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list products failed", err, "Unable to load products.", "/products")
		return
	}

	categories, err := h.Backend.ListProductCategories(ctx, token)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "list product categories failed", err, "Unable to load categories.", "/products")
		return
	}

	rows := make([]productRow, 0, len(productPage.Products))
	for _, p := range productPage.Products {
		rows = append(rows, productRow{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    sharelink.FormatINR(p.Price),
			Original: sharelink.FormatINR(p.OriginalPrice),
			Stock:    p.Stock,
			Image:    p.Image,
			Featured: p.Featured,
			Sections: p.Sections,
		})
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "Products", "/products"),
		Tab:        tab,
		Search:     search,
		Category:   category,
		Section:    section,
		Sections:   sections,
		Rows:       rows,
		Pagination: listkit.Paginate(page, productPage.Total, productsPerPage),
		Query:      listkit.NewQuery(r),
		Categories: categories,
	}

	// HTMX partial: just the grid
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "products-table-wrap" {
		templates.RenderSnippet(w, "products_table", data)
		return
	}

	templates.Render(w, r, "products_list", data)
}
