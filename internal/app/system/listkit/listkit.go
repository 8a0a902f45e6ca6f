// Package listkit provides the shared list controller pieces used by every
// paginated screen: page parsing, the pagination window, and canonical link
// building for page and filter URLs.
//
// All screens follow the same contract: page links preserve the active
// filters, while changing any filter drops the page param so the list lands
// back on page 1.
package listkit

import (
	"net/http"
	"net/url"
	"strconv"
)

// Item is one entry in a pagination window: either a page number or an
// ellipsis gap.
type Item struct {
	Page     int
	Ellipsis bool
}

// Window computes the page-number window for a pager with the given current
// page and total page count.
//
// Shapes:
//
//	total ≤ 5:        1 2 … total
//	current ≤ 3:      1 2 3 4 5 … total
//	current ≥ total-2: 1 … total-4 total-3 total-2 total-1 total
//	otherwise:        1 … current-1 current current+1 … total
func Window(current, total int) []Item {
	if total <= 0 {
		return nil
	}

	if total <= 5 {
		items := make([]Item, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, Item{Page: p})
		}
		return items
	}

	var items []Item
	switch {
	case current <= 3:
		for p := 1; p <= 5; p++ {
			items = append(items, Item{Page: p})
		}
		items = append(items, Item{Ellipsis: true}, Item{Page: total})

	case current >= total-2:
		items = append(items, Item{Page: 1}, Item{Ellipsis: true})
		for p := total - 4; p <= total; p++ {
			items = append(items, Item{Page: p})
		}

	default:
		items = append(items,
			Item{Page: 1},
			Item{Ellipsis: true},
			Item{Page: current - 1},
			Item{Page: current},
			Item{Page: current + 1},
			Item{Ellipsis: true},
			Item{Page: total},
		)
	}
	return items
}

// Pages returns the number of pages needed for totalItems at perPage per page.
func Pages(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

// ParsePage extracts the "page" query param, defaulting to 1 and clamping
// anything below 1.
func ParsePage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// Pagination is the view state handed to list templates.
type Pagination struct {
	Current int
	Total   int // total pages
	Count   int // total items
	From    int // 1-based index of first item shown
	To      int // 1-based index of last item shown
	Prev    int // Current-1, clamped to 1
	Next    int // Current+1, clamped to Total
	Window  []Item
}

// Paginate builds the Pagination view state for a list page.
//
// Current is kept as requested even past the last page, so the pager
// matches the (empty) rows that were actually fetched for it. Prev and
// Next always point at real pages.
func Paginate(current, totalItems, perPage int) Pagination {
	totalPages := Pages(totalItems, perPage)

	p := Pagination{
		Current: current,
		Total:   totalPages,
		Count:   totalItems,
		Prev:    current - 1,
		Next:    current + 1,
		Window:  Window(current, totalPages),
	}
	if p.Prev > totalPages {
		p.Prev = totalPages
	}
	if p.Prev < 1 {
		p.Prev = 1
	}
	if p.Next > totalPages {
		p.Next = totalPages
	}
	if totalItems > 0 {
		p.From = (current-1)*perPage + 1
		p.To = current * perPage
		if p.To > totalItems {
			p.To = totalItems
		}
		if p.From > totalItems {
			p.From, p.To = 0, 0
		}
	}
	return p
}

// Query builds canonical URLs for a list screen from the current request.
type Query struct {
	path   string
	values url.Values
}

// NewQuery captures the request's path and query for link building.
func NewQuery(r *http.Request) Query {
	v := url.Values{}
	for k, vals := range r.URL.Query() {
		for _, val := range vals {
			v.Add(k, val)
		}
	}
	return Query{path: r.URL.Path, values: v}
}

// PageURL returns the current URL with the page param set, preserving all
// filters. Page 1 is canonical without a page param.
func (q Query) PageURL(page int) string {
	v := cloneValues(q.values)
	if page <= 1 {
		v.Del("page")
	} else {
		v.Set("page", strconv.Itoa(page))
	}
	return encode(q.path, v)
}

// FilterURL returns the current URL with the given filter set and the page
// param dropped, so every filter change lands on page 1. Empty or "all"
// values remove the filter.
func (q Query) FilterURL(key, value string) string {
	v := cloneValues(q.values)
	v.Del("page")
	if value == "" || value == "all" {
		v.Del(key)
	} else {
		v.Set(key, value)
	}
	return encode(q.path, v)
}

func cloneValues(src url.Values) url.Values {
	dst := url.Values{}
	for k, vals := range src {
		for _, v := range vals {
			dst.Add(k, v)
		}
	}
	return dst
}

func encode(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
