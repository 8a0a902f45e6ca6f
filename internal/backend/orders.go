package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListOrdersParams narrows an order list request. Zero values are omitted
// from the query so the backend applies its own defaults.
type ListOrdersParams struct {
	Page      int
	Limit     int
	Status    string
	Year      string
	SortBy    string
	SortOrder string
}

// OrderPage is one page of orders plus the backend's pagination envelope.
type OrderPage struct {
	Orders      []Order
	TotalPages  int
	TotalOrders int
}

// ListOrders fetches a page of orders.
// GET /orders
func (c *Client) ListOrders(ctx context.Context, token string, p ListOrdersParams) (OrderPage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" && p.Status != "all" {
		q.Set("status", p.Status)
	}
	if p.Year != "" && p.Year != "all" {
		q.Set("year", p.Year)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}

	var out struct {
		Orders     []Order `json:"orders"`
		Pagination struct {
			TotalPages  int `json:"totalPages"`
			TotalOrders int `json:"totalOrders"`
		} `json:"pagination"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/orders", q, nil, &out); err != nil {
		return OrderPage{}, err
	}
	return OrderPage{
		Orders:      out.Orders,
		TotalPages:  out.Pagination.TotalPages,
		TotalOrders: out.Pagination.TotalOrders,
	}, nil
}

// GetOrder fetches a single order.
// GET /orders/{id}
func (c *Client) GetOrder(ctx context.Context, token, id string) (Order, error) {
	var out struct {
		Order Order `json:"order"`
	}
	err := c.do(ctx, token, http.MethodGet, "/orders/"+id, nil, nil, &out)
	return out.Order, err
}

// ToggleOrderStatus flips an order between pending and delivered. The backend
// records adminName in the order's status history; the caller re-renders only
// from the response (confirm-then-update).
// PATCH /orders/toggle-status/{id}
func (c *Client) ToggleOrderStatus(ctx context.Context, token, id, adminName string) (Order, error) {
	body := map[string]string{"adminName": adminName}
	var out struct {
		Order Order `json:"order"`
	}
	err := c.do(ctx, token, http.MethodPatch, "/orders/toggle-status/"+id, nil, body, &out)
	return out.Order, err
}
