package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListMessagesParams narrows a message list request.
type ListMessagesParams struct {
	Page        int
	Limit       int
	Search      string
	Status      string
	Category    string
	Starred     bool
	Testimonial bool
}

// MessagePage is one page of messages plus the server-side stats summary.
type MessagePage struct {
	Messages []Message
	Total    int
	Stats    MessageStats
}

// ListMessages fetches a page of contact messages.
// GET /messages
func (c *Client) ListMessages(ctx context.Context, token string, p ListMessagesParams) (MessagePage, error) {
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
	if p.Status != "" && p.Status != "all" {
		q.Set("status", p.Status)
	}
	if p.Category != "" && p.Category != "all" {
		q.Set("category", p.Category)
	}
	if p.Starred {
		q.Set("starred", "true")
	}
	if p.Testimonial {
		q.Set("testimonial", "true")
	}

	var out struct {
		Messages []Message    `json:"messages"`
		Total    int          `json:"total"`
		Stats    MessageStats `json:"stats"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/messages", q, nil, &out); err != nil {
		return MessagePage{}, err
	}
	return MessagePage{Messages: out.Messages, Total: out.Total, Stats: out.Stats}, nil
}

// UpdateMessage patches message fields (status, starred) and returns the
// updated record.
// PUT /messages/{id}
func (c *Client) UpdateMessage(ctx context.Context, token, id string, fields map[string]any) (Message, error) {
	var out struct {
		Message Message `json:"message"`
	}
	err := c.do(ctx, token, http.MethodPut, "/messages/"+id, nil, fields, &out)
	return out.Message, err
}

// MarkMessageRead marks a message read (used on expand).
func (c *Client) MarkMessageRead(ctx context.Context, token, id string) (Message, error) {
	return c.UpdateMessage(ctx, token, id, map[string]any{"status": "read"})
}

// ToggleMessageStar flips the star flag to the given state.
func (c *Client) ToggleMessageStar(ctx context.Context, token, id string, starred bool) (Message, error) {
	return c.UpdateMessage(ctx, token, id, map[string]any{"starred": starred})
}

// ListTestimonials returns all published testimonials.
// GET /testimonials
func (c *Client) ListTestimonials(ctx context.Context, token string) ([]Testimonial, error) {
	var out struct {
		Testimonials []Testimonial `json:"testimonials"`
	}
	err := c.do(ctx, token, http.MethodGet, "/testimonials", nil, nil, &out)
	return out.Testimonials, err
}

// AddTestimonial publishes a message as a testimonial.
// POST /testimonials
func (c *Client) AddTestimonial(ctx context.Context, token, messageID string) error {
	body := map[string]string{"messageId": messageID}
	return c.do(ctx, token, http.MethodPost, "/testimonials", nil, body, nil)
}

// RemoveTestimonialByMessage retracts the testimonial created from a message.
// DELETE /testimonials/bymsg/{messageID}
func (c *Client) RemoveTestimonialByMessage(ctx context.Context, token, messageID string) error {
	return c.do(ctx, token, http.MethodDelete, "/testimonials/bymsg/"+messageID, nil, nil, nil)
}
