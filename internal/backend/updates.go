package backend

import (
	"context"
	"net/http"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Marquee                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// ListMarquees returns all marquee entries.
// GET /updates/marquee
func (c *Client) ListMarquees(ctx context.Context, token string) ([]Marquee, error) {
	var out struct {
		Marquees []Marquee `json:"marquees"`
	}
	err := c.do(ctx, token, http.MethodGet, "/updates/marquee", nil, nil, &out)
	return out.Marquees, err
}

// CreateMarquee adds a marquee line.
// POST /updates/marquee
func (c *Client) CreateMarquee(ctx context.Context, token, text string, active bool) error {
	body := map[string]any{"text": text, "active": active}
	return c.do(ctx, token, http.MethodPost, "/updates/marquee", nil, body, nil)
}

// UpdateMarquee edits a marquee line (text and/or active flag).
// PUT /updates/marquee/{id}
func (c *Client) UpdateMarquee(ctx context.Context, token, id, text string, active bool) error {
	body := map[string]any{"text": text, "active": active}
	return c.do(ctx, token, http.MethodPut, "/updates/marquee/"+id, nil, body, nil)
}

// DeleteMarquee removes a marquee line.
// DELETE /updates/marquee/{id}
func (c *Client) DeleteMarquee(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/updates/marquee/"+id, nil, nil, nil)
}

/*─────────────────────────────────────────────────────────────────────────────*
| News                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ListAllNews returns every news item including inactive ones (admin view).
// GET /updates/news/all
func (c *Client) ListAllNews(ctx context.Context, token string) ([]NewsItem, error) {
	var out struct {
		News []NewsItem `json:"news"`
	}
	err := c.do(ctx, token, http.MethodGet, "/updates/news/all", nil, nil, &out)
	return out.News, err
}

// CreateNews adds a news item with an optional image.
// POST /updates/news (multipart)
func (c *Client) CreateNews(ctx context.Context, token string, fields map[string]string, image *FileField) error {
	var files []FileField
	if image != nil {
		files = append(files, *image)
	}
	return c.doMultipart(ctx, token, http.MethodPost, "/updates/news", fields, files, nil)
}

// UpdateNews edits a news item; a nil image keeps the existing one.
// PUT /updates/news/{id} (multipart)
func (c *Client) UpdateNews(ctx context.Context, token, id string, fields map[string]string, image *FileField) error {
	var files []FileField
	if image != nil {
		files = append(files, *image)
	}
	return c.doMultipart(ctx, token, http.MethodPut, "/updates/news/"+id, fields, files, nil)
}

// DeleteNews removes a news item.
// DELETE /updates/news/{id}
func (c *Client) DeleteNews(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/updates/news/"+id, nil, nil, nil)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Videos                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// ListAllVideos returns every video including inactive ones (admin view).
// GET /updates/videos/all
func (c *Client) ListAllVideos(ctx context.Context, token string) ([]Video, error) {
	var out struct {
		Videos []Video `json:"videos"`
	}
	err := c.do(ctx, token, http.MethodGet, "/updates/videos/all", nil, nil, &out)
	return out.Videos, err
}

// CreateVideo adds a video link.
// POST /updates/videos
func (c *Client) CreateVideo(ctx context.Context, token string, v Video) error {
	return c.do(ctx, token, http.MethodPost, "/updates/videos", nil, v, nil)
}

// UpdateVideo edits a video link.
// PUT /updates/videos/{id}
func (c *Client) UpdateVideo(ctx context.Context, token, id string, v Video) error {
	return c.do(ctx, token, http.MethodPut, "/updates/videos/"+id, nil, v, nil)
}

// DeleteVideo removes a video link.
// DELETE /updates/videos/{id}
func (c *Client) DeleteVideo(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/updates/videos/"+id, nil, nil, nil)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Newsletter subscribers & settings                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// ListNewsletters returns all newsletter subscribers.
// GET /updates/newsletters
func (c *Client) ListNewsletters(ctx context.Context, token string) ([]Newsletter, error) {
	var out struct {
		Newsletters []Newsletter `json:"newsletters"`
	}
	err := c.do(ctx, token, http.MethodGet, "/updates/newsletters", nil, nil, &out)
	return out.Newsletters, err
}

// UpdateNewsletter changes a subscriber's status (active/inactive).
// PUT /updates/newsletters/{id}
func (c *Client) UpdateNewsletter(ctx context.Context, token, id, status string) error {
	return c.do(ctx, token, http.MethodPut, "/updates/newsletters/"+id, nil, map[string]string{"status": status}, nil)
}

// DeleteNewsletter removes a subscriber.
// DELETE /updates/newsletters/{id}
func (c *Client) DeleteNewsletter(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/updates/newsletters/"+id, nil, nil, nil)
}

// NewsletterSettings fetches the welcome-message settings.
// GET /updates/newsletter-settings
func (c *Client) GetNewsletterSettings(ctx context.Context, token string) (NewsletterSettings, error) {
	var out struct {
		Settings NewsletterSettings `json:"settings"`
	}
	err := c.do(ctx, token, http.MethodGet, "/updates/newsletter-settings", nil, nil, &out)
	return out.Settings, err
}

// PutNewsletterSettings stores the welcome-message settings.
// PUT /updates/newsletter-settings
func (c *Client) PutNewsletterSettings(ctx context.Context, token string, s NewsletterSettings) error {
	return c.do(ctx, token, http.MethodPut, "/updates/newsletter-settings", nil, s, nil)
}
