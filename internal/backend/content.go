package backend

import (
	"context"
	"net/http"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Hero banners                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ListBanners returns every hero banner across site pages.
// GET /banners
func (c *Client) ListBanners(ctx context.Context, token string) ([]Banner, error) {
	var out struct {
		Banners []Banner `json:"banners"`
	}
	err := c.do(ctx, token, http.MethodGet, "/banners", nil, nil, &out)
	return out.Banners, err
}

// CreateBanner creates a hero banner with its image.
// POST /banners (multipart)
func (c *Client) CreateBanner(ctx context.Context, token string, fields map[string]string, image *FileField) error {
	var files []FileField
	if image != nil {
		files = append(files, *image)
	}
	return c.doMultipart(ctx, token, http.MethodPost, "/banners", fields, files, nil)
}

// UpdateBanner edits a hero banner; a nil image keeps the existing one.
// PUT /banners/{id} (multipart)
func (c *Client) UpdateBanner(ctx context.Context, token, id string, fields map[string]string, image *FileField) error {
	var files []FileField
	if image != nil {
		files = append(files, *image)
	}
	return c.doMultipart(ctx, token, http.MethodPut, "/banners/"+id, fields, files, nil)
}

// ToggleBanner flips a banner's active flag and returns the updated record.
// PUT /banners/{id}/toggle
func (c *Client) ToggleBanner(ctx context.Context, token, id string) (Banner, error) {
	var out struct {
		Banner Banner `json:"banner"`
	}
	err := c.do(ctx, token, http.MethodPut, "/banners/"+id+"/toggle", nil, nil, &out)
	return out.Banner, err
}

// DeleteBanner removes a hero banner.
// DELETE /banners/{id}
func (c *Client) DeleteBanner(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/banners/"+id, nil, nil, nil)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Timeline milestones                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// ListTimeline returns every timeline milestone.
// GET /timeline
func (c *Client) ListTimeline(ctx context.Context, token string) ([]TimelineItem, error) {
	var out struct {
		Timeline []TimelineItem `json:"timeline"`
	}
	err := c.do(ctx, token, http.MethodGet, "/timeline", nil, nil, &out)
	return out.Timeline, err
}

// CreateTimelineItem adds a milestone.
// POST /timeline
func (c *Client) CreateTimelineItem(ctx context.Context, token string, item TimelineItem) error {
	return c.do(ctx, token, http.MethodPost, "/timeline", nil, item, nil)
}

// UpdateTimelineItem edits a milestone.
// PUT /timeline/{id}
func (c *Client) UpdateTimelineItem(ctx context.Context, token, id string, item TimelineItem) error {
	return c.do(ctx, token, http.MethodPut, "/timeline/"+id, nil, item, nil)
}

// DeleteTimelineItem removes a milestone.
// DELETE /timeline/{id}
func (c *Client) DeleteTimelineItem(ctx context.Context, token, id string) error {
	return c.do(ctx, token, http.MethodDelete, "/timeline/"+id, nil, nil, nil)
}
