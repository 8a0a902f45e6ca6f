package backend

import (
	"context"
	"net/http"
)

// LoginResult is the payload returned by a successful admin login.
type LoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// Login exchanges credentials for a backend token.
// POST /admin/login
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	err := c.do(ctx, "", http.MethodPost, "/admin/login", nil, body, &out)
	return out, err
}

// Register creates a new admin account.
// POST /admin/register
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, "", http.MethodPost, "/admin/register", nil, body, nil)
}

// Profile fetches the signed-in admin.
// GET /admin/profile
func (c *Client) Profile(ctx context.Context, token string) (Admin, error) {
	var out struct {
		Admin Admin `json:"admin"`
	}
	err := c.do(ctx, token, http.MethodGet, "/admin/profile", nil, nil, &out)
	return out.Admin, err
}

// UpdateProfile changes the admin's username and/or email.
// PATCH /admin/profile
func (c *Client) UpdateProfile(ctx context.Context, token, username, email string) (Admin, error) {
	body := map[string]string{"username": username, "email": email}
	var out struct {
		Admin Admin `json:"admin"`
	}
	err := c.do(ctx, token, http.MethodPatch, "/admin/profile", nil, body, &out)
	return out.Admin, err
}

// ChangePassword rotates the admin password.
// POST /admin/change-password
func (c *Client) ChangePassword(ctx context.Context, token, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.do(ctx, token, http.MethodPost, "/admin/change-password", nil, body, nil)
}
