// internal/app/features/settings/handler.go
package settings

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

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

type pageData struct {
	viewdata.BaseVM

	Tab string

	Username string
	Email    string

	Notice        string
	ProfileError  string
	PasswordError string
}

// ServePage handles GET /settings with ?tab=profile|security.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	token := h.SessionMgr.Token(r)

	tab := query.Get(r, "tab")
	if tab != "security" {
		tab = "profile"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Backend.Profile(ctx, token)
	if err != nil {
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "load profile failed", err, "Unable to load your profile.", "/settings")
		return
	}

	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, "Settings", "/settings"),
		Tab:      tab,
		Username: admin.Username,
		Email:    admin.Email,
	}
	switch query.Get(r, "saved") {
	case "profile":
		data.Notice = "Profile updated."
	case "password":
		data.Notice = "Password changed."
	}

	templates.Render(w, r, "settings_page", data)
}

// HandleProfileSave handles POST /settings/profile. On success the
// session's cached admin identity is refreshed from the backend's
// response.
func (h *Handler) HandleProfileSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/settings")
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")

	if msg := validateProfile(username, email); msg != "" {
		h.renderProfileError(w, r, username, email, msg)
		return
	}

	token := h.SessionMgr.Token(r)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Backend.UpdateProfile(ctx, token, username, email)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 && !errors.Is(err, backend.ErrUnauthorized) {
			h.renderProfileError(w, r, username, email, apiErr.Message)
			return
		}
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "update profile failed", err, "Unable to update your profile.", "/settings")
		return
	}

	if err := h.SessionMgr.Login(w, r, auth.SessionUser{Username: updated.Username, Email: updated.Email}, token); err != nil {
		h.Log.Warn("refresh session user failed", zap.Error(err))
	}

	h.Log.Info("profile updated", zap.String("username", updated.Username))
	http.Redirect(w, r, "/settings?saved=profile", http.StatusSeeOther)
}

// HandleChangePassword handles POST /settings/password.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/settings")
		return
	}

	current := r.FormValue("current_password")
	next := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	if msg := validatePasswordChange(current, next, confirm); msg != "" {
		h.renderSecurityError(w, r, msg)
		return
	}

	token := h.SessionMgr.Token(r)
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.ChangePassword(ctx, token, current, next); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 && !errors.Is(err, backend.ErrUnauthorized) {
			msg := apiErr.Message
			if msg == "" {
				msg = "Current password is incorrect."
			}
			h.renderSecurityError(w, r, msg)
			return
		}
		h.ErrLog.HandleBackendError(w, r, h.SessionMgr, "change password failed", err, "Unable to change your password.", "/settings?tab=security")
		return
	}

	h.Log.Info("password changed")
	http.Redirect(w, r, "/settings?tab=security&saved=password", http.StatusSeeOther)
}

// renderProfileError re-renders the profile tab echoing the submitted
// values.
func (h *Handler) renderProfileError(w http.ResponseWriter, r *http.Request, username, email, msg string) {
	data := pageData{
		BaseVM:       viewdata.NewBaseVM(r, "Settings", "/settings"),
		Tab:          "profile",
		Username:     username,
		Email:        email,
		ProfileError: msg,
	}
	templates.Render(w, r, "settings_page", data)
}

// renderSecurityError re-renders the security tab. The profile fields
// fall back to the session's cached identity.
func (h *Handler) renderSecurityError(w http.ResponseWriter, r *http.Request, msg string) {
	data := pageData{
		BaseVM:        viewdata.NewBaseVM(r, "Settings", "/settings"),
		Tab:           "security",
		PasswordError: msg,
	}
	if u, ok := auth.CurrentUser(r); ok {
		data.Username = u.Username
		data.Email = u.Email
	}
	templates.Render(w, r, "settings_page", data)
}

func validateProfile(username, email string) string {
	if !inputval.ValidAdminName(username) {
		return "Username must be at least 2 characters."
	}
	if !inputval.IsValidEmail(email) {
		return "Enter a valid email address."
	}
	return ""
}

func validatePasswordChange(current, next, confirm string) string {
	if current == "" {
		return "Current password is required."
	}
	if !inputval.ValidNewPassword(next) {
		return "New password must be at least 8 characters."
	}
	if next != confirm {
		return "New passwords do not match."
	}
	return ""
}
