// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/app/system/inputval"
	"github.com/krishivishwa/agriadmin/internal/app/system/ratelimit"
	"github.com/krishivishwa/agriadmin/internal/app/system/timeouts"
	"github.com/krishivishwa/agriadmin/internal/app/system/viewdata"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

type Handler struct {
	Backend    *backend.Client
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Limiter    *ratelimit.LoginLimiter
}

func NewHandler(client *backend.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend:    client,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Limiter:    ratelimit.NewLoginLimiter(),
	}
}

// formData drives the sign-in page, which carries both the login form and
// the register form as tabs.
type formData struct {
	viewdata.BaseVM
	ActiveTab string // "login" or "register"
	Notice    string

	Error     string
	Email     string
	ReturnURL string

	RegisterError    string
	RegisterUsername string
	RegisterEmail    string
}

// ServeLogin handles GET /login. Signed-in admins are sent straight to the
// dashboard.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", formData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ActiveTab: "login",
		ReturnURL: query.Get(r, "return"),
	})
}

// HandleLoginPost handles POST /login.
//
// Both fields are validated locally before the backend is contacted, so a
// malformed email or short password never costs a round trip.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	if !inputval.IsValidEmail(email) {
		h.renderLoginError(w, r, "Please enter a valid email address.", email, ret)
		return
	}
	if !inputval.ValidLoginPassword(password) {
		h.renderLoginError(w, r, "Password must be at least 6 characters.", email, ret)
		return
	}

	if allowed, reason := h.Limiter.Check(r, email); !allowed {
		h.Log.Warn("login rate limited", zap.String("ip", ratelimit.ClientIP(r)))
		h.renderLoginError(w, r, reason, email, ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Backend.Login(ctx, email, password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 {
			msg := apiErr.Message
			if msg == "" {
				msg = "Invalid email or password."
			}
			h.renderLoginError(w, r, msg, email, ret)
			return
		}
		h.ErrLog.LogServerError(w, r, "backend login failed", err, "Unable to sign in right now. Please try again.", "/login")
		return
	}

	user := auth.SessionUser{
		Username: res.Admin.Username,
		Email:    res.Admin.Email,
	}
	if err := h.SessionMgr.Login(w, r, user, res.Token); err != nil {
		h.ErrLog.LogServerError(w, r, "create session failed", err, "Unable to sign in right now. Please try again.", "/login")
		return
	}

	h.Limiter.ResetEmail(email)
	h.Log.Info("admin signed in", zap.String("email", email))
	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/"), http.StatusSeeOther)
}

// HandleRegisterPost handles POST /login/register.
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if !inputval.ValidAdminName(username) {
		h.renderRegisterError(w, r, "Username must be at least 2 characters.", username, email)
		return
	}
	if !inputval.IsValidEmail(email) {
		h.renderRegisterError(w, r, "Please enter a valid email address.", username, email)
		return
	}
	if !inputval.ValidLoginPassword(password) {
		h.renderRegisterError(w, r, "Password must be at least 6 characters.", username, email)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Backend.Register(ctx, username, email, password); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 {
			msg := apiErr.Message
			if msg == "" {
				msg = "Unable to create the account."
			}
			h.renderRegisterError(w, r, msg, username, email)
			return
		}
		h.ErrLog.LogServerError(w, r, "backend register failed", err, "Unable to create the account right now.", "/login")
		return
	}

	h.Log.Info("admin account created", zap.String("email", email))
	templates.Render(w, r, "login", formData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ActiveTab: "login",
		Notice:    "Account created. Please sign in.",
		Email:     email,
	})
}

func (h *Handler) renderLoginError(w http.ResponseWriter, r *http.Request, msg, email, ret string) {
	templates.Render(w, r, "login", formData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ActiveTab: "login",
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}

func (h *Handler) renderRegisterError(w http.ResponseWriter, r *http.Request, msg, username, email string) {
	templates.Render(w, r, "login", formData{
		BaseVM:           viewdata.NewBaseVM(r, "Login", "/"),
		ActiveTab:        "register",
		RegisterError:    msg,
		RegisterUsername: username,
		RegisterEmail:    email,
	})
}
