// internal/app/features/errors/logger.go
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

// ErrorLogger logs handler failures and renders the matching error page.
// Feature handlers hold one as h.ErrLog.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger backed by the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at error level and renders a 500 page with
// userMsg. backURL may be empty to fall back to the dashboard.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	renderErrorPage(w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	renderErrorPage(w, r, http.StatusBadRequest, userMsg, backURL)
}

// HandleBackendError deals with a failed backend call. An unauthorized
// result means the stored token is stale, so the session is cleared and
// the admin is sent back to the sign-in page. Anything else is a server
// error page.
func (e *ErrorLogger) HandleBackendError(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, logMsg string, err error, userMsg, backURL string) {
	if stderrors.Is(err, backend.ErrUnauthorized) {
		e.log.Info("backend rejected session token, signing out",
			zap.String("path", r.URL.Path),
		)
		sm.Logout(w, r)
		if r.Header.Get("HX-Request") != "" {
			w.Header().Set("HX-Redirect", "/login")
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	e.LogServerError(w, r, logMsg, err, userMsg, backURL)
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, status int, userMsg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	if userMsg == "" {
		userMsg = "Something went wrong. Please try again."
	}
	w.WriteHeader(status)
	data := newPageData(r, "Something went wrong", userMsg, backURL)
	templates.Render(w, r, "error_page", data)
}
