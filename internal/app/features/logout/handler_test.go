package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/features/logout"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
)

const testSessionKey = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testSessionKey, "agriadmin_test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

func TestServeLogout_ClearsSessionAndRedirects(t *testing.T) {
	sm := newManager(t)
	handler := logout.NewHandler(sm, zap.NewNop())

	// Establish a signed-in session first.
	loginRec := httptest.NewRecorder()
	loginReq := httptest.NewRequest("POST", "/login", nil)
	if err := sm.Login(loginRec, loginReq, auth.SessionUser{Username: "admin"}, "tok-1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no cookie")
	}

	req := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie was not expired")
	}
}

func TestServeLogout_HTMXRedirect(t *testing.T) {
	sm := newManager(t)
	handler := logout.NewHandler(sm, zap.NewNop())

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/login" {
		t.Errorf("HX-Redirect = %q, want /login", got)
	}
}
