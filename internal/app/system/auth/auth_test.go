package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"go.uber.org/zap"
)

const testKey = "0123456789ABCDEF0123456789ABCDEF"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	m, err := auth.NewSessionManager(testKey, "agriadmin-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return m
}

// login performs Login and returns the cookies it set.
func login(t *testing.T, m *auth.SessionManager) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", nil)
	rec := httptest.NewRecorder()
	err := m.Login(rec, req, auth.SessionUser{Username: "admin", Email: "admin@krishivishwa.com"}, "tok-123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Login set no cookies")
	}
	return cookies
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}

func TestLoginThenRestore(t *testing.T) {
	m := newManager(t)
	cookies := login(t, m)

	// A later request carrying the cookie should restore the user.
	var got *auth.SessionUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	m.LoadSessionUser(next).ServeHTTP(rec, req)

	if got == nil {
		t.Fatal("expected session user in context after restore")
	}
	if got.Username != "admin" || got.Email != "admin@krishivishwa.com" {
		t.Errorf("restored user = %+v", got)
	}
	if tok := m.Token(req); tok != "tok-123" {
		t.Errorf("Token = %q, want tok-123", tok)
	}
}

func TestRequireSignedIn_Redirects(t *testing.T) {
	m := newManager(t)
	guarded := m.LoadSessionUser(m.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantHeader string // header to inspect, empty = Location
		wantValue  string
	}{
		{
			name:       "html request redirects to login",
			headers:    map[string]string{"Accept": "text/html"},
			wantStatus: http.StatusSeeOther,
			wantValue:  "/login?return=%2Fproducts%3Fpage%3D2",
		},
		{
			name:       "htmx request gets HX-Redirect",
			headers:    map[string]string{"HX-Request": "true"},
			wantStatus: http.StatusUnauthorized,
			wantHeader: "HX-Redirect",
			wantValue:  "/login?return=%2Fproducts%3Fpage%3D2",
		},
		{
			name:       "api request gets plain 401",
			headers:    map[string]string{"Accept": "application/json"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/products?page=2", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantValue != "" {
				header := tt.wantHeader
				if header == "" {
					header = "Location"
				}
				if got := rec.Header().Get(header); got != tt.wantValue {
					t.Errorf("%s = %q, want %q", header, got, tt.wantValue)
				}
			}
		})
	}
}

func TestLogout_ReGuardsRoutes(t *testing.T) {
	m := newManager(t)
	cookies := login(t, m)

	// Logout with the session cookie.
	req := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	m.Logout(rec, req)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "agriadmin-session" {
			cleared = c
		}
	}
	if cleared == nil {
		t.Fatal("Logout did not rewrite the session cookie")
	}
	if cleared.MaxAge != -1 {
		t.Errorf("cleared cookie MaxAge = %d, want -1", cleared.MaxAge)
	}

	// A request carrying only the cleared cookie must hit the guard.
	guarded := m.LoadSessionUser(m.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	req2 := httptest.NewRequest("GET", "/", nil)
	req2.Header.Set("Accept", "text/html")
	req2.AddCookie(cleared)
	rec2 := httptest.NewRecorder()
	guarded.ServeHTTP(rec2, req2)

	if rec2.Code != http.StatusSeeOther {
		t.Errorf("status after logout = %d, want %d", rec2.Code, http.StatusSeeOther)
	}
}

func TestToken_NotAuthenticated(t *testing.T) {
	m := newManager(t)
	req := httptest.NewRequest("GET", "/", nil)
	if tok := m.Token(req); tok != "" {
		t.Errorf("Token without session = %q, want empty", tok)
	}
}
