package appointments_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krishivishwa/agriadmin/internal/app/features/appointments"
	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const testSessionKey = "0123456789abcdef0123456789abcdef"

func newTestHandler(t *testing.T, backendURL string) *appointments.Handler {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager(testSessionKey, "agriadmin_test", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return appointments.NewHandler(backend.New(backendURL, logger), sm, uierrors.NewErrorLogger(logger), logger)
}

func postForm(t *testing.T, handler http.HandlerFunc, path, id string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSetStatus_SendsBackendUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/appointments/a1" {
			t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var fields map[string]string
		if err := json.Unmarshal(body, &fields); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if fields["status"] != "confirmed" {
			t.Errorf("status = %q, want confirmed", fields["status"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"appointment":{"_id":"a1","name":"Sunita","status":"confirmed","paymentStatus":"pending"}}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	rec := postForm(t, handler.HandleSetStatus, "/appointments/a1/status", "a1", url.Values{"status": {"confirmed"}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/appointments" {
		t.Errorf("Location = %q", loc)
	}
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)

	func() {
		defer func() { recover() }()
		postForm(t, handler.HandleSetStatus, "/appointments/a1/status", "a1", url.Values{"status": {"shipped"}})
	}()

	if n := hits.Load(); n != 0 {
		t.Errorf("backend was called %d times for an unknown status", n)
	}
}

func TestTogglePayment_FlipsState(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"paid", "pending"},
		{"pending", "paid"},
		{"", "paid"},
	}
	for _, tt := range tests {
		t.Run(tt.current+"_to_"+tt.want, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				var fields map[string]string
				json.Unmarshal(body, &fields)
				if fields["paymentStatus"] != tt.want {
					t.Errorf("paymentStatus = %q, want %q", fields["paymentStatus"], tt.want)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"appointment":{"_id":"a1","paymentStatus":"` + tt.want + `"}}`))
			}))
			defer srv.Close()

			handler := newTestHandler(t, srv.URL)
			rec := postForm(t, handler.HandleTogglePayment, "/appointments/a1/payment", "a1", url.Values{"current": {tt.current}})

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", rec.Code)
			}
		})
	}
}
