package messages_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/features/messages"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const testSessionKey = "0123456789abcdef0123456789abcdef"

func newTestHandler(t *testing.T, backendURL string) *messages.Handler {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager(testSessionKey, "agriadmin_test", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return messages.NewHandler(backend.New(backendURL, logger), sm, uierrors.NewErrorLogger(logger), logger)
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

func TestMarkRead_SendsStatusUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/messages/m1" {
			t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if fields["status"] != "read" {
			t.Errorf("status = %v, want read", fields["status"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":{"_id":"m1","name":"Anita","status":"read"}}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	rec := postForm(t, handler.HandleMarkRead, "/messages/m1/read", "m1", url.Values{})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/messages" {
		t.Errorf("Location = %q", loc)
	}
}

func TestToggleStar_FlipsShownState(t *testing.T) {
	tests := []struct {
		current string
		want    bool
	}{
		{"true", false},
		{"false", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run("current_"+tt.current, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				var fields map[string]any
				json.Unmarshal(body, &fields)
				got, ok := fields["starred"].(bool)
				if !ok || got != tt.want {
					t.Errorf("starred = %v, want %v", fields["starred"], tt.want)
				}
				w.Header().Set("Content-Type", "application/json")
				if tt.want {
					w.Write([]byte(`{"message":{"_id":"m1","starred":true}}`))
				} else {
					w.Write([]byte(`{"message":{"_id":"m1","starred":false}}`))
				}
			}))
			defer srv.Close()

			handler := newTestHandler(t, srv.URL)
			rec := postForm(t, handler.HandleToggleStar, "/messages/m1/star", "m1", url.Values{"current": {tt.current}})

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", rec.Code)
			}
		})
	}
}

func TestAddTestimonial_PostsMessageID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/testimonials" {
			t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var fields map[string]string
		json.Unmarshal(body, &fields)
		if fields["messageId"] != "m7" {
			t.Errorf("messageId = %q, want m7", fields["messageId"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	rec := postForm(t, handler.HandleAddTestimonial, "/messages/m7/testimonial", "m7",
		url.Values{"return": {"/messages?page=2"}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/messages?page=2" {
		t.Errorf("Location = %q", loc)
	}
}

func TestRemoveTestimonial_CallsBackend(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	rec := postForm(t, handler.HandleRemoveTestimonial, "/messages/m7/testimonial/remove", "m7", url.Values{})

	if gotPath != "DELETE /testimonials/bymsg/m7" {
		t.Errorf("backend call = %q", gotPath)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
}
