package gallery_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/krishivishwa/agriadmin/internal/app/features/errors"
	"github.com/krishivishwa/agriadmin/internal/app/features/gallery"
	"github.com/krishivishwa/agriadmin/internal/app/system/auth"
	"github.com/krishivishwa/agriadmin/internal/backend"
)

const testSessionKey = "0123456789abcdef0123456789abcdef"

func newTestHandler(t *testing.T, backendURL string) *gallery.Handler {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager(testSessionKey, "agriadmin_test", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return gallery.NewHandler(backend.New(backendURL, logger), sm, uierrors.NewErrorLogger(logger), logger)
}

func multipartRequest(t *testing.T, path string, fields map[string]string, withImage bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "farm.jpg")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		fw.Write([]byte("jpegdata"))
	}
	mw.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestItemCreate_UploadsThenCreates(t *testing.T) {
	var uploads, creates atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/upload":
			uploads.Add(1)
			if creates.Load() != 0 {
				t.Error("item was created before the image was uploaded")
			}
			w.Write([]byte(`{"url":"https://cdn.example.com/farm.jpg"}`))
		case "/gallery-items":
			creates.Add(1)
			body, _ := io.ReadAll(r.Body)
			var fields map[string]string
			json.Unmarshal(body, &fields)
			if fields["image"] != "https://cdn.example.com/farm.jpg" {
				t.Errorf("image = %q, want uploaded URL", fields["image"])
			}
			if fields["title"] != "Harvest" || fields["category"] != "Farm" {
				t.Errorf("unexpected fields: %v", fields)
			}
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	req := multipartRequest(t, "/gallery/items", map[string]string{"title": "Harvest", "category": "Farm"}, true)
	rec := httptest.NewRecorder()
	handler.HandleItemCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if uploads.Load() != 1 || creates.Load() != 1 {
		t.Errorf("uploads = %d, creates = %d, want 1 and 1", uploads.Load(), creates.Load())
	}
}

func TestItemCreate_RequiresTitleAndCategory(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	req := multipartRequest(t, "/gallery/items", map[string]string{"title": "   "}, true)

	func() {
		defer func() { recover() }()
		rec := httptest.NewRecorder()
		handler.HandleItemCreate(rec, req)
	}()

	if n := hits.Load(); n != 0 {
		t.Errorf("backend was called %d times for an invalid item", n)
	}
}

func TestItemUpdate_KeepsExistingImageWithoutFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/upload" {
			t.Error("upload was called with no file attached")
		}
		if r.Method != http.MethodPut || r.URL.Path != "/gallery-items/g1" {
			t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var fields map[string]string
		json.Unmarshal(body, &fields)
		if fields["image"] != "https://cdn.example.com/old.jpg" {
			t.Errorf("image = %q, want existing URL", fields["image"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	req := multipartRequest(t, "/gallery/items/g1/edit", map[string]string{
		"title":     "Harvest",
		"category":  "Farm",
		"image_url": "https://cdn.example.com/old.jpg",
	}, false)
	rec := httptest.NewRecorder()
	handler.HandleItemUpdate(rec, withID(req, "g1"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
}

func TestCategoryDelete_CallsBackend(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	handler := newTestHandler(t, srv.URL)
	req := httptest.NewRequest("POST", "/gallery/categories/c1/delete", nil)
	rec := httptest.NewRecorder()
	handler.HandleCategoryDelete(rec, withID(req, "c1"))

	if gotPath != "DELETE /categories/c1" {
		t.Errorf("backend call = %q", gotPath)
	}
	if loc := rec.Header().Get("Location"); loc != "/gallery?tab=categories" {
		t.Errorf("Location = %q", loc)
	}
}
