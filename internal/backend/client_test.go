package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/krishivishwa/agriadmin/internal/backend"
	"go.uber.org/zap"
)

func newClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, zap.NewNop())
}

func TestLogin_SendsCredentialsAndDecodesToken(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/login" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "admin@krishivishwa.com" || body["password"] != "secret123" {
			t.Errorf("body = %v", body)
		}
		io.WriteString(w, `{"success":true,"token":"tok-9","admin":{"username":"admin","email":"admin@krishivishwa.com"}}`)
	})

	res, err := c.Login(context.Background(), "admin@krishivishwa.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "tok-9" || res.Admin.Username != "admin" {
		t.Errorf("result = %+v", res)
	}
}

func TestDo_AttachesAuthAndRequestID(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		io.WriteString(w, `{"admin":{"username":"a","email":"a@b.co"}}`)
	})

	if _, err := c.Profile(context.Background(), "tok-1"); err != nil {
		t.Fatalf("Profile: %v", err)
	}
}

func TestErrorDecoding(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantUnauth bool
		wantMsg    string
	}{
		{"401 is ErrUnauthorized", http.StatusUnauthorized, `{"message":"invalid token"}`, true, "invalid token"},
		{"403 is ErrUnauthorized", http.StatusForbidden, `{"message":"forbidden"}`, true, "forbidden"},
		{"500 carries message", http.StatusInternalServerError, `{"message":"boom"}`, false, "boom"},
		{"error field fallback", http.StatusBadRequest, `{"error":"bad input"}`, false, "bad input"},
		{"unparseable body", http.StatusBadGateway, `<html>nope</html>`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			err := c.Ping(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, backend.ErrUnauthorized); got != tt.wantUnauth {
				t.Errorf("errors.Is(err, ErrUnauthorized) = %v, want %v", got, tt.wantUnauth)
			}
			var apiErr *backend.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.Status != tt.status || apiErr.Message != tt.wantMsg {
				t.Errorf("APIError = %+v", apiErr)
			}
		})
	}
}

func TestListOrders_QueryAndEnvelope(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "5" || q.Get("status") != "pending" || q.Get("year") != "2025" {
			t.Errorf("query = %v", q)
		}
		io.WriteString(w, `{
			"success": true,
			"orders": [{"_id":"o1","orderId":"KV-1001","status":"pending","pricing":{"total":450}}],
			"pagination": {"totalPages":9,"totalOrders":42}
		}`)
	})

	page, err := c.ListOrders(context.Background(), "tok", backend.ListOrdersParams{
		Page: 2, Limit: 5, Status: "pending", Year: "2025",
	})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if page.TotalPages != 9 || page.TotalOrders != 42 || len(page.Orders) != 1 {
		t.Errorf("page = %+v", page)
	}
	if page.Orders[0].OrderID != "KV-1001" || page.Orders[0].Pricing.Total != 450 {
		t.Errorf("order = %+v", page.Orders[0])
	}
}

func TestListOrders_AllFiltersOmitted(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Has("status") || q.Has("year") {
			t.Errorf("expected all-value filters omitted, query = %v", q)
		}
		io.WriteString(w, `{"orders":[],"pagination":{"totalPages":0,"totalOrders":0}}`)
	})

	if _, err := c.ListOrders(context.Background(), "tok", backend.ListOrdersParams{Status: "all", Year: "all"}); err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
}

func TestToggleOrderStatus(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/orders/toggle-status/o1" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["adminName"] != "Ravi" {
			t.Errorf("adminName = %q", body["adminName"])
		}
		io.WriteString(w, `{"order":{"_id":"o1","status":"delivered"}}`)
	})

	order, err := c.ToggleOrderStatus(context.Background(), "tok", "o1", "Ravi")
	if err != nil {
		t.Fatalf("ToggleOrderStatus: %v", err)
	}
	if order.Status != "delivered" {
		t.Errorf("status = %q, want delivered", order.Status)
	}
}

func TestUpload_Multipart(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "photo.jpg" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		data, _ := io.ReadAll(f)
		if string(data) != "jpegbytes" {
			t.Errorf("file body = %q", data)
		}
		io.WriteString(w, `{"url":"https://cdn.example.com/photo.jpg"}`)
	})

	url, err := c.Upload(context.Background(), "tok", backend.FileField{
		Field:    "image",
		Filename: "photo.jpg",
		Reader:   strings.NewReader("jpegbytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://cdn.example.com/photo.jpg" {
		t.Errorf("url = %q", url)
	}
}

func TestContextDeadline(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Ping(ctx); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
