package chirouter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/jackielii/pagesite"
)

func TestChiRouter(t *testing.T) {
	r := NewChiRouter(chi.NewRouter())
	{
		// Test HandleMethod
		r.HandleMethod(http.MethodGet, "/handle", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ChiRouter HandleMethod"))
		}))
		req := httptest.NewRequest(http.MethodGet, "/handle", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != "ChiRouter HandleMethod" {
			t.Errorf("expected body %q, got %q", "ChiRouter HandleMethod", rec.Body.String())
		}
	}
	{
		// Test Route method
		r.Route("/test", func(r pagesite.Router) {
			r.HandleMethod(http.MethodGet, "/sub", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("ChiRouter Subroute"))
			}))
		})
		req := httptest.NewRequest(http.MethodGet, "/test/sub?a&b&c", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != "ChiRouter Subroute" {
			t.Errorf("expected body %q, got %q", "ChiRouter Subroute", rec.Body.String())
		}
	}
	{
		// exact match marker is dropped
		r.HandleMethod(http.MethodGet, "/{$}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ChiRouter root"))
		}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		if rec.Body.String() != "ChiRouter root" {
			t.Errorf("expected body %q, got %q", "ChiRouter root", rec.Body.String())
		}
	}
}

type textComponent string

func (c textComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type indexPage struct{}

func (indexPage) Page() templ.Component { return textComponent("index") }

type aboutPage struct{}

func (aboutPage) Page() templ.Component { return textComponent("about") }

type TestHandlerPage struct{}

func (TestHandlerPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("TestHttpHandler"))
}

func TestMountPages(t *testing.T) {
	type topPage struct {
		indexPage `route:"GET /{$} Home"`
		aboutPage `route:"GET /about About"`
		hook      *TestHandlerPage `route:"POST /hook Hook"`
	}
	r := NewChiRouter(chi.NewRouter())
	if err := pagesite.New().MountPages(r, topPage{}, "/", "Top"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{http.MethodGet, "/", http.StatusOK, "index"},
		{http.MethodGet, "/about", http.StatusOK, "about"},
		{http.MethodPost, "/hook", http.StatusOK, "TestHttpHandler"},
		{http.MethodPost, "/about", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/nonexistent", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))
		if rec.Code != tt.wantCode {
			t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.wantCode, rec.Code)
		}
		if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
			t.Errorf("%s %s: expected body %q, got %q", tt.method, tt.path, tt.wantBody, rec.Body.String())
		}
	}
}
