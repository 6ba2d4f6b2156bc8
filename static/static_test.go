package static

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestHandler(t *testing.T) {
	css := []byte("body { margin: 0; }\n")
	fsys := fstest.MapFS{
		"css/style.css": {Data: css},
		"js/main.js":    {Data: []byte("console.log('hi')")},
		"robots.txt":    {Data: []byte("User-agent: *\n")},
	}
	h := Handler(fsys)

	tests := []struct {
		name        string
		method      string
		path        string
		wantCode    int
		wantBody    string
		wantType    string
		wantCaching bool
	}{
		{name: "css", method: http.MethodGet, path: "/css/style.css", wantCode: http.StatusOK, wantBody: string(css), wantType: "text/css", wantCaching: true},
		{name: "js", method: http.MethodGet, path: "/js/main.js", wantCode: http.StatusOK, wantType: "javascript", wantCaching: true},
		{name: "text", method: http.MethodGet, path: "/robots.txt", wantCode: http.StatusOK, wantBody: "User-agent: *\n", wantType: "text/plain"},
		{name: "head", method: http.MethodHead, path: "/css/style.css", wantCode: http.StatusOK},
		{name: "missing", method: http.MethodGet, path: "/nonexistent", wantCode: http.StatusNotFound},
		{name: "directory", method: http.MethodGet, path: "/css", wantCode: http.StatusNotFound},
		{name: "directory slash", method: http.MethodGet, path: "/css/", wantCode: http.StatusNotFound},
		{name: "root", method: http.MethodGet, path: "/", wantCode: http.StatusNotFound},
		{name: "post", method: http.MethodPost, path: "/css/style.css", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))
			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, tt.wantType) {
				t.Errorf("expected content type containing %q, got %q", tt.wantType, ct)
			}
			if got := rec.Header().Get("Cache-Control") != ""; tt.wantCaching && !got {
				t.Error("expected Cache-Control header")
			}
		})
	}
}
