// Package chirouter mounts pagesite page trees on a chi router.
package chirouter

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jackielii/pagesite"
)

type chiRouter struct {
	router chi.Router
}

var _ pagesite.Router = (*chiRouter)(nil)

func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) Route(path string, fn func(pagesite.Router)) {
	r.router.Route(path, func(r chi.Router) {
		fn(&chiRouter{router: r})
	})
}

// HandleMethod registers handler for path. chi patterns always match exactly,
// so the ServeMux "{$}" marker is dropped.
func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	path = strings.TrimSuffix(path, "{$}")
	if method == "ALL" || method == "" {
		r.router.Handle(path, handler)
	} else {
		r.router.Method(method, path, handler)
	}
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
