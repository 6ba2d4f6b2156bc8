package pagesite

import (
	"context"
	"net/http"

	"github.com/jackielii/ctxkey"
)

var pageNodeCtx = ctxkey.New[*PageNode]("pagesite.pageNode", nil)

// CurrentPage returns the page node serving the request, or nil outside of a
// mounted page.
func CurrentPage(ctx context.Context) *PageNode {
	return pageNodeCtx.Value(ctx)
}

func withCurrentPage(next http.Handler, node *PageNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := pageNodeCtx.WithValue(r.Context(), node)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
