package pagesite

import (
	"cmp"
	"fmt"
	"net/http"
	"reflect"
	"slices"
)

// MiddlewareFunc wraps the handler of a single page.
type MiddlewareFunc func(http.Handler, *PageNode) http.Handler

// SitePages mounts page trees onto a Router.
type SitePages struct {
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
}

type Option func(*SitePages)

func New(options ...Option) *SitePages {
	sp := &SitePages{
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
	for _, opt := range options {
		opt(sp)
	}
	return sp
}

// WithErrorHandler sets the handler called when a page fails to render.
// Nothing has been written to w when it is called.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(sp *SitePages) {
		sp.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page, after the page's
// own Middlewares.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(sp *SitePages) {
		sp.middlewares = append(sp.middlewares, middlewares...)
	}
}

// MountPages parses the page tree rooted at page and registers a handler for
// every renderable node. args are injected into component methods by type.
func (sp *SitePages) MountPages(router Router, page any, route, title string, args ...any) error {
	pc, err := parsePageTree(route, page, args...)
	if err != nil {
		return err
	}
	pc.root.Title = cmp.Or(pc.root.Title, title)
	for node := range pc.root.All() {
		if err := sp.registerPageItem(router, pc, node); err != nil {
			return err
		}
	}
	return nil
}

func (sp *SitePages) registerPageItem(router Router, pc *parseContext, page *PageNode) error {
	if page.Route == "" {
		return fmt.Errorf("page item route is empty: %s", page.Name)
	}
	handler, err := sp.buildHandler(page, pc)
	if err != nil {
		return err
	}
	if handler == nil {
		return nil
	}
	mws, err := pc.middlewares(page)
	if err != nil {
		return err
	}
	// the first middleware listed runs first: wrap in reverse, page level innermost
	for _, mw := range slices.Backward(mws) {
		handler = mw(handler, page)
	}
	for _, mw := range slices.Backward(sp.middlewares) {
		handler = mw(handler, page)
	}
	router.HandleMethod(page.Method, page.FullRoute(), withCurrentPage(handler, page))
	return nil
}

func (sp *SitePages) buildHandler(page *PageNode, pc *parseContext) (http.Handler, error) {
	if h := getHTTPHandler(page.Value); h != nil {
		return h, nil
	}
	if len(page.Components) == 0 {
		return nil, nil
	}
	if !page.Renderable() {
		return nil, fmt.Errorf("page item %s does not have a Page component", page.Name)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, retarget := selectComponent(page, r)
		method := page.Components[name]
		comp, err := pc.callComponentMethod(page, &method, r)
		if err != nil {
			sp.onError(w, r, err)
			return
		}
		buf := getBuffer()
		defer releaseBuffer(buf)
		if err := comp.Render(r.Context(), buf); err != nil {
			sp.onError(w, r, fmt.Errorf("render %s.%s: %w", page.Name, name, err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if retarget {
			if err := writeRetarget(w); err != nil {
				sp.onError(w, r, err)
				return
			}
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_, _ = buf.WriteTo(w)
	}), nil
}

var handlerType = reflect.TypeOf((*http.Handler)(nil)).Elem()

func getHTTPHandler(v reflect.Value) http.Handler {
	st, pt := v.Type(), v.Type()
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	// a ServeHTTP promoted from an embedded child page belongs to the child
	method, ok := st.MethodByName("ServeHTTP")
	if !ok || isPromotedMethod(&method) {
		method, ok = pt.MethodByName("ServeHTTP")
		if !ok || isPromotedMethod(&method) {
			return nil
		}
	}
	if v.Type().Implements(handlerType) {
		return v.Interface().(http.Handler)
	}
	if v.Kind() != reflect.Ptr && pt.Implements(handlerType) {
		pv := reflect.New(st)
		pv.Elem().Set(v)
		return pv.Interface().(http.Handler)
	}
	return nil
}
