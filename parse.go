package pagesite

import (
	"cmp"
	"fmt"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

type parseContext struct {
	root *PageNode
	args argRegistry
	// listOnly skips dependency checks when the tree is only inspected
	listOnly bool
}

func parsePageTree(route string, page any, args ...any) (*parseContext, error) {
	if page == nil {
		return nil, fmt.Errorf("page is nil")
	}
	pc := &parseContext{args: make(argRegistry)}
	for _, v := range args {
		if err := pc.args.addArg(v); err != nil {
			return nil, fmt.Errorf("error adding argument to registry: %w", err)
		}
	}
	root, err := pc.parsePageTree(route, "", page)
	if err != nil {
		return nil, err
	}
	pc.root = root
	return pc, nil
}

func (p *parseContext) parsePageTree(route, fieldName string, page any) (*PageNode, error) {
	st := reflect.TypeOf(page) // struct type
	pt := reflect.TypeOf(page) // pointer type
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s must be a struct, got %s", cmp.Or(fieldName, st.String()), st.Kind())
	}
	item := &PageNode{Value: reflect.ValueOf(page), Name: cmp.Or(fieldName, st.Name())}
	item.Method, item.Route, item.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		route, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		child, err := p.parsePageTree(route, field.Name, reflect.New(typ).Interface())
		if err != nil {
			return nil, err
		}
		child.Parent = item
		item.Children = append(item.Children, child)
	}

	for _, t := range []reflect.Type{st, pt} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if isPromotedMethod(&method) {
				continue
			}
			switch {
			case isComponent(&method):
				if err := p.checkMethod(&method); err != nil {
					return nil, fmt.Errorf("page %s: %w", item.Name, err)
				}
				if item.Components == nil {
					item.Components = make(map[string]reflect.Method)
				}
				item.Components[method.Name] = method
			case method.Name == "Middlewares":
				if err := p.checkMethod(&method); err != nil {
					return nil, fmt.Errorf("page %s: %w", item.Name, err)
				}
				item.Middlewares = &method
			}
		}
	}

	return item, nil
}

var (
	pageNodeType = reflect.TypeOf((*PageNode)(nil))
	requestType  = reflect.TypeOf((*http.Request)(nil))
)

// checkMethod makes sure every parameter of method can be supplied when the
// page is served, so a missing dependency fails at mount time.
func (p *parseContext) checkMethod(method *reflect.Method) error {
	if p.listOnly {
		return nil
	}
	for i := 1; i < method.Type.NumIn(); i++ {
		argType := method.Type.In(i)
		switch argType {
		case pageNodeType, pageNodeType.Elem(), requestType:
			continue
		}
		if _, ok := p.args.getArg(argType); !ok {
			return fmt.Errorf("method %s requires argument of type %s, but not found",
				formatMethod(method), argType.String())
		}
	}
	return nil
}

// callMethod calls method on the page value, filling its parameters with the
// node itself, the request (nil outside of a request) or values from the args
// registry.
func (p *parseContext) callMethod(pn *PageNode, method *reflect.Method, r *http.Request) ([]reflect.Value, error) {
	v := pn.Value
	receiver := method.Type.In(0)
	// make sure receiver and value match, if method takes a pointer, convert value to pointer
	if receiver.Kind() == reflect.Ptr && v.Kind() != reflect.Ptr {
		if !v.CanAddr() {
			nv := reflect.New(v.Type())
			nv.Elem().Set(v)
			v = nv
		} else {
			v = v.Addr()
		}
	}
	if receiver.Kind() != reflect.Ptr && v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	in := make([]reflect.Value, method.Type.NumIn())
	in[0] = v
	for i := 1; i < len(in); i++ {
		argType := method.Type.In(i)
		switch argType {
		case pageNodeType:
			in[i] = reflect.ValueOf(pn)
		case pageNodeType.Elem():
			in[i] = reflect.ValueOf(pn).Elem()
		case requestType:
			in[i] = reflect.ValueOf(r)
		default:
			val, ok := p.args.getArg(argType)
			if !ok {
				return nil, fmt.Errorf("method %s requires argument of type %s, but not found",
					formatMethod(method), argType.String())
			}
			in[i] = val
		}
	}
	return method.Func.Call(in), nil
}

func (p *parseContext) callComponentMethod(pn *PageNode, method *reflect.Method, r *http.Request) (templ.Component, error) {
	results, err := p.callMethod(pn, method, r)
	if err != nil {
		return nil, fmt.Errorf("error calling component method %s: %w", formatMethod(method), err)
	}
	comp, _ := results[0].Interface().(templ.Component)
	if comp == nil {
		return nil, fmt.Errorf("method %s returned a nil component", formatMethod(method))
	}
	return comp, nil
}

func (p *parseContext) middlewares(pn *PageNode) ([]MiddlewareFunc, error) {
	if pn.Middlewares == nil {
		return nil, nil
	}
	res, err := p.callMethod(pn, pn.Middlewares, nil)
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("middlewares method on %s did not return single result", pn.Name)
	}
	mws, ok := res[0].Interface().([]MiddlewareFunc)
	if !ok {
		return nil, fmt.Errorf("middlewares method on %s did not return []MiddlewareFunc", pn.Name)
	}
	return mws, nil
}

// parseTag splits a route tag of the form "[METHOD] /path [Title words]".
func parseTag(route string) (method, path, title string) {
	method = methodAll
	parts := strings.Fields(route)
	if len(parts) == 0 {
		path = "/"
		return
	}
	if len(parts) == 1 {
		path = parts[0]
		return
	}
	if m := strings.ToUpper(parts[0]); slices.Contains(validMethod, m) {
		method = m
		path = parts[1]
		title = strings.Join(parts[2:], " ")
	} else {
		path = parts[0]
		title = strings.Join(parts[1:], " ")
	}
	return
}

const methodAll = "ALL"

var validMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
	methodAll,
}

var componentType = reflect.TypeOf((*templ.Component)(nil)).Elem()

func isComponent(t *reflect.Method) bool {
	if t.Type.NumOut() != 1 {
		return false
	}
	return t.Type.Out(0).Implements(componentType)
}

func isPromotedMethod(method *reflect.Method) bool {
	// methods promoted from an embedded type are wrapped by the compiler
	// https://github.com/golang/go/issues/73883
	wPC := method.Func.Pointer()
	wFunc := runtime.FuncForPC(wPC)
	wFile, wLine := wFunc.FileLine(wPC)
	return wFile == "<autogenerated>" && wLine == 1
}
