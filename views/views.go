// Package views renders page templates inside the site layout.
//
// Templates live under a "views" directory of the asset filesystem:
//
//	views/layouts/layout.html   shared layout, {{render}} marks the page body
//	views/pages/<name>.html     one file per page
package views

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/a-h/templ"
	"github.com/abiosoft/mold"

	"github.com/jackielii/pagesite"
)

const (
	root   = "views"
	layout = root + "/layouts/layout.html"
)

type engine interface {
	Render(w io.Writer, view string, data any) error
}

// Views renders named pages with the shared layout.
type Views struct {
	engine   engine
	siteName string
}

// New parses every template found under views/ in fsys.
func New(fsys fs.FS, siteName string) (*Views, error) {
	e, err := mold.NewWithConfig(fsys, mold.Config{
		Root:   root,
		Layout: layout,
	})
	if err != nil {
		return nil, fmt.Errorf("views: parse templates: %w", err)
	}
	return &Views{engine: e, siteName: siteName}, nil
}

// NavItem is one entry of the layout's navigation bar.
type NavItem struct {
	Title  string
	URL    string
	Active bool
}

// PageData is what every page template and the layout receive.
type PageData struct {
	SiteName string
	Title    string
	URL      string
	Nav      []NavItem
}

// Component renders the page template name with data as a templ component.
func (v *Views) Component(name string, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := v.engine.Render(w, "pages/"+name+".html", data); err != nil {
			return fmt.Errorf("views: render %s: %w", name, err)
		}
		return nil
	})
}

// Page renders the template name for the page node pn. The navigation lists
// pn and its renderable siblings in route order.
func (v *Views) Page(name string, pn *pagesite.PageNode) templ.Component {
	return v.Component(name, v.data(pn))
}

func (v *Views) data(pn *pagesite.PageNode) PageData {
	data := PageData{SiteName: v.siteName, Title: pn.Title, URL: pn.URL()}
	siblings := []*pagesite.PageNode{pn}
	if pn.Parent != nil {
		siblings = pn.Parent.Children
	}
	for _, sib := range siblings {
		if !sib.Renderable() {
			continue
		}
		data.Nav = append(data.Nav, NavItem{
			Title:  sib.Title,
			URL:    sib.URL(),
			Active: sib == pn,
		})
	}
	return data
}
