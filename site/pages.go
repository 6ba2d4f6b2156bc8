package site

import (
	"github.com/a-h/templ"

	"github.com/jackielii/pagesite"
	"github.com/jackielii/pagesite/views"
)

// Pages is the route table. It is fixed at compile time; every field maps a
// path to the page rendering the template of the same name.
type Pages struct {
	index       `route:"GET /{$} Home"`
	about       `route:"GET /about About"`
	information `route:"GET /information Information"`
	contact     `route:"GET /contact Contact"`
}

type index struct{}

func (index) Page(v *views.Views, pn *pagesite.PageNode) templ.Component {
	return v.Page("index", pn)
}

type about struct{}

func (about) Page(v *views.Views, pn *pagesite.PageNode) templ.Component {
	return v.Page("about", pn)
}

type information struct{}

func (information) Page(v *views.Views, pn *pagesite.PageNode) templ.Component {
	return v.Page("information", pn)
}

type contact struct{}

func (contact) Page(v *views.Views, pn *pagesite.PageNode) templ.Component {
	return v.Page("contact", pn)
}
