// Package pagesite maps struct-tagged page types to routes and renders their
// components.
//
// A page tree is a struct whose fields carry route tags:
//
//	type pages struct {
//		index `route:"GET /{$} Home"`
//		about `route:"GET /about About"`
//	}
//
// Every page type with a Page method returning a [templ.Component] gets a
// handler; types implementing [http.Handler] are mounted as they are.
package pagesite
