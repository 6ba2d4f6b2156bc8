package pagesite

import (
	"net/http"

	"github.com/angelofallars/htmx-go"
)

// selectComponent picks the component method to render for r. HTMX requests
// get the Partial component when the page has one; otherwise the full Page is
// rendered and retarget reports that the client must swap the whole body.
func selectComponent(page *PageNode, r *http.Request) (name string, retarget bool) {
	if !htmx.IsHTMX(r) {
		return "Page", false
	}
	if _, ok := page.Components["Partial"]; ok {
		return "Partial", false
	}
	return "Page", true
}

func writeRetarget(w http.ResponseWriter) error {
	return htmx.NewResponse().Retarget("body").Write(w)
}
