package pagesite

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes lists the routes the page tree would register, one per line:
// method, path, page name and title.
func PrintRoutes(route string, page any) (string, error) {
	if page == nil {
		return "", fmt.Errorf("page is nil")
	}
	pc := &parseContext{args: make(argRegistry), listOnly: true}
	root, err := pc.parsePageTree(route, "", page)
	if err != nil {
		return "", err
	}
	pc.root = root
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for node := range pc.root.All() {
		if !node.Renderable() && getHTTPHandler(node.Value) == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", node.Method, node.URL(), node.Name, node.Title)
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
