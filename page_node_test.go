package pagesite

import (
	"reflect"
	"strings"
	"testing"
)

func TestPageNode_All(t *testing.T) {
	testNode := &PageNode{
		Name: "Top",
		Children: []*PageNode{
			{
				Name: "Child1",
				Children: []*PageNode{
					{Name: "GrandChild1"},
					{Name: "GrandChild2"},
				},
			},
			{
				Name: "Child2",
				Children: []*PageNode{
					{Name: "GrandChild3"},
				},
			},
		},
	}
	expected := []string{"Top", "Child1", "GrandChild1", "GrandChild2", "Child2", "GrandChild3"}
	t.Run("full walk", func(t *testing.T) {
		var items []string
		for n := range testNode.All() {
			items = append(items, n.Name)
		}
		if !reflect.DeepEqual(items, expected) {
			t.Errorf("expected %v, got %v", expected, items)
		}
	})
	t.Run("early break", func(t *testing.T) {
		var items []string
		for n := range testNode.All() {
			if len(items) == 3 {
				break
			}
			items = append(items, n.Name)
		}
		if !reflect.DeepEqual(items, expected[:3]) {
			t.Errorf("expected %v, got %v", expected[:3], items)
		}
	})
}

func TestPageNode_FullRouteAndURL(t *testing.T) {
	root := &PageNode{Name: "root", Route: "/"}
	index := &PageNode{Name: "index", Route: "/{$}", Parent: root}
	about := &PageNode{Name: "about", Route: "/about", Parent: root}
	nested := &PageNode{Name: "team", Route: "/team", Parent: about}

	tests := []struct {
		node      *PageNode
		wantRoute string
		wantURL   string
	}{
		{root, "/", "/"},
		{index, "/{$}", "/"},
		{about, "/about", "/about"},
		{nested, "/about/team", "/about/team"},
	}
	for _, tt := range tests {
		if got := tt.node.FullRoute(); got != tt.wantRoute {
			t.Errorf("%s FullRoute() = %q, want %q", tt.node.Name, got, tt.wantRoute)
		}
		if got := tt.node.URL(); got != tt.wantURL {
			t.Errorf("%s URL() = %q, want %q", tt.node.Name, got, tt.wantURL)
		}
	}
}

type stringPage struct{}

func (stringPage) Page() component    { return testComponent{content: "page"} }
func (stringPage) Partial() component { return testComponent{content: "partial"} }

func TestPageNode_String(t *testing.T) {
	page, _ := reflect.TypeOf(stringPage{}).MethodByName("Page")
	partial, _ := reflect.TypeOf(stringPage{}).MethodByName("Partial")
	pn := &PageNode{
		Name:   "test",
		Title:  "Test Page",
		Method: "GET",
		Route:  "/test",
		Value:  reflect.ValueOf(stringPage{}),
		Components: map[string]reflect.Method{
			"Partial": partial,
			"Page":    page,
		},
		Children: []*PageNode{{Name: "child", Route: "/child"}},
	}

	str := pn.String()
	for _, want := range []string{
		"name: test",
		"title: Test Page",
		"component: Page -> pagesite.stringPage.Page",
		"component: Partial -> pagesite.stringPage.Partial",
		"middlewares: <nil>",
		"child 1:",
		"name: child",
	} {
		if !strings.Contains(str, want) {
			t.Errorf("expected String() to contain %q, got:\n%s", want, str)
		}
	}
	if strings.Index(str, "component: Page ") > strings.Index(str, "component: Partial") {
		t.Errorf("expected components in sorted order, got:\n%s", str)
	}
}
