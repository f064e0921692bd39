package dom

import (
	"testing"
)

// sampleTree builds a small document used across tests:
//
//	<html><body>
//	  <h1>Title</h1>
//	  <p>Hello <a href="#">world</a>!</p>
//	  <img alt="logo">
//	</body></html>
func sampleTree() *Tree {
	return Build(Elem("html", nil,
		Elem("body", nil,
			Elem("h1", nil, Text("Title")),
			Elem("p", nil,
				Text("Hello "),
				Elem("a", map[string]string{"href": "#"}, Text("world")),
				Text("!"),
			),
			Elem("img", map[string]string{"alt": "logo"}),
		),
	))
}

func findText(t *testing.T, tree *Tree, content string) *Node {
	t.Helper()
	for n := FirstLeaf(tree.Root()); n != nil; n = NextLeaf(n) {
		if n.IsText() && n.Text() == content {
			return n
		}
	}
	t.Fatalf("text %q not found", content)
	return nil
}

func TestCompareDocumentOrder(t *testing.T) {
	tree := sampleTree()
	title := findText(t, tree, "Title")
	world := findText(t, tree, "world")

	if title.Compare(world) != -1 {
		t.Error("Title should precede world")
	}
	if world.Compare(title) != 1 {
		t.Error("world should follow Title")
	}
	if title.Compare(title) != 0 {
		t.Error("node should equal itself")
	}

	body := tree.Root().Children()[0]
	if body.Compare(title) != -1 {
		t.Error("ancestor should precede its descendants")
	}
}

func TestLeafTraversal(t *testing.T) {
	tree := sampleTree()

	var got []string
	for n := FirstLeaf(tree.Root()); n != nil; n = NextLeaf(n) {
		if n.IsText() {
			got = append(got, n.Text())
		} else {
			got = append(got, "<"+n.Tag()+">")
		}
	}
	want := []string{"Title", "Hello ", "world", "!", "<img>"}
	if len(got) != len(want) {
		t.Fatalf("leaf count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("leaf[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Backward traversal visits the same leaves reversed.
	last := LastLeaf(tree.Root())
	var back []string
	for n := last; n != nil; n = PrevLeaf(n) {
		if n.IsText() {
			back = append(back, n.Text())
		} else {
			back = append(back, "<"+n.Tag()+">")
		}
	}
	if len(back) != len(want) {
		t.Fatalf("backward leaf count = %d, want %d", len(back), len(want))
	}
	for i := range want {
		if back[len(back)-1-i] != want[i] {
			t.Errorf("backward leaf mismatch at %d: %q", i, back[len(back)-1-i])
		}
	}
}

func TestRenderedFiltering(t *testing.T) {
	tree := Build(Elem("html", nil,
		Elem("head", nil, Elem("title", nil, Text("ignored"))),
		Elem("body", nil,
			Elem("script", nil, Text("var x;")),
			Elem("div", map[string]string{"aria-hidden": "true"}, Text("hidden")),
			Text("visible"),
		),
	))
	first := FirstLeaf(tree.Root())
	if first == nil || first.Text() != "visible" {
		t.Fatalf("first leaf = %v, want visible text", first)
	}
	if NextLeaf(first) != nil {
		t.Error("no leaf should follow the only visible text")
	}
}

func TestComputedRoles(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want Role
	}{
		{"h2 tag", Elem("h2", nil), RoleHeading},
		{"anchor with href", Elem("a", map[string]string{"href": "/x"}), RoleLink},
		{"anchor without href", Elem("a", nil), RoleNone},
		{"checkbox input", Elem("input", map[string]string{"type": "checkbox"}), RoleCheckbox},
		{"range input", Elem("input", map[string]string{"type": "range"}), RoleSlider},
		{"text input", Elem("input", nil), RoleEditText},
		{"explicit role wins", Elem("div", map[string]string{"role": "button"}), RoleButton},
		{"nav landmark", Elem("nav", nil), RoleLandmark},
		{"aria landmark", Elem("div", map[string]string{"role": "main"}), RoleLandmark},
		{"row-scoped th", Elem("th", map[string]string{"scope": "row"}), RoleRowHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.ComputedRole(); got != tt.want {
				t.Errorf("ComputedRole() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	if got := Elem("h3", nil).HeadingLevel(); got != 3 {
		t.Errorf("h3 level = %d, want 3", got)
	}
	aria := Elem("div", map[string]string{"role": "heading", "aria-level": "4"})
	if got := aria.HeadingLevel(); got != 4 {
		t.Errorf("aria-level = %d, want 4", got)
	}
	bare := Elem("div", map[string]string{"role": "heading"})
	if got := bare.HeadingLevel(); got != 2 {
		t.Errorf("default heading level = %d, want 2", got)
	}
	if got := Elem("p", nil).HeadingLevel(); got != 0 {
		t.Errorf("non-heading level = %d, want 0", got)
	}
}

func TestAncestorDelta(t *testing.T) {
	tree := sampleTree()
	title := findText(t, tree, "Title")
	world := findText(t, tree, "world")

	delta := AncestorDelta(title, world)
	// Entering world from Title crosses <p> and <a>, plus the text
	// itself; html/body are shared.
	want := []string{"p", "a", ""}
	if len(delta) != len(want) {
		t.Fatalf("delta length = %d, want %d", len(delta), len(want))
	}
	for i, tag := range want {
		if delta[i].Tag() != tag {
			t.Errorf("delta[%d].Tag() = %q, want %q", i, delta[i].Tag(), tag)
		}
	}

	full := AncestorDelta(nil, title)
	if len(full) != 4 { // html, body, h1, text
		t.Errorf("nil-prev delta length = %d, want 4", len(full))
	}
}

func TestLabelPreference(t *testing.T) {
	img := Elem("img", map[string]string{"alt": "a duck"})
	if img.Label() != "a duck" {
		t.Errorf("img label = %q", img.Label())
	}
	labelled := Elem("button", map[string]string{"aria-label": "Close"}, Text("X"))
	if labelled.Label() != "Close" {
		t.Errorf("aria-label should win, got %q", labelled.Label())
	}
	input := Elem("input", nil)
	input.SetValue("typed")
	if input.Label() != "typed" {
		t.Errorf("live value should be used, got %q", input.Label())
	}
}
