package layout

import (
	"testing"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
)

func TestMeasurerWrapsAtColumnLimit(t *testing.T) {
	// 10 columns: "aaaa bbbb cccc" wraps after "aaaa bbbb" (9 cells).
	leaf := dom.Text("aaaa bbbb cccc")
	tree := dom.Build(dom.Elem("body", nil, dom.Elem("p", nil, leaf)))
	m := NewMeasurer(tree, 10)

	frags := m.Fragments(leaf)
	if len(frags) != 2 {
		t.Fatalf("got %d fragments, want 2: %v", len(frags), frags)
	}
	if frags[0] != [4]int{0, 10, 0, 0} {
		t.Errorf("first fragment = %v", frags[0])
	}
	if frags[1] != [4]int{10, 14, 1, 0} {
		t.Errorf("second fragment = %v", frags[1])
	}
	if m.Rows() != 2 {
		t.Errorf("rows = %d, want 2", m.Rows())
	}
}

func TestMeasurerRowBreaks(t *testing.T) {
	a := dom.Text("one")
	b := dom.Text("two")
	c := dom.Text("three")
	tree := dom.Build(dom.Elem("body", nil,
		dom.Elem("p", nil, a, dom.Elem("br", nil), b),
		dom.Elem("p", nil, c),
	))
	m := NewMeasurer(tree, 40)

	rowOf := func(n *dom.Node) int {
		t.Helper()
		r, ok := m.RowOf(n)
		if !ok {
			t.Fatalf("no layout for %v", n)
		}
		return r
	}
	if rowOf(a) != 0 {
		t.Errorf("first leaf on row %d", rowOf(a))
	}
	if rowOf(b) != rowOf(a)+1 {
		t.Errorf("br did not break the row: %d vs %d", rowOf(b), rowOf(a))
	}
	if rowOf(c) != rowOf(b)+1 {
		t.Errorf("block change did not break the row: %d vs %d", rowOf(c), rowOf(b))
	}
}

func TestMeasurerInlineLeavesShareRow(t *testing.T) {
	a := dom.Text("left ")
	b := dom.Text("right")
	tree := dom.Build(dom.Elem("body", nil,
		dom.Elem("p", nil, a, dom.Elem("b", nil, b)),
	))
	m := NewMeasurer(tree, 40)

	ra, _ := m.RowOf(a)
	rb, _ := m.RowOf(b)
	if ra != rb {
		t.Fatalf("inline leaves on rows %d and %d", ra, rb)
	}

	// Same row means same Bottom coordinate for the layout-line walker.
	r1, ok1 := m.BoundingRect(cursor.FromNode(a))
	r2, ok2 := m.BoundingRect(cursor.FromNode(b))
	if !ok1 || !ok2 {
		t.Fatal("missing geometry for laid-out leaves")
	}
	if r1.Bottom != r2.Bottom {
		t.Errorf("bottoms differ: %v vs %v", r1.Bottom, r2.Bottom)
	}
}

func TestMeasurerBoundingRectPartialRange(t *testing.T) {
	leaf := dom.Text("aaaa bbbb cccc")
	tree := dom.Build(dom.Elem("body", nil, dom.Elem("p", nil, leaf)))
	m := NewMeasurer(tree, 10)

	// A range entirely inside the wrapped tail touches only row 1.
	sel, err := cursor.NewRange(cursor.New(leaf, 10), cursor.New(leaf, 14))
	if err != nil {
		t.Fatal(err)
	}
	r, ok := m.BoundingRect(sel)
	if !ok {
		t.Fatal("no rect")
	}
	if r.Top != 1 || r.Bottom != 2 {
		t.Errorf("rect rows = [%v,%v), want [1,2)", r.Top, r.Bottom)
	}

	// The whole leaf unions both rows.
	r, ok = m.BoundingRect(cursor.FromNode(leaf))
	if !ok {
		t.Fatal("no rect")
	}
	if r.Top != 0 || r.Bottom != 2 {
		t.Errorf("union rect rows = [%v,%v), want [0,2)", r.Top, r.Bottom)
	}
}

func TestMeasurerAtomicElement(t *testing.T) {
	img := dom.Elem("img", map[string]string{"alt": "logo"})
	txt := dom.Text("caption")
	tree := dom.Build(dom.Elem("body", nil, dom.Elem("p", nil, img, txt)))
	m := NewMeasurer(tree, 40)

	r, ok := m.BoundingRect(cursor.FromNode(img))
	if !ok {
		t.Fatal("no rect for atomic element")
	}
	if w := r.Right - r.Left; w != float64(len("logo")) {
		t.Errorf("label width = %v, want %d", w, len("logo"))
	}

	// Detached selections report no geometry.
	other := dom.Build(dom.Elem("body", nil, dom.Text("x")))
	if _, ok := m.BoundingRect(cursor.FromNode(other.Root().Children()[0])); ok {
		t.Error("rect for a node from another tree")
	}
}

func TestMeasurerMinimumColumns(t *testing.T) {
	tree := dom.Build(dom.Elem("body", nil, dom.Text("abc")))
	m := NewMeasurer(tree, 0)
	if m.Columns() < 4 {
		t.Fatalf("columns = %d", m.Columns())
	}
}
