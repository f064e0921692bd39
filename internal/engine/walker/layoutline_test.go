package walker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
)

// stubGeometry reports a fixed bottom per leaf; a selection takes the
// bottom of its first leaf's line.
type stubGeometry struct {
	bottoms map[*dom.Node]float64
}

func (g *stubGeometry) BoundingRect(sel cursor.Selection) (dom.Rect, bool) {
	n := sel.Start().Node()
	if !n.IsLeaf() {
		n = dom.FirstLeaf(n)
	}
	b, ok := g.bottoms[n]
	if !ok {
		return dom.Rect{}, false
	}
	return dom.Rect{Top: b - 10, Bottom: b, Left: 0, Right: 100}, true
}

// threeLines builds three structural lines and assigns their bottoms.
func threeLines(t *testing.T, bottoms [3]float64) (*dom.Tree, *stubGeometry, [3]*dom.Node) {
	t.Helper()
	l1 := dom.Text("soft wrapped ")
	l2 := dom.Text("continuation")
	l3 := dom.Text("next visual line")
	tree := dom.Build(dom.Elem("body", nil,
		dom.Elem("div", nil, l1),
		dom.Elem("div", nil, l2),
		dom.Elem("div", nil, l3),
	))
	geom := &stubGeometry{bottoms: map[*dom.Node]float64{
		l1: bottoms[0], l2: bottoms[1], l3: bottoms[2],
	}}
	return tree, geom, [3]*dom.Node{l1, l2, l3}
}

func TestLayoutLineMergesSharedBaseline(t *testing.T) {
	// Structural lines with bottoms [10, 10, 20]: the first two share
	// a baseline and merge into one layout line.
	tree, geom, leaves := threeLines(t, [3]float64{10, 10, 20})
	line := &LineWalker{tree: tree}
	w := &LayoutLineWalker{tree: tree, sub: line, geom: geom}

	sel, ok := w.Sync(cursor.FromNode(leaves[0]))
	require.True(t, ok)
	require.Equal(t, leaves[0], sel.Start().Node(), "layout line starts at line 1")
	require.Equal(t, leaves[1], sel.End().Node(), "layout line ends at line 2, not 3")

	next, ok := w.Next(sel)
	require.True(t, ok)
	require.Equal(t, leaves[2], next.Start().Node())
	require.Equal(t, leaves[2], next.End().Node(), "third line stands alone")

	_, ok = w.Next(next)
	require.False(t, ok, "no wrap past the last layout line")
}

func TestLayoutLineBackwardMerge(t *testing.T) {
	tree, geom, leaves := threeLines(t, [3]float64{10, 10, 20})
	line := &LineWalker{tree: tree}
	w := &LayoutLineWalker{tree: tree, sub: line, geom: geom}

	// Sync from the middle structural line covers lines 1-2.
	sel, ok := w.Sync(cursor.FromNode(leaves[1]))
	require.True(t, ok)
	require.Equal(t, leaves[0], sel.Start().Node())
	require.Equal(t, leaves[1], sel.End().Node())

	// Backward from line 3 lands on the merged line, direction kept.
	from, ok := w.Sync(cursor.FromNode(leaves[2]).WithReversed(true))
	require.True(t, ok)
	prev, ok := w.Next(from)
	require.True(t, ok)
	require.True(t, prev.Reversed())
	require.Equal(t, leaves[0], prev.Start().Node())
	require.Equal(t, leaves[1], prev.End().Node())

	_, ok = w.Next(prev)
	require.False(t, ok, "no wrap before the first layout line")
}

func TestLayoutLineDistinctBaselines(t *testing.T) {
	// All bottoms differ: every structural line is its own layout line.
	tree, geom, leaves := threeLines(t, [3]float64{10, 20, 30})
	line := &LineWalker{tree: tree}
	w := &LayoutLineWalker{tree: tree, sub: line, geom: geom}

	sel, ok := w.Sync(cursor.FromNode(leaves[0]))
	require.True(t, ok)
	require.True(t, sel.SingleNode())

	for i := 1; i < 3; i++ {
		sel, ok = w.Next(sel)
		require.True(t, ok)
		require.Equal(t, leaves[i], sel.Start().Node())
		require.True(t, sel.SingleNode())
	}
}

func TestLayoutLineFailsOpenWithoutGeometry(t *testing.T) {
	// Missing geometry must not fragment lines: everything merges.
	tree, _, leaves := threeLines(t, [3]float64{0, 0, 0})
	line := &LineWalker{tree: tree}
	w := &LayoutLineWalker{tree: tree, sub: line, geom: nil}

	sel, ok := w.Sync(cursor.FromNode(leaves[1]))
	require.True(t, ok)
	require.Equal(t, leaves[0], sel.Start().Node())
	require.Equal(t, leaves[2], sel.End().Node())
}

func TestLayoutLineDescriptionConcatenates(t *testing.T) {
	tree, geom, leaves := threeLines(t, [3]float64{10, 10, 20})
	line := &LineWalker{tree: tree}
	w := &LayoutLineWalker{tree: tree, sub: line, geom: geom}

	sel, ok := w.Sync(cursor.FromNode(leaves[0]))
	require.True(t, ok)

	desc := w.Description(cursor.Selection{}, sel)
	require.Len(t, desc, 2)
	require.Equal(t, "soft wrapped ", desc[0].Text)
	require.Equal(t, "continuation", desc[1].Text)
}

func TestLayoutLineBrailleSeparatorAndCursor(t *testing.T) {
	tree, geom, leaves := threeLines(t, [3]float64{10, 10, 20})
	line := &LineWalker{tree: tree}
	w := &LayoutLineWalker{tree: tree, sub: line, geom: geom}

	sel, ok := w.Sync(cursor.FromNode(leaves[0]))
	require.True(t, ok)

	// Cursor placement selection matches the second segment.
	b := w.Braille(cursor.FromNode(leaves[1]), sel)
	require.Equal(t, "soft wrapped  continuation", b.Text)
	require.Len(t, b.Spans, 2)
	require.True(t, b.HasCursor())
	// Single-character caret at the matching segment's start.
	require.Equal(t, len("soft wrapped ")+len(" "), b.CursorStart)
	require.Equal(t, b.CursorStart+1, b.CursorEnd)

	// No segment matches: no caret.
	b2 := w.Braille(cursor.Selection{}, sel)
	require.False(t, b2.HasCursor())
}

func TestLayoutLineSingleNodeFastPath(t *testing.T) {
	tree, geom, leaves := threeLines(t, [3]float64{10, 20, 30})
	line := &LineWalker{tree: tree}
	w := &LayoutLineWalker{tree: tree, sub: line, geom: geom}

	sel, ok := w.Sync(cursor.FromNode(leaves[0]))
	require.True(t, ok)
	require.True(t, sel.SingleNode())

	// Fast path must match the substrategy's output exactly.
	require.Equal(t, line.Braille(cursor.Selection{}, sel), w.Braille(cursor.Selection{}, sel))
	require.Equal(t, line.Description(cursor.Selection{}, sel), w.Description(cursor.Selection{}, sel))
}
