package walker

import (
	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// LineWalker navigates structural lines: maximal runs of consecutive
// leaves that share a block container and are not separated by an
// explicit line break.
type LineWalker struct {
	tree *dom.Tree
}

// GranularityMsg implements Walker.
func (w *LineWalker) GranularityMsg() string { return "line" }

// sameLine reports whether b continues a's structural line.
func sameLine(a, b *dom.Node) bool {
	if a == nil || b == nil || a.IsLineBreak() || b.IsLineBreak() {
		return false
	}
	return a.NearestBlock() == b.NearestBlock()
}

// lineFirst walks back to the first leaf of the structural line
// containing the given leaf.
func lineFirst(leaf *dom.Node) *dom.Node {
	for {
		p := dom.PrevLeaf(leaf)
		if !sameLine(leaf, p) {
			return leaf
		}
		leaf = p
	}
}

// lineLast walks forward to the last leaf of the structural line
// containing the given leaf.
func lineLast(leaf *dom.Node) *dom.Node {
	for {
		n := dom.NextLeaf(leaf)
		if !sameLine(leaf, n) {
			return leaf
		}
		leaf = n
	}
}

// lineAround returns the structural-line unit containing the leaf.
func lineAround(leaf *dom.Node, reversed bool) cursor.Selection {
	return cursor.Span(lineFirst(leaf), lineLast(leaf)).WithReversed(reversed)
}

// Next implements Walker.
func (w *LineWalker) Next(sel cursor.Selection) (cursor.Selection, bool) {
	reversed := sel.Reversed()
	var edge cursor.Cursor
	if reversed {
		edge = sel.Start()
	} else {
		edge = sel.End()
	}
	leaf := nextNonBreak(leafOf(edge, reversed), reversed)
	if leaf == nil || !leaf.Attached(w.tree) {
		return cursor.Selection{}, false
	}
	// Advance from the true end of the current line so that a partial
	// input selection still lands on the following line.
	var n *dom.Node
	if reversed {
		n = nextNonBreak(dom.PrevLeaf(lineFirst(leaf)), true)
	} else {
		n = nextNonBreak(dom.NextLeaf(lineLast(leaf)), false)
	}
	if n == nil {
		return cursor.Selection{}, false
	}
	return lineAround(n, reversed), true
}

// Sync implements Walker.
func (w *LineWalker) Sync(sel cursor.Selection) (cursor.Selection, bool) {
	c := sel.Start()
	if c.IsZero() || !c.Node().Attached(w.tree) {
		return cursor.Selection{}, false
	}
	leaf := nextNonBreak(leafOf(c, false), false)
	if leaf == nil {
		return cursor.Selection{}, false
	}
	return lineAround(leaf, sel.Reversed()), true
}

// Description implements Walker.
func (w *LineWalker) Description(prev, cur cursor.Selection) []output.Description {
	if cur.SingleNode() {
		d := describeLeaf(prev, cur)
		if d.IsEmpty() {
			return nil
		}
		return []output.Description{d}
	}
	var out []output.Description
	units := leafUnits(cur)
	unitPrev := prev
	for _, u := range units {
		if d := describeLeaf(unitPrev, u); !d.IsEmpty() {
			out = append(out, d)
		}
		unitPrev = u
	}
	return out
}

// Braille implements Walker.
func (w *LineWalker) Braille(prev, cur cursor.Selection) output.BrailleLine {
	if cur.SingleNode() {
		return leafBraille(cur)
	}
	return brailleUnits(leafUnits(cur), prev)
}
