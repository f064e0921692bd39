package walker

import (
	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// ParagraphWalker navigates by block container: the unit for a leaf is
// the full rendered extent of its nearest block ancestor.
type ParagraphWalker struct {
	tree *dom.Tree
}

// GranularityMsg implements Walker.
func (w *ParagraphWalker) GranularityMsg() string { return "paragraph" }

// unitAround returns the paragraph unit containing the given leaf.
func (w *ParagraphWalker) unitAround(leaf *dom.Node, reversed bool) (cursor.Selection, bool) {
	block := leaf.NearestBlock()
	first := nextNonBreak(dom.FirstLeaf(block), false)
	last := nextNonBreak(dom.LastLeaf(block), true)
	if first == nil || last == nil {
		return cursor.Selection{}, false
	}
	return cursor.Span(first, last).WithReversed(reversed), true
}

// Next implements Walker.
func (w *ParagraphWalker) Next(sel cursor.Selection) (cursor.Selection, bool) {
	reversed := sel.Reversed()
	var edge cursor.Cursor
	if reversed {
		edge = sel.Start()
	} else {
		edge = sel.End()
	}
	leaf := leafOf(edge, reversed)
	if leaf == nil || !leaf.Attached(w.tree) {
		return cursor.Selection{}, false
	}
	// Step beyond the current paragraph before resolving the next one.
	cur, ok := w.unitAround(leaf, reversed)
	if !ok {
		return cursor.Selection{}, false
	}
	var n *dom.Node
	if reversed {
		n = nextNonBreak(dom.PrevLeaf(cur.Start().Node()), true)
	} else {
		n = nextNonBreak(dom.NextLeaf(cur.End().Node()), false)
	}
	if n == nil {
		return cursor.Selection{}, false
	}
	return w.unitAround(n, reversed)
}

// Sync implements Walker.
func (w *ParagraphWalker) Sync(sel cursor.Selection) (cursor.Selection, bool) {
	c := sel.Start()
	if c.IsZero() || !c.Node().Attached(w.tree) {
		return cursor.Selection{}, false
	}
	leaf := nextNonBreak(leafOf(c, false), false)
	if leaf == nil {
		return cursor.Selection{}, false
	}
	return w.unitAround(leaf, sel.Reversed())
}

// Description implements Walker.
func (w *ParagraphWalker) Description(prev, cur cursor.Selection) []output.Description {
	if cur.SingleNode() {
		d := describeLeaf(prev, cur)
		if d.IsEmpty() {
			return nil
		}
		return []output.Description{d}
	}
	d := output.Description{
		Context: contextFor(prev, cur),
		Text:    cur.Text(),
	}
	if block := cur.Start().Node().NearestBlock(); block != nil {
		d.Annotation = roleAnnotation(block)
	}
	if d.IsEmpty() {
		return nil
	}
	return []output.Description{d}
}

// Braille implements Walker.
func (w *ParagraphWalker) Braille(prev, cur cursor.Selection) output.BrailleLine {
	if cur.SingleNode() {
		return leafBraille(cur)
	}
	units := leafUnits(cur)
	return brailleUnits(units, prev)
}

// leafUnits splits a multi-node selection into per-leaf selections in
// document order.
func leafUnits(sel cursor.Selection) []cursor.Selection {
	var units []cursor.Selection
	start := sel.Start().Node()
	end := sel.End().Node()
	for n := start; n != nil; n = dom.NextLeaf(n) {
		if !n.IsLineBreak() {
			units = append(units, cursor.FromNode(n))
		}
		if n == end {
			break
		}
	}
	return units
}
