package walker

import (
	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// LayoutLineWalker navigates visual lines. It composes the structural
// line walker with a geometry oracle: consecutive structural lines
// whose rendered rectangles share a Bottom coordinate belong to the
// same visual line and are merged into one unit.
//
// Bottom comparison is exact, with no epsilon. Content that belongs
// together is expected to report identical baselines; any difference
// is treated as a genuine line break. A missing or zero-sized
// rectangle fails open as "same line" so that geometry gaps never
// fragment a line.
type LayoutLineWalker struct {
	tree *dom.Tree
	sub  *LineWalker
	geom Geometry
}

// GranularityMsg implements Walker.
func (w *LayoutLineWalker) GranularityMsg() string { return "layout line" }

// bottom returns the rendered Bottom of a selection. ok=false when the
// oracle has nothing usable for the range.
func (w *LayoutLineWalker) bottom(sel cursor.Selection) (float64, bool) {
	if w.geom == nil {
		return 0, false
	}
	r, ok := w.geom.BoundingRect(sel)
	if !ok || r.Empty() {
		return 0, false
	}
	return r.Bottom, true
}

// sameVisualLine reports whether two sub-selections share a rendered
// baseline. Either side lacking geometry fails open.
func (w *LayoutLineWalker) sameVisualLine(a, b cursor.Selection) bool {
	ab, aok := w.bottom(a)
	bb, bok := w.bottom(b)
	if !aok || !bok {
		return true
	}
	return ab == bb
}

// extend grows sel one structural line at a time in the given
// direction while the newly produced sub-selection still shares the
// running selection's baseline. The first sub-selection with a
// differing Bottom marks the visual line break and is discarded.
func (w *LayoutLineWalker) extend(sel cursor.Selection, reversed bool) cursor.Selection {
	cur := sel
	for {
		probe, ok := w.sub.Next(cur.WithReversed(reversed))
		if !ok {
			break
		}
		if !w.sameVisualLine(cur, probe) {
			break
		}
		var merged cursor.Selection
		var err error
		if reversed {
			merged, err = cursor.NewRange(probe.Start(), cur.End())
		} else {
			merged, err = cursor.NewRange(cur.Start(), probe.End())
		}
		if err != nil {
			break
		}
		cur = merged
	}
	return cur.WithReversed(sel.Reversed())
}

// Next implements Walker. It collapses to the directed endpoint, syncs
// the substrategy there, advances it once, then extends the result
// into a full layout line in the direction of travel.
func (w *LayoutLineWalker) Next(sel cursor.Selection) (cursor.Selection, bool) {
	reversed := sel.Reversed()
	c := sel.Collapse()
	s, ok := w.sub.Sync(c)
	if !ok {
		return cursor.Selection{}, false
	}
	n, ok := w.sub.Next(s.WithReversed(reversed))
	if !ok {
		return cursor.Selection{}, false
	}
	return w.extend(n, reversed).WithReversed(reversed), true
}

// Sync implements Walker. It syncs the substrategy, then extends in
// both directions from that anchor to cover the full visual line
// containing it.
func (w *LayoutLineWalker) Sync(sel cursor.Selection) (cursor.Selection, bool) {
	s, ok := w.sub.Sync(sel)
	if !ok {
		return cursor.Selection{}, false
	}
	fwd := w.extend(s, false)
	bwd := w.extend(s, true)
	out, err := cursor.NewRange(bwd.Start(), fwd.End())
	if err != nil {
		return cursor.Selection{}, false
	}
	return out.WithReversed(sel.Reversed()), true
}

// units splits a layout line back into its structural lines.
func (w *LayoutLineWalker) units(cur cursor.Selection) []cursor.Selection {
	var out []cursor.Selection
	u, ok := w.sub.Sync(cursor.Caret(cur.Start()))
	for ok && u.Start().Compare(cur.End()) < 0 {
		out = append(out, u)
		u, ok = w.sub.Next(u.WithReversed(false))
	}
	return out
}

// Description implements Walker. A layout line collapsing to a single
// underlying node delegates to the substrategy; otherwise the
// sub-descriptions of each structural line are concatenated in order.
func (w *LayoutLineWalker) Description(prev, cur cursor.Selection) []output.Description {
	if cur.SingleNode() {
		return w.sub.Description(prev, cur)
	}
	var out []output.Description
	unitPrev := prev
	for _, u := range w.units(cur) {
		out = append(out, w.sub.Description(unitPrev, u)...)
		unitPrev = u
	}
	return out
}

// Braille implements Walker. Segments are joined with the item
// separator; the caret lands only in the segment whose sub-selection
// is absolute-equal to prev (the cursor-placement selection).
func (w *LayoutLineWalker) Braille(prev, cur cursor.Selection) output.BrailleLine {
	if cur.SingleNode() {
		return w.sub.Braille(prev, cur)
	}
	return brailleUnits(w.units(cur), prev)
}
