package walker

import (
	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// SelectionWalker grows or shrinks the current selection one character
// at a time instead of replacing it. It composes the character walker
// for unit stepping.
type SelectionWalker struct {
	tree *dom.Tree
	char *segmentWalker
}

// GranularityMsg implements Walker.
func (w *SelectionWalker) GranularityMsg() string { return "selection" }

// Next implements Walker. Forward motion anchors the selection start
// and advances the end by one character; backward motion anchors the
// end and retreats the start.
func (w *SelectionWalker) Next(sel cursor.Selection) (cursor.Selection, bool) {
	step, ok := w.char.Next(sel)
	if !ok {
		return cursor.Selection{}, false
	}
	var out cursor.Selection
	var err error
	if sel.Reversed() {
		out, err = cursor.NewRange(step.Start(), sel.End())
	} else {
		out, err = cursor.NewRange(sel.Start(), step.End())
	}
	if err != nil {
		return cursor.Selection{}, false
	}
	return out.WithReversed(sel.Reversed()), true
}

// Sync implements Walker. An existing range is already a valid
// selection unit; a collapsed caret maps to its character.
func (w *SelectionWalker) Sync(sel cursor.Selection) (cursor.Selection, bool) {
	if !sel.Start().IsZero() && sel.Attached(w.tree) && !sel.IsCollapsed() {
		return sel, true
	}
	return w.char.Sync(sel)
}

// Description implements Walker. The newly covered character is spoken
// with a "selected" annotation.
func (w *SelectionWalker) Description(prev, cur cursor.Selection) []output.Description {
	d := output.Description{
		Text:       cur.Text(),
		Annotation: "selected",
	}
	return []output.Description{d}
}

// Braille implements Walker.
func (w *SelectionWalker) Braille(prev, cur cursor.Selection) output.BrailleLine {
	if cur.SingleNode() {
		return leafBraille(cur)
	}
	return brailleUnits(leafUnits(cur), prev)
}
