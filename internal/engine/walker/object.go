package walker

import (
	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// ObjectWalker navigates whole leaf objects: text runs and atomic
// elements. Line breaks are separators, never objects.
type ObjectWalker struct {
	tree *dom.Tree
}

// GranularityMsg implements Walker.
func (w *ObjectWalker) GranularityMsg() string { return "object" }

// Next implements Walker.
func (w *ObjectWalker) Next(sel cursor.Selection) (cursor.Selection, bool) {
	reversed := sel.Reversed()
	var c cursor.Cursor
	if reversed {
		c = sel.Start()
	} else {
		c = sel.End()
	}
	leaf := leafOf(c, reversed)
	if leaf == nil || !leaf.Attached(w.tree) {
		return cursor.Selection{}, false
	}
	var n *dom.Node
	if reversed {
		n = dom.PrevLeaf(leaf)
	} else {
		n = dom.NextLeaf(leaf)
	}
	n = nextNonBreak(n, reversed)
	if n == nil {
		return cursor.Selection{}, false
	}
	return cursor.FromNode(n).WithReversed(reversed), true
}

// Sync implements Walker.
func (w *ObjectWalker) Sync(sel cursor.Selection) (cursor.Selection, bool) {
	c := sel.Start()
	if c.IsZero() || !c.Node().Attached(w.tree) {
		return cursor.Selection{}, false
	}
	leaf := nextNonBreak(leafOf(c, false), false)
	if leaf == nil {
		return cursor.Selection{}, false
	}
	return cursor.FromNode(leaf).WithReversed(sel.Reversed()), true
}

// Description implements Walker.
func (w *ObjectWalker) Description(prev, cur cursor.Selection) []output.Description {
	d := describeLeaf(prev, cur)
	if d.IsEmpty() {
		return nil
	}
	return []output.Description{d}
}

// Braille implements Walker.
func (w *ObjectWalker) Braille(prev, cur cursor.Selection) output.BrailleLine {
	return leafBraille(cur)
}
