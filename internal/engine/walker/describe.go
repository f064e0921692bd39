package walker

import (
	"fmt"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// roleAnnotation returns the spoken role label for a node, or "" when
// the node has no announceable role. Labels are opaque message keys
// resolved by the host string table.
func roleAnnotation(n *dom.Node) string {
	switch n.ComputedRole() {
	case dom.RoleHeading:
		if lvl := n.HeadingLevel(); lvl > 0 {
			return fmt.Sprintf("heading %d", lvl)
		}
		return "heading"
	case dom.RoleLink:
		return "link"
	case dom.RoleCheckbox:
		return "check box"
	case dom.RoleRadio:
		return "radio button"
	case dom.RoleSlider:
		return "slider"
	case dom.RoleGraphic:
		return "graphic"
	case dom.RoleButton:
		return "button"
	case dom.RoleComboBox:
		return "combo box"
	case dom.RoleEditText:
		return "edit text"
	case dom.RoleTable:
		return "table"
	case dom.RoleList:
		return "list"
	case dom.RoleListItem:
		return "list item"
	case dom.RoleBlockquote:
		return "blockquote"
	case dom.RoleLandmark:
		return "landmark"
	}
	return ""
}

// contextFor builds the container-entry context for a move: the role
// labels of ancestors newly entered between prev and cur, outermost
// first, excluding the target node itself.
func contextFor(prev, cur cursor.Selection) string {
	var prevNode *dom.Node
	if !prev.Start().IsZero() {
		prevNode = prev.Start().Node()
	}
	curNode := cur.Start().Node()
	delta := dom.AncestorDelta(prevNode, curNode)
	ctx := ""
	for _, a := range delta {
		if a == curNode {
			continue
		}
		if label := roleAnnotation(a); label != "" {
			if ctx != "" {
				ctx += " "
			}
			ctx += label
		}
	}
	return ctx
}

// annotationTarget returns the node whose role annotates a leaf: the
// leaf itself when it carries a role, otherwise the nearest ancestor
// with one (text inside a link announces "link").
func annotationTarget(n *dom.Node) *dom.Node {
	for p := n; p != nil; p = p.Parent() {
		if roleAnnotation(p) != "" {
			return p
		}
		if p.IsBlock() && p.ComputedRole() == dom.RoleNone {
			break
		}
	}
	return nil
}

// describeLeaf produces the speech unit for a selection within one
// leaf node.
func describeLeaf(prev, cur cursor.Selection) output.Description {
	n := cur.Start().Node()
	d := output.Description{
		Context: contextFor(prev, cur),
		Text:    cur.Text(),
	}
	if t := annotationTarget(n); t != nil {
		d.Annotation = roleAnnotation(t)
		if t.IsEditable() || t.ComputedRole() == dom.RoleComboBox ||
			t.ComputedRole() == dom.RoleSlider {
			d.UserValue = t.Value()
		}
	}
	return d
}

// leafBraille renders the braille segment for a selection within one
// leaf, with a caret covering the selected range. Editable leaves take
// their caret from the node's live caret offsets instead.
func leafBraille(cur cursor.Selection) output.BrailleLine {
	n := cur.Start().Node()
	b := output.NewBrailleLine()
	if n.IsText() {
		b.Text = n.Text()
		b.CursorStart = cur.Start().Offset()
		b.CursorEnd = cur.End().Offset()
	} else {
		b.Text = n.Label()
		b.CursorStart = 0
		b.CursorEnd = len(b.Text)
	}
	if t := annotationTarget(n); t != nil && t.IsEditable() {
		s, e := t.CaretRange()
		if e <= len(b.Text) {
			b.CursorStart, b.CursorEnd = s, e
		}
	}
	if b.CursorEnd > len(b.Text) {
		b.CursorEnd = len(b.Text)
	}
	if b.CursorStart > b.CursorEnd {
		b.CursorStart = b.CursorEnd
	}
	b.Spans = []output.Span{{Start: 0, End: len(b.Text), Node: n}}
	return b
}

// brailleUnits concatenates per-unit braille segments into one line.
// The caret is placed only within the unit that is absolute-equal to
// cursorSel: from the node's live caret offsets for editable text,
// otherwise a single-character span at the segment start.
func brailleUnits(units []cursor.Selection, cursorSel cursor.Selection) output.BrailleLine {
	bb := output.NewBrailleBuilder()
	for _, u := range units {
		seg := output.NewBrailleLine()
		seg.Text = u.Text()
		seg.Spans = []output.Span{{Start: 0, End: len(seg.Text), Node: u.Start().Node()}}
		if u.AbsEquals(cursorSel) {
			n := u.Start().Node()
			if t := annotationTarget(n); t != nil && t.IsEditable() {
				s, e := t.CaretRange()
				if e <= len(seg.Text) && s <= e {
					seg.CursorStart, seg.CursorEnd = s, e
				}
			}
			if !seg.HasCursor() {
				seg.CursorStart = 0
				seg.CursorEnd = 0
				if len(seg.Text) > 0 {
					seg.CursorEnd = 1
				}
			}
		}
		bb.Append(seg)
	}
	return bb.Line()
}

// leafOf resolves the rendered leaf a cursor sits on: the node itself
// when it is a leaf, otherwise the first (or last, when reversed)
// rendered leaf of its subtree.
func leafOf(c cursor.Cursor, reversed bool) *dom.Node {
	n := c.Node()
	if n == nil {
		return nil
	}
	if n.IsLeaf() && n.Rendered() {
		return n
	}
	if reversed {
		return dom.LastLeaf(n)
	}
	return dom.FirstLeaf(n)
}

// nextNonBreak advances past line-break leaves in the given direction.
func nextNonBreak(n *dom.Node, reversed bool) *dom.Node {
	for n != nil && n.IsLineBreak() {
		if reversed {
			n = dom.PrevLeaf(n)
		} else {
			n = dom.NextLeaf(n)
		}
	}
	return n
}
