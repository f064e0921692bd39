package cursor

import (
	"errors"
	"fmt"

	"github.com/voxtree/docnav/internal/engine/dom"
)

// ErrInvalidSelection indicates a malformed cursor pair: cursors from
// different trees, a missing node, or a negative offset.
var ErrInvalidSelection = errors.New("cursor: invalid selection")

// Selection represents a directed range of the document.
// The endpoints are always stored in document order (Start <= End);
// reversed records that the range was produced by a backward move.
// Selection is an immutable value type.
type Selection struct {
	start    Cursor
	end      Cursor
	reversed bool
}

// NewRange creates a selection from two cursors in either order.
// The endpoints are normalized to document order; the reversed flag
// starts false. Cursors from different trees or with negative offsets
// fail with ErrInvalidSelection.
func NewRange(a, b Cursor) (Selection, error) {
	if a.node == nil || b.node == nil {
		return Selection{}, fmt.Errorf("%w: nil node", ErrInvalidSelection)
	}
	if a.node.Tree() != b.node.Tree() {
		return Selection{}, fmt.Errorf("%w: cursors from different trees", ErrInvalidSelection)
	}
	if a.offset < 0 || b.offset < 0 {
		return Selection{}, fmt.Errorf("%w: negative offset", ErrInvalidSelection)
	}
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return Selection{start: a, end: b}, nil
}

// Caret returns a zero-width selection at the given cursor.
func Caret(c Cursor) Selection {
	return Selection{start: c, end: c}
}

// FromNode returns a selection spanning the whole addressable content
// of a single node.
func FromNode(n *dom.Node) Selection {
	return Selection{start: New(n, 0), end: New(n, Extent(n))}
}

// Span returns a selection from the start of first to the end of last.
// The two nodes must already be in document order.
func Span(first, last *dom.Node) Selection {
	return Selection{start: New(first, 0), end: New(last, Extent(last))}
}

// Start returns the document-order first endpoint.
func (s Selection) Start() Cursor { return s.start }

// End returns the document-order last endpoint.
func (s Selection) End() Cursor { return s.end }

// Reversed reports the user's directional intent.
func (s Selection) Reversed() bool { return s.reversed }

// WithReversed returns a copy with the given directional intent.
// The endpoint ordering invariant is unaffected.
func (s Selection) WithReversed(reversed bool) Selection {
	s.reversed = reversed
	return s
}

// Focus returns the directional endpoint: Start for a reversed
// selection, End otherwise.
func (s Selection) Focus() Cursor {
	if s.reversed {
		return s.start
	}
	return s.end
}

// Anchor returns the endpoint opposite the focus.
func (s Selection) Anchor() Cursor {
	if s.reversed {
		return s.end
	}
	return s.start
}

// Collapse returns a zero-width selection at the directional endpoint,
// preserving the reversed flag.
func (s Selection) Collapse() Selection {
	f := s.Focus()
	return Selection{start: f, end: f, reversed: s.reversed}
}

// IsCollapsed reports whether the selection is zero-width.
func (s Selection) IsCollapsed() bool {
	return s.start.Equals(s.end)
}

// SingleNode reports whether both endpoints lie on the same node.
func (s Selection) SingleNode() bool {
	return s.start.node == s.end.node
}

// Tree returns the tree the selection belongs to.
func (s Selection) Tree() *dom.Tree {
	if s.start.node == nil {
		return nil
	}
	return s.start.node.Tree()
}

// Attached reports whether both endpoints still belong to the given
// tree.
func (s Selection) Attached(t *dom.Tree) bool {
	return s.start.node.Attached(t) && s.end.node.Attached(t)
}

// Equals returns true if two selections have the same endpoints and
// the same direction.
func (s Selection) Equals(other Selection) bool {
	return s.reversed == other.reversed && s.AbsEquals(other)
}

// AbsEquals returns true if two selections denote the same document
// range, disregarding direction.
func (s Selection) AbsEquals(other Selection) bool {
	return s.start.Equals(other.start) && s.end.Equals(other.end)
}

// Text returns the selected text. For a single text node this is the
// covered byte range; for a multi-node range it is the concatenation of
// the covered leaf content.
func (s Selection) Text() string {
	if s.start.node == nil {
		return ""
	}
	if s.SingleNode() {
		n := s.start.node
		if n.IsText() {
			t := n.Text()
			lo, hi := clampRange(s.start.offset, s.end.offset, len(t))
			return t[lo:hi]
		}
		return n.Label()
	}
	out := ""
	for n := s.start.node; n != nil; n = dom.NextLeaf(n) {
		switch {
		case n == s.start.node && n.IsText():
			t := n.Text()
			lo, _ := clampRange(s.start.offset, len(t), len(t))
			out += t[lo:]
		case n == s.end.node && n.IsText():
			t := n.Text()
			_, hi := clampRange(0, s.end.offset, len(t))
			out += t[:hi]
		case n.IsText():
			out += n.Text()
		default:
			out += n.Label()
		}
		if n == s.end.node {
			break
		}
	}
	return out
}

func clampRange(lo, hi, max int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > max {
		hi = max
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// String returns a debug representation of the selection.
func (s Selection) String() string {
	if s.IsCollapsed() {
		return fmt.Sprintf("Caret(%s)", s.start)
	}
	dir := "→"
	if s.reversed {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.start, dir, s.end)
}
