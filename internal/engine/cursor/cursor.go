package cursor

import (
	"fmt"

	"github.com/voxtree/docnav/internal/engine/dom"
)

// Cursor represents a position in the document: a node plus an integer
// offset into that node's addressable content.
// Cursor is an immutable value type.
type Cursor struct {
	node   *dom.Node
	offset int
}

// New creates a cursor at the given node and offset.
func New(node *dom.Node, offset int) Cursor {
	return Cursor{node: node, offset: offset}
}

// Node returns the cursor's node.
func (c Cursor) Node() *dom.Node { return c.node }

// Offset returns the cursor's offset within its node.
func (c Cursor) Offset() int { return c.offset }

// IsZero reports whether the cursor has no node.
func (c Cursor) IsZero() bool { return c.node == nil }

// WithOffset returns a cursor at the same node with a new offset.
func (c Cursor) WithOffset(offset int) Cursor {
	return Cursor{node: c.node, offset: offset}
}

// Extent returns the addressable length of a node: the byte length of
// a text node's content, otherwise 1 (atomic elements occupy a single
// slot).
func Extent(n *dom.Node) int {
	if n == nil {
		return 0
	}
	if n.IsText() {
		return len(n.Text())
	}
	return 1
}

// Compare orders two cursors by document order: node order first, then
// offset within the same node. Returns -1, 0, or 1.
func (c Cursor) Compare(other Cursor) int {
	if c.node != other.node {
		return c.node.Compare(other.node)
	}
	if c.offset < other.offset {
		return -1
	}
	if c.offset > other.offset {
		return 1
	}
	return 0
}

// Equals returns true if two cursors denote the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.node == other.node && c.offset == other.offset
}

// Before returns true if c precedes other in document order.
func (c Cursor) Before(other Cursor) bool {
	return c.Compare(other) < 0
}

// After returns true if c follows other in document order.
func (c Cursor) After(other Cursor) bool {
	return c.Compare(other) > 0
}

// String returns a debug representation of the cursor.
func (c Cursor) String() string {
	if c.node == nil {
		return "Cursor(nil)"
	}
	return fmt.Sprintf("Cursor(%s@%d)", c.node, c.offset)
}
