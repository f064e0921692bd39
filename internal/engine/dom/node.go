package dom

import (
	"fmt"
	"strings"
)

// Kind distinguishes element nodes from text nodes.
type Kind uint8

const (
	// KindElement is a tagged element with optional children.
	KindElement Kind = iota

	// KindText is a text unit with no children.
	KindText
)

// Node is a handle to one unit of the document tree.
// Nodes are created by a Tree builder and are never reparented.
type Node struct {
	kind     Kind
	tag      string // lowercase tag; empty for text nodes
	text     string // content for text nodes
	value    string // live value for interactive elements
	selStart int    // live caret start for editable text
	selEnd   int    // live caret end for editable text
	attrs    map[string]string
	parent   *Node
	children []*Node
	tree     *Tree
	index    int // position among siblings
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the lowercase element tag, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// IsText returns true for text nodes.
func (n *Node) IsText() bool { return n.kind == KindText }

// Parent returns the parent node, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The returned slice is owned by
// the node and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Index returns the node's position among its siblings.
func (n *Node) Index() int { return n.index }

// Attr returns the value of the named attribute and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// attr is Attr without the presence flag.
func (n *Node) attr(name string) string {
	return n.attrs[name]
}

// Text returns the node's text content. For elements this is the
// concatenated text of all rendered descendant text nodes.
func (n *Node) Text() string {
	if n.kind == KindText {
		return n.text
	}
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	if !n.Rendered() {
		return
	}
	if n.kind == KindText {
		b.WriteString(n.text)
		return
	}
	for _, c := range n.children {
		c.collectText(b)
	}
}

// Value returns the live value of an interactive element (input value,
// selected option text). Empty for non-interactive nodes.
func (n *Node) Value() string { return n.value }

// SetValue updates the live value of an interactive element.
func (n *Node) SetValue(v string) { n.value = v }

// CaretRange returns the live selection-start and selection-end offsets
// of an editable-text node.
func (n *Node) CaretRange() (start, end int) { return n.selStart, n.selEnd }

// SetCaretRange updates the live caret offsets of an editable-text node.
func (n *Node) SetCaretRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	n.selStart, n.selEnd = start, end
}

// Tree returns the tree this node belongs to.
func (n *Node) Tree() *Tree { return n.tree }

// Attached reports whether the node still belongs to the given tree.
// A node from another tree, or from no tree, is detached.
func (n *Node) Attached(t *Tree) bool {
	return n != nil && t != nil && n.tree == t
}

// NextSibling returns the following sibling, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.index+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[n.index+1]
}

// PrevSibling returns the preceding sibling, or nil.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil || n.index == 0 {
		return nil
	}
	return n.parent.children[n.index-1]
}

// IsAncestorOf returns true if n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Ancestors returns the chain from the root down to and including n.
func (n *Node) Ancestors() []*Node {
	var chain []*Node
	for p := n; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	// Reverse to root-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Compare orders two nodes of the same tree by document order.
// Returns -1 if n precedes other, 0 if identical, 1 if n follows.
// An ancestor precedes its descendants.
func (n *Node) Compare(other *Node) int {
	if n == other {
		return 0
	}
	a := n.Ancestors()
	b := other.Ancestors()
	// Find the first divergence.
	min := len(a)
	if len(b) < min {
		min = len(b)
	}
	for i := 0; i < min; i++ {
		if a[i] != b[i] {
			if a[i].index < b[i].index {
				return -1
			}
			return 1
		}
	}
	// One chain is a prefix of the other: the shorter (ancestor) first.
	if len(a) < len(b) {
		return -1
	}
	return 1
}

// String returns a debug representation of the node.
func (n *Node) String() string {
	if n.kind == KindText {
		t := n.text
		if len(t) > 24 {
			t = t[:24] + "…"
		}
		return fmt.Sprintf("#text(%q)", t)
	}
	return fmt.Sprintf("<%s>", n.tag)
}
