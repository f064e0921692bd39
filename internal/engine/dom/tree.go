package dom

import "strings"

// Tree holds one document. The engine treats it as read-mostly; the
// only mutations it performs are focus tracking and live value/caret
// updates on interactive nodes.
type Tree struct {
	root  *Node
	focus *Node
}

// Root returns the document root.
func (t *Tree) Root() *Node { return t.root }

// Focus returns the currently focused node, or nil.
func (t *Tree) Focus() *Node { return t.focus }

// SetFocus records the focused node. A nil or detached node clears it.
func (t *Tree) SetFocus(n *Node) {
	if n == nil || n.tree != t {
		t.focus = nil
		return
	}
	t.focus = n
}

// Elem creates a detached element node for Build.
func Elem(tag string, attrs map[string]string, children ...*Node) *Node {
	n := &Node{kind: KindElement, tag: strings.ToLower(tag), attrs: attrs}
	if n.attrs == nil {
		n.attrs = map[string]string{}
	}
	for _, c := range children {
		c.parent = n
		c.index = len(n.children)
		n.children = append(n.children, c)
	}
	return n
}

// Text creates a detached text node for Build.
func Text(s string) *Node {
	return &Node{kind: KindText, text: s, attrs: map[string]string{}}
}

// Build assembles a Tree from a detached node structure created with
// Elem and Text, attaching every node to the new tree.
func Build(root *Node) *Tree {
	t := &Tree{root: root}
	var attach func(n *Node)
	attach = func(n *Node) {
		n.tree = t
		for _, c := range n.children {
			attach(c)
		}
	}
	attach(root)
	return t
}

// nonRenderedTags are element subtrees that never produce content.
var nonRenderedTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
	"title":    true,
	"meta":     true,
	"link":     true,
}

// Rendered reports whether the node contributes rendered content.
// A node inside a non-rendered or aria-hidden subtree does not.
func (n *Node) Rendered() bool {
	for p := n; p != nil; p = p.parent {
		if p.kind == KindElement {
			if nonRenderedTags[p.tag] {
				return false
			}
			if p.attr("aria-hidden") == "true" {
				return false
			}
		}
	}
	return true
}

// atomicTags are elements treated as single navigation objects even
// when they have children.
var atomicTags = map[string]bool{
	"img":      true,
	"input":    true,
	"textarea": true,
	"select":   true,
	"button":   true,
	"br":       true,
	"hr":       true,
}

// IsLeaf reports whether the node is a navigation leaf: a text node,
// an atomic element, or a childless element.
func (n *Node) IsLeaf() bool {
	if n.kind == KindText {
		return true
	}
	if atomicTags[n.tag] {
		return true
	}
	return len(n.children) == 0
}

// IsLineBreak reports whether the node forces a line break on its own
// (a <br> element).
func (n *Node) IsLineBreak() bool {
	return n.kind == KindElement && n.tag == "br"
}

// blockTags are elements that establish structural line boundaries.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "caption": true, "dd": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figure": true, "figcaption": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"html": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true, "tr": true,
	"ul": true,
}

// IsBlock reports whether the element establishes a block boundary.
func (n *Node) IsBlock() bool {
	return n.kind == KindElement && blockTags[n.tag]
}

// NearestBlock returns the closest block ancestor of n, or the root.
func (n *Node) NearestBlock() *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.IsBlock() {
			return p
		}
	}
	return n.tree.root
}

// renderable reports whether a leaf is worth visiting: rendered and,
// for text, not whitespace-only.
func renderableLeaf(n *Node) bool {
	if !n.IsLeaf() || !n.Rendered() {
		return false
	}
	if n.kind == KindText && strings.TrimSpace(n.text) == "" {
		return false
	}
	return true
}

// nextInOrder returns the node following n in document order, or nil.
func nextInOrder(n *Node) *Node {
	if len(n.children) > 0 && !atomicTags[n.tag] {
		return n.children[0]
	}
	for p := n; p != nil; p = p.parent {
		if s := p.NextSibling(); s != nil {
			return s
		}
	}
	return nil
}

// prevInOrder returns the node preceding n in document order, or nil.
func prevInOrder(n *Node) *Node {
	s := n.PrevSibling()
	if s == nil {
		return n.parent
	}
	// Descend to the last node of the previous sibling's subtree.
	for len(s.children) > 0 && !atomicTags[s.tag] {
		s = s.children[len(s.children)-1]
	}
	return s
}

// NextLeaf returns the next rendered leaf after n in document order,
// or nil at the end of the document.
func NextLeaf(n *Node) *Node {
	for c := nextInOrder(n); c != nil; c = nextInOrder(c) {
		if renderableLeaf(c) {
			return c
		}
	}
	return nil
}

// PrevLeaf returns the previous rendered leaf before n in document
// order, or nil at the start of the document.
func PrevLeaf(n *Node) *Node {
	for c := prevInOrder(n); c != nil; c = prevInOrder(c) {
		if renderableLeaf(c) {
			return c
		}
	}
	return nil
}

// FirstLeaf returns the first rendered leaf of the subtree rooted at n,
// or nil if the subtree renders nothing.
func FirstLeaf(n *Node) *Node {
	if renderableLeaf(n) {
		return n
	}
	for _, c := range n.children {
		if l := FirstLeaf(c); l != nil {
			return l
		}
	}
	return nil
}

// LastLeaf returns the last rendered leaf of the subtree rooted at n,
// or nil if the subtree renders nothing.
func LastLeaf(n *Node) *Node {
	if renderableLeaf(n) {
		return n
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if l := LastLeaf(n.children[i]); l != nil {
			return l
		}
	}
	return nil
}

// AncestorDelta returns the chain of ancestors newly entered when
// moving from prev to cur, ordered outermost first and including cur
// itself. Ancestors shared with prev are excluded. A nil prev yields
// cur's full ancestor chain.
func AncestorDelta(prev, cur *Node) []*Node {
	if cur == nil {
		return nil
	}
	chain := cur.Ancestors()
	if prev == nil {
		return chain
	}
	shared := map[*Node]bool{}
	for _, a := range prev.Ancestors() {
		shared[a] = true
	}
	var delta []*Node
	for _, a := range chain {
		if !shared[a] {
			delta = append(delta, a)
		}
	}
	return delta
}
