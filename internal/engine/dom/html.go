package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML parses an HTML document into a Tree. Non-rendered subtrees
// are kept in the tree (Rendered filters them during traversal) so
// that node indices match the source structure.
func FromHTML(r io.Reader) (*Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse html: %w", err)
	}
	root := convertHTML(doc)
	if root == nil {
		return nil, fmt.Errorf("dom: html document produced no nodes")
	}
	return Build(root), nil
}

// ParseHTML parses an HTML fragment from a string.
func ParseHTML(src string) (*Tree, error) {
	return FromHTML(strings.NewReader(src))
}

func convertHTML(n *html.Node) *Node {
	switch n.Type {
	case html.DocumentNode:
		// Unwrap to the <html> element.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return convertHTML(c)
			}
		}
		return nil
	case html.ElementNode:
		attrs := map[string]string{}
		for _, a := range n.Attr {
			attrs[strings.ToLower(a.Key)] = a.Val
		}
		var children []*Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertHTML(c); child != nil {
				children = append(children, child)
			}
		}
		e := Elem(n.Data, attrs, children...)
		if v, ok := attrs["value"]; ok {
			e.value = v
		}
		return e
	case html.TextNode:
		return Text(n.Data)
	default:
		// Comments, doctypes.
		return nil
	}
}
