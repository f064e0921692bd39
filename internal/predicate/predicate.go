// Package predicate provides the category matchers used by
// find-next/find-previous navigation.
//
// A Predicate inspects the ancestor delta produced by a move (the
// ordered chain of nodes newly entered, outermost first) and returns
// the first matching node, or nil. Predicates are stateless and
// order-sensitive: role-based matchers scan the delta front-to-back;
// pure tag-equality matchers scan back-to-front.
package predicate

import (
	"github.com/voxtree/docnav/internal/engine/dom"
)

// Predicate inspects an ancestor delta and returns the first matching
// node, or nil when nothing in the delta matches.
type Predicate func(delta []*dom.Node) *dom.Node

// byRole builds a front-to-back matcher over computed roles.
func byRole(roles ...dom.Role) Predicate {
	return func(delta []*dom.Node) *dom.Node {
		for _, n := range delta {
			r := n.ComputedRole()
			for _, want := range roles {
				if r == want {
					return n
				}
			}
		}
		return nil
	}
}

// byTag builds a back-to-front matcher over element tags.
func byTag(tags ...string) Predicate {
	set := map[string]bool{}
	for _, t := range tags {
		set[t] = true
	}
	return func(delta []*dom.Node) *dom.Node {
		for i := len(delta) - 1; i >= 0; i-- {
			if set[delta[i].Tag()] {
				return delta[i]
			}
		}
		return nil
	}
}

// Category predicates.
var (
	Heading    = byRole(dom.RoleHeading)
	Link       = byRole(dom.RoleLink)
	Checkbox   = byRole(dom.RoleCheckbox)
	Radio      = byRole(dom.RoleRadio)
	Slider     = byRole(dom.RoleSlider)
	Graphic    = byRole(dom.RoleGraphic)
	Button     = byRole(dom.RoleButton)
	ComboBox   = byRole(dom.RoleComboBox)
	EditText   = byRole(dom.RoleEditText)
	Table      = byTag("table")
	List       = byTag("ul", "ol", "dl")
	ListItem   = byTag("li", "dt", "dd")
	Blockquote = byTag("blockquote")
	Landmark   = byRole(dom.RoleLandmark)
)

// HeadingLevel matches headings of exactly the given level.
func HeadingLevel(level int) Predicate {
	return func(delta []*dom.Node) *dom.Node {
		for _, n := range delta {
			if n.ComputedRole() == dom.RoleHeading && n.HeadingLevel() == level {
				return n
			}
		}
		return nil
	}
}

// NotLink is the logical negation of Link: it matches a delta that
// contains no link, returning the delta's innermost node.
func NotLink(delta []*dom.Node) *dom.Node {
	if Link(delta) != nil {
		return nil
	}
	if len(delta) == 0 {
		return nil
	}
	return delta[len(delta)-1]
}

// FormField matches any interactive form control.
func FormField(delta []*dom.Node) *dom.Node {
	for _, n := range delta {
		if n.IsFormField() {
			return n
		}
	}
	return nil
}

// JumpPoint matches headings and landmarks.
func JumpPoint(delta []*dom.Node) *dom.Node {
	if n := Heading(delta); n != nil {
		return n
	}
	return Landmark(delta)
}

// Or combines predicates, returning the first match in argument order.
func Or(preds ...Predicate) Predicate {
	return func(delta []*dom.Node) *dom.Node {
		for _, p := range preds {
			if n := p(delta); n != nil {
				return n
			}
		}
		return nil
	}
}
