package dom

import "strings"

// Role is a computed semantic category for an element.
type Role string

// Semantic roles the engine distinguishes.
const (
	RoleNone         Role = ""
	RoleHeading      Role = "heading"
	RoleLink         Role = "link"
	RoleCheckbox     Role = "checkbox"
	RoleRadio        Role = "radio"
	RoleSlider       Role = "slider"
	RoleGraphic      Role = "graphic"
	RoleButton       Role = "button"
	RoleComboBox     Role = "combobox"
	RoleEditText     Role = "textbox"
	RoleTable        Role = "table"
	RoleRow          Role = "row"
	RoleCell         Role = "cell"
	RoleColumnHeader Role = "columnheader"
	RoleRowHeader    Role = "rowheader"
	RoleList         Role = "list"
	RoleListItem     Role = "listitem"
	RoleBlockquote   Role = "blockquote"
	RoleLandmark     Role = "landmark"
	RoleLineBreak    Role = "linebreak"
)

// landmarkRoles are explicit ARIA landmark role values.
var landmarkRoles = map[string]bool{
	"application": true, "banner": true, "complementary": true,
	"contentinfo": true, "form": true, "main": true, "navigation": true,
	"region": true, "search": true,
}

// landmarkTags are elements with implicit landmark semantics.
var landmarkTags = map[string]bool{
	"main": true, "nav": true, "header": true, "footer": true,
	"aside": true,
}

// ComputedRole resolves the node's semantic role: the explicit role
// attribute when recognized, otherwise the tag's implicit role.
func (n *Node) ComputedRole() Role {
	if n.kind == KindText {
		return RoleNone
	}
	switch n.attr("role") {
	case "heading":
		return RoleHeading
	case "link":
		return RoleLink
	case "checkbox":
		return RoleCheckbox
	case "radio":
		return RoleRadio
	case "slider":
		return RoleSlider
	case "img":
		return RoleGraphic
	case "button":
		return RoleButton
	case "combobox", "listbox":
		return RoleComboBox
	case "textbox", "searchbox":
		return RoleEditText
	case "table", "grid":
		return RoleTable
	case "row":
		return RoleRow
	case "cell", "gridcell":
		return RoleCell
	case "columnheader":
		return RoleColumnHeader
	case "rowheader":
		return RoleRowHeader
	case "list":
		return RoleList
	case "listitem":
		return RoleListItem
	}
	if landmarkRoles[n.attr("role")] {
		return RoleLandmark
	}

	switch n.tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return RoleHeading
	case "a":
		if _, ok := n.Attr("href"); ok {
			return RoleLink
		}
	case "img":
		return RoleGraphic
	case "button":
		return RoleButton
	case "select":
		return RoleComboBox
	case "textarea":
		return RoleEditText
	case "table":
		return RoleTable
	case "tr":
		return RoleRow
	case "td":
		return RoleCell
	case "th":
		if n.attr("scope") == "row" {
			return RoleRowHeader
		}
		return RoleColumnHeader
	case "ul", "ol", "dl":
		return RoleList
	case "li", "dt", "dd":
		return RoleListItem
	case "blockquote":
		return RoleBlockquote
	case "br":
		return RoleLineBreak
	case "input":
		switch n.attr("type") {
		case "checkbox":
			return RoleCheckbox
		case "radio":
			return RoleRadio
		case "range":
			return RoleSlider
		case "button", "submit", "reset", "image":
			return RoleButton
		default:
			return RoleEditText
		}
	}
	if landmarkTags[n.tag] {
		return RoleLandmark
	}
	return RoleNone
}

// HeadingLevel returns the node's heading level (1-6), or 0 when the
// node is not a heading.
func (n *Node) HeadingLevel() int {
	if n.kind != KindText && len(n.tag) == 2 && n.tag[0] == 'h' &&
		n.tag[1] >= '1' && n.tag[1] <= '6' {
		return int(n.tag[1] - '0')
	}
	if n.ComputedRole() == RoleHeading {
		if lvl := n.attr("aria-level"); len(lvl) == 1 && lvl[0] >= '1' && lvl[0] <= '6' {
			return int(lvl[0] - '0')
		}
		// role=heading with no level defaults to 2.
		if n.attr("role") == "heading" {
			return 2
		}
	}
	return 0
}

// IsEditable reports whether the node accepts text editing.
func (n *Node) IsEditable() bool {
	if n.kind == KindText {
		return false
	}
	if n.attr("contenteditable") == "true" {
		return true
	}
	return n.ComputedRole() == RoleEditText
}

// IsFormField reports whether the node is any interactive form control.
func (n *Node) IsFormField() bool {
	switch n.ComputedRole() {
	case RoleCheckbox, RoleRadio, RoleSlider, RoleButton, RoleComboBox,
		RoleEditText:
		return true
	}
	return n.kind == KindElement && n.tag == "input"
}

// Label returns the text a user hears for the node: aria-label, alt
// text, live value, or text content, in that order of preference.
func (n *Node) Label() string {
	if n.kind == KindText {
		return n.text
	}
	if l := n.attr("aria-label"); l != "" {
		return l
	}
	if n.tag == "img" {
		if alt := n.attr("alt"); alt != "" {
			return alt
		}
	}
	if n.value != "" {
		return n.value
	}
	if v := n.attr("value"); v != "" {
		return v
	}
	if t := strings.TrimSpace(n.Text()); t != "" {
		return t
	}
	if p := n.attr("placeholder"); p != "" {
		return p
	}
	return ""
}
