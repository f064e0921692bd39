package dom

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// FromJSON builds a Tree from a compact JSON fixture. Each node is
// either a bare string (a text node) or an object:
//
//	{
//	  "tag": "p",
//	  "attrs": {"role": "heading"},
//	  "value": "live value",
//	  "children": ["text", {"tag": "b", "children": ["bold"]}]
//	}
//
// Fixtures keep synthetic documents for tests and examples readable.
func FromJSON(src string) (*Tree, error) {
	if !gjson.Valid(src) {
		return nil, fmt.Errorf("dom: invalid json fixture")
	}
	root, err := convertJSON(gjson.Parse(src))
	if err != nil {
		return nil, err
	}
	return Build(root), nil
}

func convertJSON(v gjson.Result) (*Node, error) {
	if v.Type == gjson.String {
		return Text(v.String()), nil
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("dom: fixture node must be string or object, got %s", v.Type)
	}
	tag := v.Get("tag").String()
	if tag == "" {
		return nil, fmt.Errorf("dom: fixture element missing tag")
	}
	attrs := map[string]string{}
	v.Get("attrs").ForEach(func(key, val gjson.Result) bool {
		attrs[key.String()] = val.String()
		return true
	})
	var children []*Node
	var childErr error
	v.Get("children").ForEach(func(_, cv gjson.Result) bool {
		c, err := convertJSON(cv)
		if err != nil {
			childErr = err
			return false
		}
		children = append(children, c)
		return true
	})
	if childErr != nil {
		return nil, childErr
	}
	e := Elem(tag, attrs, children...)
	if val := v.Get("value"); val.Exists() {
		e.value = val.String()
	}
	return e, nil
}
