package predicate

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/voxtree/docnav/internal/engine/dom"
)

// ErrBadScript indicates a predicate script that failed to load or did
// not define a match function.
var ErrBadScript = errors.New("predicate: bad script")

// FromLua compiles a user-defined category predicate from a Lua
// script. The script must define
//
//	function match(nodes) ... end
//
// where nodes is an array of tables {tag=..., role=..., text=...,
// level=...} ordered outermost first. It returns the 1-based index of
// the matching node, or nil.
//
// The navigation engine is single-threaded, so the returned Predicate
// holds one Lua state and must not be called concurrently.
func FromLua(src string) (Predicate, error) {
	L := lua.NewState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	fn, ok := L.GetGlobal("match").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: no match function", ErrBadScript)
	}
	return func(delta []*dom.Node) *dom.Node {
		arr := L.NewTable()
		for _, n := range delta {
			arr.Append(luaNode(L, n))
		}
		if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, arr); err != nil {
			return nil
		}
		ret := L.Get(-1)
		L.Pop(1)
		idx, ok := ret.(lua.LNumber)
		if !ok {
			return nil
		}
		i := int(idx) - 1
		if i < 0 || i >= len(delta) {
			return nil
		}
		return delta[i]
	}, nil
}

// luaNode exposes a read-only snapshot of a node to the script.
func luaNode(L *lua.LState, n *dom.Node) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "tag", lua.LString(n.Tag()))
	L.SetField(t, "role", lua.LString(string(n.ComputedRole())))
	L.SetField(t, "text", lua.LString(n.Label()))
	L.SetField(t, "level", lua.LNumber(n.HeadingLevel()))
	return t
}
