// Package cursor provides position and selection values over the
// document tree.
//
// The cursor package handles:
//
//   - Single positions with the Cursor type: a node plus an integer
//     offset into that node's addressable text (byte offset for text
//     nodes, 0..1 for atomic elements)
//   - Directed ranges with the Selection type
//
// Selection Model:
//
// A Selection always stores its endpoints in document order
// (Start <= End); the user's directional intent from a backward move
// is recorded separately in the reversed flag. Two selections are
// "absolute-equal" when they denote the same document range regardless
// of direction.
//
// Cursor and Selection are immutable value types; every transformation
// returns a new value. Constructing a selection from cursors of
// different trees, or with a negative offset, fails with
// ErrInvalidSelection and is never silently coerced.
package cursor
