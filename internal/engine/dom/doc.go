// Package dom provides the document tree the navigation engine reads.
//
// The engine never owns the document: a Tree is built once from an
// external source (HTML via FromHTML, compact JSON fixtures via
// FromJSON, or programmatically with Build) and is treated as
// read-mostly afterwards. Nodes are opaque handles supporting parent,
// children and sibling lookup, tag/role/attribute queries, text
// content, and live value/caret state for interactive elements.
//
// Document order is the total order used everywhere in the engine:
// a node precedes its descendants, and siblings are ordered by index.
// Node.Compare implements it.
//
// Leaf traversal:
//
// Navigation operates over "rendered leaves": text nodes with visible
// content and atomic elements (images, form controls, line breaks).
// NextLeaf and PrevLeaf walk them in document order, skipping
// non-rendered subtrees (head, script, style, aria-hidden).
//
// Geometry:
//
// Rect is the rendered bounding rectangle of a range. The engine
// consumes rectangles through an oracle interface it does not define
// here; this package only supplies the value type.
package dom
