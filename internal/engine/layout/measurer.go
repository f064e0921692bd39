// Package layout provides a deterministic monospace geometry oracle.
//
// Measurer lays the document out on a character grid of fixed width
// and answers bounding-rectangle queries over selections. It stands in
// for a host renderer: the layout-line walker only needs stable Bottom
// coordinates for content sharing a row, which a grid gives exactly.
package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
)

// Cell metrics of the grid in layout units.
const (
	CellWidth  = 1.0
	RowHeight  = 1.0
	minColumns = 4
)

// fragment is a laid-out run of one leaf: byte range [start,end) of
// the leaf's addressable content placed on a single row.
type fragment struct {
	start, end int
	row        int
	colStart   int
	colEnd     int
}

// Measurer is a monospace layout of one document tree.
type Measurer struct {
	tree    *dom.Tree
	columns int
	frags   map[*dom.Node][]fragment
	rows    int
}

// NewMeasurer lays out the tree at the given column width.
func NewMeasurer(tree *dom.Tree, columns int) *Measurer {
	if columns < minColumns {
		columns = minColumns
	}
	m := &Measurer{tree: tree, columns: columns, frags: map[*dom.Node][]fragment{}}
	m.layout()
	return m
}

// Columns returns the layout width in cells.
func (m *Measurer) Columns() int { return m.columns }

// Rows returns the number of rows the document occupies.
func (m *Measurer) Rows() int { return m.rows }

// layout walks the rendered leaves in document order, flowing text
// onto the grid and breaking rows at block boundaries and <br>.
func (m *Measurer) layout() {
	row, col := 0, 0
	var prevLeaf *dom.Node
	newRow := func() {
		if col > 0 {
			row++
			col = 0
		}
	}
	leaf := dom.FirstLeaf(m.tree.Root())
	for ; leaf != nil; leaf = dom.NextLeaf(leaf) {
		if leaf.IsLineBreak() {
			// A break occupies no cells but forces the next row.
			m.frags[leaf] = []fragment{{start: 0, end: 1, row: row, colStart: col, colEnd: col}}
			row++
			col = 0
			prevLeaf = leaf
			continue
		}
		if prevLeaf != nil && prevLeaf.NearestBlock() != leaf.NearestBlock() {
			newRow()
		}
		if leaf.IsText() {
			row, col = m.flowText(leaf, row, col)
		} else {
			label := leaf.Label()
			w := runewidth.StringWidth(label)
			if w == 0 {
				w = 1
			}
			if col > 0 && col+w > m.columns {
				row++
				col = 0
			}
			m.frags[leaf] = []fragment{{start: 0, end: 1, row: row, colStart: col, colEnd: col + w}}
			col += w
		}
		prevLeaf = leaf
	}
	m.rows = row + 1
}

// flowText places one text leaf on the grid, wrapping at the column
// limit on grapheme boundaries.
func (m *Measurer) flowText(leaf *dom.Node, row, col int) (int, int) {
	text := leaf.Text()
	frag := fragment{start: 0, row: row, colStart: col}
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if col+width > m.columns && col > 0 {
			frag.end = pos
			frag.colEnd = col
			if frag.end > frag.start {
				m.frags[leaf] = append(m.frags[leaf], frag)
			}
			row++
			col = 0
			frag = fragment{start: pos, row: row, colStart: 0}
		}
		pos += len(cluster)
		col += width
	}
	frag.end = pos
	frag.colEnd = col
	if frag.end > frag.start {
		m.frags[leaf] = append(m.frags[leaf], frag)
	}
	return row, col
}

// BoundingRect implements the walker geometry oracle: the smallest
// rectangle covering every laid-out fragment touched by the selection.
func (m *Measurer) BoundingRect(sel cursor.Selection) (dom.Rect, bool) {
	start := sel.Start()
	end := sel.End()
	if start.IsZero() || !start.Node().Attached(m.tree) {
		return dom.Rect{}, false
	}
	var out dom.Rect
	found := false
	n := start.Node()
	if !n.IsLeaf() {
		n = dom.FirstLeaf(n)
	}
	for ; n != nil; n = dom.NextLeaf(n) {
		lo, hi := 0, cursor.Extent(n)
		if n == start.Node() {
			lo = start.Offset()
		}
		if n == end.Node() {
			hi = end.Offset()
		}
		for _, f := range m.frags[n] {
			if f.end <= lo || f.start >= hi {
				continue
			}
			r := dom.Rect{
				Top:    float64(f.row) * RowHeight,
				Bottom: float64(f.row+1) * RowHeight,
				Left:   float64(f.colStart) * CellWidth,
				Right:  float64(f.colEnd) * CellWidth,
			}
			if r.Right <= r.Left {
				r.Right = r.Left + CellWidth
			}
			if !found {
				out = r
				found = true
			} else {
				out = out.Union(r)
			}
		}
		if n == end.Node() || n.Compare(end.Node()) > 0 {
			break
		}
	}
	return out, found
}

// RowOf returns the first row a node occupies, for rendering hosts.
func (m *Measurer) RowOf(n *dom.Node) (int, bool) {
	fs := m.frags[n]
	if len(fs) == 0 {
		return 0, false
	}
	return fs[0].row, true
}

// Fragments returns the laid-out byte ranges of a leaf with their grid
// placement, in row order: (start, end, row, colStart) per fragment.
func (m *Measurer) Fragments(n *dom.Node) [][4]int {
	fs := m.frags[n]
	out := make([][4]int, len(fs))
	for i, f := range fs {
		out[i] = [4]int{f.start, f.end, f.row, f.colStart}
	}
	return out
}
