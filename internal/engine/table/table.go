// Package table implements the grid sub-state used while navigating
// inside a table: row/column coordinates, cell-boundary checks, and
// header lookup.
package table

import (
	"errors"
	"strings"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
)

// ErrNoTable indicates no enclosing table was found at the selection.
var ErrNoTable = errors.New("table: no enclosing table")

// State tracks the grid position while table mode is active. It is
// owned by the navigation session and discarded on exit.
type State struct {
	table *dom.Node
	rows  [][]*dom.Node
	row   int // 0-indexed
	col   int // 0-indexed
}

// Enter locates the nearest enclosing table from the selection and
// positions the state at the cell containing it. Returns ErrNoTable
// when the selection is outside any table.
func Enter(sel cursor.Selection) (*State, error) {
	n := sel.Start().Node()
	if n == nil {
		return nil, ErrNoTable
	}
	var tbl *dom.Node
	for p := n; p != nil; p = p.Parent() {
		if p.ComputedRole() == dom.RoleTable {
			tbl = p
			break
		}
	}
	if tbl == nil {
		return nil, ErrNoTable
	}
	s := &State{table: tbl}
	s.buildGrid()
	if len(s.rows) == 0 {
		return nil, ErrNoTable
	}
	if r, c, ok := s.locate(n); ok {
		s.row, s.col = r, c
	}
	return s, nil
}

// buildGrid collects the table's rows and cells. Rows of nested tables
// are excluded; ragged rows are allowed and reported through ColCount
// as the widest row.
func (s *State) buildGrid() {
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		if n != s.table && n.ComputedRole() == dom.RoleTable {
			return // nested table owns its own grid
		}
		if n.ComputedRole() == dom.RoleRow {
			var cells []*dom.Node
			for _, c := range n.Children() {
				if isCell(c) {
					cells = append(cells, c)
				}
			}
			if len(cells) > 0 {
				s.rows = append(s.rows, cells)
			}
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(s.table)
}

func isCell(n *dom.Node) bool {
	switch n.ComputedRole() {
	case dom.RoleCell, dom.RoleColumnHeader, dom.RoleRowHeader:
		return true
	}
	return false
}

// locate finds the grid coordinates of the cell containing n.
func (s *State) locate(n *dom.Node) (row, col int, ok bool) {
	for r, cells := range s.rows {
		for c, cell := range cells {
			if cell == n || cell.IsAncestorOf(n) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Table returns the table node this state is bound to.
func (s *State) Table() *dom.Node { return s.table }

// RowCount returns the number of rows in the grid.
func (s *State) RowCount() int { return len(s.rows) }

// ColCount returns the width of the widest row.
func (s *State) ColCount() int {
	max := 0
	for _, cells := range s.rows {
		if len(cells) > max {
			max = len(cells)
		}
	}
	return max
}

// Pos returns the 1-indexed grid position.
func (s *State) Pos() (row, col int) { return s.row + 1, s.col + 1 }

// Cell returns the active cell node.
func (s *State) Cell() *dom.Node {
	cells := s.rows[s.row]
	if s.col >= len(cells) {
		return cells[len(cells)-1]
	}
	return cells[s.col]
}

// move attempts a one-step move; at a grid edge it fails and leaves
// the coordinates unchanged.
func (s *State) move(dr, dc int) (*dom.Node, bool) {
	r, c := s.row+dr, s.col+dc
	if r < 0 || r >= len(s.rows) {
		return nil, false
	}
	if c < 0 || c >= len(s.rows[r]) {
		return nil, false
	}
	s.row, s.col = r, c
	return s.Cell(), true
}

// NextRow moves one row down, staying in the same column.
func (s *State) NextRow() (*dom.Node, bool) { return s.move(1, 0) }

// PrevRow moves one row up, staying in the same column.
func (s *State) PrevRow() (*dom.Node, bool) { return s.move(-1, 0) }

// NextCol moves one column right within the current row.
func (s *State) NextCol() (*dom.Node, bool) { return s.move(0, 1) }

// PrevCol moves one column left within the current row.
func (s *State) PrevCol() (*dom.Node, bool) { return s.move(0, -1) }

// InCell reports whether the selection is still inside the active
// cell's subtree. A generic move that escapes the cell must be undone
// by the caller and reported as end-of-cell.
func (s *State) InCell(sel cursor.Selection) bool {
	cell := s.Cell()
	for _, c := range []cursor.Cursor{sel.Start(), sel.End()} {
		n := c.Node()
		if n == nil {
			return false
		}
		if n != cell && !cell.IsAncestorOf(n) {
			return false
		}
	}
	return true
}

// SyncToCell repositions the coordinates at the cell containing the
// selection, for moves made by other means while in table mode.
func (s *State) SyncToCell(sel cursor.Selection) bool {
	n := sel.Start().Node()
	if n == nil {
		return false
	}
	if r, c, ok := s.locate(n); ok {
		s.row, s.col = r, c
		return true
	}
	return false
}

// RowHeader returns the header text for the active row: the declared
// header association when present, otherwise a best-effort guess from
// the nearest header cell in the row.
func (s *State) RowHeader() string {
	if h := s.declaredHeader(dom.RoleRowHeader); h != "" {
		return h
	}
	for _, cell := range s.rows[s.row] {
		if cell.ComputedRole() == dom.RoleRowHeader {
			return strings.TrimSpace(cell.Text())
		}
	}
	// First column often carries de-facto row headers.
	if len(s.rows[s.row]) > 0 {
		first := s.rows[s.row][0]
		if first != s.Cell() && first.ComputedRole() == dom.RoleColumnHeader {
			return strings.TrimSpace(first.Text())
		}
	}
	return ""
}

// ColHeader returns the header text for the active column: the
// declared header association when present, otherwise the nearest
// header cell walking up the column.
func (s *State) ColHeader() string {
	if h := s.declaredHeader(dom.RoleColumnHeader); h != "" {
		return h
	}
	for r := s.row; r >= 0; r-- {
		cells := s.rows[r]
		if s.col >= len(cells) {
			continue
		}
		if cells[s.col].ComputedRole() == dom.RoleColumnHeader {
			return strings.TrimSpace(cells[s.col].Text())
		}
	}
	return ""
}

// declaredHeader resolves the active cell's headers attribute against
// cells of the given role anywhere in the table.
func (s *State) declaredHeader(role dom.Role) string {
	ids, ok := s.Cell().Attr("headers")
	if !ok {
		return ""
	}
	want := map[string]bool{}
	for _, id := range strings.Fields(ids) {
		want[id] = true
	}
	for _, cells := range s.rows {
		for _, cell := range cells {
			id, _ := cell.Attr("id")
			if id != "" && want[id] && cell.ComputedRole() == role {
				return strings.TrimSpace(cell.Text())
			}
		}
	}
	return ""
}
