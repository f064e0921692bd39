package nav

import (
	"errors"
	"fmt"
	"time"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
	"github.com/voxtree/docnav/internal/engine/table"
	"github.com/voxtree/docnav/internal/engine/walker"
	"github.com/voxtree/docnav/internal/predicate"
)

// ErrEmptyDocument indicates the tree renders no navigable content.
var ErrEmptyDocument = errors.New("nav: document has no navigable content")

// Session is the navigation manager for one document. It owns the
// current selection, the active granularity, and the optional
// table-mode sub-state; everything else in the engine is pure.
type Session struct {
	tree *dom.Tree
	reg  *walker.Registry
	geom walker.Geometry

	gran walker.Granularity
	sel  cursor.Selection
	prev cursor.Selection

	delta   []*dom.Node
	desc    []output.Description
	braille output.BrailleLine

	tbl *table.State

	guard    *Guard
	guardTTL time.Duration
	clock    func() time.Time
}

// New creates a session positioned at the first navigable object of
// the tree.
func New(tree *dom.Tree, opts ...Option) (*Session, error) {
	s := &Session{
		tree: tree,
		gran: walker.GranularityObject,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reg = walker.NewRegistry(tree, s.geom)
	s.guard = NewGuard(s.guardTTL, s.clock)

	w := s.reg.Walker(s.gran)
	start := cursor.Caret(cursor.New(tree.Root(), 0))
	sel, ok := w.Sync(start)
	if !ok {
		return nil, ErrEmptyDocument
	}
	s.sel = sel
	s.delta = dom.AncestorDelta(nil, sel.Start().Node())
	s.desc = w.Description(cursor.Selection{}, sel)
	s.braille = w.Braille(cursor.Selection{}, sel)
	return s, nil
}

// Selection returns the current selection.
func (s *Session) Selection() cursor.Selection { return s.sel }

// PrevSelection returns the selection before the last move.
func (s *Session) PrevSelection() cursor.Selection { return s.prev }

// Granularity returns the active granularity.
func (s *Session) Granularity() walker.Granularity { return s.gran }

// GranularityMsg returns the active granularity's message key.
func (s *Session) GranularityMsg() string {
	return s.reg.Walker(s.gran).GranularityMsg()
}

// LastDescription returns the speech units produced by the last move.
func (s *Session) LastDescription() []output.Description { return s.desc }

// LastBraille returns the braille line produced by the last move.
func (s *Session) LastBraille() output.BrailleLine { return s.braille }

// LastDelta returns the ancestor delta of the last move, consumed by
// predicate search and the host's earcon selection.
func (s *Session) LastDelta() []*dom.Node { return s.delta }

// Tree returns the session's document tree.
func (s *Session) Tree() *dom.Tree { return s.tree }

// BeginCommand marks the start of one user-command region for the
// re-entrancy guard.
func (s *Session) BeginCommand() { s.guard.Enter() }

// Busy reports whether any user-command region is still suppressing
// event-driven feedback.
func (s *Session) Busy() bool { return s.guard.Busy() }

// Up switches to the next coarser granularity, clamped at the
// coarsest, and re-syncs the selection at the new granularity.
func (s *Session) Up() walker.Granularity {
	return s.setGranularity(s.reg.Up(s.gran))
}

// Down switches to the next finer granularity, clamped at the finest.
func (s *Session) Down() walker.Granularity {
	return s.setGranularity(s.reg.Down(s.gran))
}

func (s *Session) setGranularity(g walker.Granularity) walker.Granularity {
	s.gran = g
	w := s.reg.Walker(g)
	if synced, ok := w.Sync(s.sel); ok {
		s.sel = synced
	}
	s.desc = []output.Description{{Text: w.GranularityMsg()}}
	s.braille = w.Braille(s.prev, s.sel)
	return g
}

// Next moves forward one unit at the active granularity. In table
// mode a move that escapes the active cell is undone and reported as
// ErrEndOfCell.
func (s *Session) Next() error { return s.move(false) }

// Previous moves backward one unit at the active granularity.
func (s *Session) Previous() error { return s.move(true) }

func (s *Session) move(reversed bool) error {
	if !s.sel.Attached(s.tree) {
		return ErrDetached
	}
	w := s.reg.Walker(s.gran)
	next, ok := w.Next(s.sel.WithReversed(reversed))
	if !ok {
		return ErrBoundary
	}
	if s.tbl != nil && !s.tbl.InCell(next) {
		// Undo by not committing: the selection never moved.
		return ErrEndOfCell
	}
	s.commit(w, next)
	return nil
}

// rawMove is a generic move without table-cell enforcement, used by
// the predicate search drivers. Leaving the table subtree drops table
// mode.
func (s *Session) rawMove(reversed bool) error {
	w := s.reg.Walker(s.gran)
	next, ok := w.Next(s.sel.WithReversed(reversed))
	if !ok {
		return ErrBoundary
	}
	s.commit(w, next)
	if s.tbl != nil && !s.tbl.SyncToCell(s.sel) {
		s.tbl = nil
	}
	return nil
}

func (s *Session) commit(w walker.Walker, next cursor.Selection) {
	var prevNode *dom.Node
	if !s.sel.Start().IsZero() {
		prevNode = s.sel.Start().Node()
	}
	s.prev = s.sel
	s.sel = next
	s.delta = dom.AncestorDelta(prevNode, next.Start().Node())
	s.desc = w.Description(s.prev, next)
	s.braille = w.Braille(s.prev, next)
	s.tree.SetFocus(next.Start().Node())
}

// SyncToNode rebases the current selection onto an externally supplied
// node without changing granularity.
func (s *Session) SyncToNode(n *dom.Node) error {
	if n == nil || !n.Attached(s.tree) {
		return ErrDetached
	}
	w := s.reg.Walker(s.gran)
	sel, ok := w.Sync(cursor.Caret(cursor.New(n, 0)))
	if !ok {
		return ErrDetached
	}
	s.commit(w, sel)
	if s.tbl != nil && !s.tbl.SyncToCell(s.sel) {
		s.tbl = nil
	}
	return nil
}

// ForceSync re-syncs the current selection at the active granularity,
// for use after the host mutates focus or selection state.
func (s *Session) ForceSync() error {
	w := s.reg.Walker(s.gran)
	sel, ok := w.Sync(s.sel)
	if !ok {
		return ErrDetached
	}
	s.commit(w, sel)
	return nil
}

// InTable reports whether table mode is active.
func (s *Session) InTable() bool { return s.tbl != nil }

// EnterTable locates the nearest enclosing table and activates table
// mode positioned at the cell containing the current selection.
// Session state is unchanged on failure.
func (s *Session) EnterTable() error {
	tbl, err := table.Enter(s.sel)
	if err != nil {
		if errors.Is(err, table.ErrNoTable) {
			return ErrNoTable
		}
		return err
	}
	s.tbl = tbl
	return nil
}

// ExitTable clears table mode without moving the selection.
func (s *Session) ExitTable() { s.tbl = nil }

// TablePos returns the 1-indexed grid position while in table mode.
func (s *Session) TablePos() (row, col int, ok bool) {
	if s.tbl == nil {
		return 0, 0, false
	}
	row, col = s.tbl.Pos()
	return row, col, true
}

// TableSize returns the grid dimensions while in table mode.
func (s *Session) TableSize() (rows, cols int, ok bool) {
	if s.tbl == nil {
		return 0, 0, false
	}
	return s.tbl.RowCount(), s.tbl.ColCount(), true
}

// RowHeader returns the active row's header text while in table mode.
func (s *Session) RowHeader() string {
	if s.tbl == nil {
		return ""
	}
	return s.tbl.RowHeader()
}

// ColHeader returns the active column's header text while in table
// mode.
func (s *Session) ColHeader() string {
	if s.tbl == nil {
		return ""
	}
	return s.tbl.ColHeader()
}

// NextRow moves one row down in the grid. ErrBoundary at the edge,
// with coordinates unchanged.
func (s *Session) NextRow() error { return s.tableMove((*table.State).NextRow) }

// PrevRow moves one row up in the grid.
func (s *Session) PrevRow() error { return s.tableMove((*table.State).PrevRow) }

// NextCol moves one column right in the grid.
func (s *Session) NextCol() error { return s.tableMove((*table.State).NextCol) }

// PrevCol moves one column left in the grid.
func (s *Session) PrevCol() error { return s.tableMove((*table.State).PrevCol) }

func (s *Session) tableMove(step func(*table.State) (*dom.Node, bool)) error {
	if s.tbl == nil {
		return ErrNotInTable
	}
	cell, ok := step(s.tbl)
	if !ok {
		return ErrBoundary
	}
	w := s.reg.Walker(s.gran)
	sel, ok := w.Sync(cursor.Caret(cursor.New(cell, 0)))
	if !ok {
		return ErrDetached
	}
	s.commit(w, sel)
	return nil
}

// FindNext repeatedly moves forward until the predicate matches the
// resulting ancestor delta. On failure the session is restored and
// failMsg becomes the spoken description. On success the landing move
// is replayed so the output is indistinguishable from stepwise
// navigation.
func (s *Session) FindNext(p predicate.Predicate, failMsg string) error {
	return s.find(p, failMsg, false)
}

// FindPrevious is FindNext in the backward direction.
func (s *Session) FindPrevious(p predicate.Predicate, failMsg string) error {
	return s.find(p, failMsg, true)
}

func (s *Session) find(p predicate.Predicate, failMsg string, reversed bool) error {
	saved := *s
	for {
		if err := s.rawMove(reversed); err != nil {
			// Exhausted the document: restore and report.
			*s = saved
			if s.tbl != nil {
				s.tbl.SyncToCell(s.sel)
			}
			s.desc = []output.Description{{Text: failMsg}}
			return fmt.Errorf("%w: %s", ErrNoMatch, failMsg)
		}
		if p(s.delta) != nil {
			break
		}
	}
	// Step back and replay the landing move so description boundaries
	// match ordinary navigation.
	if err := s.rawMove(!reversed); err == nil {
		if err := s.rawMove(reversed); err != nil {
			return err
		}
	}
	return nil
}
