package nav

import "errors"

// Navigation errors. Every move or search reports failure through one
// of these rather than panicking; session state is never left
// partially updated on failure.
var (
	// ErrBoundary indicates no further content exists in the
	// requested direction. Recovered locally; never fatal.
	ErrBoundary = errors.New("nav: document boundary reached")

	// ErrNoMatch indicates a predicate search exhausted the document.
	ErrNoMatch = errors.New("nav: no match found")

	// ErrDetached indicates a node reference no longer belongs to the
	// live tree.
	ErrDetached = errors.New("nav: detached node reference")

	// ErrNoTable indicates enterTable found no enclosing table.
	ErrNoTable = errors.New("nav: no table found")

	// ErrNotInTable indicates a table operation outside table mode.
	ErrNotInTable = errors.New("nav: not in table mode")

	// ErrEndOfCell indicates a generic move in table mode escaped the
	// active cell and was undone.
	ErrEndOfCell = errors.New("nav: end of cell")
)
