// Package nav orchestrates document navigation: it owns the current
// selection, the active granularity, the table-mode sub-state, and the
// per-move outputs consumed by the host's speech and braille sinks.
//
// A Session is an explicit navigation object constructed at session
// start and disposed with the document; there is no ambient global
// state. All operations run synchronously to completion within one
// logical user-command turn; the only time-dependent piece is the
// re-entrancy Guard, which suppresses feedback loops from the engine's
// own focus and selection changes via per-command expiry tokens.
//
// Moves are all-or-nothing: on any failure (boundary, detached node,
// end of cell) the current selection and table state are left exactly
// as they were.
package nav
