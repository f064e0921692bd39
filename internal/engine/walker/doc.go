// Package walker implements the granularity strategies that move the
// virtual cursor through the document.
//
// Every granularity (selection, character, word, sentence, structural
// line, layout line, paragraph, object) implements the Walker
// interface:
//
//   - Next returns the following unit at the walker's granularity in
//     the direction implied by the selection's reversed flag, or
//     ok=false at the document boundary. Walkers never wrap; wrap
//     policy belongs to the caller.
//   - Sync maps an arbitrary selection onto the smallest valid unit at
//     this granularity that contains or touches it.
//   - Description and Braille summarize the change from the previous
//     selection to the current one as speech units and a braille line.
//
// Walkers are pure over their inputs and the document tree; they hold
// no mutable state. The Registry binds each granularity to its walker
// in a fixed order from finest to coarsest and answers up/down
// stepping, clamped at the ends.
//
// The layout-line walker additionally consults a Geometry oracle to
// merge structural lines that share a rendered baseline into a single
// visual line.
package walker
