package walker

import (
	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// Walker is one granularity strategy. Implementations are stateless;
// all methods are pure over their inputs and the document tree.
type Walker interface {
	// Next returns the next selection at this granularity in the
	// direction implied by sel's reversed flag, or ok=false when no
	// further content exists in that direction.
	Next(sel cursor.Selection) (cursor.Selection, bool)

	// Sync returns the smallest valid selection at this granularity
	// that contains or touches sel, or ok=false when sel cannot be
	// mapped (detached node, empty subtree).
	Sync(sel cursor.Selection) (cursor.Selection, bool)

	// Description produces zero or more speech units summarizing the
	// change from prev to cur.
	Description(prev, cur cursor.Selection) []output.Description

	// Braille produces a compact braille line for cur; prev supplies
	// the caret-placement selection.
	Braille(prev, cur cursor.Selection) output.BrailleLine

	// GranularityMsg returns the opaque message key naming this
	// granularity for user feedback.
	GranularityMsg() string
}

// Geometry answers rendered bounding-rectangle queries for a
// selection. ok=false means no geometry is available for the range;
// consumers fail open and treat the range as sharing its neighbor's
// line.
type Geometry interface {
	BoundingRect(sel cursor.Selection) (dom.Rect, bool)
}

// Granularity is an ordered navigation level. Lower values are finer.
type Granularity uint8

const (
	GranularitySelection Granularity = iota
	GranularityCharacter
	GranularityWord
	GranularitySentence
	GranularityLine
	GranularityLayoutLine
	GranularityParagraph
	GranularityObject
)

// String returns the granularity's message key.
func (g Granularity) String() string {
	switch g {
	case GranularitySelection:
		return "selection"
	case GranularityCharacter:
		return "character"
	case GranularityWord:
		return "word"
	case GranularitySentence:
		return "sentence"
	case GranularityLine:
		return "line"
	case GranularityLayoutLine:
		return "layout line"
	case GranularityParagraph:
		return "paragraph"
	case GranularityObject:
		return "object"
	}
	return "unknown"
}

// granularityOrder is the fixed finest-to-coarsest ordering. The set
// is closed; there is no open extension.
var granularityOrder = []Granularity{
	GranularitySelection,
	GranularityCharacter,
	GranularityWord,
	GranularitySentence,
	GranularityLine,
	GranularityLayoutLine,
	GranularityParagraph,
	GranularityObject,
}

// Registry binds each granularity to its walker.
type Registry struct {
	walkers map[Granularity]Walker
}

// NewRegistry builds the walker family for one document tree. geom may
// be nil, in which case the layout-line walker treats all structural
// lines as sharing a baseline.
func NewRegistry(tree *dom.Tree, geom Geometry) *Registry {
	char := newSegmentWalker(tree, segmentGraphemes, "character")
	line := &LineWalker{tree: tree}
	r := &Registry{walkers: map[Granularity]Walker{
		GranularitySelection:  &SelectionWalker{tree: tree, char: char},
		GranularityCharacter:  char,
		GranularityWord:       newSegmentWalker(tree, segmentWords, "word"),
		GranularitySentence:   newSegmentWalker(tree, segmentSentences, "sentence"),
		GranularityLine:       line,
		GranularityLayoutLine: &LayoutLineWalker{tree: tree, sub: line, geom: geom},
		GranularityParagraph:  &ParagraphWalker{tree: tree},
		GranularityObject:     &ObjectWalker{tree: tree},
	}}
	return r
}

// Walker returns the walker bound to the granularity.
func (r *Registry) Walker(g Granularity) Walker {
	return r.walkers[g]
}

// Finest returns the finest registered granularity.
func (r *Registry) Finest() Granularity {
	return granularityOrder[0]
}

// Coarsest returns the coarsest registered granularity.
func (r *Registry) Coarsest() Granularity {
	return granularityOrder[len(granularityOrder)-1]
}

// Up returns the next coarser granularity, clamped at the coarsest.
func (r *Registry) Up(g Granularity) Granularity {
	for i, o := range granularityOrder {
		if o == g {
			if i+1 < len(granularityOrder) {
				return granularityOrder[i+1]
			}
			return g
		}
	}
	return g
}

// Down returns the next finer granularity, clamped at the finest.
func (r *Registry) Down(g Granularity) Granularity {
	for i, o := range granularityOrder {
		if o == g {
			if i > 0 {
				return granularityOrder[i-1]
			}
			return g
		}
	}
	return g
}
