// Package output defines the value types a move produces: speakable
// description units and a compact braille line with span annotations.
// The engine only produces this data; speech synthesis and braille
// device output belong to the host.
package output

import (
	"strings"

	"github.com/voxtree/docnav/internal/engine/dom"
)

// Description is one speakable unit summarizing part of a move.
type Description struct {
	// Context announces newly entered containers ("list with 3 items").
	Context string

	// Text is the primary content to speak.
	Text string

	// UserValue is the live value of an interactive element.
	UserValue string

	// Annotation names the element's role ("link", "heading 2").
	Annotation string
}

// IsEmpty reports whether the unit carries nothing to speak.
func (d Description) IsEmpty() bool {
	return d.Context == "" && d.Text == "" && d.UserValue == "" && d.Annotation == ""
}

// String joins the unit's parts for display or logging.
func (d Description) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{d.Context, d.Text, d.UserValue, d.Annotation} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Span maps a byte range of a braille line back to its source node.
type Span struct {
	Start int
	End   int
	Node  *dom.Node
}

// BrailleLine is a compact text rendering of the current unit with
// span annotations and an optional caret range [CursorStart,
// CursorEnd) into Text. A line with no caret has CursorStart == -1.
type BrailleLine struct {
	Text        string
	Spans       []Span
	CursorStart int
	CursorEnd   int
}

// NewBrailleLine returns an empty line with no caret.
func NewBrailleLine() BrailleLine {
	return BrailleLine{CursorStart: -1, CursorEnd: -1}
}

// HasCursor reports whether the line carries a caret position.
func (b BrailleLine) HasCursor() bool { return b.CursorStart >= 0 }

// SpanAt returns the span covering the given byte position, if any.
func (b BrailleLine) SpanAt(pos int) (Span, bool) {
	for _, s := range b.Spans {
		if pos >= s.Start && pos < s.End {
			return s, true
		}
	}
	return Span{}, false
}

// ItemSeparator joins braille segments from distinct source nodes.
const ItemSeparator = " "

// BrailleBuilder concatenates per-node braille segments into one line,
// offsetting spans and caret positions as segments are appended.
type BrailleBuilder struct {
	line BrailleLine
}

// NewBrailleBuilder returns a builder for an empty line.
func NewBrailleBuilder() *BrailleBuilder {
	return &BrailleBuilder{line: NewBrailleLine()}
}

// Len returns the current byte length of the line under construction.
func (bb *BrailleBuilder) Len() int { return len(bb.line.Text) }

// Append adds a segment, inserting the item separator before it when
// the line is non-empty. Spans and any caret carried by the segment
// are shifted by the insertion offset; an existing caret is kept.
func (bb *BrailleBuilder) Append(seg BrailleLine) {
	offset := len(bb.line.Text)
	if offset > 0 {
		bb.line.Text += ItemSeparator
		offset = len(bb.line.Text)
	}
	bb.line.Text += seg.Text
	for _, s := range seg.Spans {
		bb.line.Spans = append(bb.line.Spans, Span{
			Start: s.Start + offset,
			End:   s.End + offset,
			Node:  s.Node,
		})
	}
	if seg.HasCursor() && !bb.line.HasCursor() {
		bb.line.CursorStart = seg.CursorStart + offset
		bb.line.CursorEnd = seg.CursorEnd + offset
	}
}

// Line returns the assembled braille line.
func (bb *BrailleBuilder) Line() BrailleLine { return bb.line }
