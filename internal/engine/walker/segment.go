package walker

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/output"
)

// segment is a byte range within one text leaf's content.
type segment struct {
	start int
	end   int
}

// segmenter splits a text leaf's content into granularity units.
type segmenter func(text string) []segment

// segmentGraphemes yields one segment per grapheme cluster.
func segmentGraphemes(text string) []segment {
	var segs []segment
	state := -1
	pos := 0
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		segs = append(segs, segment{start: pos, end: pos + len(cluster)})
		pos += len(cluster)
	}
	return segs
}

// segmentWords yields one segment per whitespace-delimited word.
// Adjacent non-space units from the segmenter (a word plus trailing
// punctuation) fuse into a single navigation unit.
func segmentWords(text string) []segment {
	var segs []segment
	state := -1
	pos := 0
	rest := text
	open := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(word) == "" {
			if open >= 0 {
				segs = append(segs, segment{start: open, end: pos})
				open = -1
			}
		} else if open < 0 {
			open = pos
		}
		pos += len(word)
	}
	if open >= 0 {
		segs = append(segs, segment{start: open, end: pos})
	}
	return segs
}

// segmentSentences yields one segment per sentence. A leaf boundary is
// always a sentence boundary.
func segmentSentences(text string) []segment {
	var segs []segment
	state := -1
	pos := 0
	rest := text
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		if strings.TrimSpace(sentence) != "" {
			segs = append(segs, segment{start: pos, end: pos + len(sentence)})
		}
		pos += len(sentence)
	}
	return segs
}

// segmentWalker implements character, word, and sentence granularities
// over text leaves; atomic elements are a single unit at every
// segment granularity.
type segmentWalker struct {
	tree *dom.Tree
	seg  segmenter
	msg  string
}

func newSegmentWalker(tree *dom.Tree, seg segmenter, msg string) *segmentWalker {
	return &segmentWalker{tree: tree, seg: seg, msg: msg}
}

// GranularityMsg implements Walker.
func (w *segmentWalker) GranularityMsg() string { return w.msg }

// selFor builds the unit selection for a segment of a leaf.
func (w *segmentWalker) selFor(leaf *dom.Node, s segment, reversed bool) cursor.Selection {
	sel, _ := cursor.NewRange(cursor.New(leaf, s.start), cursor.New(leaf, s.end))
	return sel.WithReversed(reversed)
}

// firstUnit returns the first (or last, when reversed) unit of a leaf.
func (w *segmentWalker) firstUnit(leaf *dom.Node, reversed bool) (cursor.Selection, bool) {
	if leaf == nil {
		return cursor.Selection{}, false
	}
	if !leaf.IsText() {
		return cursor.FromNode(leaf).WithReversed(reversed), true
	}
	segs := w.seg(leaf.Text())
	if len(segs) == 0 {
		return cursor.Selection{}, false
	}
	if reversed {
		return w.selFor(leaf, segs[len(segs)-1], reversed), true
	}
	return w.selFor(leaf, segs[0], reversed), true
}

// crossLeaf moves to the adjacent leaf in the given direction and
// returns its boundary unit, skipping leaves with no units.
func (w *segmentWalker) crossLeaf(from *dom.Node, reversed bool) (cursor.Selection, bool) {
	n := from
	for {
		if reversed {
			n = dom.PrevLeaf(n)
		} else {
			n = dom.NextLeaf(n)
		}
		n = nextNonBreak(n, reversed)
		if n == nil {
			return cursor.Selection{}, false
		}
		if sel, ok := w.firstUnit(n, reversed); ok {
			return sel, true
		}
	}
}

// Next implements Walker.
func (w *segmentWalker) Next(sel cursor.Selection) (cursor.Selection, bool) {
	reversed := sel.Reversed()
	var c cursor.Cursor
	if reversed {
		c = sel.Start()
	} else {
		c = sel.End()
	}
	leaf := leafOf(c, reversed)
	if leaf == nil || !leaf.Attached(w.tree) {
		return cursor.Selection{}, false
	}
	if !leaf.IsText() || leaf.IsLineBreak() {
		return w.crossLeaf(leaf, reversed)
	}
	segs := w.seg(leaf.Text())
	off := 0
	if reversed {
		off = len(leaf.Text())
	}
	if leaf == c.Node() {
		off = c.Offset()
	}
	if reversed {
		// Last segment ending at or before the cursor.
		for i := len(segs) - 1; i >= 0; i-- {
			if segs[i].end <= off {
				return w.selFor(leaf, segs[i], true), true
			}
		}
	} else {
		for _, s := range segs {
			if s.start >= off {
				return w.selFor(leaf, s, false), true
			}
		}
	}
	return w.crossLeaf(leaf, reversed)
}

// Sync implements Walker.
func (w *segmentWalker) Sync(sel cursor.Selection) (cursor.Selection, bool) {
	c := sel.Start()
	if c.IsZero() || !c.Node().Attached(w.tree) {
		return cursor.Selection{}, false
	}
	leaf := leafOf(c, false)
	leaf = nextNonBreak(leaf, false)
	if leaf == nil {
		return cursor.Selection{}, false
	}
	if !leaf.IsText() {
		return cursor.FromNode(leaf).WithReversed(sel.Reversed()), true
	}
	segs := w.seg(leaf.Text())
	if len(segs) == 0 {
		return w.crossLeaf(leaf, false)
	}
	// The unit containing or touching the offset.
	off := 0
	if leaf == c.Node() {
		off = c.Offset()
	}
	for _, s := range segs {
		if off < s.end {
			return w.selFor(leaf, s, sel.Reversed()), true
		}
	}
	return w.selFor(leaf, segs[len(segs)-1], sel.Reversed()), true
}

// Description implements Walker.
func (w *segmentWalker) Description(prev, cur cursor.Selection) []output.Description {
	d := describeLeaf(prev, cur)
	if d.IsEmpty() {
		return nil
	}
	return []output.Description{d}
}

// Braille implements Walker.
func (w *segmentWalker) Braille(prev, cur cursor.Selection) output.BrailleLine {
	return leafBraille(cur)
}
