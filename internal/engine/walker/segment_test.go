package walker

import (
	"testing"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
)

func textTree(paragraphs ...string) *dom.Tree {
	var children []*dom.Node
	for _, p := range paragraphs {
		children = append(children, dom.Elem("p", nil, dom.Text(p)))
	}
	return dom.Build(dom.Elem("body", nil, children...))
}

func startCaret(tree *dom.Tree) cursor.Selection {
	return cursor.Caret(cursor.New(tree.Root(), 0))
}

func TestCharacterWalkerSteps(t *testing.T) {
	tree := textTree("ab")
	w := newSegmentWalker(tree, segmentGraphemes, "character")

	sel, ok := w.Sync(startCaret(tree))
	if !ok {
		t.Fatal("sync failed")
	}
	if sel.Text() != "a" {
		t.Fatalf("first character = %q", sel.Text())
	}

	sel, ok = w.Next(sel)
	if !ok || sel.Text() != "b" {
		t.Fatalf("second character = %q, ok=%v", sel.Text(), ok)
	}

	if _, ok = w.Next(sel); ok {
		t.Error("walker must not wrap past the last character")
	}
}

func TestCharacterWalkerGraphemes(t *testing.T) {
	tree := textTree("é🇺🇸x")
	w := newSegmentWalker(tree, segmentGraphemes, "character")

	sel, _ := w.Sync(startCaret(tree))
	var got []string
	for {
		got = append(got, sel.Text())
		next, ok := w.Next(sel)
		if !ok {
			break
		}
		sel = next
	}
	want := []string{"é", "🇺🇸", "x"}
	if len(got) != len(want) {
		t.Fatalf("clusters = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cluster[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordWalkerSkipsWhitespace(t *testing.T) {
	tree := textTree("one two  three")
	w := newSegmentWalker(tree, segmentWords, "word")

	sel, _ := w.Sync(startCaret(tree))
	var got []string
	for {
		got = append(got, sel.Text())
		next, ok := w.Next(sel)
		if !ok {
			break
		}
		sel = next
	}
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("words = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordWalkerCrossesLeaves(t *testing.T) {
	tree := textTree("end of one.", "start of two.")
	w := newSegmentWalker(tree, segmentWords, "word")

	sel, _ := w.Sync(startCaret(tree))
	// Walk to the last word of the first paragraph.
	for sel.Text() != "one." {
		next, ok := w.Next(sel)
		if !ok {
			t.Fatalf("ran out of words at %q", sel.Text())
		}
		sel = next
	}
	next, ok := w.Next(sel)
	if !ok || next.Text() != "start" {
		t.Fatalf("cross-leaf word = %q, ok=%v", next.Text(), ok)
	}

	// And back again.
	back, ok := w.Next(next.WithReversed(true))
	if !ok || back.Text() != "one." {
		t.Fatalf("backward cross-leaf word = %q, ok=%v", back.Text(), ok)
	}
	if !back.Reversed() {
		t.Error("direction flag must propagate")
	}
}

func TestSentenceWalker(t *testing.T) {
	tree := textTree("First one. Second one. ")
	w := newSegmentWalker(tree, segmentSentences, "sentence")

	sel, _ := w.Sync(startCaret(tree))
	if sel.Text() != "First one. " {
		t.Fatalf("first sentence = %q", sel.Text())
	}
	sel, ok := w.Next(sel)
	if !ok || sel.Text() != "Second one. " {
		t.Fatalf("second sentence = %q", sel.Text())
	}
	if _, ok := w.Next(sel); ok {
		t.Error("no sentence should follow the last")
	}
}

func TestSyncRoundTrip(t *testing.T) {
	// sync(next(sync(s))) is absolute-equal to next(sync(s)).
	tree := textTree("alpha beta gamma")
	w := newSegmentWalker(tree, segmentWords, "word")

	s, ok := w.Sync(startCaret(tree))
	if !ok {
		t.Fatal("sync failed")
	}
	n, ok := w.Next(s)
	if !ok {
		t.Fatal("next failed")
	}
	again, ok := w.Sync(n)
	if !ok {
		t.Fatal("re-sync failed")
	}
	if !again.AbsEquals(n) {
		t.Errorf("sync not idempotent: %v vs %v", again, n)
	}
}

func TestSegmentWalkerAtomicElement(t *testing.T) {
	tree := dom.Build(dom.Elem("body", nil, dom.Elem("p", nil,
		dom.Text("see "),
		dom.Elem("img", map[string]string{"alt": "chart"}),
		dom.Text(" after"),
	)))
	w := newSegmentWalker(tree, segmentWords, "word")

	sel, _ := w.Sync(startCaret(tree))
	if sel.Text() != "see" {
		t.Fatalf("first word = %q", sel.Text())
	}
	sel, ok := w.Next(sel)
	if !ok {
		t.Fatal("next failed")
	}
	if sel.Start().Node().Tag() != "img" {
		t.Fatalf("atomic element should be one unit, got %v", sel.Start().Node())
	}
	sel, ok = w.Next(sel)
	if !ok || sel.Text() != "after" {
		t.Fatalf("word after atomic = %q", sel.Text())
	}
}

func TestDescriptionAnnotatesRole(t *testing.T) {
	tree := dom.Build(dom.Elem("body", nil,
		dom.Elem("h2", nil, dom.Text("Prices")),
	))
	w := &ObjectWalker{tree: tree}
	sel, _ := w.Sync(startCaret(tree))

	desc := w.Description(cursor.Selection{}, sel)
	if len(desc) != 1 {
		t.Fatalf("description units = %d", len(desc))
	}
	if desc[0].Text != "Prices" {
		t.Errorf("text = %q", desc[0].Text)
	}
	if desc[0].Annotation != "heading 2" {
		t.Errorf("annotation = %q", desc[0].Annotation)
	}
}
