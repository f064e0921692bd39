package walker

import (
	"testing"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
)

// lineTree has two block lines, the first split by an explicit break:
//
//	<p>alpha <b>beta</b><br>gamma</p>
//	<p>delta</p>
func lineTree() (*dom.Tree, map[string]*dom.Node) {
	alpha := dom.Text("alpha ")
	beta := dom.Text("beta")
	gamma := dom.Text("gamma")
	delta := dom.Text("delta")
	tree := dom.Build(dom.Elem("body", nil,
		dom.Elem("p", nil,
			alpha,
			dom.Elem("b", nil, beta),
			dom.Elem("br", nil),
			gamma,
		),
		dom.Elem("p", nil, delta),
	))
	return tree, map[string]*dom.Node{
		"alpha": alpha, "beta": beta, "gamma": gamma, "delta": delta,
	}
}

func TestLineWalkerSyncSpansInlineRun(t *testing.T) {
	tree, leaves := lineTree()
	w := &LineWalker{tree: tree}

	sel, ok := w.Sync(cursor.Caret(cursor.New(leaves["beta"], 2)))
	if !ok {
		t.Fatal("sync failed")
	}
	if sel.Start().Node() != leaves["alpha"] || sel.End().Node() != leaves["beta"] {
		t.Fatalf("line = %v, want alpha..beta", sel)
	}
	if got := sel.Text(); got != "alpha beta" {
		t.Fatalf("line text = %q, want %q", got, "alpha beta")
	}
}

func TestLineWalkerBreakAndBlockBoundaries(t *testing.T) {
	tree, leaves := lineTree()
	w := &LineWalker{tree: tree}

	sel, ok := w.Sync(cursor.FromNode(leaves["alpha"]))
	if !ok {
		t.Fatal("sync failed")
	}

	// br ends the first line even inside the same block.
	sel, ok = w.Next(sel)
	if !ok {
		t.Fatal("next failed")
	}
	if !sel.SingleNode() || sel.Start().Node() != leaves["gamma"] {
		t.Fatalf("second line = %v, want gamma", sel)
	}

	// Leaving the block starts the third line.
	sel, ok = w.Next(sel)
	if !ok {
		t.Fatal("next failed")
	}
	if !sel.SingleNode() || sel.Start().Node() != leaves["delta"] {
		t.Fatalf("third line = %v, want delta", sel)
	}

	if _, ok = w.Next(sel); ok {
		t.Fatal("walked past the last line")
	}
}

func TestLineWalkerBackward(t *testing.T) {
	tree, leaves := lineTree()
	w := &LineWalker{tree: tree}

	sel, ok := w.Sync(cursor.FromNode(leaves["delta"]).WithReversed(true))
	if !ok {
		t.Fatal("sync failed")
	}

	sel, ok = w.Next(sel)
	if !ok {
		t.Fatal("next failed")
	}
	if sel.Start().Node() != leaves["gamma"] || !sel.Reversed() {
		t.Fatalf("previous line = %v, want reversed gamma", sel)
	}

	sel, ok = w.Next(sel)
	if !ok {
		t.Fatal("next failed")
	}
	if sel.Start().Node() != leaves["alpha"] || sel.End().Node() != leaves["beta"] {
		t.Fatalf("first line = %v, want alpha..beta", sel)
	}

	if _, ok = w.Next(sel); ok {
		t.Fatal("walked before the first line")
	}
}

func TestLineWalkerNextFromPartialSelection(t *testing.T) {
	tree, leaves := lineTree()
	w := &LineWalker{tree: tree}

	// A caret mid-line still advances to the following line, not to the
	// rest of the current one.
	caret := cursor.Caret(cursor.New(leaves["alpha"], 3))
	sel, ok := w.Next(caret)
	if !ok {
		t.Fatal("next failed")
	}
	if sel.Start().Node() != leaves["gamma"] {
		t.Fatalf("next line = %v, want gamma", sel)
	}
}

func TestLineWalkerDescriptionPerLeaf(t *testing.T) {
	tree, leaves := lineTree()
	w := &LineWalker{tree: tree}

	sel, ok := w.Sync(cursor.FromNode(leaves["alpha"]))
	if !ok {
		t.Fatal("sync failed")
	}
	desc := w.Description(cursor.Selection{}, sel)
	if len(desc) != 2 {
		t.Fatalf("got %d description units, want 2", len(desc))
	}
	if desc[0].Text != "alpha " || desc[1].Text != "beta" {
		t.Fatalf("description texts = %q, %q", desc[0].Text, desc[1].Text)
	}

	b := w.Braille(cursor.Selection{}, sel)
	if b.Text != "alpha  beta" {
		t.Fatalf("braille text = %q", b.Text)
	}
	if len(b.Spans) != 2 || b.Spans[1].Node != leaves["beta"] {
		t.Fatalf("braille spans = %v", b.Spans)
	}
}
