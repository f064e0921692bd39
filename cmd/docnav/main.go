// Package main is a terminal reader driving the navigation engine.
// It renders a document at terminal width and maps keys to session
// operations; speech output is shown as text in the status area.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/voxtree/docnav/internal/engine/cursor"
	"github.com/voxtree/docnav/internal/engine/dom"
	"github.com/voxtree/docnav/internal/engine/layout"
	"github.com/voxtree/docnav/internal/nav"
	"github.com/voxtree/docnav/internal/predicate"
)

func main() {
	os.Exit(run())
}

func run() int {
	var width int
	flag.IntVar(&width, "width", 0, "Layout width in columns (0 = terminal width)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "docnav - assistive document navigator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: docnav [options] file.html|file.json\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  n / right     next unit        p / left   previous unit\n")
		fmt.Fprintf(os.Stderr, "  ] / [         coarser / finer granularity\n")
		fmt.Fprintf(os.Stderr, "  t             toggle table mode; arrows move by cell\n")
		fmt.Fprintf(os.Stderr, "  h / H         next / previous heading\n")
		fmt.Fprintf(os.Stderr, "  l / L         next / previous link\n")
		fmt.Fprintf(os.Stderr, "  q             quit\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	tree, err := loadDocument(flag.Arg(0))
	if err != nil {
		log.Printf("load: %v", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("screen: %v", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Printf("screen init: %v", err)
		return 1
	}
	defer screen.Fini()

	app := &reader{screen: screen, tree: tree, width: width}
	if err := app.start(); err != nil {
		screen.Fini()
		log.Printf("session: %v", err)
		return 1
	}
	app.loop()
	return 0
}

func loadDocument(path string) (*dom.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".json" {
		return dom.FromJSON(string(data))
	}
	return dom.FromHTML(strings.NewReader(string(data)))
}

type reader struct {
	screen  tcell.Screen
	tree    *dom.Tree
	width   int
	meas    *layout.Measurer
	session *nav.Session
	status  string
}

// start lays the document out and opens a navigation session.
func (r *reader) start() error {
	cols := r.width
	if cols <= 0 {
		cols, _ = r.screen.Size()
	}
	r.meas = layout.NewMeasurer(r.tree, cols)
	s, err := nav.New(r.tree, nav.WithGeometry(r.meas))
	if err != nil {
		return err
	}
	r.session = s
	return nil
}

func (r *reader) loop() {
	for {
		r.draw()
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			if r.width <= 0 {
				cols, _ := r.screen.Size()
				r.meas = layout.NewMeasurer(r.tree, cols)
			}
			r.screen.Sync()
		case *tcell.EventKey:
			if !r.handleKey(ev) {
				return
			}
		}
	}
}

func (r *reader) handleKey(ev *tcell.EventKey) bool {
	s := r.session
	s.BeginCommand()
	report := func(err error) {
		switch {
		case err == nil:
			r.status = ""
		case errors.Is(err, nav.ErrBoundary):
			r.status = "(end)"
		case errors.Is(err, nav.ErrEndOfCell):
			r.status = "(end of cell)"
		default:
			r.status = err.Error()
		}
	}
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
		return false
	case ev.Rune() == 'n' || ev.Key() == tcell.KeyRight:
		if s.InTable() && ev.Key() == tcell.KeyRight {
			report(s.NextCol())
		} else {
			report(s.Next())
		}
	case ev.Rune() == 'p' || ev.Key() == tcell.KeyLeft:
		if s.InTable() && ev.Key() == tcell.KeyLeft {
			report(s.PrevCol())
		} else {
			report(s.Previous())
		}
	case ev.Key() == tcell.KeyDown:
		if s.InTable() {
			report(s.NextRow())
		} else {
			report(s.Next())
		}
	case ev.Key() == tcell.KeyUp:
		if s.InTable() {
			report(s.PrevRow())
		} else {
			report(s.Previous())
		}
	case ev.Rune() == ']':
		s.Up()
		r.status = s.GranularityMsg()
	case ev.Rune() == '[':
		s.Down()
		r.status = s.GranularityMsg()
	case ev.Rune() == 't':
		if s.InTable() {
			s.ExitTable()
			r.status = "leaving table"
		} else {
			if err := s.EnterTable(); err != nil {
				r.status = "No table found."
			} else {
				rows, cols, _ := s.TableSize()
				r.status = fmt.Sprintf("table %d by %d", rows, cols)
			}
		}
	case ev.Rune() == 'h':
		report(s.FindNext(predicate.Heading, "No next heading."))
	case ev.Rune() == 'H':
		report(s.FindPrevious(predicate.Heading, "No previous heading."))
	case ev.Rune() == 'l':
		report(s.FindNext(predicate.Link, "No next link."))
	case ev.Rune() == 'L':
		report(s.FindPrevious(predicate.Link, "No previous link."))
	}
	return true
}

func (r *reader) draw() {
	r.screen.Clear()
	_, height := r.screen.Size()
	docRows := height - 3
	if docRows < 1 {
		docRows = 1
	}

	sel := r.session.Selection()
	selStyle := tcell.StyleDefault.Reverse(true)

	// Scroll so the selection's first row is visible.
	top := 0
	if row, ok := r.meas.RowOf(sel.Start().Node()); ok && row >= docRows {
		top = row - docRows + 1
	}

	for leaf := dom.FirstLeaf(r.tree.Root()); leaf != nil; leaf = dom.NextLeaf(leaf) {
		text := leaf.Text()
		if !leaf.IsText() {
			text = leaf.Label()
		}
		inSel := leafInSelection(leaf, sel)
		for _, f := range r.meas.Fragments(leaf) {
			start, end, row, col := f[0], f[1], f[2], f[3]
			if row < top || row-top >= docRows {
				continue
			}
			run := text
			if leaf.IsText() && end <= len(text) {
				run = text[start:end]
			}
			style := tcell.StyleDefault
			if inSel {
				style = selStyle
			}
			drawString(r.screen, col, row-top, run, style)
		}
	}

	r.drawStatus(docRows, height)
	r.screen.Show()
}

func (r *reader) drawStatus(y, height int) {
	width, _ := r.screen.Size()
	bar := tcell.StyleDefault.Reverse(true)

	mode := r.session.GranularityMsg()
	if row, col, ok := r.session.TablePos(); ok {
		mode += fmt.Sprintf(" | cell %d,%d", row, col)
	}
	if r.status != "" {
		mode += " | " + r.status
	}
	drawString(r.screen, 0, y, pad(mode, width), bar)

	var spoken []string
	for _, d := range r.session.LastDescription() {
		if t := d.String(); t != "" {
			spoken = append(spoken, t)
		}
	}
	drawString(r.screen, 0, y+1, pad(strings.Join(spoken, " … "), width), tcell.StyleDefault)

	braille := r.session.LastBraille()
	drawString(r.screen, 0, y+2, pad("⠿ "+braille.Text, width), tcell.StyleDefault)
}

// leafInSelection reports whether a leaf lies within the selection.
func leafInSelection(leaf *dom.Node, sel cursor.Selection) bool {
	if sel.Start().IsZero() {
		return false
	}
	start := sel.Start().Node()
	end := sel.End().Node()
	return leaf.Compare(start) >= 0 && leaf.Compare(end) <= 0
}

// drawString paints a run of text, accounting for wide runes.
func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// pad right-pads a string to the given display width.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
