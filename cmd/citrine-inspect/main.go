// Command citrine-inspect is a terminal browser over a Citrine parse
// tree: load a source file, see its Kind@start..end outline, move a
// cursor through it with the arrow keys, and expand or collapse
// composite nodes with Enter. It exists to make the lossless CST
// tangible while debugging the parser — nothing it draws feeds back
// into parsing.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/odvcencio/citrine"
	"github.com/odvcencio/citrine/cst"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: citrine-inspect <file>")
		os.Exit(1)
	}
	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "citrine-inspect: %v\n", err)
		os.Exit(1)
	}

	tree := citrine.Parse(string(src))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "citrine-inspect: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "citrine-inspect: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, newBrowser(tree))
}

// row is one visible line of the outline: the node it shows and its
// depth, so the browser can re-derive text and indentation on each draw.
type row struct {
	node  *cst.Node
	depth int
}

// browser holds the outline state: which composite nodes are collapsed
// and the flattened list of currently visible rows.
type browser struct {
	root      *cst.Node
	collapsed map[*cst.Node]bool
	rows      []row
}

func newBrowser(tree *cst.Tree) *browser {
	b := &browser{root: tree.Root, collapsed: make(map[*cst.Node]bool)}
	b.refresh()
	return b
}

// refresh recomputes the visible rows, skipping the children of any
// collapsed composite.
func (b *browser) refresh() {
	b.rows = b.rows[:0]
	var walk func(n *cst.Node, depth int)
	walk = func(n *cst.Node, depth int) {
		b.rows = append(b.rows, row{node: n, depth: depth})
		if n.Kind.IsLeaf() || b.collapsed[n] {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(b.root, 0)
}

// toggle collapses or expands the composite at rows[i]; leaves have
// nothing to toggle.
func (b *browser) toggle(i int) {
	n := b.rows[i].node
	if n.Kind.IsLeaf() {
		return
	}
	b.collapsed[n] = !b.collapsed[n]
	b.refresh()
}

func (b *browser) line(i int) string {
	r := b.rows[i]
	indent := strings.Repeat("  ", r.depth)
	n := r.node
	if n.Kind.IsLeaf() {
		return fmt.Sprintf("%s%s@%d..%d %q", indent, n.Kind, n.Start, n.End, n.Token.Text)
	}
	marker := "-"
	if b.collapsed[n] {
		marker = "+"
	}
	return fmt.Sprintf("%s%s %s@%d..%d", indent, marker, n.Kind, n.Start, n.End)
}

func run(screen tcell.Screen, b *browser) {
	cursor, top := 0, 0
	defStyle := tcell.StyleDefault
	selStyle := defStyle.Reverse(true)

	draw := func() {
		screen.Clear()
		w, h := screen.Size()
		for rowIdx := 0; rowIdx < h-1 && top+rowIdx < len(b.rows); rowIdx++ {
			style := defStyle
			if top+rowIdx == cursor {
				style = selStyle
			}
			drawLine(screen, 0, rowIdx, w, b.line(top+rowIdx), style)
		}
		if cursor < len(b.rows) {
			n := b.rows[cursor].node
			status := fmt.Sprintf("%d..%d  (%d/%d)  enter: fold  q: quit", n.Start, n.End, cursor+1, len(b.rows))
			drawLine(screen, 0, h-1, w, status, defStyle.Bold(true))
		}
		screen.Show()
	}

	draw()
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyDown:
				if cursor < len(b.rows)-1 {
					cursor++
				}
			case tcell.KeyUp:
				if cursor > 0 {
					cursor--
				}
			case tcell.KeyEnter:
				b.toggle(cursor)
				if cursor >= len(b.rows) {
					cursor = len(b.rows) - 1
				}
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return
				}
			}
			_, h := screen.Size()
			if cursor < top {
				top = cursor
			}
			if cursor >= top+h-1 {
				top = cursor - h + 2
			}
			draw()
		}
	}
}

func drawLine(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
