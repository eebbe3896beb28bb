// Package canvas provides a cell grid that drawables paint into. It keeps a
// stack of clip and translation states so a drawable can restrict its output
// and hand the canvas back exactly as it found it.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Cell is a single terminal cell
type Cell struct {
	Rune  rune
	Style lipgloss.Style
	// wide continuation cells are skipped when rendering
	cont bool
}

type state struct {
	clip   Rect
	dx, dy int
}

// Canvas is a fixed-size grid of cells. Glyphs live in a cellbuf buffer,
// which also keeps wide runes and their placeholders consistent; styles are
// lipgloss styles kept per cell alongside.
type Canvas struct {
	width, height int
	buf           *cellbuf.Buffer
	styles        []lipgloss.Style
	cur           state
	saved         []state
}

// New creates a blank canvas. Every cell starts as a space in the given style.
func New(width, height int, base lipgloss.Style) *Canvas {
	width = max(0, width)
	height = max(0, height)
	c := &Canvas{
		width:  width,
		height: height,
		buf:    cellbuf.NewBuffer(width, height),
		styles: make([]lipgloss.Style, width*height),
		cur:    state{clip: NewRect(0, 0, width, height)},
	}
	for i := range c.styles {
		c.styles[i] = base
	}
	return c
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells
func (c *Canvas) Height() int { return c.height }

// Save pushes the current clip and translation
func (c *Canvas) Save() {
	c.saved = append(c.saved, c.cur)
}

// Restore pops the state pushed by the matching Save. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.cur = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

// SaveCount returns the depth of the state stack
func (c *Canvas) SaveCount() int {
	return len(c.saved)
}

// ClipRect intersects the current clip with r, given in local coordinates
func (c *Canvas) ClipRect(r Rect) {
	c.cur.clip = c.cur.clip.Intersect(r.Offset(c.cur.dx, c.cur.dy))
}

// Clip returns the current clip in canvas coordinates
func (c *Canvas) Clip() Rect {
	return c.cur.clip
}

// Translate moves the local origin by (dx, dy)
func (c *Canvas) Translate(dx, dy int) {
	c.cur.dx += dx
	c.cur.dy += dy
}

// Origin returns the current translation
func (c *Canvas) Origin() (dx, dy int) {
	return c.cur.dx, c.cur.dy
}

// Set paints one cell at local (x, y). Cells outside the clip are dropped.
// A wide rune whose tail would fall outside the clip is painted as a space.
func (c *Canvas) Set(x, y int, r rune, style lipgloss.Style) {
	x += c.cur.dx
	y += c.cur.dy
	if !c.cur.clip.Contains(x, y) {
		return
	}
	cell := cellbuf.NewCell(r)
	if cell.Width > 1 && !c.cur.clip.Contains(x+cell.Width-1, y) {
		cell = &cellbuf.BlankCell
	}
	c.buf.SetCell(x, y, cell)
	for i := 0; i < max(1, cell.Width); i++ {
		c.styles[y*c.width+x+i] = style
	}
}

// Fill paints every cell of r with the given rune
func (c *Canvas) Fill(r Rect, ch rune, style lipgloss.Style) {
	for y := r.Top; y < r.Bottom; y++ {
		for x := r.Left; x < r.Right; x++ {
			c.Set(x, y, ch, style)
		}
	}
}

// DrawString paints s starting at local (x, y) and returns the number of
// columns it advanced. Wide runes occupy two cells.
func (c *Canvas) DrawString(x, y int, s string, style lipgloss.Style) int {
	col := x
	for _, r := range s {
		w := cellbuf.NewCell(r).Width
		if w == 0 {
			continue
		}
		c.Set(col, y, r, style)
		col += w
	}
	return col - x
}

// At returns the cell at canvas coordinates (x, y)
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	style := c.styles[y*c.width+x]
	cell := c.buf.Cell(x, y)
	if cell == nil {
		return Cell{Rune: ' ', Style: style}
	}
	if cell.Width == 0 && cell.Rune == 0 {
		return Cell{Style: style, cont: true}
	}
	return Cell{Rune: cell.Rune, Style: style}
}

// Runes returns row y as plain text, without styling
func (c *Canvas) Runes(y int) string {
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		cell := c.At(x, y)
		if cell.cont {
			continue
		}
		b.WriteRune(cell.Rune)
	}
	return b.String()
}

// Render returns the canvas as styled lines. Adjacent cells sharing a style
// are rendered together.
func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var (
			b   strings.Builder
			run strings.Builder
			cur lipgloss.Style
		)
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(cur.Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.width; x++ {
			cell := c.At(x, y)
			if cell.cont {
				continue
			}
			if run.Len() > 0 && !sameStyle(cur, cell.Style) {
				flush()
			}
			cur = cell.Style
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() &&
		a.GetBackground() == b.GetBackground() &&
		a.GetBold() == b.GetBold()
}
