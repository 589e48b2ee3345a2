package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
	Bold bool
}

// Buffer is a cell compositor flushed to a Screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width, b.height = width, height
	b.Clear()
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Clear resets every cell to a blank on the background color
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: ColorText, Bg: ColorBg}
	// Exponential copy
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at x,y; out of bounds yields a zero Cell
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set replaces rune and foreground, keeping background
func (b *Buffer) Set(x, y int, r rune, fg colorful.Color, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune, c.Fg, c.Bold = r, fg, bold
}

// SetBg replaces background only
func (b *Buffer) SetBg(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// BlendBg mixes src into the existing background by alpha
func (b *Buffer) BlendBg(x, y int, src colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = mix(c.Bg, src, alpha)
}

// Fill sets the background of a rectangle and blanks its runes
func (b *Buffer) Fill(x, y, w, h int, bg colorful.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if !b.inBounds(col, row) {
				continue
			}
			b.cells[row*b.width+col] = Cell{Rune: ' ', Fg: ColorText, Bg: bg}
		}
	}
}

// Text writes s starting at x,y clipped to maxWidth columns; returns columns used
func (b *Buffer) Text(x, y int, s string, fg colorful.Color, bold bool, maxWidth int) int {
	if maxWidth <= 0 {
		return 0
	}
	s = runewidth.Truncate(s, maxWidth, "…")
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(x+col, y, r, fg, bold)
		// Wide runes occupy a trailing cell that must not be drawn over
		for i := 1; i < w; i++ {
			b.Set(x+col+i, y, 0, fg, bold)
		}
		col += w
	}
	return col
}

// Flush writes every cell to the screen and presents it
func (b *Buffer) Flush(s Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			c := &row[x]
			if c.Rune == 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg)).Bold(c.Bold)
			s.SetContent(x, y, c.Rune, nil, style)
		}
	}
	s.Show()
}
