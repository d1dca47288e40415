package instruments

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Cell is one character position of an instrument face
type Cell struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
	Attr  tcell.AttrMask
}

// Blank is an empty cell on the panel background
var Blank = Cell{Glyph: ' ', FG: tcell.ColorDefault, BG: tcell.ColorDefault}

// Grid is a row-major block of cells
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewGrid returns a rows x cols grid filled with fill
func NewGrid(rows, cols int, fill Cell) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := Grid{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}
	for i := range g.Cells {
		g.Cells[i] = fill
	}
	return g
}

// In reports whether (x, y) addresses a cell of g
func (g Grid) In(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// At returns the cell at column x, row y
func (g Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Blank
	}
	return g.Cells[y*g.Cols+x]
}

// Set stores c at column x, row y; out-of-range writes are dropped
func (g Grid) Set(x, y int, c Cell) {
	if g.In(x, y) {
		g.Cells[y*g.Cols+x] = c
	}
}

// Row returns the cells of row y
func (g Grid) Row(y int) []Cell {
	if y < 0 || y >= g.Rows {
		return nil
	}
	return g.Cells[y*g.Cols : (y+1)*g.Cols]
}

// Equal reports whether two grids hold identical cells
func (g Grid) Equal(o Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// String returns the glyphs only, one line per row
func (g Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Rows; y++ {
		for _, c := range g.Row(y) {
			sb.WriteRune(c.Glyph)
		}
		if y < g.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Line is one line of instrument text
type Line struct {
	Text string
	FG   tcell.Color
	Attr tcell.AttrMask
}

// TextGrid lays lines out as a grid of the given width, each line centered
func TextGrid(width int, lines ...Line) Grid {
	g := NewGrid(len(lines), width, Blank)
	for y, l := range lines {
		text := Center(l.Text, width)
		x := 0
		for _, r := range text {
			g.Set(x, y, Cell{Glyph: r, FG: l.FG, BG: tcell.ColorDefault, Attr: l.Attr})
			x++
		}
	}
	return g
}

// Center pads s with spaces to width runes, extra space going right.
// Longer strings are cut.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// PadLeft right-aligns s in a field of width runes
func PadLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
