// Package world holds the fixed terrain grid the aircraft flies over.
package world

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// RunwaySize is the edge length, in tiles, of the square destination runway
const RunwaySize = 2

// Map is an immutable grid of terrain glyphs with one destination runway.
// Tile (x, y) covers [x, x+1) x [y, y+1); y grows downward (south).
type Map struct {
	cells   [][]rune
	width   int
	runwayX int
	runwayY int
}

// Parse builds a map from equal-length rows. The whole runway block must lie
// inside the grid.
func Parse(rows []string, runwayX, runwayY int) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("world map has no rows")
	}

	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("world map row 0 is empty")
	}

	cells := make([][]rune, len(rows))
	for y, row := range rows {
		r := []rune(row)
		if len(r) != width {
			return nil, fmt.Errorf("world map row %d has %d columns, expected %d", y, len(r), width)
		}
		cells[y] = r
	}

	if runwayX < 0 || runwayX+RunwaySize > width || runwayY < 0 || runwayY+RunwaySize > len(rows) {
		return nil, fmt.Errorf("runway (%d,%d) lies outside the %dx%d map", runwayX, runwayY, width, len(rows))
	}

	return &Map{cells: cells, width: width, runwayX: runwayX, runwayY: runwayY}, nil
}

// MustParse is Parse for built-in maps
func MustParse(rows []string, runwayX, runwayY int) *Map {
	m, err := Parse(rows, runwayX, runwayY)
	if err != nil {
		panic(err)
	}
	return m
}

// Top-left tile of the runway on the default map
const (
	DefaultRunwayX = 10
	DefaultRunwayY = 10
)

// DefaultRows returns a fresh copy of the open field with a single runway
func DefaultRows() []string {
	return []string{
		"................", "................", "................",
		"................", "................", "................",
		"................", "................", "................",
		"................", "..........XX....", "..........XX....",
		"................", "................",
	}
}

// Default returns the open field map
func Default() *Map {
	return MustParse(DefaultRows(), DefaultRunwayX, DefaultRunwayY)
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return len(m.cells) }

// Runway returns the top-left tile of the runway
func (m *Map) Runway() (x, y int) { return m.runwayX, m.runwayY }

// GlyphAt returns the terrain glyph at tile (x, y), or a space outside the grid
func (m *Map) GlyphAt(x, y int) rune {
	if x < 0 || y < 0 || y >= len(m.cells) || x >= m.width {
		return ' '
	}
	return m.cells[y][x]
}

// InBounds reports whether a continuous position lies in [0,W) x [0,H)
func (m *Map) InBounds(x, y float64) bool {
	return x >= 0 && x < float64(m.width) && y >= 0 && y < float64(len(m.cells))
}

// IsRunwayTile reports whether tile (x, y) belongs to the runway block
func (m *Map) IsRunwayTile(x, y int) bool {
	return x >= m.runwayX && x <= m.runwayX+RunwaySize-1 &&
		y >= m.runwayY && y <= m.runwayY+RunwaySize-1
}

// OnRunway reports whether a continuous position floors to a runway tile
func (m *Map) OnRunway(x, y float64) bool {
	return m.IsRunwayTile(int(math.Floor(x)), int(math.Floor(y)))
}
