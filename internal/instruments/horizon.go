package instruments

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/flight"
)

// horizonBand is the half-thickness of the horizon line in rotated rows
const horizonBand = 0.4

// Horizon draws the attitude indicator. Each cell is classified by its
// roll-rotated vertical offset from the center, shifted by pitch/4.
func (r *Renderer) Horizon(s flight.State) Grid {
	rows, cols := r.cfg.HorizonRows, r.cfg.HorizonCols
	g := NewGrid(rows, cols, Blank)

	rr := flight.Radians(s.Roll)
	sin, cos := math.Sin(rr), math.Cos(rr)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dx := float64(x) - float64(cols)/2
			dy := float64(y) - float64(rows)/2
			ry := dy*cos - dx*sin - s.Pitch/4

			bg := ColorGround
			switch {
			case math.Abs(ry) < horizonBand:
				bg = ColorHorizon
			case ry < -horizonBand:
				bg = ColorSky
			}
			g.Set(x, y, Cell{Glyph: ' ', FG: tcell.ColorDefault, BG: bg})
		}
	}

	// fixed aircraft symbol: two wings and a center dot
	cx, cy := cols/2, rows/2
	symbol := Cell{Glyph: ' ', FG: tcell.ColorDefault, BG: ColorAircraft}
	for i := 2; i <= 6; i++ {
		g.Set(cx-i, cy, symbol)
		g.Set(cx+i, cy, symbol)
	}
	g.Set(cx, cy, symbol)
	return g
}
