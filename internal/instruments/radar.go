package instruments

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/flight"
)

// Radar draws a rotating sweep inside an elliptical scope. Terminal cells
// are taller than wide, so columns are compressed by the radar aspect to
// keep the ring round on screen.
func (r *Renderer) Radar(sweepDeg float64) Grid {
	rows, cols := r.cfg.RadarRows, r.cfg.RadarCols
	aspect := r.cfg.RadarAspect
	if aspect <= 0 {
		aspect = 1
	}
	g := NewGrid(rows, cols, Blank)
	cx, cy := cols/2, rows/2
	radius := float64(cy) - 1

	ring := Cell{Glyph: '·', FG: ColorRing, BG: Blank.BG}
	inner := Cell{Glyph: '·', FG: ColorRing, BG: Blank.BG, Attr: tcell.AttrDim}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dx := float64(x-cx) / aspect
			dy := float64(y - cy)
			d := math.Hypot(dx, dy)
			switch {
			case math.Abs(d-radius) < 0.5:
				g.Set(x, y, ring)
			case math.Abs(d-radius/2) < 0.35:
				g.Set(x, y, inner)
			}
		}
	}

	beam := Cell{Glyph: '•', FG: ColorBright, BG: Blank.BG, Attr: tcell.AttrBold}
	a := flight.Radians(flight.NormalizeDegrees(sweepDeg))
	for step := 1.0; step <= radius; step += 0.5 {
		x := cx + int(math.Round(math.Sin(a)*step*aspect))
		y := cy - int(math.Round(math.Cos(a)*step))
		g.Set(x, y, beam)
	}
	g.Set(cx, cy, Cell{Glyph: '+', FG: ColorBright, BG: Blank.BG, Attr: tcell.AttrBold})
	g.Set(cx, 0, Cell{Glyph: 'N', FG: ColorNominal, BG: Blank.BG, Attr: tcell.AttrBold})
	return g
}
