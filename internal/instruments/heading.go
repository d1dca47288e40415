package instruments

import (
	"fmt"
	"math"

	"github.com/yegors/termflight/internal/flight"
)

// HeadingDial draws a compass rose of dots with a needle from the center
// toward the current heading. North is up.
func (r *Renderer) HeadingDial(s flight.State) Grid {
	size := r.cfg.DialSize
	g := NewGrid(size, size, Blank)
	c := size / 2
	ring := Cell{Glyph: '·', FG: ColorDial, BG: Blank.BG}
	needle := Cell{Glyph: '│', FG: ColorDial, BG: Blank.BG}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x-c), float64(y-c))
			if d > float64(c)-1.5 && d < float64(c)-0.5 {
				g.Set(x, y, ring)
			}
		}
	}

	a := flight.Radians(r.compassDegrees(s))
	for i := 0; i < c-1; i++ {
		nx := c + int(math.Sin(a)*float64(i))
		ny := c - int(math.Cos(a)*float64(i))
		g.Set(nx, ny, needle)
	}
	return g
}

// HeadingLabel returns the whole-degree heading and its eight-way compass
// direction, e.g. "90° E"
func (r *Renderer) HeadingLabel(s flight.State) string {
	deg := math.Floor(r.compassDegrees(s))
	return fmt.Sprintf("%d° %s", int(deg), compassLabels[sector(deg, r.cfg.CompassBounds)])
}
