package instruments

import (
	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/flight"
	"github.com/yegors/termflight/internal/world"
)

// MapArrow returns the aircraft icon for a compass bearing
func (r *Renderer) MapArrow(compassDeg float64) rune {
	return mapArrows[sector(compassDeg, r.cfg.MapBounds)]
}

// Map draws the navigation display: terrain, the 2x2 runway block and the
// aircraft arrow on the tile under the aircraft
func (r *Renderer) Map(s flight.State) Grid {
	w, h := r.world.Width(), r.world.Height()
	g := NewGrid(h, w, Blank)

	terrain := Cell{Glyph: '·', FG: ColorField, BG: Blank.BG}
	runway := Cell{Glyph: '█', FG: ColorRunway, BG: Blank.BG, Attr: tcell.AttrBold}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case x >= s.DestX && x < s.DestX+world.RunwaySize && y >= s.DestY && y < s.DestY+world.RunwaySize:
				g.Set(x, y, runway)
			case r.world.GlyphAt(x, y) == '.':
				g.Set(x, y, terrain)
			default:
				g.Set(x, y, Cell{Glyph: r.world.GlyphAt(x, y), FG: ColorField, BG: Blank.BG})
			}
		}
	}

	icon := Cell{Glyph: r.MapArrow(r.compassDegrees(s)), FG: ColorAircraft, BG: Blank.BG, Attr: tcell.AttrBold}
	g.Set(floorInt(s.MapX), floorInt(s.MapY), icon)
	return g
}
