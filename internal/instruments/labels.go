package instruments

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/flight"
)

// kmPerTile is the scale printed under the navigation display
const kmPerTile = 1.0

// StatusLine returns the flight status banner
func StatusLine(s flight.State) Line {
	st := s.Status()
	c := ColorNominal
	if st == flight.StatusCrashed || st == flight.StatusEngineFailure {
		c = ColorDanger
	}
	return Line{Text: st.String(), FG: c, Attr: tcell.AttrBold}
}

// GearLine returns the landing gear indicator
func GearLine(s flight.State) Line {
	if s.GearDown {
		return Line{Text: "▼ DOWN ▼", FG: ColorNominal, Attr: tcell.AttrBold}
	}
	return Line{Text: "▲  UP  ▲", FG: ColorDanger, Attr: tcell.AttrBold}
}

// FlapsLine returns the flaps indicator
func FlapsLine(s flight.State) Line {
	if s.FlapsExtended {
		return Line{Text: "EXTENDED", FG: ColorCaution, Attr: tcell.AttrBold}
	}
	return Line{Text: "RETRACTED", FG: ColorNominal, Attr: tcell.AttrBold}
}

// DestinationLine returns the remaining destination distance in nautical miles
func DestinationLine(s flight.State) Line {
	return Line{
		Text: fmt.Sprintf("DEST %.1f NM", flight.MetersToNM(s.DestinationDistance)),
		FG:   ColorDim,
	}
}

// RunwayLine returns the bearing and distance from the aircraft to the runway
func RunwayLine(s flight.State) Line {
	return Line{
		Text: fmt.Sprintf("RWY %03d° %.1fkm", int(flight.BearingToRunway(s)), flight.TilesToRunway(s)*kmPerTile),
		FG:   ColorRunway,
	}
}
