package panel

import (
	"github.com/yegors/termflight/internal/flight"
	"github.com/yegors/termflight/internal/instruments"
)

// Options selects which optional instruments a frame carries
type Options struct {
	IncludeRadar bool
	IncludeMap   bool
}

// FullOptions carries every instrument
var FullOptions = Options{IncludeRadar: true, IncludeMap: true}

// Panel is everything the cockpit shows for one snapshot
type Panel struct {
	State    flight.State
	Status   instruments.Line
	Gear     instruments.Line
	Flaps    instruments.Line
	Runway   instruments.Line
	Dest     instruments.Line
	Heading  string
	Warnings []flight.Warning

	// Primary flight display
	Airspeed  instruments.Grid
	Horizon   instruments.Grid
	Altimeter instruments.Grid

	// Secondary instruments
	HeadingDial instruments.Grid
	VSI         instruments.Grid
	Radar       *instruments.Grid
	Map         *instruments.Grid

	// Systems
	Engine       instruments.Grid
	WarningsGrid instruments.Grid
}
