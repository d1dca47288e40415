// Package flight models a single aircraft: its state, the simplified
// dynamics that advance it, and the control inputs that steer it.
package flight

import (
	"math"

	"github.com/yegors/termflight/internal/config"
	"github.com/yegors/termflight/internal/world"
)

// Control surface limits
const (
	MinPitchDeg = -15.0
	MaxPitchDeg = 15.0
	MaxRollDeg  = 45.0
)

// State is the aircraft's physical and avionics state. A State is a plain
// value: copying it yields an independent snapshot.
type State struct {
	Altitude            float64 // feet above ground
	Speed               float64 // knots
	Pitch               float64 // degrees, positive nose up
	Roll                float64 // degrees, positive right wing down
	Throttle            float64 // [0, 1]
	Fuel                float64 // [0, 1]
	DestinationDistance float64 // meters

	GearDown      bool
	FlapsExtended bool

	Crashed bool
	Landed  bool

	MapX    float64 // tiles
	MapY    float64 // tiles
	Heading float64 // radians

	DestX int
	DestY int
}

// NewState builds the initial state from the aircraft settings. Values are
// clamped into the ranges the engine enforces; the runway comes from the map.
func NewState(a config.AircraftConfig, phys config.PhysicsConfig, w *world.Map) State {
	s := State{
		Altitude:            math.Max(0, a.AltitudeFt),
		Speed:               clamp(a.SpeedKts, phys.MinSpeedKts, phys.MaxSpeedKts),
		Throttle:            clamp(a.Throttle, 0, 1),
		Fuel:                clamp(a.Fuel, 0, 1),
		DestinationDistance: math.Max(phys.MinDistanceM, a.DestinationDistance),
		GearDown:            a.GearDown,
		MapX:                a.MapX,
		MapY:                a.MapY,
		Heading:             Radians(a.HeadingDeg),
	}
	s.DestX, s.DestY = w.Runway()

	if !w.InBounds(s.MapX, s.MapY) {
		s.MapX = clamp(s.MapX, 0, math.Nextafter(float64(w.Width()), 0))
		s.MapY = clamp(s.MapY, 0, math.Nextafter(float64(w.Height()), 0))
	}
	return s
}

// Status is the flight outcome shown on the status panel
type Status int

const (
	StatusFlight Status = iota
	StatusLanded
	StatusCrashed
	StatusEngineFailure
)

func (st Status) String() string {
	switch st {
	case StatusLanded:
		return "LANDED"
	case StatusCrashed:
		return "CRASHED"
	case StatusEngineFailure:
		return "ENGINE FAILURE"
	default:
		return "FLIGHT"
	}
}

// Status derives the outcome. Engine failure is reported while still flying
// with an empty tank.
func (s State) Status() Status {
	switch {
	case s.Landed:
		return StatusLanded
	case s.Crashed:
		return StatusCrashed
	case s.Fuel <= 0:
		return StatusEngineFailure
	default:
		return StatusFlight
	}
}

// Terminal reports whether the flight has ended
func (s State) Terminal() bool {
	return s.Crashed || s.Landed
}

// HeadingDegrees returns the raw heading normalized to [0, 360)
func (s State) HeadingDegrees() float64 {
	return NormalizeDegrees(Degrees(s.Heading))
}

// CompassDegrees returns the heading as a compass bearing in [0, 360),
// 0 = north, 90 = east, whatever convention the engine integrates with.
func (s State) CompassDegrees(convention string) float64 {
	if convention == config.HeadingEast {
		return NormalizeDegrees(90 - Degrees(s.Heading))
	}
	return s.HeadingDegrees()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
