package flight

import (
	"math"

	"github.com/yegors/termflight/internal/config"
	"github.com/yegors/termflight/internal/world"
)

// Engine advances a State with a simplified empirical lift/sink model. It
// holds only immutable configuration, so one Engine may serve any number of
// states.
type Engine struct {
	phys    config.PhysicsConfig
	landing config.LandingConfig
	world   *world.Map
}

// NewEngine creates a dynamics engine over the given world
func NewEngine(phys config.PhysicsConfig, landing config.LandingConfig, w *world.Map) *Engine {
	return &Engine{phys: phys, landing: landing, world: w}
}

// VerticalSpeed returns the climb rate in feet per second implied by the
// current speed, pitch and roll
func VerticalSpeed(s State) float64 {
	lift := math.Max(0, (s.Speed/200.0)*(1.0+s.Pitch/10.0))
	sink := 50.0 - lift*30.0 + math.Abs(s.Roll)*0.5
	return s.Pitch*3.0 - sink
}

// Advance moves s forward by dt seconds of wall-clock time. Negative or
// non-finite dt counts as zero. Once the flight has landed or crashed the
// state is left untouched.
func (e *Engine) Advance(s *State, dt float64) {
	if s.Crashed || s.Landed {
		return
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	s.Pitch = clamp(s.Pitch, MinPitchDeg, MaxPitchDeg)
	s.Roll = clamp(s.Roll, -MaxRollDeg, MaxRollDeg)
	s.Throttle = clamp(s.Throttle, 0, 1)
	s.Fuel = clamp(s.Fuel, 0, 1)

	if e.phys.EngineOutOnEmpty && s.Fuel <= 0 {
		s.Throttle = 0
	}

	if e.phys.GroundCheck == config.GroundCheckAfterMove {
		e.integrateHorizontal(s, dt)
		e.integrateVertical(s, dt)
		return
	}

	if e.integrateVertical(s, dt) {
		return
	}
	e.integrateHorizontal(s, dt)
}

// integrateVertical applies the altitude step and resolves ground contact.
// It reports whether the aircraft touched down.
func (e *Engine) integrateVertical(s *State, dt float64) bool {
	s.Altitude += VerticalSpeed(*s) * dt
	if s.Altitude > 0 {
		return false
	}

	s.Altitude = 0
	if e.withinEnvelope(*s) {
		s.Landed = true
	} else {
		s.Crashed = true
	}
	s.Speed = 0
	return true
}

// withinEnvelope evaluates the runway envelope at the moment of contact
func (e *Engine) withinEnvelope(s State) bool {
	return e.world.OnRunway(s.MapX, s.MapY) &&
		s.Speed < e.landing.MaxSpeedKts &&
		s.Pitch > e.landing.MinPitchDeg &&
		(s.GearDown || !e.landing.RequireGear) &&
		math.Abs(s.Roll) < e.landing.MaxRollDeg
}

// integrateHorizontal updates speed, fuel, distance, heading and position
func (e *Engine) integrateHorizontal(s *State, dt float64) {
	s.Speed += (s.Throttle - 0.5) * 50.0 * dt
	s.Speed = clamp(s.Speed, e.phys.MinSpeedKts, e.phys.MaxSpeedKts)

	s.Fuel = math.Max(0, s.Fuel-s.Throttle*e.phys.BurnRate*dt)

	speedMS := KnotsToMPS(s.Speed)
	s.DestinationDistance = math.Max(e.phys.MinDistanceM, s.DestinationDistance-speedMS*dt)

	// Roll is clamped to 45 degrees so tan stays bounded
	s.Heading += math.Tan(Radians(s.Roll)) * e.phys.TurnFactor * dt

	dx, dy := e.direction(s.Heading)
	step := speedMS * dt * e.phys.MapScale
	nx, ny := s.MapX+dx*step, s.MapY+dy*step
	if e.world.InBounds(nx, ny) {
		s.MapX, s.MapY = nx, ny
	}
}

// direction maps a heading to a unit step on the map. Map y grows
// southward, hence the negated north component in both conventions.
func (e *Engine) direction(heading float64) (dx, dy float64) {
	if e.phys.HeadingConvention == config.HeadingEast {
		return math.Cos(heading), -math.Sin(heading)
	}
	return math.Sin(heading), -math.Cos(heading)
}
