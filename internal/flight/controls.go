package flight

import (
	"math"

	"github.com/yegors/termflight/internal/config"
)

// Control is one discrete pilot input
type Control int

const (
	ThrottleDown Control = iota
	ThrottleUp
	ToggleGear
	ToggleFlaps
	PitchDown // yoke forward
	PitchUp   // yoke back
	RollLeft
	RollRight
)

var controlNames = map[Control]string{
	ThrottleDown: "throttle_down",
	ThrottleUp:   "throttle_up",
	ToggleGear:   "toggle_gear",
	ToggleFlaps:  "toggle_flaps",
	PitchDown:    "pitch_down",
	PitchUp:      "pitch_up",
	RollLeft:     "roll_left",
	RollRight:    "roll_right",
}

func (c Control) String() string {
	if n, ok := controlNames[c]; ok {
		return n
	}
	return "unknown"
}

// keyBindings maps terminal key names to controls. The arrows follow a yoke:
// up pushes the nose down.
var keyBindings = map[string]Control{
	"a":     ThrottleDown,
	"d":     ThrottleUp,
	"g":     ToggleGear,
	"f":     ToggleFlaps,
	"up":    PitchDown,
	"down":  PitchUp,
	"left":  RollLeft,
	"right": RollRight,
}

// ParseControl maps a key name to its control
func ParseControl(key string) (Control, bool) {
	c, ok := keyBindings[key]
	return c, ok
}

// ApplyControl mutates s for one input event and reports whether anything
// changed. Every mutation is clamped. With an empty tank the throttle can
// only be pulled back.
func ApplyControl(s *State, c Control, cfg config.ControlsConfig) bool {
	before := *s

	switch c {
	case ThrottleDown:
		s.Throttle = math.Max(s.Throttle-cfg.ThrottleStep, 0)
	case ThrottleUp:
		if s.Fuel > 0 {
			s.Throttle = math.Min(s.Throttle+cfg.ThrottleStep, 1)
		}
	case ToggleGear:
		s.GearDown = !s.GearDown
	case ToggleFlaps:
		s.FlapsExtended = !s.FlapsExtended
	case PitchDown:
		s.Pitch = math.Max(s.Pitch-cfg.PitchStepDeg, MinPitchDeg)
	case PitchUp:
		s.Pitch = math.Min(s.Pitch+cfg.PitchStepDeg, MaxPitchDeg)
	case RollLeft:
		s.Roll = math.Max(s.Roll-cfg.RollStepDeg, -MaxRollDeg)
	case RollRight:
		s.Roll = math.Min(s.Roll+cfg.RollStepDeg, MaxRollDeg)
	default:
		return false
	}

	return *s != before
}
