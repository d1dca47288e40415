package flight

import (
	"math"
	"testing"

	"github.com/yegors/termflight/internal/config"
)

func TestParseControl(t *testing.T) {
	tests := map[string]Control{
		"a": ThrottleDown, "d": ThrottleUp, "g": ToggleGear, "f": ToggleFlaps,
		"up": PitchDown, "down": PitchUp, "left": RollLeft, "right": RollRight,
	}
	for key, want := range tests {
		got, ok := ParseControl(key)
		if !ok || got != want {
			t.Errorf("%q: got %v (%v), expected %v", key, got, ok, want)
		}
	}
	for _, key := range []string{"q", "x", "", "ctrl+c"} {
		if _, ok := ParseControl(key); ok {
			t.Errorf("%q: unexpectedly bound", key)
		}
	}
}

func TestApplyControlSteps(t *testing.T) {
	cfg := config.Default().Controls
	s := State{Throttle: 0.6, Fuel: 1}

	ApplyControl(&s, ThrottleUp, cfg)
	if math.Abs(s.Throttle-0.65) > 1e-9 {
		t.Errorf("throttle up: got %v, expected 0.65", s.Throttle)
	}
	ApplyControl(&s, ThrottleDown, cfg)
	ApplyControl(&s, ThrottleDown, cfg)
	if math.Abs(s.Throttle-0.55) > 1e-9 {
		t.Errorf("throttle down: got %v, expected 0.55", s.Throttle)
	}

	ApplyControl(&s, PitchUp, cfg)
	if s.Pitch != 1 {
		t.Errorf("pitch up: got %v, expected 1", s.Pitch)
	}
	ApplyControl(&s, PitchDown, cfg)
	ApplyControl(&s, PitchDown, cfg)
	if s.Pitch != -1 {
		t.Errorf("pitch down: got %v, expected -1", s.Pitch)
	}

	ApplyControl(&s, RollRight, cfg)
	if s.Roll != 2 {
		t.Errorf("roll right: got %v, expected 2", s.Roll)
	}
	ApplyControl(&s, RollLeft, cfg)
	ApplyControl(&s, RollLeft, cfg)
	if s.Roll != -2 {
		t.Errorf("roll left: got %v, expected -2", s.Roll)
	}

	if !ApplyControl(&s, ToggleGear, cfg) || !s.GearDown {
		t.Errorf("gear toggle: gear down %v", s.GearDown)
	}
	if !ApplyControl(&s, ToggleFlaps, cfg) || !s.FlapsExtended {
		t.Errorf("flaps toggle: flaps %v", s.FlapsExtended)
	}
	ApplyControl(&s, ToggleGear, cfg)
	if s.GearDown {
		t.Errorf("second gear toggle left gear down")
	}
}

func TestApplyControlClamps(t *testing.T) {
	cfg := config.Default().Controls
	s := State{Throttle: 0.98, Fuel: 1, Pitch: 14.5, Roll: -44}

	for i := 0; i < 40; i++ {
		ApplyControl(&s, ThrottleUp, cfg)
		ApplyControl(&s, PitchUp, cfg)
		ApplyControl(&s, RollLeft, cfg)
	}
	if s.Throttle != 1 || s.Pitch != 15 || s.Roll != -45 {
		t.Errorf("upper clamps: got throttle %v pitch %v roll %v", s.Throttle, s.Pitch, s.Roll)
	}
	if ApplyControl(&s, ThrottleUp, cfg) {
		t.Errorf("throttle at limit reported a change")
	}

	for i := 0; i < 100; i++ {
		ApplyControl(&s, ThrottleDown, cfg)
		ApplyControl(&s, PitchDown, cfg)
		ApplyControl(&s, RollRight, cfg)
	}
	if s.Throttle != 0 || s.Pitch != -15 || s.Roll != 45 {
		t.Errorf("lower clamps: got throttle %v pitch %v roll %v", s.Throttle, s.Pitch, s.Roll)
	}
}

func TestThrottleWithEmptyTank(t *testing.T) {
	cfg := config.Default().Controls
	s := State{Throttle: 0.4, Fuel: 0}
	if ApplyControl(&s, ThrottleUp, cfg) {
		t.Errorf("throttle advanced with an empty tank")
	}
	if s.Throttle != 0.4 {
		t.Errorf("throttle: got %v, expected 0.4", s.Throttle)
	}
	if !ApplyControl(&s, ThrottleDown, cfg) || math.Abs(s.Throttle-0.35) > 1e-9 {
		t.Errorf("throttle down with an empty tank: got %v, expected 0.35", s.Throttle)
	}
}

func TestApplyUnknownControl(t *testing.T) {
	s := State{Throttle: 0.5, Fuel: 1}
	if ApplyControl(&s, Control(99), config.Default().Controls) {
		t.Errorf("unknown control reported a change")
	}
}
