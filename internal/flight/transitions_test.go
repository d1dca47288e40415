package flight

import (
	"reflect"
	"testing"

	"github.com/yegors/termflight/internal/config"
	"github.com/yegors/termflight/pkg/logger"
)

func transitionTypes(ts []Transition) []TransitionType {
	var out []TransitionType
	for _, t := range ts {
		out = append(out, t.Type)
	}
	return out
}

func TestDetectBaseline(t *testing.T) {
	td := NewTransitionDetector(config.Default().Warnings, logger.Nop())
	if got := td.Detect(State{Altitude: 10, Speed: 90}); got != nil {
		t.Errorf("first call: got %v, expected no transitions", got)
	}
}

func TestDetectTransitions(t *testing.T) {
	cruise := State{Altitude: 2000, Speed: 250, Fuel: 1}

	tests := []struct {
		name string
		next func(State) State
		want []TransitionType
	}{
		{"NoChange", func(s State) State { return s }, nil},
		{"GearAndFlaps", func(s State) State {
			s.GearDown, s.FlapsExtended = true, true
			return s
		}, []TransitionType{TransitionGearDown, TransitionFlapsExtended}},
		{"Crash", func(s State) State {
			s.Altitude, s.Speed, s.Crashed = 0, 0, true
			return s
		}, []TransitionType{TransitionCrashed, TransitionWarningRaised, TransitionWarningRaised, TransitionWarningRaised}},
		{"FuelExhausted", func(s State) State {
			s.Fuel = 0
			return s
		}, []TransitionType{TransitionFuelExhausted, TransitionWarningRaised}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			td := NewTransitionDetector(config.Default().Warnings, logger.Nop())
			td.Detect(cruise)
			got := transitionTypes(td.Detect(tc.next(cruise)))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDetectWarningCleared(t *testing.T) {
	td := NewTransitionDetector(config.Default().Warnings, logger.Nop())
	td.Detect(State{Altitude: 800, Speed: 200, Fuel: 1})

	got := td.Detect(State{Altitude: 800, Speed: 200, Fuel: 1, GearDown: true})
	want := []Transition{
		{Type: TransitionGearDown},
		{Type: TransitionWarningCleared, Warning: WarnGearUp},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, expected %d transitions", got, len(want))
	}
	for i := range want {
		if got[i].Type != want[i].Type || got[i].Warning != want[i].Warning {
			t.Errorf("%d: got %v/%v, expected %v/%v", i, got[i].Type, got[i].Warning, want[i].Type, want[i].Warning)
		}
	}
}
