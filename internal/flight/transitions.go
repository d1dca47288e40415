package flight

import (
	"github.com/yegors/termflight/internal/config"
	"github.com/yegors/termflight/pkg/logger"
)

// TransitionType names a discrete change between two snapshots
type TransitionType string

const (
	TransitionGearDown       TransitionType = "gear_down"
	TransitionGearUp         TransitionType = "gear_up"
	TransitionFlapsExtended  TransitionType = "flaps_extended"
	TransitionFlapsRetracted TransitionType = "flaps_retracted"
	TransitionLanded         TransitionType = "landed"
	TransitionCrashed        TransitionType = "crashed"
	TransitionFuelExhausted  TransitionType = "fuel_exhausted"
	TransitionWarningRaised  TransitionType = "warning_raised"
	TransitionWarningCleared TransitionType = "warning_cleared"
)

// Transition is one detected change
type Transition struct {
	Type    TransitionType
	Warning Warning // set for warning transitions
	State   State   // snapshot the change was observed in
}

// TransitionDetector tracks flight state changes between ticks
type TransitionDetector struct {
	previous *State
	warnings config.WarningsConfig
	logger   *logger.Logger
}

// NewTransitionDetector creates a new transition detector
func NewTransitionDetector(warnings config.WarningsConfig, logger *logger.Logger) *TransitionDetector {
	return &TransitionDetector{
		warnings: warnings,
		logger:   logger.Named("transitions"),
	}
}

// Detect compares current with the previously seen snapshot and returns the
// changes in a fixed order. The first call only records the baseline.
func (td *TransitionDetector) Detect(current State) []Transition {
	previous := td.previous
	td.previous = &current
	if previous == nil {
		return nil
	}

	var changes []Transition
	add := func(t TransitionType) {
		changes = append(changes, Transition{Type: t, State: current})
	}

	if previous.GearDown != current.GearDown {
		if current.GearDown {
			add(TransitionGearDown)
		} else {
			add(TransitionGearUp)
		}
	}

	if previous.FlapsExtended != current.FlapsExtended {
		if current.FlapsExtended {
			add(TransitionFlapsExtended)
		} else {
			add(TransitionFlapsRetracted)
		}
	}

	if !previous.Landed && current.Landed {
		add(TransitionLanded)
	}
	if !previous.Crashed && current.Crashed {
		add(TransitionCrashed)
	}
	if previous.Fuel > 0 && current.Fuel <= 0 {
		add(TransitionFuelExhausted)
	}

	before := warningSet(ActiveWarnings(*previous, td.warnings))
	after := ActiveWarnings(current, td.warnings)
	for _, w := range after {
		if !before[w] {
			changes = append(changes, Transition{Type: TransitionWarningRaised, Warning: w, State: current})
		}
		delete(before, w)
	}
	for _, w := range []Warning{WarnLowAltitude, WarnStall, WarnLowFuel, WarnGearUp} {
		if before[w] {
			changes = append(changes, Transition{Type: TransitionWarningCleared, Warning: w, State: current})
		}
	}

	if len(changes) > 0 {
		td.logger.Debug("Detected flight transitions", logger.Int("count", len(changes)))
	}
	return changes
}

func warningSet(ws []Warning) map[Warning]bool {
	m := make(map[Warning]bool, len(ws))
	for _, w := range ws {
		m[w] = true
	}
	return m
}
