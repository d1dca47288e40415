package flight

import "github.com/yegors/termflight/internal/config"

// Warning identifies one caution shown on the warnings panel
type Warning int

const (
	WarnLowAltitude Warning = iota
	WarnStall
	WarnLowFuel
	WarnGearUp
)

func (w Warning) String() string {
	switch w {
	case WarnLowAltitude:
		return "LOW ALTITUDE"
	case WarnStall:
		return "STALL WARNING"
	case WarnLowFuel:
		return "FUEL LOW"
	case WarnGearUp:
		return "GEAR UP"
	default:
		return "UNKNOWN"
	}
}

// ActiveWarnings evaluates every warning predicate in fixed order and
// returns all that hold. The predicates are independent.
func ActiveWarnings(s State, cfg config.WarningsConfig) []Warning {
	var active []Warning
	if s.Altitude < cfg.LowAltitudeFt {
		active = append(active, WarnLowAltitude)
	}
	if s.Speed < cfg.StallKts {
		active = append(active, WarnStall)
	}
	if s.Fuel < cfg.LowFuel {
		active = append(active, WarnLowFuel)
	}
	if !s.GearDown && s.Altitude < cfg.GearCheckAltFt {
		active = append(active, WarnGearUp)
	}
	return active
}
