package instruments

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/flight"
)

const (
	gaugeWidth  = 11
	engineWidth = 20
	valueWidth  = 5

	// climb rates within this band read as level flight, ft/min
	levelBand = 50
)

var (
	gaugeRule  = strings.Repeat("═", gaugeWidth)
	engineRule = strings.Repeat("═", engineWidth)
)

// AltitudeColor returns the altimeter color for an altitude in feet
func AltitudeColor(alt float64) tcell.Color {
	switch {
	case alt < 100:
		return ColorDanger
	case alt < 500:
		return ColorCaution
	default:
		return ColorNominal
	}
}

// SpeedColor returns the airspeed color for a speed in knots
func SpeedColor(kts float64) tcell.Color {
	switch {
	case kts < 120:
		return ColorDanger
	case kts < 140 || kts > 280:
		return ColorCaution
	default:
		return ColorNominal
	}
}

// ThrottleColor returns the engine power bar color
func ThrottleColor(throttle float64) tcell.Color {
	switch {
	case throttle > 0.9:
		return ColorDanger
	case throttle < 0.3:
		return ColorCaution
	default:
		return ColorThrottle
	}
}

// FuelColor returns the fuel bar color
func FuelColor(fuel float64) tcell.Color {
	if fuel < 0.2 {
		return ColorDanger
	}
	return ColorFuel
}

// valueText truncates v toward zero and right-aligns it to the value width
func valueText(v float64) string {
	return PadLeft(strconv.Itoa(int(v)), valueWidth)
}

// Bar renders a fraction in [0,1] as width cells, floor(v*width) of them full
func Bar(v float64, width int) string {
	filled := int(math.Floor(v * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Altimeter draws the altitude readout in feet
func (r *Renderer) Altimeter(s flight.State) Grid {
	return TextGrid(gaugeWidth,
		Line{Text: gaugeRule, FG: ColorBright},
		Line{Text: "ALTIMETER", FG: ColorBright, Attr: tcell.AttrBold},
		Line{Text: gaugeRule, FG: ColorBright},
		Line{Text: valueText(s.Altitude), FG: AltitudeColor(s.Altitude), Attr: tcell.AttrBold},
		Line{Text: "FEET", FG: ColorText, Attr: tcell.AttrDim},
		Line{Text: fmt.Sprintf("%d m", int(flight.FeetToMeters(s.Altitude))), FG: ColorDim, Attr: tcell.AttrDim},
	)
}

// Airspeed draws the airspeed readout in knots; the whole face takes the
// speed color
func (r *Renderer) Airspeed(s flight.State) Grid {
	c := SpeedColor(s.Speed)
	return TextGrid(gaugeWidth,
		Line{Text: gaugeRule, FG: c},
		Line{Text: "AIRSPEED", FG: c, Attr: tcell.AttrBold},
		Line{Text: gaugeRule, FG: c},
		Line{Text: valueText(s.Speed), FG: c, Attr: tcell.AttrBold},
		Line{Text: "KNOTS", FG: ColorText, Attr: tcell.AttrDim},
	)
}

// ClimbRate returns the vertical speed in feet per minute
func ClimbRate(s flight.State) float64 {
	return flight.VerticalSpeed(s) * flight.SECONDS_PER_MIN
}

// VSILine returns the vertical speed readout and its color
func VSILine(s flight.State) (string, tcell.Color) {
	rate := ClimbRate(s)
	switch {
	case rate > levelBand:
		return fmt.Sprintf("▲ +%d", int(rate)), ColorNominal
	case rate < -levelBand:
		return fmt.Sprintf("▼ %d", int(rate)), ColorCaution
	default:
		return "─  0", ColorBright
	}
}

// VSI draws the vertical speed indicator in feet per minute
func (r *Renderer) VSI(s flight.State) Grid {
	text, c := VSILine(s)
	return TextGrid(gaugeWidth,
		Line{Text: gaugeRule, FG: ColorCaution},
		Line{Text: "VERT SPEED", FG: ColorCaution, Attr: tcell.AttrBold},
		Line{Text: gaugeRule, FG: ColorCaution},
		Line{Text: text, FG: c, Attr: tcell.AttrBold},
		Line{Text: "FT/MIN", FG: ColorText, Attr: tcell.AttrDim},
	)
}

// Engine draws the throttle and fuel bars with their percentages
func (r *Renderer) Engine(s flight.State) Grid {
	width := r.cfg.BarWidth
	if width < engineWidth {
		width = engineWidth
	}
	tc, fc := ThrottleColor(s.Throttle), FuelColor(s.Fuel)
	return TextGrid(width,
		Line{Text: engineRule, FG: ColorText},
		Line{Text: "ENGINE THRUST", FG: ColorText, Attr: tcell.AttrBold},
		Line{Text: engineRule, FG: ColorText},
		Line{Text: "Engine-1 Power:", FG: ColorText, Attr: tcell.AttrBold},
		Line{Text: Bar(s.Throttle, r.cfg.BarWidth), FG: tc},
		Line{Text: fmt.Sprintf("%d %%", int(s.Throttle*100)), FG: tc, Attr: tcell.AttrBold},
		Line{Text: "Fuel Remaining:", FG: ColorText, Attr: tcell.AttrBold},
		Line{Text: Bar(s.Fuel, r.cfg.BarWidth), FG: fc},
		Line{Text: fmt.Sprintf("%d %%", int(s.Fuel*100)), FG: fc, Attr: tcell.AttrBold},
	)
}
