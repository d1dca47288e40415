package instruments

import (
	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/flight"
)

const (
	warningsWidth = 20
	nominalText   = "ALL SYSTEMS NORMAL"
)

// Warnings returns the active cautions in panel order
func (r *Renderer) Warnings(s flight.State) []flight.Warning {
	return flight.ActiveWarnings(s, r.warnings)
}

// WarningLines formats the active cautions, or the nominal line when none
// are active
func (r *Renderer) WarningLines(s flight.State) []Line {
	active := r.Warnings(s)
	if len(active) == 0 {
		return []Line{{Text: nominalText, FG: ColorNominal}}
	}
	lines := make([]Line, 0, len(active))
	for _, w := range active {
		if w == flight.WarnGearUp {
			lines = append(lines, Line{Text: "⚠ " + w.String(), FG: ColorCaution, Attr: tcell.AttrBold})
			continue
		}
		lines = append(lines, Line{Text: "⚠ " + w.String(), FG: ColorDanger, Attr: tcell.AttrBold | tcell.AttrBlink})
	}
	return lines
}

// WarningsGrid lays the warning lines out one per row
func (r *Renderer) WarningsGrid(s flight.State) Grid {
	return TextGrid(warningsWidth, r.WarningLines(s)...)
}
