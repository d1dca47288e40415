// Package instruments turns flight state snapshots into cockpit instrument
// faces. Every Renderer method is a pure function of its arguments: the same
// snapshot always yields an identical Grid.
package instruments

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/config"
	"github.com/yegors/termflight/internal/flight"
	"github.com/yegors/termflight/internal/world"
)

// Panel palette
var (
	ColorPanel    = tcell.NewRGBColor(10, 10, 15)
	ColorSky      = tcell.NewRGBColor(0, 120, 200)
	ColorGround   = tcell.NewRGBColor(139, 90, 43)
	ColorHorizon  = tcell.NewRGBColor(255, 255, 0)
	ColorNominal  = tcell.ColorGreen
	ColorBright   = tcell.ColorLime
	ColorCaution  = tcell.ColorYellow
	ColorDanger   = tcell.ColorRed
	ColorDial     = tcell.ColorAqua
	ColorText     = tcell.ColorWhite
	ColorDim      = tcell.ColorGray
	ColorField    = tcell.NewRGBColor(0, 100, 0)
	ColorRunway   = tcell.ColorFuchsia
	ColorAircraft = tcell.ColorYellow
	ColorThrottle = tcell.NewRGBColor(0, 255, 150)
	ColorFuel     = tcell.NewRGBColor(0, 200, 100)
	ColorRing     = tcell.NewRGBColor(0, 140, 0)
)

// Eight-way compass labels and map arrows, clockwise from north
var (
	compassLabels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	mapArrows     = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
)

// Renderer draws every instrument. It only holds immutable configuration.
type Renderer struct {
	cfg        config.InstrumentsConfig
	warnings   config.WarningsConfig
	convention string
	world      *world.Map
}

// NewRenderer creates a renderer for the given configuration and world
func NewRenderer(cfg *config.Config, w *world.Map) *Renderer {
	return &Renderer{
		cfg:        cfg.Instruments,
		warnings:   cfg.Warnings,
		convention: cfg.Physics.HeadingConvention,
		world:      w,
	}
}

// SweepAngle maps elapsed wall-clock time to a radar sweep angle in [0, 360)
func (r *Renderer) SweepAngle(elapsed time.Duration) float64 {
	return flight.NormalizeDegrees(elapsed.Seconds() * r.cfg.SweepDegPerSec)
}

// sector buckets a compass bearing into one of eight sectors using the
// upper bounds in bounds. Sector 0 wraps around 0/360.
func sector(deg float64, bounds []float64) int {
	if len(bounds) != 8 || deg < bounds[0] || deg >= bounds[7] {
		return 0
	}
	for i := 1; i < 7; i++ {
		if deg < bounds[i] {
			return i
		}
	}
	return 7
}

// compassDegrees is the state's heading as a compass bearing
func (r *Renderer) compassDegrees(s flight.State) float64 {
	return s.CompassDegrees(r.convention)
}

// floorInt floors and converts, keeping negative positions off-grid
func floorInt(v float64) int {
	return int(math.Floor(v))
}
