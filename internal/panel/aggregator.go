// Package panel gathers every instrument for one flight state snapshot into
// a single frame for the display.
package panel

import (
	"github.com/yegors/termflight/internal/flight"
	"github.com/yegors/termflight/internal/instruments"
	"github.com/yegors/termflight/pkg/logger"
)

// Aggregator collects instrument faces for rendering
type Aggregator struct {
	renderer *instruments.Renderer
	logger   *logger.Logger
}

// NewAggregator creates a new panel aggregator
func NewAggregator(renderer *instruments.Renderer, logger *logger.Logger) *Aggregator {
	return &Aggregator{
		renderer: renderer,
		logger:   logger.Named("panel"),
	}
}

// Build renders every instrument for s. The radar sweep is passed in
// separately because it follows wall-clock time, not the aircraft.
func (a *Aggregator) Build(s flight.State, sweepDeg float64, opts Options) *Panel {
	r := a.renderer
	p := &Panel{
		State:        s,
		Status:       instruments.StatusLine(s),
		Gear:         instruments.GearLine(s),
		Flaps:        instruments.FlapsLine(s),
		Runway:       instruments.RunwayLine(s),
		Dest:         instruments.DestinationLine(s),
		Heading:      r.HeadingLabel(s),
		Warnings:     r.Warnings(s),
		Airspeed:     r.Airspeed(s),
		Horizon:      r.Horizon(s),
		Altimeter:    r.Altimeter(s),
		HeadingDial:  r.HeadingDial(s),
		VSI:          r.VSI(s),
		Engine:       r.Engine(s),
		WarningsGrid: r.WarningsGrid(s),
	}

	// Optional instruments are dropped on narrow terminals
	if opts.IncludeRadar {
		radar := r.Radar(sweepDeg)
		p.Radar = &radar
	}
	if opts.IncludeMap {
		m := r.Map(s)
		p.Map = &m
	}

	a.logger.Debug("Panel built",
		logger.String("status", s.Status().String()),
		logger.Int("warning_count", len(p.Warnings)),
		logger.Bool("include_radar", opts.IncludeRadar),
		logger.Bool("include_map", opts.IncludeMap))

	return p
}
