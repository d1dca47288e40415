// Package sim owns the live flight state and the physics loop that advances
// it. The loop and the input handler run on different goroutines; all access
// to the state goes through the simulator's lock.
package sim

import (
	"context"
	"sync"
	"time"

	"github.com/yegors/termflight/internal/config"
	"github.com/yegors/termflight/internal/flight"
	"github.com/yegors/termflight/internal/world"
	"github.com/yegors/termflight/pkg/logger"
)

// Notifier receives every snapshot published by the physics loop. It is
// called from the loop goroutine and must not block.
type Notifier func(flight.State)

// Simulator holds the single authoritative flight state
type Simulator struct {
	mu       sync.RWMutex
	state    flight.State
	engine   *flight.Engine
	detector *flight.TransitionDetector
	controls config.ControlsConfig
	tick     time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewSimulator creates a simulator at the configured initial state
func NewSimulator(cfg *config.Config, w *world.Map, logger *logger.Logger) *Simulator {
	s := &Simulator{
		state:    flight.NewState(cfg.Aircraft, cfg.Physics, w),
		engine:   flight.NewEngine(cfg.Physics, cfg.Landing, w),
		detector: flight.NewTransitionDetector(cfg.Warnings, logger),
		controls: cfg.Controls,
		tick:     time.Duration(cfg.Simulation.TickMS) * time.Millisecond,
		now:      time.Now,
		logger:   logger.Named("sim"),
	}
	s.detector.Detect(s.state)
	return s
}

// Snapshot returns a copy of the current state
func (s *Simulator) Snapshot() flight.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Step advances the state by dt seconds and returns the new snapshot
func (s *Simulator) Step(dt float64) flight.State {
	s.mu.Lock()
	s.engine.Advance(&s.state, dt)
	snap := s.state
	transitions := s.detector.Detect(snap)
	s.mu.Unlock()

	s.logTransitions(transitions)
	return snap
}

// Apply feeds one control event into the state and returns the new snapshot
func (s *Simulator) Apply(c flight.Control) flight.State {
	s.mu.Lock()
	changed := flight.ApplyControl(&s.state, c, s.controls)
	snap := s.state
	var transitions []flight.Transition
	if changed {
		transitions = s.detector.Detect(snap)
	}
	s.mu.Unlock()

	s.logger.Debug("Control applied",
		logger.String("control", c.String()),
		logger.Bool("changed", changed))
	s.logTransitions(transitions)
	return snap
}

// Run drives the physics loop until ctx is cancelled. Each tick measures the
// wall-clock time since the previous one, advances the state by it and hands
// the result to notify.
func (s *Simulator) Run(ctx context.Context, notify Notifier) error {
	s.logger.Info("Starting physics loop", logger.Duration("tick", s.tick))

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	last := s.now()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Physics loop stopped")
			return nil
		case <-ticker.C:
			now := s.now()
			snap := s.Step(now.Sub(last).Seconds())
			last = now
			if notify != nil {
				notify(snap)
			}
		}
	}
}

func (s *Simulator) logTransitions(transitions []flight.Transition) {
	for _, t := range transitions {
		fields := []logger.Field{
			logger.String("event", string(t.Type)),
			logger.Float64("altitude_ft", t.State.Altitude),
			logger.Float64("speed_kts", t.State.Speed),
			logger.Float64("fuel", t.State.Fuel),
		}
		if t.Type == flight.TransitionWarningRaised || t.Type == flight.TransitionWarningCleared {
			fields = append(fields, logger.String("warning", t.Warning.String()))
		}
		switch t.Type {
		case flight.TransitionCrashed, flight.TransitionFuelExhausted:
			s.logger.Warn("Flight event", fields...)
		default:
			s.logger.Info("Flight event", fields...)
		}
	}
}
