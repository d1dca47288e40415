package config

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/yegors/termflight/internal/world"
)

// Heading conventions understood by the dynamics engine
const (
	// HeadingNorth treats 0 rad as north (up the map) and pi/2 as east
	HeadingNorth = "north"
	// HeadingEast treats 0 rad as east and pi/2 as north
	HeadingEast = "east"
)

// Ground contact orderings understood by the dynamics engine
const (
	// GroundCheckBeforeMove evaluates ground contact right after the altitude
	// step and skips the horizontal update for that tick
	GroundCheckBeforeMove = "before-move"
	// GroundCheckAfterMove runs speed, fuel, heading and position first and
	// evaluates ground contact last
	GroundCheckAfterMove = "after-move"
)

// Config is the full application configuration
type Config struct {
	Logging     LoggingConfig     `toml:"logging"`
	Simulation  SimulationConfig  `toml:"simulation"`
	Aircraft    AircraftConfig    `toml:"aircraft"`
	Physics     PhysicsConfig     `toml:"physics"`
	Landing     LandingConfig     `toml:"landing"`
	Controls    ControlsConfig    `toml:"controls"`
	Instruments InstrumentsConfig `toml:"instruments"`
	Warnings    WarningsConfig    `toml:"warnings"`
	World       WorldConfig       `toml:"world"`
}

// LoggingConfig represents the logger settings
type LoggingConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// SimulationConfig represents the physics loop cadence
type SimulationConfig struct {
	TickMS int `toml:"tick_ms"`
}

// AircraftConfig holds the initial flight state
type AircraftConfig struct {
	AltitudeFt          float64 `toml:"altitude_ft"`
	SpeedKts            float64 `toml:"speed_kts"`
	Throttle            float64 `toml:"throttle"`
	Fuel                float64 `toml:"fuel"`
	DestinationDistance float64 `toml:"destination_distance_m"`
	MapX                float64 `toml:"map_x"`
	MapY                float64 `toml:"map_y"`
	HeadingDeg          float64 `toml:"heading_deg"`
	GearDown            bool    `toml:"gear_down"`
}

// PhysicsConfig holds the constants of the dynamics model, including the
// ones that differ between the two known model variants
type PhysicsConfig struct {
	BurnRate          float64 `toml:"burn_rate"`
	MapScale          float64 `toml:"map_scale"`
	MinSpeedKts       float64 `toml:"min_speed_kts"`
	MaxSpeedKts       float64 `toml:"max_speed_kts"`
	MinDistanceM      float64 `toml:"min_distance_m"`
	TurnFactor        float64 `toml:"turn_factor"`
	HeadingConvention string  `toml:"heading_convention"`
	GroundCheck       string  `toml:"ground_check"`
	EngineOutOnEmpty  bool    `toml:"engine_out_on_empty"`
}

// LandingConfig is the runway envelope
type LandingConfig struct {
	MaxSpeedKts float64 `toml:"max_speed_kts"`
	MinPitchDeg float64 `toml:"min_pitch_deg"`
	MaxRollDeg  float64 `toml:"max_roll_deg"`
	RequireGear bool    `toml:"require_gear"`
}

// ControlsConfig holds the per-event control increments
type ControlsConfig struct {
	ThrottleStep float64 `toml:"throttle_step"`
	PitchStepDeg float64 `toml:"pitch_step_deg"`
	RollStepDeg  float64 `toml:"roll_step_deg"`
}

// InstrumentsConfig holds instrument geometry and bucketing
type InstrumentsConfig struct {
	HorizonRows    int       `toml:"horizon_rows"`
	HorizonCols    int       `toml:"horizon_cols"`
	DialSize       int       `toml:"dial_size"`
	RadarRows      int       `toml:"radar_rows"`
	RadarCols      int       `toml:"radar_cols"`
	RadarAspect    float64   `toml:"radar_aspect"`
	SweepDegPerSec float64   `toml:"sweep_deg_per_sec"`
	BarWidth       int       `toml:"bar_width"`
	CompassBounds  []float64 `toml:"compass_bounds"`
	MapBounds      []float64 `toml:"map_bounds"`
	TrendSamples   int       `toml:"trend_samples"`
}

// WarningsConfig holds the warning panel thresholds
type WarningsConfig struct {
	LowAltitudeFt  float64 `toml:"low_altitude_ft"`
	StallKts       float64 `toml:"stall_kts"`
	LowFuel        float64 `toml:"low_fuel"`
	GearCheckAltFt float64 `toml:"gear_check_alt_ft"`
}

// WorldConfig describes the terrain grid
type WorldConfig struct {
	Rows    []string `toml:"rows"`
	RunwayX int      `toml:"runway_x"`
	RunwayY int      `toml:"runway_y"`
}

// Default returns the configuration matching the stock simulator
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			File:       "termflight.log",
			MaxSizeMB:  16,
			MaxBackups: 1,
		},
		Simulation: SimulationConfig{TickMS: 50},
		Aircraft: AircraftConfig{
			AltitudeFt:          2000,
			SpeedKts:            250,
			Throttle:            0.6,
			Fuel:                1.0,
			DestinationDistance: 10000,
			MapX:                10,
			MapY:                3,
			HeadingDeg:          90,
		},
		Physics: PhysicsConfig{
			BurnRate:          0.001,
			MapScale:          0.001,
			MinSpeedKts:       80,
			MaxSpeedKts:       350,
			MinDistanceM:      -400,
			TurnFactor:        0.4,
			HeadingConvention: HeadingNorth,
			GroundCheck:       GroundCheckBeforeMove,
			EngineOutOnEmpty:  true,
		},
		Landing: LandingConfig{
			MaxSpeedKts: 140,
			MinPitchDeg: -5,
			MaxRollDeg:  10,
			RequireGear: true,
		},
		Controls: ControlsConfig{
			ThrottleStep: 0.05,
			PitchStepDeg: 1,
			RollStepDeg:  2,
		},
		Instruments: InstrumentsConfig{
			HorizonRows:    13,
			HorizonCols:    27,
			DialSize:       15,
			RadarRows:      11,
			RadarCols:      21,
			RadarAspect:    1.6,
			SweepDegPerSec: 90,
			BarWidth:       20,
			CompassBounds:  []float64{23, 68, 113, 158, 203, 248, 293, 338},
			MapBounds:      []float64{22.5, 67.5, 112.5, 157.5, 202.5, 247.5, 292.5, 337.5},
			TrendSamples:   120,
		},
		Warnings: WarningsConfig{
			LowAltitudeFt:  500,
			StallKts:       120,
			LowFuel:        0.15,
			GearCheckAltFt: 1000,
		},
		World: WorldConfig{
			Rows:    world.DefaultRows(),
			RunwayX: world.DefaultRunwayX,
			RunwayY: world.DefaultRunwayY,
		},
	}
}

// Load reads a TOML file on top of the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown config keys in %s: %v", path, keys)
	}

	cfg.Normalize()
	return cfg, nil
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Normalize clamps out-of-range values back into their valid ranges and
// replaces unusable ones with defaults. Bad numbers are never an error.
func (c *Config) Normalize() {
	d := Default()
	c.resetNonFinite(d)

	if c.Simulation.TickMS <= 0 {
		c.Simulation.TickMS = d.Simulation.TickMS
	}

	p := &c.Physics
	if p.MinSpeedKts <= 0 {
		p.MinSpeedKts = d.Physics.MinSpeedKts
	}
	if p.MaxSpeedKts < p.MinSpeedKts {
		p.MaxSpeedKts = p.MinSpeedKts
	}
	p.BurnRate = math.Max(0, p.BurnRate)
	if p.MapScale <= 0 {
		p.MapScale = d.Physics.MapScale
	}
	p.MinDistanceM = math.Min(0, p.MinDistanceM)
	if p.HeadingConvention != HeadingNorth && p.HeadingConvention != HeadingEast {
		p.HeadingConvention = d.Physics.HeadingConvention
	}
	if p.GroundCheck != GroundCheckBeforeMove && p.GroundCheck != GroundCheckAfterMove {
		p.GroundCheck = d.Physics.GroundCheck
	}

	a := &c.Aircraft
	a.AltitudeFt = math.Max(0, a.AltitudeFt)
	a.SpeedKts = clamp(a.SpeedKts, p.MinSpeedKts, p.MaxSpeedKts)
	a.Throttle = clamp(a.Throttle, 0, 1)
	a.Fuel = clamp(a.Fuel, 0, 1)
	a.DestinationDistance = math.Max(p.MinDistanceM, a.DestinationDistance)

	ctl := &c.Controls
	ctl.ThrottleStep = math.Abs(ctl.ThrottleStep)
	ctl.PitchStepDeg = math.Abs(ctl.PitchStepDeg)
	ctl.RollStepDeg = math.Abs(ctl.RollStepDeg)

	in := &c.Instruments
	in.HorizonRows = atLeast(in.HorizonRows, 3)
	in.HorizonCols = atLeast(in.HorizonCols, 15)
	in.DialSize = atLeast(in.DialSize, 5)
	in.RadarRows = atLeast(in.RadarRows, 5)
	in.RadarCols = atLeast(in.RadarCols, 5)
	in.BarWidth = atLeast(in.BarWidth, 1)
	in.TrendSamples = atLeast(in.TrendSamples, 2)
	if in.RadarAspect <= 0 {
		in.RadarAspect = d.Instruments.RadarAspect
	}
	if !validBounds(in.CompassBounds) {
		in.CompassBounds = d.Instruments.CompassBounds
	}
	if !validBounds(in.MapBounds) {
		in.MapBounds = d.Instruments.MapBounds
	}

	if len(c.World.Rows) == 0 {
		c.World = d.World
	}
}

// resetNonFinite puts NaN and infinite values back to their defaults; the
// range clamps below cannot repair them
func (c *Config) resetNonFinite(d *Config) {
	fields := []struct {
		v   *float64
		def float64
	}{
		{&c.Aircraft.AltitudeFt, d.Aircraft.AltitudeFt},
		{&c.Aircraft.SpeedKts, d.Aircraft.SpeedKts},
		{&c.Aircraft.Throttle, d.Aircraft.Throttle},
		{&c.Aircraft.Fuel, d.Aircraft.Fuel},
		{&c.Aircraft.DestinationDistance, d.Aircraft.DestinationDistance},
		{&c.Aircraft.MapX, d.Aircraft.MapX},
		{&c.Aircraft.MapY, d.Aircraft.MapY},
		{&c.Aircraft.HeadingDeg, d.Aircraft.HeadingDeg},
		{&c.Physics.BurnRate, d.Physics.BurnRate},
		{&c.Physics.MapScale, d.Physics.MapScale},
		{&c.Physics.MinSpeedKts, d.Physics.MinSpeedKts},
		{&c.Physics.MaxSpeedKts, d.Physics.MaxSpeedKts},
		{&c.Physics.MinDistanceM, d.Physics.MinDistanceM},
		{&c.Physics.TurnFactor, d.Physics.TurnFactor},
		{&c.Landing.MaxSpeedKts, d.Landing.MaxSpeedKts},
		{&c.Landing.MinPitchDeg, d.Landing.MinPitchDeg},
		{&c.Landing.MaxRollDeg, d.Landing.MaxRollDeg},
		{&c.Controls.ThrottleStep, d.Controls.ThrottleStep},
		{&c.Controls.PitchStepDeg, d.Controls.PitchStepDeg},
		{&c.Controls.RollStepDeg, d.Controls.RollStepDeg},
		{&c.Instruments.RadarAspect, d.Instruments.RadarAspect},
		{&c.Instruments.SweepDegPerSec, d.Instruments.SweepDegPerSec},
		{&c.Warnings.LowAltitudeFt, d.Warnings.LowAltitudeFt},
		{&c.Warnings.StallKts, d.Warnings.StallKts},
		{&c.Warnings.LowFuel, d.Warnings.LowFuel},
		{&c.Warnings.GearCheckAltFt, d.Warnings.GearCheckAltFt},
	}
	for _, f := range fields {
		if !isFinite(*f.v) {
			*f.v = f.def
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validBounds reports whether b holds 8 ascending sector bounds in [0, 360]
func validBounds(b []float64) bool {
	if len(b) != 8 {
		return false
	}
	for i, v := range b {
		if !isFinite(v) || v < 0 || v > 360 || (i > 0 && v <= b[i-1]) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
