package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termflight.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Physics.BurnRate != 0.001 {
		t.Errorf("burn rate: got %v, expected 0.001", cfg.Physics.BurnRate)
	}
	if cfg.Physics.HeadingConvention != HeadingNorth {
		t.Errorf("heading convention: got %q, expected %q", cfg.Physics.HeadingConvention, HeadingNorth)
	}
	if cfg.World.RunwayX != 10 || cfg.World.RunwayY != 10 {
		t.Errorf("runway: got (%d,%d), expected (10,10)", cfg.World.RunwayX, cfg.World.RunwayY)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[physics]
burn_rate = 0.007
ground_check = "after-move"
engine_out_on_empty = false

[warnings]
low_altitude_ft = 800
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Physics.BurnRate != 0.007 {
		t.Errorf("burn rate: got %v, expected 0.007", cfg.Physics.BurnRate)
	}
	if cfg.Physics.GroundCheck != GroundCheckAfterMove {
		t.Errorf("ground check: got %q", cfg.Physics.GroundCheck)
	}
	if cfg.Physics.EngineOutOnEmpty {
		t.Errorf("engine_out_on_empty should be false")
	}
	if cfg.Warnings.LowAltitudeFt != 800 {
		t.Errorf("low altitude: got %v, expected 800", cfg.Warnings.LowAltitudeFt)
	}
	// Untouched sections keep their defaults
	if cfg.Aircraft.AltitudeFt != 2000 {
		t.Errorf("altitude: got %v, expected 2000", cfg.Aircraft.AltitudeFt)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[physics]\nburn_rat = 1\n")
	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for a misspelled key")
	}
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeConfig(t, "[physics\n")
	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for malformed TOML")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Default()
	cfg.Aircraft.Throttle = 3
	cfg.Aircraft.Fuel = -1
	cfg.Aircraft.SpeedKts = 1000
	cfg.Aircraft.AltitudeFt = -50
	cfg.Physics.HeadingConvention = "south"
	cfg.Physics.GroundCheck = "sometimes"
	cfg.Simulation.TickMS = 0
	cfg.Instruments.MapBounds = []float64{10, 5}
	cfg.World.Rows = nil

	cfg.Normalize()

	d := Default()
	if cfg.Aircraft.Throttle != 1 {
		t.Errorf("throttle: got %v, expected 1", cfg.Aircraft.Throttle)
	}
	if cfg.Aircraft.Fuel != 0 {
		t.Errorf("fuel: got %v, expected 0", cfg.Aircraft.Fuel)
	}
	if cfg.Aircraft.SpeedKts != 350 {
		t.Errorf("speed: got %v, expected 350", cfg.Aircraft.SpeedKts)
	}
	if cfg.Aircraft.AltitudeFt != 0 {
		t.Errorf("altitude: got %v, expected 0", cfg.Aircraft.AltitudeFt)
	}
	if cfg.Physics.HeadingConvention != HeadingNorth || cfg.Physics.GroundCheck != GroundCheckBeforeMove {
		t.Errorf("variants not reset: %q %q", cfg.Physics.HeadingConvention, cfg.Physics.GroundCheck)
	}
	if cfg.Simulation.TickMS != 50 {
		t.Errorf("tick: got %d, expected 50", cfg.Simulation.TickMS)
	}
	if len(cfg.Instruments.MapBounds) != 8 || cfg.Instruments.MapBounds[0] != d.Instruments.MapBounds[0] {
		t.Errorf("map bounds not reset: %v", cfg.Instruments.MapBounds)
	}
	if len(cfg.World.Rows) != len(d.World.Rows) {
		t.Errorf("world rows not reset: %d rows", len(cfg.World.Rows))
	}
}

func TestLoadResetsNonFiniteValues(t *testing.T) {
	path := writeConfig(t, `
[aircraft]
speed_kts = -inf
fuel = nan

[physics]
burn_rate = nan
map_scale = inf
max_speed_kts = inf

[instruments]
map_bounds = [nan, 67.5, 112.5, 157.5, 202.5, 247.5, 292.5, 337.5]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	d := Default()
	if cfg.Physics.BurnRate != d.Physics.BurnRate || cfg.Physics.MapScale != d.Physics.MapScale {
		t.Errorf("burn rate %v / map scale %v not reset to defaults", cfg.Physics.BurnRate, cfg.Physics.MapScale)
	}
	if cfg.Physics.MaxSpeedKts != d.Physics.MaxSpeedKts {
		t.Errorf("max speed: got %v, expected %v", cfg.Physics.MaxSpeedKts, d.Physics.MaxSpeedKts)
	}
	if cfg.Aircraft.SpeedKts != d.Aircraft.SpeedKts || cfg.Aircraft.Fuel != d.Aircraft.Fuel {
		t.Errorf("aircraft speed %v / fuel %v not reset", cfg.Aircraft.SpeedKts, cfg.Aircraft.Fuel)
	}
	if cfg.Instruments.MapBounds[0] != d.Instruments.MapBounds[0] {
		t.Errorf("map bounds with NaN kept: %v", cfg.Instruments.MapBounds)
	}
}

func TestWriteRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := writeConfig(t, buf.String())
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if cfg.Instruments.RadarAspect != 1.6 {
		t.Errorf("radar aspect: got %v, expected 1.6", cfg.Instruments.RadarAspect)
	}
}
