package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yegors/termflight/internal/config"
	"github.com/yegors/termflight/internal/display"
	"github.com/yegors/termflight/internal/instruments"
	"github.com/yegors/termflight/internal/panel"
	"github.com/yegors/termflight/internal/sim"
	"github.com/yegors/termflight/internal/world"
	"github.com/yegors/termflight/pkg/logger"
	"golang.org/x/sync/errgroup"
)

var (
	configPath  = flag.String("config", "", "Path to a TOML configuration file (defaults are used when empty)")
	logLevel    = flag.String("loglevel", "", "Override the log level (debug, info, warn, error)")
	logFile     = flag.String("logfile", "", "Override the log file path")
	printConfig = flag.Bool("print-config", false, "Print the effective configuration as TOML and exit")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termflight: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}
	if *printConfig {
		return cfg.Write(os.Stdout)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	w, err := world.Parse(cfg.World.Rows, cfg.World.RunwayX, cfg.World.RunwayY)
	if err != nil {
		return fmt.Errorf("failed to build world map: %w", err)
	}

	log.Info("Starting termflight",
		logger.Int("tick_ms", cfg.Simulation.TickMS),
		logger.String("heading_convention", cfg.Physics.HeadingConvention),
		logger.String("ground_check", cfg.Physics.GroundCheck),
		logger.Any("compass_bounds", cfg.Instruments.CompassBounds),
		logger.Int("map_width", w.Width()),
		logger.Int("map_height", w.Height()))

	simulator := sim.NewSimulator(cfg, w, log)
	renderer := instruments.NewRenderer(cfg, w)
	model := display.NewModel(simulator, panel.NewAggregator(renderer, log), renderer,
		cfg.Instruments.TrendSamples, time.Now(), log)
	program := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return simulator.Run(ctx, display.Notify(program))
	})
	g.Go(func() error {
		// the physics loop stops once the cockpit closes
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run cockpit: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("termflight stopped with error")
		return err
	}

	final := simulator.Snapshot()
	log.Info("termflight stopped",
		logger.String("status", final.Status().String()),
		logger.Float64("altitude_ft", final.Altitude),
		logger.Float64("fuel", final.Fuel))
	return nil
}
