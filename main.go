package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/sensordash/app"
	"github.com/deevus/sensordash/config"
	"github.com/deevus/sensordash/internal/dashboard"
	"github.com/deevus/sensordash/internal/sensor"
	"github.com/rs/zerolog"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "path to config file (.toml, .yaml or .yml)")
	seedFlag := flag.Uint64("seed", 0, "random seed for simulated readings (0 seeds from the clock)")
	flag.Parse()

	opts := options{configPath: *configFlag, seed: *seedFlag}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			opts.explicitConfig = true
		}
	})

	if err := run(opts, runTerminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath string
	// explicitConfig is set when -config was given, in which case a
	// missing file is an error rather than a reason to use defaults.
	explicitConfig bool
	seed           uint64
}

// run builds the dashboard and hands it to ui. It returns only after the
// refresh schedule has stopped and the log file is closed.
func run(opts options, ui func(*app.App) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Dashboard.Seed = opts.seed
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	sampler := sensor.NewSampler(sensor.NewSource(cfg.Dashboard.Seed), cfg.Sensor.Temperature, cfg.Sensor.Humidity)
	ctl := dashboard.New(dashboard.Params{
		Sampler:        sampler,
		HistorySize:    cfg.Dashboard.HistorySize,
		HistorySpacing: cfg.Dashboard.HistorySpacing,
		TimeLayout:     cfg.Dashboard.TimeFormat,
		Logger:         logger,
	})

	root := app.New(app.Params{
		Controller:      ctl,
		RefreshInterval: cfg.Dashboard.RefreshInterval,
		TimeLayout:      cfg.Dashboard.TimeFormat,
		Logger:          logger,
	})
	defer root.Close()

	if err := ui(root); err != nil {
		logger.Error().Err(err).Msg("dashboard exited")
		return err
	}
	logger.Info().Int("ticks", ctl.Ticks()).Msg("dashboard stopped")
	return nil
}

// runTerminal runs root on the terminal until the user quits.
func runTerminal(root *app.App) error {
	vxApp, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	root.SetPostEvent(vxApp.PostEvent)
	return vxApp.Run(root)
}

func loadConfig(opts options) (*config.Config, error) {
	if opts.explicitConfig {
		return config.LoadFrom(opts.configPath)
	}
	return config.Load(opts.configPath)
}

// newLogger writes to the configured log file. The terminal belongs to the
// UI, so without a path logs are discarded.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	if cfg.Log.Path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Str("component", "sensordash").Logger()
	return logger, func() { _ = f.Close() }, nil
}
