// so8scan scans for critical points of the SO(8) supergravity potential by
// random-restart minimization of the stationarity measure. Parameters come
// from flags, overriding SO8_SCAN_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sbl8/so8vacua/algebra"
	"github.com/sbl8/so8vacua/report"
	"github.com/sbl8/so8vacua/scan"
	"github.com/sbl8/so8vacua/sugra"
)

type config struct {
	Scale       float64 `env:"SO8_SCAN_SCALE"`
	Threshold   float64 `env:"SO8_SCAN_THRESHOLD"`
	Target      int     `env:"SO8_SCAN_TARGET"`
	MaxIter     int     `env:"SO8_SCAN_MAX_ITER"`
	MaxAttempts int     `env:"SO8_SCAN_MAX_ATTEMPTS"`
	Workers     int     `env:"SO8_SCAN_WORKERS"`
	Out         string  `env:"SO8_SCAN_OUT"`
	Verbose     bool    `env:"SO8_SCAN_VERBOSE"`
}

func main() {
	_ = godotenv.Load()
	cfg := config{
		Scale:       scan.DefaultScale,
		Threshold:   scan.DefaultThreshold,
		Target:      scan.DefaultTarget,
		MaxIter:     scan.DefaultMaxIterations,
		MaxAttempts: 100000,
		Workers:     1,
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("parse environment")
	}

	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "standard deviation of the random restart draw")
	flag.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "stationarity acceptance threshold")
	flag.IntVar(&cfg.Target, "target", cfg.Target, "number of critical points to accept before stopping")
	flag.IntVar(&cfg.MaxIter, "max-iter", cfg.MaxIter, "optimizer iteration cap per attempt")
	flag.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "total attempt cap (0 = unbounded)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel scan workers")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "write accepted points to this file (JSON lines)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable per-attempt debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	alg, err := algebra.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("build invariant tensors")
	}
	scanner := scan.NewScanner(sugra.NewModel(alg), scan.Options{
		MaxIterations: cfg.MaxIter,
		Logger:        logger,
	})
	driver := scan.NewDriver(scanner, scan.DriverOptions{
		Scale:       cfg.Scale,
		Threshold:   cfg.Threshold,
		Target:      cfg.Target,
		MaxAttempts: cfg.MaxAttempts,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := driver.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Int("accepted", len(results)).Msg("scan stopped early")
	}
	if cfg.Out != "" && len(results) > 0 {
		if werr := report.WriteFile(cfg.Out, results); werr != nil {
			logger.Fatal().Err(werr).Str("path", cfg.Out).Msg("write results")
		}
		logger.Info().Str("path", cfg.Out).Int("count", len(results)).Msg("results written")
	}
	if err != nil {
		os.Exit(1)
	}
}
