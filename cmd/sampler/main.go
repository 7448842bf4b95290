// cmd/sampler/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/perchlab/spi-sampler/internal/config"
	"github.com/perchlab/spi-sampler/internal/sampler"
	"github.com/perchlab/spi-sampler/internal/stats"
	"github.com/perchlab/spi-sampler/internal/writer"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if len(os.Args) < 2 {
		logger.Fatal("usage: sampler <config.yaml>")
	}
	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	if err := config.Validate(cfg); err != nil {
		logger.Fatal("config validation failed", zap.Error(err))
	}
	config.Normalize(cfg)

	// --------------------
	// Build the pipeline (fatal: no sampling without a validated
	// bus configuration)
	// --------------------

	s, closeSession, err := sampler.Build(cfg, logger)
	if err != nil {
		logger.Fatal("pipeline build failed",
			zap.String("device", cfg.Device.Path),
			zap.Error(err),
		)
	}
	defer func() {
		// Restore-on-exit is best-effort inside Close; the handle is
		// always released.
		if err := closeSession(); err != nil {
			logger.Warn("session close failed", zap.Error(err))
		}
	}()

	// --------------------
	// Sample until interrupted
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := writer.NewText(os.Stdout)

	started := time.Now()
	loops := s.Run(ctx, out)

	// --------------------
	// End-of-session report
	// --------------------

	window := s.Window().Values()
	summary := stats.Summary{
		Loops:       loops,
		Elapsed:     time.Since(started),
		WindowMean:  stats.Mean(window),
		WindowStdev: stats.Stdev(window),
	}
	if err := out.WriteSummary(summary); err != nil {
		logger.Warn("summary write failed", zap.Error(err))
	}
}
