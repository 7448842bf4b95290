// internal/sampler/builder.go
package sampler

import (
	"time"

	"go.uber.org/zap"

	"github.com/perchlab/spi-sampler/internal/config"
	"github.com/perchlab/spi-sampler/internal/filter"
	"github.com/perchlab/spi-sampler/internal/spibus"
)

// Build constructs the sampling pipeline for one device: bus session,
// filter window, sampler. The returned closer restores the bus
// configuration best-effort and releases the handle; it must run on
// every exit path that follows a successful Build.
//
// Expects normalized config.
func Build(cfg *config.Config, logger *zap.Logger) (*Sampler, func() error, error) {
	desired := spibus.Settings{
		Mode:        spibus.Mode(*cfg.Device.Mode),
		BitOrder:    bitOrder(cfg.Device.BitOrder),
		BitsPerWord: cfg.Device.BitsPerWord,
		MaxSpeedHz:  cfg.Device.MaxSpeedHz,
	}

	// fail fast at startup: no sampling without a validated configuration
	sess, err := spibus.Open(cfg.Device.Path, desired, nil, logger)
	if err != nil {
		return nil, nil, err
	}

	window, err := filter.New(cfg.Filter.Window)
	if err != nil {
		sess.Close() //nolint:errcheck
		return nil, nil, err
	}

	s, err := New(
		Config{Interval: time.Duration(cfg.Sample.IntervalMs) * time.Millisecond},
		sess,
		window,
		logger,
	)
	if err != nil {
		sess.Close() //nolint:errcheck
		return nil, nil, err
	}

	return s, sess.Close, nil
}

func bitOrder(s string) spibus.BitOrder {
	if s == "lsb" {
		return spibus.LSBFirst
	}
	return spibus.MSBFirst
}
