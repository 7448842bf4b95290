// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	if cfg.Device.Path == "" {
		return fmt.Errorf("config: device path is required")
	}

	if cfg.Device.Mode != nil && *cfg.Device.Mode > 3 {
		return fmt.Errorf(
			"config: device mode %d out of range (0-3)",
			*cfg.Device.Mode,
		)
	}

	switch cfg.Device.BitOrder {
	case "", "msb", "lsb":
	default:
		return fmt.Errorf(
			"config: bit_order %q must be msb or lsb",
			cfg.Device.BitOrder,
		)
	}

	// 0 means "use the default"; explicit word sizes are capped at 64
	// bits per transfer unit.
	if cfg.Device.BitsPerWord > 64 {
		return fmt.Errorf(
			"config: bits_per_word %d out of range (1-64)",
			cfg.Device.BitsPerWord,
		)
	}

	// ------------------------------------------------------------
	// FILTER
	// ------------------------------------------------------------

	// 0 means "use the default"; anything explicit must carry the trim.
	if cfg.Filter.Window != 0 && cfg.Filter.Window < 3 {
		return fmt.Errorf(
			"config: filter window %d too small, need at least 3",
			cfg.Filter.Window,
		)
	}

	// ------------------------------------------------------------
	// SAMPLE
	// ------------------------------------------------------------

	if cfg.Sample.IntervalMs < 0 {
		return fmt.Errorf(
			"config: sample interval_ms %d must be >= 0",
			cfg.Sample.IntervalMs,
		)
	}

	return nil
}
