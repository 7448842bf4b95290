// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ------------------------------------------------------------
	// DEVICE DEFAULTS (MCP3301 wiring: mode 3, MSB first, 8-bit
	// words, 25 kHz)
	// ------------------------------------------------------------

	if cfg.Device.Mode == nil {
		mode := uint8(3)
		cfg.Device.Mode = &mode
	}
	if cfg.Device.BitOrder == "" {
		cfg.Device.BitOrder = "msb"
	}
	if cfg.Device.BitsPerWord == 0 {
		cfg.Device.BitsPerWord = 8
	}
	if cfg.Device.MaxSpeedHz == 0 {
		cfg.Device.MaxSpeedHz = 25000
	}

	// ------------------------------------------------------------
	// FILTER DEFAULTS
	// ------------------------------------------------------------

	if cfg.Filter.Window == 0 {
		cfg.Filter.Window = 16
	}

	// interval_ms keeps its zero value: back-to-back sampling.
}
