// internal/config/validate_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	mode := uint8(3)
	return &Config{
		Device: DeviceConfig{
			Path:        "/dev/spidev0.0",
			Mode:        &mode,
			BitOrder:    "msb",
			BitsPerWord: 8,
			MaxSpeedHz:  25000,
		},
		Filter: FilterConfig{Window: 16},
		Sample: SampleConfig{IntervalMs: 0},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_MinimalConfigOK(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Path: "/dev/spidev0.0"}}
	require.NoError(t, Validate(cfg))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "missing device path",
			mutate: func(c *Config) { c.Device.Path = "" },
		},
		{
			name: "mode out of range",
			mutate: func(c *Config) {
				mode := uint8(4)
				c.Device.Mode = &mode
			},
		},
		{
			name:   "bad bit order",
			mutate: func(c *Config) { c.Device.BitOrder = "middle" },
		},
		{
			name:   "bits_per_word out of range",
			mutate: func(c *Config) { c.Device.BitsPerWord = 200 },
		},
		{
			name:   "window of one",
			mutate: func(c *Config) { c.Filter.Window = 1 },
		},
		{
			name:   "window of two",
			mutate: func(c *Config) { c.Filter.Window = 2 },
		},
		{
			name:   "negative interval",
			mutate: func(c *Config) { c.Sample.IntervalMs = -5 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Path: "/dev/spidev0.0"}}
	require.NoError(t, Validate(cfg))

	assert.Nil(t, cfg.Device.Mode)
	assert.Zero(t, cfg.Device.BitsPerWord)
	assert.Zero(t, cfg.Filter.Window)
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Path: "/dev/spidev0.0"}}
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	require.NotNil(t, cfg.Device.Mode)
	assert.Equal(t, uint8(3), *cfg.Device.Mode)
	assert.Equal(t, "msb", cfg.Device.BitOrder)
	assert.Equal(t, uint8(8), cfg.Device.BitsPerWord)
	assert.Equal(t, uint32(25000), cfg.Device.MaxSpeedHz)
	assert.Equal(t, 16, cfg.Filter.Window)
	assert.Equal(t, 0, cfg.Sample.IntervalMs)
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	mode := uint8(0)
	cfg := &Config{
		Device: DeviceConfig{
			Path:        "/dev/spidev1.1",
			Mode:        &mode,
			BitOrder:    "lsb",
			BitsPerWord: 16,
			MaxSpeedHz:  1000000,
		},
		Filter: FilterConfig{Window: 8},
	}
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	assert.Equal(t, uint8(0), *cfg.Device.Mode)
	assert.Equal(t, "lsb", cfg.Device.BitOrder)
	assert.Equal(t, uint8(16), cfg.Device.BitsPerWord)
	assert.Equal(t, uint32(1000000), cfg.Device.MaxSpeedHz)
	assert.Equal(t, 8, cfg.Filter.Window)
}

func TestNormalize_NilConfig(t *testing.T) {
	assert.NotPanics(t, func() { Normalize(nil) })
}

func TestLoad_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sampler.yaml")
	content := `
device:
  path: /dev/spidev0.0
  mode: 3
  bit_order: msb
  bits_per_word: 8
  max_speed_hz: 25000

filter:
  window: 16

sample:
  interval_ms: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/spidev0.0", cfg.Device.Path)
	require.NotNil(t, cfg.Device.Mode)
	assert.Equal(t, uint8(3), *cfg.Device.Mode)
	assert.Equal(t, 16, cfg.Filter.Window)
	assert.Equal(t, 10, cfg.Sample.IntervalMs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
