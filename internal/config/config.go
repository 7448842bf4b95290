// internal/config/config.go
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Device DeviceConfig `yaml:"device"`
	Filter FilterConfig `yaml:"filter"`
	Sample SampleConfig `yaml:"sample"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Path string `yaml:"path"`

	// Mode is the SPI mode (0-3). Pointer because 0 is a valid mode;
	// unset defaults to the MCP3301 wiring (mode 3).
	Mode *uint8 `yaml:"mode"`

	BitOrder    string `yaml:"bit_order"` // msb | lsb
	BitsPerWord uint8  `yaml:"bits_per_word"`
	MaxSpeedHz  uint32 `yaml:"max_speed_hz"`
}

// ---- FILTER ----

type FilterConfig struct {
	// Window is the smoothing window capacity. Minimum 3: the trimmed
	// mean drops one max and one min.
	Window int `yaml:"window"`
}

// ---- SAMPLE ----

type SampleConfig struct {
	// IntervalMs is the pause between samples. 0 samples back-to-back.
	IntervalMs int `yaml:"interval_ms"`
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse")
	}

	return &cfg, nil
}
