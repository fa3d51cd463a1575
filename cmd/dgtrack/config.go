package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"
)

var errBadConfig = errors.New("dgtrack: invalid configuration")

// Output formats of the contours command.
const (
	FormatSurfels  = "surfels"
	FormatPointels = "pointels"
	FormatInner    = "inner"
	FormatFreeman  = "freeman"
)

// Config mirrors the command line flags; flags win over file values.
// A zero max-distance in a file means unbounded.
type Config struct {
	Format      string  `yaml:"format"`
	Adjacency   string  `yaml:"adjacency"`
	Inside      string  `yaml:"inside"`
	MaxDistance float64 `yaml:"max-distance"`
	Verbose     bool    `yaml:"verbose"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Format:      FormatSurfels,
		Adjacency:   "interior",
		Inside:      "#1",
		MaxDistance: math.Inf(1),
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("dgtrack: read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", errBadConfig, err)
	}
	if cfg.MaxDistance == 0 {
		cfg.MaxDistance = math.Inf(1)
	}

	return cfg, nil
}

// Validate rejects unknown formats and adjacencies and an empty inside set.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatSurfels, FormatPointels, FormatInner, FormatFreeman:
	default:
		return fmt.Errorf("%w: format %q", errBadConfig, c.Format)
	}
	if c.Adjacency != "interior" && c.Adjacency != "exterior" {
		return fmt.Errorf("%w: adjacency %q", errBadConfig, c.Adjacency)
	}
	if c.Inside == "" {
		return fmt.Errorf("%w: empty inside set", errBadConfig)
	}
	if math.IsNaN(c.MaxDistance) || c.MaxDistance < 0 {
		return fmt.Errorf("%w: max-distance %v", errBadConfig, c.MaxDistance)
	}

	return nil
}
