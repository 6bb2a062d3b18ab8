// Package config provides configuration loading and access for the sampler
// binaries.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sampler configuration parameters.
type Config struct {
	Sample  SampleConfig  `yaml:"sample"`
	Output  OutputConfig  `yaml:"output"`
	Preview PreviewConfig `yaml:"preview"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SampleConfig holds generation parameters.
type SampleConfig struct {
	Count     int     `yaml:"count"`     // Target point count (kernel capacity)
	MinDist   float64 `yaml:"min_dist"`  // Minimum spacing (0 = derive from count)
	Probes    int     `yaml:"probes"`    // Candidates per active point per iteration
	Seed      int64   `yaml:"seed"`      // RNG seed (0 = time-based)
	Workers   int     `yaml:"workers"`   // Probe evaluation workers (0 = GOMAXPROCS)
	Precision string  `yaml:"precision"` // Coordinate precision: float32 or float64
}

// OutputConfig holds structured output settings.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory for CSV logs (empty = disabled)
}

// PreviewConfig holds preview tool settings.
type PreviewConfig struct {
	Window      int     `yaml:"window"`       // Preview pane size in pixels
	PointRadius float64 `yaml:"point_radius"` // Drawn point radius in pixels
	Tiled       bool    `yaml:"tiled"`        // Start with the 2x2 tiled view
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MinDist float64 // Effective minimum distance after derivation from count
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.ComputeDerived()

	return cfg, nil
}

// validate rejects values the samplers cannot run with.
func (c *Config) validate() error {
	if c.Sample.Count < 1 {
		return fmt.Errorf("config: sample.count must be at least 1, got %d", c.Sample.Count)
	}
	if c.Sample.Probes < 1 {
		return fmt.Errorf("config: sample.probes must be at least 1, got %d", c.Sample.Probes)
	}
	if c.Sample.MinDist < 0 {
		return fmt.Errorf("config: sample.min_dist must not be negative, got %g", c.Sample.MinDist)
	}
	switch c.Sample.Precision {
	case "float32", "float64":
	default:
		return fmt.Errorf("config: sample.precision must be float32 or float64, got %q", c.Sample.Precision)
	}
	return nil
}

// ComputeDerived calculates values derived from loaded config. Load calls
// this; call it again after mutating Sample fields programmatically.
func (c *Config) ComputeDerived() {
	minDist := c.Sample.MinDist
	if minDist == 0 {
		minDist = 1 / math.Sqrt(float64(c.Sample.Count)*math.Sqrt2)
	}
	c.Derived.MinDist = minDist
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
