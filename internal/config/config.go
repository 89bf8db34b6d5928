// Package config loads the experiment configuration file: walk length,
// the canonical trial counts, the success threshold, the seed, and loosely
// typed renderer options.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// Config is the root of the YAML configuration file.
type Config struct {
	// Seed for the coin source. Zero means "seed randomly per process".
	Seed int64 `yaml:"seed"`

	Walk   WalkConfig   `yaml:"walk"`
	Trials TrialsConfig `yaml:"trials"`
	Render RenderConfig `yaml:"render"`
}

// WalkConfig configures a single walk.
type WalkConfig struct {
	Length int `yaml:"length"`
}

// TrialsConfig configures the aggregation runs.
type TrialsConfig struct {
	// Counts are the trial counts the hist command runs, smallest first.
	Counts []int `yaml:"counts"`
	// Threshold is the target position for the success rate.
	Threshold int `yaml:"threshold"`
}

// RenderConfig selects a chart renderer by name. Options are renderer
// specific and decoded by the adapter via DecodeOptions.
type RenderConfig struct {
	Type    string         `yaml:"type"`
	Options map[string]any `yaml:"options"`
}

// DecodeOptions decodes the loose option map into a renderer-specific
// struct with mapstructure tags.
func (r RenderConfig) DecodeOptions(out any) error {
	if err := mapstructure.Decode(r.Options, out); err != nil {
		return fmt.Errorf("failed to decode %q render options: %w", r.Type, err)
	}
	return nil
}

// Default returns the canonical classroom configuration: 25-step walks,
// trial counts 100/1000/10000, threshold +10.
func Default() Config {
	return Config{
		Walk:   WalkConfig{Length: 25},
		Trials: TrialsConfig{Counts: []int{100, 1000, 10000}, Threshold: 10},
		Render: RenderConfig{Type: "terminal"},
	}
}

// Load reads a YAML config file, layering it over the defaults. A missing
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the loaded values against the pipeline's argument rules.
func (c Config) Validate() error {
	if c.Walk.Length < 0 {
		return fmt.Errorf("walk.length must be non-negative, got %d: %w", c.Walk.Length, domain.ErrInvalidArgument)
	}
	if len(c.Trials.Counts) == 0 {
		return fmt.Errorf("trials.counts must not be empty: %w", domain.ErrInvalidArgument)
	}
	for _, count := range c.Trials.Counts {
		if count < 1 {
			return fmt.Errorf("trials.counts entries must be positive, got %d: %w", count, domain.ErrInvalidArgument)
		}
	}
	return nil
}
