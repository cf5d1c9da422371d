package config

import (
	"time"

	"github.com/rileyhilliard/medstock/internal/animate"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .medstock.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Theme     string          `yaml:"theme" mapstructure:"theme"`
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// AnimationConfig controls how metric cards and landing stats count up.
type AnimationConfig struct {
	// Duration is the total time for one count-up.
	Duration time.Duration `yaml:"duration" mapstructure:"duration"`

	// Steps is the number of frames emitted during Duration.
	Steps int `yaml:"steps" mapstructure:"steps"`
}

// Animate converts to the animator's config.
func (a AnimationConfig) Animate() animate.Config {
	return animate.Config{Duration: a.Duration, Steps: a.Steps}
}

// DataConfig selects the sample data.
type DataConfig struct {
	// SeedFile replaces the built-in sample data when set.
	SeedFile string `yaml:"seed_file" mapstructure:"seed_file"`

	// Seed drives the reshuffle used by the dashboard's refresh key.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is auto, always, or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Animation: AnimationConfig{
			Duration: animate.DefaultDuration,
			Steps:    animate.DefaultSteps,
		},
		Theme: "pharmacy",
		Data: DataConfig{
			Seed: 7,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
