package animate

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/medstock/internal/errors"
)

// Default animation settings used by cards and landing statistics.
const (
	DefaultDuration = 2 * time.Second
	DefaultSteps    = 60
)

// Config controls how long an animation runs and how many frames it emits.
type Config struct {
	Duration time.Duration
	Steps    int
}

// DefaultConfig returns the 2s / 60 frame configuration.
func DefaultConfig() Config {
	return Config{Duration: DefaultDuration, Steps: DefaultSteps}
}

// Validate reports a contract violation: Steps must be at least 1 and
// Duration must not be negative.
func (c Config) Validate() error {
	if c.Steps < 1 {
		return errors.New(errors.ErrAnimation,
			fmt.Sprintf("Animation needs at least one step (got %d)", c.Steps),
			"Set animation.steps to 1 or more")
	}
	if c.Duration < 0 {
		return errors.New(errors.ErrAnimation,
			fmt.Sprintf("Animation duration cannot be negative (got %s)", c.Duration),
			"Set animation.duration to 0s or more")
	}
	return nil
}

// Period is the time between two frames. It is never zero for a positive
// Duration.
func (c Config) Period() time.Duration {
	if c.Steps < 1 || c.Duration <= 0 {
		return 0
	}
	p := c.Duration / time.Duration(c.Steps)
	if p <= 0 {
		p = time.Nanosecond
	}
	return p
}
