package config

import (
	"fmt"

	"github.com/rileyhilliard/medstock/internal/errors"
	"github.com/rileyhilliard/medstock/internal/theme"
)

// ValidColorModes lists accepted output.color values.
var ValidColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but medstock only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade medstock or lower the config version")
	}

	if err := cfg.Animation.Animate().Validate(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid animation settings",
			"Check the 'animation' section in your "+ConfigFileName)
	}

	if _, err := theme.Lookup(theme.UserType(cfg.Theme)); err != nil {
		return err
	}

	if !ValidColorModes[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output.color %q", cfg.Output.Color),
			"Use auto, always, or never")
	}

	return nil
}
