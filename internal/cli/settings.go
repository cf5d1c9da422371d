package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/medstock/internal/config"
	"github.com/rileyhilliard/medstock/internal/inventory"
	"github.com/rileyhilliard/medstock/internal/logger"
	"github.com/rileyhilliard/medstock/internal/theme"
	"github.com/rileyhilliard/medstock/internal/ui"
)

// settings is everything a command needs after config is resolved.
type settings struct {
	cfg    *config.Config
	seed   *inventory.Seed
	styles ui.Styles
	log    logger.Logger
}

// loadSettings loads config, applies the color mode and theme, and loads
// the inventory seed.
func loadSettings() (*settings, error) {
	log := logger.NewEnvLogger("medstock")

	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	log.Debug("animation %s over %d steps, theme %s", cfg.Animation.Duration, cfg.Animation.Steps, cfg.Theme)

	if profile, ok := colorProfile(cfg.Output.Color, noColor); ok {
		lipgloss.SetColorProfile(profile)
	}

	palette, err := theme.Global().Select(theme.UserType(cfg.Theme))
	if err != nil {
		return nil, err
	}

	seed, err := inventory.Load(cfg.Data.SeedFile)
	if err != nil {
		return nil, err
	}
	if cfg.Data.SeedFile != "" {
		log.Debug("loaded %d products from %s", len(seed.Products), cfg.Data.SeedFile)
	}

	return &settings{
		cfg:    cfg,
		seed:   seed,
		styles: ui.NewStyles(palette),
		log:    log,
	}, nil
}

// colorProfile maps the output.color setting and --no-color to a forced
// profile. ok is false for auto detection.
func colorProfile(mode string, disabled bool) (profile termenv.Profile, ok bool) {
	switch {
	case disabled || mode == "never":
		return termenv.Ascii, true
	case mode == "always":
		return termenv.TrueColor, true
	}
	return termenv.Ascii, false
}
