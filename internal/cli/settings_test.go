package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/medstock/internal/errors"
	"github.com/rileyhilliard/medstock/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfig points --config at a temp file with content for one test.
func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".medstock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	orig := cfgFile
	cfgFile = path
	t.Cleanup(func() {
		cfgFile = orig
		theme.Global().Reset()
	})
}

func TestLoadSettings(t *testing.T) {
	useConfig(t, `version: 1
animation:
  duration: 0s
  steps: 10
theme: clinic
`)

	s, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "clinic", s.cfg.Theme)
	assert.Equal(t, theme.Clinic, s.styles.Palette.Name)
	assert.Equal(t, theme.Clinic, theme.Global().Active().Name)
	assert.Len(t, s.seed.Products, 12)
	assert.Len(t, s.seed.Landing, 4)
}

func TestLoadSettingsUnknownTheme(t *testing.T) {
	useConfig(t, "version: 1\ntheme: hospital\n")

	_, err := loadSettings()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadSettingsMissingSeedFile(t *testing.T) {
	useConfig(t, "version: 1\ndata:\n  seed_file: /does/not/exist.yaml\n")

	_, err := loadSettings()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrData))
}

const wantStatsLine = "1,250+ Pharmacies onboarded  ·  480,000+ Prescriptions tracked  ·  " +
	"99.9% Platform uptime  ·  4.8/5 Average rating\n"

func TestStatsCommandStatic(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	useConfig(t, "version: 1\n")

	s, err := loadSettings()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, statsCommand(context.Background(), &buf, s, false))
	assert.Equal(t, wantStatsLine, buf.String())
}

func TestStatsCommandAnimatedZeroDuration(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	useConfig(t, "version: 1\nanimation:\n  duration: 0s\n  steps: 10\n")

	s, err := loadSettings()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, statsCommand(context.Background(), &buf, s, true))
	assert.Equal(t, wantStatsLine, buf.String())
}

func TestStatsCommandInterruptIsNotAnError(t *testing.T) {
	useConfig(t, "version: 1\nanimation:\n  duration: 10s\n  steps: 10\n")

	s, err := loadSettings()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	assert.NoError(t, statsCommand(ctx, &buf, s, true))
}
