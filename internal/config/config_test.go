package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/medstock/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 2*time.Second, cfg.Animation.Duration)
	assert.Equal(t, 60, cfg.Animation.Steps)
	assert.Equal(t, "pharmacy", cfg.Theme)
	assert.Empty(t, cfg.Data.SeedFile)
	assert.Equal(t, uint64(7), cfg.Data.Seed)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
animation:
  duration: 1500ms
  steps: 30
theme: clinic
data:
  seed_file: data/seed.yaml
  seed: 99
output:
  color: never
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.Animation.Duration)
	assert.Equal(t, 30, cfg.Animation.Steps)
	assert.Equal(t, "clinic", cfg.Theme)
	assert.Equal(t, filepath.Join(dir, "data", "seed.yaml"), cfg.Data.SeedFile)
	assert.Equal(t, uint64(99), cfg.Data.Seed)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoad_PartialMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("theme: distributor\n"), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "distributor", cfg.Theme)
	assert.Equal(t, 2*time.Second, cfg.Animation.Duration)
	assert.Equal(t, 60, cfg.Animation.Steps)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoad_RoundTripsMarshalledDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	// Durations marshal as integers of nanoseconds, which viper decodes too.
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, data, 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("animation: [\n"), 0o644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\n"), 0o644))

	found, err := Find(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_WalksUpToGitRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("version: 1\n"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	found, err := Find("")
	require.NoError(t, err)

	// Resolve symlinks (macOS temp dirs live under /private)
	want, _ := filepath.EvalSymlinks(filepath.Join(root, ConfigFileName))
	got, _ := filepath.EvalSymlinks(found)
	assert.Equal(t, want, got)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("animation:\n  steps: 0\n"), 0o644))

	_, err := LoadOrDefault(configPath)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"future version", func(c *Config) { c.Version = 99 }, "from the future"},
		{"zero steps", func(c *Config) { c.Animation.Steps = 0 }, "Invalid animation settings"},
		{"negative duration", func(c *Config) { c.Animation.Duration = -time.Second }, "Invalid animation settings"},
		{"zero duration ok", func(c *Config) { c.Animation.Duration = 0 }, ""},
		{"unknown theme", func(c *Config) { c.Theme = "hospital" }, "Unknown user type"},
		{"bad color", func(c *Config) { c.Output.Color = "sometimes" }, "Unknown output.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}
