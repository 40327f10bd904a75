package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/ajanda/internal/agenda"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{Path: filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.True(t, cfg.SeedSamples)
	assert.Equal(t, agenda.DefaultSettings(), cfg.AgendaSettings())
	assert.Empty(t, cfg.Warnings)
}

func TestLoadRequiredMissingFile(t *testing.T) {
	_, err := Load(Options{Path: filepath.Join(t.TempDir(), "missing.yaml"), Required: true})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
debug: true
seed_samples: false
settings:
  dark_mode: true
  sound_enabled: false
  reminder_time: 30
`)

	cfg, err := Load(Options{Path: path})
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.False(t, cfg.SeedSamples)
	assert.True(t, cfg.Settings.DarkMode)
	assert.False(t, cfg.Settings.SoundEnabled)
	assert.True(t, cfg.Settings.Notifications, "unset keys keep defaults")
	assert.Equal(t, 30, cfg.Settings.ReminderTime)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "settings:\n  dark_mode: false\n")
	t.Setenv("AJANDA_SETTINGS_DARK_MODE", "true")
	t.Setenv("AJANDA_SETTINGS_REMINDER_TIME", "60")

	cfg, err := Load(Options{Path: path})
	require.NoError(t, err)

	assert.True(t, cfg.Settings.DarkMode)
	assert.Equal(t, 60, cfg.Settings.ReminderTime)
}

func TestLoadEnvFile(t *testing.T) {
	const key = "AJANDA_SEED_SAMPLES"
	require.Empty(t, os.Getenv(key))
	t.Cleanup(func() { os.Unsetenv(key) })

	envFile := writeFile(t, ".env", key+"=false\n")

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)
	assert.False(t, cfg.SeedSamples)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), ".env")})
	assert.NoError(t, err)
}

func TestLoadInvalidReminderTimeFallsBack(t *testing.T) {
	path := writeFile(t, "config.yaml", "settings:\n  reminder_time: 7\n")

	cfg, err := Load(Options{Path: path})
	require.NoError(t, err)

	assert.Equal(t, agenda.DefaultReminderTime, cfg.Settings.ReminderTime)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "reminder_time 7")
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "settings: [\n")
	_, err := Load(Options{Path: path})
	assert.Error(t, err)
}

func TestEncodeRoundTripsThroughLoad(t *testing.T) {
	want := Default()
	want.Debug = true
	want.Settings.ReminderTime = 5

	data, err := Encode(want)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "seed_samples")
	assert.NotContains(t, raw, "warnings")

	path := writeFile(t, "config.yaml", string(data))
	got, err := Load(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, want.Debug, got.Debug)
	assert.Equal(t, want.Settings, got.Settings)
}
