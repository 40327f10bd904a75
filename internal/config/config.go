// Package config loads ajanda's startup configuration: defaults, an optional
// YAML file, an optional .env file and AJANDA_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/ajanda/internal/agenda"
)

// EnvPrefix is prepended to every environment override, e.g.
// AJANDA_SETTINGS_DARK_MODE=true.
const EnvPrefix = "AJANDA"

// Config is the effective configuration.
type Config struct {
	Debug       bool     `mapstructure:"debug" yaml:"debug"`
	SeedSamples bool     `mapstructure:"seed_samples" yaml:"seed_samples"`
	Settings    Settings `mapstructure:"settings" yaml:"settings"`

	// Warnings collects values that were replaced by defaults while loading.
	// The logger is not ready at that point, so callers report them.
	Warnings []string `mapstructure:"-" yaml:"-"`
}

// Settings are the initial preference values.
type Settings struct {
	Notifications bool `mapstructure:"notifications" yaml:"notifications"`
	DarkMode      bool `mapstructure:"dark_mode" yaml:"dark_mode"`
	SoundEnabled  bool `mapstructure:"sound_enabled" yaml:"sound_enabled"`
	AutoSync      bool `mapstructure:"auto_sync" yaml:"auto_sync"`
	ReminderTime  int  `mapstructure:"reminder_time" yaml:"reminder_time"`
}

// Options selects the files Load reads. Empty paths are skipped.
type Options struct {
	// Path is the YAML config file. A missing file is an error only when
	// Required is set.
	Path     string
	Required bool
	// EnvFile is a dotenv file whose variables are exported before the
	// environment is consulted. Variables already set win.
	EnvFile string
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	s := agenda.DefaultSettings()
	return Config{
		SeedSamples: true,
		Settings: Settings{
			Notifications: s.Notifications,
			DarkMode:      s.DarkMode,
			SoundEnabled:  s.SoundEnabled,
			AutoSync:      s.AutoSync,
			ReminderTime:  s.ReminderTime,
		},
	}
}

// Load resolves the effective configuration.
func Load(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err == nil {
			v.SetConfigFile(opts.Path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if opts.Required || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if !agenda.ValidReminderTime(cfg.Settings.ReminderTime) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf(
			"settings.reminder_time %d is not one of %v, using %d",
			cfg.Settings.ReminderTime, agenda.ReminderTimes, agenda.DefaultReminderTime))
		cfg.Settings.ReminderTime = agenda.DefaultReminderTime
	}

	return cfg, nil
}

// AgendaSettings converts the configured preferences into the store record.
func (c Config) AgendaSettings() agenda.Settings {
	return agenda.Settings{
		Notifications: c.Settings.Notifications,
		DarkMode:      c.Settings.DarkMode,
		SoundEnabled:  c.Settings.SoundEnabled,
		AutoSync:      c.Settings.AutoSync,
		ReminderTime:  c.Settings.ReminderTime,
	}
}

// Encode renders cfg as YAML.
func Encode(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("seed_samples", d.SeedSamples)
	v.SetDefault("settings.notifications", d.Settings.Notifications)
	v.SetDefault("settings.dark_mode", d.Settings.DarkMode)
	v.SetDefault("settings.sound_enabled", d.Settings.SoundEnabled)
	v.SetDefault("settings.auto_sync", d.Settings.AutoSync)
	v.SetDefault("settings.reminder_time", d.Settings.ReminderTime)
}
