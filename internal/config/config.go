// Package config loads picker defaults from file and environment.
// Flags beat config values; config values beat built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Picker PickerConfig `mapstructure:"picker"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme        string `mapstructure:"theme"` // light | dark | auto
	Locale       string `mapstructure:"locale"`
	FirstWeekday string `mapstructure:"first_weekday"` // monday | sunday
	ConfirmLabel string `mapstructure:"confirm_label"`
	CancelLabel  string `mapstructure:"cancel_label"`
}

// PickerConfig holds picker behavior defaults.
type PickerConfig struct {
	InitialMode string `mapstructure:"initial_mode"` // month | year
}

// Load reads configuration from file and env. Env var overrides use prefix EASYDATE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.first_weekday", "monday")
	v.SetDefault("ui.confirm_label", "")
	v.SetDefault("ui.cancel_label", "")
	v.SetDefault("picker.initial_mode", "month")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EASYDATE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "easydate"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EASYDATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by `easydate prefs export` style flows; safe to call with the
// result of Load plus edits.
func Save(cfg Config) error {
	path := os.Getenv("EASYDATE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "easydate", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.first_weekday", cfg.UI.FirstWeekday)
	v.Set("ui.confirm_label", cfg.UI.ConfirmLabel)
	v.Set("ui.cancel_label", cfg.UI.CancelLabel)
	v.Set("picker.initial_mode", cfg.Picker.InitialMode)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
