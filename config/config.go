// Package config provides configuration management for Greeter.
// It handles loading, saving, and validating application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/greeting"
	"github.com/yllada/greeter/rotator"
)

const envPrefix = "GREETER"

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Interval is how long each greeting is shown.
	Interval time.Duration `yaml:"interval"`
	// MaxCount is how many greetings are shown before the rotation stops.
	MaxCount int `yaml:"max_count"`
	// Frontend selects the surface: "auto", "gui", "tui", or "plain".
	Frontend string `yaml:"frontend"`
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// ShowNotifications sends a desktop notification when the rotation ends.
	ShowNotifications bool `yaml:"show_notifications"`
	// ShowTray adds a system tray indicator to the GUI.
	ShowTray bool `yaml:"show_tray"`
	// Greetings overrides the built-in table. Order is rotation order.
	Greetings []greeting.Entry `yaml:"greetings,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Interval:          common.DefaultTickInterval,
		MaxCount:          common.DefaultMaxCount,
		Frontend:          common.FrontendAuto,
		Theme:             common.ThemeAuto,
		ShowNotifications: true,
		ShowTray:          true,
		Greetings:         greeting.DefaultEntries(),
	}
}

// DefaultPath returns ~/.config/greeter/config.yaml, creating the
// directory if needed.
func DefaultPath() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}

// Load loads the configuration from the default path.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration at path.
// If the file doesn't exist, it is created with default values. Values
// are not validated here so that later layers can still override them;
// call Validate once every layer is applied.
func LoadFrom(path string) (*Config, error) {
	if !common.FileExists(path) {
		cfg := DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	config := DefaultConfig()
	config.Greetings = nil
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: error parsing %s: %w", common.ErrConfigLoad, path, err)
	}

	return config, nil
}

// Validate rejects values the rotator cannot run with and falls back
// to defaults for cosmetic settings.
func (c *Config) Validate() error {
	if err := c.RotatorOptions().Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		common.LogWarn("Unknown theme %q, using %q", c.Theme, common.ThemeAuto)
		c.Theme = common.ThemeAuto
	}

	switch c.Frontend {
	case common.FrontendAuto, common.FrontendGUI, common.FrontendTUI, common.FrontendPlain:
	default:
		common.LogWarn("Unknown front end %q, using %q", c.Frontend, common.FrontendAuto)
		c.Frontend = common.FrontendAuto
	}

	if len(c.Greetings) > 0 {
		if _, err := greeting.NewTable(c.Greetings...); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}

// Table builds the greeting table, using the built-in one when no
// greetings are configured.
func (c *Config) Table() (*greeting.Table, error) {
	if len(c.Greetings) == 0 {
		return greeting.DefaultTable(), nil
	}
	return greeting.NewTable(c.Greetings...)
}

// envOverrides are the settings that can be overridden from the
// environment, e.g. GREETER_INTERVAL=500ms.
type envOverrides struct {
	Interval time.Duration `envconfig:"INTERVAL"`
	MaxCount int           `envconfig:"MAX_COUNT"`
	Frontend string        `envconfig:"FRONTEND"`
	Theme    string        `envconfig:"THEME"`
}

// ApplyEnv overrides settings from GREETER_* environment variables.
// Unset variables leave the loaded values alone. Only parse errors are
// reported; range checks are left to Validate.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigLoad, err)
	}

	if env.Interval != 0 {
		c.Interval = env.Interval
	}
	if env.MaxCount != 0 {
		c.MaxCount = env.MaxCount
	}
	if env.Frontend != "" {
		c.Frontend = env.Frontend
	}
	if env.Theme != "" {
		c.Theme = env.Theme
	}
	return nil
}

// Overrides are command-line settings; zero fields are unset.
type Overrides struct {
	Interval time.Duration
	MaxCount int
	Frontend string
}

// Apply overrides settings with the non-zero fields of o.
func (c *Config) Apply(o Overrides) {
	if o.Interval != 0 {
		c.Interval = o.Interval
	}
	if o.MaxCount != 0 {
		c.MaxCount = o.MaxCount
	}
	if o.Frontend != "" {
		c.Frontend = o.Frontend
	}
}

// RotatorOptions returns the rotation cadence.
func (c *Config) RotatorOptions() rotator.Options {
	return rotator.Options{
		Interval: c.Interval,
		MaxCount: c.MaxCount,
	}
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %w", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: error serializing configuration: %w", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigSave, err)
	}

	return nil
}
