// Package config loads selwatch settings from defaults, an optional YAML file,
// SELWATCH_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mj1618/selwatch/internal/logging"
	"github.com/mj1618/selwatch/internal/output"
	"github.com/mj1618/selwatch/internal/probe"
)

// EnvPrefix is prepended to environment variable names, e.g.
// SELWATCH_WATCH_INTERVAL for watch.interval.
const EnvPrefix = "SELWATCH"

// Config holds all selwatch settings.
type Config struct {
	Watch     WatchConfig     `mapstructure:"watch"`
	Condition ConditionConfig `mapstructure:"condition"`
	Extract   ExtractConfig   `mapstructure:"extract"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// WatchConfig controls the poll loop.
type WatchConfig struct {
	// Source is "focus" or "pointer".
	Source       string        `mapstructure:"source"`
	Interval     time.Duration `mapstructure:"interval"`
	StartupDelay time.Duration `mapstructure:"startup_delay"`
	// Duration stops the loop after the given time; 0 runs until interrupted.
	Duration time.Duration `mapstructure:"duration"`
}

// ConditionConfig selects the capability condition tested against the subtree.
type ConditionConfig struct {
	Preset string `mapstructure:"preset"`
	// Require lists "name=bool" predicates. When non-empty it replaces Preset.
	Require []string `mapstructure:"require"`
}

// ExtractConfig bounds text extraction.
type ExtractConfig struct {
	MaxChars int `mapstructure:"max_chars"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// File, when set, receives JSON log lines instead of stderr.
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Watch: WatchConfig{
			Source:       string(probe.SourceFocus),
			Interval:     probe.DefaultInterval,
			StartupDelay: probe.DefaultStartupDelay,
		},
		Condition: ConditionConfig{
			Preset:  probe.DefaultPreset,
			Require: []string{},
		},
		Extract: ExtractConfig{
			MaxChars: probe.DefaultMaxChars,
		},
		Output: OutputConfig{
			Format: string(output.FormatText),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// SetDefaults registers the defaults with viper so they apply with or
// without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("watch.source", defaults.Watch.Source)
	viper.SetDefault("watch.interval", defaults.Watch.Interval)
	viper.SetDefault("watch.startup_delay", defaults.Watch.StartupDelay)
	viper.SetDefault("watch.duration", defaults.Watch.Duration)

	viper.SetDefault("condition.preset", defaults.Condition.Preset)
	viper.SetDefault("condition.require", defaults.Condition.Require)

	viper.SetDefault("extract.max_chars", defaults.Extract.MaxChars)

	viper.SetDefault("output.format", defaults.Output.Format)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// Predicates returns the predicates the run should test: the explicit
// Require list when given, otherwise the named preset.
func (c *Config) Predicates() ([]probe.PropertyPredicate, error) {
	if len(c.Condition.Require) > 0 {
		return probe.ParsePredicates(c.Condition.Require)
	}
	return probe.LookupPreset(c.Condition.Preset)
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "selwatch")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".selwatch"
	}
	return filepath.Join(home, ".config", "selwatch")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidLogLevels returns the accepted logging.level values.
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = strings.ToLower(l)
	}
	return out
}
