// Package config loads lascore configuration: parser conventions,
// ingestion watch settings, and output preferences. Sources are, in
// precedence order, environment variables (prefix LASCORE), an
// explicit config file, and defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/petralog/lascore/errors"
	"github.com/petralog/lascore/las"
)

// Config is the lascore configuration tree.
type Config struct {
	Parser ParserConfig `mapstructure:"parser" toml:"parser"`
	Watch  WatchConfig  `mapstructure:"watch" toml:"watch"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
}

// ParserConfig configures LAS parse conventions.
type ParserConfig struct {
	// NullTolerance is the absolute tolerance when matching the null
	// sentinel (default 1e-6).
	NullTolerance float64 `mapstructure:"null_tolerance" toml:"null_tolerance"`
	// DepthMnemonics are the curve names recognized as the depth
	// index (default DEPT, DEPTH, MD).
	DepthMnemonics []string `mapstructure:"depth_mnemonics" toml:"depth_mnemonics"`
}

// Options converts the parser configuration into explicit parse
// options; conventions are passed into the parser rather than read
// from ambient state.
func (c ParserConfig) Options() las.Options {
	return las.Options{
		NullTolerance:  c.NullTolerance,
		DepthMnemonics: c.DepthMnemonics,
	}
}

// WatchConfig configures the ingestion directory watcher.
type WatchConfig struct {
	// Dir is the directory to watch for new LAS files.
	Dir string `mapstructure:"dir" toml:"dir"`
	// Patterns are filename globs treated as LAS files.
	Patterns []string `mapstructure:"patterns" toml:"patterns"`
	// DebounceMS delays ingestion after the last write event, so
	// files still being copied in are not parsed half-written.
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms"`
}

// OutputConfig configures CLI output.
type OutputConfig struct {
	// JSON switches logs and command output to machine-readable JSON.
	JSON bool `mapstructure:"json" toml:"json"`
	// SampleCount is the number of per-curve samples in reports.
	SampleCount int `mapstructure:"sample_count" toml:"sample_count"`
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the lascore configuration using Viper.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// UseFile loads configuration from an explicit file path and caches it
// as the global configuration, overriding the default search paths.
func UseFile(configPath string) error {
	cfg, err := LoadFromFile(configPath)
	if err != nil {
		return err
	}
	globalConfig = cfg
	return nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("LASCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName("lascore")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.lascore")

	// A missing config file is fine; defaults and env vars apply.
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}
