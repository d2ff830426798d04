package pufconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every CLI-level preference shared by pufctl and puf. It has
// nothing to do with a module's own provisioning state, which lives on disk
// under internal/nvstore's base directory instead.
type Config struct {
	// Verbose enables debug-level status reporting (spec.md §4.5's debug
	// reports are otherwise dropped even in a debug build unless the CLI
	// also asks to see them).
	Verbose bool `mapstructure:"verbose"`

	// NonInteractive makes the default query handler fail every Query
	// immediately instead of prompting on stdin, for use in scripts and CI.
	NonInteractive bool `mapstructure:"non_interactive"`

	// OutputFormat holds the configured output format ("table" by default).
	// pufctl list and provisioned always render a table; no other format is
	// implemented.
	OutputFormat string `mapstructure:"output_format"`
}

// ErrConfigAlreadyExists is returned by CreateConfig when a config file is
// already present and force-overwrite wasn't requested.
var ErrConfigAlreadyExists = errors.New("puflib config already exists")

// DefaultConfig returns the configuration pufctl/puf use before any config
// file, environment variable, or flag is applied.
func DefaultConfig() Config {
	return Config{
		Verbose:        false,
		NonInteractive: false,
		OutputFormat:   "table",
	}
}

// Load reads config.yml (if present), layers environment variables and then
// CLI flags on top, and unmarshals the result. Precedence, highest first:
// flags, environment (PUFLIB_*), config file, defaults.
//
// Unlike a long-lived server process, pufctl and puf each call Load exactly
// once per invocation, so there's nothing here that needs to survive past
// that call; every Load builds its own viper.Viper instance from scratch
// rather than configuring a package-global one, which means there's no
// shared state for a second test in the same binary to collide with or a
// reset hook to unwind.
func Load(fs *pflag.FlagSet) (Config, error) {
	loc, err := locate()
	if err != nil {
		return Config{}, err
	}

	v := newViper(loc)
	bindFlags(v, fs)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// CreateConfig writes the default config file and returns its absolute path.
func CreateConfig() (string, error) {
	loc, err := locate()
	if err != nil {
		return "", err
	}
	if err := loc.ensureDir(); err != nil {
		return "", err
	}

	writer := viper.New()
	writer.SetConfigType(configType)

	if err := writer.MergeConfigMap(configAsMap(DefaultConfig())); err != nil {
		return "", fmt.Errorf("failed to prepare default config: %w", err)
	}

	cfgFile := loc.file()
	if err := writer.SafeWriteConfigAs(cfgFile); err != nil {
		var alreadyExistsErr viper.ConfigFileAlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			return cfgFile, ErrConfigAlreadyExists
		}
		return "", fmt.Errorf("error writing config file: %w", err)
	}

	return cfgFile, nil
}

// newViper builds a viper instance scoped to loc, seeded with this
// package's defaults and environment binding. Each call gets its own
// instance instead of reusing viper.GetViper()'s process-wide default.
func newViper(loc configLocation) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(loc.dir)

	v.SetEnvPrefix("PUFLIB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range configAsMap(DefaultConfig()) {
		v.SetDefault(key, value)
	}
	return v
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	if fs == nil {
		return
	}
	bind := func(key, flag string) {
		if f := fs.Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
	bind("verbose", "verbose")
	bind("non_interactive", "non-interactive")
	bind("output_format", "output")
}

func configAsMap(cfg Config) map[string]any {
	return map[string]any{
		"verbose":         cfg.Verbose,
		"non_interactive": cfg.NonInteractive,
		"output_format":   cfg.OutputFormat,
	}
}
