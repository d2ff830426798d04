// Package pufconfig centralizes CLI configuration for pufctl and puf: where
// it lives on disk, how it's loaded, and how cobra flags bind to it. It is
// deliberately independent of internal/nvstore, which governs where
// *module* artifacts live, not where the CLI's own preferences live.
package pufconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configName = "config"
	configType = "yml"
	configPath = "puflib"

	// ConfigDirEnv overrides the base directory config is resolved under,
	// primarily so tests don't touch a real user's config directory.
	ConfigDirEnv = "PUFLIB_CONFIG_DIR"
)

// configLocation is the resolved on-disk layout for the CLI config: a
// directory plus the file name within it. Resolving PUFLIB_CONFIG_DIR /
// os.UserConfigDir() happens exactly once per call site that needs it,
// through locate(), rather than every derived path (dir, file, "make sure
// the dir exists") re-running its own fallback.
type configLocation struct {
	dir string
}

func locate() (configLocation, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return configLocation{dir: filepath.Join(dir, configPath)}, nil
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return configLocation{}, fmt.Errorf("failed to retrieve user config directory: %w", err)
	}
	return configLocation{dir: filepath.Join(userConfigDir, configPath)}, nil
}

func (l configLocation) file() string {
	return filepath.Join(l.dir, configName+"."+configType)
}

func (l configLocation) ensureDir() error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", l.dir, err)
	}
	return nil
}

// ConfigDir returns the base directory pufctl/puf store their configuration
// under. If PUFLIB_CONFIG_DIR is set, its value is used as the base before
// appending "puflib"; otherwise os.UserConfigDir() supplies the platform
// default (~/.config on Linux, ~/Library/Application Support on macOS,
// %AppData% on Windows).
func ConfigDir() (string, error) {
	loc, err := locate()
	if err != nil {
		return "", err
	}
	return loc.dir, nil
}

// ConfigFilePath returns the absolute path to the CLI config file, without
// creating any directories.
func ConfigFilePath() (string, error) {
	loc, err := locate()
	if err != nil {
		return "", err
	}
	return loc.file(), nil
}

func createConfigDir() (string, error) {
	loc, err := locate()
	if err != nil {
		return "", err
	}
	if err := loc.ensureDir(); err != nil {
		return "", err
	}
	return loc.dir, nil
}
