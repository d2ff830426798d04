package pufconfig

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv(ConfigDirEnv, t.TempDir())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestCreateConfigWritesFileAndRefusesExisting(t *testing.T) {
	t.Setenv(ConfigDirEnv, t.TempDir())

	path, err := CreateConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = CreateConfig()
	assert.ErrorIs(t, err, ErrConfigAlreadyExists)
}

func TestLoadPrefersFlagOverDefault(t *testing.T) {
	t.Setenv(ConfigDirEnv, t.TempDir())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Set("verbose", "true"))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}
