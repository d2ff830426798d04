package pufconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirWithEnv(t *testing.T) {
	temp := t.TempDir()
	t.Setenv(ConfigDirEnv, temp)

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(temp, configPath), dir)

	cfgPath, err := ConfigFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(temp, configPath, configName+"."+configType), cfgPath)
}

func TestConfigDirDefaultsToUserConfigDir(t *testing.T) {
	os.Unsetenv(ConfigDirEnv)

	userCfgDir, err := os.UserConfigDir()
	require.NoError(t, err)

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userCfgDir, configPath), dir)
}

func TestCreateConfigDirCreatesDirectory(t *testing.T) {
	temp := t.TempDir()
	t.Setenv(ConfigDirEnv, temp)

	created, err := createConfigDir()
	require.NoError(t, err)

	info, err := os.Stat(created)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
