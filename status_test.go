package puflib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
)

func withNVStoreBase(t *testing.T) {
	t.Helper()
	restore := nvstore.SetBaseDirForTesting(t.TempDir())
	t.Cleanup(restore)
}

func TestModuleStatusUnprovisionedByDefault(t *testing.T) {
	withNVStoreBase(t)
	m := newStubModule(uniqueName(t, "status"))

	assert.Equal(t, puflib.ModuleStatusFlags(0), puflib.ModuleStatus(m))
}

func TestModuleStatusInProgressAfterTempArtifact(t *testing.T) {
	withNVStoreBase(t)
	m := newStubModule(uniqueName(t, "status"))

	_, err := puflib.CreateNVStore(m, nvstore.TempFile)
	require.NoError(t, err)

	status := puflib.ModuleStatus(m)
	assert.NotZero(t, status&puflib.InProgress)
	assert.Zero(t, status&puflib.Provisioned)
}

func TestModuleStatusProvisionedAfterFinalArtifact(t *testing.T) {
	withNVStoreBase(t)
	m := newStubModule(uniqueName(t, "status"))

	_, err := puflib.CreateNVStore(m, nvstore.FinalFile)
	require.NoError(t, err)

	status := puflib.ModuleStatus(m)
	assert.NotZero(t, status&puflib.Provisioned)
	assert.Zero(t, status&puflib.Disabled)
}

func TestModuleStatusDisabledImpliesProvisioned(t *testing.T) {
	withNVStoreBase(t)
	m := newStubModule(uniqueName(t, "status"))

	_, err := puflib.CreateNVStore(m, nvstore.DisabledFile)
	require.NoError(t, err)

	status := puflib.ModuleStatus(m)
	assert.NotZero(t, status&puflib.Provisioned)
	assert.NotZero(t, status&puflib.Disabled)
}

func TestModuleStatusNilModuleIsError(t *testing.T) {
	assert.Equal(t, puflib.ErrorFlag, puflib.ModuleStatus(nil))
}
