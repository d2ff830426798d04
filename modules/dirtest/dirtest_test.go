package dirtest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
	"github.com/ainfosec/PUFlib/modules/dirtest"
)

func withNVStoreBase(t *testing.T) {
	t.Helper()
	restore := nvstore.SetBaseDirForTesting(t.TempDir())
	t.Cleanup(restore)
}

func TestProvisionCompletesAndLeavesFinalDir(t *testing.T) {
	withNVStoreBase(t)
	m := dirtest.New("dirtest-test-1")

	status, err := m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionIncomplete, status)

	status, err = m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionIncomplete, status)

	status, err = m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionComplete, status)

	// Unlike the original C test module (which only ever deletes its
	// TEMP_DIR), this module must leave a FINAL_DIR behind so that
	// ModuleStatus reports Provisioned - see DESIGN.md's open-question
	// entry for dirtest.
	final := puflib.ModuleStatus(m)
	assert.NotZero(t, final&puflib.Provisioned)
	assert.Zero(t, final&puflib.InProgress)
}

func TestSealRequiresProvisioning(t *testing.T) {
	withNVStoreBase(t)
	m := dirtest.New("dirtest-test-2")

	_, err := m.Seal(context.Background(), []byte("x"))
	require.Error(t, err)
	kind, ok := puflib.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, puflib.KindNotFound, kind)
}

func TestSealUnsealAfterProvisioning(t *testing.T) {
	withNVStoreBase(t)
	m := dirtest.New("dirtest-test-3")

	for i := 0; i < 3; i++ {
		status, err := m.Provision(context.Background())
		require.NoError(t, err)
		if status == puflib.ProvisionComplete {
			break
		}
	}

	ciphertext, err := m.Seal(context.Background(), []byte("secret"))
	require.NoError(t, err)

	plaintext, err := m.Unseal(context.Background(), ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(plaintext))
}
