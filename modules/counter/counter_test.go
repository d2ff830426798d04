package counter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
	"github.com/ainfosec/PUFlib/modules/counter"
)

func withNVStoreBase(t *testing.T) {
	t.Helper()
	restore := nvstore.SetBaseDirForTesting(t.TempDir())
	t.Cleanup(restore)
}

func TestProvisionTakesThreeCallsToComplete(t *testing.T) {
	withNVStoreBase(t)
	puflib.SetQueryHandler(func(module puflib.Module, key, prompt string) (string, bool, error) {
		return "answer", true, nil
	})
	t.Cleanup(func() { puflib.SetQueryHandler(nil) })

	m := counter.New("counter-test-1")

	status, err := m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionIncomplete, status)
	assert.NotZero(t, puflib.ModuleStatus(m)&puflib.InProgress)

	status, err = m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionIncomplete, status)
	assert.NotZero(t, puflib.ModuleStatus(m)&puflib.InProgress)

	status, err = m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionComplete, status)

	final := puflib.ModuleStatus(m)
	assert.NotZero(t, final&puflib.Provisioned)
	assert.Zero(t, final&puflib.InProgress)
}

func TestProvisionSurvivesCanceledQuery(t *testing.T) {
	withNVStoreBase(t)
	puflib.SetQueryHandler(func(module puflib.Module, key, prompt string) (string, bool, error) {
		return "", false, nil
	})
	t.Cleanup(func() { puflib.SetQueryHandler(nil) })

	m := counter.New("counter-test-2")
	status, err := m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionIncomplete, status)
}

func TestSealUnsealPassthrough(t *testing.T) {
	m := counter.New("counter-test-3")
	ciphertext, err := m.Seal(context.Background(), []byte("payload"))
	require.NoError(t, err)
	plaintext, err := m.Unseal(context.Background(), ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(plaintext))
}
