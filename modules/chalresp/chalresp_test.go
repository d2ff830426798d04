package chalresp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainfosec/PUFlib"
	"github.com/ainfosec/PUFlib/internal/nvstore"
	"github.com/ainfosec/PUFlib/modules/chalresp"
)

func TestChalRespIsDeterministic(t *testing.T) {
	m := chalresp.New("chalresp-test-1")

	r1, err := m.ChalResp(context.Background(), []byte("challenge-a"))
	require.NoError(t, err)
	r2, err := m.ChalResp(context.Background(), []byte("challenge-a"))
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Len(t, r1, 16)
}

func TestChalRespDiffersForDifferentChallenges(t *testing.T) {
	m := chalresp.New("chalresp-test-2")

	r1, err := m.ChalResp(context.Background(), []byte("challenge-a"))
	require.NoError(t, err)
	r2, err := m.ChalResp(context.Background(), []byte("challenge-b"))
	require.NoError(t, err)

	assert.NotEqual(t, r1, r2)
}

func TestSealUnsealUnsupported(t *testing.T) {
	m := chalresp.New("chalresp-test-3")

	_, err := m.Seal(context.Background(), []byte("x"))
	assert.Error(t, err)

	_, err = m.Unseal(context.Background(), []byte("x"))
	assert.Error(t, err)
}

func TestProvisionIsImmediatelyComplete(t *testing.T) {
	t.Cleanup(nvstore.SetBaseDirForTesting(t.TempDir()))
	m := chalresp.New("chalresp-test-4")
	status, err := m.Provision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puflib.ProvisionComplete, status)
}
