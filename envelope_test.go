package puflib_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainfosec/PUFlib"
)

func TestSealUnsealRoundTrip(t *testing.T) {
	m := newStubModule(uniqueName(t, "envelope"))
	puflib.Register(m)

	plaintext := []byte("a PUF's best-kept secret")
	blob, err := puflib.Seal(context.Background(), m, plaintext)
	require.NoError(t, err)
	assert.Contains(t, string(blob), m.Name())

	recovered, err := puflib.Unseal(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

func TestUnsealDispatchesByHeaderNotCallerInput(t *testing.T) {
	a := newStubModule(uniqueName(t, "envelope-a"))
	b := newStubModule(uniqueName(t, "envelope-b"))
	puflib.Register(a)
	puflib.Register(b)

	blob, err := puflib.Seal(context.Background(), a, []byte("from a"))
	require.NoError(t, err)

	// Unseal never takes a module argument - it must resolve "a" from the
	// blob's own header regardless of which modules exist alongside it.
	recovered, err := puflib.Unseal(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, "from a", string(recovered))
}

func TestUnsealUnknownModuleIsNotFound(t *testing.T) {
	blob := []byte(puflib.MagicHeader + "no-such-module-registered\n" + "ciphertext")
	_, err := puflib.Unseal(context.Background(), blob)
	require.Error(t, err)
	kind, ok := puflib.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, puflib.KindNotFound, kind)
}

func TestUnsealRejectsMissingMagic(t *testing.T) {
	_, err := puflib.Unseal(context.Background(), []byte("not a puflib blob at all"))
	require.Error(t, err)
	kind, ok := puflib.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, puflib.KindMalformedBlob, kind)
}

func TestUnsealRejectsTruncatedBlob(t *testing.T) {
	_, err := puflib.Unseal(context.Background(), []byte(puflib.MagicHeader))
	require.Error(t, err)
	kind, ok := puflib.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, puflib.KindMalformedBlob, kind)
}

func TestUnsealRejectsMissingNewline(t *testing.T) {
	blob := append([]byte(puflib.MagicHeader), []byte("modulename-no-newline")...)
	_, err := puflib.Unseal(context.Background(), blob)
	require.Error(t, err)
	kind, ok := puflib.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, puflib.KindMalformedBlob, kind)
}

func TestSealNeverReturnsPartialBlobOnError(t *testing.T) {
	m := newStubModule(uniqueName(t, "envelope-fail"))
	m.sealErr = errStub

	blob, err := puflib.Seal(context.Background(), m, []byte("x"))
	require.Error(t, err)
	assert.Nil(t, blob)
}

func TestChalRespPassesThrough(t *testing.T) {
	m := newStubModule(uniqueName(t, "envelope-chal"))
	out, err := puflib.ChalResp(context.Background(), m, []byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, "ping", string(out))
}
