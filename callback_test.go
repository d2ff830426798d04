package puflib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainfosec/PUFlib"
)

func TestQueryWithNoHandlerInstalledIsUserCanceled(t *testing.T) {
	puflib.SetQueryHandler(nil)
	t.Cleanup(func() { puflib.SetQueryHandler(nil) })

	_, err := puflib.Query(newStubModule(uniqueName(t, "query")), "k", "prompt")
	require.Error(t, err)
	assert.True(t, puflib.IsUserCanceled(err))
}

func TestQueryReturnsHandlerValue(t *testing.T) {
	puflib.SetQueryHandler(func(module puflib.Module, key, prompt string) (string, bool, error) {
		return "42", true, nil
	})
	t.Cleanup(func() { puflib.SetQueryHandler(nil) })

	value, err := puflib.Query(newStubModule(uniqueName(t, "query")), "k", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "42", value)
}

func TestQueryHandlerCancellationIsDistinctFromSystemError(t *testing.T) {
	puflib.SetQueryHandler(func(module puflib.Module, key, prompt string) (string, bool, error) {
		return "", false, nil
	})
	t.Cleanup(func() { puflib.SetQueryHandler(nil) })

	_, err := puflib.Query(newStubModule(uniqueName(t, "query")), "k", "prompt")
	require.Error(t, err)
	assert.True(t, puflib.IsUserCanceled(err))

	puflib.SetQueryHandler(func(module puflib.Module, key, prompt string) (string, bool, error) {
		return "", false, errStub
	})
	_, err = puflib.Query(newStubModule(uniqueName(t, "query")), "k", "prompt")
	require.Error(t, err)
	assert.False(t, puflib.IsUserCanceled(err))
}

func TestStatusHandlerReceivesFormattedMessage(t *testing.T) {
	var got string
	puflib.SetStatusHandler(func(module puflib.Module, level puflib.StatusLevel, formatted string) {
		got = formatted
	})
	t.Cleanup(func() { puflib.SetStatusHandler(nil) })

	m := newStubModule(uniqueName(t, "report"))
	puflib.Report(m, puflib.StatusInfo, "hello")
	assert.Equal(t, "info ("+m.Name()+"): hello", got)
}

func TestDebugReportsDroppedWithoutDebugBuildTag(t *testing.T) {
	var calls int
	puflib.SetStatusHandler(func(module puflib.Module, level puflib.StatusLevel, formatted string) {
		calls++
	})
	t.Cleanup(func() { puflib.SetStatusHandler(nil) })

	puflib.Report(newStubModule(uniqueName(t, "debug")), puflib.StatusDebug, "quiet")
	assert.Equal(t, 0, calls, "debug reports must be dropped in a non-debug build")
}
