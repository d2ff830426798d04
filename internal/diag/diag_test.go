package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLBeforeInitReturnsNopLogger(t *testing.T) {
	// No Init call in this test; L() must still be safe to call.
	assert.NotNil(t, L())
	L().Debug("should not panic")
}

func TestInitInstallsLoggerAndSyncDoesNotPanic(t *testing.T) {
	sync, err := Init(false)
	require.NoError(t, err)
	defer sync()

	assert.NotNil(t, L())
}

func TestInitVerboseUsesDevelopmentEncoder(t *testing.T) {
	sync, err := Init(true)
	require.NoError(t, err)
	defer sync()

	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}
