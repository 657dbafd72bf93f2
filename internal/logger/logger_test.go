package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_NoPathIsNop(t *testing.T) {
	l, err := New("", true)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verse.log")

	l, err := New(path, false)
	require.NoError(t, err)
	l.Info("loaded", zap.Int("passages", 3))
	l.Debug("hidden")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"passages":3`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verse.log")

	l, err := New(path, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
