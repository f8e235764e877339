package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, getLoggerLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, getLoggerLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, getLoggerLevel("verbose"))
}

func TestNewZapLogger(t *testing.T) {
	dir := t.TempDir()
	lg := NewZapLogger("slist.log", dir, "info", 1, 1, false)

	lg.Debug("hidden")
	lg.Info("list built")
	_ = lg.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "slist.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "list built")
	assert.NotContains(t, string(data), "hidden")
}

func TestNopFallback(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	assert.NotNil(t, GetSugar())
	assert.NotNil(t, GetLogger())
}
