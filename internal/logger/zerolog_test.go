package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestZerologAdapterInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Shell", "screen switched", map[string]interface{}{"screen": "boot"})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Shell", entry["component"])
	assert.Equal(t, "screen switched", entry["message"])
	assert.Equal(t, "boot", entry["screen"])
	assert.Contains(t, entry, "time")
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("SettingsStore", errors.New("disk full"), nil)

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "SettingsStore", entry["component"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("WindowManager", "hidden", nil)
	log.Info("WindowManager", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("WindowManager", "taskbar missing", nil)
	assert.NotZero(t, buf.Len())
}

func TestNoOpLoggerSatisfiesInterface(t *testing.T) {
	var log Logger = NoOpLogger{}
	log.Info("x", "y", nil)
	log.Error("x", errors.New("y"), nil)
}
