package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		description string
		level       string
		expect      slog.Level
	}{
		{description: "debug", level: "debug", expect: slog.LevelDebug},
		{description: "warn", level: "WARN", expect: slog.LevelWarn},
		{description: "error", level: " error ", expect: slog.LevelError},
		{description: "unknown", level: "verbose", expect: slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, Level(tc.level))
		})
	}
}

func TestNew(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := New(WARN, buffer)
	logger.Info("skipped")
	logger.Warn("message not found", "key", "missing.key")

	record := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &record))
	assert.Equal(t, "message not found", record["msg"])
	assert.Equal(t, "missing.key", record["key"])
	assert.Contains(t, record, "timestamp")
}
