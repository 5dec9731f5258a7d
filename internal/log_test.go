package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"ERROR":   LogLevelError,
		"warn":    LogLevelWarn,
		" debug ": LogLevelDebug,
		"TRACE":   LogLevelTrace,
		"":        LogLevelInfo,
		"verbose": LogLevelInfo,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, ParseLogLevel(input), "input %q", input)
	}
}

func TestLoggerLevelGating(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LogLevelWarn, LogFormatConsole, &buf)

	logger.Info("hidden %d", 1)
	logger.Debug("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 3")
	assert.Contains(t, out, "shown 4")
	assert.Contains(t, out, "WARN")
}

func TestLoggerTraceRequiresTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerWithWriter(LogLevelDebug, LogFormatConsole, &buf).Trace("chunk %d", 7)
	assert.Empty(t, buf.String())

	NewLoggerWithWriter(LogLevelTrace, LogFormatConsole, &buf).Trace("chunk %d", 7)
	assert.Contains(t, buf.String(), "[TRACE] chunk 7")
}

func TestLoggerJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(LogLevelInfo, LogFormatJSON, &buf).With("run_id", "abc")

	logger.Info("processed %s", "a.csv")

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "processed a.csv", entry["msg"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNopLoggerIsSilent(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() {
		logger.Error("nothing")
		logger.Trace("nothing")
	})
	assert.NoError(t, logger.Sync())
}
