package logx_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsen1/tsz-sub013/internal/logx"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLoggerEmitsJSONLineWithLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := logx.New(&buf, logx.LevelInfo)

	l.Info("bound file", logx.Fields{"path": "./a.ts", "symbols": 3})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "bound file", lines[0]["message"])
	fields, ok := lines[0]["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "./a.ts", fields["path"])
	assert.NotEmpty(t, lines[0]["time"])
}

func TestLoggerFiltersBelowMinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logx.New(&buf, logx.LevelWarn)

	l.Debug("too quiet", nil)
	l.Info("still too quiet", nil)
	l.Warn("loud enough", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "loud enough", lines[0]["message"])
}

func TestLoggerOmitsFieldsKeyWhenNil(t *testing.T) {
	var buf bytes.Buffer
	l := logx.New(&buf, logx.LevelDebug)

	l.Error("boom", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	_, present := lines[0]["fields"]
	assert.False(t, present)
}

func TestNilLoggerEmitIsANoOp(t *testing.T) {
	var l *logx.Logger
	assert.NotPanics(t, func() {
		l.Info("should not panic", nil)
	})
}
