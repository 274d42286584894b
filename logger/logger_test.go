package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(false, "debug"))
	require.NotNil(t, Logger)
	require.NoError(t, Initialize(true, "info"))
	require.NotNil(t, Named("builder"))
}

func TestLogJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.json"), []byte("{}"), 0o644))
	require.NoError(t, InitLogs(dir))

	_, err := os.Stat(filepath.Join(dir, "stale.json"))
	assert.True(t, os.IsNotExist(err), "InitLogs should remove stale dumps")

	payload := map[string]string{"reflection": "本を読むんですね。"}
	require.NoError(t, LogJSON(dir, "abc_reflection", payload))

	raw, err := os.ReadFile(filepath.Join(dir, "abc_reflection.json"))
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, payload, got)

	_, err = os.Stat(filepath.Join(dir, "abc_reflection.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}
