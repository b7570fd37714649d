package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"Warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"CRITICAL", slog.LevelError + 4},
		{"info+2", slog.LevelInfo + 2},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "INFO", Format: "json", Writer: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("parsed", "genesets", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "parsed", rec["msg"])
	assert.Equal(t, float64(2), rec["genesets"])

	ts, ok := rec["time"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	l.Debug("tokenized", "line", 3)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "line=3")
	assert.Contains(t, buf.String(), "source=")
}

func TestNewErrors(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
	_, err = New(Config{Format: "xml"})
	assert.Error(t, err)
}

func TestSetupGlobal(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	l, err := Setup(Config{Level: "info", Writer: &buf})
	require.NoError(t, err)
	assert.Same(t, l, L())

	L().Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	_, err = Setup(Config{Format: "xml"})
	require.Error(t, err)
	assert.Same(t, l, L())

	Reset()
	assert.NotSame(t, l, L())
}
