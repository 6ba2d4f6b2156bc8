package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_text(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: slog.LevelInfo})
	l.Debug("hidden")
	l.Info("server.started", "addr", ":3000")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=server.started")
	assert.Contains(t, out, "addr=:3000")
	assert.NotContains(t, out, "source=")
}

func TestNew_jsonDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Config{Level: slog.LevelDebug, JSON: true})
	l.Debug("page.render", "page", "index")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "page.render", rec["msg"])
	assert.Equal(t, "index", rec["page"])
	assert.Contains(t, rec, "source")
	ts, _ := rec["time"].(string)
	assert.True(t, strings.HasSuffix(ts, "Z"), "expected UTC timestamp, got %q", ts)
}
