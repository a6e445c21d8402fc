package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesECSJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{App: "attendance", Version: "v1", Env: "production", Level: slog.LevelInfo})

	log.Info("hello", "employees", 3)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "attendance", line["app"])
	assert.Equal(t, "production", line["env"])
	assert.EqualValues(t, 3, line["employees"])
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: slog.LevelWarn})

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
