package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hayakil/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	log, closeFn, err := New(config.Default())
	require.NoError(t, err)
	defer closeFn()
	assert.False(t, log.Core().Enabled(0), "no-op logger should not be enabled")
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hayakil.log")
	cfg := config.Default()
	cfg.Env = "production"
	cfg.Log.File = path

	log, closeFn, err := New(cfg)
	require.NoError(t, err)
	log.Info("quiz started")
	log.Debug("hidden at info level")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "quiz started", entry["msg"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "x.log")
	cfg.Log.Level = "loud"

	_, _, err := New(cfg)
	assert.Error(t, err)
}
