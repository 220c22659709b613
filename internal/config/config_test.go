package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, 800*time.Millisecond, cfg.UI.TraversalStep)
	assert.Equal(t, time.Second, cfg.UI.HighlightHold)
	assert.False(t, cfg.UI.SkipWelcome)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HAYAKIL_LOG_LEVEL", "debug")
	t.Setenv("HAYAKIL_UI_START_TOPIC", "stack")
	t.Setenv("HAYAKIL_UI_TRAVERSAL_STEP", "250ms")
	t.Setenv("HAYAKIL_UI_SKIP_WELCOME", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stack", cfg.UI.StartTopic)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.TraversalStep)
	assert.True(t, cfg.UI.SkipWelcome)
}

func TestLoad_ConfigFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	yaml := "env: production\nlog:\n  file: app.log\nui:\n  start_topic: trees\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "app.log", cfg.Log.File)
	assert.Equal(t, "trees", cfg.UI.StartTopic)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  start_topic: trees\n"), 0o644))
	t.Setenv("HAYAKIL_UI_START_TOPIC", "queue")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "queue", cfg.UI.StartTopic)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HAYAKIL_UI_START_TOPIC=circular\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("HAYAKIL_UI_START_TOPIC") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "circular", cfg.UI.StartTopic)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown topic", func(c *Config) { c.UI.StartTopic = "heap" }, "ui.start_topic"},
		{"zero step", func(c *Config) { c.UI.TraversalStep = 0 }, "ui.traversal_step"},
		{"negative hold", func(c *Config) { c.UI.HighlightHold = -time.Second }, "ui.highlight_hold"},
		{"bad env", func(c *Config) { c.Env = "staging" }, "env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
