package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hayakil/internal/catalog"
)

// isolate keeps config lookups away from the developer's files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func customCatalog(t *testing.T, dir string) string {
	t.Helper()
	doc := strings.Replace(string(catalog.DefaultDocument()), "المصفوفات", "مصفوفات مخصصة", 1)
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPrintTopics(t *testing.T) {
	var buf bytes.Buffer
	printTopics(&buf, catalog.Default())
	out := buf.String()

	for _, id := range catalog.AllTopicIDs() {
		assert.Contains(t, out, string(id))
	}
	assert.Contains(t, out, "8 topics, 2 with quizzes")
}

func TestTopicsCommand_CatalogFromEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("HAYAKIL_CATALOG_PATH", customCatalog(t, dir))

	out, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "مصفوفات مخصصة")
}

func TestTopicsCommand_CatalogFromConfigFile(t *testing.T) {
	dir := isolate(t)
	custom := customCatalog(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("catalog:\n  path: "+custom+"\n"), 0o644))

	out, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "مصفوفات مخصصة")
}

func TestTopicsCommand_Default(t *testing.T) {
	isolate(t)
	out, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "8 topics, 2 with quizzes")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hayakil (devel)\n", out)
}

func TestCatalogValidate(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, catalog.DefaultDocument(), 0o644))

	out, err := execute(t, "catalog", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "8 topics, 12 questions")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version":"v2.0.0","topics":[]}`), 0o644))
	_, err = execute(t, "catalog", "validate", bad)
	assert.Error(t, err)
}

func TestCatalogExport(t *testing.T) {
	out, err := execute(t, "catalog", "export")
	require.NoError(t, err)
	assert.Equal(t, string(catalog.DefaultDocument()), out)
}

func TestQuizUnknownTopic(t *testing.T) {
	_, err := execute(t, "quiz", "heap")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "heap"))
}

func TestLoadCatalog_DefaultWhenUnset(t *testing.T) {
	cat, err := loadCatalog("")
	require.NoError(t, err)
	assert.Same(t, catalog.Default(), cat)
}
