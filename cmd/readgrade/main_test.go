package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/readgrade/internal/config"
)

func isolate(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const sample = "The quick brown fox jumps over the lazy dog. It was a sunny day in the park."

func TestScoreListsLocaleMetrics(t *testing.T) {
	isolate(t)
	out, err := run(t, sample, "score")
	require.NoError(t, err)
	assert.Contains(t, out, "flesch_reading_ease")
	assert.Contains(t, out, "dale_chall_readability_score")
	assert.NotContains(t, out, "wiener_sachtextformel")

	out, err = run(t, sample, "score", "--lang", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "wiener_sachtextformel")
}

func TestScoreVerboseRequiresMetric(t *testing.T) {
	isolate(t)
	_, err := run(t, sample, "score", "--verbose")
	assert.ErrorContains(t, err, "--metric")

	_, err = run(t, sample, "score", "--metric", "nope")
	assert.Error(t, err)
}

func TestDictAddPersistsAcrossRuns(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "dict", "add", "Piano", "3")
	require.NoError(t, err)

	out, err := run(t, "", "dict", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "piano")

	out, err = run(t, "", "dict", "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"piano": 3`)

	_, err = run(t, "", "dict", "add", "piano", "zero")
	assert.Error(t, err)

	_, err = run(t, "", "dict", "revert")
	require.NoError(t, err)
	out, err = run(t, "", "dict", "show")
	require.NoError(t, err)
	assert.NotContains(t, out, "piano")
}

func TestConfigFileSetsLocale(t *testing.T) {
	isolate(t)
	path := config.DefaultConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[engine]\nlang = \"de\"\n"), 0o644))

	out, err := run(t, sample, "score")
	require.NoError(t, err)
	assert.Contains(t, out, "wiener_sachtextformel")

	out, err = run(t, sample, "score", "--lang", "en")
	require.NoError(t, err)
	assert.NotContains(t, out, "wiener_sachtextformel")
}

func TestDefaultConfigTemplateLoads(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Engine.Lang)
}

func TestResolveWordlistLocales(t *testing.T) {
	known := []string{"en", "de", "ar"}

	ids, all, err := resolveWordlistLocales("", "de", known)
	require.NoError(t, err)
	assert.Equal(t, []string{"de"}, ids)
	assert.False(t, all)

	ids, all, err = resolveWordlistLocales("ALL", "en", known)
	require.NoError(t, err)
	assert.Equal(t, known, ids)
	assert.True(t, all)

	ids, _, err = resolveWordlistLocales("en, ar", "en", known)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ar"}, ids)

	_, _, err = resolveWordlistLocales("xx", "en", known)
	assert.ErrorContains(t, err, "unknown locale")
}

func TestSampleUsesSeed(t *testing.T) {
	isolate(t)
	a, err := run(t, "", "sample", "--seed", "7", "--sentences", "2")
	require.NoError(t, err)
	b, err := run(t, "", "sample", "--seed", "7", "--sentences", "2")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, strings.TrimSpace(a))

	_, err = run(t, "", "sample", "--sentences", "0")
	assert.Error(t, err)
}

func TestWriteWordListReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists", "en.txt")
	require.NoError(t, writeWordList(path, []string{"the", "dog"}))
	require.NoError(t, writeWordList(path, []string{"cat"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cat\n", string(data))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
