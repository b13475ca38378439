package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1e-6, cfg.Parser.NullTolerance)
	assert.Equal(t, []string{"DEPT", "DEPTH", "MD"}, cfg.Parser.DepthMnemonics)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)
	assert.Equal(t, []string{"*.las", "*.LAS"}, cfg.Watch.Patterns)
	assert.Equal(t, 5, cfg.Output.SampleCount)
	assert.False(t, cfg.Output.JSON)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lascore.toml")
	content := `
[parser]
null_tolerance = 0.001
depth_mnemonics = ["TVD"]

[watch]
dir = "/data/incoming"
debounce_ms = 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.Parser.NullTolerance)
	assert.Equal(t, []string{"TVD"}, cfg.Parser.DepthMnemonics)
	assert.Equal(t, "/data/incoming", cfg.Watch.Dir)
	assert.Equal(t, 100, cfg.Watch.DebounceMS)
	// Unset keys keep defaults.
	assert.Equal(t, 5, cfg.Output.SampleCount)
}

func TestUseFileOverridesCache(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "lascore.toml")
	content := `
[output]
sample_count = 9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, UseFile(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Output.SampleCount)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParserOptions(t *testing.T) {
	cfg := ParserConfig{NullTolerance: 0.01, DepthMnemonics: []string{"TVD"}}
	opts := cfg.Options()
	assert.Equal(t, 0.01, opts.NullTolerance)
	assert.Equal(t, []string{"TVD"}, opts.DepthMnemonics)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "lascore.toml")

	require.NoError(t, WriteDefault(path))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Parser.NullTolerance)
	assert.Equal(t, []string{"*.las", "*.LAS"}, cfg.Watch.Patterns)

	// Refuses to clobber an existing file.
	assert.Error(t, WriteDefault(path))
}
