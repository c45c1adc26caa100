package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.5, cfg.Cutoff)
	assert.Equal(t, 1, cfg.Count)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `
template_file: boards/jigsaw.txt
symbols: "123456"
cutoff: 0.35
seed: 17
count: 3
output: out.html
letters: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "boards/jigsaw.txt", cfg.TemplateFile)
	assert.Equal(t, "123456", cfg.Symbols)
	assert.Equal(t, 0.35, cfg.Cutoff)
	assert.Equal(t, int64(17), cfg.Seed)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, "out.html", cfg.Output)
	assert.True(t, cfg.Letters)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Cutoff)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, int64(5), cfg.Seed)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cutoff: [not a number\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
