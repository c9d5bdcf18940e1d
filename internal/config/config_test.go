package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileAndVaultMapping(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".notelink.yml")
	body := `
include: "notes/**, daily/**"
exclude: "templates/**"
max_bytes: 4096
use_aliases: false
whole_word: false
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	cfg, err := LoadFile(p)
	require.NoError(t, err)

	v := cfg.Vault(dir)
	assert.Equal(t, dir, v.Root)
	assert.Equal(t, []string{"notes/**", "daily/**"}, v.IncludeGlobs)
	assert.Equal(t, []string{"templates/**"}, v.ExcludeGlobs)
	assert.Equal(t, int64(4096), v.MaxBytes)
	assert.True(t, v.UseFilenames)
	assert.False(t, v.UseAliases)
	assert.False(t, cfg.WholeWordDefault())
}

func TestDefaultsWhenUnset(t *testing.T) {
	var cfg FileConfig
	v := cfg.Vault("/vault")
	assert.Equal(t, int64(DefaultMaxBytes), v.MaxBytes)
	assert.True(t, v.UseFilenames)
	assert.True(t, v.UseAliases)
	assert.Nil(t, v.IncludeGlobs)
	assert.True(t, cfg.WholeWordDefault())
}

func TestLoadLocalLookupOrder(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadLocal(dir)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notelink.yaml"), []byte("whole_word: false\n"), 0o644))
	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	assert.False(t, cfg.WholeWordDefault())

	// the dotted name wins over the plain one
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".notelink.yml"), []byte("whole_word: true\n"), 0o644))
	cfg, err = LoadLocal(dir)
	require.NoError(t, err)
	assert.True(t, cfg.WholeWordDefault())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	p := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(p, []byte("include: [unclosed\n"), 0o644))
	_, err = LoadFile(p)
	assert.Error(t, err)
}
