package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".dientes", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("llm.provider", "openai")
	require.NoError(t, err)

	val, ok := store.Get("llm.provider")
	assert.True(t, ok)
	assert.Equal(t, "openai", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.path", "products.csv"))
	assert.Equal(t, "products.csv", store.GetString("catalog.path"))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("history.limit", 5))
	assert.Equal(t, "", store.GetString("history.limit"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("history.limit", 5))
	assert.Equal(t, 5, store.GetInt("history.limit"))

	// Non-existent key
	assert.Equal(t, 0, store.GetInt("nonexistent"))

	// Wrong type
	require.NoError(t, store.Set("catalog.path", "not an int"))
	assert.Equal(t, 0, store.GetInt("catalog.path"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("generation.temperature", 0.7))
	assert.Equal(t, 0.7, store.GetFloat("generation.temperature"))

	// Integral TOML values come back as int64 after reload.
	require.NoError(t, store.Set("generation.temperature", 1))
	require.NoError(t, store.Load())
	assert.Equal(t, 1.0, store.GetFloat("generation.temperature"))

	// Non-existent key
	assert.Equal(t, 0.0, store.GetFloat("nonexistent"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("flag", true))
	assert.True(t, store.GetBool("flag"))

	assert.False(t, store.GetBool("nonexistent"))

	require.NoError(t, store.Set("stringy", "true"))
	assert.False(t, store.GetBool("stringy"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.provider", "anthropic"))
	require.NoError(t, store.Set("generation.temperature", 0.2))

	// A fresh store over the same directory sees the persisted values.
	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", reopened.GetString("llm.provider"))
	assert.Equal(t, 0.2, reopened.GetFloat("generation.temperature"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("llm.api_key", "sk-secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_LoadMissingFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// Load on a fresh directory starts empty rather than failing.
	require.NoError(t, store.Load())
	_, ok := store.Get("anything")
	assert.False(t, ok)
}
