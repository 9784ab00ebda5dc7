package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	in := []payload{{Name: "T-Shirt", Count: 10}, {Name: "Jeans", Count: 5}}
	require.NoError(t, Save(path, in))

	var out []payload
	require.NoError(t, Load(path, &out))
	assert.Equal(t, in, out)

	// File harus pretty-printed, bukan satu baris.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "    \"name\"")
}

func TestLoadMissingFile(t *testing.T) {
	var out []payload
	err := Load(filepath.Join(t.TempDir(), "nope.json"), &out)
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out []payload
	err := Load(path, &out)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotExist)
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	assert.False(t, Exists(path))
	require.NoError(t, Save(path, payload{Name: "x"}))
	assert.True(t, Exists(path))
}
