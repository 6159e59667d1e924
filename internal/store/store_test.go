package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	var out int64
	found, err := s.Read("never-written", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, out)
}

func TestWriteReadRoundtrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	type doc struct {
		Address string `json:"address"`
		Count   int    `json:"count"`
	}
	require.NoError(t, s.Write("wallet", doc{Address: "abc", Count: 3}))

	var out doc
	found, err := s.Read("wallet", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Address: "abc", Count: 3}, out)
}

func TestWriteOverwrites(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write("counter", 100))
	require.NoError(t, s.Write("counter", 30))

	var out int64
	found, err := s.Read("counter", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.EqualValues(t, 30, out)
}

func TestFilesAreOwnerOnly(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write("wallet", "secret"))

	info, err := os.Stat(filepath.Join(dir, "wallet.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
