package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	st := NewStore(path)

	require.NoError(t, st.Save(Identifiers{Active: true, CharacterName: "Mira"}))

	ids, err := st.Load()
	require.NoError(t, err)
	assert.True(t, ids.Active)
	assert.Equal(t, "Mira", ids.CharacterName)
}

func TestStoreLoadMissingFile(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "nope.yaml"))

	ids, err := st.Load()
	require.NoError(t, err, "a missing session file is not an error")
	assert.False(t, ids.Active)
	assert.Empty(t, ids.CharacterName)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestStoreSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.yaml")
	st := NewStore(path)

	require.NoError(t, st.Save(Identifiers{Active: true, CharacterName: "Tor"}))

	ids, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "Tor", ids.CharacterName)
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	st := NewStore(path)
	require.NoError(t, st.Save(Identifiers{Active: true, CharacterName: "Mira"}))

	require.NoError(t, st.Clear())

	ids, err := st.Load()
	require.NoError(t, err)
	assert.False(t, ids.Active)

	assert.NoError(t, st.Clear(), "clearing an already-clear store is fine")
}
