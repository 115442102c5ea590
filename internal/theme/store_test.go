package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaultsToFallbackWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "theme.json")

	s, err := NewStore(path, ModeDark)
	require.NoError(t, err)
	assert.Equal(t, ModeDark, s.Mode())

	// Nothing is written until the first flip.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")

	s, err := NewStore(path, ModeLight)
	require.NoError(t, err)
	require.NoError(t, s.SetMode(ModeDark))

	reloaded, err := NewStore(path, ModeLight)
	require.NoError(t, err)
	assert.Equal(t, ModeDark, reloaded.Mode())
}

func TestStoreRejectsInvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")

	s, err := NewStore(path, ModeLight)
	require.NoError(t, err)
	assert.Error(t, s.SetMode(Mode("sepia")))
	assert.Equal(t, ModeLight, s.Mode())
}

func TestStoreIgnoresCorruptModeValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","mode":"plaid"}`), 0o644))

	s, err := NewStore(path, ModeDark)
	require.NoError(t, err)
	assert.Equal(t, ModeDark, s.Mode())
}

func TestStoreFailsOnMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path, ModeLight)
	assert.Error(t, err)
}

func TestStoreWritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")

	s, err := NewStore(path, ModeLight)
	require.NoError(t, err)
	require.NoError(t, s.SetMode(ModeDark))

	// No temp file left behind.
	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}
