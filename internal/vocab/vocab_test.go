package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeWordFile(t, "# comment\ncat\nCAR\n  cart  \n\ncat\n123\nsemi-colon\n")
	v, err := Load(path)
	require.NoError(t, err)

	// membership round-trip: every loaded word is found, case-insensitively
	assert.True(t, v.Has("cat"))
	assert.True(t, v.Has("CAR"))
	assert.True(t, v.Has("cart"))
	assert.False(t, v.Has("dog"))
	assert.False(t, v.Has(""))

	// duplicates and non-alphabetic entries are dropped
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"cat", "car", "cart"}, v.AsList())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadEmptySource(t *testing.T) {
	path := writeWordFile(t, "# only a comment\n\n123\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAsListStableAndCopied(t *testing.T) {
	v, err := New([]string{"cat", "car", "cart"})
	require.NoError(t, err)

	first := v.AsList()
	first[0] = "mutated"
	assert.Equal(t, []string{"cat", "car", "cart"}, v.AsList(), "callers must not be able to disturb the shared list")
}

func TestDefault(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)
	assert.Greater(t, v.Len(), 0)
	for _, w := range v.AsList() {
		assert.True(t, v.Has(w), "every listed word must be a member: %s", w)
	}
}
