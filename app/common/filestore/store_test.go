package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wardrobe")
	s, err := NewLocalStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "3.jpg", []byte("jpeg bytes")))

	data, err := ReadAll(s, "3.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)

	path, err := s.Path("3.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "3.jpg"), path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	require.NoError(t, s.Remove(ctx, "3.jpg"))
	_, err = s.Open("3.jpg")
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.NoError(t, s.Remove(ctx, "3.jpg"))
}

func TestLocalStoreRejectsBadNames(t *testing.T) {
	s := MustNewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b.jpg", `a\b.jpg`} {
		assert.ErrorIs(t, s.Save(ctx, name, []byte("x")), ErrInvalidName, name)
		assert.ErrorIs(t, s.Remove(ctx, name), ErrInvalidName, name)
	}

	assert.ErrorIs(t, s.Save(ctx, "1.png", nil), ErrEmptyData)
}
