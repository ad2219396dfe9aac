package storage

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	store, err := NewLocal(t.TempDir(), "/uploads", zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestSaveImageOverwritesSamePath(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.SaveImage(ctx, "Logo Principal.PNG", bytes.NewReader(encodePNG(t, 100, 100)))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo-principal.png", first)

	second, err := store.SaveImage(ctx, "Logo Principal.PNG", bytes.NewReader(encodePNG(t, 200, 200)))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveImageUnusableNameGetsGeneratedOne(t *testing.T) {
	store := newTestStore(t)

	url, err := store.SaveImage(context.Background(), "....png", bytes.NewReader(encodePNG(t, 10, 10)))
	require.NoError(t, err)
	assert.NotEqual(t, "/uploads/.png", url)
	assert.Contains(t, url, "/uploads/")
}

func TestSaveImageRejectsUnknownExtension(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SaveImage(context.Background(), "doc.pdf", bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDeleteRemovesStoredImage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	url, err := store.SaveImage(ctx, "plato.jpg", bytes.NewReader(encodePNG(t, 10, 10)))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, url))
	assert.ErrorIs(t, store.Delete(ctx, url), ErrNotFound)
}
