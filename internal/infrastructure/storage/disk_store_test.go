package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStore_Put(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, "http://localhost:8080/media/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "images/logo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/media/images/logo.png", url)

	data, err := os.ReadFile(filepath.Join(root, "images", "logo.png"))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))
}

func TestDiskStore_PutCreatesNestedDirectories(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, "http://localhost:8080/media")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "attachments/2026/kit.pdf", "application/pdf", strings.NewReader("pdf"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "attachments", "2026", "kit.pdf"))
	require.NoError(t, err)
}

func TestDiskStore_PutCancelledContext(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, "http://localhost:8080/media")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Put(ctx, "images/logo.png", "image/png", strings.NewReader("png"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewDiskStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "objects")
	_, err := NewDiskStore(root, "http://localhost:8080/media")
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
