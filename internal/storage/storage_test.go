package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ============================================================================
// Storage Interface Tests
// ============================================================================

func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.Storage = (*storage.LocalStorage)(nil)
	var _ storage.Storage = (*storage.AzureBlobStorage)(nil)
}

func TestNewStorage_Modes(t *testing.T) {
	logger := zap.NewNop()

	s, err := storage.NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "azure"}, logger)
	assert.Error(t, err, "azure mode requires a connection string")

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "ftp"}, logger)
	assert.Error(t, err)
}

// ============================================================================
// LocalStorage Tests
// ============================================================================

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "uploads")

	ls, err := storage.NewLocalStorage(basePath)

	require.NoError(t, err)
	assert.NotNil(t, ls)

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_UploadDownloadDelete(t *testing.T) {
	tempDir := t.TempDir()
	ls, err := storage.NewLocalStorage(tempDir)
	require.NoError(t, err)
	ctx := context.Background()

	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	size, err := ls.Upload(ctx, "kegiatan/photo.jpg", "image/jpeg", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	_, err = os.Stat(filepath.Join(tempDir, "kegiatan", "photo.jpg"))
	require.NoError(t, err)

	rc, err := ls.Download(ctx, "kegiatan/photo.jpg")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, ls.Delete(ctx, "kegiatan/photo.jpg"))
	_, err = ls.Download(ctx, "kegiatan/photo.jpg")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestLocalStorage_UploadRefusesOverwrite(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = ls.Upload(ctx, "laporan/a.png", "image/png", bytes.NewReader([]byte("one")))
	require.NoError(t, err)

	_, err = ls.Upload(ctx, "laporan/a.png", "image/png", bytes.NewReader([]byte("two")))
	assert.Error(t, err)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, ls.Delete(context.Background(), "karyawan/does-not-exist.jpg"))
}

func TestLocalStorage_RejectsInvalidKeys(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	keys := []string{"", "../escape.jpg", "kegiatan/../../escape.jpg", "kegiatan\\x.jpg", "kegiatan/./x.jpg"}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			_, err := ls.Upload(ctx, key, "image/jpeg", bytes.NewReader([]byte("x")))
			assert.ErrorIs(t, err, storage.ErrInvalidKey)

			_, err = ls.Download(ctx, key)
			assert.ErrorIs(t, err, storage.ErrInvalidKey)

			assert.ErrorIs(t, ls.Delete(ctx, key), storage.ErrInvalidKey)
		})
	}
}

func TestLocalStorage_ListByPrefix(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"kegiatan/a.jpg", "kegiatan/b.jpg", "laporan/c.jpg"} {
		_, err := ls.Upload(ctx, key, "image/jpeg", bytes.NewReader([]byte("data")))
		require.NoError(t, err)
	}

	objects, err := ls.List(ctx, "kegiatan/")
	require.NoError(t, err)

	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		keys = append(keys, o.Key)
		assert.Equal(t, int64(4), o.Size)
		assert.False(t, o.ModTime.IsZero())
	}
	assert.ElementsMatch(t, []string{"kegiatan/a.jpg", "kegiatan/b.jpg"}, keys)

	all, err := ls.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := ls.List(ctx, "karyawan/")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
