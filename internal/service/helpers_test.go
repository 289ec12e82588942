package service_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/storage"
	"github.com/profilkantor/profile-api/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x02}, 64)...)
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x01}, 64)...)
)

type testEnv struct {
	db     *gorm.DB
	photos *storage.PhotoStore
	root   string
	logger *zap.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	backend, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	cfg := &config.StorageConfig{
		PublicPath:         "/uploads",
		MaxFileSizeMB:      1,
		MaxFilesPerRequest: 10,
	}
	return &testEnv{
		db:     testutil.SetupTestDB(t),
		photos: storage.NewPhotoStore(backend, cfg, zap.NewNop()),
		root:   root,
		logger: zap.NewNop(),
	}
}

// files lists the filenames currently stored in bucket
func (e *testEnv) files(t *testing.T, bucket storage.Bucket) []string {
	t.Helper()
	objects, err := e.photos.List(context.Background(), bucket)
	require.NoError(t, err)
	names := make([]string, len(objects))
	for i, o := range objects {
		names[i] = o.Key
	}
	return names
}

func (e *testEnv) fileExists(bucket storage.Bucket, name string) bool {
	_, err := os.Stat(filepath.Join(e.root, string(bucket), name))
	return err == nil
}

func jpegUpload(name string) storage.Upload {
	return storage.NewUpload(name, "image/jpeg", jpegBytes)
}

func pngUpload(name string) storage.Upload {
	return storage.NewUpload(name, "image/png", pngBytes)
}

func ptr[T any](v T) *T {
	return &v
}
