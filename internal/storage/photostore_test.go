package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x01}, 64)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x02}, 64)...)
	webpBytes = append([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), bytes.Repeat([]byte{0x03}, 64)...)
)

func newTestPhotoStore(t *testing.T) (*storage.PhotoStore, *storage.LocalStorage) {
	t.Helper()
	backend, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	cfg := &config.StorageConfig{
		PublicPath:         "/uploads",
		MaxFileSizeMB:      1,
		MaxFilesPerRequest: 3,
	}
	return storage.NewPhotoStore(backend, cfg, zap.NewNop()), backend
}

func countObjects(t *testing.T, backend storage.Storage, prefix string) int {
	t.Helper()
	objects, err := backend.List(context.Background(), prefix)
	require.NoError(t, err)
	return len(objects)
}

// ============================================================================
// Store
// ============================================================================

func TestPhotoStore_StoreGeneratesFilenameAndURL(t *testing.T) {
	ps, backend := newTestPhotoStore(t)

	file, err := ps.Store(context.Background(), storage.BucketKegiatan, storage.NewUpload("My Photo!.JPG", "image/jpeg", jpegBytes))
	require.NoError(t, err)

	assert.Equal(t, storage.BucketKegiatan, file.Bucket)
	assert.Regexp(t, regexp.MustCompile(`^My-Photo-\d{13}-\d{1,9}\.jpg$`), file.Filename)
	assert.Equal(t, "/uploads/kegiatan/"+file.Filename, file.URL)
	assert.Equal(t, int64(len(jpegBytes)), file.Size)

	rc, err := backend.Download(context.Background(), "kegiatan/"+file.Filename)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, got)
}

func TestPhotoStore_StoreAcceptsAllowedTypes(t *testing.T) {
	ps, _ := newTestPhotoStore(t)

	tests := []struct {
		name        string
		filename    string
		contentType string
		content     []byte
		wantExt     string
	}{
		{"png", "a.png", "image/png", pngBytes, ".png"},
		{"jpeg", "b.jpeg", "image/jpeg", jpegBytes, ".jpeg"},
		{"jpg alias", "c.jpg", "image/jpg", jpegBytes, ".jpg"},
		{"webp", "d.webp", "image/webp", webpBytes, ".webp"},
		{"extension from content", "noext", "image/png", pngBytes, ".png"},
		{"content type params", "e.png", "image/png; charset=binary", pngBytes, ".png"},
		{"declared png with webp content", "f.png", "image/png", webpBytes, ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ps.Store(context.Background(), storage.BucketLaporan, storage.NewUpload(tt.filename, tt.contentType, tt.content))
			require.NoError(t, err)
			assert.Regexp(t, regexp.QuoteMeta(tt.wantExt)+"$", file.Filename)
		})
	}
}

func TestPhotoStore_StoreRejectsInvalidUploads(t *testing.T) {
	ps, backend := newTestPhotoStore(t)

	tests := []struct {
		name    string
		upload  storage.Upload
		wantErr error
	}{
		{"declared type not allowed", storage.NewUpload("doc.pdf", "application/pdf", pngBytes), storage.ErrUnsupportedMediaType},
		{"content is not an image", storage.NewUpload("fake.png", "image/png", []byte("plain text body")), storage.ErrUnsupportedMediaType},
		{"gif content", storage.NewUpload("anim.png", "image/png", []byte("GIF89a........")), storage.ErrUnsupportedMediaType},
		{"bmp content", storage.NewUpload("scan.jpg", "image/jpeg", append([]byte("BM"), bytes.Repeat([]byte{0x00}, 64)...)), storage.ErrUnsupportedMediaType},
		{"empty", storage.NewUpload("empty.png", "image/png", nil), storage.ErrEmptyFile},
		{"declared size too large", storage.Upload{Name: "big.png", ContentType: "image/png", Size: 2 << 20}, storage.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ps.Store(context.Background(), storage.BucketKegiatan, tt.upload)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, storage.IsUploadError(err))
		})
	}

	assert.Equal(t, 0, countObjects(t, backend, ""))
}

func TestPhotoStore_StoreRejectsOversizedStream(t *testing.T) {
	ps, backend := newTestPhotoStore(t)

	content := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0x00}, 1<<20)...)
	up := storage.NewUpload("huge.png", "image/png", content)
	up.Size = 0 // unknown size, caught while streaming

	_, err := ps.Store(context.Background(), storage.BucketKegiatan, up)
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)
	assert.Equal(t, 0, countObjects(t, backend, ""), "partial file must be removed")
}

func TestPhotoStore_StoreRejectsUnknownBucket(t *testing.T) {
	ps, _ := newTestPhotoStore(t)

	_, err := ps.Store(context.Background(), storage.Bucket("activity"), storage.NewUpload("a.png", "image/png", pngBytes))
	assert.ErrorIs(t, err, storage.ErrInvalidBucket)
	assert.False(t, storage.IsUploadError(err))
}

// ============================================================================
// StoreAll
// ============================================================================

func TestPhotoStore_StoreAll(t *testing.T) {
	ps, backend := newTestPhotoStore(t)

	files, err := ps.StoreAll(context.Background(), storage.BucketKegiatan, []storage.Upload{
		storage.NewUpload("a.png", "image/png", pngBytes),
		storage.NewUpload("b.jpg", "image/jpeg", jpegBytes),
	}, 0)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NotEqual(t, files[0].Filename, files[1].Filename)
	assert.Equal(t, 2, countObjects(t, backend, "kegiatan/"))
}

func TestPhotoStore_StoreAllTooManyFiles(t *testing.T) {
	ps, backend := newTestPhotoStore(t)

	ups := []storage.Upload{
		storage.NewUpload("a.png", "image/png", pngBytes),
		storage.NewUpload("b.png", "image/png", pngBytes),
	}

	_, err := ps.StoreAll(context.Background(), storage.BucketKaryawan, ups, 1)
	assert.ErrorIs(t, err, storage.ErrTooManyFiles)
	assert.Equal(t, 0, countObjects(t, backend, ""))
}

func TestPhotoStore_StoreAllRollsBackOnFailure(t *testing.T) {
	ps, backend := newTestPhotoStore(t)

	_, err := ps.StoreAll(context.Background(), storage.BucketLaporan, []storage.Upload{
		storage.NewUpload("a.png", "image/png", pngBytes),
		storage.NewUpload("b.png", "image/png", pngBytes),
		storage.NewUpload("c.txt", "text/plain", []byte("nope")),
	}, 0)
	assert.ErrorIs(t, err, storage.ErrUnsupportedMediaType)
	assert.Equal(t, 0, countObjects(t, backend, ""), "files stored before the failure are removed")
}

func TestPhotoStore_StoreOpenError(t *testing.T) {
	ps, _ := newTestPhotoStore(t)
	openErr := errors.New("disk gone")

	_, err := ps.Store(context.Background(), storage.BucketKegiatan, storage.Upload{
		Name:        "a.png",
		ContentType: "image/png",
		Open:        func() (io.ReadCloser, error) { return nil, openErr },
	})
	assert.ErrorIs(t, err, openErr)
	assert.False(t, storage.IsUploadError(err))
}

// ============================================================================
// Delete / Cleanup / List / URLs
// ============================================================================

func TestPhotoStore_DeleteIsIdempotent(t *testing.T) {
	ps, backend := newTestPhotoStore(t)
	ctx := context.Background()

	file, err := ps.Store(ctx, storage.BucketKaryawan, storage.NewUpload("p.png", "image/png", pngBytes))
	require.NoError(t, err)

	require.NoError(t, ps.Delete(ctx, storage.BucketKaryawan, file.Filename))
	require.NoError(t, ps.Delete(ctx, storage.BucketKaryawan, file.Filename))
	assert.Equal(t, 0, countObjects(t, backend, ""))
}

func TestPhotoStore_DeleteRejectsTraversal(t *testing.T) {
	ps, _ := newTestPhotoStore(t)

	err := ps.Delete(context.Background(), storage.BucketKegiatan, "../laporan/x.png")
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
}

func TestPhotoStore_DeleteAllCombinesErrors(t *testing.T) {
	ps, _ := newTestPhotoStore(t)

	err := ps.DeleteAll(context.Background(), storage.BucketKegiatan, "ok.png", "../bad", "", ".hidden")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
	assert.Contains(t, err.Error(), "../bad")
	assert.Contains(t, err.Error(), ".hidden")
}

func TestPhotoStore_CleanupAfterCancel(t *testing.T) {
	ps, backend := newTestPhotoStore(t)

	file, err := ps.Store(context.Background(), storage.BucketKegiatan, storage.NewUpload("a.png", "image/png", pngBytes))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ps.Cleanup(ctx, storage.BucketKegiatan, file.Filename)

	assert.Equal(t, 0, countObjects(t, backend, ""))
}

func TestPhotoStore_ListStripsBucketPrefix(t *testing.T) {
	ps, _ := newTestPhotoStore(t)
	ctx := context.Background()

	file, err := ps.Store(ctx, storage.BucketLaporan, storage.NewUpload("a.png", "image/png", pngBytes))
	require.NoError(t, err)

	objects, err := ps.List(ctx, storage.BucketLaporan)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, file.Filename, objects[0].Key)

	objects, err = ps.List(ctx, storage.BucketKegiatan)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestPhotoStore_OpenServesStoredFile(t *testing.T) {
	ps, _ := newTestPhotoStore(t)
	ctx := context.Background()

	file, err := ps.Store(ctx, storage.BucketKaryawan, storage.NewUpload("a.webp", "image/webp", webpBytes))
	require.NoError(t, err)

	rc, err := ps.Open(ctx, storage.BucketKaryawan, file.Filename)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, webpBytes, got)

	_, err = ps.Open(ctx, storage.BucketKaryawan, "missing.png")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestPhotoStore_PublicURLAndFilenameFromURL(t *testing.T) {
	backend, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ps := storage.NewPhotoStore(backend, &config.StorageConfig{PublicPath: "uploads/", MaxFileSizeMB: 3, MaxFilesPerRequest: 10}, zap.NewNop())

	url := ps.PublicURL(storage.BucketKegiatan, "a-1-2.png")
	assert.Equal(t, "/uploads/kegiatan/a-1-2.png", url)
	assert.Equal(t, "a-1-2.png", storage.FilenameFromURL(url))
	assert.Equal(t, "", storage.FilenameFromURL(""))
	assert.Equal(t, 10, ps.MaxFiles())
}
