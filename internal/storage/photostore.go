package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/profilkantor/profile-api/internal/config"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Bucket is a named partition of the photo store, one per aggregate kind
type Bucket string

const (
	BucketKegiatan Bucket = "kegiatan"
	BucketLaporan  Bucket = "laporan"
	BucketKaryawan Bucket = "karyawan"
)

// Buckets lists every bucket known to the photo store
var Buckets = []Bucket{BucketKegiatan, BucketLaporan, BucketKaryawan}

// Valid reports whether b is one of Buckets
func (b Bucket) Valid() bool {
	for _, known := range Buckets {
		if b == known {
			return true
		}
	}
	return false
}

// Upload validation errors. Callers surface these as 400 responses.
var (
	ErrUnsupportedMediaType = errors.New("invalid file type, only JPEG, PNG and WebP images are allowed")
	ErrFileTooLarge         = errors.New("file is too large")
	ErrTooManyFiles         = errors.New("too many files")
	ErrEmptyFile            = errors.New("file is empty")
	ErrInvalidBucket        = errors.New("invalid bucket")
)

// IsUploadError reports whether err is a client-side upload validation failure
func IsUploadError(err error) bool {
	return errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrTooManyFiles) ||
		errors.Is(err, ErrEmptyFile)
}

// declared content types accepted from the client; image/jpg is a common alias
var allowedDeclaredTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// sniffed content types accepted after inspecting the first bytes
var allowedSniffedTypes = []string{"image/jpeg", "image/png", "image/webp"}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

const sniffLen = 512

// Upload is one incoming file. Open is called once while storing.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// NewUpload builds an Upload over an in-memory payload
func NewUpload(name, contentType string, data []byte) Upload {
	return Upload{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// StoredFile is the result of storing one Upload
type StoredFile struct {
	Bucket   Bucket
	Filename string
	URL      string
	Size     int64
}

// PhotoStore stores validated image uploads in buckets on top of a Storage backend
type PhotoStore struct {
	backend     Storage
	publicPath  string
	maxFileSize int64
	maxFiles    int
	logger      *zap.Logger
	now         func() time.Time
	randSuffix  func() int64
}

// NewPhotoStore creates a photo store using the limits from cfg
func NewPhotoStore(backend Storage, cfg *config.StorageConfig, logger *zap.Logger) *PhotoStore {
	publicPath := "/" + strings.Trim(cfg.PublicPath, "/")
	if publicPath == "/" {
		publicPath = "/uploads"
	}

	return &PhotoStore{
		backend:     backend,
		publicPath:  publicPath,
		maxFileSize: cfg.MaxFileSizeBytes(),
		maxFiles:    cfg.MaxFilesPerRequest,
		logger:      logger,
		now:         time.Now,
		randSuffix:  func() int64 { return rand.Int64N(1_000_000_000) },
	}
}

// MaxFiles returns the configured per-request file limit
func (s *PhotoStore) MaxFiles() int {
	return s.maxFiles
}

// PublicPath is the URL prefix stored files are served under
func (s *PhotoStore) PublicPath() string {
	return s.publicPath
}

// PublicURL maps a stored filename to the URL it is served under. It does no I/O.
func (s *PhotoStore) PublicURL(bucket Bucket, filename string) string {
	return s.publicPath + "/" + string(bucket) + "/" + filename
}

// FilenameFromURL returns the filename part of a public URL
func FilenameFromURL(url string) string {
	if url == "" {
		return ""
	}
	return path.Base(url)
}

func objectKey(bucket Bucket, filename string) (string, error) {
	if !bucket.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBucket, bucket)
	}
	if filename == "" || filename != path.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, filename)
	}
	return string(bucket) + "/" + filename, nil
}

// Store validates up and writes it to bucket under a generated filename.
// The filename is "<sanitized base>-<unix millis>-<random>" plus the extension.
func (s *PhotoStore) Store(ctx context.Context, bucket Bucket, up Upload) (StoredFile, error) {
	if !bucket.Valid() {
		return StoredFile{}, fmt.Errorf("%w: %q", ErrInvalidBucket, bucket)
	}

	declared := normalizeContentType(up.ContentType)
	if !allowedDeclaredTypes[declared] {
		return StoredFile{}, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, up.Name)
	}
	if up.Size > s.maxFileSize {
		return StoredFile{}, s.tooLarge(up.Name)
	}

	rc, err := up.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to open upload %s: %w", up.Name, err)
	}
	defer rc.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(rc, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return StoredFile{}, fmt.Errorf("failed to read upload %s: %w", up.Name, err)
	}
	if n == 0 {
		return StoredFile{}, fmt.Errorf("%w: %s", ErrEmptyFile, up.Name)
	}
	head = head[:n]

	sniffed := mimetype.Detect(head)
	if !mimetype.EqualsAny(sniffed.String(), allowedSniffedTypes...) {
		return StoredFile{}, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, up.Name)
	}

	filename := s.generateFilename(up.Name, sniffed.Extension())
	key, err := objectKey(bucket, filename)
	if err != nil {
		return StoredFile{}, err
	}

	body := &limitReader{r: io.MultiReader(bytes.NewReader(head), rc), remaining: s.maxFileSize}
	size, err := s.backend.Upload(ctx, key, sniffed.String(), body)
	if body.exceeded {
		if delErr := s.backend.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.logger.Warn("Failed to remove oversized upload", zap.String("key", key), zap.Error(delErr))
		}
		return StoredFile{}, s.tooLarge(up.Name)
	}
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to store %s: %w", up.Name, err)
	}

	return StoredFile{
		Bucket:   bucket,
		Filename: filename,
		URL:      s.PublicURL(bucket, filename),
		Size:     size,
	}, nil
}

// StoreAll stores every upload or none of them: on failure the files already
// written are deleted. maxFiles <= 0 means the configured default.
func (s *PhotoStore) StoreAll(ctx context.Context, bucket Bucket, ups []Upload, maxFiles int) ([]StoredFile, error) {
	if maxFiles <= 0 {
		maxFiles = s.maxFiles
	}
	if len(ups) > maxFiles {
		return nil, fmt.Errorf("%w: at most %d allowed", ErrTooManyFiles, maxFiles)
	}

	stored := make([]StoredFile, 0, len(ups))
	for _, up := range ups {
		file, err := s.Store(ctx, bucket, up)
		if err != nil {
			s.Cleanup(ctx, bucket, Filenames(stored)...)
			return nil, err
		}
		stored = append(stored, file)
	}
	return stored, nil
}

// Open returns the content of a stored file
func (s *PhotoStore) Open(ctx context.Context, bucket Bucket, filename string) (io.ReadCloser, error) {
	key, err := objectKey(bucket, filename)
	if err != nil {
		return nil, err
	}
	return s.backend.Download(ctx, key)
}

// Delete removes one stored file. Missing files are not an error.
func (s *PhotoStore) Delete(ctx context.Context, bucket Bucket, filename string) error {
	key, err := objectKey(bucket, filename)
	if err != nil {
		return err
	}
	return s.backend.Delete(ctx, key)
}

// DeleteAll attempts every delete and returns the combined failures
func (s *PhotoStore) DeleteAll(ctx context.Context, bucket Bucket, filenames ...string) error {
	var errs []error
	for _, name := range filenames {
		if name == "" {
			continue
		}
		if err := s.Delete(ctx, bucket, name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return multierr.Combine(errs...)
}

// Cleanup deletes files best-effort. Failures are logged, never returned,
// and the delete outlives cancellation of ctx.
func (s *PhotoStore) Cleanup(ctx context.Context, bucket Bucket, filenames ...string) {
	if len(filenames) == 0 {
		return
	}
	if err := s.DeleteAll(context.WithoutCancel(ctx), bucket, filenames...); err != nil {
		s.logger.Warn("Failed to clean up stored photos",
			zap.String("bucket", string(bucket)),
			zap.Strings("filenames", filenames),
			zap.Errors("errors", multierr.Errors(err)),
		)
	}
}

// List returns the objects stored in bucket, keyed by bare filename
func (s *PhotoStore) List(ctx context.Context, bucket Bucket) ([]Object, error) {
	if !bucket.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBucket, bucket)
	}
	prefix := string(bucket) + "/"
	objects, err := s.backend.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	for i := range objects {
		objects[i].Key = strings.TrimPrefix(objects[i].Key, prefix)
	}
	return objects, nil
}

// Filenames extracts the filenames of stored files
func Filenames(files []StoredFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Filename
	}
	return names
}

func (s *PhotoStore) tooLarge(name string) error {
	return fmt.Errorf("%w: %s exceeds %d MB", ErrFileTooLarge, name, s.maxFileSize/(1024*1024))
}

func (s *PhotoStore) generateFilename(original, sniffedExt string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExtensions[ext] {
		ext = sniffedExt
	}
	base := sanitizeBase(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	return fmt.Sprintf("%s-%d-%d%s", base, s.now().UnixMilli(), s.randSuffix(), ext)
}

func sanitizeBase(base string) string {
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-_")
	if len(out) > 100 {
		out = out[:100]
	}
	if out == "" {
		return "photo"
	}
	return out
}

func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// limitReader fails once more than remaining bytes have been read
type limitReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

func (l *limitReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		l.exceeded = true
		return n, ErrFileTooLarge
	}
	return n, err
}
