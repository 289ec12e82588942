package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/profilkantor/profile-api/internal/storage"
)

const sniffBytes = 512

// FileHandler serves stored photos under their public URL
type FileHandler struct {
	photos *storage.PhotoStore
	resp   *Responder
}

func NewFileHandler(photos *storage.PhotoStore, resp *Responder) *FileHandler {
	return &FileHandler{
		photos: photos,
		resp:   resp,
	}
}

// Pattern is the chi route the handler expects to be mounted on
func (h *FileHandler) Pattern() string {
	return h.photos.PublicPath() + "/{bucket}/{filename}"
}

// Serve godoc
// @Summary Get a stored photo
// @Tags Files
// @Produce image/jpeg,image/png,image/webp
// @Param bucket path string true "Bucket" Enums(kegiatan, laporan, karyawan)
// @Param filename path string true "Stored filename"
// @Success 200
// @Failure 404 {object} domain.Response
// @Router /uploads/{bucket}/{filename} [get]
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	bucket := storage.Bucket(chi.URLParam(r, "bucket"))
	filename := chi.URLParam(r, "filename")

	reader, err := h.photos.Open(r.Context(), bucket, filename)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) ||
			errors.Is(err, storage.ErrInvalidBucket) ||
			errors.Is(err, storage.ErrInvalidKey) {
			h.resp.Fail(w, http.StatusNotFound, "File not found")
			return
		}
		h.resp.Error(w, r, err, "Failed to read file")
		return
	}
	defer reader.Close()

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.resp.Error(w, r, err, "Failed to read file")
		return
	}
	head = head[:n]

	w.Header().Set("Content-Type", mimetype.Detect(head).String())
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, io.MultiReader(bytes.NewReader(head), reader))
}
