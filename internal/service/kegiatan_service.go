package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/mapper"
	"github.com/profilkantor/profile-api/internal/repository"
	"github.com/profilkantor/profile-api/internal/storage"
	"go.uber.org/zap"
)

const msgPhotoRequired = "At least 1 photo is required"

// KegiatanService handles business logic for activities and their photos
type KegiatanService struct {
	repo   *repository.KegiatanRepository
	photos *storage.PhotoStore
	logger *zap.Logger
}

// NewKegiatanService creates a new kegiatan service instance
func NewKegiatanService(repo *repository.KegiatanRepository, photos *storage.PhotoStore, logger *zap.Logger) *KegiatanService {
	return &KegiatanService{
		repo:   repo,
		photos: photos,
		logger: logger,
	}
}

// List returns activities matching filter, newest first
func (s *KegiatanService) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.KegiatanDTO, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list kegiatan: %w", err)
	}
	return mapper.ToKegiatanDTOs(items), nil
}

// GetByID returns one activity with its photos
func (s *KegiatanService) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.KegiatanDTO, error) {
	k, err := s.repo.GetByID(ctx, id, filter)
	if err != nil {
		return nil, lookupError(err, "Kegiatan")
	}
	dto := mapper.ToKegiatanDTO(k)
	return &dto, nil
}

// Create stores the uploaded photos and inserts the activity with one photo
// row per file. At least one photo is required. Stored files are removed
// again when the insert fails.
func (s *KegiatanService) Create(ctx context.Context, actorID uuid.UUID, req *domain.CreateKegiatanRequest, uploads []storage.Upload) (*domain.KegiatanDTO, error) {
	if len(uploads) == 0 {
		return nil, Validation(msgPhotoRequired)
	}

	stored, err := s.photos.StoreAll(ctx, storage.BucketKegiatan, uploads, 0)
	if err != nil {
		return nil, uploadError(err)
	}

	k := &domain.Kegiatan{
		NamaKegiatan:     strings.TrimSpace(req.NamaKegiatan),
		DeskripsiSingkat: strings.TrimSpace(req.DeskripsiSingkat),
		TanggalKegiatan:  req.TanggalKegiatan,
		LokasiKegiatan:   strings.TrimSpace(req.LokasiKegiatan),
		IsActive:         boolOr(req.IsActive, true),
		CreatedBy:        actorID,
		Photos:           kegiatanPhotos(stored),
	}

	if err := s.repo.Create(ctx, k); err != nil {
		s.photos.Cleanup(ctx, storage.BucketKegiatan, storage.Filenames(stored)...)
		return nil, writeError(err, "create", "Kegiatan", "")
	}

	s.logger.Info("kegiatan created",
		zap.String("kegiatan_id", k.ID.String()),
		zap.Int("photos", len(k.Photos)))

	dto := mapper.ToKegiatanDTO(k)
	return &dto, nil
}

// Update patches the activity and applies the photo diff: photos listed in
// req.RemovedPhotos are dropped, uploads are appended. Ids that do not belong
// to the activity are ignored. When neither removals nor uploads are given
// the photo set is left alone; otherwise the resulting set must not be empty.
// Files of removed photos are deleted only after the change is committed.
func (s *KegiatanService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateKegiatanRequest, uploads []storage.Upload) (*domain.KegiatanDTO, error) {
	k, err := s.repo.GetByID(ctx, id, domain.AllRecords)
	if err != nil {
		return nil, lookupError(err, "Kegiatan")
	}

	removedIDs, removedNames := selectPhotos(k.Photos, req.RemovedPhotos, kegiatanPhotoKey)
	if len(removedIDs) > 0 || len(uploads) > 0 {
		if len(k.Photos)-len(removedIDs)+len(uploads) == 0 {
			return nil, Validation(msgPhotoRequired)
		}
	}

	stored, err := s.photos.StoreAll(ctx, storage.BucketKegiatan, uploads, 0)
	if err != nil {
		return nil, uploadError(err)
	}

	if req.NamaKegiatan != nil {
		k.NamaKegiatan = strings.TrimSpace(*req.NamaKegiatan)
	}
	if req.DeskripsiSingkat != nil {
		k.DeskripsiSingkat = strings.TrimSpace(*req.DeskripsiSingkat)
	}
	if req.TanggalKegiatan != nil {
		k.TanggalKegiatan = *req.TanggalKegiatan
	}
	if req.LokasiKegiatan != nil {
		k.LokasiKegiatan = strings.TrimSpace(*req.LokasiKegiatan)
	}
	if req.IsActive != nil {
		k.IsActive = *req.IsActive
	}
	k.Photos = nil

	if err := s.repo.Update(ctx, k, removedIDs, kegiatanPhotos(stored)); err != nil {
		s.photos.Cleanup(ctx, storage.BucketKegiatan, storage.Filenames(stored)...)
		return nil, writeError(err, "update", "Kegiatan", "")
	}

	s.photos.Cleanup(ctx, storage.BucketKegiatan, removedNames...)

	if len(removedIDs) > 0 || len(stored) > 0 {
		s.logger.Info("kegiatan photos changed",
			zap.String("kegiatan_id", k.ID.String()),
			zap.Int("removed", len(removedIDs)),
			zap.Int("added", len(stored)))
	}

	return s.GetByID(ctx, id, domain.AllRecords)
}

func kegiatanPhotoKey(p domain.PhotoKegiatan) (uuid.UUID, string) { return p.ID, p.PhotoName }

func kegiatanPhotos(files []storage.StoredFile) []domain.PhotoKegiatan {
	photos := make([]domain.PhotoKegiatan, len(files))
	for i, f := range files {
		photos[i] = domain.PhotoKegiatan{PhotoName: f.Filename, URL: f.URL}
	}
	return photos
}
