package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/mapper"
	"github.com/profilkantor/profile-api/internal/repository"
	"github.com/profilkantor/profile-api/internal/storage"
	"go.uber.org/zap"
)

const msgInvalidDateRange = "tanggal_selesai must be on or after tanggal_mulai"

// LaporanService handles business logic for project reports
type LaporanService struct {
	repo   *repository.LaporanRepository
	photos *storage.PhotoStore
	logger *zap.Logger
}

// NewLaporanService creates a new laporan service instance
func NewLaporanService(repo *repository.LaporanRepository, photos *storage.PhotoStore, logger *zap.Logger) *LaporanService {
	return &LaporanService{
		repo:   repo,
		photos: photos,
		logger: logger,
	}
}

// List returns reports matching filter, newest first
func (s *LaporanService) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.LaporanDTO, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list laporan: %w", err)
	}
	return mapper.ToLaporanDTOs(items), nil
}

// GetByID returns one report with its detail and photos
func (s *LaporanService) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.LaporanDTO, error) {
	l, err := s.repo.GetByID(ctx, id, filter)
	if err != nil {
		return nil, lookupError(err, "Laporan")
	}
	dto := mapper.ToLaporanDTO(l)
	return &dto, nil
}

// Create inserts the report, its detail and any uploaded photos together.
// deskripsi_singkat is the supplied text when non-blank, otherwise it is
// derived from deskripsi_detail; both pass through MakeSummary.
func (s *LaporanService) Create(ctx context.Context, actorID uuid.UUID, req *domain.CreateLaporanRequest, uploads []storage.Upload) (*domain.LaporanDTO, error) {
	if req.TanggalSelesai.Before(req.TanggalMulai) {
		return nil, Validation(msgInvalidDateRange)
	}

	summary := ""
	if req.DeskripsiSingkat != nil {
		summary = MakeSummary(*req.DeskripsiSingkat)
	}
	if summary == "" {
		summary = MakeSummary(req.DeskripsiDetail)
	}

	stored, err := s.photos.StoreAll(ctx, storage.BucketLaporan, uploads, 0)
	if err != nil {
		return nil, uploadError(err)
	}

	l := &domain.Laporan{
		NamaProyek:       strings.TrimSpace(req.NamaProyek),
		DeskripsiSingkat: summary,
		IsActive:         boolOr(req.IsActive, true),
		CreatedBy:        actorID,
		Detail: &domain.DetailLaporan{
			DeskripsiDetail: req.DeskripsiDetail,
			TanggalMulai:    req.TanggalMulai,
			TanggalSelesai:  req.TanggalSelesai,
			Lokasi:          strings.TrimSpace(req.Lokasi),
			Client:          strings.TrimSpace(req.Client),
			Pelayanan:       strings.TrimSpace(req.Pelayanan),
			Industri:        strings.TrimSpace(req.Industri),
		},
		Photos: laporanPhotos(stored),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.photos.Cleanup(ctx, storage.BucketLaporan, storage.Filenames(stored)...)
		return nil, writeError(err, "create", "Laporan", "")
	}

	s.logger.Info("laporan created",
		zap.String("laporan_id", l.ID.String()),
		zap.Int("photos", len(l.Photos)))

	dto := mapper.ToLaporanDTO(l)
	return &dto, nil
}

// Update patches the report in one transaction. Supplied detail fields are
// written to the detail row, which is created when the report has none.
// A new deskripsi_detail recomputes deskripsi_singkat. Photos listed in
// req.RemovedPhotos that belong to the report are dropped and uploads are
// appended; a report may end up with no photos.
func (s *LaporanService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateLaporanRequest, uploads []storage.Upload) (*domain.LaporanDTO, error) {
	l, err := s.repo.GetByID(ctx, id, domain.AllRecords)
	if err != nil {
		return nil, lookupError(err, "Laporan")
	}

	var detail *domain.DetailLaporan
	if req.HasDetailChanges() {
		detail = l.Detail
		if detail == nil {
			detail = &domain.DetailLaporan{IDLaporan: l.ID}
		}
		applyDetailChanges(detail, req)
		if hasInvertedRange(detail.TanggalMulai, detail.TanggalSelesai) {
			return nil, Validation(msgInvalidDateRange)
		}
	}

	removedIDs, removedNames := selectPhotos(l.Photos, req.RemovedPhotos, laporanPhotoKey)

	stored, err := s.photos.StoreAll(ctx, storage.BucketLaporan, uploads, 0)
	if err != nil {
		return nil, uploadError(err)
	}

	if req.NamaProyek != nil {
		l.NamaProyek = strings.TrimSpace(*req.NamaProyek)
	}
	if req.DeskripsiDetail != nil {
		l.DeskripsiSingkat = MakeSummary(*req.DeskripsiDetail)
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	l.Detail = nil
	l.Photos = nil

	if err := s.repo.Update(ctx, l, detail, removedIDs, laporanPhotos(stored)); err != nil {
		s.photos.Cleanup(ctx, storage.BucketLaporan, storage.Filenames(stored)...)
		return nil, writeError(err, "update", "Laporan", "")
	}

	s.photos.Cleanup(ctx, storage.BucketLaporan, removedNames...)

	return s.GetByID(ctx, id, domain.AllRecords)
}

func applyDetailChanges(d *domain.DetailLaporan, req *domain.UpdateLaporanRequest) {
	if req.DeskripsiDetail != nil {
		d.DeskripsiDetail = *req.DeskripsiDetail
	}
	if req.TanggalMulai != nil {
		d.TanggalMulai = *req.TanggalMulai
	}
	if req.TanggalSelesai != nil {
		d.TanggalSelesai = *req.TanggalSelesai
	}
	if req.Lokasi != nil {
		d.Lokasi = strings.TrimSpace(*req.Lokasi)
	}
	if req.Client != nil {
		d.Client = strings.TrimSpace(*req.Client)
	}
	if req.Pelayanan != nil {
		d.Pelayanan = strings.TrimSpace(*req.Pelayanan)
	}
	if req.Industri != nil {
		d.Industri = strings.TrimSpace(*req.Industri)
	}
}

// hasInvertedRange ignores unset dates, which a partially created detail may have
func hasInvertedRange(start, end time.Time) bool {
	return !start.IsZero() && !end.IsZero() && end.Before(start)
}

func laporanPhotoKey(p domain.PhotoLaporan) (uuid.UUID, string) { return p.ID, p.PhotoName }

func laporanPhotos(files []storage.StoredFile) []domain.PhotoLaporan {
	photos := make([]domain.PhotoLaporan, len(files))
	for i, f := range files {
		photos[i] = domain.PhotoLaporan{PhotoName: f.Filename, URL: f.URL}
	}
	return photos
}
