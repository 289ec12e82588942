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

const (
	msgKaryawanEmailExists = "Email already used by another karyawan"
	msgKaryawanPhoto       = "Photo is required"
)

// KaryawanService handles business logic for employees and their photo
type KaryawanService struct {
	repo        *repository.KaryawanRepository
	jabatanRepo *repository.JabatanRepository
	photos      *storage.PhotoStore
	logger      *zap.Logger
}

// NewKaryawanService creates a new karyawan service instance
func NewKaryawanService(
	repo *repository.KaryawanRepository,
	jabatanRepo *repository.JabatanRepository,
	photos *storage.PhotoStore,
	logger *zap.Logger,
) *KaryawanService {
	return &KaryawanService{
		repo:        repo,
		jabatanRepo: jabatanRepo,
		photos:      photos,
		logger:      logger,
	}
}

// List returns employees matching filter, newest first
func (s *KaryawanService) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.KaryawanDTO, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list karyawan: %w", err)
	}
	return mapper.ToKaryawanDTOs(items), nil
}

// GetByID returns one employee with its jabatan
func (s *KaryawanService) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.KaryawanDTO, error) {
	k, err := s.repo.GetByID(ctx, id, filter)
	if err != nil {
		return nil, lookupError(err, "Karyawan")
	}
	dto := mapper.ToKaryawanDTO(k)
	return &dto, nil
}

// Create stores the single required photo and inserts the employee
func (s *KaryawanService) Create(ctx context.Context, actorID uuid.UUID, req *domain.CreateKaryawanRequest, uploads []storage.Upload) (*domain.KaryawanDTO, error) {
	if len(uploads) == 0 {
		return nil, Validation(msgKaryawanPhoto)
	}
	email := strings.TrimSpace(req.Email)
	if err := s.ensureJabatanExists(ctx, req.IDJabatan); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	stored, err := s.photos.StoreAll(ctx, storage.BucketKaryawan, uploads, 1)
	if err != nil {
		return nil, uploadError(err)
	}

	k := &domain.Karyawan{
		NamaKaryawan: strings.TrimSpace(req.NamaKaryawan),
		NoTelepon:    strings.TrimSpace(req.NoTelepon),
		Email:        email,
		TanggalMasuk: req.TanggalMasuk,
		IDJabatan:    req.IDJabatan,
		PhotoURL:     stored[0].URL,
		IsActive:     boolOr(req.IsActive, true),
		CreatedBy:    actorID,
	}
	if err := s.repo.Create(ctx, k); err != nil {
		s.photos.Cleanup(ctx, storage.BucketKaryawan, storage.Filenames(stored)...)
		return nil, writeError(err, "create", "Karyawan", msgKaryawanEmailExists)
	}

	s.logger.Info("karyawan created", zap.String("karyawan_id", k.ID.String()))

	return s.GetByID(ctx, k.ID, domain.AllRecords)
}

// Update patches the employee. A new photo replaces the old one, whose file
// is deleted after the row is saved.
func (s *KaryawanService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateKaryawanRequest, uploads []storage.Upload) (*domain.KaryawanDTO, error) {
	k, err := s.repo.GetByID(ctx, id, domain.AllRecords)
	if err != nil {
		return nil, lookupError(err, "Karyawan")
	}

	if req.IDJabatan != nil && *req.IDJabatan != k.IDJabatan {
		if err := s.ensureJabatanExists(ctx, *req.IDJabatan); err != nil {
			return nil, err
		}
		k.IDJabatan = *req.IDJabatan
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != k.Email {
			if err := s.ensureEmailFree(ctx, email, k.ID); err != nil {
				return nil, err
			}
		}
		k.Email = email
	}

	stored, err := s.photos.StoreAll(ctx, storage.BucketKaryawan, uploads, 1)
	if err != nil {
		return nil, uploadError(err)
	}

	oldPhoto := ""
	if len(stored) > 0 {
		oldPhoto = storage.FilenameFromURL(k.PhotoURL)
		k.PhotoURL = stored[0].URL
	}
	if req.NamaKaryawan != nil {
		k.NamaKaryawan = strings.TrimSpace(*req.NamaKaryawan)
	}
	if req.NoTelepon != nil {
		k.NoTelepon = strings.TrimSpace(*req.NoTelepon)
	}
	if req.TanggalMasuk != nil {
		k.TanggalMasuk = *req.TanggalMasuk
	}
	if req.IsActive != nil {
		k.IsActive = *req.IsActive
	}
	k.Jabatan = nil

	if err := s.repo.Update(ctx, k); err != nil {
		s.photos.Cleanup(ctx, storage.BucketKaryawan, storage.Filenames(stored)...)
		return nil, writeError(err, "update", "Karyawan", msgKaryawanEmailExists)
	}

	if oldPhoto != "" {
		s.photos.Cleanup(ctx, storage.BucketKaryawan, oldPhoto)
	}

	return s.GetByID(ctx, id, domain.AllRecords)
}

// SoftDelete marks the employee inactive
func (s *KaryawanService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return writeError(err, "deactivate", "Karyawan", "")
	}
	return nil
}

// Restore marks the employee active again
func (s *KaryawanService) Restore(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetActive(ctx, id, true); err != nil {
		return writeError(err, "restore", "Karyawan", "")
	}
	return nil
}

// HardDelete removes the row, then its photo file
func (s *KaryawanService) HardDelete(ctx context.Context, id uuid.UUID) error {
	k, err := s.repo.GetByID(ctx, id, domain.AllRecords)
	if err != nil {
		return lookupError(err, "Karyawan")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return writeError(err, "delete", "Karyawan", "")
	}

	s.photos.Cleanup(ctx, storage.BucketKaryawan, storage.FilenameFromURL(k.PhotoURL))

	s.logger.Info("karyawan permanently deleted", zap.String("karyawan_id", id.String()))
	return nil
}

func (s *KaryawanService) ensureJabatanExists(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return Validation("id_jabatan is required")
	}
	if _, err := s.jabatanRepo.GetByID(ctx, id, domain.AllRecords); err != nil {
		if repository.IsNotFound(err) {
			return Validation("Jabatan not found")
		}
		return fmt.Errorf("failed to get jabatan: %w", err)
	}
	return nil
}

func (s *KaryawanService) ensureEmailFree(ctx context.Context, email string, excludeID uuid.UUID) error {
	exists, err := s.repo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return Conflict(msgKaryawanEmailExists)
	}
	return nil
}
