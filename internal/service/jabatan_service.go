package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/mapper"
	"github.com/profilkantor/profile-api/internal/repository"
	"go.uber.org/zap"
)

const msgUrutanExists = "Urutan already used by another jabatan"

// JabatanService handles business logic for positions
type JabatanService struct {
	repo   *repository.JabatanRepository
	logger *zap.Logger
}

// NewJabatanService creates a new jabatan service instance
func NewJabatanService(repo *repository.JabatanRepository, logger *zap.Logger) *JabatanService {
	return &JabatanService{
		repo:   repo,
		logger: logger,
	}
}

// List returns positions matching filter ordered by urutan
func (s *JabatanService) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.JabatanDTO, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jabatan: %w", err)
	}
	return mapper.ToJabatanDTOs(items), nil
}

// GetByID returns one position matching filter
func (s *JabatanService) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.JabatanDTO, error) {
	j, err := s.repo.GetByID(ctx, id, filter)
	if err != nil {
		return nil, lookupError(err, "Jabatan")
	}
	dto := mapper.ToJabatanDTO(j)
	return &dto, nil
}

// Create adds a position; urutan must be unique
func (s *JabatanService) Create(ctx context.Context, actorID uuid.UUID, req *domain.CreateJabatanRequest) (*domain.JabatanDTO, error) {
	if req.Urutan == nil {
		return nil, Validation("urutan is required")
	}
	if err := s.ensureUrutanFree(ctx, *req.Urutan, uuid.Nil); err != nil {
		return nil, err
	}

	j := &domain.Jabatan{
		NamaJabatan: strings.TrimSpace(req.NamaJabatan),
		Urutan:      *req.Urutan,
		IsActive:    boolOr(req.IsActive, true),
		CreatedBy:   actorID,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, writeError(err, "create", "Jabatan", msgUrutanExists)
	}

	dto := mapper.ToJabatanDTO(j)
	return &dto, nil
}

// Update patches a position
func (s *JabatanService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateJabatanRequest) (*domain.JabatanDTO, error) {
	j, err := s.repo.GetByID(ctx, id, domain.AllRecords)
	if err != nil {
		return nil, lookupError(err, "Jabatan")
	}

	if req.NamaJabatan != nil {
		j.NamaJabatan = strings.TrimSpace(*req.NamaJabatan)
	}
	if req.Urutan != nil && *req.Urutan != j.Urutan {
		if err := s.ensureUrutanFree(ctx, *req.Urutan, j.ID); err != nil {
			return nil, err
		}
		j.Urutan = *req.Urutan
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, writeError(err, "update", "Jabatan", msgUrutanExists)
	}

	dto := mapper.ToJabatanDTO(j)
	return &dto, nil
}

// Delete removes a position that no karyawan references
func (s *JabatanService) Delete(ctx context.Context, id uuid.UUID) error {
	refs, err := s.repo.Delete(ctx, id)
	if err != nil {
		return writeError(err, "delete", "Jabatan", "")
	}
	if refs > 0 {
		return Conflict(fmt.Sprintf("Jabatan is still assigned to %d karyawan", refs))
	}

	s.logger.Info("jabatan deleted", zap.String("jabatan_id", id.String()))
	return nil
}

func (s *JabatanService) ensureUrutanFree(ctx context.Context, urutan int, excludeID uuid.UUID) error {
	exists, err := s.repo.UrutanExists(ctx, urutan, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check urutan: %w", err)
	}
	if exists {
		return Conflict(msgUrutanExists)
	}
	return nil
}
