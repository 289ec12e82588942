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

const msgTestimoniExists = "Testimoni already exists"

// TestimoniService handles business logic for testimonials
type TestimoniService struct {
	repo   *repository.TestimoniRepository
	logger *zap.Logger
}

// NewTestimoniService creates a new testimoni service instance
func NewTestimoniService(repo *repository.TestimoniRepository, logger *zap.Logger) *TestimoniService {
	return &TestimoniService{
		repo:   repo,
		logger: logger,
	}
}

// List returns testimonials matching filter, newest first
func (s *TestimoniService) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.TestimoniDTO, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimoni: %w", err)
	}
	return mapper.ToTestimoniDTOs(items), nil
}

// GetByID returns one testimonial matching filter
func (s *TestimoniService) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.TestimoniDTO, error) {
	t, err := s.repo.GetByID(ctx, id, filter)
	if err != nil {
		return nil, lookupError(err, "Testimoni")
	}
	dto := mapper.ToTestimoniDTO(t)
	return &dto, nil
}

// Create adds a testimonial owned by actorID
func (s *TestimoniService) Create(ctx context.Context, actorID uuid.UUID, req *domain.CreateTestimoniRequest) (*domain.TestimoniDTO, error) {
	t := &domain.Testimoni{
		NamaTester: strings.TrimSpace(req.NamaTester),
		Testimoni:  strings.TrimSpace(req.Testimoni),
		IsActive:   boolOr(req.IsActive, true),
		CreatedBy:  actorID,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, writeError(err, "create", "Testimoni", msgTestimoniExists)
	}

	dto := mapper.ToTestimoniDTO(t)
	return &dto, nil
}

// Update patches a testimonial. Only its creator may change it. The
// returned flag reports whether this update deactivated the testimonial.
func (s *TestimoniService) Update(ctx context.Context, actorID, id uuid.UUID, req *domain.UpdateTestimoniRequest) (*domain.TestimoniDTO, bool, error) {
	t, err := s.repo.GetByID(ctx, id, domain.AllRecords)
	if err != nil {
		return nil, false, lookupError(err, "Testimoni")
	}
	if t.CreatedBy != actorID {
		return nil, false, Forbidden("You are not authorized to update this testimoni")
	}

	if req.NamaTester != nil {
		t.NamaTester = strings.TrimSpace(*req.NamaTester)
	}
	if req.Testimoni != nil {
		t.Testimoni = strings.TrimSpace(*req.Testimoni)
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, false, writeError(err, "update", "Testimoni", msgTestimoniExists)
	}

	deactivated := req.IsActive != nil && !*req.IsActive
	dto := mapper.ToTestimoniDTO(t)
	return &dto, deactivated, nil
}
