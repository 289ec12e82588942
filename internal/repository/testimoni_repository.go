package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/gorm"
)

// TestimoniRepository handles testimoni data access operations
type TestimoniRepository struct {
	db *gorm.DB
}

// NewTestimoniRepository creates a new testimoni repository instance
func NewTestimoniRepository(db *gorm.DB) *TestimoniRepository {
	return &TestimoniRepository{db: db}
}

// Create creates a new testimoni in the database
func (r *TestimoniRepository) Create(ctx context.Context, t *domain.Testimoni) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// GetByID retrieves a testimoni matching filter
func (r *TestimoniRepository) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.Testimoni, error) {
	var t domain.Testimoni
	err := r.db.WithContext(ctx).Scopes(activeScope(filter)).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns testimoni matching filter, newest first
func (r *TestimoniRepository) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.Testimoni, error) {
	var items []domain.Testimoni
	err := r.db.WithContext(ctx).Scopes(activeScope(filter)).Order("created_at DESC").Find(&items).Error
	return items, err
}

// Update saves every column of t
func (r *TestimoniRepository) Update(ctx context.Context, t *domain.Testimoni) error {
	return updateAll(r.db.WithContext(ctx), t)
}
