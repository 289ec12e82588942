package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/gorm"
)

// KaryawanRepository handles karyawan data access operations
type KaryawanRepository struct {
	db *gorm.DB
}

// NewKaryawanRepository creates a new karyawan repository instance
func NewKaryawanRepository(db *gorm.DB) *KaryawanRepository {
	return &KaryawanRepository{db: db}
}

func (r *KaryawanRepository) Create(ctx context.Context, k *domain.Karyawan) error {
	return r.db.WithContext(ctx).Omit("Jabatan").Create(k).Error
}

// GetByID retrieves an employee with its position
func (r *KaryawanRepository) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.Karyawan, error) {
	var k domain.Karyawan
	err := r.db.WithContext(ctx).
		Scopes(activeScope(filter)).
		Preload("Jabatan").
		Where("id = ?", id).
		First(&k).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// List returns employees matching filter, newest first
func (r *KaryawanRepository) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.Karyawan, error) {
	var items []domain.Karyawan
	err := r.db.WithContext(ctx).
		Scopes(activeScope(filter)).
		Preload("Jabatan").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *KaryawanRepository) Update(ctx context.Context, k *domain.Karyawan) error {
	return updateAll(r.db.WithContext(ctx), k)
}

// SetActive flips the is_active flag used for soft delete and restore
func (r *KaryawanRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).Model(&domain.Karyawan{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row permanently
func (r *KaryawanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Karyawan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EmailExists reports whether another employee already has email
func (r *KaryawanRepository) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&domain.Karyawan{}).Where("email = ?", email)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReferencedPhotoURLs returns the photo_url of every employee row
func (r *KaryawanRepository) ReferencedPhotoURLs(ctx context.Context) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).Model(&domain.Karyawan{}).Pluck("photo_url", &urls).Error
	return urls, err
}
