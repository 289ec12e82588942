package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/gorm"
)

// JabatanRepository handles jabatan data access operations
type JabatanRepository struct {
	db *gorm.DB
}

// NewJabatanRepository creates a new jabatan repository instance
func NewJabatanRepository(db *gorm.DB) *JabatanRepository {
	return &JabatanRepository{db: db}
}

func (r *JabatanRepository) Create(ctx context.Context, j *domain.Jabatan) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JabatanRepository) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.Jabatan, error) {
	var j domain.Jabatan
	err := r.db.WithContext(ctx).Scopes(activeScope(filter)).Where("id = ?", id).First(&j).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// List returns positions matching filter ordered by urutan
func (r *JabatanRepository) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.Jabatan, error) {
	var items []domain.Jabatan
	err := r.db.WithContext(ctx).Scopes(activeScope(filter)).Order("urutan ASC").Find(&items).Error
	return items, err
}

func (r *JabatanRepository) Update(ctx context.Context, j *domain.Jabatan) error {
	return updateAll(r.db.WithContext(ctx), j)
}

// UrutanExists reports whether another position already uses urutan
func (r *JabatanRepository) UrutanExists(ctx context.Context, urutan int, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&domain.Jabatan{}).Where("urutan = ?", urutan)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the position unless karyawan still reference it. The count
// and delete share a transaction; the foreign key restricts concurrent inserts.
// It returns the number of referencing karyawan, which is non-zero when
// nothing was deleted.
func (r *JabatanRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var refs int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Karyawan{}).Where("id_jabatan = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return nil
		}

		result := tx.Delete(&domain.Jabatan{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return refs, err
}
