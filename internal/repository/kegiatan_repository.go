package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KegiatanRepository persists the kegiatan aggregate: the activity row and its photos
type KegiatanRepository struct {
	db *gorm.DB
}

// NewKegiatanRepository creates a new kegiatan repository instance
func NewKegiatanRepository(db *gorm.DB) *KegiatanRepository {
	return &KegiatanRepository{db: db}
}

// Create inserts the activity and all of k.Photos in one transaction
func (r *KegiatanRepository) Create(ctx context.Context, k *domain.Kegiatan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(k).Error; err != nil {
			return err
		}
		for i := range k.Photos {
			k.Photos[i].IDKegiatan = k.ID
		}
		if len(k.Photos) == 0 {
			return nil
		}
		return tx.Create(&k.Photos).Error
	})
}

// GetByID retrieves an activity with its photos
func (r *KegiatanRepository) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.Kegiatan, error) {
	var k domain.Kegiatan
	err := r.db.WithContext(ctx).
		Scopes(activeScope(filter)).
		Preload("Photos", photoOrder).
		Where("id = ?", id).
		First(&k).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// List returns activities matching filter, newest first
func (r *KegiatanRepository) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.Kegiatan, error) {
	var items []domain.Kegiatan
	err := r.db.WithContext(ctx).
		Scopes(activeScope(filter)).
		Preload("Photos", photoOrder).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Update saves the scalar columns of k, removes the photos in removedIDs that
// belong to k and inserts added, all in one transaction. Removed ids owned by
// another activity or already gone are ignored.
func (r *KegiatanRepository) Update(ctx context.Context, k *domain.Kegiatan, removedIDs []uuid.UUID, added []domain.PhotoKegiatan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateAll(tx, k); err != nil {
			return err
		}

		if len(removedIDs) > 0 {
			err := tx.Where("id_kegiatan = ? AND id IN ?", k.ID, removedIDs).
				Delete(&domain.PhotoKegiatan{}).Error
			if err != nil {
				return err
			}
		}

		if len(added) == 0 {
			return nil
		}
		for i := range added {
			added[i].IDKegiatan = k.ID
		}
		return tx.Create(&added).Error
	})
}

// ReferencedPhotoNames returns every photo filename still referenced by a row
func (r *KegiatanRepository) ReferencedPhotoNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&domain.PhotoKegiatan{}).Pluck("photo_name", &names).Error
	return names, err
}
