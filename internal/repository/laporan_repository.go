package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LaporanRepository persists the laporan aggregate: the report row, its
// detail row and its photos
type LaporanRepository struct {
	db *gorm.DB
}

// NewLaporanRepository creates a new laporan repository instance
func NewLaporanRepository(db *gorm.DB) *LaporanRepository {
	return &LaporanRepository{db: db}
}

// Create inserts the report, l.Detail and l.Photos atomically
func (r *LaporanRepository) Create(ctx context.Context, l *domain.Laporan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(l).Error; err != nil {
			return err
		}

		if l.Detail != nil {
			l.Detail.IDLaporan = l.ID
			if err := tx.Create(l.Detail).Error; err != nil {
				return err
			}
		}

		if len(l.Photos) == 0 {
			return nil
		}
		for i := range l.Photos {
			l.Photos[i].IDLaporan = l.ID
		}
		return tx.Create(&l.Photos).Error
	})
}

// GetByID retrieves a report with its detail and photos
func (r *LaporanRepository) GetByID(ctx context.Context, id uuid.UUID, filter domain.ActiveFilter) (*domain.Laporan, error) {
	var l domain.Laporan
	err := r.db.WithContext(ctx).
		Scopes(activeScope(filter)).
		Preload("Detail").
		Preload("Photos", photoOrder).
		Where("id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns reports matching filter, newest first
func (r *LaporanRepository) List(ctx context.Context, filter domain.ActiveFilter) ([]domain.Laporan, error) {
	var items []domain.Laporan
	err := r.db.WithContext(ctx).
		Scopes(activeScope(filter)).
		Preload("Detail").
		Preload("Photos", photoOrder).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Update writes the report scalars and, when detail is non-nil, upserts the
// detail row (insert when detail.ID is nil). Photos in removedIDs owned by the
// report are deleted and added photos inserted, all in one transaction.
func (r *LaporanRepository) Update(ctx context.Context, l *domain.Laporan, detail *domain.DetailLaporan, removedIDs []uuid.UUID, added []domain.PhotoLaporan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateAll(tx, l); err != nil {
			return err
		}

		if detail != nil {
			detail.IDLaporan = l.ID
			var err error
			if detail.ID == uuid.Nil {
				err = tx.Create(detail).Error
			} else {
				err = updateAll(tx, detail)
			}
			if err != nil {
				return err
			}
		}

		if len(removedIDs) > 0 {
			err := tx.Where("id_laporan = ? AND id IN ?", l.ID, removedIDs).
				Delete(&domain.PhotoLaporan{}).Error
			if err != nil {
				return err
			}
		}

		if len(added) == 0 {
			return nil
		}
		for i := range added {
			added[i].IDLaporan = l.ID
		}
		return tx.Create(&added).Error
	})
}

// ReferencedPhotoNames returns every photo filename still referenced by a row
func (r *LaporanRepository) ReferencedPhotoNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&domain.PhotoLaporan{}).Pluck("photo_name", &names).Error
	return names, err
}
