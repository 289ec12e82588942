package repository

import (
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplyActiveFilter restricts a query on a table with an is_active column.
// column may be table qualified when the query joins other tables.
func ApplyActiveFilter(query *gorm.DB, filter domain.ActiveFilter, column string) *gorm.DB {
	switch filter {
	case domain.OnlyActive:
		return query.Where(column+" = ?", true)
	case domain.OnlyInactive:
		return query.Where(column+" = ?", false)
	default:
		return query
	}
}

// activeScope is ApplyActiveFilter as a gorm scope on the unqualified column
func activeScope(filter domain.ActiveFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return ApplyActiveFilter(db, filter, "is_active")
	}
}

// photoOrder gives preloaded photo rows a stable order
func photoOrder(db *gorm.DB) *gorm.DB {
	return db.Order("photo_name ASC")
}

// updateAll writes every column of model except id and created_at, zero values
// included. Associations are left alone. A missing row is gorm.ErrRecordNotFound.
func updateAll(db *gorm.DB, model any) error {
	result := db.Model(model).Select("*").Omit(clause.Associations, "id", "created_at").Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
