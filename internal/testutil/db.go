package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/database"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory sqlite database with every table
// migrated and foreign keys enforced. It is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_foreign_keys=1", name, uuid.NewString()[:8])

	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// CreateTestUser creates an active user with a placeholder password hash
func CreateTestUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:     name,
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "-" + uuid.NewString()[:8] + "@example.com",
		Password: "not-a-real-hash",
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestJabatan creates an active position with the given rank
func CreateTestJabatan(t *testing.T, db *gorm.DB, name string, urutan int, createdBy uuid.UUID) *domain.Jabatan {
	t.Helper()
	j := &domain.Jabatan{
		NamaJabatan: name,
		Urutan:      urutan,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
	require.NoError(t, db.Create(j).Error)
	return j
}

// CreateTestKegiatan creates an active activity with one photo row per filename
func CreateTestKegiatan(t *testing.T, db *gorm.DB, name string, createdBy uuid.UUID, photoNames ...string) *domain.Kegiatan {
	t.Helper()
	k := &domain.Kegiatan{
		NamaKegiatan:     name,
		DeskripsiSingkat: name + " description",
		TanggalKegiatan:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LokasiKegiatan:   "Balai Desa",
		IsActive:         true,
		CreatedBy:        createdBy,
	}
	for _, n := range photoNames {
		k.Photos = append(k.Photos, domain.PhotoKegiatan{PhotoName: n, URL: "/uploads/kegiatan/" + n})
	}
	require.NoError(t, db.Create(k).Error)
	return k
}
