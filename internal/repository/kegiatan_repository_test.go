package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/repository"
	"github.com/profilkantor/profile-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photoNames(photos []domain.PhotoKegiatan) []string {
	names := make([]string, len(photos))
	for i, p := range photos {
		names[i] = p.PhotoName
	}
	return names
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestKegiatanRepository_CreateWithPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKegiatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Creator")
	ctx := context.Background()

	k := &domain.Kegiatan{
		NamaKegiatan:     "Gotong Royong",
		DeskripsiSingkat: "Kerja bakti",
		TanggalKegiatan:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LokasiKegiatan:   "Balai Desa",
		IsActive:         true,
		CreatedBy:        user.ID,
		Photos: []domain.PhotoKegiatan{
			{PhotoName: "a.jpg", URL: "/uploads/kegiatan/a.jpg"},
			{PhotoName: "b.jpg", URL: "/uploads/kegiatan/b.jpg"},
		},
	}
	require.NoError(t, repo.Create(ctx, k))
	assert.NotEqual(t, uuid.Nil, k.ID)

	found, err := repo.GetByID(ctx, k.ID, domain.OnlyActive)
	require.NoError(t, err)
	assert.Equal(t, "Gotong Royong", found.NamaKegiatan)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, photoNames(found.Photos))
	for _, p := range found.Photos {
		assert.Equal(t, k.ID, p.IDKegiatan)
	}
}

func TestKegiatanRepository_ActiveFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKegiatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Creator")
	ctx := context.Background()

	active := testutil.CreateTestKegiatan(t, db, "Active", user.ID, "a.jpg")
	inactive := testutil.CreateTestKegiatan(t, db, "Inactive", user.ID, "b.jpg")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	_, err := repo.GetByID(ctx, inactive.ID, domain.OnlyActive)
	assert.True(t, repository.IsNotFound(err))

	found, err := repo.GetByID(ctx, inactive.ID, domain.AllRecords)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	tests := []struct {
		filter domain.ActiveFilter
		want   []uuid.UUID
	}{
		{domain.OnlyActive, []uuid.UUID{active.ID}},
		{domain.OnlyInactive, []uuid.UUID{inactive.ID}},
		{domain.AllRecords, []uuid.UUID{active.ID, inactive.ID}},
	}
	for _, tt := range tests {
		items, err := repo.List(ctx, tt.filter)
		require.NoError(t, err)
		ids := make([]uuid.UUID, len(items))
		for i, it := range items {
			ids[i] = it.ID
			assert.Len(t, it.Photos, 1)
		}
		assert.ElementsMatch(t, tt.want, ids)
	}
}

// =============================================================================
// Photo diff
// =============================================================================

func TestKegiatanRepository_UpdateReplacesPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKegiatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Creator")
	ctx := context.Background()

	k := testutil.CreateTestKegiatan(t, db, "Rapat", user.ID, "a.jpg", "b.jpg")
	var removeID uuid.UUID
	for _, p := range k.Photos {
		if p.PhotoName == "a.jpg" {
			removeID = p.ID
		}
	}

	k.NamaKegiatan = "Rapat Warga"
	k.IsActive = false
	err := repo.Update(ctx, k, []uuid.UUID{removeID}, []domain.PhotoKegiatan{
		{PhotoName: "c.jpg", URL: "/uploads/kegiatan/c.jpg"},
	})
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, k.ID, domain.AllRecords)
	require.NoError(t, err)
	assert.Equal(t, "Rapat Warga", found.NamaKegiatan)
	assert.False(t, found.IsActive, "false must be written, not skipped as a zero value")
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, photoNames(found.Photos))
}

func TestKegiatanRepository_UpdateIgnoresForeignPhotoIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKegiatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Creator")
	ctx := context.Background()

	mine := testutil.CreateTestKegiatan(t, db, "Mine", user.ID, "mine.jpg")
	other := testutil.CreateTestKegiatan(t, db, "Other", user.ID, "other.jpg")

	err := repo.Update(ctx, mine, []uuid.UUID{other.Photos[0].ID, uuid.New()}, nil)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, other.ID, domain.OnlyActive)
	require.NoError(t, err)
	assert.Len(t, found.Photos, 1, "photos of another activity are never removed")

	found, err = repo.GetByID(ctx, mine.ID, domain.OnlyActive)
	require.NoError(t, err)
	assert.Len(t, found.Photos, 1)
}

func TestKegiatanRepository_UpdateMissingRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKegiatanRepository(db)

	k := &domain.Kegiatan{NamaKegiatan: "ghost"}
	k.ID = uuid.New()

	err := repo.Update(context.Background(), k, nil, []domain.PhotoKegiatan{{PhotoName: "x.jpg", URL: "/x"}})
	assert.True(t, repository.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&domain.PhotoKegiatan{}).Count(&count).Error)
	assert.Zero(t, count, "transaction rolled back")
}

func TestKegiatanRepository_ReferencedPhotoNames(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKegiatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Creator")

	testutil.CreateTestKegiatan(t, db, "One", user.ID, "a.jpg", "b.jpg")
	testutil.CreateTestKegiatan(t, db, "Two", user.ID, "c.jpg")

	names, err := repo.ReferencedPhotoNames(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg", "c.jpg"}, names)
}

func TestKegiatanRepository_CascadeDeletesPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db, "Creator")

	k := testutil.CreateTestKegiatan(t, db, "Temp", user.ID, "a.jpg")
	require.NoError(t, db.Delete(&domain.Kegiatan{}, "id = ?", k.ID).Error)

	var count int64
	require.NoError(t, db.Model(&domain.PhotoKegiatan{}).Where("id_kegiatan = ?", k.ID).Count(&count).Error)
	assert.Zero(t, count)
}
