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
	"gorm.io/gorm"
)

func createTestKaryawan(t *testing.T, db *gorm.DB, email string, jabatanID, createdBy uuid.UUID) *domain.Karyawan {
	t.Helper()
	k := &domain.Karyawan{
		NamaKaryawan: "Budi",
		NoTelepon:    "08123456789",
		Email:        email,
		TanggalMasuk: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		IDJabatan:    jabatanID,
		PhotoURL:     "/uploads/karyawan/" + email + ".jpg",
		IsActive:     true,
		CreatedBy:    createdBy,
	}
	require.NoError(t, repository.NewKaryawanRepository(db).Create(context.Background(), k))
	return k
}

// =============================================================================
// Jabatan
// =============================================================================

func TestJabatanRepository_ListOrderedByUrutan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJabatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Admin")
	ctx := context.Background()

	testutil.CreateTestJabatan(t, db, "Staff", 3, user.ID)
	testutil.CreateTestJabatan(t, db, "Direktur", 1, user.ID)
	manager := testutil.CreateTestJabatan(t, db, "Manajer", 2, user.ID)

	manager.IsActive = false
	require.NoError(t, repo.Update(ctx, manager))

	items, err := repo.List(ctx, domain.AllRecords)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Direktur", "Manajer", "Staff"}, []string{items[0].NamaJabatan, items[1].NamaJabatan, items[2].NamaJabatan})

	active, err := repo.List(ctx, domain.OnlyActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	inactive, err := repo.List(ctx, domain.OnlyInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, manager.ID, inactive[0].ID)
}

func TestJabatanRepository_UrutanIsUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJabatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Admin")
	ctx := context.Background()

	first := testutil.CreateTestJabatan(t, db, "Direktur", 1, user.ID)

	exists, err := repo.UrutanExists(ctx, 1, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UrutanExists(ctx, 1, first.ID)
	require.NoError(t, err)
	assert.False(t, exists, "own row is excluded")

	err = repo.Create(ctx, &domain.Jabatan{NamaJabatan: "Dup", Urutan: 1, IsActive: true, CreatedBy: user.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestJabatanRepository_DeleteRestricted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJabatanRepository(db)
	user := testutil.CreateTestUser(t, db, "Admin")
	ctx := context.Background()

	used := testutil.CreateTestJabatan(t, db, "Staff", 1, user.ID)
	unused := testutil.CreateTestJabatan(t, db, "Magang", 2, user.ID)
	createTestKaryawan(t, db, "budi@example.com", used.ID, user.ID)

	refs, err := repo.Delete(ctx, used.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), refs)
	_, err = repo.GetByID(ctx, used.ID, domain.AllRecords)
	assert.NoError(t, err, "referenced position is kept")

	refs, err = repo.Delete(ctx, unused.ID)
	require.NoError(t, err)
	assert.Zero(t, refs)
	_, err = repo.GetByID(ctx, unused.ID, domain.AllRecords)
	assert.True(t, repository.IsNotFound(err))

	_, err = repo.Delete(ctx, uuid.New())
	assert.True(t, repository.IsNotFound(err))
}

func TestJabatanRepository_ForeignKeyRestrictsDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db, "Admin")

	used := testutil.CreateTestJabatan(t, db, "Staff", 1, user.ID)
	createTestKaryawan(t, db, "budi@example.com", used.ID, user.ID)

	err := db.Delete(&domain.Jabatan{}, "id = ?", used.ID).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Jabatan{}).Where("id = ?", used.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "referenced position survives a direct delete")
}

// =============================================================================
// Karyawan
// =============================================================================

func TestKaryawanRepository_GetPreloadsJabatan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKaryawanRepository(db)
	user := testutil.CreateTestUser(t, db, "Admin")
	ctx := context.Background()

	j := testutil.CreateTestJabatan(t, db, "Staff", 1, user.ID)
	k := createTestKaryawan(t, db, "budi@example.com", j.ID, user.ID)

	found, err := repo.GetByID(ctx, k.ID, domain.OnlyActive)
	require.NoError(t, err)
	require.NotNil(t, found.Jabatan)
	assert.Equal(t, "Staff", found.Jabatan.NamaJabatan)
	assert.Equal(t, "2023-05-01", found.TanggalMasuk.Format("2006-01-02"))
}

func TestKaryawanRepository_SoftDeleteRestoreHardDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKaryawanRepository(db)
	user := testutil.CreateTestUser(t, db, "Admin")
	ctx := context.Background()

	j := testutil.CreateTestJabatan(t, db, "Staff", 1, user.ID)
	k := createTestKaryawan(t, db, "budi@example.com", j.ID, user.ID)

	require.NoError(t, repo.SetActive(ctx, k.ID, false))
	_, err := repo.GetByID(ctx, k.ID, domain.OnlyActive)
	assert.True(t, repository.IsNotFound(err))

	inactive, err := repo.List(ctx, domain.OnlyInactive)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)

	require.NoError(t, repo.SetActive(ctx, k.ID, true))
	_, err = repo.GetByID(ctx, k.ID, domain.OnlyActive)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, k.ID))
	_, err = repo.GetByID(ctx, k.ID, domain.AllRecords)
	assert.True(t, repository.IsNotFound(err))

	assert.True(t, repository.IsNotFound(repo.Delete(ctx, k.ID)))
	assert.True(t, repository.IsNotFound(repo.SetActive(ctx, k.ID, true)))
}

func TestKaryawanRepository_UpdateChangesJabatan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKaryawanRepository(db)
	user := testutil.CreateTestUser(t, db, "Admin")
	ctx := context.Background()

	staff := testutil.CreateTestJabatan(t, db, "Staff", 1, user.ID)
	lead := testutil.CreateTestJabatan(t, db, "Lead", 2, user.ID)
	created := createTestKaryawan(t, db, "budi@example.com", staff.ID, user.ID)

	k, err := repo.GetByID(ctx, created.ID, domain.OnlyActive)
	require.NoError(t, err)
	k.IDJabatan = lead.ID
	k.Jabatan = nil
	require.NoError(t, repo.Update(ctx, k))

	found, err := repo.GetByID(ctx, k.ID, domain.OnlyActive)
	require.NoError(t, err)
	assert.Equal(t, "Lead", found.Jabatan.NamaJabatan)
}

func TestKaryawanRepository_EmailAndPhotoQueries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewKaryawanRepository(db)
	user := testutil.CreateTestUser(t, db, "Admin")
	ctx := context.Background()

	j := testutil.CreateTestJabatan(t, db, "Staff", 1, user.ID)
	k := createTestKaryawan(t, db, "budi@example.com", j.ID, user.ID)

	exists, err := repo.EmailExists(ctx, "budi@example.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "budi@example.com", k.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	urls, err := repo.ReferencedPhotoURLs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{k.PhotoURL}, urls)
}

// =============================================================================
// User / Testimoni
// =============================================================================

func TestUserRepository_ActiveLookups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db, "Ani")

	found, err := repo.GetActiveByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	user.IsActive = false
	require.NoError(t, repo.Update(ctx, user))

	_, err = repo.GetActiveByEmail(ctx, user.Email)
	assert.True(t, repository.IsNotFound(err))
	_, err = repo.GetActiveByID(ctx, user.ID)
	assert.True(t, repository.IsNotFound(err))

	found, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	exists, err := repo.EmailExists(ctx, user.Email, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestTestimoniRepository_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTestimoniRepository(db)
	user := testutil.CreateTestUser(t, db, "Ani")
	ctx := context.Background()

	item := &domain.Testimoni{NamaTester: "Sari", Testimoni: "Pelayanan bagus", IsActive: true, CreatedBy: user.ID}
	require.NoError(t, repo.Create(ctx, item))

	dup := &domain.Testimoni{NamaTester: "Rina", Testimoni: "Pelayanan bagus", IsActive: true, CreatedBy: user.ID}
	assert.ErrorIs(t, repo.Create(ctx, dup), gorm.ErrDuplicatedKey)

	item.IsActive = false
	require.NoError(t, repo.Update(ctx, item))

	items, err := repo.List(ctx, domain.OnlyActive)
	require.NoError(t, err)
	assert.Empty(t, items)

	found, err := repo.GetByID(ctx, item.ID, domain.AllRecords)
	require.NoError(t, err)
	assert.Equal(t, "Sari", found.NamaTester)
}
