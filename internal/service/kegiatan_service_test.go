package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/repository"
	"github.com/profilkantor/profile-api/internal/service"
	"github.com/profilkantor/profile-api/internal/storage"
	"github.com/profilkantor/profile-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKegiatanService(t *testing.T) (*service.KegiatanService, *testEnv, uuid.UUID) {
	t.Helper()
	env := newTestEnv(t)
	actor := testutil.CreateTestUser(t, env.db, "Admin")
	svc := service.NewKegiatanService(repository.NewKegiatanRepository(env.db), env.photos, env.logger)
	return svc, env, actor.ID
}

func newKegiatanRequest() *domain.CreateKegiatanRequest {
	return &domain.CreateKegiatanRequest{
		NamaKegiatan:     "Kerja Bakti",
		DeskripsiSingkat: "Membersihkan lingkungan kantor",
		TanggalKegiatan:  time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC),
		LokasiKegiatan:   "Halaman Kantor",
	}
}

func photoIDs(photos []domain.PhotoDTO) []uuid.UUID {
	ids := make([]uuid.UUID, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}
	return ids
}

func TestKegiatanService_CreateRequiresPhoto(t *testing.T) {
	svc, env, actor := newKegiatanService(t)

	_, err := svc.Create(context.Background(), actor, newKegiatanRequest(), nil)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Equal(t, "At least 1 photo is required", service.MessageOf(err))

	items, err := svc.List(context.Background(), domain.AllRecords)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, env.files(t, storage.BucketKegiatan))
}

func TestKegiatanService_CreateStoresPhotos(t *testing.T) {
	svc, env, actor := newKegiatanService(t)

	created, err := svc.Create(context.Background(), actor, newKegiatanRequest(),
		[]storage.Upload{jpegUpload("a.jpg"), pngUpload("b.png")})
	require.NoError(t, err)

	assert.True(t, created.IsActive)
	assert.Equal(t, "2024-08-17T00:00:00Z", created.TanggalKegiatan)
	require.Len(t, created.Photos, 2)
	for _, p := range created.Photos {
		assert.Equal(t, "/uploads/kegiatan/"+p.PhotoName, p.URL)
		assert.True(t, env.fileExists(storage.BucketKegiatan, p.PhotoName))
	}

	got, err := svc.GetByID(context.Background(), created.ID, domain.OnlyActive)
	require.NoError(t, err)
	assert.Len(t, got.Photos, 2)
}

func TestKegiatanService_CreateRejectsBadUpload(t *testing.T) {
	svc, env, actor := newKegiatanService(t)

	_, err := svc.Create(context.Background(), actor, newKegiatanRequest(), []storage.Upload{
		jpegUpload("ok.jpg"),
		storage.NewUpload("doc.pdf", "application/pdf", []byte("%PDF-1.4")),
	})
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Contains(t, service.MessageOf(err), "Invalid file type")
	assert.Empty(t, env.files(t, storage.BucketKegiatan), "already stored files are rolled back")
}

func TestKegiatanService_UpdatePhotoDiff(t *testing.T) {
	svc, env, actor := newKegiatanService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, actor, newKegiatanRequest(),
		[]storage.Upload{jpegUpload("p1.jpg"), jpegUpload("p2.jpg"), jpegUpload("p3.jpg")})
	require.NoError(t, err)
	require.Len(t, created.Photos, 3)
	removed := created.Photos[0]

	updated, err := svc.Update(ctx, created.ID, &domain.UpdateKegiatanRequest{
		NamaKegiatan:  ptr("Kerja Bakti Akbar"),
		RemovedPhotos: []uuid.UUID{removed.ID, uuid.New()},
	}, []storage.Upload{pngUpload("p4.png")})
	require.NoError(t, err)

	assert.Equal(t, "Kerja Bakti Akbar", updated.NamaKegiatan)
	require.Len(t, updated.Photos, 3)
	assert.NotContains(t, photoIDs(updated.Photos), removed.ID)
	assert.False(t, env.fileExists(storage.BucketKegiatan, removed.PhotoName), "removed file deleted")
	assert.Len(t, env.files(t, storage.BucketKegiatan), 3)
}

func TestKegiatanService_UpdateWithoutPhotoChangesKeepsPhotos(t *testing.T) {
	svc, _, actor := newKegiatanService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, actor, newKegiatanRequest(), []storage.Upload{jpegUpload("p1.jpg")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &domain.UpdateKegiatanRequest{IsActive: ptr(false)}, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, photoIDs(created.Photos), photoIDs(updated.Photos))

	_, err = svc.GetByID(ctx, created.ID, domain.OnlyActive)
	assert.ErrorIs(t, err, service.ErrNotFound)

	inactive, err := svc.List(ctx, domain.OnlyInactive)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)
}

func TestKegiatanService_UpdateCannotRemoveLastPhoto(t *testing.T) {
	svc, env, actor := newKegiatanService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, actor, newKegiatanRequest(), []storage.Upload{jpegUpload("only.jpg")})
	require.NoError(t, err)
	only := created.Photos[0]

	_, err = svc.Update(ctx, created.ID, &domain.UpdateKegiatanRequest{
		NamaKegiatan:  ptr("Tidak Boleh"),
		RemovedPhotos: []uuid.UUID{only.ID},
	}, nil)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Equal(t, "At least 1 photo is required", service.MessageOf(err))

	got, err := svc.GetByID(ctx, created.ID, domain.AllRecords)
	require.NoError(t, err)
	assert.Equal(t, "Kerja Bakti", got.NamaKegiatan, "nothing written")
	require.Len(t, got.Photos, 1)
	assert.True(t, env.fileExists(storage.BucketKegiatan, only.PhotoName))

	// replacing the last photo is allowed
	replaced, err := svc.Update(ctx, created.ID, &domain.UpdateKegiatanRequest{
		RemovedPhotos: []uuid.UUID{only.ID},
	}, []storage.Upload{pngUpload("new.png")})
	require.NoError(t, err)
	require.Len(t, replaced.Photos, 1)
	assert.NotEqual(t, only.ID, replaced.Photos[0].ID)
	assert.False(t, env.fileExists(storage.BucketKegiatan, only.PhotoName))
}

func TestKegiatanService_RemovingAnotherActivitysPhotoIsIgnored(t *testing.T) {
	svc, env, actor := newKegiatanService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, actor, newKegiatanRequest(), []storage.Upload{jpegUpload("a.jpg")})
	require.NoError(t, err)
	second, err := svc.Create(ctx, actor, newKegiatanRequest(), []storage.Upload{jpegUpload("b.jpg")})
	require.NoError(t, err)
	foreign := second.Photos[0]

	updated, err := svc.Update(ctx, first.ID, &domain.UpdateKegiatanRequest{
		RemovedPhotos: []uuid.UUID{foreign.ID},
	}, []storage.Upload{jpegUpload("c.jpg")})
	require.NoError(t, err)
	assert.Len(t, updated.Photos, 2)

	other, err := svc.GetByID(ctx, second.ID, domain.AllRecords)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{foreign.ID}, photoIDs(other.Photos))
	assert.True(t, env.fileExists(storage.BucketKegiatan, foreign.PhotoName))
}

func TestKegiatanService_UpdateMissing(t *testing.T) {
	svc, env, _ := newKegiatanService(t)

	_, err := svc.Update(context.Background(), uuid.New(), &domain.UpdateKegiatanRequest{}, []storage.Upload{jpegUpload("x.jpg")})
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Equal(t, "Kegiatan not found", service.MessageOf(err))
	assert.Empty(t, env.files(t, storage.BucketKegiatan))
}
