package service_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/repository"
	"github.com/profilkantor/profile-api/internal/service"
	"github.com/profilkantor/profile-api/internal/storage"
	"github.com/profilkantor/profile-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLaporanService(t *testing.T) (*service.LaporanService, *testEnv, uuid.UUID) {
	t.Helper()
	env := newTestEnv(t)
	actor := testutil.CreateTestUser(t, env.db, "Admin")
	svc := service.NewLaporanService(repository.NewLaporanRepository(env.db), env.photos, env.logger)
	return svc, env, actor.ID
}

func newLaporanRequest() *domain.CreateLaporanRequest {
	return &domain.CreateLaporanRequest{
		NamaProyek:      "Renovasi Gedung",
		DeskripsiDetail: "  Renovasi   gedung\nutama kantor  ",
		TanggalMulai:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		TanggalSelesai:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Lokasi:          "Jakarta",
		Client:          "PT Maju",
		Pelayanan:       "Konstruksi",
		Industri:        "Properti",
	}
}

func TestLaporanService_CreateDerivesSummary(t *testing.T) {
	svc, _, actor := newLaporanService(t)

	created, err := svc.Create(context.Background(), actor, newLaporanRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Renovasi gedung utama kantor", created.DeskripsiSingkat)
	require.NotNil(t, created.Detail)
	assert.Equal(t, "2024-01-10T00:00:00Z", created.Detail.TanggalMulai)
	assert.Equal(t, "PT Maju", created.Detail.Client)
	assert.Empty(t, created.Photos)
}

func TestLaporanService_CreateSummaryFromSuppliedText(t *testing.T) {
	svc, _, actor := newLaporanService(t)
	req := newLaporanRequest()
	req.DeskripsiSingkat = ptr("  Ringkasan   khusus ")

	created, err := svc.Create(context.Background(), actor, req, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ringkasan khusus", created.DeskripsiSingkat)

	req = newLaporanRequest()
	req.DeskripsiSingkat = ptr("   ")
	created, err = svc.Create(context.Background(), actor, req, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renovasi gedung utama kantor", created.DeskripsiSingkat, "blank summary falls back to detail")
}

func TestLaporanService_CreateLongDetailIsTruncated(t *testing.T) {
	svc, _, actor := newLaporanService(t)
	req := newLaporanRequest()
	req.DeskripsiDetail = strings.Repeat("kata ", 100)

	created, err := svc.Create(context.Background(), actor, req, []storage.Upload{jpegUpload("foto.jpg")})
	require.NoError(t, err)

	assert.LessOrEqual(t, utf8.RuneCountInString(created.DeskripsiSingkat), service.SummaryMaxLength)
	assert.True(t, strings.HasSuffix(created.DeskripsiSingkat, "…"))
	assert.Len(t, created.Photos, 1)
}

func TestLaporanService_CreateRejectsInvertedDates(t *testing.T) {
	svc, _, actor := newLaporanService(t)
	req := newLaporanRequest()
	req.TanggalSelesai = req.TanggalMulai.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), actor, req, nil)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestLaporanService_UpdateRecomputesSummaryAndPhotos(t *testing.T) {
	svc, env, actor := newLaporanService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, actor, newLaporanRequest(), []storage.Upload{jpegUpload("a.jpg"), jpegUpload("b.jpg")})
	require.NoError(t, err)
	removed := created.Photos[0]

	updated, err := svc.Update(ctx, created.ID, &domain.UpdateLaporanRequest{
		DeskripsiDetail: ptr("Detail   baru"),
		Client:          ptr("PT Baru"),
		RemovedPhotos:   []uuid.UUID{created.Photos[0].ID, created.Photos[1].ID},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Detail baru", updated.DeskripsiSingkat)
	require.NotNil(t, updated.Detail)
	assert.Equal(t, created.Detail.ID, updated.Detail.ID)
	assert.Equal(t, "PT Baru", updated.Detail.Client)
	assert.Equal(t, "Jakarta", updated.Detail.Lokasi)
	assert.Empty(t, updated.Photos, "no minimum photo rule")
	assert.False(t, env.fileExists(storage.BucketLaporan, removed.PhotoName))

	renamed, err := svc.Update(ctx, created.ID, &domain.UpdateLaporanRequest{NamaProyek: ptr("Renovasi Tahap 2")}, nil)
	require.NoError(t, err)
	assert.Equal(t, service.MakeSummary(renamed.Detail.DeskripsiDetail), renamed.DeskripsiSingkat,
		"summary stays derived from the detail on updates that do not touch it")
}

func TestLaporanService_UpdateCreatesMissingDetail(t *testing.T) {
	svc, env, actor := newLaporanService(t)
	ctx := context.Background()

	l := &domain.Laporan{NamaProyek: "Tanpa Detail", DeskripsiSingkat: "x", IsActive: true, CreatedBy: actor}
	require.NoError(t, repository.NewLaporanRepository(env.db).Create(ctx, l))

	got, err := svc.GetByID(ctx, l.ID, domain.OnlyActive)
	require.NoError(t, err)
	assert.Nil(t, got.Detail)

	updated, err := svc.Update(ctx, l.ID, &domain.UpdateLaporanRequest{Lokasi: ptr("Bandung")}, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Detail)
	assert.Equal(t, "Bandung", updated.Detail.Lokasi)
}

func TestLaporanService_UpdateRejectsInvertedMergedDates(t *testing.T) {
	svc, _, actor := newLaporanService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, actor, newLaporanRequest(), nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, &domain.UpdateLaporanRequest{
		TanggalSelesai: ptr(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
	}, nil)
	assert.ErrorIs(t, err, service.ErrValidation)

	got, err := svc.GetByID(ctx, created.ID, domain.AllRecords)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10T00:00:00Z", got.Detail.TanggalSelesai)
}

func TestLaporanService_ListFilters(t *testing.T) {
	svc, _, actor := newLaporanService(t)
	ctx := context.Background()

	active, err := svc.Create(ctx, actor, newLaporanRequest(), nil)
	require.NoError(t, err)
	req := newLaporanRequest()
	req.IsActive = ptr(false)
	_, err = svc.Create(ctx, actor, req, nil)
	require.NoError(t, err)

	items, err := svc.List(ctx, domain.OnlyActive)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, active.ID, items[0].ID)

	items, err = svc.List(ctx, domain.AllRecords)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
