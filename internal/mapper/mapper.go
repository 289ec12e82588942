package mapper

import (
	"fmt"
	"time"

	"github.com/profilkantor/profile-api/internal/domain"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToUserDTO converts User to UserDTO. The password hash is never copied.
func ToUserDTO(user *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
}

func ToUserDTOs(users []domain.User) []domain.UserDTO {
	dtos := make([]domain.UserDTO, len(users))
	for i := range users {
		dtos[i] = ToUserDTO(&users[i])
	}
	return dtos
}

// ToTestimoniDTO converts Testimoni to TestimoniDTO
func ToTestimoniDTO(t *domain.Testimoni) domain.TestimoniDTO {
	return domain.TestimoniDTO{
		ID:         t.ID,
		NamaTester: t.NamaTester,
		Testimoni:  t.Testimoni,
		IsActive:   t.IsActive,
		CreatedBy:  t.CreatedBy,
		CreatedAt:  formatTime(t.CreatedAt),
		UpdatedAt:  formatTime(t.UpdatedAt),
	}
}

func ToTestimoniDTOs(items []domain.Testimoni) []domain.TestimoniDTO {
	dtos := make([]domain.TestimoniDTO, len(items))
	for i := range items {
		dtos[i] = ToTestimoniDTO(&items[i])
	}
	return dtos
}

// ToKegiatanDTO converts Kegiatan with its photos to KegiatanDTO
func ToKegiatanDTO(k *domain.Kegiatan) domain.KegiatanDTO {
	photos := make([]domain.PhotoDTO, len(k.Photos))
	for i, p := range k.Photos {
		photos[i] = domain.PhotoDTO{ID: p.ID, PhotoName: p.PhotoName, URL: p.URL}
	}

	return domain.KegiatanDTO{
		ID:               k.ID,
		NamaKegiatan:     k.NamaKegiatan,
		DeskripsiSingkat: k.DeskripsiSingkat,
		TanggalKegiatan:  formatTime(k.TanggalKegiatan),
		LokasiKegiatan:   k.LokasiKegiatan,
		IsActive:         k.IsActive,
		CreatedBy:        k.CreatedBy,
		CreatedAt:        formatTime(k.CreatedAt),
		UpdatedAt:        formatTime(k.UpdatedAt),
		Photos:           photos,
	}
}

func ToKegiatanDTOs(items []domain.Kegiatan) []domain.KegiatanDTO {
	dtos := make([]domain.KegiatanDTO, len(items))
	for i := range items {
		dtos[i] = ToKegiatanDTO(&items[i])
	}
	return dtos
}

// ToLaporanDTO converts Laporan to LaporanDTO; Detail stays nil when the
// report has no detail row
func ToLaporanDTO(l *domain.Laporan) domain.LaporanDTO {
	photos := make([]domain.PhotoDTO, len(l.Photos))
	for i, p := range l.Photos {
		photos[i] = domain.PhotoDTO{ID: p.ID, PhotoName: p.PhotoName, URL: p.URL}
	}

	dto := domain.LaporanDTO{
		ID:               l.ID,
		NamaProyek:       l.NamaProyek,
		DeskripsiSingkat: l.DeskripsiSingkat,
		IsActive:         l.IsActive,
		CreatedBy:        l.CreatedBy,
		CreatedAt:        formatTime(l.CreatedAt),
		UpdatedAt:        formatTime(l.UpdatedAt),
		Photos:           photos,
	}

	if d := l.Detail; d != nil {
		dto.Detail = &domain.DetailLaporanDTO{
			ID:              d.ID,
			IDLaporan:       d.IDLaporan,
			DeskripsiDetail: d.DeskripsiDetail,
			TanggalMulai:    formatTime(d.TanggalMulai),
			TanggalSelesai:  formatTime(d.TanggalSelesai),
			Lokasi:          d.Lokasi,
			Client:          d.Client,
			Pelayanan:       d.Pelayanan,
			Industri:        d.Industri,
		}
	}
	return dto
}

func ToLaporanDTOs(items []domain.Laporan) []domain.LaporanDTO {
	dtos := make([]domain.LaporanDTO, len(items))
	for i := range items {
		dtos[i] = ToLaporanDTO(&items[i])
	}
	return dtos
}

// ToJabatanDTO converts Jabatan to JabatanDTO
func ToJabatanDTO(j *domain.Jabatan) domain.JabatanDTO {
	return domain.JabatanDTO{
		ID:          j.ID,
		NamaJabatan: j.NamaJabatan,
		Urutan:      j.Urutan,
		IsActive:    j.IsActive,
		CreatedBy:   j.CreatedBy,
		CreatedAt:   formatTime(j.CreatedAt),
		UpdatedAt:   formatTime(j.UpdatedAt),
	}
}

func ToJabatanDTOs(items []domain.Jabatan) []domain.JabatanDTO {
	dtos := make([]domain.JabatanDTO, len(items))
	for i := range items {
		dtos[i] = ToJabatanDTO(&items[i])
	}
	return dtos
}

// ToKaryawanDTO converts Karyawan to KaryawanDTO, embedding the jabatan when loaded
func ToKaryawanDTO(k *domain.Karyawan) domain.KaryawanDTO {
	dto := domain.KaryawanDTO{
		ID:           k.ID,
		NamaKaryawan: k.NamaKaryawan,
		NoTelepon:    k.NoTelepon,
		Email:        k.Email,
		TanggalMasuk: k.TanggalMasuk.Format(dateLayout),
		IDJabatan:    k.IDJabatan,
		PhotoURL:     k.PhotoURL,
		IsActive:     k.IsActive,
		CreatedBy:    k.CreatedBy,
		CreatedAt:    formatTime(k.CreatedAt),
		UpdatedAt:    formatTime(k.UpdatedAt),
	}
	if k.Jabatan != nil {
		j := ToJabatanDTO(k.Jabatan)
		dto.Jabatan = &j
	}
	return dto
}

func ToKaryawanDTOs(items []domain.Karyawan) []domain.KaryawanDTO {
	dtos := make([]domain.KaryawanDTO, len(items))
	for i := range items {
		dtos[i] = ToKaryawanDTO(&items[i])
	}
	return dtos
}

// FormatError creates a formatted error message
func FormatError(entity, operation string, err error) error {
	return fmt.Errorf("failed to %s %s: %w", operation, entity, err)
}
