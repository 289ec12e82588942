package domain

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs. Timestamps are ISO 8601 strings, dates are YYYY-MM-DD.

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// AuthResponseDTO is returned by register and login
type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type TestimoniDTO struct {
	ID         uuid.UUID `json:"id"`
	NamaTester string    `json:"nama_tester"`
	Testimoni  string    `json:"testimoni"`
	IsActive   bool      `json:"is_active"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// PhotoDTO is shared by kegiatan and laporan photos
type PhotoDTO struct {
	ID        uuid.UUID `json:"id"`
	PhotoName string    `json:"photo_name"`
	URL       string    `json:"url"`
}

type KegiatanDTO struct {
	ID               uuid.UUID  `json:"id"`
	NamaKegiatan     string     `json:"nama_kegiatan"`
	DeskripsiSingkat string     `json:"deskripsi_singkat"`
	TanggalKegiatan  string     `json:"tanggal_kegiatan"`
	LokasiKegiatan   string     `json:"lokasi_kegiatan"`
	IsActive         bool       `json:"is_active"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
	Photos           []PhotoDTO `json:"photos"`
}

type DetailLaporanDTO struct {
	ID              uuid.UUID `json:"id"`
	IDLaporan       uuid.UUID `json:"id_laporan"`
	DeskripsiDetail string    `json:"deskripsi_detail"`
	TanggalMulai    string    `json:"tanggal_mulai"`
	TanggalSelesai  string    `json:"tanggal_selesai"`
	Lokasi          string    `json:"lokasi"`
	Client          string    `json:"client"`
	Pelayanan       string    `json:"pelayanan"`
	Industri        string    `json:"industri"`
}

type LaporanDTO struct {
	ID               uuid.UUID         `json:"id"`
	NamaProyek       string            `json:"nama_proyek"`
	DeskripsiSingkat string            `json:"deskripsi_singkat"`
	IsActive         bool              `json:"is_active"`
	CreatedBy        uuid.UUID         `json:"created_by"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
	Detail           *DetailLaporanDTO `json:"detail"`
	Photos           []PhotoDTO        `json:"photos"`
}

type JabatanDTO struct {
	ID          uuid.UUID `json:"id"`
	NamaJabatan string    `json:"nama_jabatan"`
	Urutan      int       `json:"urutan"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type KaryawanDTO struct {
	ID           uuid.UUID   `json:"id"`
	NamaKaryawan string      `json:"nama_karyawan"`
	NoTelepon    string      `json:"no_telepon"`
	Email        string      `json:"email"`
	TanggalMasuk string      `json:"tanggal_masuk"`
	IDJabatan    uuid.UUID   `json:"id_jabatan"`
	PhotoURL     string      `json:"photo_url"`
	IsActive     bool        `json:"is_active"`
	CreatedBy    uuid.UUID   `json:"created_by"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
	Jabatan      *JabatanDTO `json:"jabatan,omitempty"`
}

// Request DTOs. JSON bodies use json tags; multipart bodies use form tags and
// are decoded by the handler package's form decoder.

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	IsActive *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	IsActive *bool   `json:"is_active"`
}

type CreateTestimoniRequest struct {
	NamaTester string `json:"nama_tester" validate:"required,max=100"`
	Testimoni  string `json:"testimoni" validate:"required,max=225"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateTestimoniRequest struct {
	NamaTester *string `json:"nama_tester" validate:"omitempty,min=1,max=100"`
	Testimoni  *string `json:"testimoni" validate:"omitempty,min=1,max=225"`
	IsActive   *bool   `json:"is_active"`
}

type CreateKegiatanRequest struct {
	NamaKegiatan     string    `form:"nama_kegiatan" validate:"required,max=100"`
	DeskripsiSingkat string    `form:"deskripsi_singkat" validate:"required,max=225"`
	TanggalKegiatan  time.Time `form:"tanggal_kegiatan" validate:"required"`
	LokasiKegiatan   string    `form:"lokasi_kegiatan" validate:"required,max=100"`
	IsActive         *bool     `form:"is_active"`
}

type UpdateKegiatanRequest struct {
	NamaKegiatan     *string     `form:"nama_kegiatan" validate:"omitempty,min=1,max=100"`
	DeskripsiSingkat *string     `form:"deskripsi_singkat" validate:"omitempty,min=1,max=225"`
	TanggalKegiatan  *time.Time  `form:"tanggal_kegiatan"`
	LokasiKegiatan   *string     `form:"lokasi_kegiatan" validate:"omitempty,min=1,max=100"`
	IsActive         *bool       `form:"is_active"`
	RemovedPhotos    []uuid.UUID `form:"removed_photos"`
}

type CreateLaporanRequest struct {
	NamaProyek       string    `form:"nama_proyek" validate:"required,max=100"`
	DeskripsiSingkat *string   `form:"deskripsi_singkat"`
	IsActive         *bool     `form:"is_active"`
	DeskripsiDetail  string    `form:"deskripsi_detail" validate:"required"`
	TanggalMulai     time.Time `form:"tanggal_mulai" validate:"required"`
	TanggalSelesai   time.Time `form:"tanggal_selesai" validate:"required,gtefield=TanggalMulai"`
	Lokasi           string    `form:"lokasi" validate:"required,max=255"`
	Client           string    `form:"client" validate:"required,max=255"`
	Pelayanan        string    `form:"pelayanan" validate:"required,max=255"`
	Industri         string    `form:"industri" validate:"required,max=255"`
}

type UpdateLaporanRequest struct {
	NamaProyek       *string     `form:"nama_proyek" validate:"omitempty,min=1,max=100"`
	IsActive         *bool       `form:"is_active"`
	DeskripsiDetail  *string     `form:"deskripsi_detail" validate:"omitempty,min=1"`
	TanggalMulai     *time.Time  `form:"tanggal_mulai"`
	TanggalSelesai   *time.Time  `form:"tanggal_selesai"`
	Lokasi           *string     `form:"lokasi" validate:"omitempty,min=1,max=255"`
	Client           *string     `form:"client" validate:"omitempty,min=1,max=255"`
	Pelayanan        *string     `form:"pelayanan" validate:"omitempty,min=1,max=255"`
	Industri         *string     `form:"industri" validate:"omitempty,min=1,max=255"`
	RemovedPhotos    []uuid.UUID `form:"removed_photos"`
}

// HasDetailChanges reports whether any detail field was supplied
func (r *UpdateLaporanRequest) HasDetailChanges() bool {
	return r.DeskripsiDetail != nil || r.TanggalMulai != nil || r.TanggalSelesai != nil ||
		r.Lokasi != nil || r.Client != nil || r.Pelayanan != nil || r.Industri != nil
}

type CreateJabatanRequest struct {
	NamaJabatan string `json:"nama_jabatan" validate:"required,max=100"`
	Urutan      *int   `json:"urutan" validate:"required,gte=0"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateJabatanRequest struct {
	NamaJabatan *string `json:"nama_jabatan" validate:"omitempty,min=1,max=100"`
	Urutan      *int    `json:"urutan" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

type CreateKaryawanRequest struct {
	NamaKaryawan string    `form:"nama_karyawan" validate:"required,max=100"`
	NoTelepon    string    `form:"no_telepon" validate:"required,max=15"`
	Email        string    `form:"email" validate:"required,email,max=255"`
	TanggalMasuk time.Time `form:"tanggal_masuk" validate:"required"`
	IDJabatan    uuid.UUID `form:"id_jabatan" validate:"required"`
	IsActive     *bool     `form:"is_active"`
}

type UpdateKaryawanRequest struct {
	NamaKaryawan *string    `form:"nama_karyawan" validate:"omitempty,min=1,max=100"`
	NoTelepon    *string    `form:"no_telepon" validate:"omitempty,min=1,max=15"`
	Email        *string    `form:"email" validate:"omitempty,email,max=255"`
	TanggalMasuk *time.Time `form:"tanggal_masuk"`
	IDJabatan    *uuid.UUID `form:"id_jabatan"`
	IsActive     *bool      `form:"is_active"`
}
