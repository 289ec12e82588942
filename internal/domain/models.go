package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the id and timestamps shared by every table.
// Ids are generated in BeforeCreate so inserts work on any SQL dialect.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// User is an account that can authenticate and own records.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Password string `gorm:"type:varchar(255);not null"`
	IsActive bool   `gorm:"not null"`
}

func (User) TableName() string { return "tb_users" }

// Testimoni is a customer testimonial.
type Testimoni struct {
	BaseModel
	NamaTester string    `gorm:"column:nama_tester;type:varchar(100);not null"`
	Testimoni  string    `gorm:"column:testimoni;type:varchar(225);not null;uniqueIndex"`
	IsActive   bool      `gorm:"not null"`
	CreatedBy  uuid.UUID `gorm:"column:created_by;type:uuid;not null;index"`
}

func (Testimoni) TableName() string { return "testimoni" }

// Kegiatan is an activity aggregate root; it owns its photos.
type Kegiatan struct {
	BaseModel
	NamaKegiatan     string          `gorm:"column:nama_kegiatan;type:varchar(100);not null"`
	DeskripsiSingkat string          `gorm:"column:deskripsi_singkat;type:varchar(225);not null"`
	TanggalKegiatan  time.Time       `gorm:"column:tanggal_kegiatan;not null"`
	LokasiKegiatan   string          `gorm:"column:lokasi_kegiatan;type:varchar(100);not null"`
	IsActive         bool            `gorm:"not null"`
	CreatedBy        uuid.UUID       `gorm:"column:created_by;type:uuid;not null;index"`
	Photos           []PhotoKegiatan `gorm:"foreignKey:IDKegiatan;constraint:OnDelete:CASCADE"`
}

func (Kegiatan) TableName() string { return "tb_kegiatan" }

// PhotoKegiatan is one stored photo of a Kegiatan.
type PhotoKegiatan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IDKegiatan uuid.UUID `gorm:"column:id_kegiatan;type:uuid;not null;index"`
	PhotoName  string    `gorm:"column:photo_name;type:varchar(255);not null"`
	URL        string    `gorm:"column:url;type:varchar(255);not null"`
}

func (PhotoKegiatan) TableName() string { return "tb_photo_kegiatan" }

func (p *PhotoKegiatan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Laporan is a project report aggregate root with one detail row and photos.
type Laporan struct {
	BaseModel
	NamaProyek       string         `gorm:"column:nama_proyek;type:varchar(100);not null"`
	DeskripsiSingkat string         `gorm:"column:deskripsi_singkat;type:varchar(225);not null"`
	IsActive         bool           `gorm:"not null"`
	CreatedBy        uuid.UUID      `gorm:"column:created_by;type:uuid;not null;index"`
	Detail           *DetailLaporan `gorm:"foreignKey:IDLaporan;constraint:OnDelete:CASCADE"`
	Photos           []PhotoLaporan `gorm:"foreignKey:IDLaporan;constraint:OnDelete:CASCADE"`
}

func (Laporan) TableName() string { return "tb_laporan" }

// DetailLaporan holds the long-form fields of a Laporan.
type DetailLaporan struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	IDLaporan       uuid.UUID `gorm:"column:id_laporan;type:uuid;not null;index"`
	DeskripsiDetail string    `gorm:"column:deskripsi_detail;type:text;not null"`
	TanggalMulai    time.Time `gorm:"column:tanggal_mulai;not null"`
	TanggalSelesai  time.Time `gorm:"column:tanggal_selesai;not null"`
	Lokasi          string    `gorm:"column:lokasi;type:varchar(255);not null"`
	Client          string    `gorm:"column:client;type:varchar(255);not null"`
	Pelayanan       string    `gorm:"column:pelayanan;type:varchar(255);not null"`
	Industri        string    `gorm:"column:industri;type:varchar(255);not null"`
}

func (DetailLaporan) TableName() string { return "tb_detail_laporan" }

func (d *DetailLaporan) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// PhotoLaporan is one stored photo of a Laporan.
type PhotoLaporan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IDLaporan uuid.UUID `gorm:"column:id_laporan;type:uuid;not null;index"`
	PhotoName string    `gorm:"column:photo_name;type:varchar(255);not null"`
	URL       string    `gorm:"column:url;type:varchar(255);not null"`
}

func (PhotoLaporan) TableName() string { return "tb_photo_laporan" }

func (p *PhotoLaporan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Jabatan is a job position. Deleting one is restricted while Karyawan reference it.
type Jabatan struct {
	BaseModel
	NamaJabatan string    `gorm:"column:nama_jabatan;type:varchar(100);not null"`
	Urutan      int       `gorm:"column:urutan;not null;uniqueIndex"`
	IsActive    bool      `gorm:"not null"`
	CreatedBy   uuid.UUID `gorm:"column:created_by;type:uuid;not null;index"`
}

func (Jabatan) TableName() string { return "tb_jabatan" }

// Karyawan is an employee record with a single photo.
type Karyawan struct {
	BaseModel
	NamaKaryawan string    `gorm:"column:nama_karyawan;type:varchar(100);not null"`
	NoTelepon    string    `gorm:"column:no_telepon;type:varchar(15);not null"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	TanggalMasuk time.Time `gorm:"column:tanggal_masuk;type:date;not null"`
	IDJabatan    uuid.UUID `gorm:"column:id_jabatan;type:uuid;not null;index"`
	PhotoURL     string    `gorm:"column:photo_url;type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedBy    uuid.UUID `gorm:"column:created_by;type:uuid;not null;index"`
	Jabatan      *Jabatan  `gorm:"foreignKey:IDJabatan;constraint:OnDelete:RESTRICT"`
}

func (Karyawan) TableName() string { return "tb_karyawan" }

// ActiveFilter selects rows by their is_active flag.
type ActiveFilter int

const (
	// OnlyActive is the default for every list and get operation
	OnlyActive ActiveFilter = iota
	OnlyInactive
	AllRecords
)
