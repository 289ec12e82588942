package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const healthCheckTimeout = 3 * time.Second

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.ConnectionString()), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// GormConfig is the gorm configuration shared by the server and tests.
// TranslateError turns driver unique and foreign key violations into
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// AutoMigrate creates missing tables and columns. Deployed databases are
// migrated with cmd/migrate instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Testimoni{},
		&domain.Kegiatan{},
		&domain.PhotoKegiatan{},
		&domain.Laporan{},
		&domain.DetailLaporan{},
		&domain.PhotoLaporan{},
		&domain.Jabatan{},
		&domain.Karyawan{},
	)
}

// HealthCheck pings the database
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// HealthCheckWithStats pings the database and returns its pool statistics
func HealthCheckWithStats(ctx context.Context, db *gorm.DB) (sql.DBStats, error) {
	if err := HealthCheck(ctx, db); err != nil {
		return sql.DBStats{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return sql.DBStats{}, fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Stats(), nil
}
