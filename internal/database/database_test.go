package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/profilkantor/profile-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := database.GormConfig()
	cfg.DisableAutomaticPing = true
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	require.NoError(t, err)

	return db, mock
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()

		assert.NoError(t, database.HealthCheck(context.Background(), db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		err := database.HealthCheck(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database ping failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHealthCheckWithStats(t *testing.T) {
	t.Run("returns pool stats", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()

		stats, err := database.HealthCheckWithStats(context.Background(), db)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.OpenConnections, 0)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping failure returns empty stats", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("timeout"))

		stats, err := database.HealthCheckWithStats(context.Background(), db)
		require.Error(t, err)
		assert.Zero(t, stats.MaxOpenConnections)
	})
}

func TestGormConfigTranslatesErrors(t *testing.T) {
	cfg := database.GormConfig()
	assert.True(t, cfg.TranslateError)
	assert.Equal(t, "UTC", cfg.NowFunc().Location().String())
}
