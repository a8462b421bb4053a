// Package testutil provides database helpers for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"stockward/internal/infrastructure/persistence/models"
)

// NewTestDB opens an in-memory sqlite database with the full schema. The
// pool is pinned to one connection because each sqlite :memory: connection
// is a separate database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ItemModel{},
		&models.RoleAssignmentModel{},
		&models.AuditLogModel{},
	))

	return db
}
