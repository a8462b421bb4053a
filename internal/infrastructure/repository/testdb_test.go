package repository

import (
	"testing"

	"gorm.io/gorm"

	"stockward/internal/infrastructure/persistence/testutil"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.NewTestDB(t)
}
