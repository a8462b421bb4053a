package usecases

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appaudit "stockward/internal/application/audit"
	domainaudit "stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/infrastructure/persistence/testutil"
	"stockward/internal/infrastructure/repository"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/logger"
)

type fixture struct {
	db        *gorm.DB
	itemRepo  item.Repository
	auditRepo domainaudit.Repository
	recorder  *appaudit.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	log := logger.NewLogger()
	auditRepo := repository.NewAuditLogRepository(db, log)

	return &fixture{
		db:        db,
		itemRepo:  repository.NewItemRepository(db, log),
		auditRepo: auditRepo,
		recorder:  appaudit.NewRecorder(auditRepo, log),
	}
}

func (f *fixture) createItem(t *testing.T, name string, quantity int, price float64) *item.Item {
	t.Helper()
	it, err := item.New(name, quantity, price, "")
	require.NoError(t, err)
	require.NoError(t, f.itemRepo.Create(context.Background(), it))
	return it
}

func (f *fixture) auditFor(t *testing.T, itemID uint, actions ...string) []*domainaudit.Entry {
	t.Helper()
	entries, err := f.auditRepo.ListForRecord(
		context.Background(),
		constants.TableItems,
		strconv.FormatUint(uint64(itemID), 10),
		actions,
	)
	require.NoError(t, err)
	return entries
}
