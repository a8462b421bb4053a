package usecases

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appaudit "stockward/internal/application/audit"
	domainaudit "stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/infrastructure/persistence/testutil"
	"stockward/internal/infrastructure/repository"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
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

func (f *fixture) appendQuantityAudit(t *testing.T, itemID uint, action string, quantity int) {
	t.Helper()
	require.NoError(t, f.auditRepo.Append(context.Background(), &domainaudit.Entry{
		ActorID:   "m",
		Action:    action,
		TableName: constants.TableItems,
		RecordID:  strconv.FormatUint(uint64(itemID), 10),
		NewValues: map[string]any{"quantity": quantity},
	}))
}

func TestLowStock_StrictlyBelowThreshold(t *testing.T) {
	f := newFixture(t)
	uc := NewLowStockUseCase(f.itemRepo, 10, logger.NewLogger())
	ctx := context.Background()

	f.createItem(t, "A", 5, 1)
	f.createItem(t, "B", 12, 1)
	f.createItem(t, "C", 9, 1)
	f.createItem(t, "D", 10, 1)

	result, err := uc.Execute(ctx, LowStockQuery{})
	require.NoError(t, err)

	assert.Equal(t, 10, result.Threshold)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Items, 2)
	// Quantities 5 and 9 qualify; the boundary item at 10 does not.
	assert.Equal(t, "A", result.Items[0].Name)
	assert.Equal(t, "C", result.Items[1].Name)
}

func TestLowStock_ThresholdOverride(t *testing.T) {
	f := newFixture(t)
	uc := NewLowStockUseCase(f.itemRepo, 10, logger.NewLogger())

	f.createItem(t, "A", 5, 1)
	f.createItem(t, "B", 12, 1)

	result, err := uc.Execute(context.Background(), LowStockQuery{Threshold: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, result.Threshold)
	assert.Equal(t, 2, result.Count)
}

func TestLowStock_NegativeThreshold(t *testing.T) {
	f := newFixture(t)
	uc := NewLowStockUseCase(f.itemRepo, 10, logger.NewLogger())

	_, err := uc.Execute(context.Background(), LowStockQuery{Threshold: -1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestItemTrends_ChronologicalFromAudit(t *testing.T) {
	f := newFixture(t)
	uc := NewItemTrendsUseCase(f.itemRepo, f.auditRepo, logger.NewLogger())
	ctx := context.Background()

	created := f.createItem(t, "Widget", 40, 1)
	f.appendQuantityAudit(t, created.ID, domainaudit.ActionCreateItem, 10)
	f.appendQuantityAudit(t, created.ID, domainaudit.ActionUpdateQuantity, 25)
	f.appendQuantityAudit(t, created.ID, domainaudit.ActionBulkUpdateQuantity, 18)
	f.appendQuantityAudit(t, created.ID, domainaudit.ActionUpdateItem, 40)

	result, err := uc.Execute(ctx, ItemTrendsQuery{ItemID: created.ID})
	require.NoError(t, err)

	quantities := make([]int, 0, len(result.Points))
	for _, p := range result.Points {
		quantities = append(quantities, p.Quantity)
	}
	assert.Equal(t, []int{10, 25, 18, 40}, quantities)
}

func TestItemTrends_NoHistoryFallsBackToCurrent(t *testing.T) {
	f := newFixture(t)
	uc := NewItemTrendsUseCase(f.itemRepo, f.auditRepo, logger.NewLogger())

	created := f.createItem(t, "Widget", 7, 1)

	result, err := uc.Execute(context.Background(), ItemTrendsQuery{ItemID: created.ID})
	require.NoError(t, err)
	require.Len(t, result.Points, 1)
	assert.Equal(t, 7, result.Points[0].Quantity)
	assert.True(t, result.Points[0].Timestamp.Equal(created.CreatedAt))
}

func TestItemTrends_MissingItem(t *testing.T) {
	f := newFixture(t)
	uc := NewItemTrendsUseCase(f.itemRepo, f.auditRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ItemTrendsQuery{ItemID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMonthlyReport_Totals(t *testing.T) {
	f := newFixture(t)
	uc := NewMonthlyReportUseCase(f.itemRepo, f.recorder, 10, logger.NewLogger())
	ctx := context.Background()

	f.createItem(t, "A", 5, 2)   // value 10, low stock
	f.createItem(t, "B", 20, 1)  // value 20
	f.createItem(t, "C", 3, 0.5) // value 1.5, low stock

	result, err := uc.Execute(ctx, MonthlyReportQuery{ActorID: "admin-1", Year: 2026, Month: 8})
	require.NoError(t, err)

	assert.Equal(t, "2026-08", result.Period)
	assert.Equal(t, 3, result.TotalItems)
	assert.Equal(t, 28, result.TotalQuantity)
	assert.InDelta(t, 31.5, result.TotalValue, 0.0001)
	assert.Equal(t, 2, result.LowStockCount)

	// Report generation leaves a supplemental audit entry.
	entries, _, err := f.auditRepo.List(ctx, domainaudit.ListFilter{Action: domainaudit.ActionGenerateMonthlyReport}, 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-08", entries[0].NewValues["period"])
}

func TestMonthlyReport_DefaultsToCurrentMonth(t *testing.T) {
	f := newFixture(t)
	uc := NewMonthlyReportUseCase(f.itemRepo, f.recorder, 10, logger.NewLogger())

	result, err := uc.Execute(context.Background(), MonthlyReportQuery{ActorID: "admin-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Period)
	assert.Equal(t, 0, result.TotalItems)
}

func TestMonthlyReport_InvalidMonth(t *testing.T) {
	f := newFixture(t)
	uc := NewMonthlyReportUseCase(f.itemRepo, f.recorder, 10, logger.NewLogger())

	_, err := uc.Execute(context.Background(), MonthlyReportQuery{ActorID: "a", Year: 2026, Month: 13})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
