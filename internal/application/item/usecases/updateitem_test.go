package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

func TestUpdateItem_PartialUpdateAudited(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateItemUseCase(f.itemRepo, f.recorder, constants.DefaultLowStockThreshold, logger.NewLogger())

	created := f.createItem(t, "Widget", 100, 2.5)

	newName := "Gadget"
	result, err := uc.Execute(context.Background(), UpdateItemCommand{
		ActorID: "admin-1",
		ItemID:  created.ID,
		Fields:  item.UpdateFields{Name: &newName},
	})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", result.Name)
	assert.Equal(t, 100, result.Quantity)

	entries := f.auditFor(t, created.ID, audit.ActionUpdateItem)
	require.Len(t, entries, 1)
	assert.Equal(t, "Widget", entries[0].OldValues["name"])
	assert.Equal(t, "Gadget", entries[0].NewValues["name"])
}

func TestUpdateItem_EmptyFieldsRejected(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateItemUseCase(f.itemRepo, f.recorder, constants.DefaultLowStockThreshold, logger.NewLogger())

	created := f.createItem(t, "Widget", 100, 2.5)

	_, err := uc.Execute(context.Background(), UpdateItemCommand{
		ActorID: "admin-1",
		ItemID:  created.ID,
		Fields:  item.UpdateFields{},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteItem_AuditsFinalState(t *testing.T) {
	f := newFixture(t)
	uc := NewDeleteItemUseCase(f.itemRepo, f.recorder, logger.NewLogger())
	ctx := context.Background()

	created := f.createItem(t, "Widget", 100, 2.5)

	require.NoError(t, uc.Execute(ctx, DeleteItemCommand{ActorID: "admin-1", ItemID: created.ID}))

	_, err := f.itemRepo.GetByID(ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))

	entries := f.auditFor(t, created.ID, audit.ActionDeleteItem)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(100), entries[0].OldValues["quantity"])
	assert.Nil(t, entries[0].NewValues)
}

func TestDeleteItem_MissingItem(t *testing.T) {
	f := newFixture(t)
	uc := NewDeleteItemUseCase(f.itemRepo, f.recorder, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteItemCommand{ActorID: "admin-1", ItemID: 777})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
