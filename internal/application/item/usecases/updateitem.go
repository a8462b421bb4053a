package usecases

import (
	"context"
	"strconv"

	appaudit "stockward/internal/application/audit"
	"stockward/internal/application/item/dto"
	"stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

type UpdateItemCommand struct {
	ActorID string
	ItemID  uint
	Fields  item.UpdateFields
}

type UpdateItemUseCase struct {
	itemRepo          item.Repository
	recorder          *appaudit.Recorder
	lowStockThreshold int
	logger            logger.Interface
}

func NewUpdateItemUseCase(
	itemRepo item.Repository,
	recorder *appaudit.Recorder,
	lowStockThreshold int,
	logger logger.Interface,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		itemRepo:          itemRepo,
		recorder:          recorder,
		lowStockThreshold: lowStockThreshold,
		logger:            logger,
	}
}

func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*dto.ItemDTO, error) {
	if cmd.Fields.Empty() {
		return nil, errors.NewValidationError("no fields to update")
	}
	if err := cmd.Fields.Validate(); err != nil {
		return nil, err
	}

	prev, updated, err := uc.itemRepo.Update(ctx, cmd.ItemID, cmd.Fields)
	if err != nil {
		return nil, err
	}

	result := dto.FromDomain(updated)
	recordID := strconv.FormatUint(uint64(updated.ID), 10)

	if err := uc.recorder.Record(ctx, &audit.Entry{
		ActorID:   cmd.ActorID,
		Action:    audit.ActionUpdateItem,
		TableName: constants.TableItems,
		RecordID:  recordID,
		OldValues: prev.Snapshot(),
		NewValues: updated.Snapshot(),
	}); err != nil {
		return result, err
	}

	maybeRecordLowStock(ctx, uc.recorder, cmd.ActorID, prev, updated, uc.lowStockThreshold)

	uc.logger.Infow("item updated", "item_id", updated.ID, "actor_id", cmd.ActorID)

	return result, nil
}
