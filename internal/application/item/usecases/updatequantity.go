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

type UpdateQuantityCommand struct {
	ActorID  string
	ItemID   uint
	Quantity int

	// Action overrides the audit action tag, used by the bulk path to tag
	// per-row entries. Empty means UPDATE_QUANTITY.
	Action string
}

type UpdateQuantityUseCase struct {
	itemRepo          item.Repository
	recorder          *appaudit.Recorder
	lowStockThreshold int
	logger            logger.Interface
}

func NewUpdateQuantityUseCase(
	itemRepo item.Repository,
	recorder *appaudit.Recorder,
	lowStockThreshold int,
	logger logger.Interface,
) *UpdateQuantityUseCase {
	return &UpdateQuantityUseCase{
		itemRepo:          itemRepo,
		recorder:          recorder,
		lowStockThreshold: lowStockThreshold,
		logger:            logger,
	}
}

func (uc *UpdateQuantityUseCase) Execute(ctx context.Context, cmd UpdateQuantityCommand) (*dto.ItemDTO, error) {
	if cmd.Quantity < 0 {
		return nil, errors.NewValidationError("quantity cannot be negative")
	}

	prev, updated, err := uc.itemRepo.UpdateQuantity(ctx, cmd.ItemID, cmd.Quantity)
	if err != nil {
		return nil, err
	}

	action := cmd.Action
	if action == "" {
		action = audit.ActionUpdateQuantity
	}

	result := dto.FromDomain(updated)

	if err := uc.recorder.Record(ctx, &audit.Entry{
		ActorID:   cmd.ActorID,
		Action:    action,
		TableName: constants.TableItems,
		RecordID:  strconv.FormatUint(uint64(updated.ID), 10),
		OldValues: prev.Snapshot(),
		NewValues: updated.Snapshot(),
	}); err != nil {
		return result, err
	}

	maybeRecordLowStock(ctx, uc.recorder, cmd.ActorID, prev, updated, uc.lowStockThreshold)

	uc.logger.Infow("item quantity updated",
		"item_id", updated.ID,
		"old_quantity", prev.Quantity,
		"new_quantity", updated.Quantity,
		"actor_id", cmd.ActorID)

	return result, nil
}
