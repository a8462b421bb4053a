package usecases

import (
	"context"
	"strconv"

	appaudit "stockward/internal/application/audit"
	"stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/logger"
)

type DeleteItemCommand struct {
	ActorID string
	ItemID  uint
}

type DeleteItemUseCase struct {
	itemRepo item.Repository
	recorder *appaudit.Recorder
	logger   logger.Interface
}

func NewDeleteItemUseCase(
	itemRepo item.Repository,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		itemRepo: itemRepo,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *DeleteItemUseCase) Execute(ctx context.Context, cmd DeleteItemCommand) error {
	prev, err := uc.itemRepo.Delete(ctx, cmd.ItemID)
	if err != nil {
		return err
	}

	if err := uc.recorder.Record(ctx, &audit.Entry{
		ActorID:   cmd.ActorID,
		Action:    audit.ActionDeleteItem,
		TableName: constants.TableItems,
		RecordID:  strconv.FormatUint(uint64(cmd.ItemID), 10),
		OldValues: prev.Snapshot(),
	}); err != nil {
		return err
	}

	uc.logger.Infow("item deleted", "item_id", cmd.ItemID, "actor_id", cmd.ActorID)

	return nil
}
