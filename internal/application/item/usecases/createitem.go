package usecases

import (
	"context"
	"fmt"
	"strconv"

	appaudit "stockward/internal/application/audit"
	"stockward/internal/application/item/dto"
	"stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/logger"
)

type CreateItemCommand struct {
	ActorID  string
	Name     string
	Quantity int
	Price    float64
	Category string
}

type CreateItemUseCase struct {
	itemRepo item.Repository
	recorder *appaudit.Recorder
	logger   logger.Interface
}

func NewCreateItemUseCase(
	itemRepo item.Repository,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo: itemRepo,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*dto.ItemDTO, error) {
	newItem, err := item.New(cmd.Name, cmd.Quantity, cmd.Price, cmd.Category)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepo.Create(ctx, newItem); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	result := dto.FromDomain(newItem)

	if err := uc.recorder.Record(ctx, &audit.Entry{
		ActorID:   cmd.ActorID,
		Action:    audit.ActionCreateItem,
		TableName: constants.TableItems,
		RecordID:  strconv.FormatUint(uint64(newItem.ID), 10),
		NewValues: newItem.Snapshot(),
	}); err != nil {
		return result, err
	}

	uc.logger.Infow("item created", "item_id", newItem.ID, "name", newItem.Name, "actor_id", cmd.ActorID)

	return result, nil
}
