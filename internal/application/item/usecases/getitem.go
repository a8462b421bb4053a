package usecases

import (
	"context"

	"stockward/internal/application/item/dto"
	"stockward/internal/domain/item"
	"stockward/internal/shared/logger"
)

type GetItemQuery struct {
	ItemID uint
}

type GetItemUseCase struct {
	itemRepo item.Repository
	logger   logger.Interface
}

func NewGetItemUseCase(itemRepo item.Repository, logger logger.Interface) *GetItemUseCase {
	return &GetItemUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *GetItemUseCase) Execute(ctx context.Context, query GetItemQuery) (*dto.ItemDTO, error) {
	it, err := uc.itemRepo.GetByID(ctx, query.ItemID)
	if err != nil {
		return nil, err
	}
	return dto.FromDomain(it), nil
}
