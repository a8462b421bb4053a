package usecases

import (
	"context"
	"fmt"

	"stockward/internal/application/item/dto"
	"stockward/internal/domain/item"
	"stockward/internal/shared/logger"
)

type ListItemsUseCase struct {
	itemRepo item.Repository
	logger   logger.Interface
}

func NewListItemsUseCase(itemRepo item.Repository, logger logger.Interface) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context) ([]*dto.ItemDTO, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return dto.FromDomainList(items), nil
}
