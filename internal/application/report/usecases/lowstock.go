package usecases

import (
	"context"
	"fmt"

	"stockward/internal/application/item/dto"
	"stockward/internal/domain/item"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

type LowStockQuery struct {
	// Threshold overrides the configured default when positive.
	Threshold int
}

type LowStockResult struct {
	Threshold int            `json:"threshold"`
	Count     int            `json:"count"`
	Items     []*dto.ItemDTO `json:"items"`
}

type LowStockUseCase struct {
	itemRepo         item.Repository
	defaultThreshold int
	logger           logger.Interface
}

func NewLowStockUseCase(itemRepo item.Repository, defaultThreshold int, logger logger.Interface) *LowStockUseCase {
	return &LowStockUseCase{
		itemRepo:         itemRepo,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

func (uc *LowStockUseCase) Execute(ctx context.Context, query LowStockQuery) (*LowStockResult, error) {
	threshold := query.Threshold
	if threshold == 0 {
		threshold = uc.defaultThreshold
	}
	if threshold < 0 {
		return nil, errors.NewValidationError("threshold cannot be negative")
	}

	items, err := uc.itemRepo.ListBelowQuantity(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}

	return &LowStockResult{
		Threshold: threshold,
		Count:     len(items),
		Items:     dto.FromDomainList(items),
	}, nil
}
