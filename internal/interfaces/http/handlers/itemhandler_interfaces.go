package handlers

import (
	"context"

	"stockward/internal/application/item/dto"
	itemusecases "stockward/internal/application/item/usecases"
	reportusecases "stockward/internal/application/report/usecases"
)

// Use case contracts consumed by ItemHandler, kept narrow so tests can
// substitute mocks.

type CreateItemExecutor interface {
	Execute(ctx context.Context, cmd itemusecases.CreateItemCommand) (*dto.ItemDTO, error)
}

type GetItemExecutor interface {
	Execute(ctx context.Context, query itemusecases.GetItemQuery) (*dto.ItemDTO, error)
}

type ListItemsExecutor interface {
	Execute(ctx context.Context) ([]*dto.ItemDTO, error)
}

type UpdateItemExecutor interface {
	Execute(ctx context.Context, cmd itemusecases.UpdateItemCommand) (*dto.ItemDTO, error)
}

type UpdateQuantityExecutor interface {
	Execute(ctx context.Context, cmd itemusecases.UpdateQuantityCommand) (*dto.ItemDTO, error)
}

type DeleteItemExecutor interface {
	Execute(ctx context.Context, cmd itemusecases.DeleteItemCommand) error
}

type BulkUpdateQuantityExecutor interface {
	Execute(ctx context.Context, cmd itemusecases.BulkUpdateQuantityCommand) (*itemusecases.BulkUpdateResult, error)
}

type ItemTrendsExecutor interface {
	Execute(ctx context.Context, query reportusecases.ItemTrendsQuery) (*reportusecases.ItemTrendsResult, error)
}
