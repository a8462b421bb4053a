package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/logger"
)

type ItemTrendsQuery struct {
	ItemID uint
}

type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Quantity  int       `json:"quantity"`
}

type ItemTrendsResult struct {
	ItemID   uint         `json:"item_id"`
	ItemName string       `json:"item_name"`
	Points   []TrendPoint `json:"points"`
}

type ItemTrendsUseCase struct {
	itemRepo  item.Repository
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewItemTrendsUseCase(
	itemRepo item.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *ItemTrendsUseCase {
	return &ItemTrendsUseCase{
		itemRepo:  itemRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Execute reconstructs an item's quantity history from its audit trail.
// Points are chronological; entries sharing a timestamp collapse to the
// last one. An item with no quantity history yields a single point at
// its creation time carrying the current quantity.
func (uc *ItemTrendsUseCase) Execute(ctx context.Context, query ItemTrendsQuery) (*ItemTrendsResult, error) {
	it, err := uc.itemRepo.GetByID(ctx, query.ItemID)
	if err != nil {
		return nil, err
	}

	recordID := strconv.FormatUint(uint64(query.ItemID), 10)
	entries, err := uc.auditRepo.ListForRecord(ctx, constants.TableItems, recordID, audit.QuantityActions)
	if err != nil {
		return nil, fmt.Errorf("failed to load quantity history: %w", err)
	}

	points := make([]TrendPoint, 0, len(entries))
	for _, entry := range entries {
		quantity, ok := quantityFromValues(entry.NewValues)
		if !ok {
			continue
		}
		point := TrendPoint{Timestamp: entry.CreatedAt, Quantity: quantity}
		if n := len(points); n > 0 && points[n-1].Timestamp.Equal(point.Timestamp) {
			points[n-1] = point
			continue
		}
		points = append(points, point)
	}

	if len(points) == 0 {
		points = append(points, TrendPoint{Timestamp: it.CreatedAt, Quantity: it.Quantity})
	}

	return &ItemTrendsResult{
		ItemID:   it.ID,
		ItemName: it.Name,
		Points:   points,
	}, nil
}

// quantityFromValues extracts the quantity field from an audit snapshot.
// JSON round-tripping turns numbers into float64 or json.Number depending
// on the decoder, so both are handled.
func quantityFromValues(values map[string]any) (int, bool) {
	raw, ok := values["quantity"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
