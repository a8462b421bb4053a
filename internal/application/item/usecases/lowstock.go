package usecases

import (
	"context"
	"strconv"

	appaudit "stockward/internal/application/audit"
	"stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/shared/constants"
)

// maybeRecordLowStock appends a supplemental alert entry when a quantity
// change crosses the low stock threshold from above. Crossings are
// detected on the transition only, so an item that stays below threshold
// does not re-trigger on every update.
func maybeRecordLowStock(ctx context.Context, recorder *appaudit.Recorder, actorID string, prev, updated *item.Item, threshold int) {
	if prev == nil || updated == nil {
		return
	}
	if prev.Quantity < threshold || updated.Quantity >= threshold {
		return
	}

	recorder.RecordBestEffort(ctx, &audit.Entry{
		ActorID:   actorID,
		Action:    audit.ActionLowStockTriggered,
		TableName: constants.TableItems,
		RecordID:  strconv.FormatUint(uint64(updated.ID), 10),
		NewValues: map[string]any{
			"item_id":   updated.ID,
			"name":      updated.Name,
			"quantity":  updated.Quantity,
			"threshold": threshold,
		},
	})
}
