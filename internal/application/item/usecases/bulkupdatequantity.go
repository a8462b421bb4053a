package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	appaudit "stockward/internal/application/audit"
	"stockward/internal/domain/audit"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

type BulkUpdateQuantityCommand struct {
	ActorID string
	Reader  io.Reader
}

// BulkUpdateResult summarizes a bulk quantity run. Rows are independent;
// a rejected row never rolls back the rows before or after it.
type BulkUpdateResult struct {
	TotalRows    int      `json:"total_rows"`
	UpdatedCount int      `json:"updated_count"`
	UpdatedIDs   []uint   `json:"updated_ids"`
	Errors       []string `json:"errors"`
}

type BulkUpdateQuantityUseCase struct {
	updateQuantity *UpdateQuantityUseCase
	recorder       *appaudit.Recorder
	logger         logger.Interface
}

func NewBulkUpdateQuantityUseCase(
	updateQuantity *UpdateQuantityUseCase,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *BulkUpdateQuantityUseCase {
	return &BulkUpdateQuantityUseCase{
		updateQuantity: updateQuantity,
		recorder:       recorder,
		logger:         logger,
	}
}

// Execute applies a CSV of quantity updates row by row in file order.
// Each accepted row commits and audits on its own; rejected rows are
// reported with their line number and skipped. Duplicate item ids are
// applied in order, so the last row for an id wins. A cancelled context
// stops between rows and the result covers only the rows processed
// before cancellation.
func (uc *BulkUpdateQuantityUseCase) Execute(ctx context.Context, cmd BulkUpdateQuantityCommand) (*BulkUpdateResult, error) {
	reader := csv.NewReader(cmd.Reader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewValidationError("csv file is empty or unreadable")
	}

	idCol, qtyCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case constants.BulkHeaderItemID:
			idCol = i
		case constants.BulkHeaderQuantity:
			qtyCol = i
		}
	}
	if idCol < 0 || qtyCol < 0 {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"csv header must contain %q and %q columns",
			constants.BulkHeaderItemID, constants.BulkHeaderQuantity))
	}

	result := &BulkUpdateResult{
		UpdatedIDs: []uint{},
		Errors:     []string{},
	}

	line := 1
	cancelled := false
	for {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.TotalRows++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: malformed csv record", line))
			continue
		}

		result.TotalRows++

		if idCol >= len(record) || qtyCol >= len(record) {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing columns", line))
			continue
		}

		itemID, err := strconv.ParseUint(strings.TrimSpace(record[idCol]), 10, 32)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid item id %q", line, record[idCol]))
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(record[qtyCol]))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid quantity %q", line, record[qtyCol]))
			continue
		}

		_, err = uc.updateQuantity.Execute(ctx, UpdateQuantityCommand{
			ActorID:  cmd.ActorID,
			ItemID:   uint(itemID),
			Quantity: quantity,
			Action:   audit.ActionBulkUpdateQuantity,
		})
		if err != nil {
			if errors.IsAuditWriteError(err) {
				// The row committed; count it, but surface the audit gap.
				result.UpdatedCount++
				result.UpdatedIDs = append(result.UpdatedIDs, uint(itemID))
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", line, errors.GetAppError(err).Message))
				continue
			}
			if appErr := errors.GetAppError(err); appErr != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", line, appErr.Message))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: update failed", line))
			}
			continue
		}

		result.UpdatedCount++
		result.UpdatedIDs = append(result.UpdatedIDs, uint(itemID))
	}

	if !cancelled && result.TotalRows == 0 {
		return nil, errors.NewValidationError("csv file contains no data rows")
	}

	uc.recorder.RecordBestEffort(ctx, &audit.Entry{
		ActorID:   cmd.ActorID,
		Action:    audit.ActionBulkUpdateQuantity,
		TableName: constants.TableItems,
		NewValues: map[string]any{
			"total_rows":    result.TotalRows,
			"updated_count": result.UpdatedCount,
			"error_count":   len(result.Errors),
		},
	})

	uc.logger.Infow("bulk quantity update finished",
		"actor_id", cmd.ActorID,
		"total_rows", result.TotalRows,
		"updated_count", result.UpdatedCount,
		"error_count", len(result.Errors))

	return result, nil
}
