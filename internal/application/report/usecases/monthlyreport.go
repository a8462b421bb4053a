package usecases

import (
	"context"
	"fmt"
	"math"
	"time"

	appaudit "stockward/internal/application/audit"
	"stockward/internal/application/item/dto"
	"stockward/internal/domain/audit"
	"stockward/internal/domain/item"
	"stockward/internal/shared/biztime"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

type MonthlyReportQuery struct {
	ActorID string

	// Year and Month label the report period. Both zero means the current
	// month. The report itself is a live snapshot of current inventory.
	Year  int
	Month int
}

type MonthlyReportResult struct {
	Period        string         `json:"period"`
	GeneratedAt   time.Time      `json:"generated_at"`
	TotalItems    int            `json:"total_items"`
	TotalQuantity int            `json:"total_quantity"`
	TotalValue    float64        `json:"total_value"`
	LowStockCount int            `json:"low_stock_count"`
	LowStockItems []*dto.ItemDTO `json:"low_stock_items"`
	Items         []*dto.ItemDTO `json:"items"`
}

type MonthlyReportUseCase struct {
	itemRepo          item.Repository
	recorder          *appaudit.Recorder
	lowStockThreshold int
	logger            logger.Interface
}

func NewMonthlyReportUseCase(
	itemRepo item.Repository,
	recorder *appaudit.Recorder,
	lowStockThreshold int,
	logger logger.Interface,
) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{
		itemRepo:          itemRepo,
		recorder:          recorder,
		lowStockThreshold: lowStockThreshold,
		logger:            logger,
	}
}

func (uc *MonthlyReportUseCase) Execute(ctx context.Context, query MonthlyReportQuery) (*MonthlyReportResult, error) {
	now := biztime.NowUTC()

	year, month := query.Year, query.Month
	if year == 0 && month == 0 {
		year, month = now.Year(), int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, errors.NewValidationError("month must be between 1 and 12")
	}
	if year < 2000 || year > now.Year()+1 {
		return nil, errors.NewValidationError("year is out of range")
	}

	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for report: %w", err)
	}

	result := &MonthlyReportResult{
		Period:        biztime.PeriodLabel(year, time.Month(month)),
		GeneratedAt:   now,
		TotalItems:    len(items),
		LowStockItems: []*dto.ItemDTO{},
		Items:         dto.FromDomainList(items),
	}

	for _, it := range items {
		result.TotalQuantity += it.Quantity
		result.TotalValue += it.Value()
		if it.Quantity < uc.lowStockThreshold {
			result.LowStockItems = append(result.LowStockItems, dto.FromDomain(it))
		}
	}
	result.LowStockCount = len(result.LowStockItems)
	result.TotalValue = math.Round(result.TotalValue*100) / 100

	uc.recorder.RecordBestEffort(ctx, &audit.Entry{
		ActorID: query.ActorID,
		Action:  audit.ActionGenerateMonthlyReport,
		NewValues: map[string]any{
			"period":          result.Period,
			"total_items":     result.TotalItems,
			"total_quantity":  result.TotalQuantity,
			"total_value":     result.TotalValue,
			"low_stock_count": result.LowStockCount,
		},
	})

	uc.logger.Infow("monthly report generated",
		"period", result.Period,
		"total_items", result.TotalItems,
		"actor_id", query.ActorID)

	return result, nil
}
