package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockward/internal/application/report/usecases"
	"stockward/internal/interfaces/http/middleware"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
	"stockward/internal/shared/utils"
)

type LowStockExecutor interface {
	Execute(ctx context.Context, query usecases.LowStockQuery) (*usecases.LowStockResult, error)
}

type MonthlyReportExecutor interface {
	Execute(ctx context.Context, query usecases.MonthlyReportQuery) (*usecases.MonthlyReportResult, error)
}

// ReportHandler handles HTTP requests for alerts and reports
type ReportHandler struct {
	lowStockUC      LowStockExecutor
	monthlyReportUC MonthlyReportExecutor
	logger          logger.Interface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	lowStockUC LowStockExecutor,
	monthlyReportUC MonthlyReportExecutor,
	log logger.Interface,
) *ReportHandler {
	return &ReportHandler{
		lowStockUC:      lowStockUC,
		monthlyReportUC: monthlyReportUC,
		logger:          log,
	}
}

// LowStock handles GET /alerts/low-stock
func (h *ReportHandler) LowStock(c *gin.Context) {
	query := usecases.LowStockQuery{}

	if raw := c.Query("threshold"); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("threshold must be an integer"))
			return
		}
		query.Threshold = threshold
	}

	result, err := h.lowStockUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MonthlyReport handles GET /reports/inventory/monthly
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	query := usecases.MonthlyReportQuery{
		ActorID: middleware.PrincipalID(c),
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("year must be an integer"))
			return
		}
		query.Year = year
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("month must be an integer"))
			return
		}
		query.Month = month
	}
	if (query.Year == 0) != (query.Month == 0) {
		utils.ErrorResponseWithError(c, errors.NewValidationError("year and month must be provided together"))
		return
	}

	result, err := h.monthlyReportUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
