package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockward/internal/application/audit/usecases"
	"stockward/internal/shared/biztime"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
	"stockward/internal/shared/utils"
)

type ListAuditLogsExecutor interface {
	Execute(ctx context.Context, query usecases.ListAuditLogsQuery) ([]*usecases.AuditEntryDTO, int64, error)
}

// AuditHandler handles HTTP requests for the audit trail
type AuditHandler struct {
	listAuditLogsUC ListAuditLogsExecutor
	logger          logger.Interface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(listAuditLogsUC ListAuditLogsExecutor, log logger.Interface) *AuditHandler {
	return &AuditHandler{
		listAuditLogsUC: listAuditLogsUC,
		logger:          log,
	}
}

// ListAuditLogs handles GET /audit-logs
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListAuditLogsQuery{
		ActorID:   c.Query("user_id"),
		Action:    c.Query("action"),
		TableName: c.Query("table_name"),
		RecordID:  c.Query("record_id"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	if raw := c.Query("start_date"); raw != "" {
		since, err := biztime.ParseRFC3339(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("start_date must be RFC3339"))
			return
		}
		query.Since = &since
	}
	if raw := c.Query("end_date"); raw != "" {
		until, err := biztime.ParseRFC3339(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("end_date must be RFC3339"))
			return
		}
		query.Until = &until
	}

	entries, total, err := h.listAuditLogsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, entries, total, query.Page, query.PageSize)
}

// Health handles GET /health
func Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
