package usecases

import (
	"context"
	"fmt"
	"time"

	"stockward/internal/domain/audit"
	"stockward/internal/shared/logger"
)

type ListAuditLogsQuery struct {
	ActorID   string
	Action    string
	TableName string
	RecordID  string
	Since     *time.Time
	Until     *time.Time
	Page      int
	PageSize  int
}

// AuditEntryDTO is the outward representation of an audit trail entry.
type AuditEntryDTO struct {
	ID        uint           `json:"id"`
	ActorID   string         `json:"actor_id"`
	Action    string         `json:"action"`
	TableName string         `json:"table_name,omitempty"`
	RecordID  string         `json:"record_id,omitempty"`
	OldValues map[string]any `json:"old_values,omitempty"`
	NewValues map[string]any `json:"new_values,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type ListAuditLogsUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditLogsUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, query ListAuditLogsQuery) ([]*AuditEntryDTO, int64, error) {
	filter := audit.ListFilter{
		ActorID:   query.ActorID,
		Action:    query.Action,
		TableName: query.TableName,
		RecordID:  query.RecordID,
		Since:     query.Since,
		Until:     query.Until,
	}

	entries, total, err := uc.auditRepo.List(ctx, filter, query.Page, query.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	dtos := make([]*AuditEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, &AuditEntryDTO{
			ID:        entry.ID,
			ActorID:   entry.ActorID,
			Action:    entry.Action,
			TableName: entry.TableName,
			RecordID:  entry.RecordID,
			OldValues: entry.OldValues,
			NewValues: entry.NewValues,
			CreatedAt: entry.CreatedAt,
		})
	}

	return dtos, total, nil
}
