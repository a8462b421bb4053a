package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stockward/internal/domain/audit"
	"stockward/internal/infrastructure/persistence/models"
	"stockward/internal/shared/logger"
)

// AuditLogRepository implements audit.Repository on GORM.
type AuditLogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(database *gorm.DB, log logger.Interface) audit.Repository {
	return &AuditLogRepository{
		db:     database,
		logger: log,
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	model, err := auditToModel(entry)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append audit entry",
			"action", entry.Action,
			"table", entry.TableName,
			"record_id", entry.RecordID,
			"error", err)
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	entry.ID = model.ID
	entry.CreatedAt = model.CreatedAt
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, filter audit.ListFilter, page, pageSize int) ([]*audit.Entry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if filter.ActorID != "" {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.TableName != "" {
		query = query.Where("table_name = ?", filter.TableName)
	}
	if filter.RecordID != "" {
		query = query.Where("record_id = ?", filter.RecordID)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		query = query.Where("created_at <= ?", *filter.Until)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count audit entries", "error", err)
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var modelList []*models.AuditLogModel
	err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list audit entries", "error", err)
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries, err := auditsToDomain(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *AuditLogRepository) ListForRecord(ctx context.Context, tableName, recordID string, actions []string) ([]*audit.Entry, error) {
	query := r.db.WithContext(ctx).
		Where("table_name = ? AND record_id = ?", tableName, recordID)
	if len(actions) > 0 {
		query = query.Where("action IN ?", actions)
	}

	var modelList []*models.AuditLogModel
	err := query.
		Order("created_at ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list audit entries for record",
			"table", tableName, "record_id", recordID, "error", err)
		return nil, fmt.Errorf("failed to list audit entries for record: %w", err)
	}

	return auditsToDomain(modelList)
}

func auditToModel(entry *audit.Entry) (*models.AuditLogModel, error) {
	model := &models.AuditLogModel{
		ID:            entry.ID,
		ActorID:       entry.ActorID,
		Action:        entry.Action,
		ResourceTable: entry.TableName,
		RecordID:      entry.RecordID,
		CreatedAt:     entry.CreatedAt,
	}

	if entry.OldValues != nil {
		raw, err := json.Marshal(entry.OldValues)
		if err != nil {
			return nil, fmt.Errorf("failed to encode old values: %w", err)
		}
		model.OldValues = datatypes.JSON(raw)
	}
	if entry.NewValues != nil {
		raw, err := json.Marshal(entry.NewValues)
		if err != nil {
			return nil, fmt.Errorf("failed to encode new values: %w", err)
		}
		model.NewValues = datatypes.JSON(raw)
	}

	return model, nil
}

func auditToDomain(model *models.AuditLogModel) (*audit.Entry, error) {
	entry := &audit.Entry{
		ID:        model.ID,
		ActorID:   model.ActorID,
		Action:    model.Action,
		TableName: model.ResourceTable,
		RecordID:  model.RecordID,
		CreatedAt: model.CreatedAt,
	}

	if len(model.OldValues) > 0 {
		if err := json.Unmarshal(model.OldValues, &entry.OldValues); err != nil {
			return nil, fmt.Errorf("failed to decode old values: %w", err)
		}
	}
	if len(model.NewValues) > 0 {
		if err := json.Unmarshal(model.NewValues, &entry.NewValues); err != nil {
			return nil, fmt.Errorf("failed to decode new values: %w", err)
		}
	}

	return entry, nil
}

func auditsToDomain(modelList []*models.AuditLogModel) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0, len(modelList))
	for _, model := range modelList {
		entry, err := auditToDomain(model)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
