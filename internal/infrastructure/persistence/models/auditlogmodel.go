package models

import (
	"time"

	"gorm.io/datatypes"

	"stockward/internal/shared/constants"
)

// AuditLogModel represents the database persistence model for audit log
// entries. Rows are append-only; no application code updates or deletes
// them.
type AuditLogModel struct {
	ID            uint           `gorm:"primarykey"`
	ActorID       string         `gorm:"not null;size:64;index:idx_audit_actor"`
	Action        string         `gorm:"not null;size:50;index:idx_audit_action"`
	ResourceTable string         `gorm:"column:table_name;size:64;index:idx_audit_record"`
	RecordID      string         `gorm:"size:64;index:idx_audit_record"`
	OldValues     datatypes.JSON `gorm:"column:old_values"`
	NewValues     datatypes.JSON `gorm:"column:new_values"`
	CreatedAt     time.Time      `gorm:"index:idx_audit_created"`
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
