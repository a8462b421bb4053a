package models

import (
	"time"

	"stockward/internal/shared/constants"
)

// RoleAssignmentModel represents the database persistence model for the
// role directory. One row per principal, enforced by the unique index;
// role changes overwrite in place.
type RoleAssignmentModel struct {
	ID          uint      `gorm:"primarykey"`
	PrincipalID string    `gorm:"uniqueIndex;not null;size:64"`
	Role        string    `gorm:"not null;size:20"`
	AssignedAt  time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (RoleAssignmentModel) TableName() string {
	return constants.TableRoleAssignments
}
