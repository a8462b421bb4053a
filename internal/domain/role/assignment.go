// Package role defines the role assignment entity and the role directory
// repository contract.
package role

import (
	"time"

	"stockward/internal/shared/authorization"
)

// Assignment maps a principal to exactly one role. Assignments are never
// hard-deleted; role changes overwrite in place and the prior value
// survives only in the audit trail.
type Assignment struct {
	PrincipalID string
	Role        authorization.Role
	AssignedAt  time.Time
	UpdatedAt   time.Time
}
