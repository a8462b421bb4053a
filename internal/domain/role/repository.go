package role

import (
	"context"

	"stockward/internal/shared/authorization"
)

// Repository is the role directory. GetByPrincipal returning NotFound is
// the "unassigned" state, not an internal failure; the policy layer turns
// it into Forbidden.
type Repository interface {
	GetByPrincipal(ctx context.Context, principalID string) (*Assignment, error)

	// Upsert overwrites any existing assignment for the principal and
	// returns the prior assignment (nil on first grant) captured under a
	// row lock, so concurrent overwrites serialize and the audit trail
	// never records a lost update.
	Upsert(ctx context.Context, principalID string, r authorization.Role) (prev *Assignment, current *Assignment, err error)

	List(ctx context.Context) ([]*Assignment, error)
}
