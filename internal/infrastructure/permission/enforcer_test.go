package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockward/internal/shared/authorization"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	enforcer, err := NewEnforcer(logger.NewLogger())
	require.NoError(t, err)
	return enforcer
}

func TestEnforcer_Check_AllowsPerPolicy(t *testing.T) {
	enforcer := newTestEnforcer(t)

	assert.NoError(t, enforcer.Check(authorization.RoleAdmin, authorization.OpItemCreate))
	assert.NoError(t, enforcer.Check(authorization.RoleViewer, authorization.OpItemList))
	assert.NoError(t, enforcer.Check(authorization.RoleManager, authorization.OpItemBulkUpdate))
}

func TestEnforcer_Check_ForbidsOutsidePolicy(t *testing.T) {
	enforcer := newTestEnforcer(t)

	cases := []struct {
		name string
		role authorization.Role
		op   authorization.Operation
	}{
		{"viewer cannot create", authorization.RoleViewer, authorization.OpItemCreate},
		{"manager cannot delete", authorization.RoleManager, authorization.OpItemDelete},
		{"admin cannot bulk update", authorization.RoleAdmin, authorization.OpItemBulkUpdate},
		{"viewer cannot see low stock", authorization.RoleViewer, authorization.OpAlertLowStock},
		{"manager cannot read audit logs", authorization.RoleManager, authorization.OpAuditList},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := enforcer.Check(tc.role, tc.op)
			require.Error(t, err)
			assert.True(t, errors.IsForbiddenError(err))
		})
	}
}

func TestEnforcer_Check_EmptyRoleForbidden(t *testing.T) {
	enforcer := newTestEnforcer(t)

	err := enforcer.Check("", authorization.OpItemList)
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestEnforcer_Check_MatchesPolicyTable(t *testing.T) {
	enforcer := newTestEnforcer(t)

	for _, op := range authorization.Operations() {
		for _, role := range authorization.Roles() {
			err := enforcer.Check(role, op)
			if authorization.Allows(role, op) {
				assert.NoError(t, err, "role %s op %s", role, op)
			} else {
				assert.Error(t, err, "role %s op %s", role, op)
			}
		}
	}
}
