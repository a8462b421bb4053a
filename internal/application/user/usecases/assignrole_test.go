package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaudit "stockward/internal/application/audit"
	domainaudit "stockward/internal/domain/audit"
	"stockward/internal/domain/role"
	"stockward/internal/infrastructure/persistence/testutil"
	"stockward/internal/infrastructure/repository"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

type fixture struct {
	roleRepo  role.Repository
	auditRepo domainaudit.Repository
	assignUC  *AssignRoleUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	log := logger.NewLogger()
	roleRepo := repository.NewRoleAssignmentRepository(db, log)
	auditRepo := repository.NewAuditLogRepository(db, log)
	recorder := appaudit.NewRecorder(auditRepo, log)

	return &fixture{
		roleRepo:  roleRepo,
		auditRepo: auditRepo,
		assignUC:  NewAssignRoleUseCase(roleRepo, recorder, log),
	}
}

func (f *fixture) roleAudits(t *testing.T, principalID string) []*domainaudit.Entry {
	t.Helper()
	entries, err := f.auditRepo.ListForRecord(context.Background(), constants.TableRoleAssignments, principalID, nil)
	require.NoError(t, err)
	return entries
}

func TestAssignRole_FirstGrant(t *testing.T) {
	f := newFixture(t)

	result, err := f.assignUC.Execute(context.Background(), AssignRoleCommand{
		ActorID:     "admin-1",
		PrincipalID: "user-1",
		Role:        "viewer",
	})
	require.NoError(t, err)
	assert.Equal(t, "viewer", result.Role)

	entries := f.roleAudits(t, "user-1")
	require.Len(t, entries, 1)
	assert.Equal(t, domainaudit.ActionAssignRole, entries[0].Action)
	assert.Nil(t, entries[0].OldValues)
	assert.Equal(t, "viewer", entries[0].NewValues["role"])
}

func TestAssignRole_OverwriteAuditsAsUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.assignUC.Execute(ctx, AssignRoleCommand{ActorID: "admin-1", PrincipalID: "user-1", Role: "viewer"})
	require.NoError(t, err)

	result, err := f.assignUC.Execute(ctx, AssignRoleCommand{ActorID: "admin-1", PrincipalID: "user-1", Role: "manager"})
	require.NoError(t, err)
	assert.Equal(t, "manager", result.Role)

	entries := f.roleAudits(t, "user-1")
	require.Len(t, entries, 2)
	assert.Equal(t, domainaudit.ActionUpdateRole, entries[1].Action)
	assert.Equal(t, "viewer", entries[1].OldValues["role"])
	assert.Equal(t, "manager", entries[1].NewValues["role"])
}

func TestAssignRole_SameRoleIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.assignUC.Execute(ctx, AssignRoleCommand{ActorID: "admin-1", PrincipalID: "user-1", Role: "viewer"})
	require.NoError(t, err)

	result, err := f.assignUC.Execute(ctx, AssignRoleCommand{ActorID: "admin-1", PrincipalID: "user-1", Role: "viewer"})
	require.NoError(t, err)
	assert.Equal(t, "viewer", result.Role)

	// No second audit entry for the unchanged grant.
	assert.Len(t, f.roleAudits(t, "user-1"), 1)
}

func TestAssignRole_InvalidRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.assignUC.Execute(context.Background(), AssignRoleCommand{
		ActorID:     "admin-1",
		PrincipalID: "user-1",
		Role:        "superuser",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetRole_Unassigned(t *testing.T) {
	f := newFixture(t)
	uc := NewGetRoleUseCase(f.roleRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetRoleQuery{PrincipalID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.assignUC.Execute(ctx, AssignRoleCommand{ActorID: "admin-1", PrincipalID: "user-2", Role: "manager"})
	require.NoError(t, err)
	_, err = f.assignUC.Execute(ctx, AssignRoleCommand{ActorID: "admin-1", PrincipalID: "user-1", Role: "viewer"})
	require.NoError(t, err)

	uc := NewListUsersUseCase(f.roleRepo, logger.NewLogger())
	assignments, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "user-1", assignments[0].PrincipalID)
	assert.Equal(t, "user-2", assignments[1].PrincipalID)
}
