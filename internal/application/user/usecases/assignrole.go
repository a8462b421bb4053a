package usecases

import (
	"context"

	appaudit "stockward/internal/application/audit"
	"stockward/internal/application/user/dto"
	"stockward/internal/domain/audit"
	"stockward/internal/domain/role"
	"stockward/internal/shared/authorization"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

type AssignRoleCommand struct {
	ActorID     string
	PrincipalID string
	Role        string
}

type AssignRoleUseCase struct {
	roleRepo role.Repository
	recorder *appaudit.Recorder
	logger   logger.Interface
}

func NewAssignRoleUseCase(
	roleRepo role.Repository,
	recorder *appaudit.Recorder,
	logger logger.Interface,
) *AssignRoleUseCase {
	return &AssignRoleUseCase{
		roleRepo: roleRepo,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute grants or overwrites a principal's role. A first grant audits
// as ASSIGN_ROLE with no prior state; an overwrite audits as UPDATE_ROLE
// with the replaced assignment. Re-granting the same role changes nothing
// and writes no audit entry.
func (uc *AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) (*dto.AssignmentDTO, error) {
	newRole, err := authorization.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.roleRepo.GetByPrincipal(ctx, cmd.PrincipalID)
	if err == nil && existing.Role == newRole {
		return dto.FromDomain(existing), nil
	}

	prev, current, err := uc.roleRepo.Upsert(ctx, cmd.PrincipalID, newRole)
	if err != nil {
		return nil, err
	}

	action := audit.ActionAssignRole
	var oldValues map[string]any
	if prev != nil {
		action = audit.ActionUpdateRole
		oldValues = assignmentSnapshot(prev)
	}

	result := dto.FromDomain(current)

	if err := uc.recorder.Record(ctx, &audit.Entry{
		ActorID:   cmd.ActorID,
		Action:    action,
		TableName: constants.TableRoleAssignments,
		RecordID:  cmd.PrincipalID,
		OldValues: oldValues,
		NewValues: assignmentSnapshot(current),
	}); err != nil {
		return result, err
	}

	uc.logger.Infow("role assigned",
		"principal_id", cmd.PrincipalID,
		"role", current.Role,
		"actor_id", cmd.ActorID)

	return result, nil
}

func assignmentSnapshot(a *role.Assignment) map[string]any {
	return map[string]any{
		"principal_id": a.PrincipalID,
		"role":         string(a.Role),
	}
}
