package usecases

import (
	"context"
	"fmt"

	"stockward/internal/application/user/dto"
	"stockward/internal/domain/role"
	"stockward/internal/shared/logger"
)

type ListUsersUseCase struct {
	roleRepo role.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(roleRepo role.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// Execute lists every principal known to the role directory. Principals
// that authenticated but were never granted a role do not appear; the
// directory is the only principal store this service keeps.
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.AssignmentDTO, error) {
	assignments, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role assignments: %w", err)
	}
	return dto.FromDomainList(assignments), nil
}
