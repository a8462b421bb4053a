package usecases

import (
	"context"

	"stockward/internal/application/user/dto"
	"stockward/internal/domain/role"
	"stockward/internal/shared/logger"
)

type GetRoleQuery struct {
	PrincipalID string
}

type GetRoleUseCase struct {
	roleRepo role.Repository
	logger   logger.Interface
}

func NewGetRoleUseCase(roleRepo role.Repository, logger logger.Interface) *GetRoleUseCase {
	return &GetRoleUseCase{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (uc *GetRoleUseCase) Execute(ctx context.Context, query GetRoleQuery) (*dto.AssignmentDTO, error) {
	assignment, err := uc.roleRepo.GetByPrincipal(ctx, query.PrincipalID)
	if err != nil {
		return nil, err
	}
	return dto.FromDomain(assignment), nil
}
