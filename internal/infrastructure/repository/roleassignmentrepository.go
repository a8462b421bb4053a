package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"stockward/internal/domain/role"
	"stockward/internal/infrastructure/persistence/models"
	"stockward/internal/shared/authorization"
	"stockward/internal/shared/biztime"
	"stockward/internal/shared/db"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

// RoleAssignmentRepository implements role.Repository on GORM.
type RoleAssignmentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewRoleAssignmentRepository creates a new RoleAssignmentRepository
func NewRoleAssignmentRepository(database *gorm.DB, log logger.Interface) role.Repository {
	return &RoleAssignmentRepository{
		db:     database,
		logger: log,
	}
}

func (r *RoleAssignmentRepository) GetByPrincipal(ctx context.Context, principalID string) (*role.Assignment, error) {
	var model models.RoleAssignmentModel

	err := r.db.WithContext(ctx).
		Where("principal_id = ?", principalID).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("no role assigned")
		}
		r.logger.Errorw("failed to get role assignment", "principal_id", principalID, "error", err)
		return nil, fmt.Errorf("failed to get role assignment: %w", err)
	}

	return assignmentToDomain(&model), nil
}

// Upsert grants or overwrites the principal's role. The existing row is
// locked before the overwrite so prev reflects the state the change
// replaced. prev is nil on a first grant.
func (r *RoleAssignmentRepository) Upsert(ctx context.Context, principalID string, newRole authorization.Role) (*role.Assignment, *role.Assignment, error) {
	var prev, current *role.Assignment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.RoleAssignmentModel
		err := db.LockForUpdate(tx).
			Where("principal_id = ?", principalID).
			First(&model).Error
		switch {
		case err == nil:
			prev = assignmentToDomain(&model)
			model.Role = string(newRole)
			if err := tx.Save(&model).Error; err != nil {
				return fmt.Errorf("failed to update role assignment: %w", err)
			}
		case stderrors.Is(err, gorm.ErrRecordNotFound):
			model = models.RoleAssignmentModel{
				PrincipalID: principalID,
				Role:        string(newRole),
				AssignedAt:  biztime.NowUTC(),
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create role assignment: %w", err)
			}
		default:
			return fmt.Errorf("failed to lock role assignment: %w", err)
		}

		current = assignmentToDomain(&model)
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to upsert role assignment", "principal_id", principalID, "role", newRole, "error", err)
		return nil, nil, err
	}

	return prev, current, nil
}

func (r *RoleAssignmentRepository) List(ctx context.Context) ([]*role.Assignment, error) {
	var modelList []*models.RoleAssignmentModel

	err := r.db.WithContext(ctx).
		Order("principal_id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list role assignments", "error", err)
		return nil, fmt.Errorf("failed to list role assignments: %w", err)
	}

	assignments := make([]*role.Assignment, 0, len(modelList))
	for _, model := range modelList {
		assignments = append(assignments, assignmentToDomain(model))
	}
	return assignments, nil
}

func assignmentToDomain(model *models.RoleAssignmentModel) *role.Assignment {
	return &role.Assignment{
		PrincipalID: model.PrincipalID,
		Role:        authorization.Role(model.Role),
		AssignedAt:  model.AssignedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
