package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockward/internal/application/user/dto"
	"stockward/internal/application/user/usecases"
	"stockward/internal/interfaces/http/middleware"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
	"stockward/internal/shared/utils"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.AssignmentDTO, error)
}

type GetRoleExecutor interface {
	Execute(ctx context.Context, query usecases.GetRoleQuery) (*dto.AssignmentDTO, error)
}

type AssignRoleExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignRoleCommand) (*dto.AssignmentDTO, error)
}

// UserHandler handles HTTP requests for the role directory
type UserHandler struct {
	listUsersUC  ListUsersExecutor
	getRoleUC    GetRoleExecutor
	assignRoleUC AssignRoleExecutor
	logger       logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	listUsersUC ListUsersExecutor,
	getRoleUC GetRoleExecutor,
	assignRoleUC AssignRoleExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:  listUsersUC,
		getRoleUC:    getRoleUC,
		assignRoleUC: assignRoleUC,
		logger:       log,
	}
}

type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager viewer"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	assignments, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", assignments)
}

// GetRole handles GET /users/:id/role
func (h *UserHandler) GetRole(c *gin.Context) {
	principalID := c.Param("id")
	if principalID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid principal id"))
		return
	}

	assignment, err := h.getRoleUC.Execute(c.Request.Context(), usecases.GetRoleQuery{
		PrincipalID: principalID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", assignment)
}

// AssignRole handles PUT /users/:id/role
func (h *UserHandler) AssignRole(c *gin.Context) {
	principalID := c.Param("id")
	if principalID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid principal id"))
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign role", "principal_id", principalID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignment, err := h.assignRoleUC.Execute(c.Request.Context(), usecases.AssignRoleCommand{
		ActorID:     middleware.PrincipalID(c),
		PrincipalID: principalID,
		Role:        req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role assigned successfully", assignment)
}
