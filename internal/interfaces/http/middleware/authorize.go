package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockward/internal/domain/role"
	"stockward/internal/infrastructure/permission"
	"stockward/internal/shared/authorization"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
	"stockward/internal/shared/utils"
)

type AuthzMiddleware struct {
	roleRepo role.Repository
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewAuthzMiddleware(roleRepo role.Repository, enforcer *permission.Enforcer, logger logger.Interface) *AuthzMiddleware {
	return &AuthzMiddleware{
		roleRepo: roleRepo,
		enforcer: enforcer,
		logger:   logger,
	}
}

// ResolveRole loads the principal's role from the directory on every
// request, so a role change takes effect on the next call without token
// reissue. A principal with no assignment gets an empty role and is
// denied by every operation check.
func (m *AuthzMiddleware) ResolveRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		principalID := PrincipalID(c)
		if principalID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated principal")
			c.Abort()
			return
		}

		assignment, err := m.roleRepo.GetByPrincipal(c.Request.Context(), principalID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				c.Set(constants.ContextKeyUserRole, "")
				c.Next()
				return
			}
			m.logger.Errorw("failed to resolve role", "principal_id", principalID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve role")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserRole, string(assignment.Role))
		c.Next()
	}
}

// RequireOperation enforces the access policy for one operation.
func (m *AuthzMiddleware) RequireOperation(op authorization.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		currentRole := authorization.Role(c.GetString(constants.ContextKeyUserRole))

		if err := m.enforcer.Check(currentRole, op); err != nil {
			m.logger.Warnw("operation denied",
				"principal_id", PrincipalID(c),
				"role", currentRole,
				"operation", op)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentRole returns the role resolved for this request.
func CurrentRole(c *gin.Context) authorization.Role {
	return authorization.Role(c.GetString(constants.ContextKeyUserRole))
}
