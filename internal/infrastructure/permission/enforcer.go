// Package permission enforces the static role/operation policy through a
// casbin model. The policy is seeded once at construction and never
// persisted; changing access rules means changing the policy table and
// redeploying.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"stockward/internal/shared/authorization"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds a casbin enforcer seeded from the static policy table.
func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	for _, op := range authorization.Operations() {
		resource, action := op.Split()
		for _, role := range authorization.AllowedRoles(op) {
			if _, err := enforcer.AddPolicy(string(role), resource, action); err != nil {
				return nil, fmt.Errorf("failed to seed policy for %s: %w", op, err)
			}
		}
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Check returns nil when the role may invoke the operation, a forbidden
// error otherwise. An empty role (no assignment) is allowed nothing.
func (e *Enforcer) Check(role authorization.Role, op authorization.Operation) error {
	if role == "" {
		return errors.NewForbiddenError("no role assigned")
	}

	resource, action := op.Split()

	e.mu.RLock()
	allowed, err := e.enforcer.Enforce(string(role), resource, action)
	e.mu.RUnlock()
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "operation", op)
		return fmt.Errorf("permission check failed: %w", err)
	}

	if !allowed {
		return errors.NewForbiddenError(fmt.Sprintf("role %s may not perform %s", role, op))
	}
	return nil
}
