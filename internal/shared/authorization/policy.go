package authorization

import "strings"

// Operation identifies one protected API operation as "resource:action".
// The resource/action split feeds the casbin policy model.
type Operation string

const (
	OpItemCreate         Operation = "items:create"
	OpItemList           Operation = "items:list"
	OpItemRead           Operation = "items:read"
	OpItemUpdate         Operation = "items:update"
	OpItemUpdateQuantity Operation = "items:update_quantity"
	OpItemDelete         Operation = "items:delete"
	OpItemBulkUpdate     Operation = "items:bulk_update_quantity"
	OpItemTrends         Operation = "items:trends"

	OpUserList   Operation = "users:list"
	OpRoleRead   Operation = "users:read_role"
	OpRoleAssign Operation = "users:assign_role"

	OpAlertLowStock Operation = "alerts:low_stock"

	OpReportMonthly Operation = "reports:monthly"

	OpAuditList Operation = "audit_logs:list"
)

// Split returns the resource and action parts of the operation.
func (o Operation) Split() (resource, action string) {
	parts := strings.SplitN(string(o), ":", 2)
	if len(parts) != 2 {
		return string(o), ""
	}
	return parts[0], parts[1]
}

// policyTable is the static access policy: which roles may invoke which
// operation. It is the single source of truth; the casbin enforcer is
// seeded from it at startup.
var policyTable = map[Operation][]Role{
	OpItemCreate:         {RoleAdmin},
	OpItemList:           {RoleAdmin, RoleManager, RoleViewer},
	OpItemRead:           {RoleAdmin, RoleManager, RoleViewer},
	OpItemUpdate:         {RoleAdmin, RoleManager},
	OpItemUpdateQuantity: {RoleAdmin, RoleManager},
	OpItemDelete:         {RoleAdmin},
	OpItemBulkUpdate:     {RoleManager},
	OpItemTrends:         {RoleAdmin, RoleManager, RoleViewer},
	OpUserList:           {RoleAdmin},
	OpRoleRead:           {RoleAdmin, RoleManager, RoleViewer},
	OpRoleAssign:         {RoleAdmin},
	OpAlertLowStock:      {RoleAdmin, RoleManager},
	OpReportMonthly:      {RoleAdmin},
	OpAuditList:          {RoleAdmin},
}

// AllowedRoles returns the set of roles permitted to invoke the operation.
// Unknown operations permit no roles.
func AllowedRoles(op Operation) []Role {
	roles, ok := policyTable[op]
	if !ok {
		return nil
	}
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Allows reports whether the role may invoke the operation. An empty
// (unassigned) role is allowed nothing.
func Allows(role Role, op Operation) bool {
	for _, allowed := range policyTable[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Operations returns every operation known to the policy.
func Operations() []Operation {
	ops := make([]Operation, 0, len(policyTable))
	for op := range policyTable {
		ops = append(ops, op)
	}
	return ops
}
