package authorization

import "fmt"

// Role is the unit of authorization granularity. Every principal holds at
// most one role; absence of an assignment is a distinct "unassigned" state
// and is never defaulted to a role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleViewer
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole parses a role string. Unknown values are an error, never a
// fallback role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q, must be one of admin, manager, viewer", s)
	}
	return role, nil
}

// Roles returns all valid roles.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleViewer}
}
