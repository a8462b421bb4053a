// Package dto holds the role directory payloads exchanged with the HTTP layer.
package dto

import (
	"time"

	"stockward/internal/domain/role"
)

// AssignmentDTO is the outward representation of a role assignment.
type AssignmentDTO struct {
	PrincipalID string    `json:"principal_id"`
	Role        string    `json:"role"`
	AssignedAt  time.Time `json:"assigned_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromDomain converts a domain assignment to its DTO.
func FromDomain(a *role.Assignment) *AssignmentDTO {
	return &AssignmentDTO{
		PrincipalID: a.PrincipalID,
		Role:        string(a.Role),
		AssignedAt:  a.AssignedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainList converts a slice of domain assignments.
func FromDomainList(assignments []*role.Assignment) []*AssignmentDTO {
	out := make([]*AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, FromDomain(a))
	}
	return out
}
