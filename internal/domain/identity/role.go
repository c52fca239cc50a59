package identity

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Role is a named collaboration role. Name is unique. A role cannot be
// deleted while user assignments reference it.
type Role struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewRole creates a new role
func NewRole(name, description string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Role name is required")
	}
	if len(name) > 80 {
		return nil, shared.NewValidationError("INVALID_NAME", "Role name cannot exceed 80 characters")
	}

	return &Role{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Rename changes the role name
func (r *Role) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("INVALID_NAME", "Role name is required")
	}
	if len(name) > 80 {
		return shared.NewValidationError("INVALID_NAME", "Role name cannot exceed 80 characters")
	}
	r.Name = name
	r.Touch()
	return nil
}

// UserRoleAssignment grants a role to a user. User management itself lives
// outside this core; the user ID is carried opaquely.
type UserRoleAssignment struct {
	shared.BaseEntity
	UserID uuid.UUID
	RoleID uuid.UUID
}

// NewUserRoleAssignment creates a new user-role assignment
func NewUserRoleAssignment(userID, roleID uuid.UUID) (*UserRoleAssignment, error) {
	if userID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_USER", "User ID is required")
	}
	if roleID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_ROLE", "Role ID is required")
	}
	return &UserRoleAssignment{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		RoleID:     roleID,
	}, nil
}
