package models

import (
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RoleModel is the persistence model for the Role entity.
type RoleModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(80);not null;uniqueIndex:idx_roles_name"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts the persistence model to a domain Role entity.
func (m *RoleModel) ToDomain() *identity.Role {
	return &identity.Role{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Role entity.
func (m *RoleModel) FromDomain(r *identity.Role) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Name = r.Name
	m.Description = r.Description
}

// RoleModelFromDomain creates a new persistence model from a domain Role entity.
func RoleModelFromDomain(r *identity.Role) *RoleModel {
	m := &RoleModel{}
	m.FromDomain(r)
	return m
}

// UserRoleAssignmentModel is the persistence model for user-role assignments.
// User records themselves live outside this core, so the user ID is not a
// foreign key; the role ID is, and role deletion is refused while rows exist.
type UserRoleAssignmentModel struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_role,priority:1"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_role,priority:2"`
}

// TableName returns the table name for GORM
func (UserRoleAssignmentModel) TableName() string {
	return "user_role_assignments"
}

// ToDomain converts the persistence model to a domain UserRoleAssignment entity.
func (m *UserRoleAssignmentModel) ToDomain() *identity.UserRoleAssignment {
	return &identity.UserRoleAssignment{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		RoleID:     m.RoleID,
	}
}

// FromDomain populates the persistence model from a domain UserRoleAssignment entity.
func (m *UserRoleAssignmentModel) FromDomain(a *identity.UserRoleAssignment) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.UserID = a.UserID
	m.RoleID = a.RoleID
}

// UserRoleAssignmentModelFromDomain creates a new persistence model from a domain entity.
func UserRoleAssignmentModelFromDomain(a *identity.UserRoleAssignment) *UserRoleAssignmentModel {
	m := &UserRoleAssignmentModel{}
	m.FromDomain(a)
	return m
}
