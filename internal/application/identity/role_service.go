package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/application"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateRoleRequest carries the fields to create a role
type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description,omitempty"`
}

// UpdateRoleRequest carries a partial role update
type UpdateRoleRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=80"`
	Description *string `json:"description,omitempty"`
}

// AssignRoleRequest grants a role to a user
type AssignRoleRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// RoleResponse is the outward shape of a role
type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AssignmentResponse is the outward shape of a user-role assignment
type AssignmentResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RoleID    uuid.UUID `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToRoleResponse converts a domain role to its outward shape
func ToRoleResponse(role *identity.Role) RoleResponse {
	return RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

// ToAssignmentResponse converts a domain assignment to its outward shape
func ToAssignmentResponse(assignment *identity.UserRoleAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        assignment.ID,
		UserID:    assignment.UserID,
		RoleID:    assignment.RoleID,
		CreatedAt: assignment.CreatedAt,
	}
}

// RoleService handles role and assignment operations. Users themselves are
// managed elsewhere; user IDs pass through opaquely.
type RoleService struct {
	roles identity.RoleRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roles identity.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

// Create creates a new role
func (s *RoleService) Create(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	role, err := identity.NewRole(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	taken, err := s.roles.ExistsByName(ctx, role.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewConflictError("DUPLICATE_NAME", "Role name already exists")
	}

	if err := s.roles.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// GetByID retrieves a role by ID
func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*RoleResponse, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToRoleResponse(role)
	return &response, nil
}

// List retrieves all roles ordered by name
func (s *RoleService) List(ctx context.Context) ([]RoleResponse, error) {
	filter := shared.Filter{
		OrderBy:  "name",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
	roles, err := s.roles.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = ToRoleResponse(&roles[i])
	}
	return responses, nil
}

// Update applies a partial update to a role
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, req UpdateRoleRequest) (*RoleResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != role.Name {
		if err := role.Rename(*req.Name); err != nil {
			return nil, err
		}
		taken, err := s.roles.ExistsByName(ctx, role.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewConflictError("DUPLICATE_NAME", "Role name already exists")
		}
	}
	if req.Description != nil {
		role.Description = *req.Description
		role.Touch()
	}

	if err := s.roles.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// Delete deletes a role. Roles with user assignments cannot be removed;
// assignments must be revoked first.
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.roles.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.roles.CountAssignmentsByRole(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewConflictError("ROLE_IN_USE",
			fmt.Sprintf("Role has %d user assignment(s)", count))
	}

	return s.roles.Delete(ctx, id)
}

// Assign grants the role to a user
func (s *RoleService) Assign(ctx context.Context, roleID uuid.UUID, req AssignRoleRequest) (*AssignmentResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, err
	}

	assignment, err := identity.NewUserRoleAssignment(req.UserID, roleID)
	if err != nil {
		return nil, err
	}

	if err := s.roles.SaveAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	response := ToAssignmentResponse(assignment)
	return &response, nil
}

// Unassign revokes an assignment
func (s *RoleService) Unassign(ctx context.Context, assignmentID uuid.UUID) error {
	return s.roles.DeleteAssignment(ctx, assignmentID)
}

// ListAssignments retrieves the assignments of one role
func (s *RoleService) ListAssignments(ctx context.Context, roleID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, err
	}

	assignments, err := s.roles.FindAssignmentsByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = ToAssignmentResponse(&assignments[i])
	}
	return responses, nil
}
