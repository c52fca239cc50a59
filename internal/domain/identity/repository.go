package identity

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RoleRepository provides access to roles and their user assignments.
// Delete must refuse (conflict) while any assignment references the role.
type RoleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Role, error)
	Save(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)

	SaveAssignment(ctx context.Context, assignment *UserRoleAssignment) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
	FindAssignmentsByRole(ctx context.Context, roleID uuid.UUID) ([]UserRoleAssignment, error)
	CountAssignmentsByRole(ctx context.Context, roleID uuid.UUID) (int64, error)
}
