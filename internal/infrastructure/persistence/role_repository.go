package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRoleRepository implements RoleRepository using GORM
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// FindByID finds a role by its ID
func (r *GormRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a role by its name
func (r *GormRoleRepository) FindByName(ctx context.Context, name string) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all roles matching the filter
func (r *GormRoleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Role, error) {
	query := r.db.WithContext(ctx).Model(&models.RoleModel{})

	orderBy := ValidateSortField(filter.OrderBy, RoleSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	var rows []models.RoleModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	roles := make([]identity.Role, len(rows))
	for i, row := range rows {
		roles[i] = *row.ToDomain()
	}
	return roles, nil
}

// Save creates or updates a role
func (r *GormRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	model := models.RoleModelFromDomain(role)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a role. The delete is refused while any user assignment
// references the role.
func (r *GormRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.UserRoleAssignmentModel{}).
			Where("role_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return shared.NewConflictError("ROLE_IN_USE",
				fmt.Sprintf("Role has %d user assignment(s)", refs))
		}

		result := tx.Delete(&models.RoleModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ExistsByName checks if a role with the given name exists
func (r *GormRoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RoleModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveAssignment creates or updates a user-role assignment
func (r *GormRoleRepository) SaveAssignment(ctx context.Context, assignment *identity.UserRoleAssignment) error {
	model := models.UserRoleAssignmentModelFromDomain(assignment)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteAssignment deletes a user-role assignment
func (r *GormRoleRepository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserRoleAssignmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAssignmentsByRole finds all assignments for a role
func (r *GormRoleRepository) FindAssignmentsByRole(ctx context.Context, roleID uuid.UUID) ([]identity.UserRoleAssignment, error) {
	var rows []models.UserRoleAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	assignments := make([]identity.UserRoleAssignment, len(rows))
	for i, row := range rows {
		assignments[i] = *row.ToDomain()
	}
	return assignments, nil
}

// CountAssignmentsByRole counts assignments referencing a role
func (r *GormRoleRepository) CountAssignmentsByRole(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserRoleAssignmentModel{}).
		Where("role_id = ?", roleID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormRoleRepository implements RoleRepository
var _ identity.RoleRepository = (*GormRoleRepository)(nil)
