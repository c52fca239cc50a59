package persistence

import (
	"context"
	"testing"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRole(t *testing.T, name, description string) *identity.Role {
	t.Helper()
	role, err := identity.NewRole(name, description)
	require.NoError(t, err)
	return role
}

func TestGormRoleRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoleRepository(db)
	ctx := context.Background()

	role := mustRole(t, "project-manager", "Manages project scoping")
	require.NoError(t, repo.Save(ctx, role))

	found, err := repo.FindByID(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "project-manager", found.Name)

	byName, err := repo.FindByName(ctx, "project-manager")
	require.NoError(t, err)
	assert.Equal(t, role.ID, byName.ID)

	exists, err := repo.ExistsByName(ctx, "project-manager")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGormRoleRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoleRepository(db)
	ctx := context.Background()

	t.Run("deletes unassigned role", func(t *testing.T) {
		role := mustRole(t, "temp", "")
		require.NoError(t, repo.Save(ctx, role))

		require.NoError(t, repo.Delete(ctx, role.ID))

		_, err := repo.FindByID(ctx, role.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("refuses delete while assignments reference the role", func(t *testing.T) {
		role := mustRole(t, "accountant", "")
		require.NoError(t, repo.Save(ctx, role))

		assignment, err := identity.NewUserRoleAssignment(uuid.New(), role.ID)
		require.NoError(t, err)
		require.NoError(t, repo.SaveAssignment(ctx, assignment))

		err = repo.Delete(ctx, role.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ROLE_IN_USE", domainErr.Code)

		// Unassigning frees the role for deletion.
		require.NoError(t, repo.DeleteAssignment(ctx, assignment.ID))
		require.NoError(t, repo.Delete(ctx, role.ID))
	})
}

func TestGormRoleRepository_Assignments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoleRepository(db)
	ctx := context.Background()

	role := mustRole(t, "reviewer", "")
	require.NoError(t, repo.Save(ctx, role))

	userA := uuid.New()
	userB := uuid.New()
	for _, userID := range []uuid.UUID{userA, userB} {
		assignment, err := identity.NewUserRoleAssignment(userID, role.ID)
		require.NoError(t, err)
		require.NoError(t, repo.SaveAssignment(ctx, assignment))
	}

	count, err := repo.CountAssignmentsByRole(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assignments, err := repo.FindAssignmentsByRole(ctx, role.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	users := []uuid.UUID{assignments[0].UserID, assignments[1].UserID}
	assert.Contains(t, users, userA)
	assert.Contains(t, users, userB)
}

func TestGormRoleRepository_DeleteAssignment_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRoleRepository(db)

	err := repo.DeleteAssignment(context.Background(), uuid.New())

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
