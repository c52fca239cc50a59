package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/document"
	"github.com/backoffice/backend/internal/domain/project"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProject(t *testing.T, code, name string) *project.Project {
	t.Helper()
	p, err := project.NewProject(code, name)
	require.NoError(t, err)
	return p
}

func TestGormProjectRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	p := mustProject(t, "PRJ-001", "Warehouse rollout")
	require.NoError(t, p.ChangeStatus(project.StatusInProgress))
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse rollout", found.Name)
	assert.Equal(t, project.StatusInProgress, found.Status)

	byCode, err := repo.FindByCode(ctx, "PRJ-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byCode.ID)
}

func TestGormProjectRepository_FindAll_FiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	active := mustProject(t, "PRJ-002", "Active one")
	require.NoError(t, active.ChangeStatus(project.StatusInProgress))
	require.NoError(t, repo.Save(ctx, active))
	require.NoError(t, repo.Save(ctx, mustProject(t, "PRJ-001", "Planned one")))

	filter := shared.Filter{OrderBy: "project_code", OrderDir: "asc"}
	all, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "PRJ-001", all[0].ProjectCode)

	inProgress, err := repo.FindAll(ctx, filter.WithFilter("status", project.StatusInProgress))
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "PRJ-002", inProgress[0].ProjectCode)
}

func TestGormProjectRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProjectRepository(db)
	headers := NewGormHeaderRepository(db)
	ctx := context.Background()

	t.Run("deletes unreferenced project", func(t *testing.T) {
		p := mustProject(t, "PRJ-DEL", "Short lived")
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, repo.Delete(ctx, p.ID))

		_, err := repo.FindByID(ctx, p.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("refuses delete while documents are scoped to the project", func(t *testing.T) {
		p := mustProject(t, "PRJ-REF", "Referenced")
		require.NoError(t, repo.Save(ctx, p))

		header, err := document.NewHeader(document.KindVendorBill, "BILL-1", p.ID, uuid.New(), time.Now())
		require.NoError(t, err)
		require.NoError(t, headers.Save(ctx, header))

		err = repo.Delete(ctx, p.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PROJECT_IN_USE", domainErr.Code)

		_, err = repo.FindByID(ctx, p.ID)
		assert.NoError(t, err)
	})
}

func TestGormProjectRepository_ExistsByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustProject(t, "PRJ-001", "One")))

	exists, err := repo.ExistsByCode(ctx, "PRJ-001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "PRJ-404")
	require.NoError(t, err)
	assert.False(t, exists)
}
