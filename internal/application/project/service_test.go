package project

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/project"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProjectRepository is a mock implementation of project.Repository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByCode(ctx context.Context, projectCode string) (*project.Project, error) {
	args := m.Called(ctx, projectCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) ExistsByCode(ctx context.Context, projectCode string) (bool, error) {
	args := m.Called(ctx, projectCode)
	return args.Bool(0), args.Error(1)
}

// Verify interface compliance
var _ project.Repository = (*MockProjectRepository)(nil)

func TestProjectService_Create_Success(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	budget := decimal.RequireFromString("50000.00")
	req := CreateProjectRequest{
		ProjectCode:  "PRJ-001",
		Name:         "Website revamp",
		StartDate:    &start,
		EndDate:      &end,
		BudgetAmount: &budget,
	}

	mockRepo.On("ExistsByCode", ctx, "PRJ-001").Return(false, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*project.Project")).Return(nil)

	resp, err := service.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "PRJ-001", resp.ProjectCode)
	assert.Equal(t, project.StatusPlanned, resp.Status)
	require.NotNil(t, resp.BudgetAmount)
	assert.True(t, resp.BudgetAmount.Equal(budget))
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Create_DuplicateCode(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ExistsByCode", ctx, "PRJ-001").Return(true, nil)

	_, err := service.Create(ctx, CreateProjectRequest{ProjectCode: "PRJ-001", Name: "Website revamp"})

	assert.Error(t, err)
	assert.True(t, shared.IsConflict(err))
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Create_EndBeforeStart(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.On("ExistsByCode", ctx, "PRJ-001").Return(false, nil)

	_, err := service.Create(ctx, CreateProjectRequest{
		ProjectCode: "PRJ-001",
		Name:        "Website revamp",
		StartDate:   &start,
		EndDate:     &end,
	})

	assert.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Update_AdjustingOneDateKeepsPairValid(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	p, err := project.NewProject("PRJ-001", "Website revamp")
	require.NoError(t, err)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, p.SetDates(&start, &end))

	// Moving the end date before the existing start date must fail
	badEnd := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	mockRepo.On("FindByID", ctx, p.ID).Return(p, nil)

	_, err = service.Update(ctx, p.ID, UpdateProjectRequest{EndDate: &badEnd})

	assert.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Update_ClearBudget(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	p, err := project.NewProject("PRJ-001", "Website revamp")
	require.NoError(t, err)
	budget := decimal.RequireFromString("1000.00")
	require.NoError(t, p.SetBudget(&budget))

	mockRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	mockRepo.On("Save", ctx, p).Return(nil)

	resp, err := service.Update(ctx, p.ID, UpdateProjectRequest{ClearBudget: true})

	require.NoError(t, err)
	assert.Nil(t, resp.BudgetAmount)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_List_FilterByStatus(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	p, err := project.NewProject("PRJ-001", "Website revamp")
	require.NoError(t, err)
	status := project.StatusPlanned

	mockRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["status"] == "planned"
	})).Return([]project.Project{*p}, nil)

	resp, err := service.List(ctx, &status)

	require.NoError(t, err)
	assert.Len(t, resp, 1)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Delete_RepositoryConflictPropagates(t *testing.T) {
	// Projects referenced by documents cannot be removed; the repository
	// reports the conflict
	mockRepo := new(MockProjectRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	p, err := project.NewProject("PRJ-001", "Website revamp")
	require.NoError(t, err)

	mockRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	mockRepo.On("Delete", ctx, p.ID).
		Return(shared.NewConflictError("PROJECT_IN_USE", "Project is referenced by documents"))

	err = service.Delete(ctx, p.ID)

	assert.Error(t, err)
	assert.True(t, shared.IsConflict(err))
	mockRepo.AssertExpectations(t)
}
