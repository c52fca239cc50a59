package project

import (
	"time"

	"github.com/backoffice/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest carries the fields to create a project.
// Status defaults to planned when omitted.
type CreateProjectRequest struct {
	ProjectCode  string           `json:"project_code" validate:"required,max=40"`
	Name         string           `json:"name" validate:"required,max=180"`
	Description  string           `json:"description,omitempty"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	Status       *project.Status  `json:"status,omitempty"`
	BudgetAmount *decimal.Decimal `json:"budget_amount,omitempty"`
}

// UpdateProjectRequest carries a partial project update. Date updates
// replace both bounds together so the ordering check always sees the pair.
type UpdateProjectRequest struct {
	ProjectCode  *string          `json:"project_code,omitempty" validate:"omitempty,max=40"`
	Name         *string          `json:"name,omitempty" validate:"omitempty,max=180"`
	Description  *string          `json:"description,omitempty"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	ClearDates   bool             `json:"clear_dates,omitempty"`
	Status       *project.Status  `json:"status,omitempty"`
	BudgetAmount *decimal.Decimal `json:"budget_amount,omitempty"`
	ClearBudget  bool             `json:"clear_budget,omitempty"`
}

// ProjectResponse is the outward shape of a project
type ProjectResponse struct {
	ID           uuid.UUID        `json:"id"`
	ProjectCode  string           `json:"project_code"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	Status       project.Status   `json:"status"`
	BudgetAmount *decimal.Decimal `json:"budget_amount,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ToProjectResponse converts a domain project to its outward shape
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		ProjectCode:  p.ProjectCode,
		Name:         p.Name,
		Description:  p.Description,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       p.Status,
		BudgetAmount: p.BudgetAmount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProjectResponses converts a project slice for list results
func ToProjectResponses(projects []project.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}
