package project

import (
	"strings"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle status of a project
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the status is a valid project Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Project is the reference entity every commercial document is scoped to.
// ProjectCode is unique. A project cannot be deleted while documents
// reference it.
type Project struct {
	shared.BaseEntity
	ProjectCode  string
	Name         string
	Description  string
	StartDate    *time.Time
	EndDate      *time.Time
	Status       Status
	BudgetAmount *decimal.Decimal
}

// NewProject creates a new project
func NewProject(projectCode, name string) (*Project, error) {
	projectCode = strings.TrimSpace(projectCode)
	if projectCode == "" {
		return nil, shared.NewValidationError("INVALID_PROJECT_CODE", "Project code is required")
	}
	if len(projectCode) > 40 {
		return nil, shared.NewValidationError("INVALID_PROJECT_CODE", "Project code cannot exceed 40 characters")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Project name is required")
	}
	if len(name) > 180 {
		return nil, shared.NewValidationError("INVALID_NAME", "Project name cannot exceed 180 characters")
	}

	return &Project{
		BaseEntity:  shared.NewBaseEntity(),
		ProjectCode: projectCode,
		Name:        name,
		Status:      StatusPlanned,
	}, nil
}

// ChangeCode changes the project code. Uniqueness is re-checked by the
// service when the code actually changes.
func (p *Project) ChangeCode(projectCode string) error {
	projectCode = strings.TrimSpace(projectCode)
	if projectCode == "" {
		return shared.NewValidationError("INVALID_PROJECT_CODE", "Project code is required")
	}
	if len(projectCode) > 40 {
		return shared.NewValidationError("INVALID_PROJECT_CODE", "Project code cannot exceed 40 characters")
	}
	p.ProjectCode = projectCode
	p.Touch()
	return nil
}

// ChangeStatus changes the project status
func (p *Project) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewValidationError("INVALID_STATUS", "Status must be planned, in_progress, completed, on_hold, or cancelled")
	}
	p.Status = status
	p.Touch()
	return nil
}

// SetDates sets the project start and end dates. End must not precede start.
func (p *Project) SetDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return shared.NewValidationError("INVALID_DATES", "End date cannot be before start date")
	}
	p.StartDate = start
	p.EndDate = end
	p.Touch()
	return nil
}

// SetBudget sets the project budget amount
func (p *Project) SetBudget(amount *decimal.Decimal) error {
	if amount != nil {
		if amount.IsNegative() {
			return shared.NewValidationError("INVALID_BUDGET", "Budget amount cannot be negative")
		}
		rounded := amount.Round(2)
		amount = &rounded
	}
	p.BudgetAmount = amount
	p.Touch()
	return nil
}

// Rename changes the project name
func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("INVALID_NAME", "Project name is required")
	}
	if len(name) > 180 {
		return shared.NewValidationError("INVALID_NAME", "Project name cannot exceed 180 characters")
	}
	p.Name = name
	p.Touch()
	return nil
}

// SetDescription sets the project description
func (p *Project) SetDescription(description string) {
	p.Description = description
	p.Touch()
}
