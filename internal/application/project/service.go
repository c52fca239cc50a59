package project

import (
	"context"

	"github.com/backoffice/backend/internal/application"
	"github.com/backoffice/backend/internal/domain/project"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles project operations
type Service struct {
	projects project.Repository
}

// NewService creates a new project Service
func NewService(projects project.Repository) *Service {
	return &Service{projects: projects}
}

// Create creates a new project
func (s *Service) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	p, err := project.NewProject(req.ProjectCode, req.Name)
	if err != nil {
		return nil, err
	}

	taken, err := s.projects.ExistsByCode(ctx, p.ProjectCode)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewConflictError("DUPLICATE_PROJECT_CODE", "Project code already exists")
	}

	if req.Description != "" {
		p.SetDescription(req.Description)
	}
	if req.StartDate != nil || req.EndDate != nil {
		if err := p.SetDates(req.StartDate, req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := p.ChangeStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.BudgetAmount != nil {
		if err := p.SetBudget(req.BudgetAmount); err != nil {
			return nil, err
		}
	}

	if err := s.projects.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProjectResponse(p)
	return &response, nil
}

// GetByID retrieves a project by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(p)
	return &response, nil
}

// GetByCode retrieves a project by its unique code
func (s *Service) GetByCode(ctx context.Context, projectCode string) (*ProjectResponse, error) {
	p, err := s.projects.FindByCode(ctx, projectCode)
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(p)
	return &response, nil
}

// List retrieves projects, optionally narrowed to one status
func (s *Service) List(ctx context.Context, status *project.Status) ([]ProjectResponse, error) {
	filter := shared.Filter{
		OrderBy:  "project_code",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
	if status != nil {
		if !status.IsValid() {
			return nil, shared.NewValidationError("INVALID_STATUS", "Unknown project status")
		}
		filter.Filters["status"] = string(*status)
	}

	projects, err := s.projects.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToProjectResponses(projects), nil
}

// Update applies a partial update to a project
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProjectCode != nil && *req.ProjectCode != p.ProjectCode {
		if err := p.ChangeCode(*req.ProjectCode); err != nil {
			return nil, err
		}
		taken, err := s.projects.ExistsByCode(ctx, p.ProjectCode)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewConflictError("DUPLICATE_PROJECT_CODE", "Project code already exists")
		}
	}
	if req.Name != nil {
		if err := p.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		p.SetDescription(*req.Description)
	}
	if req.ClearDates {
		if err := p.SetDates(nil, nil); err != nil {
			return nil, err
		}
	} else if req.StartDate != nil || req.EndDate != nil {
		start, end := p.StartDate, p.EndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		if err := p.SetDates(start, end); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := p.ChangeStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.ClearBudget {
		if err := p.SetBudget(nil); err != nil {
			return nil, err
		}
	} else if req.BudgetAmount != nil {
		if err := p.SetBudget(req.BudgetAmount); err != nil {
			return nil, err
		}
	}

	if err := s.projects.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProjectResponse(p)
	return &response, nil
}

// Delete deletes a project. The repository refuses while any document
// header is scoped to the project.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}
