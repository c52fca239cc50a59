package project

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository provides access to project records. Delete must refuse
// (conflict) while any document header is scoped to the project.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindByCode(ctx context.Context, projectCode string) (*Project, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)
	Save(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByCode(ctx context.Context, projectCode string) (bool, error)
}
