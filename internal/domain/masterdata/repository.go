package masterdata

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerRepository provides access to partner master data.
// Delete must refuse (conflict) while any document header references the
// partner as its party.
type PartnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	FindByName(ctx context.Context, name string) (*Partner, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Partner, error)
	Save(ctx context.Context, partner *Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ProductRepository provides access to product master data.
// Delete must null out product references on document lines instead of
// blocking or cascading.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
