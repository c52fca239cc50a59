package document

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HeaderRepository provides access to document headers of every kind.
// All queries are kind-scoped: a number is unique within its kind only.
type HeaderRepository interface {
	FindByID(ctx context.Context, kind Kind, id uuid.UUID) (*Header, error)
	// FindByIDWithLines loads the header together with its current line set
	// so derived totals can be computed.
	FindByIDWithLines(ctx context.Context, kind Kind, id uuid.UUID) (*Header, error)
	FindByNumber(ctx context.Context, kind Kind, number string) (*Header, error)
	// FindAll orders by document date descending unless the filter says
	// otherwise. Supported filter keys: status, project_id, party_id.
	FindAll(ctx context.Context, kind Kind, filter shared.Filter) ([]Header, error)
	Save(ctx context.Context, header *Header) error
	// Delete removes the header and cascades to its lines in one
	// transaction, returning the number of lines removed.
	Delete(ctx context.Context, kind Kind, id uuid.UUID) (int64, error)
	ExistsByNumber(ctx context.Context, kind Kind, number string) (bool, error)
	CountByStatus(ctx context.Context, kind Kind, status Status) (int64, error)
	// TotalValueByCurrency sums quantity × unit amount of all lines whose
	// header has one of the given statuses, grouped by header currency.
	TotalValueByCurrency(ctx context.Context, kind Kind, statuses []Status) (map[string]decimal.Decimal, error)
}

// LineRepository provides access to document lines.
type LineRepository interface {
	// FindByID resolves a line within its header; lines are always
	// addressed through their parent.
	FindByID(ctx context.Context, kind Kind, headerID, lineID uuid.UUID) (*Line, error)
	FindByHeader(ctx context.Context, kind Kind, headerID uuid.UUID) ([]Line, error)
	// FindAll supports filter keys: header_id, product_id, milestone_only.
	FindAll(ctx context.Context, kind Kind, filter shared.Filter) ([]Line, error)
	Save(ctx context.Context, line *Line) error
	// Delete removes a single line and, in the same transaction, nulls the
	// provenance reference of any dependent line pointing at it.
	Delete(ctx context.Context, kind Kind, headerID, lineID uuid.UUID) error
	// Exists reports whether a line of the given kind exists; used to
	// validate cross-document provenance links at write time.
	Exists(ctx context.Context, kind Kind, id uuid.UUID) (bool, error)
	Count(ctx context.Context, kind Kind) (int64, error)
	CountMilestone(ctx context.Context, kind Kind) (int64, error)
}
