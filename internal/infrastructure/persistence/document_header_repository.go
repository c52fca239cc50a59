package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/document"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormHeaderRepository implements document.HeaderRepository using GORM.
// Every query is kind-scoped: the four document kinds share one table and
// a number is unique within its kind only.
type GormHeaderRepository struct {
	db *gorm.DB
}

// NewGormHeaderRepository creates a new GormHeaderRepository
func NewGormHeaderRepository(db *gorm.DB) *GormHeaderRepository {
	return &GormHeaderRepository{db: db}
}

// FindByID finds a document header by its ID
func (r *GormHeaderRepository) FindByID(ctx context.Context, kind document.Kind, id uuid.UUID) (*document.Header, error) {
	var model models.DocumentHeaderModel
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND id = ?", kind, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDWithLines loads the header together with its current line set so
// derived totals can be computed.
func (r *GormHeaderRepository) FindByIDWithLines(ctx context.Context, kind document.Kind, id uuid.UUID) (*document.Header, error) {
	var model models.DocumentHeaderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("kind = ? AND id = ?", kind, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a document header by its number within a kind
func (r *GormHeaderRepository) FindByNumber(ctx context.Context, kind document.Kind, number string) (*document.Header, error) {
	var model models.DocumentHeaderModel
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND number = ?", kind, number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all headers of a kind matching the filter, ordered by
// document date descending unless the filter says otherwise.
func (r *GormHeaderRepository) FindAll(ctx context.Context, kind document.Kind, filter shared.Filter) ([]document.Header, error) {
	query := r.db.WithContext(ctx).
		Model(&models.DocumentHeaderModel{}).
		Where("kind = ?", kind)

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "project_id":
			query = query.Where("project_id = ?", value)
		case "party_id":
			query = query.Where("party_id = ?", value)
		}
	}

	orderBy := ValidateSortField(filter.OrderBy, DocumentHeaderSortFields, "document_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	var rows []models.DocumentHeaderModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	headers := make([]document.Header, len(rows))
	for i, row := range rows {
		headers[i] = *row.ToDomain()
	}
	return headers, nil
}

// Save creates or updates a document header. Lines are persisted through
// the line repository and never touched here.
func (r *GormHeaderRepository) Save(ctx context.Context, header *document.Header) error {
	model := models.DocumentHeaderModelFromDomain(header)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes the header and cascades to its lines in one transaction,
// returning the number of lines removed. Provenance references held by
// lines of other documents against the deleted lines are nulled first so
// no dangling link survives the cascade.
func (r *GormHeaderRepository) Delete(ctx context.Context, kind document.Kind, id uuid.UUID) (int64, error) {
	var linesDeleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var header models.DocumentHeaderModel
		if err := tx.Where("kind = ? AND id = ?", kind, id).First(&header).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		doomed := tx.Model(&models.DocumentLineModel{}).
			Select("id").
			Where("header_id = ?", id)
		if err := tx.Model(&models.DocumentLineModel{}).
			Where("source_line_id IN (?)", doomed).
			Update("source_line_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("header_id = ?", id).Delete(&models.DocumentLineModel{})
		if result.Error != nil {
			return result.Error
		}
		linesDeleted = result.RowsAffected

		return tx.Delete(&models.DocumentHeaderModel{}, "id = ?", id).Error
	})
	if err != nil {
		return 0, err
	}
	return linesDeleted, nil
}

// ExistsByNumber checks if a header with the given number exists within a kind
func (r *GormHeaderRepository) ExistsByNumber(ctx context.Context, kind document.Kind, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DocumentHeaderModel{}).
		Where("kind = ? AND number = ?", kind, number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByStatus counts headers of a kind in the given status
func (r *GormHeaderRepository) CountByStatus(ctx context.Context, kind document.Kind, status document.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DocumentHeaderModel{}).
		Where("kind = ? AND status = ?", kind, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalValueByCurrency sums quantity × unit amount of all lines whose header
// has one of the given statuses, grouped by header currency. Totals are
// derived at query time; nothing stored is trusted.
func (r *GormHeaderRepository) TotalValueByCurrency(ctx context.Context, kind document.Kind, statuses []document.Status) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	if len(statuses) == 0 {
		return totals, nil
	}

	var rows []struct {
		Currency string
		Total    decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.DocumentLineModel{}).
		Select("document_headers.currency AS currency, SUM(document_lines.quantity * document_lines.unit_amount) AS total").
		Joins("JOIN document_headers ON document_headers.id = document_lines.header_id").
		Where("document_headers.kind = ? AND document_headers.status IN ?", kind, statuses).
		Group("document_headers.currency").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		totals[row.Currency] = row.Total
	}
	return totals, nil
}

// Ensure GormHeaderRepository implements HeaderRepository
var _ document.HeaderRepository = (*GormHeaderRepository)(nil)
