package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/document"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLineRepository implements document.LineRepository using GORM.
// Lines are always addressed through their parent header.
type GormLineRepository struct {
	db *gorm.DB
}

// NewGormLineRepository creates a new GormLineRepository
func NewGormLineRepository(db *gorm.DB) *GormLineRepository {
	return &GormLineRepository{db: db}
}

// FindByID resolves a line within its header
func (r *GormLineRepository) FindByID(ctx context.Context, kind document.Kind, headerID, lineID uuid.UUID) (*document.Line, error) {
	var model models.DocumentLineModel
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND header_id = ? AND id = ?", kind, headerID, lineID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByHeader finds all lines of a header in creation order
func (r *GormLineRepository) FindByHeader(ctx context.Context, kind document.Kind, headerID uuid.UUID) ([]document.Line, error) {
	var rows []models.DocumentLineModel
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND header_id = ?", kind, headerID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainLines(rows), nil
}

// FindAll finds all lines of a kind matching the filter
func (r *GormLineRepository) FindAll(ctx context.Context, kind document.Kind, filter shared.Filter) ([]document.Line, error) {
	query := r.db.WithContext(ctx).
		Model(&models.DocumentLineModel{}).
		Where("kind = ?", kind)

	for key, value := range filter.Filters {
		switch key {
		case "header_id":
			query = query.Where("header_id = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "milestone_only":
			if value == true {
				query = query.Where("milestone_flag = ?", true)
			}
		}
	}

	orderBy := ValidateSortField(filter.OrderBy, DocumentLineSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	var rows []models.DocumentLineModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainLines(rows), nil
}

// Save creates or updates a document line
func (r *GormLineRepository) Save(ctx context.Context, line *document.Line) error {
	model := models.DocumentLineModelFromDomain(line)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a single line and, in the same transaction, nulls the
// provenance reference of any dependent line pointing at it.
func (r *GormLineRepository) Delete(ctx context.Context, kind document.Kind, headerID, lineID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DocumentLineModel{}).
			Where("source_line_id = ?", lineID).
			Update("source_line_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("kind = ? AND header_id = ? AND id = ?", kind, headerID, lineID).
			Delete(&models.DocumentLineModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Exists reports whether a line of the given kind exists; used to validate
// cross-document provenance links at write time.
func (r *GormLineRepository) Exists(ctx context.Context, kind document.Kind, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DocumentLineModel{}).
		Where("kind = ? AND id = ?", kind, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts all lines of a kind
func (r *GormLineRepository) Count(ctx context.Context, kind document.Kind) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DocumentLineModel{}).
		Where("kind = ?", kind).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountMilestone counts milestone-flagged lines of a kind
func (r *GormLineRepository) CountMilestone(ctx context.Context, kind document.Kind) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DocumentLineModel{}).
		Where("kind = ? AND milestone_flag = ?", kind, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toDomainLines(rows []models.DocumentLineModel) []document.Line {
	lines := make([]document.Line, len(rows))
	for i, row := range rows {
		lines[i] = *row.ToDomain()
	}
	return lines
}

// Ensure GormLineRepository implements LineRepository
var _ document.LineRepository = (*GormLineRepository)(nil)
