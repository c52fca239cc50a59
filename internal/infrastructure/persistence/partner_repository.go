package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// FindByID finds a partner by its ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*masterdata.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a partner by its name
func (r *GormPartnerRepository) FindByName(ctx context.Context, name string) (*masterdata.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all partners matching the filter
func (r *GormPartnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]masterdata.Partner, error) {
	query := r.db.WithContext(ctx).Model(&models.PartnerModel{})

	for key, value := range filter.Filters {
		switch key {
		case "partner_type":
			query = query.Where("type = ?", value)
		}
	}

	orderBy := ValidateSortField(filter.OrderBy, PartnerSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	var rows []models.PartnerModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	partners := make([]masterdata.Partner, len(rows))
	for i, row := range rows {
		partners[i] = *row.ToDomain()
	}
	return partners, nil
}

// Save creates or updates a partner
func (r *GormPartnerRepository) Save(ctx context.Context, partner *masterdata.Partner) error {
	model := models.PartnerModelFromDomain(partner)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a partner. The delete is refused while any document header
// references the partner as its party.
func (r *GormPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.DocumentHeaderModel{}).
			Where("party_id = ?", id).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return shared.NewConflictError("PARTNER_IN_USE",
				fmt.Sprintf("Partner is referenced by %d document(s)", refs))
		}

		result := tx.Delete(&models.PartnerModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ExistsByName checks if a partner with the given name exists
func (r *GormPartnerRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PartnerModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormPartnerRepository implements PartnerRepository
var _ masterdata.PartnerRepository = (*GormPartnerRepository)(nil)
