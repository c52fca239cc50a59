package masterdata

import (
	"context"

	"github.com/backoffice/backend/internal/application"
	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerService handles partner master data operations
type PartnerService struct {
	partners masterdata.PartnerRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partners masterdata.PartnerRepository) *PartnerService {
	return &PartnerService{partners: partners}
}

// Create creates a new partner
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	partner, err := masterdata.NewPartner(req.Name, req.Type)
	if err != nil {
		return nil, err
	}

	taken, err := s.partners.ExistsByName(ctx, partner.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewConflictError("DUPLICATE_NAME", "Partner name already exists")
	}

	if req.Email != "" || req.Phone != "" || req.TaxID != "" {
		partner.UpdateContact(req.Email, req.Phone, req.TaxID)
	}
	if req.BillingAddress != "" || req.ShippingAddress != "" {
		partner.UpdateAddresses(req.BillingAddress, req.ShippingAddress)
	}

	if err := s.partners.Save(ctx, partner); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(partner)
	return &response, nil
}

// GetByID retrieves a partner by ID
func (s *PartnerService) GetByID(ctx context.Context, id uuid.UUID) (*PartnerResponse, error) {
	partner, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPartnerResponse(partner)
	return &response, nil
}

// GetByName retrieves a partner by its unique name
func (s *PartnerService) GetByName(ctx context.Context, name string) (*PartnerResponse, error) {
	partner, err := s.partners.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	response := ToPartnerResponse(partner)
	return &response, nil
}

// List retrieves partners, optionally narrowed to one partner type
func (s *PartnerService) List(ctx context.Context, partnerType *masterdata.PartnerType) ([]PartnerResponse, error) {
	filter := shared.Filter{
		OrderBy:  "name",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
	if partnerType != nil {
		if !partnerType.IsValid() {
			return nil, shared.NewValidationError("INVALID_PARTNER_TYPE", "Partner type must be customer, vendor, or both")
		}
		filter.Filters["partner_type"] = string(*partnerType)
	}

	partners, err := s.partners.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToPartnerResponses(partners), nil
}

// Update applies a partial update to a partner
func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	partner, err := s.partners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != partner.Name {
		if err := partner.Rename(*req.Name); err != nil {
			return nil, err
		}
		taken, err := s.partners.ExistsByName(ctx, partner.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewConflictError("DUPLICATE_NAME", "Partner name already exists")
		}
	}
	if req.Type != nil {
		if err := partner.ChangeType(*req.Type); err != nil {
			return nil, err
		}
	}
	if req.Email != nil || req.Phone != nil || req.TaxID != nil {
		email, phone, taxID := partner.Email, partner.Phone, partner.TaxID
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.TaxID != nil {
			taxID = *req.TaxID
		}
		partner.UpdateContact(email, phone, taxID)
	}
	if req.BillingAddress != nil || req.ShippingAddress != nil {
		billing, shipping := partner.BillingAddress, partner.ShippingAddress
		if req.BillingAddress != nil {
			billing = *req.BillingAddress
		}
		if req.ShippingAddress != nil {
			shipping = *req.ShippingAddress
		}
		partner.UpdateAddresses(billing, shipping)
	}

	if err := s.partners.Save(ctx, partner); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(partner)
	return &response, nil
}

// Delete deletes a partner. The repository refuses while any document
// header references the partner as its party.
func (s *PartnerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.partners.FindByID(ctx, id); err != nil {
		return err
	}
	return s.partners.Delete(ctx, id)
}
