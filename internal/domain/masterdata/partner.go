package masterdata

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
)

// PartnerType represents the commercial relationship of a partner
type PartnerType string

const (
	PartnerTypeCustomer PartnerType = "customer"
	PartnerTypeVendor   PartnerType = "vendor"
	PartnerTypeBoth     PartnerType = "both"
)

// IsValid checks if the type is a valid PartnerType
func (t PartnerType) IsValid() bool {
	switch t {
	case PartnerTypeCustomer, PartnerTypeVendor, PartnerTypeBoth:
		return true
	}
	return false
}

// String returns the string representation of PartnerType
func (t PartnerType) String() string {
	return string(t)
}

// PartyRole is the side of a commercial document a partner is asked to fill.
type PartyRole string

const (
	PartyRoleCustomer PartyRole = "customer"
	PartyRoleVendor   PartyRole = "vendor"
)

// CanActAs reports whether a partner of this type may fill the given role.
// Customer-side documents accept customer and both; vendor-side documents
// accept vendor and both.
func (t PartnerType) CanActAs(role PartyRole) bool {
	switch role {
	case PartyRoleCustomer:
		return t == PartnerTypeCustomer || t == PartnerTypeBoth
	case PartyRoleVendor:
		return t == PartnerTypeVendor || t == PartnerTypeBoth
	}
	return false
}

// Partner represents a customer, vendor, or dual-role business partner.
// Name is unique across all partners.
type Partner struct {
	shared.BaseEntity
	Name            string
	Type            PartnerType
	Email           string
	Phone           string
	TaxID           string
	BillingAddress  string
	ShippingAddress string
}

// NewPartner creates a new partner
func NewPartner(name string, partnerType PartnerType) (*Partner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Partner name is required")
	}
	if len(name) > 160 {
		return nil, shared.NewValidationError("INVALID_NAME", "Partner name cannot exceed 160 characters")
	}
	if partnerType == "" {
		partnerType = PartnerTypeCustomer
	}
	if !partnerType.IsValid() {
		return nil, shared.NewValidationError("INVALID_PARTNER_TYPE", "Partner type must be customer, vendor, or both")
	}

	return &Partner{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Type:       partnerType,
	}, nil
}

// Rename changes the partner name
func (p *Partner) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("INVALID_NAME", "Partner name is required")
	}
	if len(name) > 160 {
		return shared.NewValidationError("INVALID_NAME", "Partner name cannot exceed 160 characters")
	}
	p.Name = name
	p.Touch()
	return nil
}

// ChangeType changes the partner type
func (p *Partner) ChangeType(partnerType PartnerType) error {
	if !partnerType.IsValid() {
		return shared.NewValidationError("INVALID_PARTNER_TYPE", "Partner type must be customer, vendor, or both")
	}
	p.Type = partnerType
	p.Touch()
	return nil
}

// UpdateContact updates the partner contact fields
func (p *Partner) UpdateContact(email, phone, taxID string) {
	p.Email = email
	p.Phone = phone
	p.TaxID = taxID
	p.Touch()
}

// UpdateAddresses updates the billing and shipping addresses
func (p *Partner) UpdateAddresses(billing, shipping string) {
	p.BillingAddress = billing
	p.ShippingAddress = shipping
	p.Touch()
}
