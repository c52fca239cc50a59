package masterdata

import (
	"time"

	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePartnerRequest carries the fields to create a partner.
// Type defaults to customer when omitted.
type CreatePartnerRequest struct {
	Name            string                 `json:"name" validate:"required,max=160"`
	Type            masterdata.PartnerType `json:"partner_type,omitempty"`
	Email           string                 `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string                 `json:"phone,omitempty" validate:"omitempty,max=40"`
	TaxID           string                 `json:"tax_id,omitempty" validate:"omitempty,max=40"`
	BillingAddress  string                 `json:"billing_address,omitempty"`
	ShippingAddress string                 `json:"shipping_address,omitempty"`
}

// UpdatePartnerRequest carries a partial partner update
type UpdatePartnerRequest struct {
	Name            *string                 `json:"name,omitempty" validate:"omitempty,max=160"`
	Type            *masterdata.PartnerType `json:"partner_type,omitempty"`
	Email           *string                 `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string                 `json:"phone,omitempty" validate:"omitempty,max=40"`
	TaxID           *string                 `json:"tax_id,omitempty" validate:"omitempty,max=40"`
	BillingAddress  *string                 `json:"billing_address,omitempty"`
	ShippingAddress *string                 `json:"shipping_address,omitempty"`
}

// PartnerResponse is the outward shape of a partner
type PartnerResponse struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Type            masterdata.PartnerType `json:"partner_type"`
	Email           string                 `json:"email,omitempty"`
	Phone           string                 `json:"phone,omitempty"`
	TaxID           string                 `json:"tax_id,omitempty"`
	BillingAddress  string                 `json:"billing_address,omitempty"`
	ShippingAddress string                 `json:"shipping_address,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ToPartnerResponse converts a domain partner to its outward shape
func ToPartnerResponse(partner *masterdata.Partner) PartnerResponse {
	return PartnerResponse{
		ID:              partner.ID,
		Name:            partner.Name,
		Type:            partner.Type,
		Email:           partner.Email,
		Phone:           partner.Phone,
		TaxID:           partner.TaxID,
		BillingAddress:  partner.BillingAddress,
		ShippingAddress: partner.ShippingAddress,
		CreatedAt:       partner.CreatedAt,
		UpdatedAt:       partner.UpdatedAt,
	}
}

// ToPartnerResponses converts a partner slice for list results
func ToPartnerResponses(partners []masterdata.Partner) []PartnerResponse {
	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = ToPartnerResponse(&partners[i])
	}
	return responses
}

// CreateProductRequest carries the fields to create a product.
// The unit of measure defaults to "unit"; the default price to 0.
type CreateProductRequest struct {
	SKU          string           `json:"sku" validate:"required,max=60"`
	Name         string           `json:"name" validate:"required,max=160"`
	Description  string           `json:"description,omitempty"`
	UOM          string           `json:"uom,omitempty" validate:"omitempty,max=30"`
	DefaultPrice *decimal.Decimal `json:"default_price,omitempty"`
}

// UpdateProductRequest carries a partial product update
type UpdateProductRequest struct {
	SKU          *string          `json:"sku,omitempty" validate:"omitempty,max=60"`
	Name         *string          `json:"name,omitempty" validate:"omitempty,max=160"`
	Description  *string          `json:"description,omitempty"`
	UOM          *string          `json:"uom,omitempty" validate:"omitempty,max=30"`
	DefaultPrice *decimal.Decimal `json:"default_price,omitempty"`
}

// ProductResponse is the outward shape of a product
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UOM          string          `json:"uom"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its outward shape
func ToProductResponse(product *masterdata.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID,
		SKU:          product.SKU,
		Name:         product.Name,
		Description:  product.Description,
		UOM:          product.UOM,
		DefaultPrice: product.DefaultPrice,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

// ToProductResponses converts a product slice for list results
func ToProductResponses(products []masterdata.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
