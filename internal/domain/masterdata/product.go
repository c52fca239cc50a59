package masterdata

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable or purchasable item. SKU is unique.
// Document lines reference products optionally; deleting a product never
// destroys line history (the reference is nulled instead).
type Product struct {
	shared.BaseEntity
	SKU          string
	Name         string
	Description  string
	UOM          string
	DefaultPrice decimal.Decimal
}

// NewProduct creates a new product
func NewProduct(sku, name string, defaultPrice decimal.Decimal) (*Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, shared.NewValidationError("INVALID_SKU", "Product SKU is required")
	}
	if len(sku) > 60 {
		return nil, shared.NewValidationError("INVALID_SKU", "Product SKU cannot exceed 60 characters")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Product name is required")
	}
	if len(name) > 160 {
		return nil, shared.NewValidationError("INVALID_NAME", "Product name cannot exceed 160 characters")
	}
	if defaultPrice.IsNegative() {
		return nil, shared.NewValidationError("INVALID_PRICE", "Default price cannot be negative")
	}

	return &Product{
		BaseEntity:   shared.NewBaseEntity(),
		SKU:          sku,
		Name:         name,
		UOM:          "unit",
		DefaultPrice: defaultPrice.Round(2),
	}, nil
}

// Rename changes the product name
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("INVALID_NAME", "Product name is required")
	}
	if len(name) > 160 {
		return shared.NewValidationError("INVALID_NAME", "Product name cannot exceed 160 characters")
	}
	p.Name = name
	p.Touch()
	return nil
}

// ChangeSKU changes the product SKU
func (p *Product) ChangeSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewValidationError("INVALID_SKU", "Product SKU is required")
	}
	if len(sku) > 60 {
		return shared.NewValidationError("INVALID_SKU", "Product SKU cannot exceed 60 characters")
	}
	p.SKU = sku
	p.Touch()
	return nil
}

// ChangeDefaultPrice changes the default unit price
func (p *Product) ChangeDefaultPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewValidationError("INVALID_PRICE", "Default price cannot be negative")
	}
	p.DefaultPrice = price.Round(2)
	p.Touch()
	return nil
}

// SetDescription sets the product description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.Touch()
}

// SetUOM sets the unit of measure
func (p *Product) SetUOM(uom string) error {
	uom = strings.TrimSpace(uom)
	if uom == "" {
		return shared.NewValidationError("INVALID_UOM", "Unit of measure is required")
	}
	if len(uom) > 30 {
		return shared.NewValidationError("INVALID_UOM", "Unit of measure cannot exceed 30 characters")
	}
	p.UOM = uom
	p.Touch()
	return nil
}
