package models

import (
	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/shopspring/decimal"
)

// PartnerModel is the persistence model for the Partner entity.
type PartnerModel struct {
	BaseModel
	Name            string                 `gorm:"type:varchar(160);not null;uniqueIndex:idx_partners_name"`
	Type            masterdata.PartnerType `gorm:"type:varchar(20);not null;default:'customer';index"`
	Email           string                 `gorm:"type:varchar(160)"`
	Phone           string                 `gorm:"type:varchar(40)"`
	TaxID           string                 `gorm:"type:varchar(60)"`
	BillingAddress  string                 `gorm:"type:text"`
	ShippingAddress string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "partners"
}

// ToDomain converts the persistence model to a domain Partner entity.
func (m *PartnerModel) ToDomain() *masterdata.Partner {
	return &masterdata.Partner{
		BaseEntity:      m.BaseModel.ToDomain(),
		Name:            m.Name,
		Type:            m.Type,
		Email:           m.Email,
		Phone:           m.Phone,
		TaxID:           m.TaxID,
		BillingAddress:  m.BillingAddress,
		ShippingAddress: m.ShippingAddress,
	}
}

// FromDomain populates the persistence model from a domain Partner entity.
func (m *PartnerModel) FromDomain(p *masterdata.Partner) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Type = p.Type
	m.Email = p.Email
	m.Phone = p.Phone
	m.TaxID = p.TaxID
	m.BillingAddress = p.BillingAddress
	m.ShippingAddress = p.ShippingAddress
}

// PartnerModelFromDomain creates a new persistence model from a domain Partner entity.
func PartnerModelFromDomain(p *masterdata.Partner) *PartnerModel {
	m := &PartnerModel{}
	m.FromDomain(p)
	return m
}

// ProductModel is the persistence model for the Product entity.
type ProductModel struct {
	BaseModel
	SKU          string          `gorm:"type:varchar(60);not null;uniqueIndex:idx_products_sku"`
	Name         string          `gorm:"type:varchar(160);not null"`
	Description  string          `gorm:"type:text"`
	UOM          string          `gorm:"type:varchar(20);not null;default:'unit'"`
	DefaultPrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *masterdata.Product {
	return &masterdata.Product{
		BaseEntity:   m.BaseModel.ToDomain(),
		SKU:          m.SKU,
		Name:         m.Name,
		Description:  m.Description,
		UOM:          m.UOM,
		DefaultPrice: m.DefaultPrice,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *masterdata.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.SKU = p.SKU
	m.Name = p.Name
	m.Description = p.Description
	m.UOM = p.UOM
	m.DefaultPrice = p.DefaultPrice
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *masterdata.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
