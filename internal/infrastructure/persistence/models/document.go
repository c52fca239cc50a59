package models

import (
	"time"

	"github.com/backoffice/backend/internal/domain/document"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentHeaderModel is the persistence model for document headers. All four
// kinds share one table; the number is unique within its kind only. The line
// total is never stored, so the table carries no amount columns.
type DocumentHeaderModel struct {
	BaseModel
	Kind         document.Kind       `gorm:"type:varchar(20);not null;uniqueIndex:idx_doc_headers_kind_number,priority:1;index:idx_doc_headers_kind_status,priority:1"`
	Number       string              `gorm:"type:varchar(40);not null;uniqueIndex:idx_doc_headers_kind_number,priority:2"`
	ProjectID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	PartyID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	DocumentDate time.Time           `gorm:"not null;index"`
	DueDate      *time.Time          `gorm:"index"`
	Status       document.Status     `gorm:"type:varchar(20);not null;index:idx_doc_headers_kind_status,priority:2"`
	Currency     string              `gorm:"type:varchar(3);not null;default:'INR'"`
	Notes        string              `gorm:"type:text"`
	Lines        []DocumentLineModel `gorm:"foreignKey:HeaderID;references:ID"`
}

// TableName returns the table name for GORM
func (DocumentHeaderModel) TableName() string {
	return "document_headers"
}

// ToDomain converts the persistence model to a domain Header entity.
func (m *DocumentHeaderModel) ToDomain() *document.Header {
	header := &document.Header{
		BaseEntity:   m.BaseModel.ToDomain(),
		Kind:         m.Kind,
		Number:       m.Number,
		ProjectID:    m.ProjectID,
		PartyID:      m.PartyID,
		DocumentDate: m.DocumentDate,
		DueDate:      m.DueDate,
		Status:       m.Status,
		Currency:     m.Currency,
		Notes:        m.Notes,
	}
	if len(m.Lines) > 0 {
		header.Lines = make([]document.Line, len(m.Lines))
		for i, line := range m.Lines {
			header.Lines[i] = *line.ToDomain()
		}
	}
	return header
}

// FromDomain populates the persistence model from a domain Header entity.
// Lines are persisted through their own repository and deliberately not
// mapped here, so a header save can never clobber its line set.
func (m *DocumentHeaderModel) FromDomain(h *document.Header) {
	m.FromDomainBaseEntity(h.BaseEntity)
	m.Kind = h.Kind
	m.Number = h.Number
	m.ProjectID = h.ProjectID
	m.PartyID = h.PartyID
	m.DocumentDate = h.DocumentDate
	m.DueDate = h.DueDate
	m.Status = h.Status
	m.Currency = h.Currency
	m.Notes = h.Notes
}

// DocumentHeaderModelFromDomain creates a new persistence model from a domain Header entity.
func DocumentHeaderModelFromDomain(h *document.Header) *DocumentHeaderModel {
	m := &DocumentHeaderModel{}
	m.FromDomain(h)
	return m
}

// DocumentLineModel is the persistence model for document lines. The line
// total is derived from quantity and unit amount on every read and never
// stored. SourceLineID carries the cross-document provenance link and is
// nulled when its target line disappears.
type DocumentLineModel struct {
	BaseModel
	HeaderID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	Kind          document.Kind       `gorm:"type:varchar(20);not null;index"`
	ProductID     *uuid.UUID          `gorm:"type:uuid;index"`
	Description   string              `gorm:"type:varchar(255);not null"`
	Quantity      decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:1"`
	UnitAmount    decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	MilestoneFlag bool                `gorm:"not null;default:false"`
	SourceType    document.SourceType `gorm:"type:varchar(20)"`
	SourceLineID  *uuid.UUID          `gorm:"type:uuid;index"`
	SourceID      *uuid.UUID          `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (DocumentLineModel) TableName() string {
	return "document_lines"
}

// ToDomain converts the persistence model to a domain Line entity.
func (m *DocumentLineModel) ToDomain() *document.Line {
	return &document.Line{
		BaseEntity:    m.BaseModel.ToDomain(),
		HeaderID:      m.HeaderID,
		Kind:          m.Kind,
		ProductID:     m.ProductID,
		Description:   m.Description,
		Quantity:      m.Quantity,
		UnitAmount:    m.UnitAmount,
		MilestoneFlag: m.MilestoneFlag,
		SourceType:    m.SourceType,
		SourceLineID:  m.SourceLineID,
		SourceID:      m.SourceID,
	}
}

// FromDomain populates the persistence model from a domain Line entity.
func (m *DocumentLineModel) FromDomain(l *document.Line) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.HeaderID = l.HeaderID
	m.Kind = l.Kind
	m.ProductID = l.ProductID
	m.Description = l.Description
	m.Quantity = l.Quantity
	m.UnitAmount = l.UnitAmount
	m.MilestoneFlag = l.MilestoneFlag
	m.SourceType = l.SourceType
	m.SourceLineID = l.SourceLineID
	m.SourceID = l.SourceID
}

// DocumentLineModelFromDomain creates a new persistence model from a domain Line entity.
func DocumentLineModelFromDomain(l *document.Line) *DocumentLineModel {
	m := &DocumentLineModel{}
	m.FromDomain(l)
	return m
}
