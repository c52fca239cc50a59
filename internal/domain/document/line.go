package document

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SourceType records where a customer invoice line originated.
type SourceType string

const (
	SourceTypeManual     SourceType = "manual"
	SourceTypeTimesheet  SourceType = "timesheet"
	SourceTypeExpense    SourceType = "expense"
	SourceTypeSalesOrder SourceType = "sales_order"
)

// IsValid checks if the source type is a valid SourceType
func (s SourceType) IsValid() bool {
	switch s {
	case SourceTypeManual, SourceTypeTimesheet, SourceTypeExpense, SourceTypeSalesOrder:
		return true
	}
	return false
}

// String returns the string representation of SourceType
func (s SourceType) String() string {
	return string(s)
}

// Line is a single billable or orderable entry belonging to one header.
// Quantity is stored to 4 decimal places, the unit amount to 2; the line
// total is always derived, never persisted.
//
// Per-kind extras share one shape: the milestone flag is meaningful on
// sales order lines, SourceType/SourceID on customer invoice lines, and
// SourceLineID carries the cross-document provenance link (invoice line →
// sales order line, bill line → purchase order line). Provenance is purely
// informational: it must point at an existing line at write time but no
// mutation ever propagates across it.
type Line struct {
	shared.BaseEntity
	HeaderID      uuid.UUID
	Kind          Kind
	ProductID     *uuid.UUID
	Description   string
	Quantity      decimal.Decimal
	UnitAmount    decimal.Decimal
	MilestoneFlag bool
	SourceType    SourceType
	SourceLineID  *uuid.UUID
	SourceID      *uuid.UUID
}

// NewLine creates a new document line. Header, product, and provenance
// existence are checked by the application service.
func NewLine(kind Kind, headerID uuid.UUID, description string, quantity, unitAmount decimal.Decimal) (*Line, error) {
	def, ok := DefinitionOf(kind)
	if !ok {
		return nil, shared.NewValidationError("INVALID_KIND", "Unknown document kind")
	}
	if headerID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_HEADER", def.Name+" ID is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewValidationError("INVALID_DESCRIPTION", "Description is required")
	}
	if len(description) > 255 {
		return nil, shared.NewValidationError("INVALID_DESCRIPTION", "Description cannot exceed 255 characters")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("INVALID_QUANTITY", "Quantity must be greater than 0")
	}
	if unitAmount.IsNegative() {
		return nil, shared.NewValidationError("INVALID_UNIT_AMOUNT", "Unit amount cannot be negative")
	}

	line := &Line{
		BaseEntity:  shared.NewBaseEntity(),
		HeaderID:    headerID,
		Kind:        kind,
		Description: description,
		Quantity:    quantity.Round(4),
		UnitAmount:  unitAmount.Round(2),
	}
	if def.HasInvoiceSource {
		line.SourceType = SourceTypeManual
	}
	return line, nil
}

// Definition returns the per-kind definition of this line's document kind.
func (l *Line) Definition() Definition {
	return MustDefinition(l.Kind)
}

// Total computes quantity × unit amount. Recomputed on every read so edits
// can never desynchronize it.
func (l *Line) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitAmount)
}

// UpdateDescription changes the line description
func (l *Line) UpdateDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewValidationError("INVALID_DESCRIPTION", "Description is required")
	}
	if len(description) > 255 {
		return shared.NewValidationError("INVALID_DESCRIPTION", "Description cannot exceed 255 characters")
	}
	l.Description = description
	l.Touch()
	return nil
}

// UpdateQuantity changes the quantity
func (l *Line) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("INVALID_QUANTITY", "Quantity must be greater than 0")
	}
	l.Quantity = quantity.Round(4)
	l.Touch()
	return nil
}

// UpdateUnitAmount changes the unit price or cost
func (l *Line) UpdateUnitAmount(unitAmount decimal.Decimal) error {
	if unitAmount.IsNegative() {
		return shared.NewValidationError("INVALID_UNIT_AMOUNT", "Unit amount cannot be negative")
	}
	l.UnitAmount = unitAmount.Round(2)
	l.Touch()
	return nil
}

// SetProduct links or unlinks the optional product reference. Existence of
// the product is checked by the service.
func (l *Line) SetProduct(productID *uuid.UUID) {
	l.ProductID = productID
	l.Touch()
}

// SetMilestoneFlag sets the milestone flag on kinds that carry one.
func (l *Line) SetMilestoneFlag(flag bool) error {
	if !l.Definition().HasMilestoneFlag {
		return shared.NewValidationError("UNSUPPORTED_FIELD", l.Definition().Name+" lines do not carry a milestone flag")
	}
	l.MilestoneFlag = flag
	l.Touch()
	return nil
}

// SetSource sets the invoice source fields. The source ID is opaque and
// never dereferenced.
func (l *Line) SetSource(sourceType SourceType, sourceID *uuid.UUID) error {
	if !l.Definition().HasInvoiceSource {
		return shared.NewValidationError("UNSUPPORTED_FIELD", l.Definition().Name+" lines do not carry source fields")
	}
	if !sourceType.IsValid() {
		return shared.NewValidationError("INVALID_SOURCE_TYPE", "Source type must be manual, timesheet, expense, or sales_order")
	}
	l.SourceType = sourceType
	l.SourceID = sourceID
	l.Touch()
	return nil
}

// SetProvenance links or unlinks the cross-document source line on kinds
// that carry one. Existence of the target line is checked by the service.
func (l *Line) SetProvenance(sourceLineID *uuid.UUID) error {
	if !l.Definition().HasProvenance() {
		return shared.NewValidationError("UNSUPPORTED_FIELD", l.Definition().Name+" lines do not carry a provenance link")
	}
	l.SourceLineID = sourceLineID
	l.Touch()
	return nil
}
