package document

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a header is created without one.
// Currency tags are opaque: length/alpha-checked and uppercased, never
// validated against an ISO list and never converted.
const DefaultCurrency = "INR"

// Header is the top-level record of a commercial document. One type serves
// all four kinds; the kind's Definition decides the party constraint, the
// status enum, and whether a due date exists.
type Header struct {
	shared.BaseEntity
	Kind         Kind
	Number       string
	ProjectID    uuid.UUID
	PartyID      uuid.UUID
	DocumentDate time.Time
	DueDate      *time.Time
	Status       Status
	Currency     string
	Notes        string
	// Lines is populated only when the header is loaded with line detail.
	Lines []Line
}

// NewHeader creates a new document header. Project and party existence and
// the party-type constraint are checked by the application service, which
// owns the lookups.
func NewHeader(kind Kind, number string, projectID, partyID uuid.UUID, documentDate time.Time) (*Header, error) {
	def, ok := DefinitionOf(kind)
	if !ok {
		return nil, shared.NewValidationError("INVALID_KIND", fmt.Sprintf("Unknown document kind %q", kind))
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewValidationError("INVALID_NUMBER", def.NumberLabel+" is required")
	}
	if len(number) > 40 {
		return nil, shared.NewValidationError("INVALID_NUMBER", def.NumberLabel+" cannot exceed 40 characters")
	}
	if projectID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PROJECT", "Project ID is required")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PARTY", "Party ID is required")
	}
	if documentDate.IsZero() {
		return nil, shared.NewValidationError("INVALID_DATE", def.DateLabel+" is required")
	}

	return &Header{
		BaseEntity:   shared.NewBaseEntity(),
		Kind:         kind,
		Number:       number,
		ProjectID:    projectID,
		PartyID:      partyID,
		DocumentDate: documentDate,
		Status:       def.DefaultStatus,
		Currency:     DefaultCurrency,
	}, nil
}

// Definition returns the per-kind definition of this header.
func (h *Header) Definition() Definition {
	return MustDefinition(h.Kind)
}

// ChangeNumber changes the document number. Uniqueness within the kind is
// re-checked by the service only when the number actually changes.
func (h *Header) ChangeNumber(number string) error {
	def := h.Definition()
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewValidationError("INVALID_NUMBER", def.NumberLabel+" is required")
	}
	if len(number) > 40 {
		return shared.NewValidationError("INVALID_NUMBER", def.NumberLabel+" cannot exceed 40 characters")
	}
	h.Number = number
	h.Touch()
	return nil
}

// ChangeStatus sets the status. Any member of the kind's enum is accepted
// regardless of the current status; the lifecycle is advisory, not enforced.
func (h *Header) ChangeStatus(status Status) error {
	def := h.Definition()
	if !def.AllowsStatus(status) {
		return shared.NewValidationError("INVALID_STATUS", fmt.Sprintf("Status must be one of %s", statusList(def.Statuses)))
	}
	h.Status = status
	h.Touch()
	return nil
}

// ChangeCurrency sets the currency tag after normalizing it.
func (h *Header) ChangeCurrency(currency string) error {
	normalized, err := NormalizeCurrency(currency)
	if err != nil {
		return err
	}
	h.Currency = normalized
	h.Touch()
	return nil
}

// ChangeProject rescopes the document to another project. Existence of the
// target project is checked by the service.
func (h *Header) ChangeProject(projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return shared.NewValidationError("INVALID_PROJECT", "Project ID is required")
	}
	h.ProjectID = projectID
	h.Touch()
	return nil
}

// ChangeParty reassigns the document party. The party-type constraint is
// re-checked by the service whenever the party changes.
func (h *Header) ChangeParty(partyID uuid.UUID) error {
	if partyID == uuid.Nil {
		return shared.NewValidationError("INVALID_PARTY", "Party ID is required")
	}
	h.PartyID = partyID
	h.Touch()
	return nil
}

// ChangeDocumentDate sets the primary date.
func (h *Header) ChangeDocumentDate(documentDate time.Time) error {
	if documentDate.IsZero() {
		return shared.NewValidationError("INVALID_DATE", h.Definition().DateLabel+" is required")
	}
	h.DocumentDate = documentDate
	h.Touch()
	return nil
}

// SetDueDate sets or clears the due date on kinds that carry one.
// The due date is deliberately not ordered against the document date.
func (h *Header) SetDueDate(dueDate *time.Time) error {
	if !h.Definition().HasDueDate {
		return shared.NewValidationError("UNSUPPORTED_FIELD", h.Definition().Name+" does not carry a due date")
	}
	h.DueDate = dueDate
	h.Touch()
	return nil
}

// SetNotes sets the free-text notes
func (h *Header) SetNotes(notes string) {
	h.Notes = notes
	h.Touch()
}

// Total derives the document total from the loaded line set. It is never
// stored; a header loaded without lines totals to zero.
func (h *Header) Total() decimal.Decimal {
	return DocumentTotal(h.Lines)
}

// LineCount returns the number of loaded lines
func (h *Header) LineCount() int {
	return len(h.Lines)
}

// IsTerminal reports whether the current status is terminal for this kind.
func (h *Header) IsTerminal() bool {
	return h.Definition().IsTerminal(h.Status)
}

// NormalizeCurrency validates a currency tag (exactly three letters) and
// returns it uppercased. The tag is never resolved against a rate table.
func NormalizeCurrency(currency string) (string, error) {
	currency = strings.TrimSpace(currency)
	if len(currency) != 3 {
		return "", shared.NewValidationError("INVALID_CURRENCY", "Currency must be a 3-letter code")
	}
	for _, r := range currency {
		if !unicode.IsLetter(r) {
			return "", shared.NewValidationError("INVALID_CURRENCY", "Currency must be a 3-letter code")
		}
	}
	return strings.ToUpper(currency), nil
}

func statusList(statuses []Status) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
