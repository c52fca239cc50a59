package document

import (
	"time"

	"github.com/backoffice/backend/internal/domain/document"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateHeaderRequest carries the fields to create a document header.
// Status and currency fall back to the kind's defaults when omitted.
type CreateHeaderRequest struct {
	Number       string           `json:"number" validate:"required,max=40"`
	ProjectID    uuid.UUID        `json:"project_id" validate:"required"`
	PartyID      uuid.UUID        `json:"party_id" validate:"required"`
	DocumentDate time.Time        `json:"document_date" validate:"required"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	Status       *document.Status `json:"status,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// UpdateHeaderRequest carries a partial header update. Nil fields are left
// untouched; ClearDueDate removes the due date explicitly.
type UpdateHeaderRequest struct {
	Number       *string          `json:"number,omitempty" validate:"omitempty,max=40"`
	ProjectID    *uuid.UUID       `json:"project_id,omitempty"`
	PartyID      *uuid.UUID       `json:"party_id,omitempty"`
	DocumentDate *time.Time       `json:"document_date,omitempty"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	ClearDueDate bool             `json:"clear_due_date,omitempty"`
	Status       *document.Status `json:"status,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// CreateLineRequest carries the fields to create a document line.
// Quantity defaults to 1 when omitted.
type CreateLineRequest struct {
	Description   string               `json:"description" validate:"required,max=255"`
	Quantity      *decimal.Decimal     `json:"quantity,omitempty"`
	UnitAmount    decimal.Decimal      `json:"unit_amount"`
	ProductID     *uuid.UUID           `json:"product_id,omitempty"`
	MilestoneFlag *bool                `json:"milestone_flag,omitempty"`
	SourceType    *document.SourceType `json:"source_type,omitempty"`
	SourceLineID  *uuid.UUID           `json:"source_line_id,omitempty"`
	SourceID      *uuid.UUID           `json:"source_id,omitempty"`
}

// UpdateLineRequest carries a partial line update. Only changed numeric
// fields are re-validated; ClearProduct and ClearSourceLine remove the
// respective optional references.
type UpdateLineRequest struct {
	Description     *string              `json:"description,omitempty" validate:"omitempty,max=255"`
	Quantity        *decimal.Decimal     `json:"quantity,omitempty"`
	UnitAmount      *decimal.Decimal     `json:"unit_amount,omitempty"`
	ProductID       *uuid.UUID           `json:"product_id,omitempty"`
	ClearProduct    bool                 `json:"clear_product,omitempty"`
	MilestoneFlag   *bool                `json:"milestone_flag,omitempty"`
	SourceType      *document.SourceType `json:"source_type,omitempty"`
	SourceLineID    *uuid.UUID           `json:"source_line_id,omitempty"`
	ClearSourceLine bool                 `json:"clear_source_line,omitempty"`
	SourceID        *uuid.UUID           `json:"source_id,omitempty"`
}

// ListFilter narrows header listings. Results are always ordered by the
// document date, newest first.
type ListFilter struct {
	Status    *document.Status `json:"status,omitempty"`
	ProjectID *uuid.UUID       `json:"project_id,omitempty"`
	PartyID   *uuid.UUID       `json:"party_id,omitempty"`
}

// LineResponse is the outward shape of a document line. LineTotal is
// derived on every read.
type LineResponse struct {
	ID            uuid.UUID            `json:"id"`
	HeaderID      uuid.UUID            `json:"header_id"`
	ProductID     *uuid.UUID           `json:"product_id"`
	Description   string               `json:"description"`
	Quantity      decimal.Decimal      `json:"quantity"`
	UnitAmount    decimal.Decimal      `json:"unit_amount"`
	LineTotal     decimal.Decimal      `json:"line_total"`
	MilestoneFlag *bool                `json:"milestone_flag,omitempty"`
	SourceType    *document.SourceType `json:"source_type,omitempty"`
	SourceLineID  *uuid.UUID           `json:"source_line_id,omitempty"`
	SourceID      *uuid.UUID           `json:"source_id,omitempty"`
}

// HeaderResponse is the outward shape of a document header. Lines, line
// count and the computed total are present only when line detail was
// requested.
type HeaderResponse struct {
	ID           uuid.UUID        `json:"id"`
	Kind         document.Kind    `json:"kind"`
	Number       string           `json:"number"`
	ProjectID    uuid.UUID        `json:"project_id"`
	PartyID      uuid.UUID        `json:"party_id"`
	DocumentDate time.Time        `json:"document_date"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	Status       document.Status  `json:"status"`
	Currency     string           `json:"currency"`
	Notes        string           `json:"notes,omitempty"`
	Lines        []LineResponse   `json:"lines,omitempty"`
	LineCount    *int             `json:"line_count,omitempty"`
	Total        *decimal.Decimal `json:"document_total,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// LineListResponse returns a header's lines together with the document
// total derived from them.
type LineListResponse struct {
	Lines         []LineResponse  `json:"lines"`
	Count         int             `json:"count"`
	DocumentTotal decimal.Decimal `json:"document_total"`
}

// DeleteHeaderResult reports what a cascading header delete removed.
type DeleteHeaderResult struct {
	LinesDeleted int64 `json:"lines_deleted"`
}

// Statistics aggregates one document kind by scanning headers and lines;
// nothing here is materialized.
type Statistics struct {
	HeadersTotal         int64                      `json:"headers_total"`
	HeadersByStatus      map[document.Status]int64  `json:"headers_by_status"`
	LinesTotal           int64                      `json:"lines_total"`
	MilestoneLines       *int64                     `json:"milestone_lines,omitempty"`
	TotalValueByCurrency map[string]decimal.Decimal `json:"total_value_by_currency"`
}

// ToLineResponse converts a domain line to its outward shape, exposing only
// the extras the kind carries.
func ToLineResponse(line *document.Line) LineResponse {
	def := line.Definition()
	resp := LineResponse{
		ID:          line.ID,
		HeaderID:    line.HeaderID,
		ProductID:   line.ProductID,
		Description: line.Description,
		Quantity:    line.Quantity,
		UnitAmount:  line.UnitAmount,
		LineTotal:   line.Total(),
	}
	if def.HasMilestoneFlag {
		flag := line.MilestoneFlag
		resp.MilestoneFlag = &flag
	}
	if def.HasInvoiceSource {
		sourceType := line.SourceType
		resp.SourceType = &sourceType
		resp.SourceID = line.SourceID
	}
	if def.HasProvenance() {
		resp.SourceLineID = line.SourceLineID
	}
	return resp
}

// ToHeaderResponse converts a domain header to its outward shape.
func ToHeaderResponse(header *document.Header) HeaderResponse {
	return HeaderResponse{
		ID:           header.ID,
		Kind:         header.Kind,
		Number:       header.Number,
		ProjectID:    header.ProjectID,
		PartyID:      header.PartyID,
		DocumentDate: header.DocumentDate,
		DueDate:      header.DueDate,
		Status:       header.Status,
		Currency:     header.Currency,
		Notes:        header.Notes,
		CreatedAt:    header.CreatedAt,
		UpdatedAt:    header.UpdatedAt,
	}
}

// ToHeaderDetailResponse converts a header loaded with lines, attaching the
// line set, its count, and the derived document total.
func ToHeaderDetailResponse(header *document.Header) HeaderResponse {
	resp := ToHeaderResponse(header)
	resp.Lines = make([]LineResponse, len(header.Lines))
	for i := range header.Lines {
		resp.Lines[i] = ToLineResponse(&header.Lines[i])
	}
	count := len(header.Lines)
	total := header.Total()
	resp.LineCount = &count
	resp.Total = &total
	return resp
}

// ToHeaderResponses converts a header slice for list results.
func ToHeaderResponses(headers []document.Header) []HeaderResponse {
	responses := make([]HeaderResponse, len(headers))
	for i := range headers {
		responses[i] = ToHeaderResponse(&headers[i])
	}
	return responses
}
