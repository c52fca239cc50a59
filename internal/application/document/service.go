package document

import (
	"context"

	"github.com/backoffice/backend/internal/application"
	"github.com/backoffice/backend/internal/domain/document"
	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/backoffice/backend/internal/domain/project"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service handles the business operations of one document kind. The same
// implementation serves sales orders, purchase orders, customer invoices,
// and vendor bills; the Definition injected at construction decides the
// kind-specific behavior.
//
// Referential checks the storage engine cannot be trusted with live here:
// project and party existence, the party-type constraint, number uniqueness
// within the kind, and provenance-target existence.
type Service struct {
	def      document.Definition
	headers  document.HeaderRepository
	lines    document.LineRepository
	projects project.Repository
	partners masterdata.PartnerRepository
	products masterdata.ProductRepository
}

// NewService creates a document service for the given kind. The kind must
// be one of the known document kinds.
func NewService(
	kind document.Kind,
	headers document.HeaderRepository,
	lines document.LineRepository,
	projects project.Repository,
	partners masterdata.PartnerRepository,
	products masterdata.ProductRepository,
) *Service {
	return &Service{
		def:      document.MustDefinition(kind),
		headers:  headers,
		lines:    lines,
		projects: projects,
		partners: partners,
		products: products,
	}
}

// Kind returns the document kind this service operates on.
func (s *Service) Kind() document.Kind {
	return s.def.Kind
}

// CreateHeader creates a new document header
func (s *Service) CreateHeader(ctx context.Context, req CreateHeaderRequest) (*HeaderResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	// Referenced project and party must exist before anything is written
	if _, err := s.projects.FindByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if err := s.checkParty(ctx, req.PartyID); err != nil {
		return nil, err
	}

	header, err := document.NewHeader(s.def.Kind, req.Number, req.ProjectID, req.PartyID, req.DocumentDate)
	if err != nil {
		return nil, err
	}

	// Number uniqueness is scoped to the kind
	taken, err := s.headers.ExistsByNumber(ctx, s.def.Kind, header.Number)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewConflictError("DUPLICATE_NUMBER", s.def.Name+" number already exists")
	}

	if req.Status != nil {
		if err := header.ChangeStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.Currency != nil {
		if err := header.ChangeCurrency(*req.Currency); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if err := header.SetDueDate(req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		header.SetNotes(req.Notes)
	}

	if err := s.headers.Save(ctx, header); err != nil {
		return nil, err
	}

	response := ToHeaderResponse(header)
	return &response, nil
}

// GetHeader retrieves a header with its lines and derived totals
func (s *Service) GetHeader(ctx context.Context, id uuid.UUID) (*HeaderResponse, error) {
	header, err := s.headers.FindByIDWithLines(ctx, s.def.Kind, id)
	if err != nil {
		return nil, err
	}
	response := ToHeaderDetailResponse(header)
	return &response, nil
}

// GetHeaderByNumber retrieves a header by its document number
func (s *Service) GetHeaderByNumber(ctx context.Context, number string) (*HeaderResponse, error) {
	header, err := s.headers.FindByNumber(ctx, s.def.Kind, number)
	if err != nil {
		return nil, err
	}
	response := ToHeaderResponse(header)
	return &response, nil
}

// ListHeaders retrieves headers ordered by document date, newest first
func (s *Service) ListHeaders(ctx context.Context, filter ListFilter) ([]HeaderResponse, error) {
	domainFilter := shared.Filter{
		OrderBy:  "document_date",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != nil {
		if !s.def.AllowsStatus(*filter.Status) {
			return nil, shared.NewValidationError("INVALID_STATUS", "Unknown "+s.def.Name+" status")
		}
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.ProjectID != nil {
		domainFilter.Filters["project_id"] = *filter.ProjectID
	}
	if filter.PartyID != nil {
		domainFilter.Filters["party_id"] = *filter.PartyID
	}

	headers, err := s.headers.FindAll(ctx, s.def.Kind, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToHeaderResponses(headers), nil
}

// UpdateHeader applies a partial update to a header
func (s *Service) UpdateHeader(ctx context.Context, id uuid.UUID, req UpdateHeaderRequest) (*HeaderResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	header, err := s.headers.FindByIDWithLines(ctx, s.def.Kind, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil && *req.Number != header.Number {
		if err := header.ChangeNumber(*req.Number); err != nil {
			return nil, err
		}
		taken, err := s.headers.ExistsByNumber(ctx, s.def.Kind, header.Number)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewConflictError("DUPLICATE_NUMBER", s.def.Name+" number already exists")
		}
	}
	if req.ProjectID != nil {
		if _, err := s.projects.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
		if err := header.ChangeProject(*req.ProjectID); err != nil {
			return nil, err
		}
	}
	if req.PartyID != nil {
		if err := s.checkParty(ctx, *req.PartyID); err != nil {
			return nil, err
		}
		if err := header.ChangeParty(*req.PartyID); err != nil {
			return nil, err
		}
	}
	if req.DocumentDate != nil {
		if err := header.ChangeDocumentDate(*req.DocumentDate); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil || req.ClearDueDate {
		dueDate := req.DueDate
		if req.ClearDueDate {
			dueDate = nil
		}
		if err := header.SetDueDate(dueDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := header.ChangeStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.Currency != nil {
		if err := header.ChangeCurrency(*req.Currency); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		header.SetNotes(*req.Notes)
	}

	if err := s.headers.Save(ctx, header); err != nil {
		return nil, err
	}

	response := ToHeaderDetailResponse(header)
	return &response, nil
}

// DeleteHeader deletes a header and its lines, reporting how many lines
// went with it
func (s *Service) DeleteHeader(ctx context.Context, id uuid.UUID) (*DeleteHeaderResult, error) {
	if _, err := s.headers.FindByID(ctx, s.def.Kind, id); err != nil {
		return nil, err
	}
	linesDeleted, err := s.headers.Delete(ctx, s.def.Kind, id)
	if err != nil {
		return nil, err
	}
	return &DeleteHeaderResult{LinesDeleted: linesDeleted}, nil
}

// CreateLine adds a line to an existing header
func (s *Service) CreateLine(ctx context.Context, headerID uuid.UUID, req CreateLineRequest) (*LineResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.headers.FindByID(ctx, s.def.Kind, headerID); err != nil {
		return nil, err
	}

	quantity := decimal.NewFromInt(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	line, err := document.NewLine(s.def.Kind, headerID, req.Description, quantity, req.UnitAmount)
	if err != nil {
		return nil, err
	}

	if req.ProductID != nil {
		if _, err := s.products.FindByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
		line.SetProduct(req.ProductID)
	}
	if req.MilestoneFlag != nil {
		if err := line.SetMilestoneFlag(*req.MilestoneFlag); err != nil {
			return nil, err
		}
	}
	if req.SourceType != nil {
		if err := line.SetSource(*req.SourceType, req.SourceID); err != nil {
			return nil, err
		}
	}
	if req.SourceLineID != nil {
		if err := s.checkProvenance(ctx, *req.SourceLineID); err != nil {
			return nil, err
		}
		if err := line.SetProvenance(req.SourceLineID); err != nil {
			return nil, err
		}
	}

	if err := s.lines.Save(ctx, line); err != nil {
		return nil, err
	}

	response := ToLineResponse(line)
	return &response, nil
}

// UpdateLine applies a partial update to a line
func (s *Service) UpdateLine(ctx context.Context, headerID, lineID uuid.UUID, req UpdateLineRequest) (*LineResponse, error) {
	if err := application.ValidateStruct(req); err != nil {
		return nil, err
	}

	line, err := s.lines.FindByID(ctx, s.def.Kind, headerID, lineID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if err := line.UpdateDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil {
		if err := line.UpdateQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.UnitAmount != nil {
		if err := line.UpdateUnitAmount(*req.UnitAmount); err != nil {
			return nil, err
		}
	}
	if req.ClearProduct {
		line.SetProduct(nil)
	} else if req.ProductID != nil {
		if _, err := s.products.FindByID(ctx, *req.ProductID); err != nil {
			return nil, err
		}
		line.SetProduct(req.ProductID)
	}
	if req.MilestoneFlag != nil {
		if err := line.SetMilestoneFlag(*req.MilestoneFlag); err != nil {
			return nil, err
		}
	}
	if req.SourceType != nil {
		sourceID := line.SourceID
		if req.SourceID != nil {
			sourceID = req.SourceID
		}
		if err := line.SetSource(*req.SourceType, sourceID); err != nil {
			return nil, err
		}
	}
	if req.ClearSourceLine {
		if err := line.SetProvenance(nil); err != nil {
			return nil, err
		}
	} else if req.SourceLineID != nil {
		if err := s.checkProvenance(ctx, *req.SourceLineID); err != nil {
			return nil, err
		}
		if err := line.SetProvenance(req.SourceLineID); err != nil {
			return nil, err
		}
	}

	if err := s.lines.Save(ctx, line); err != nil {
		return nil, err
	}

	response := ToLineResponse(line)
	return &response, nil
}

// ListLines retrieves a header's lines with the derived document total
func (s *Service) ListLines(ctx context.Context, headerID uuid.UUID) (*LineListResponse, error) {
	if _, err := s.headers.FindByID(ctx, s.def.Kind, headerID); err != nil {
		return nil, err
	}

	lines, err := s.lines.FindByHeader(ctx, s.def.Kind, headerID)
	if err != nil {
		return nil, err
	}

	responses := make([]LineResponse, len(lines))
	for i := range lines {
		responses[i] = ToLineResponse(&lines[i])
	}
	return &LineListResponse{
		Lines:         responses,
		Count:         len(lines),
		DocumentTotal: document.DocumentTotal(lines),
	}, nil
}

// DeleteLine deletes a single line
func (s *Service) DeleteLine(ctx context.Context, headerID, lineID uuid.UUID) error {
	if _, err := s.lines.FindByID(ctx, s.def.Kind, headerID, lineID); err != nil {
		return err
	}
	return s.lines.Delete(ctx, s.def.Kind, headerID, lineID)
}

// Statistics aggregates the kind's headers and lines. Everything is
// computed from current rows; no totals are stored anywhere.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{
		HeadersByStatus: make(map[document.Status]int64, len(s.def.Statuses)),
	}
	for _, status := range s.def.Statuses {
		count, err := s.headers.CountByStatus(ctx, s.def.Kind, status)
		if err != nil {
			return nil, err
		}
		stats.HeadersByStatus[status] = count
		stats.HeadersTotal += count
	}

	linesTotal, err := s.lines.Count(ctx, s.def.Kind)
	if err != nil {
		return nil, err
	}
	stats.LinesTotal = linesTotal

	if s.def.HasMilestoneFlag {
		milestone, err := s.lines.CountMilestone(ctx, s.def.Kind)
		if err != nil {
			return nil, err
		}
		stats.MilestoneLines = &milestone
	}

	totals, err := s.headers.TotalValueByCurrency(ctx, s.def.Kind, s.def.RevenueStatuses)
	if err != nil {
		return nil, err
	}
	stats.TotalValueByCurrency = totals
	return stats, nil
}

// checkParty verifies the party exists and can act on this kind's side of
// the partner relationship.
func (s *Service) checkParty(ctx context.Context, partyID uuid.UUID) error {
	partner, err := s.partners.FindByID(ctx, partyID)
	if err != nil {
		return err
	}
	if !partner.Type.CanActAs(s.def.PartyRole) {
		return shared.NewTypeMismatchError("PARTY_TYPE_MISMATCH",
			"Partner "+partner.Name+" cannot act as "+string(s.def.PartyRole)+" on a "+s.def.Name)
	}
	return nil
}

// checkProvenance verifies the provenance target line exists in the source
// document kind.
func (s *Service) checkProvenance(ctx context.Context, sourceLineID uuid.UUID) error {
	if !s.def.HasProvenance() {
		// Line.SetProvenance reports the precise validation error
		return nil
	}
	exists, err := s.lines.Exists(ctx, s.def.SourceKind, sourceLineID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewNotFoundError("SOURCE_LINE_NOT_FOUND", "Referenced source line does not exist")
	}
	return nil
}
