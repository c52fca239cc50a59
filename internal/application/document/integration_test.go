package document_test

import (
	"context"
	"testing"
	"time"

	appdocument "github.com/backoffice/backend/internal/application/document"
	"github.com/backoffice/backend/internal/domain/document"
	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/backoffice/backend/internal/domain/project"
	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/backoffice/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newIntegrationService wires a document service for the given kind against
// real repositories over an in-memory database.
func newIntegrationService(t *testing.T, kind document.Kind) (*appdocument.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PartnerModel{},
		&models.ProductModel{},
		&models.ProjectModel{},
		&models.DocumentHeaderModel{},
		&models.DocumentLineModel{},
	))

	service := appdocument.NewService(kind,
		persistence.NewGormHeaderRepository(db),
		persistence.NewGormLineRepository(db),
		persistence.NewGormProjectRepository(db),
		persistence.NewGormPartnerRepository(db),
		persistence.NewGormProductRepository(db),
	)
	return service, db
}

// TestSalesOrderLifecycle walks a sales order from creation through a line
// reprice to deletion, checking the derived total at every step.
func TestSalesOrderLifecycle(t *testing.T) {
	service, db := newIntegrationService(t, document.KindSalesOrder)
	ctx := context.Background()

	projects := persistence.NewGormProjectRepository(db)
	partners := persistence.NewGormPartnerRepository(db)

	p1, err := project.NewProject("P1", "Pilot project")
	require.NoError(t, err)
	require.NoError(t, projects.Save(ctx, p1))

	acme, err := masterdata.NewPartner("Acme Corp", masterdata.PartnerTypeCustomer)
	require.NoError(t, err)
	require.NoError(t, partners.Save(ctx, acme))

	// Create SO-1 scoped to P1 for Acme.
	header, err := service.CreateHeader(ctx, appdocument.CreateHeaderRequest{
		Number:       "SO-1",
		ProjectID:    p1.ID,
		PartyID:      acme.ID,
		DocumentDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, document.StatusDraft, header.Status)

	// One line at 250; the document total follows.
	line, err := service.CreateLine(ctx, header.ID, appdocument.CreateLineRequest{
		Description: "Implementation services",
		UnitAmount:  decimal.NewFromInt(250),
	})
	require.NoError(t, err)
	assert.True(t, line.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(250)))

	detail, err := service.GetHeader(ctx, header.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Total)
	assert.True(t, detail.Total.Equal(decimal.NewFromInt(250)))

	// Reprice to 200; the stored row changes, the total is re-derived.
	newAmount := decimal.NewFromInt(200)
	updated, err := service.UpdateLine(ctx, header.ID, line.ID, appdocument.UpdateLineRequest{
		UnitAmount: &newAmount,
	})
	require.NoError(t, err)
	assert.True(t, updated.LineTotal.Equal(decimal.NewFromInt(200)))

	list, err := service.ListLines(ctx, header.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	assert.True(t, list.DocumentTotal.Equal(decimal.NewFromInt(200)))

	// Delete the line; the document totals back to zero.
	require.NoError(t, service.DeleteLine(ctx, header.ID, line.ID))
	detail, err = service.GetHeader(ctx, header.ID)
	require.NoError(t, err)
	assert.True(t, detail.Total.Equal(decimal.Zero))

	// Header delete reports the cascaded line count.
	result, err := service.DeleteHeader(ctx, header.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.LinesDeleted)
}

// TestInvoiceProvenanceAcrossServices bills a sales order line from a
// customer invoice and verifies the provenance link is validated against
// the real line table.
func TestInvoiceProvenanceAcrossServices(t *testing.T) {
	soService, db := newIntegrationService(t, document.KindSalesOrder)
	ctx := context.Background()

	invService := appdocument.NewService(document.KindCustomerInvoice,
		persistence.NewGormHeaderRepository(db),
		persistence.NewGormLineRepository(db),
		persistence.NewGormProjectRepository(db),
		persistence.NewGormPartnerRepository(db),
		persistence.NewGormProductRepository(db),
	)

	projects := persistence.NewGormProjectRepository(db)
	partners := persistence.NewGormPartnerRepository(db)

	p1, err := project.NewProject("P1", "Pilot project")
	require.NoError(t, err)
	require.NoError(t, projects.Save(ctx, p1))
	acme, err := masterdata.NewPartner("Acme Corp", masterdata.PartnerTypeCustomer)
	require.NoError(t, err)
	require.NoError(t, partners.Save(ctx, acme))

	so, err := soService.CreateHeader(ctx, appdocument.CreateHeaderRequest{
		Number:       "SO-1",
		ProjectID:    p1.ID,
		PartyID:      acme.ID,
		DocumentDate: time.Now(),
	})
	require.NoError(t, err)
	soLine, err := soService.CreateLine(ctx, so.ID, appdocument.CreateLineRequest{
		Description: "Milestone 1",
		UnitAmount:  decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	invoice, err := invService.CreateHeader(ctx, appdocument.CreateHeaderRequest{
		Number:       "INV-1",
		ProjectID:    p1.ID,
		PartyID:      acme.ID,
		DocumentDate: time.Now(),
	})
	require.NoError(t, err)

	billed, err := invService.CreateLine(ctx, invoice.ID, appdocument.CreateLineRequest{
		Description:  "Billed milestone 1",
		UnitAmount:   decimal.NewFromInt(1000),
		SourceLineID: &soLine.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, billed.SourceLineID)
	assert.Equal(t, soLine.ID, *billed.SourceLineID)

	// Deleting the sales order severs the link but keeps the invoice line.
	_, err = soService.DeleteHeader(ctx, so.ID)
	require.NoError(t, err)

	invDetail, err := invService.GetHeader(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, invDetail.Lines, 1)
	assert.Nil(t, invDetail.Lines[0].SourceLineID)
	assert.True(t, invDetail.Total.Equal(decimal.NewFromInt(1000)))
}
