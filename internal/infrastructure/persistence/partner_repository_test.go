package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/document"
	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPartner(t *testing.T, name string, partnerType masterdata.PartnerType) *masterdata.Partner {
	t.Helper()
	partner, err := masterdata.NewPartner(name, partnerType)
	require.NoError(t, err)
	return partner
}

func TestGormPartnerRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPartnerRepository(db)
	ctx := context.Background()

	partner := mustPartner(t, "Acme Corp", masterdata.PartnerTypeCustomer)
	partner.UpdateContact("billing@acme.example", "+91-555-0101", "TAX-001")
	require.NoError(t, repo.Save(ctx, partner))

	found, err := repo.FindByID(ctx, partner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.Name)
	assert.Equal(t, masterdata.PartnerTypeCustomer, found.Type)
	assert.Equal(t, "billing@acme.example", found.Email)

	byName, err := repo.FindByName(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, partner.ID, byName.ID)
}

func TestGormPartnerRepository_FindAll_FiltersByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPartnerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustPartner(t, "Beta Supplies", masterdata.PartnerTypeVendor)))
	require.NoError(t, repo.Save(ctx, mustPartner(t, "Acme Corp", masterdata.PartnerTypeCustomer)))
	require.NoError(t, repo.Save(ctx, mustPartner(t, "Gamma Trading", masterdata.PartnerTypeBoth)))

	filter := shared.Filter{OrderBy: "name", OrderDir: "asc"}
	all, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Acme Corp", all[0].Name)

	vendors, err := repo.FindAll(ctx, filter.WithFilter("partner_type", masterdata.PartnerTypeVendor))
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Beta Supplies", vendors[0].Name)
}

func TestGormPartnerRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPartnerRepository(db)
	headers := NewGormHeaderRepository(db)
	ctx := context.Background()

	t.Run("deletes unreferenced partner", func(t *testing.T) {
		partner := mustPartner(t, "Ephemeral Ltd", masterdata.PartnerTypeCustomer)
		require.NoError(t, repo.Save(ctx, partner))

		require.NoError(t, repo.Delete(ctx, partner.ID))

		_, err := repo.FindByID(ctx, partner.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("refuses delete while documents reference the partner", func(t *testing.T) {
		partner := mustPartner(t, "Sticky Corp", masterdata.PartnerTypeCustomer)
		require.NoError(t, repo.Save(ctx, partner))

		header, err := document.NewHeader(document.KindSalesOrder, "SO-REF-1", uuid.New(), partner.ID, time.Now())
		require.NoError(t, err)
		require.NoError(t, headers.Save(ctx, header))

		err = repo.Delete(ctx, partner.ID)

		require.Error(t, err)
		assert.True(t, shared.IsConflict(err))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PARTNER_IN_USE", domainErr.Code)

		// Partner survives the refused delete.
		_, err = repo.FindByID(ctx, partner.ID)
		assert.NoError(t, err)
	})

	t.Run("returns not found for unknown partner", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormPartnerRepository_ExistsByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPartnerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustPartner(t, "Acme Corp", masterdata.PartnerTypeCustomer)))

	exists, err := repo.ExistsByName(ctx, "Acme Corp")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Nobody Inc")
	require.NoError(t, err)
	assert.False(t, exists)
}
