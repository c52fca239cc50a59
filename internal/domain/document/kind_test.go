package document

import (
	"testing"

	"github.com/backoffice/backend/internal/domain/masterdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_IsValid(t *testing.T) {
	for _, kind := range Kinds() {
		assert.True(t, kind.IsValid(), kind)
	}
	assert.False(t, Kind("credit_note").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestDefinitionOf(t *testing.T) {
	t.Run("party roles", func(t *testing.T) {
		so := MustDefinition(KindSalesOrder)
		po := MustDefinition(KindPurchaseOrder)
		inv := MustDefinition(KindCustomerInvoice)
		bill := MustDefinition(KindVendorBill)

		assert.Equal(t, masterdata.PartyRoleCustomer, so.PartyRole)
		assert.Equal(t, masterdata.PartyRoleVendor, po.PartyRole)
		assert.Equal(t, masterdata.PartyRoleCustomer, inv.PartyRole)
		assert.Equal(t, masterdata.PartyRoleVendor, bill.PartyRole)
	})

	t.Run("due dates only on invoices and bills", func(t *testing.T) {
		assert.False(t, MustDefinition(KindSalesOrder).HasDueDate)
		assert.False(t, MustDefinition(KindPurchaseOrder).HasDueDate)
		assert.True(t, MustDefinition(KindCustomerInvoice).HasDueDate)
		assert.True(t, MustDefinition(KindVendorBill).HasDueDate)
	})

	t.Run("provenance targets", func(t *testing.T) {
		assert.Equal(t, KindSalesOrder, MustDefinition(KindCustomerInvoice).SourceKind)
		assert.Equal(t, KindPurchaseOrder, MustDefinition(KindVendorBill).SourceKind)
		assert.False(t, MustDefinition(KindSalesOrder).HasProvenance())
		assert.False(t, MustDefinition(KindPurchaseOrder).HasProvenance())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, ok := DefinitionOf(Kind("quote"))
		assert.False(t, ok)
	})
}

func TestDefinition_AllowsStatus(t *testing.T) {
	order := MustDefinition(KindSalesOrder)
	invoice := MustDefinition(KindCustomerInvoice)

	assert.True(t, order.AllowsStatus(StatusDraft))
	assert.True(t, order.AllowsStatus(StatusConfirmed))
	assert.True(t, order.AllowsStatus(StatusCancelled))
	assert.True(t, order.AllowsStatus(StatusClosed))
	assert.False(t, order.AllowsStatus(StatusPosted))
	assert.False(t, order.AllowsStatus(StatusVoid))

	assert.True(t, invoice.AllowsStatus(StatusPosted))
	assert.True(t, invoice.AllowsStatus(StatusPaid))
	assert.True(t, invoice.AllowsStatus(StatusVoid))
	assert.False(t, invoice.AllowsStatus(StatusConfirmed))
	assert.False(t, invoice.AllowsStatus(StatusClosed))
}

func TestDefinition_IsTerminal(t *testing.T) {
	order := MustDefinition(KindPurchaseOrder)
	assert.True(t, order.IsTerminal(StatusClosed))
	assert.True(t, order.IsTerminal(StatusCancelled))
	assert.False(t, order.IsTerminal(StatusDraft))
	assert.False(t, order.IsTerminal(StatusConfirmed))

	bill := MustDefinition(KindVendorBill)
	assert.True(t, bill.IsTerminal(StatusPaid))
	assert.True(t, bill.IsTerminal(StatusVoid))
	assert.False(t, bill.IsTerminal(StatusPosted))
}

func TestDocumentTotal(t *testing.T) {
	t.Run("empty line set", func(t *testing.T) {
		assert.True(t, DocumentTotal(nil).IsZero())
	})

	t.Run("literal sum of quantity times unit amount", func(t *testing.T) {
		header := createTestHeader(t, KindSalesOrder)
		attachTestLine(t, header, 2, 100)
		attachTestLine(t, header, 1, 50)
		attachTestLine(t, header, 0.5, 30)

		assert.True(t, DocumentTotal(header.Lines).Equal(decimal.NewFromInt(265)))
	})

	t.Run("fractional quantities", func(t *testing.T) {
		header := createTestHeader(t, KindVendorBill)
		attachTestLine(t, header, 0.0001, 10000)

		require.Len(t, header.Lines, 1)
		assert.True(t, DocumentTotal(header.Lines).Equal(decimal.NewFromInt(1)))
	})
}
