package document

import (
	"github.com/backoffice/backend/internal/domain/masterdata"
)

// Kind identifies one of the four commercial document kinds. All four share
// the same header/line shape; the per-kind differences live in Definition.
type Kind string

const (
	KindSalesOrder      Kind = "sales_order"
	KindPurchaseOrder   Kind = "purchase_order"
	KindCustomerInvoice Kind = "customer_invoice"
	KindVendorBill      Kind = "vendor_bill"
)

// IsValid checks if the kind is a known document kind
func (k Kind) IsValid() bool {
	_, ok := definitions[k]
	return ok
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// Kinds returns all document kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindSalesOrder, KindPurchaseOrder, KindCustomerInvoice, KindVendorBill}
}

// Definition captures what varies between the four document kinds: the
// human-readable number label, which side of the partner relationship the
// party must satisfy, the status enum, and which line extras exist.
type Definition struct {
	Kind          Kind
	Name          string // display name, e.g. "Sales order"
	NumberLabel   string // wire name of the document number, e.g. "so_number"
	DateLabel     string // wire name of the primary date, e.g. "order_date"
	PartyRole     masterdata.PartyRole
	Statuses      []Status
	DefaultStatus Status
	Terminal      []Status // recommended terminal states; not enforced
	HasDueDate    bool
	// Line capabilities
	HasMilestoneFlag bool // sales order lines carry a milestone flag
	HasInvoiceSource bool // customer invoice lines carry source_type/source_id
	SourceKind       Kind // kind whose lines may be referenced as provenance, "" if none
	// RevenueStatuses are the statuses whose lines count toward the
	// statistics total value (confirmed orders, posted+paid invoices).
	RevenueStatuses []Status
}

var definitions = map[Kind]Definition{
	KindSalesOrder: {
		Kind:             KindSalesOrder,
		Name:             "Sales order",
		NumberLabel:      "so_number",
		DateLabel:        "order_date",
		PartyRole:        masterdata.PartyRoleCustomer,
		Statuses:         []Status{StatusDraft, StatusConfirmed, StatusCancelled, StatusClosed},
		DefaultStatus:    StatusDraft,
		Terminal:         []Status{StatusClosed, StatusCancelled},
		HasMilestoneFlag: true,
		RevenueStatuses:  []Status{StatusConfirmed},
	},
	KindPurchaseOrder: {
		Kind:            KindPurchaseOrder,
		Name:            "Purchase order",
		NumberLabel:     "po_number",
		DateLabel:       "order_date",
		PartyRole:       masterdata.PartyRoleVendor,
		Statuses:        []Status{StatusDraft, StatusConfirmed, StatusCancelled, StatusClosed},
		DefaultStatus:   StatusDraft,
		Terminal:        []Status{StatusClosed, StatusCancelled},
		RevenueStatuses: []Status{StatusConfirmed},
	},
	KindCustomerInvoice: {
		Kind:             KindCustomerInvoice,
		Name:             "Customer invoice",
		NumberLabel:      "invoice_number",
		DateLabel:        "invoice_date",
		PartyRole:        masterdata.PartyRoleCustomer,
		Statuses:         []Status{StatusDraft, StatusPosted, StatusPaid, StatusVoid},
		DefaultStatus:    StatusDraft,
		Terminal:         []Status{StatusPaid, StatusVoid},
		HasDueDate:       true,
		HasInvoiceSource: true,
		SourceKind:       KindSalesOrder,
		RevenueStatuses:  []Status{StatusPosted, StatusPaid},
	},
	KindVendorBill: {
		Kind:            KindVendorBill,
		Name:            "Vendor bill",
		NumberLabel:     "bill_number",
		DateLabel:       "bill_date",
		PartyRole:       masterdata.PartyRoleVendor,
		Statuses:        []Status{StatusDraft, StatusPosted, StatusPaid, StatusVoid},
		DefaultStatus:   StatusDraft,
		Terminal:        []Status{StatusPaid, StatusVoid},
		HasDueDate:      true,
		SourceKind:      KindPurchaseOrder,
		RevenueStatuses: []Status{StatusPosted, StatusPaid},
	},
}

// DefinitionOf returns the definition of the given kind.
// The boolean is false for unknown kinds.
func DefinitionOf(kind Kind) (Definition, bool) {
	def, ok := definitions[kind]
	return def, ok
}

// MustDefinition returns the definition of a kind known to be valid.
// Panics on unknown kinds; callers validate the kind first.
func MustDefinition(kind Kind) Definition {
	def, ok := definitions[kind]
	if !ok {
		panic("unknown document kind: " + string(kind))
	}
	return def
}

// AllowsStatus reports whether the status belongs to this kind's enum.
func (d Definition) AllowsStatus(status Status) bool {
	for _, s := range d.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status is terminal for this kind.
// Terminal is advisory: no transition out of it is blocked.
func (d Definition) IsTerminal(status Status) bool {
	for _, s := range d.Terminal {
		if s == status {
			return true
		}
	}
	return false
}

// HasProvenance reports whether lines of this kind may carry a link to a
// line of another document kind.
func (d Definition) HasProvenance() bool {
	return d.SourceKind != ""
}
