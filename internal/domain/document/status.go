package document

// Status represents a document lifecycle status. Orders use
// draft/confirmed/cancelled/closed; invoices and bills use
// draft/posted/paid/void. Which members are legal for a document is decided
// by its kind's Definition; the lifecycle itself is advisory — any member of
// the kind's enum may be set at any time, matching the system this replaces.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusClosed    Status = "closed"
	StatusPosted    Status = "posted"
	StatusPaid      Status = "paid"
	StatusVoid      Status = "void"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}
