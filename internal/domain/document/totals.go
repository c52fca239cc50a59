package document

import "github.com/shopspring/decimal"

// DocumentTotal sums the totals of the given line set. It is a pure
// function over current line state: no caching, no persisted column, so the
// result is exactly consistent with the lines at read time. Two reads with
// concurrent line edits in between may legitimately differ.
func DocumentTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].Total())
	}
	return total
}
