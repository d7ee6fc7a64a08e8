// Package calc derives monetary totals from a document snapshot.
//
// Every function here is PURE:
// - No side effects
// - No stored or cached state
// - Fully deterministic for a given snapshot
//
// Values are carried unrounded; rounding to two decimals happens only
// when a number is rendered as text (see the format package), so
// repeated edits never accumulate rounding error.
package calc

import (
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
)

// Totals are the derived amounts for one snapshot.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}

// Compute recomputes all totals from scratch for the given snapshot.
// An empty item collection yields all zeros.
func Compute(doc domain.Document) Totals {
	var subtotal float64
	for _, li := range doc.Items {
		subtotal += li.Amount()
	}
	taxAmount := subtotal * (doc.TaxRate / 100)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}
