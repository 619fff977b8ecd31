package domain

// Jurisdiction determines how GST on a sale is split between the central and
// state components.
type Jurisdiction int

const (
	// IntraState splits each item's GST evenly into CGST and SGST.
	IntraState Jurisdiction = iota
	// InterState routes each item's GST to IGST. No current caller passes
	// this; the capability exists so activating inter-state tax is a
	// one-line change at the call site.
	InterState
)

// Totals holds the derived aggregate figures for an invoice snapshot.
// AmountPaid and DueAmount are present only when due tracking is enabled.
type Totals struct {
	Subtotal   float64
	CGSTAmount float64
	SGSTAmount float64
	IGSTAmount float64
	TotalTax   float64
	Total      float64
	AmountPaid *float64
	DueAmount  *float64
}

// ComputeTotals derives the invoice totals from the current line items. It
// is pure: the invoice is never mutated, and calling it twice on an
// unmodified invoice yields identical results. Rows without a selected
// product are skipped entirely. Figures accumulate at full float precision;
// rounding to two decimals happens at presentation time only.
func ComputeTotals(inv *Invoice, j Jurisdiction) Totals {
	var t Totals

	for _, li := range inv.Items {
		if !li.Selected() {
			continue
		}
		t.Subtotal += li.Amount

		if !inv.GSTEnabled || li.GSTRate == "0%" {
			continue
		}
		itemTax := li.Amount * GSTRateFraction(li.GSTRate)
		if j == InterState {
			t.IGSTAmount += itemTax
		} else {
			t.CGSTAmount += itemTax / 2
			t.SGSTAmount += itemTax / 2
		}
		t.TotalTax += itemTax
	}

	t.Total = t.Subtotal + t.TotalTax

	if inv.DueEnabled {
		paid := inv.AmountPaid
		due := t.Total - paid
		if due < 0 {
			due = 0
		}
		t.AmountPaid = &paid
		t.DueAmount = &due
	}

	return t
}
