// Package render turns an invoice and a computed totals snapshot into the
// three export representations: print document, chat message, and email.
// Every figure in every output comes from the one Totals value passed in;
// nothing here recomputes.
package render

import (
	"fmt"
	"strconv"
	"time"
)

// money formats a currency figure with the rupee symbol and two decimals.
// Rounding happens here and only here.
func money(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// date formats a date in day/month/year order.
func date(t time.Time) string {
	return t.Format("02/01/2006")
}

// qty formats a quantity without trailing zeros (2, 2.5, 0.25).
func qty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
