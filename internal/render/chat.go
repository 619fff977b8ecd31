package render

import (
	"fmt"
	"strings"

	"github.com/hmorganics/dairybill/internal/domain"
)

// dueReminderThreshold keeps a vanishingly small residual balance from
// triggering the payment reminder.
const dueReminderThreshold = 0.01

// ChatMessage renders the invoice as one plain-text message for a chat app:
// a one-line summary, the invoice metadata, a numbered product list, totals,
// an optional payment reminder, and a sign-off. The caller is responsible
// for URL-encoding before embedding in a share link.
func ChatMessage(inv *domain.Invoice, totals domain.Totals) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Invoice: %s | Customer: %s | Total: %s",
		inv.Number, inv.Customer.Name, money(totals.Total)))
	if totals.DueAmount != nil {
		b.WriteString(fmt.Sprintf(" | Paid: %s | Due: %s",
			money(*totals.AmountPaid), money(*totals.DueAmount)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("\n*INVOICE FROM %s*\n", strings.ToUpper(inv.Company.Name)))
	b.WriteString(fmt.Sprintf("Invoice No: %s\n", inv.Number))
	b.WriteString(fmt.Sprintf("Date: %s\n", date(inv.Date)))
	b.WriteString(fmt.Sprintf("Customer: %s", inv.Customer.Name))
	if inv.Customer.Phone != "" {
		b.WriteString(fmt.Sprintf(", Phone: %s", inv.Customer.Phone))
	}
	if inv.Customer.Address != "" {
		b.WriteString(fmt.Sprintf(", Address: %s", inv.Customer.Address))
	}
	b.WriteString("\n\n")

	b.WriteString("Products:\n")
	for i, li := range inv.SelectedItems() {
		b.WriteString(fmt.Sprintf("%d. %s, Qty: %s %s, Rate: %s, Amount: %s\n",
			i+1, li.Name, qty(li.Quantity), li.Unit, money(li.Rate), money(li.Amount)))
	}

	b.WriteString(fmt.Sprintf("\nTotal Amount: %s", money(totals.Total)))

	if totals.DueAmount != nil {
		b.WriteString(fmt.Sprintf("\nPaid: %s", money(*totals.AmountPaid)))
		b.WriteString(fmt.Sprintf("\nDue: %s", money(*totals.DueAmount)))
		if *totals.DueAmount > dueReminderThreshold {
			b.WriteString("\n(Note: Please clear due amount at earliest)")
		}
	}

	b.WriteString(fmt.Sprintf("\n\nFor any queries, contact us at: %s", inv.Company.Address))
	b.WriteString(fmt.Sprintf("\n\n%s by %s", inv.Company.Tagline, inv.Company.Name))
	b.WriteString("\nThank you!")

	return b.String()
}
