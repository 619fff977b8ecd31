package render

import (
	"fmt"
	"strings"

	"github.com/hmorganics/dairybill/internal/domain"
)

// EmailMessage is a rendered email draft.
type EmailMessage struct {
	Subject string
	Body    string
}

// Email renders the invoice as a formal email draft addressed to the
// customer by name.
func Email(inv *domain.Invoice, totals domain.Totals) EmailMessage {
	subject := fmt.Sprintf("Invoice %s from %s", inv.Number, inv.Company.Name)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Dear %s,\n\n", inv.Customer.Name))
	b.WriteString("Thank you for your order! Please find your invoice details below:\n\n")
	b.WriteString(fmt.Sprintf("Invoice Number: %s\n", inv.Number))
	b.WriteString(fmt.Sprintf("Date: %s\n\n", date(inv.Date)))

	b.WriteString("Products Ordered:\n")
	for i, li := range inv.SelectedItems() {
		b.WriteString(fmt.Sprintf("%d. %s - %s %s @ %s = %s\n",
			i+1, li.Name, qty(li.Quantity), li.Unit, money(li.Rate), money(li.Amount)))
	}

	b.WriteString(fmt.Sprintf("\nTotal Amount: %s\n", money(totals.Total)))

	if totals.DueAmount != nil {
		b.WriteString(fmt.Sprintf("Amount Paid: %s\n", money(*totals.AmountPaid)))
		b.WriteString(fmt.Sprintf("Due Amount: %s\n", money(*totals.DueAmount)))
		if *totals.DueAmount > dueReminderThreshold {
			b.WriteString("\nPlease clear the due amount at your earliest convenience.\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n%s\n", inv.Company.Name))
	b.WriteString(fmt.Sprintf("%s\n\n", inv.Company.Address))

	b.WriteString(fmt.Sprintf("Thank you for choosing %s!\n", inv.Company.Name))
	b.WriteString(fmt.Sprintf("%s\n", inv.Company.Tagline))
	b.WriteString("For any queries, contact us at the above address\n\n")

	b.WriteString(fmt.Sprintf("Best regards,\n%s Team", inv.Company.Name))

	return EmailMessage{Subject: subject, Body: b.String()}
}
