package render

import (
	"strings"
	"testing"
	"time"

	"github.com/hmorganics/dairybill/internal/catalog"
	"github.com/hmorganics/dairybill/internal/domain"
)

func fixtureInvoice(t *testing.T) (*domain.Invoice, domain.Totals) {
	t.Helper()

	inv := domain.NewInvoice(domain.CompanyInfo{
		Name:    "HM Organics",
		Address: "D-003 Sai inclave Tilpta, Greater Noida (U.P)",
		Tagline: "Quality Dairy Products",
	}, "HMO")
	inv.Number = "HMO-20260830-042"
	inv.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	inv.Customer = domain.CustomerInfo{Name: "Asha Stores", Phone: "9876543210"}
	inv.GSTEnabled = true

	li := inv.AddLineItem()
	inv.SetItemProduct(li.Key, *catalog.Find("Paneer"))
	inv.SetItemQuantity(li.Key, "2")
	inv.SetItemRate(li.Key, "300")

	// An abandoned empty row; must never appear in any output.
	stray := inv.AddLineItem()
	inv.SetItemQuantity(stray.Key, "9")
	inv.SetItemRate(stray.Key, "9")

	return inv, domain.ComputeTotals(inv, domain.IntraState)
}

func TestDocumentContainsFigures(t *testing.T) {
	inv, totals := fixtureInvoice(t)

	doc, err := Document(inv, totals, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"HMO-20260830-042",
		"Asha Stores",
		"Paneer",
		"0406",
		"₹600.00", // subtotal
		"₹15.00",  // CGST and SGST
		"₹630.00", // total
		"30/08/2026",
		"GST Rate",
		"Terms &amp; Conditions",
		"Digitally Generated Invoice",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	if strings.Contains(doc, "window.print") {
		t.Error("preview document must not auto-print")
	}
	if strings.Contains(doc, "IGST") {
		t.Error("IGST row must be absent when IGST is zero")
	}
}

func TestDocumentForPrint(t *testing.T) {
	inv, totals := fixtureInvoice(t)

	doc, err := Document(inv, totals, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(doc, "window.print") {
		t.Error("print document must trigger printing")
	}
	if strings.Contains(doc, "Digitally Generated Invoice") {
		t.Error("print document must omit the digital footer")
	}
}

func TestDocumentWithoutGST(t *testing.T) {
	inv, _ := fixtureInvoice(t)
	inv.GSTEnabled = false
	totals := domain.ComputeTotals(inv, domain.IntraState)

	doc, err := Document(inv, totals, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(doc, "GST Rate") {
		t.Error("GST column must be absent when GST is disabled")
	}
	if strings.Contains(doc, "CGST") {
		t.Error("CGST row must be absent when GST is disabled")
	}
	if !strings.Contains(doc, "₹600.00") {
		t.Error("total should fall back to subtotal")
	}
}

func TestDocumentExcludesEmptyRows(t *testing.T) {
	inv, totals := fixtureInvoice(t)

	doc, err := Document(inv, totals, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(doc, "₹81.00") {
		t.Error("stray unselected row leaked into the document")
	}
	if got := strings.Count(doc, "<tr>"); got != 2 { // header row + one item
		t.Errorf("expected 2 table rows, got %d", got)
	}
}

func TestChatMessage(t *testing.T) {
	inv, totals := fixtureInvoice(t)

	msg := ChatMessage(inv, totals)

	if !strings.HasPrefix(msg, "Invoice: HMO-20260830-042 | Customer: Asha Stores | Total: ₹630.00") {
		t.Errorf("unexpected summary line: %q", strings.SplitN(msg, "\n", 2)[0])
	}
	if !strings.Contains(msg, "*INVOICE FROM HM ORGANICS*") {
		t.Error("missing header line")
	}
	if !strings.Contains(msg, "1. Paneer, Qty: 2 Kg, Rate: ₹300.00, Amount: ₹600.00") {
		t.Error("missing numbered product line")
	}
	if !strings.Contains(msg, "Phone: 9876543210") {
		t.Error("missing customer phone")
	}
	if strings.Contains(msg, "Paid:") {
		t.Error("paid line must be absent without due tracking")
	}
	if !strings.Contains(msg, "Thank you!") {
		t.Error("missing sign-off")
	}
}

func TestChatMessageDueReminder(t *testing.T) {
	inv, _ := fixtureInvoice(t)
	inv.DueEnabled = true
	inv.SetAmountPaid("400")
	totals := domain.ComputeTotals(inv, domain.IntraState)

	msg := ChatMessage(inv, totals)

	if !strings.Contains(msg, "Paid: ₹400.00 | Due: ₹230.00") {
		t.Error("summary line missing paid/due figures")
	}
	if !strings.Contains(msg, "(Note: Please clear due amount at earliest)") {
		t.Error("missing due reminder")
	}

	// Fully paid: reminder must disappear.
	inv.SetAmountPaid("700")
	totals = domain.ComputeTotals(inv, domain.IntraState)
	msg = ChatMessage(inv, totals)
	if strings.Contains(msg, "clear due amount") {
		t.Error("reminder must be absent when nothing is due")
	}
	if !strings.Contains(msg, "Due: ₹0.00") {
		t.Error("due line should show zero when overpaid")
	}
}

func TestEmail(t *testing.T) {
	inv, totals := fixtureInvoice(t)

	mail := Email(inv, totals)

	if mail.Subject != "Invoice HMO-20260830-042 from HM Organics" {
		t.Errorf("unexpected subject: %q", mail.Subject)
	}
	if !strings.HasPrefix(mail.Body, "Dear Asha Stores,") {
		t.Error("body must greet the customer by name")
	}
	if !strings.Contains(mail.Body, "1. Paneer - 2 Kg @ ₹300.00 = ₹600.00") {
		t.Error("missing numbered product line")
	}
	if !strings.Contains(mail.Body, "Total Amount: ₹630.00") {
		t.Error("missing total")
	}
	if !strings.Contains(mail.Body, "Best regards,\nHM Organics Team") {
		t.Error("missing closing")
	}
	if strings.Contains(mail.Body, "Due Amount") {
		t.Error("due paragraph must be absent without due tracking")
	}
}

func TestEmailDueParagraph(t *testing.T) {
	inv, _ := fixtureInvoice(t)
	inv.DueEnabled = true
	inv.SetAmountPaid("400")
	totals := domain.ComputeTotals(inv, domain.IntraState)

	mail := Email(inv, totals)

	if !strings.Contains(mail.Body, "Amount Paid: ₹400.00") {
		t.Error("missing paid line")
	}
	if !strings.Contains(mail.Body, "Due Amount: ₹230.00") {
		t.Error("missing due line")
	}
	if !strings.Contains(mail.Body, "earliest convenience") {
		t.Error("missing due reminder paragraph")
	}
}

// TestOutputsShareOneSnapshot is the renderer's core contract: all three
// outputs derive their figures from the same totals value and can never
// disagree on subtotal, tax, or total.
func TestOutputsShareOneSnapshot(t *testing.T) {
	inv, totals := fixtureInvoice(t)

	doc, err := Document(inv, totals, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := ChatMessage(inv, totals)
	mail := Email(inv, totals)

	for name, out := range map[string]string{"document": doc, "chat": msg, "email": mail.Body} {
		if !strings.Contains(out, "₹630.00") {
			t.Errorf("%s disagrees on the grand total", name)
		}
	}
}
