package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hmorganics/dairybill/internal/catalog"
	"github.com/hmorganics/dairybill/internal/domain"
)

func testSession(t *testing.T) InvoiceSession {
	t.Helper()
	return NewInvoiceSession(domain.CompanyInfo{
		Name:    "HM Organics",
		Address: "D-003 Sai inclave Tilpta, Greater Noida (U.P)",
		Tagline: "Quality Dairy Products",
	}, "HMO", t.TempDir())
}

func fillSession(t *testing.T, s InvoiceSession) {
	t.Helper()
	s.SetCustomer(domain.CustomerInfo{Name: "Asha Stores", Phone: "9876543210"})
	li := s.AddLineItem()
	s.SetItemProduct(li.Key, *catalog.Find("Paneer"))
	s.SetItemQuantity(li.Key, "2")
	s.SetItemRate(li.Key, "300")
	s.SetGSTEnabled(true)
}

func TestSessionRecomputesAfterEveryMutation(t *testing.T) {
	s := testSession(t)
	fillSession(t, s)

	if got := s.Totals().Total; got != 630 {
		t.Fatalf("expected total 630, got %v", got)
	}

	// Each mutation path must refresh the cached totals.
	key := s.Invoice().Items[0].Key
	s.SetItemQuantity(key, "3")
	if got := s.Totals().Total; got != 945 {
		t.Errorf("after quantity change expected 945, got %v", got)
	}

	s.SetGSTEnabled(false)
	if got := s.Totals().Total; got != 900 {
		t.Errorf("after disabling tax expected 900, got %v", got)
	}

	s.RemoveLineItem(key)
	if got := s.Totals().Total; got != 0 {
		t.Errorf("after removal expected 0, got %v", got)
	}
}

func TestSessionValidateOrder(t *testing.T) {
	s := testSession(t)

	// Empty invoice: the name error wins.
	if err := s.Validate(); !errors.Is(err, ErrMissingCustomerName) {
		t.Errorf("expected missing name, got %v", err)
	}

	s.SetCustomer(domain.CustomerInfo{Name: "Asha Stores"})
	if err := s.Validate(); !errors.Is(err, ErrNoProducts) {
		t.Errorf("expected no products, got %v", err)
	}

	// A row without a product name does not satisfy the gate.
	li := s.AddLineItem()
	s.SetItemQuantity(li.Key, "2")
	if err := s.Validate(); !errors.Is(err, ErrNoProducts) {
		t.Errorf("nameless row must not pass the gate, got %v", err)
	}

	s.SetItemProduct(li.Key, *catalog.Find("Cow Milk"))
	if err := s.Validate(); err != nil {
		t.Errorf("expected valid invoice, got %v", err)
	}
}

func TestSessionExportsGated(t *testing.T) {
	s := testSession(t)

	if _, err := s.Document(false); !errors.Is(err, ErrMissingCustomerName) {
		t.Errorf("document: expected gate error, got %v", err)
	}
	if _, err := s.ChatMessage(); !errors.Is(err, ErrMissingCustomerName) {
		t.Errorf("chat: expected gate error, got %v", err)
	}
	if _, err := s.Email(); !errors.Is(err, ErrMissingCustomerName) {
		t.Errorf("email: expected gate error, got %v", err)
	}
	if _, err := s.WhatsAppURL(); !errors.Is(err, ErrMissingCustomerName) {
		t.Errorf("whatsapp: expected gate error, got %v", err)
	}
	if _, err := s.ExportPrintFile(); !errors.Is(err, ErrMissingCustomerName) {
		t.Errorf("print: expected gate error, got %v", err)
	}
}

func TestSessionExportsShareFigures(t *testing.T) {
	s := testSession(t)
	fillSession(t, s)

	doc, err := s.Document(false)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	msg, err := s.ChatMessage()
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	mail, err := s.Email()
	if err != nil {
		t.Fatalf("email: %v", err)
	}

	for name, out := range map[string]string{"document": doc, "chat": msg, "email": mail.Body} {
		if !strings.Contains(out, "₹630.00") {
			t.Errorf("%s disagrees on the grand total", name)
		}
	}
}

func TestSessionExportPrintFile(t *testing.T) {
	s := testSession(t)
	fillSession(t, s)

	path, err := s.ExportPrintFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != s.Invoice().Number+".html" {
		t.Errorf("file name should carry the invoice number: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.Contains(string(data), "window.print") {
		t.Error("exported document must trigger printing")
	}
}

func TestSessionSetDate(t *testing.T) {
	s := testSession(t)

	s.SetDate("2026-08-30")
	if got := s.Invoice().Date.Format("02/01/2006"); got != "30/08/2026" {
		t.Errorf("unexpected date: %s", got)
	}

	// Malformed input keeps the last valid date.
	s.SetDate("30-08-2026")
	if got := s.Invoice().Date.Format("02/01/2006"); got != "30/08/2026" {
		t.Errorf("malformed input must not change the date, got %s", got)
	}
}

func TestSessionDueTracking(t *testing.T) {
	s := testSession(t)
	fillSession(t, s)

	s.SetDueTracking(true)
	s.SetAmountPaid("400")

	tot := s.Totals()
	if tot.DueAmount == nil || *tot.DueAmount != 230 {
		t.Fatalf("expected due 230, got %v", tot.DueAmount)
	}

	s.SetDueTracking(false)
	if s.Totals().DueAmount != nil {
		t.Error("due figures must vanish when tracking is off")
	}
}
