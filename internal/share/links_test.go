package share

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWhatsAppURL(t *testing.T) {
	link := WhatsAppURL("Invoice: HMO-1 | Total: ₹630.00\nThank you!")

	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); !strings.Contains(got, "₹630.00") {
		t.Errorf("message did not round-trip through encoding: %q", got)
	}
}

func TestMailtoURL(t *testing.T) {
	link := MailtoURL("asha@example.com", "Invoice HMO-1 from HM Organics", "Dear Asha,\n\nTotal: ₹630.00")

	if !strings.HasPrefix(link, "mailto:asha@example.com?subject=") {
		t.Fatalf("unexpected link: %s", link)
	}
	if !strings.Contains(link, "&body=") {
		t.Error("missing body parameter")
	}
	if strings.Contains(link, "\n") {
		t.Error("newlines must be encoded")
	}
}

func TestMailtoURLEmptyRecipient(t *testing.T) {
	link := MailtoURL("", "subject", "body")
	if !strings.HasPrefix(link, "mailto:?subject=") {
		t.Errorf("empty recipient should still produce a valid link: %s", link)
	}
}

func TestWritePrintFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "invoices")

	path, err := WritePrintFile(dir, "HMO-20260830-042", "<html></html>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "HMO-20260830-042.html" {
		t.Errorf("unexpected file name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Error("content mismatch")
	}
}
