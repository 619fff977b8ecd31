package domain

import (
	"strings"
	"testing"

	"github.com/hmorganics/dairybill/internal/catalog"
)

func testCompany() CompanyInfo {
	return CompanyInfo{
		Name:    "HM Organics",
		Address: "D-003 Sai inclave Tilpta, Greater Noida (U.P)",
		Tagline: "Quality Dairy Products",
	}
}

func TestNewNumberFormat(t *testing.T) {
	num := NewNumber("HMO")

	parts := strings.Split(num, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %q", num)
	}
	if parts[0] != "HMO" {
		t.Errorf("expected HMO prefix, got %s", parts[0])
	}
	if len(parts[1]) != 8 {
		t.Errorf("expected YYYYMMDD date segment, got %s", parts[1])
	}
	if len(parts[2]) != 3 {
		t.Errorf("expected zero-padded 3-digit suffix, got %s", parts[2])
	}
}

func TestNewNumberDefaultPrefix(t *testing.T) {
	if !strings.HasPrefix(NewNumber(""), "HMO-") {
		t.Error("empty prefix should fall back to HMO")
	}
}

func TestAddLineItemDefaults(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")

	li := inv.AddLineItem()
	if li.Key == "" {
		t.Fatal("expected a generated key")
	}
	if li.Name != "" || li.Quantity != 0 || li.Rate != 0 {
		t.Error("new row should be empty")
	}
	if li.Unit != "Kg" {
		t.Errorf("expected default unit Kg, got %s", li.Unit)
	}
	if li.GSTRate != "5%" {
		t.Errorf("expected default GST rate 5%%, got %s", li.GSTRate)
	}
	if len(inv.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(inv.Items))
	}
}

func TestAmountRecomputedOnMutation(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")
	li := inv.AddLineItem()

	inv.SetItemQuantity(li.Key, "2.5")
	inv.SetItemRate(li.Key, "60")
	if li.Amount != 150 {
		t.Errorf("expected amount 150, got %v", li.Amount)
	}

	inv.SetItemQuantity(li.Key, "3")
	if li.Amount != 180 {
		t.Errorf("expected amount 180 after quantity change, got %v", li.Amount)
	}
}

func TestMalformedNumericInputDegradesToZero(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")
	li := inv.AddLineItem()

	inv.SetItemQuantity(li.Key, "2")
	inv.SetItemRate(li.Key, "abc")
	if li.Rate != 0 || li.Amount != 0 {
		t.Errorf("malformed rate should zero the row, got rate=%v amount=%v", li.Rate, li.Amount)
	}

	inv.SetItemQuantity(li.Key, "")
	if li.Quantity != 0 {
		t.Errorf("empty quantity should parse as zero, got %v", li.Quantity)
	}
}

func TestSetItemProduct(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")
	li := inv.AddLineItem()
	inv.SetItemQuantity(li.Key, "2")
	inv.SetItemRate(li.Key, "300")

	p := catalog.Find("Paneer")
	if p == nil {
		t.Fatal("catalog missing Paneer")
	}
	inv.SetItemProduct(li.Key, *p)

	if li.Name != "Paneer" || li.Unit != "Kg" || li.HSNCode != "0406" || li.GSTRate != "5%" {
		t.Errorf("product fields not applied: %+v", li)
	}
	if li.Amount != 600 {
		t.Errorf("expected amount 600, got %v", li.Amount)
	}
}

func TestMutationsIgnoreUnknownKey(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")
	li := inv.AddLineItem()
	inv.SetItemQuantity(li.Key, "1")
	inv.SetItemRate(li.Key, "50")

	inv.SetItemQuantity("nope", "99")
	inv.SetItemRate("nope", "99")
	inv.SetItemProduct("nope", catalog.Products[0])
	inv.RemoveLineItem("nope")

	if len(inv.Items) != 1 || li.Amount != 50 {
		t.Error("mutations with unknown keys must be no-ops")
	}
}

func TestRemoveLineItemPreservesOrder(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")
	a := inv.AddLineItem()
	b := inv.AddLineItem()
	c := inv.AddLineItem()

	inv.RemoveLineItem(b.Key)

	if len(inv.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(inv.Items))
	}
	if inv.Items[0].Key != a.Key || inv.Items[1].Key != c.Key {
		t.Error("remaining items out of order after removal")
	}
}

func TestSetAmountPaidClampsNegative(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")

	inv.SetAmountPaid("-50")
	if inv.AmountPaid != 0 {
		t.Errorf("negative paid amount should clamp to 0, got %v", inv.AmountPaid)
	}

	inv.SetAmountPaid("400")
	if inv.AmountPaid != 400 {
		t.Errorf("expected 400, got %v", inv.AmountPaid)
	}
}

func TestSelectedItemsSkipsEmptyRows(t *testing.T) {
	inv := NewInvoice(testCompany(), "HMO")
	inv.AddLineItem() // left unselected, quantity/rate nonzero below
	li := inv.AddLineItem()
	inv.SetItemProduct(li.Key, catalog.Products[0])

	// Even with values, an unselected row stays out of the selection.
	inv.SetItemQuantity(inv.Items[0].Key, "5")
	inv.SetItemRate(inv.Items[0].Key, "10")

	sel := inv.SelectedItems()
	if len(sel) != 1 || sel[0].Key != li.Key {
		t.Errorf("expected only the selected row, got %d rows", len(sel))
	}
	if !inv.HasProducts() {
		t.Error("HasProducts should be true")
	}
}

func TestGSTRateFraction(t *testing.T) {
	cases := map[string]float64{
		"0%":   0,
		"5%":   0.05,
		"12%":  0.12,
		"18%":  0.18,
		"28%":  0.28,
		"junk": 0,
	}
	for in, want := range cases {
		if got := GSTRateFraction(in); got != want {
			t.Errorf("GSTRateFraction(%q) = %v, want %v", in, got, want)
		}
	}
}
