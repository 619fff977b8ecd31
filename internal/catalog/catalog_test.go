package catalog

import "testing"

func TestFind(t *testing.T) {
	p := Find("Paneer")
	if p == nil {
		t.Fatal("expected to find Paneer")
	}
	if p.Unit != "Kg" {
		t.Errorf("expected unit Kg, got %s", p.Unit)
	}
	if p.HSNCode != "0406" {
		t.Errorf("expected HSN 0406, got %s", p.HSNCode)
	}
	if p.GSTRate != "5%" {
		t.Errorf("expected GST rate 5%%, got %s", p.GSTRate)
	}

	if Find("Oat Milk") != nil {
		t.Error("expected nil for unknown product")
	}
}

func TestProductDefaultsAreValid(t *testing.T) {
	for _, p := range Products {
		if !ValidUnit(p.Unit) {
			t.Errorf("product %s has invalid unit %s", p.Name, p.Unit)
		}
		if !ValidGSTRate(p.GSTRate) {
			t.Errorf("product %s has invalid GST rate %s", p.Name, p.GSTRate)
		}
	}
}

func TestValidUnit(t *testing.T) {
	if !ValidUnit("Liters") {
		t.Error("Liters should be valid")
	}
	if ValidUnit("Gallons") {
		t.Error("Gallons should not be valid")
	}
}
