// Package catalog holds the fixed reference data for HM Organics dairy
// products: the known products with their default unit, HSN code and GST
// rate, plus the valid unit and rate sets. It is pure data, loaded once.
package catalog

// Product is one catalog entry. Immutable after process start.
type Product struct {
	Name    string
	Unit    string
	HSNCode string
	GSTRate string
}

// Units are the valid units of measure for a line item.
var Units = []string{"Liters", "Kg", "Pieces", "Packets", "Boxes"}

// GSTRates are the valid GST rate slabs.
var GSTRates = []string{"0%", "5%", "12%", "18%", "28%"}

// Products is the fixed dairy product list.
var Products = []Product{
	{Name: "Cow Milk", Unit: "Liters", HSNCode: "0401", GSTRate: "0%"},
	{Name: "Buffalo Milk", Unit: "Liters", HSNCode: "0401", GSTRate: "0%"},
	{Name: "Dahi (Curd)", Unit: "Kg", HSNCode: "0403", GSTRate: "5%"},
	{Name: "Cow Ghee", Unit: "Kg", HSNCode: "0405", GSTRate: "12%"},
	{Name: "Buffalo Ghee", Unit: "Kg", HSNCode: "0405", GSTRate: "12%"},
	{Name: "Paneer", Unit: "Kg", HSNCode: "0406", GSTRate: "5%"},
	{Name: "Butter", Unit: "Kg", HSNCode: "0405", GSTRate: "12%"},
	{Name: "Buttermilk", Unit: "Liters", HSNCode: "0403", GSTRate: "5%"},
	{Name: "Khoa/Mawa", Unit: "Kg", HSNCode: "0402", GSTRate: "5%"},
	{Name: "Fresh Cream", Unit: "Kg", HSNCode: "0401", GSTRate: "5%"},
	{Name: "Milk Powder", Unit: "Kg", HSNCode: "0402", GSTRate: "5%"},
	{Name: "Cheese Cubes", Unit: "Kg", HSNCode: "0406", GSTRate: "12%"},
	{Name: "Lassi", Unit: "Liters", HSNCode: "0403", GSTRate: "5%"},
	{Name: "Flavored Milk", Unit: "Liters", HSNCode: "0401", GSTRate: "12%"},
}

// Find returns the product with the given name, or nil if unknown.
func Find(name string) *Product {
	for i := range Products {
		if Products[i].Name == name {
			return &Products[i]
		}
	}
	return nil
}

// ValidUnit reports whether unit is one of the allowed units.
func ValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// ValidGSTRate reports whether rate is one of the allowed GST slabs.
func ValidGSTRate(rate string) bool {
	for _, r := range GSTRates {
		if r == rate {
			return true
		}
	}
	return false
}
