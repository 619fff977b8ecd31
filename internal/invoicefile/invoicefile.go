// Package invoicefile loads invoice descriptions from YAML files so
// invoices can be generated from the command line without the TUI.
package invoicefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hmorganics/dairybill/internal/catalog"
	"github.com/hmorganics/dairybill/internal/domain"
	"github.com/hmorganics/dairybill/internal/service"
)

// File is the on-disk invoice description.
type File struct {
	Customer struct {
		Name    string `yaml:"name"`
		Phone   string `yaml:"phone"`
		Address string `yaml:"address"`
		GSTIN   string `yaml:"gstin"`
		Email   string `yaml:"email"`
	} `yaml:"customer"`

	Date          string `yaml:"date"` // YYYY-MM-DD, defaults to today
	GST           *bool  `yaml:"gst"`  // defaults to true
	Due           bool   `yaml:"due"`
	AmountPaid    string `yaml:"amount_paid"`
	PlaceOfSupply string `yaml:"place_of_supply"`

	Items []Item `yaml:"items"`
}

// Item is one invoice line. Either Product names a catalog entry, which
// fills unit, HSN code and tax rate, or Name describes a free-form item
// with those fields given explicitly.
type Item struct {
	Product  string `yaml:"product"`
	Name     string `yaml:"name"`
	Quantity string `yaml:"quantity"`
	Rate     string `yaml:"rate"`
	Unit     string `yaml:"unit"`
	HSNCode  string `yaml:"hsn"`
	GSTRate  string `yaml:"gst_rate"`
}

// Load reads and parses an invoice description.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invoice file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse invoice file: %w", err)
	}
	return &f, nil
}

// Apply replays the file onto a session. Catalog products are resolved by
// name; unknown product names are an error rather than a silent free-form
// row, because a typo in "Panner" should not produce an item without HSN
// code or tax rate.
func (f *File) Apply(s service.InvoiceSession) error {
	s.SetCustomer(domain.CustomerInfo{
		Name:    f.Customer.Name,
		Phone:   f.Customer.Phone,
		Address: f.Customer.Address,
		GSTIN:   f.Customer.GSTIN,
		Email:   f.Customer.Email,
	})

	if f.Date != "" {
		s.SetDate(f.Date)
	}
	if f.PlaceOfSupply != "" {
		s.SetPlaceOfSupply(f.PlaceOfSupply)
	}

	gst := true
	if f.GST != nil {
		gst = *f.GST
	}
	s.SetGSTEnabled(gst)

	s.SetDueTracking(f.Due)
	if f.Due && f.AmountPaid != "" {
		s.SetAmountPaid(f.AmountPaid)
	}

	for i, item := range f.Items {
		li := s.AddLineItem()

		switch {
		case item.Product != "":
			p := catalog.Find(item.Product)
			if p == nil {
				return fmt.Errorf("item %d: unknown product %q", i+1, item.Product)
			}
			s.SetItemProduct(li.Key, *p)
		case item.Name != "":
			li.Name = item.Name
			if item.HSNCode != "" {
				li.HSNCode = item.HSNCode
			}
		default:
			return fmt.Errorf("item %d: needs a product or a name", i+1)
		}

		if item.Unit != "" {
			if !catalog.ValidUnit(item.Unit) {
				return fmt.Errorf("item %d: unknown unit %q", i+1, item.Unit)
			}
			s.SetItemUnit(li.Key, item.Unit)
		}
		if item.GSTRate != "" {
			if !catalog.ValidGSTRate(item.GSTRate) {
				return fmt.Errorf("item %d: unknown GST rate %q", i+1, item.GSTRate)
			}
			s.SetItemGSTRate(li.Key, item.GSTRate)
		}

		s.SetItemQuantity(li.Key, item.Quantity)
		s.SetItemRate(li.Key, item.Rate)
	}

	return nil
}
