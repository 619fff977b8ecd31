package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hmorganics/dairybill/internal/catalog"
)

// LineItem is one product row on the invoice. A row with an empty Name is an
// unselected placeholder: it keeps its slot in the sequence but never
// contributes to totals or rendered output. Amount is derived from
// Quantity and Rate and is never set directly.
type LineItem struct {
	Key      string // stable opaque identifier, survives removal of other rows
	Name     string
	Quantity float64
	Unit     string
	Rate     float64
	Amount   float64
	HSNCode  string
	GSTRate  string
}

// Selected reports whether a product has been chosen for this row.
func (li *LineItem) Selected() bool {
	return li.Name != ""
}

func (li *LineItem) recompute() {
	li.Amount = li.Quantity * li.Rate
}

// Invoice is the single mutable session state: customer and company info,
// the ordered line items, the GST and due-tracking toggles, and the amount
// paid. It lives in memory only and dies with the process.
type Invoice struct {
	Number        string
	Date          time.Time
	Customer      CustomerInfo
	Company       CompanyInfo
	Items         []*LineItem
	GSTEnabled    bool
	DueEnabled    bool
	AmountPaid    float64
	PlaceOfSupply string
}

// NewInvoice creates the session invoice with a freshly generated number and
// today's date.
func NewInvoice(company CompanyInfo, numberPrefix string) *Invoice {
	return &Invoice{
		Number:  NewNumber(numberPrefix),
		Date:    time.Now(),
		Company: company,
		Items:   make([]*LineItem, 0),
	}
}

// NewNumber produces an invoice number of the form PREFIX-YYYYMMDD-RRR with
// a zero-padded random three-digit suffix. Not globally unique; the number
// is a human-facing reference, not a primary key.
func NewNumber(prefix string) string {
	if prefix == "" {
		prefix = "HMO"
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, time.Now().Format("20060102"), rand.Intn(1000))
}

// AddLineItem appends an empty row with the default unit and GST rate and
// returns it so callers can bind UI state to its key.
func (inv *Invoice) AddLineItem() *LineItem {
	li := &LineItem{
		Key:     uuid.NewString(),
		Unit:    "Kg",
		GSTRate: "5%",
	}
	inv.Items = append(inv.Items, li)
	return li
}

// Item returns the row with the given key, or nil.
func (inv *Invoice) Item(key string) *LineItem {
	for _, li := range inv.Items {
		if li.Key == key {
			return li
		}
	}
	return nil
}

// SetItemProduct fills a row from a catalog entry. No-op for an unknown key.
func (inv *Invoice) SetItemProduct(key string, p catalog.Product) {
	li := inv.Item(key)
	if li == nil {
		return
	}
	li.Name = p.Name
	li.Unit = p.Unit
	li.HSNCode = p.HSNCode
	li.GSTRate = p.GSTRate
	li.recompute()
}

// SetItemQuantity parses the input as a decimal (malformed input degrades to
// zero) and recomputes the row amount. No-op for an unknown key.
func (inv *Invoice) SetItemQuantity(key, input string) {
	li := inv.Item(key)
	if li == nil {
		return
	}
	li.Quantity = ParseDecimal(input)
	li.recompute()
}

// SetItemRate parses the input as a decimal (malformed input degrades to
// zero) and recomputes the row amount. No-op for an unknown key.
func (inv *Invoice) SetItemRate(key, input string) {
	li := inv.Item(key)
	if li == nil {
		return
	}
	li.Rate = ParseDecimal(input)
	li.recompute()
}

// SetItemUnit overrides the row unit. No-op for an unknown key.
func (inv *Invoice) SetItemUnit(key, unit string) {
	if li := inv.Item(key); li != nil {
		li.Unit = unit
	}
}

// SetItemGSTRate overrides the row GST rate. No-op for an unknown key.
func (inv *Invoice) SetItemGSTRate(key, rate string) {
	if li := inv.Item(key); li != nil {
		li.GSTRate = rate
	}
}

// RemoveLineItem deletes the row with the given key, preserving the relative
// order of the remaining rows. No-op for an unknown key.
func (inv *Invoice) RemoveLineItem(key string) {
	for i, li := range inv.Items {
		if li.Key == key {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return
		}
	}
}

// SetAmountPaid parses the input as a decimal and clamps negative values to
// zero. Malformed input degrades to zero.
func (inv *Invoice) SetAmountPaid(input string) {
	paid := ParseDecimal(input)
	if paid < 0 {
		paid = 0
	}
	inv.AmountPaid = paid
}

// SelectedItems returns the rows that have a product chosen, in order.
func (inv *Invoice) SelectedItems() []*LineItem {
	out := make([]*LineItem, 0, len(inv.Items))
	for _, li := range inv.Items {
		if li.Selected() {
			out = append(out, li)
		}
	}
	return out
}

// HasProducts reports whether at least one row has a product chosen.
func (inv *Invoice) HasProducts() bool {
	for _, li := range inv.Items {
		if li.Selected() {
			return true
		}
	}
	return false
}

// ParseDecimal parses user numeric input. Malformed input is treated as zero
// rather than rejected; sloppy form input must never break the invoice.
func ParseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// GSTRateFraction converts a rate slab like "5%" to its fraction (0.05).
// Malformed rates are treated as zero.
func GSTRateFraction(rate string) float64 {
	return ParseDecimal(strings.TrimSuffix(rate, "%")) / 100
}
