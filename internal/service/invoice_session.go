package service

import (
	"errors"
	"time"

	"github.com/hmorganics/dairybill/internal/catalog"
	"github.com/hmorganics/dairybill/internal/domain"
	"github.com/hmorganics/dairybill/internal/render"
	"github.com/hmorganics/dairybill/internal/share"
)

var (
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrNoProducts          = errors.New("invoice needs at least one product")
)

// InvoiceSession owns the single in-memory invoice of a running session and
// the cached totals derived from it. Every mutation immediately recomputes
// the totals, and every export reads the same cached snapshot, so the three
// outputs can never disagree on a figure. Exports pass a validation gate
// first and abort without touching the invoice when it fails.
type InvoiceSession interface {
	// Invoice exposes the model for display. Callers must mutate only
	// through the session methods.
	Invoice() *domain.Invoice

	// Totals returns the snapshot computed after the last mutation.
	Totals() domain.Totals

	// Line item operations
	AddLineItem() *domain.LineItem
	SetItemProduct(key string, p catalog.Product)
	SetItemQuantity(key, input string)
	SetItemRate(key, input string)
	SetItemUnit(key, unit string)
	SetItemGSTRate(key, rate string)
	RemoveLineItem(key string)

	// Invoice-level setters
	SetCustomer(c domain.CustomerInfo)
	SetDate(input string)
	SetPlaceOfSupply(place string)
	SetCompanyGSTIN(gstin string)
	SetCompanyLogo(dataURI string)
	SetGSTEnabled(enabled bool)
	SetDueTracking(enabled bool)
	SetAmountPaid(input string)
	SetOutputDir(dir string)

	// Validate runs the export gate without exporting.
	Validate() error

	// Exports. All fail with ErrMissingCustomerName or ErrNoProducts when
	// the gate rejects the invoice.
	Document(forPrint bool) (string, error)
	ChatMessage() (string, error)
	Email() (render.EmailMessage, error)
	WhatsAppURL() (string, error)
	MailtoURL() (string, error)
	ExportPrintFile() (string, error)
}

type invoiceSession struct {
	inv       *domain.Invoice
	totals    domain.Totals
	outputDir string

	// Current tax policy: every sale is intra-state. Switching this to
	// domain.InterState is all it takes to activate IGST.
	jurisdiction domain.Jurisdiction
}

// NewInvoiceSession creates the session invoice with a fresh number and
// today's date.
func NewInvoiceSession(company domain.CompanyInfo, numberPrefix, outputDir string) InvoiceSession {
	s := &invoiceSession{
		inv:          domain.NewInvoice(company, numberPrefix),
		outputDir:    outputDir,
		jurisdiction: domain.IntraState,
	}
	s.recompute()
	return s
}

func (s *invoiceSession) recompute() {
	s.totals = domain.ComputeTotals(s.inv, s.jurisdiction)
}

func (s *invoiceSession) Invoice() *domain.Invoice { return s.inv }
func (s *invoiceSession) Totals() domain.Totals    { return s.totals }

func (s *invoiceSession) AddLineItem() *domain.LineItem {
	li := s.inv.AddLineItem()
	s.recompute()
	return li
}

func (s *invoiceSession) SetItemProduct(key string, p catalog.Product) {
	s.inv.SetItemProduct(key, p)
	s.recompute()
}

func (s *invoiceSession) SetItemQuantity(key, input string) {
	s.inv.SetItemQuantity(key, input)
	s.recompute()
}

func (s *invoiceSession) SetItemRate(key, input string) {
	s.inv.SetItemRate(key, input)
	s.recompute()
}

func (s *invoiceSession) SetItemUnit(key, unit string) {
	s.inv.SetItemUnit(key, unit)
	s.recompute()
}

func (s *invoiceSession) SetItemGSTRate(key, rate string) {
	s.inv.SetItemGSTRate(key, rate)
	s.recompute()
}

func (s *invoiceSession) RemoveLineItem(key string) {
	s.inv.RemoveLineItem(key)
	s.recompute()
}

func (s *invoiceSession) SetCustomer(c domain.CustomerInfo) {
	s.inv.Customer = c
	s.recompute()
}

// SetDate parses a YYYY-MM-DD date. Malformed input keeps the current date;
// a typo in the date field must not corrupt the invoice.
func (s *invoiceSession) SetDate(input string) {
	if d, err := time.Parse("2006-01-02", input); err == nil {
		s.inv.Date = d
	}
}

func (s *invoiceSession) SetPlaceOfSupply(place string) {
	s.inv.PlaceOfSupply = place
}

func (s *invoiceSession) SetCompanyGSTIN(gstin string) {
	s.inv.Company.GSTIN = gstin
}

func (s *invoiceSession) SetCompanyLogo(dataURI string) {
	s.inv.Company.LogoDataURI = dataURI
}

func (s *invoiceSession) SetGSTEnabled(enabled bool) {
	s.inv.GSTEnabled = enabled
	s.recompute()
}

func (s *invoiceSession) SetDueTracking(enabled bool) {
	s.inv.DueEnabled = enabled
	s.recompute()
}

func (s *invoiceSession) SetAmountPaid(input string) {
	s.inv.SetAmountPaid(input)
	s.recompute()
}

func (s *invoiceSession) SetOutputDir(dir string) {
	s.outputDir = dir
}

func (s *invoiceSession) Validate() error {
	if !s.inv.Customer.HasName() {
		return ErrMissingCustomerName
	}
	if !s.inv.HasProducts() {
		return ErrNoProducts
	}
	return nil
}

func (s *invoiceSession) Document(forPrint bool) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	return render.Document(s.inv, s.totals, forPrint)
}

func (s *invoiceSession) ChatMessage() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	return render.ChatMessage(s.inv, s.totals), nil
}

func (s *invoiceSession) Email() (render.EmailMessage, error) {
	if err := s.Validate(); err != nil {
		return render.EmailMessage{}, err
	}
	return render.Email(s.inv, s.totals), nil
}

func (s *invoiceSession) WhatsAppURL() (string, error) {
	msg, err := s.ChatMessage()
	if err != nil {
		return "", err
	}
	return share.WhatsAppURL(msg), nil
}

func (s *invoiceSession) MailtoURL() (string, error) {
	mail, err := s.Email()
	if err != nil {
		return "", err
	}
	return share.MailtoURL(s.inv.Customer.Email, mail.Subject, mail.Body), nil
}

func (s *invoiceSession) ExportPrintFile() (string, error) {
	doc, err := s.Document(true)
	if err != nil {
		return "", err
	}
	return share.WritePrintFile(s.outputDir, s.inv.Number, doc)
}
