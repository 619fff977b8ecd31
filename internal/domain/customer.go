package domain

import "strings"

// CustomerInfo is the bill-to party. Only Name is required for export;
// everything else is optional.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
	GSTIN   string
	Email   string
}

// HasName reports whether a customer name has been captured.
func (c CustomerInfo) HasName() bool {
	return strings.TrimSpace(c.Name) != ""
}

// CompanyInfo identifies the issuing business. Name, address and tagline are
// fixed at session start; GSTIN and logo are operator-editable.
type CompanyInfo struct {
	Name        string
	Address     string
	Tagline     string
	GSTIN       string
	LogoDataURI string
}
