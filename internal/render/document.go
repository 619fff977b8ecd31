package render

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/hmorganics/dairybill/internal/domain"
)

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice-{{.Invoice.Number}}-{{.CustomerSlug}}</title>
<style>
    @media print {
        html, body {
            margin: 0 !important;
            padding: 0 !important;
        }
        body {
            margin: 5% !important;
        }
        .no-print { display: none !important; }
    }
    body {
        font-family: Arial, sans-serif;
        line-height: 1.4;
        color: #333;
        max-width: 800px;
        margin: 0 auto;
        padding: 20px;
    }
    .invoice-header {
        display: grid;
        grid-template-columns: 1fr 1fr;
        gap: 40px;
        margin-bottom: 30px;
        padding-bottom: 20px;
        border-bottom: 2px solid #4CAF50;
    }
    .invoice-table {
        width: 100%;
        border-collapse: collapse;
        margin: 20px 0;
    }
    .invoice-table th,
    .invoice-table td {
        padding: 8px 12px;
        text-align: left;
        border-bottom: 1px solid #ddd;
    }
    .invoice-table th {
        background: #f5f5f5;
        font-weight: bold;
    }
    .invoice-summary {
        margin-left: auto;
        width: 300px;
        margin-top: 20px;
    }
    .summary-row {
        display: flex;
        justify-content: space-between;
        padding: 4px 0;
    }
    .total-row {
        border-top: 2px solid #333;
        font-weight: bold;
        font-size: 18px;
        padding-top: 8px;
        margin-top: 8px;
    }
    .due-row {
        color: #C0152F;
        font-weight: bold;
    }
    .terms {
        margin-top: 40px;
        padding-top: 20px;
        border-top: 1px solid #ddd;
    }
    .digital-footer {
        margin-top: 40px;
        text-align: center;
        padding: 20px;
        background: #f9f9f9;
        border-radius: 8px;
    }
    h1 { color: #4CAF50; }
    h2 { color: #333; }
</style>
</head>
<body>
    <div class="invoice-header">
        <div>
            {{if .Invoice.Company.LogoDataURI}}<img src="{{.Invoice.Company.LogoDataURI}}" alt="Company Logo" style="max-width: 100px; max-height: 100px;">{{end}}
            <h1>{{.Invoice.Company.Name}}</h1>
            <p>{{.Invoice.Company.Tagline}}</p>
            <p>{{.Invoice.Company.Address}}</p>
            {{if .Invoice.Company.GSTIN}}<p><strong>GSTIN:</strong> {{.Invoice.Company.GSTIN}}</p>{{end}}
        </div>
        <div>
            <h2>INVOICE</h2>
            <p><strong>Invoice No:</strong> {{.Invoice.Number}}</p>
            <p><strong>Date:</strong> {{date .Invoice.Date}}</p>
            {{if .Invoice.PlaceOfSupply}}<p><strong>Place of Supply:</strong> {{.Invoice.PlaceOfSupply}}</p>{{end}}
        </div>
    </div>

    <div class="invoice-details">
        <h3>Bill To:</h3>
        <p><strong>{{.Invoice.Customer.Name}}</strong></p>
        {{if .Invoice.Customer.Address}}<p>{{.Invoice.Customer.Address}}</p>{{end}}
        {{if .Invoice.Customer.Phone}}<p><strong>Phone:</strong> {{.Invoice.Customer.Phone}}</p>{{end}}
        {{if .Invoice.Customer.GSTIN}}<p><strong>GSTIN:</strong> {{.Invoice.Customer.GSTIN}}</p>{{end}}
    </div>

    <table class="invoice-table">
        <thead>
            <tr>
                <th>Product</th>
                <th>HSN Code</th>
                <th>Quantity</th>
                <th>Unit</th>
                <th>Rate</th>
                {{if .Invoice.GSTEnabled}}<th>GST Rate</th>{{end}}
                <th>Amount</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            <tr>
                <td>{{.Name}}</td>
                <td>{{if .HSNCode}}{{.HSNCode}}{{else}}-{{end}}</td>
                <td>{{qty .Quantity}}</td>
                <td>{{.Unit}}</td>
                <td>{{money .Rate}}</td>
                {{if $.Invoice.GSTEnabled}}<td>{{.GSTRate}}</td>{{end}}
                <td>{{money .Amount}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="invoice-summary">
        <div class="summary-row">
            <span>Subtotal:</span>
            <span>{{money .Totals.Subtotal}}</span>
        </div>
        {{if and .Invoice.GSTEnabled (gt .Totals.CGSTAmount 0.0)}}
        <div class="summary-row">
            <span>CGST:</span>
            <span>{{money .Totals.CGSTAmount}}</span>
        </div>
        <div class="summary-row">
            <span>SGST:</span>
            <span>{{money .Totals.SGSTAmount}}</span>
        </div>
        {{end}}
        {{if and .Invoice.GSTEnabled (gt .Totals.IGSTAmount 0.0)}}
        <div class="summary-row">
            <span>IGST:</span>
            <span>{{money .Totals.IGSTAmount}}</span>
        </div>
        {{end}}
        <div class="summary-row total-row">
            <span>Total Amount:</span>
            <span>{{money .Totals.Total}}</span>
        </div>
        {{if .Totals.DueAmount}}
        <div class="summary-row">
            <span>Paid:</span>
            <span>{{money .Totals.AmountPaid}}</span>
        </div>
        <div class="summary-row due-row">
            <span>Due Amount:</span>
            <span>{{money .Totals.DueAmount}}</span>
        </div>
        {{end}}
    </div>

    <div class="terms">
        <p><strong>Terms &amp; Conditions:</strong></p>
        <ul>
            <li>Payment terms as agreed</li>
            <li>Quality assurance guaranteed</li>
            <li>For any queries, contact us at the above address</li>
        </ul>
    </div>
    {{if not .ForPrint}}
    <div class="digital-footer">
        <p><strong>Digitally Generated Invoice</strong></p>
        <p style="color: #4CAF50; font-weight: bold;">For {{.Invoice.Company.Name}}</p>
        <p style="font-size: 12px; color: #666; margin-top: 10px;">Eco-friendly Digital Invoice &middot; No signature required</p>
    </div>
    {{end}}
    {{if .ForPrint}}
    <script>
        setTimeout(function() { window.print(); }, 500);
    </script>
    {{end}}
</body>
</html>
`

var (
	slugPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

	documentTpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
		"date": date,
		"qty":  qty,
		// money accepts both plain figures and the optional pointer
		// figures from Totals.
		"money": func(v interface{}) string {
			switch n := v.(type) {
			case float64:
				return money(n)
			case *float64:
				if n == nil {
					return money(0)
				}
				return money(*n)
			default:
				return money(0)
			}
		},
	}).Parse(documentTemplate))
)

type documentData struct {
	Invoice      *domain.Invoice
	Totals       domain.Totals
	Items        []*domain.LineItem
	ForPrint     bool
	CustomerSlug string
}

// Document renders the full visual invoice as a self-contained HTML page.
// When forPrint is set the page auto-triggers the print dialog shortly after
// load and omits the digitally-generated footer; otherwise it is the preview
// document. Rows without a selected product are excluded.
func Document(inv *domain.Invoice, totals domain.Totals, forPrint bool) (string, error) {
	data := documentData{
		Invoice:      inv,
		Totals:       totals,
		Items:        inv.SelectedItems(),
		ForPrint:     forPrint,
		CustomerSlug: slugPattern.ReplaceAllString(inv.Customer.Name, ""),
	}

	var buf bytes.Buffer
	if err := documentTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
