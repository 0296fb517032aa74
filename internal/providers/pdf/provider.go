// Package pdf renders laid-out invoice documents to PDF bytes.
package pdf

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/codkage/facture/internal/document"
	invoicedomain "github.com/codkage/facture/internal/invoice/domain"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, company document.Company, invoice document.Invoice, total float64) (io.Reader, error)
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(_ context.Context, company document.Company, invoice document.Invoice, total float64) (io.Reader, error) {
	doc := document.Build(company, invoice, total, NewMeasurer())

	f, err := Render(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// InvoiceInput converts a stored invoice detail into the layout inputs.
func InvoiceInput(detail invoicedomain.InvoiceDetail) (document.Company, document.Invoice) {
	company := document.Company{
		Name:    detail.CompanyName,
		Address: detail.CompanyAddress,
		Email:   detail.CompanyEmail,
		IFU:     detail.CompanyIFU,
		VMCF:    detail.CompanyVMCF,
		Paypal:  detail.CompanyPaypal,
	}

	items := make([]document.LineItem, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, document.LineItem{
			Description: item.Description,
			Quantity:    formatOptional(item.Quantity),
			UnitPrice:   formatOptional(item.UnitPrice),
			Amount:      strconv.FormatFloat(item.Amount, 'f', -1, 64),
		})
	}

	invoice := document.Invoice{
		Number:        detail.Number,
		Date:          detail.Date,
		ClientName:    detail.ClientName,
		ClientAddress: detail.ClientAddress,
		ClientCity:    detail.ClientCity,
		Conditions:    detail.Conditions,
		Items:         items,
	}
	return company, invoice
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
