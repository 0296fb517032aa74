// Package domain contains persistence models for invoicing.
package domain

import "time"

// DefaultConditions is the payment terms fallback.
const DefaultConditions = "Paiement à réception"

// Invoice represents a stored invoice.
type Invoice struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Number     string        `gorm:"not null;uniqueIndex:ux_invoices_number" json:"number"`
	Date       string        `gorm:"not null" json:"date"`
	CompanyID  *uint         `gorm:"index" json:"company_id"`
	ClientID   *uint         `gorm:"index" json:"client_id"`
	Conditions string        `gorm:"not null;default:'Paiement à réception'" json:"conditions"`
	TotalTTC   float64       `gorm:"column:total_ttc;not null;default:0" json:"total_ttc"`
	CreatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Items      []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem represents a line on an invoice. Amount is the authoritative
// line total; quantity and unit price are informational and may be absent.
type InvoiceItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	InvoiceID   uint     `gorm:"not null;index" json:"invoice_id"`
	Description string   `gorm:"not null;default:''" json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `gorm:"column:unit_price" json:"unit_price"`
	Amount      float64  `gorm:"not null;default:0" json:"amount"`
	SortOrder   int      `gorm:"not null;default:0" json:"sort_order"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }

// InvoiceView is an invoice with the display fields joined in for lists.
type InvoiceView struct {
	Invoice
	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address"`
	ClientCity    string `json:"client_city"`
	CompanyName   string `json:"company_name"`
}

// InvoiceDetail carries everything needed to render the document.
type InvoiceDetail struct {
	InvoiceView
	ClientSiren    string `json:"client_siren"`
	CompanyAddress string `json:"company_address"`
	CompanyEmail   string `json:"company_email"`
	CompanyIFU     string `json:"company_ifu"`
	CompanyVMCF    string `json:"company_vmcf"`
	CompanyPaypal  string `json:"company_paypal"`
}

// Suggestions feeds the composer autocomplete.
type Suggestions struct {
	Clients      []string `json:"clients"`
	Descriptions []string `json:"descriptions"`
	NextNumber   string   `json:"nextNumber"`
}
