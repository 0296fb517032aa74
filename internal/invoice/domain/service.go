package domain

import (
	"context"
	"errors"
)

// SaveInvoiceItem mirrors the composer payload: decimal strings, blank
// meaning absent. Amount is parsed leniently; unparsable values count as 0.
type SaveInvoiceItem struct {
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
}

// SaveInvoiceRequest inserts a new invoice or, when ID is set, replaces an
// existing one together with its items.
type SaveInvoiceRequest struct {
	ID            *uint
	Number        string
	Date          string
	CompanyID     *uint
	ClientName    string
	ClientAddress string
	ClientCity    string
	ClientSiren   string
	Conditions    string
	Items         []SaveInvoiceItem
}

type Service interface {
	List(ctx context.Context) ([]InvoiceView, error)
	GetByID(ctx context.Context, id uint) (InvoiceDetail, error)
	Save(ctx context.Context, req SaveInvoiceRequest) (uint, error)
	Delete(ctx context.Context, id uint) error
	Suggestions(ctx context.Context) (Suggestions, error)
}

var (
	ErrInvalidNumber   = errors.New("invalid_number")
	ErrDuplicateNumber = errors.New("duplicate_number")
	ErrNotFound        = errors.New("not_found")
)
