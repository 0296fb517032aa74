package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	// Delete removes the invoice and its items.
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	DeleteItems(ctx context.Context, db *gorm.DB, invoiceID uint) error
	InsertItems(ctx context.Context, db *gorm.DB, items []InvoiceItem) error
	// FindByID loads the invoice with its items in sort order, or nil.
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*Invoice, error)
	// List loads all invoices, newest first, items in sort order.
	List(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	// LastNumber returns the most recently created invoice number, or "".
	LastNumber(ctx context.Context, db *gorm.DB) (string, error)
	DistinctDescriptions(ctx context.Context, db *gorm.DB) ([]string, error)
}
