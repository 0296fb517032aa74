package repository

import (
	"context"
	"errors"

	"github.com/codkage/facture/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func itemsInOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("sort_order ASC, id ASC")
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Omit("Items").Create(invoice).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]interface{}{
			"number":     invoice.Number,
			"date":       invoice.Date,
			"company_id": invoice.CompanyID,
			"client_id":  invoice.ClientID,
			"conditions": invoice.Conditions,
			"total_ttc":  invoice.TotalTTC,
		}).Error
}

// Delete removes items explicitly so the cascade does not depend on the
// dialect having foreign keys enforced.
func (r *repo) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := r.DeleteItems(ctx, db, id); err != nil {
		return err
	}
	return db.WithContext(ctx).
		Delete(&domain.Invoice{}, "id = ?", id).Error
}

func (r *repo) DeleteItems(ctx context.Context, db *gorm.DB, invoiceID uint) error {
	return db.WithContext(ctx).
		Delete(&domain.InvoiceItem{}, "invoice_id = ?", invoiceID).Error
}

func (r *repo) InsertItems(ctx context.Context, db *gorm.DB, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&items).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id uint) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Preload("Items", itemsInOrder).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Preload("Items", itemsInOrder).
		Order("created_at DESC, id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) LastNumber(ctx context.Context, db *gorm.DB) (string, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return invoice.Number, nil
}

func (r *repo) DistinctDescriptions(ctx context.Context, db *gorm.DB) ([]string, error) {
	var descriptions []string
	err := db.WithContext(ctx).
		Model(&domain.InvoiceItem{}).
		Where("description <> ''").
		Distinct("description").
		Order("description ASC").
		Pluck("description", &descriptions).Error
	if err != nil {
		return nil, err
	}
	return descriptions, nil
}
