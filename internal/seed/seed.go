// Package seed prepares the database schema and bootstrap data.
package seed

import (
	"context"
	"errors"

	clientdomain "github.com/codkage/facture/internal/client/domain"
	companydomain "github.com/codkage/facture/internal/company/domain"
	"github.com/codkage/facture/internal/config"
	invoicedomain "github.com/codkage/facture/internal/invoice/domain"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the application uses. It is
// idempotent and safe to run on every start.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	return db.AutoMigrate(
		&companydomain.Company{},
		&clientdomain.Client{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
	)
}

// EnsureDefaultCompany inserts the configured issuer company the first time
// the application starts against an empty database. Existing rows are never
// touched so edits made through the UI survive restarts.
func EnsureDefaultCompany(ctx context.Context, db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&companydomain.Company{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		company := companydomain.Company{
			Name:    cfg.Seed.CompanyName,
			Address: cfg.Seed.CompanyAddress,
			Email:   cfg.Seed.CompanyEmail,
			IFU:     cfg.Seed.CompanyIFU,
			VMCF:    cfg.Seed.CompanyVMCF,
			Paypal:  cfg.Seed.CompanyPaypal,
		}
		return tx.Create(&company).Error
	})
}

// Setup runs the full bootstrap: schema migration then default data.
func Setup(ctx context.Context, db *gorm.DB, cfg config.Config) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return EnsureDefaultCompany(ctx, db, cfg)
}
