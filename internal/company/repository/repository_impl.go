package repository

import (
	"context"
	"errors"

	"github.com/codkage/facture/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Create(company).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{
			"name":       company.Name,
			"address":    company.Address,
			"email":      company.Email,
			"ifu":        company.IFU,
			"vmcf":       company.VMCF,
			"paypal":     company.Paypal,
			"updated_at": company.UpdatedAt,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id uint) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repo) FindLatest(ctx context.Context, db *gorm.DB) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).
		Order("updated_at DESC, id DESC").
		First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	var companies []domain.Company
	err := db.WithContext(ctx).
		Order("updated_at DESC, id DESC").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}
