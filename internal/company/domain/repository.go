package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, company *Company) error
	Update(ctx context.Context, db *gorm.DB, company *Company) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*Company, error)
	// FindLatest returns the most recently updated company, or nil.
	FindLatest(ctx context.Context, db *gorm.DB) (*Company, error)
	List(ctx context.Context, db *gorm.DB) ([]Company, error)
}
