package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	Update(ctx context.Context, db *gorm.DB, client *Client) error
	// FindByName matches on case-insensitive name equality.
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Client, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*Client, error)
	List(ctx context.Context, db *gorm.DB) ([]Client, error)
	DistinctNames(ctx context.Context, db *gorm.DB) ([]string, error)
}
