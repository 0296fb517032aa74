package domain

import (
	"context"

	"gorm.io/gorm"
)

// UpsertClientRequest creates or updates a client keyed by
// case-insensitive name equality. Blank fields keep the stored value.
type UpsertClientRequest struct {
	Name    string
	Address string
	City    string
	Siren   string
}

type Service interface {
	List(ctx context.Context) ([]Client, error)
	// Upsert returns nil without error when the name is blank.
	Upsert(ctx context.Context, req UpsertClientRequest) (*Client, error)
	// UpsertIn runs the same upsert against a caller-owned handle so it
	// can participate in an enclosing transaction.
	UpsertIn(ctx context.Context, db *gorm.DB, req UpsertClientRequest) (*Client, error)
}
