package domain

import (
	"context"
	"errors"
)

// SaveCompanyRequest inserts a new company or, when ID is set, updates it.
type SaveCompanyRequest struct {
	ID      *uint
	Name    string
	Address string
	Email   string
	IFU     string
	VMCF    string
	Paypal  string
}

type Service interface {
	List(ctx context.Context) ([]Company, error)
	Save(ctx context.Context, req SaveCompanyRequest) (Company, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrNotFound    = errors.New("not_found")
)
