package service

import (
	"context"
	"strings"
	"time"

	"github.com/codkage/facture/internal/company/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("company.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Company, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Save(ctx context.Context, req domain.SaveCompanyRequest) (domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Company{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()

	if req.ID != nil {
		existing, err := s.repo.FindByID(ctx, s.db, *req.ID)
		if err != nil {
			return domain.Company{}, err
		}
		if existing == nil {
			return domain.Company{}, domain.ErrNotFound
		}

		existing.Name = name
		existing.Address = req.Address
		existing.Email = req.Email
		existing.IFU = req.IFU
		existing.VMCF = req.VMCF
		existing.Paypal = req.Paypal
		existing.UpdatedAt = now

		if err := s.repo.Update(ctx, s.db, existing); err != nil {
			return domain.Company{}, err
		}
		return *existing, nil
	}

	company := domain.Company{
		Name:      name,
		Address:   req.Address,
		Email:     req.Email,
		IFU:       req.IFU,
		VMCF:      req.VMCF,
		Paypal:    req.Paypal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, &company); err != nil {
		return domain.Company{}, err
	}
	return company, nil
}
