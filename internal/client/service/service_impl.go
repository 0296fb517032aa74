package service

import (
	"context"
	"strings"
	"time"

	"github.com/codkage/facture/internal/client/domain"
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
		log:  p.Log.Named("client.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertClientRequest) (*domain.Client, error) {
	return s.UpsertIn(ctx, s.db, req)
}

func (s *Service) UpsertIn(ctx context.Context, db *gorm.DB, req domain.UpsertClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, nil
	}

	existing, err := s.repo.FindByName(ctx, db, name)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// incoming non-blank fields win, stored values stay otherwise
		if req.Address != "" {
			existing.Address = req.Address
		}
		if req.City != "" {
			existing.City = req.City
		}
		if req.Siren != "" {
			existing.Siren = req.Siren
		}
		if err := s.repo.Update(ctx, db, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	client := domain.Client{
		Name:      name,
		Address:   req.Address,
		City:      req.City,
		Siren:     req.Siren,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, db, &client); err != nil {
		return nil, err
	}
	return &client, nil
}
