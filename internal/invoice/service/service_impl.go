package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	clientdomain "github.com/codkage/facture/internal/client/domain"
	companydomain "github.com/codkage/facture/internal/company/domain"
	"github.com/codkage/facture/internal/config"
	"github.com/codkage/facture/internal/invoice/domain"
	"github.com/codkage/facture/internal/invoice/format"
	"github.com/codkage/facture/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Cfg         config.Config
	Repo        domain.Repository
	Clients     clientdomain.Service
	ClientRepo  clientdomain.Repository
	CompanyRepo companydomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	cfg         config.Config
	repo        domain.Repository
	clients     clientdomain.Service
	clientRepo  clientdomain.Repository
	companyRepo companydomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("invoice.service"),
		cfg:         p.Cfg,
		repo:        p.Repo,
		clients:     p.Clients,
		clientRepo:  p.ClientRepo,
		companyRepo: p.CompanyRepo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.InvoiceView, error) {
	invoices, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	clients := map[uint]*clientdomain.Client{}
	companies := map[uint]*companydomain.Company{}

	views := make([]domain.InvoiceView, 0, len(invoices))
	for _, invoice := range invoices {
		view := domain.InvoiceView{Invoice: invoice}
		if invoice.ClientID != nil {
			client, err := s.lookupClient(ctx, clients, *invoice.ClientID)
			if err != nil {
				return nil, err
			}
			if client != nil {
				view.ClientName = client.Name
				view.ClientAddress = client.Address
				view.ClientCity = client.City
			}
		}
		if invoice.CompanyID != nil {
			company, err := s.lookupCompany(ctx, companies, *invoice.CompanyID)
			if err != nil {
				return nil, err
			}
			if company != nil {
				view.CompanyName = company.Name
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (domain.InvoiceDetail, error) {
	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceDetail{}, err
	}
	if invoice == nil {
		return domain.InvoiceDetail{}, domain.ErrNotFound
	}

	detail := domain.InvoiceDetail{InvoiceView: domain.InvoiceView{Invoice: *invoice}}
	if invoice.ClientID != nil {
		client, err := s.clientRepo.FindByID(ctx, s.db, *invoice.ClientID)
		if err != nil {
			return domain.InvoiceDetail{}, err
		}
		if client != nil {
			detail.ClientName = client.Name
			detail.ClientAddress = client.Address
			detail.ClientCity = client.City
			detail.ClientSiren = client.Siren
		}
	}
	if invoice.CompanyID != nil {
		company, err := s.companyRepo.FindByID(ctx, s.db, *invoice.CompanyID)
		if err != nil {
			return domain.InvoiceDetail{}, err
		}
		if company != nil {
			detail.CompanyName = company.Name
			detail.CompanyAddress = company.Address
			detail.CompanyEmail = company.Email
			detail.CompanyIFU = company.IFU
			detail.CompanyVMCF = company.VMCF
			detail.CompanyPaypal = company.Paypal
		}
	}
	return detail, nil
}

// Save persists the invoice and its items in one transaction: the client is
// upserted by name, the issuing company defaults to the latest one, and the
// total is recomputed from the item amounts.
func (s *Service) Save(ctx context.Context, req domain.SaveInvoiceRequest) (uint, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return 0, domain.ErrInvalidNumber
	}

	var invoiceID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clientID *uint
		client, err := s.clients.UpsertIn(ctx, tx, clientdomain.UpsertClientRequest{
			Name:    req.ClientName,
			Address: req.ClientAddress,
			City:    req.ClientCity,
			Siren:   req.ClientSiren,
		})
		if err != nil {
			return err
		}
		if client != nil {
			clientID = &client.ID
		}

		companyID := req.CompanyID
		if companyID == nil {
			latest, err := s.companyRepo.FindLatest(ctx, tx)
			if err != nil {
				return err
			}
			if latest != nil {
				companyID = &latest.ID
			}
		}

		items, total := buildItems(req.Items)

		conditions := strings.TrimSpace(req.Conditions)
		if conditions == "" {
			conditions = domain.DefaultConditions
		}

		invoice := domain.Invoice{
			Number:     number,
			Date:       strings.TrimSpace(req.Date),
			CompanyID:  companyID,
			ClientID:   clientID,
			Conditions: conditions,
			TotalTTC:   total,
		}

		if req.ID != nil {
			existing, err := s.repo.FindByID(ctx, tx, *req.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				return domain.ErrNotFound
			}
			invoice.ID = existing.ID
			invoice.CreatedAt = existing.CreatedAt
			if err := s.repo.Update(ctx, tx, &invoice); err != nil {
				return err
			}
			if err := s.repo.DeleteItems(ctx, tx, invoice.ID); err != nil {
				return err
			}
		} else {
			invoice.CreatedAt = time.Now().UTC()
			if err := s.repo.Insert(ctx, tx, &invoice); err != nil {
				return err
			}
		}

		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		if err := s.repo.InsertItems(ctx, tx, items); err != nil {
			return err
		}

		invoiceID = invoice.ID
		return nil
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return 0, domain.ErrDuplicateNumber
		}
		return 0, err
	}

	return invoiceID, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, id)
	})
}

func (s *Service) Suggestions(ctx context.Context) (domain.Suggestions, error) {
	clients, err := s.clientRepo.DistinctNames(ctx, s.db)
	if err != nil {
		return domain.Suggestions{}, err
	}

	descriptions, err := s.repo.DistinctDescriptions(ctx, s.db)
	if err != nil {
		return domain.Suggestions{}, err
	}

	last, err := s.repo.LastNumber(ctx, s.db)
	if err != nil {
		return domain.Suggestions{}, err
	}

	if clients == nil {
		clients = []string{}
	}
	if descriptions == nil {
		descriptions = []string{}
	}

	return domain.Suggestions{
		Clients:      clients,
		Descriptions: descriptions,
		NextNumber:   format.NextNumber(last, s.cfg.InvoiceNumberSeed),
	}, nil
}

func (s *Service) lookupClient(ctx context.Context, cache map[uint]*clientdomain.Client, id uint) (*clientdomain.Client, error) {
	if client, ok := cache[id]; ok {
		return client, nil
	}
	client, err := s.clientRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	cache[id] = client
	return client, nil
}

func (s *Service) lookupCompany(ctx context.Context, cache map[uint]*companydomain.Company, id uint) (*companydomain.Company, error) {
	if company, ok := cache[id]; ok {
		return company, nil
	}
	company, err := s.companyRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	cache[id] = company
	return company, nil
}

// buildItems converts the request rows, preserving their order, and sums
// the authoritative amounts. Unparsable numbers degrade to null or zero.
func buildItems(rows []domain.SaveInvoiceItem) ([]domain.InvoiceItem, float64) {
	items := make([]domain.InvoiceItem, 0, len(rows))
	total := 0.0
	for i, row := range rows {
		amount := 0.0
		if v, err := strconv.ParseFloat(strings.TrimSpace(row.Amount), 64); err == nil {
			amount = v
		}
		total += amount

		items = append(items, domain.InvoiceItem{
			Description: row.Description,
			Quantity:    parseOptional(row.Quantity),
			UnitPrice:   parseOptional(row.UnitPrice),
			Amount:      amount,
			SortOrder:   i,
		})
	}
	return items, total
}

func parseOptional(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
