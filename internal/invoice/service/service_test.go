package service

import (
	"context"
	"testing"

	clientdomain "github.com/codkage/facture/internal/client/domain"
	clientrepository "github.com/codkage/facture/internal/client/repository"
	clientservice "github.com/codkage/facture/internal/client/service"
	companydomain "github.com/codkage/facture/internal/company/domain"
	companyrepository "github.com/codkage/facture/internal/company/repository"
	"github.com/codkage/facture/internal/config"
	"github.com/codkage/facture/internal/invoice/domain"
	"github.com/codkage/facture/internal/invoice/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// one shared in-memory database per test, isolated by name
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&companydomain.Company{},
		&clientdomain.Client{},
		&domain.Invoice{},
		&domain.InvoiceItem{},
	))
	return db
}

func newService(db *gorm.DB) domain.Service {
	log := zap.NewNop()
	clientRepo := clientrepository.Provide()
	clients := clientservice.New(clientservice.Params{
		DB:   db,
		Log:  log,
		Repo: clientRepo,
	})

	return New(Params{
		DB:          db,
		Log:         log,
		Cfg:         config.Config{InvoiceNumberSeed: "FAC-100"},
		Repo:        repository.Provide(),
		Clients:     clients,
		ClientRepo:  clientRepo,
		CompanyRepo: companyrepository.Provide(),
	})
}

func seedCompany(t *testing.T, db *gorm.DB, name string) companydomain.Company {
	t.Helper()
	company := companydomain.Company{Name: name, Address: "1 Rue X", Email: "c@example.com"}
	require.NoError(t, db.Create(&company).Error)
	return company
}

func TestSaveCreatesInvoiceAndClient(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	company := seedCompany(t, db, "ACME")
	ctx := context.Background()

	id, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		Number:        "FAC-101",
		Date:          "2024-03-05",
		ClientName:    "Beta SARL",
		ClientAddress: "2 Rue Y",
		ClientCity:    "75000 Paris",
		Items: []domain.SaveInvoiceItem{
			{Description: "Conseil", Quantity: "2", UnitPrice: "50.25", Amount: "100.5"},
			{Description: "Audit", Amount: "49.5"},
			{Description: "Offert", Amount: "n/a"},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	detail, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "FAC-101", detail.Number)
	assert.Equal(t, "Beta SARL", detail.ClientName)
	assert.Equal(t, company.Name, detail.CompanyName)
	assert.Equal(t, domain.DefaultConditions, detail.Conditions)
	assert.Equal(t, 150.0, detail.TotalTTC)

	require.Len(t, detail.Items, 3)
	assert.Equal(t, "Conseil", detail.Items[0].Description)
	assert.Equal(t, "Audit", detail.Items[1].Description)
	assert.Equal(t, "Offert", detail.Items[2].Description)
	require.NotNil(t, detail.Items[0].Quantity)
	assert.Equal(t, 2.0, *detail.Items[0].Quantity)
	assert.Nil(t, detail.Items[1].Quantity)
	assert.Equal(t, 0.0, detail.Items[2].Amount)

	var clients []clientdomain.Client
	require.NoError(t, db.Find(&clients).Error)
	require.Len(t, clients, 1)
	assert.Equal(t, "Beta SARL", clients[0].Name)
}

func TestSaveReusesClientCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&clientdomain.Client{
		Name: "Beta SARL", Address: "2 Rue Y", Siren: "123456789",
	}).Error)

	_, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		Number:        "FAC-101",
		ClientName:    "BETA sarl",
		ClientAddress: "3 Rue Z",
	})
	require.NoError(t, err)

	var clients []clientdomain.Client
	require.NoError(t, db.Find(&clients).Error)
	require.Len(t, clients, 1)
	assert.Equal(t, "Beta SARL", clients[0].Name)
	assert.Equal(t, "3 Rue Z", clients[0].Address)
	// blank incoming fields keep stored values
	assert.Equal(t, "123456789", clients[0].Siren)
}

func TestSaveWithoutClientName(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	id, err := svc.Save(ctx, domain.SaveInvoiceRequest{Number: "FAC-101"})
	require.NoError(t, err)

	detail, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, detail.ClientID)
	assert.Empty(t, detail.ClientName)
}

func TestSaveBlankNumber(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)

	_, err := svc.Save(context.Background(), domain.SaveInvoiceRequest{Number: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestSaveDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.SaveInvoiceRequest{Number: "FAC-101"})
	require.NoError(t, err)

	_, err = svc.Save(ctx, domain.SaveInvoiceRequest{Number: "FAC-101"})
	assert.ErrorIs(t, err, domain.ErrDuplicateNumber)
}

func TestSaveUpdateReplacesItems(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	id, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		Number: "FAC-101",
		Items: []domain.SaveInvoiceItem{
			{Description: "Ancien", Amount: "10"},
			{Description: "Autre", Amount: "20"},
		},
	})
	require.NoError(t, err)

	updatedID, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		ID:     &id,
		Number: "FAC-101b",
		Items: []domain.SaveInvoiceItem{
			{Description: "Nouveau", Amount: "42"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, id, updatedID)

	detail, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "FAC-101b", detail.Number)
	assert.Equal(t, 42.0, detail.TotalTTC)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Nouveau", detail.Items[0].Description)

	var count int64
	require.NoError(t, db.Model(&domain.InvoiceItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveUpdateUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)

	missing := uint(999)
	_, err := svc.Save(context.Background(), domain.SaveInvoiceRequest{
		ID:     &missing,
		Number: "FAC-101",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveItemOrderSurvivesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	id, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		Number: "FAC-101",
		Items: []domain.SaveInvoiceItem{
			{Description: "Zeta", Amount: "1"},
			{Description: "Alpha", Amount: "2"},
			{Description: "Mu", Amount: "3"},
		},
	})
	require.NoError(t, err)

	detail, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, detail.Items, 3)
	assert.Equal(t, "Zeta", detail.Items[0].Description)
	assert.Equal(t, "Alpha", detail.Items[1].Description)
	assert.Equal(t, "Mu", detail.Items[2].Description)
}

func TestDeleteRemovesInvoiceAndItems(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	id, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		Number: "FAC-101",
		Items:  []domain.SaveInvoiceItem{{Description: "Conseil", Amount: "10"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.InvoiceItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSuggestions(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		Number:     "FAC-107",
		ClientName: "Beta SARL",
		Items: []domain.SaveInvoiceItem{
			{Description: "Conseil", Amount: "10"},
			{Description: "Audit", Amount: "20"},
			{Description: "Conseil", Amount: "30"},
		},
	})
	require.NoError(t, err)

	suggestions, err := svc.Suggestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "FAC-108", suggestions.NextNumber)
	assert.Equal(t, []string{"Beta SARL"}, suggestions.Clients)
	assert.Equal(t, []string{"Audit", "Conseil"}, suggestions.Descriptions)
}

func TestSuggestionsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)

	suggestions, err := svc.Suggestions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FAC-100", suggestions.NextNumber)
	assert.NotNil(t, suggestions.Clients)
	assert.NotNil(t, suggestions.Descriptions)
	assert.Empty(t, suggestions.Clients)
	assert.Empty(t, suggestions.Descriptions)
}

func TestListJoinsNames(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)
	seedCompany(t, db, "ACME")
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.SaveInvoiceRequest{
		Number:     "FAC-101",
		ClientName: "Beta SARL",
		ClientCity: "75000 Paris",
	})
	require.NoError(t, err)
	_, err = svc.Save(ctx, domain.SaveInvoiceRequest{Number: "FAC-102"})
	require.NoError(t, err)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// most recent first
	assert.Equal(t, "FAC-102", views[0].Number)
	assert.Equal(t, "FAC-101", views[1].Number)
	assert.Equal(t, "Beta SARL", views[1].ClientName)
	assert.Equal(t, "75000 Paris", views[1].ClientCity)
	assert.Equal(t, "ACME", views[1].CompanyName)
}
