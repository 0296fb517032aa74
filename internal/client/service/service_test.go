package service

import (
	"context"
	"testing"

	"github.com/codkage/facture/internal/client/domain"
	"github.com/codkage/facture/internal/client/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Client{}))

	svc := New(Params{DB: db, Log: zap.NewNop(), Repo: repository.Provide()})
	return svc, db
}

func TestUpsertCreates(t *testing.T) {
	svc, db := newTestService(t)

	client, err := svc.Upsert(context.Background(), domain.UpsertClientRequest{
		Name:    "Beta SARL",
		Address: "2 Rue Y",
		City:    "75000 Paris",
		Siren:   "123456789",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotZero(t, client.ID)

	var count int64
	require.NoError(t, db.Model(&domain.Client{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertBlankNameIsNoop(t *testing.T) {
	svc, db := newTestService(t)

	client, err := svc.Upsert(context.Background(), domain.UpsertClientRequest{Name: "   "})
	require.NoError(t, err)
	assert.Nil(t, client)

	var count int64
	require.NoError(t, db.Model(&domain.Client{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpsertMatchesCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, domain.UpsertClientRequest{Name: "Beta SARL", Address: "2 Rue Y"})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, domain.UpsertClientRequest{Name: "beta sarl", City: "75000 Paris"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	// stored casing wins, incoming non-blank fields overwrite
	assert.Equal(t, "Beta SARL", second.Name)
	assert.Equal(t, "2 Rue Y", second.Address)
	assert.Equal(t, "75000 Paris", second.City)
}

func TestListOrdersByName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Zeta", "Alpha", "Mu"} {
		_, err := svc.Upsert(ctx, domain.UpsertClientRequest{Name: name})
		require.NoError(t, err)
	}

	clients, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Alpha", clients[0].Name)
	assert.Equal(t, "Mu", clients[1].Name)
	assert.Equal(t, "Zeta", clients[2].Name)
}
