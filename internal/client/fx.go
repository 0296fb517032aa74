package client

import (
	"github.com/codkage/facture/internal/client/repository"
	"github.com/codkage/facture/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
