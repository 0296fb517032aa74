package invoice

import (
	"github.com/codkage/facture/internal/invoice/repository"
	"github.com/codkage/facture/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
