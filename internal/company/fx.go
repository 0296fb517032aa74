package company

import (
	"github.com/codkage/facture/internal/company/repository"
	"github.com/codkage/facture/internal/company/service"
	"go.uber.org/fx"
)

var Module = fx.Module("company.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
