package main

import (
	"github.com/codkage/facture/internal/config"
	"github.com/codkage/facture/internal/logging"
	"github.com/codkage/facture/internal/seed"
	"github.com/codkage/facture/internal/server"
	"github.com/codkage/facture/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logging.Module,
		db.Module,
		seed.Module,
		server.Module,
	)
	app.Run()
}
