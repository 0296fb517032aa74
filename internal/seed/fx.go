package seed

import (
	"context"

	"github.com/codkage/facture/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("seed",
	fx.Invoke(bootstrap),
)

func bootstrap(lc fx.Lifecycle, db *gorm.DB, cfg config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Setup(ctx, db, cfg); err != nil {
				return err
			}
			log.Info("database ready", zap.String("database", cfg.DBName))
			return nil
		},
	})
}
