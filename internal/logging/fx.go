package logging

import (
	"github.com/codkage/facture/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("logging",
	fx.Provide(
		provideLoggerConfig,
		New,
		NewGormLogger,
	),
)

func provideLoggerConfig(cfg config.Config) Config {
	return Config{
		ServiceName: cfg.AppName,
		Environment: cfg.Environment,
		Version:     cfg.AppVersion,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	}
}
