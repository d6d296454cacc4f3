package bootstrap

import (
	"gigbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
