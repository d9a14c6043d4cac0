package bootstrap

import (
	"booking-assistant/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	SessionModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.NotifierModule,
	components.HandlerModule,
)
