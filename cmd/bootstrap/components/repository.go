package components

import (
	"booking-assistant/internal/infra/readstore"
	"booking-assistant/internal/infra/repository"
	"booking-assistant/internal/usecase/commands"
	"booking-assistant/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		queries.NewAppointmentQueries,
	),
)
