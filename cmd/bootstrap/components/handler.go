package components

import (
	"booking-assistant/internal/handler"
	"booking-assistant/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewChatHandler,
		api.NewAppointmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
