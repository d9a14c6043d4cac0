package components

import (
	"log/slog"

	"booking-assistant/internal/infra/notify"
	"booking-assistant/internal/pkg/config"
	"booking-assistant/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) *notify.Notifier {
	email := notify.NewEmailSender(cfg.Notify)
	meeting := notify.NewMeetingCreator(cfg.Meeting)
	emailEnabled := cfg.Notify.SMTPHost != ""
	return notify.NewNotifier(email, meeting, emailEnabled, logger)
}
