package components

import (
	"context"
	"log/slog"

	"booking-assistant/internal/domain/conversation"
	"booking-assistant/internal/infra/intent"
	"booking-assistant/internal/pkg/clock"
	"booking-assistant/internal/pkg/config"
	"booking-assistant/internal/usecase"
	"booking-assistant/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		conversation.NewExtractor,
		NewClassifier,
		commands.NewBookingCommands,
		usecase.NewDialogueUseCase,
	),
)

// NewClassifier wires the optional Gemini assist; without an API key (or when
// client setup fails) classification is rule-based only.
func NewClassifier(cfg config.Config, logger *slog.Logger) *conversation.Classifier {
	if cfg.Intent.GeminiAPIKey == "" {
		return conversation.NewClassifier(nil)
	}

	model, err := intent.NewGeminiModel(context.Background(), cfg.Intent.GeminiAPIKey, cfg.Intent.GeminiModel)
	if err != nil {
		logger.Warn("gemini intent model unavailable, falling back to rules", "error", err)
		return conversation.NewClassifier(nil)
	}
	return conversation.NewClassifier(model)
}
