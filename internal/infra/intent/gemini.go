package intent

import (
	"context"
	"strings"

	"booking-assistant/internal/domain/conversation"
	"booking-assistant/internal/pkg/errs"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const classifyPrompt = `Classify the user's message into exactly one of these intents:
book - the user wants to schedule a new appointment
check - the user wants to see existing or upcoming appointments
cancel - the user wants to cancel appointments
unclear - none of the above

Answer with only the single intent word.

Message: `

// GeminiModel is an optional model assist for intent classification. The
// dialogue treats it as advisory: any error or unparseable answer falls back
// to the rule-based classifier.
type GeminiModel struct {
	model *genai.GenerativeModel
}

func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}
	return &GeminiModel{model: client.GenerativeModel(modelName)}, nil
}

func (g *GeminiModel) ClassifyIntent(ctx context.Context, text string) (conversation.Intent, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(classifyPrompt+text))
	if err != nil {
		return conversation.IntentUnclear, errs.Wrap(err, "gemini generate error")
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}

	answer := conversation.Intent(strings.ToLower(strings.TrimSpace(sb.String())))
	if !answer.IsValid() {
		return conversation.IntentUnclear, nil
	}
	return answer, nil
}
