package conversation

import (
	"context"
	"strings"
)

// Intent is the top-level branch a free-text turn maps to.
type Intent string

const (
	IntentBook    Intent = "book"
	IntentCheck   Intent = "check"
	IntentCancel  Intent = "cancel"
	IntentUnclear Intent = "unclear"
)

func (i Intent) IsValid() bool {
	switch i {
	case IntentBook, IntentCheck, IntentCancel, IntentUnclear:
		return true
	default:
		return false
	}
}

// IntentModel is an optional model-assisted classifier. Implementations live
// in infra; the dialogue never depends on a provider's API shape.
type IntentModel interface {
	ClassifyIntent(ctx context.Context, text string) (Intent, error)
}

// Classifier maps free text to an intent. When a model is configured it is
// consulted first; keyword rules are the fallback for model errors, unclear
// verdicts, and the no-model configuration.
type Classifier struct {
	model IntentModel
}

func NewClassifier(model IntentModel) *Classifier {
	return &Classifier{model: model}
}

func (c *Classifier) Classify(ctx context.Context, text string) Intent {
	if c.model != nil {
		if intent, err := c.model.ClassifyIntent(ctx, text); err == nil && intent.IsValid() && intent != IntentUnclear {
			return intent
		}
	}
	return classifyByRules(text)
}

var (
	cancelPhrases = []string{"cancel", "delete", "remove", "call off"}
	checkPhrases  = []string{"check", "show", "view", "my appointment", "my appointments", "do i have", "upcoming", "next appointment", "look up"}
	bookPhrases   = []string{"book", "schedule", "appointment", "reserve", "meeting", "see you", "set up"}
)

func classifyByRules(text string) Intent {
	lower := strings.ToLower(text)

	for _, p := range cancelPhrases {
		if strings.Contains(lower, p) {
			return IntentCancel
		}
	}
	for _, p := range checkPhrases {
		if strings.Contains(lower, p) {
			return IntentCheck
		}
	}
	for _, p := range bookPhrases {
		if strings.Contains(lower, p) {
			return IntentBook
		}
	}
	return IntentUnclear
}
