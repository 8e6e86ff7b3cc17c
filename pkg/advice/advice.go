// Package advice asks a generative text model for a short, supportive note
// about a task. It is optional: nothing that records tasks depends on it.
package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/unload/pkg/logging"
	"tableflip.dev/unload/pkg/suggest"
	"tableflip.dev/unload/pkg/task"
)

// ErrDisabled means no generator is configured.
var ErrDisabled = errors.New("advice: disabled, set advice.api_key to enable")

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Prompt describes t for the model. Only labels, ownership and control level
// are sent; reflection text stays local.
func Prompt(t *task.Task) string {
	var b strings.Builder
	b.WriteString("Someone is journaling about a worry. Reply with two or three short, warm sentences ")
	b.WriteString("that help them see what is in their control and suggest one small next step. ")
	b.WriteString("Reply in the language of the labels.\n\n")
	fmt.Fprintf(&b, "Category: %s\n", joinOr(t.Category, "unspecified"))
	fmt.Fprintf(&b, "Worry: %s\n", joinOr(t.Worry, "unspecified"))
	fmt.Fprintf(&b, "Owner: %s\n", ownerText(t.Owner))
	fmt.Fprintf(&b, "Perceived control: %d%% (suggested range %s)\n", t.ControlLevel, suggest.ControlRange(t.Owner))
	fmt.Fprintf(&b, "Polarity: %s\n", t.EffectivePolarity())
	return b.String()
}

func ownerText(o task.Owner) string {
	switch o {
	case task.OwnerMine:
		return "mine"
	case task.OwnerTheirs:
		return "someone else's"
	case task.OwnerShared:
		return "shared"
	}
	return "unspecified"
}

func joinOr(labels []string, fallback string) string {
	if len(labels) == 0 {
		return fallback
	}
	return strings.Join(labels, ", ")
}

// Advisor wraps a Generator with prompt building and logging.
type Advisor struct {
	Generator Generator
	Logger    *zap.Logger
}

// Advise returns the model's note for t. Errors are logged and returned so
// the caller can show an inline message instead.
func (a *Advisor) Advise(ctx context.Context, t *task.Task) (string, error) {
	if a == nil || a.Generator == nil {
		return "", ErrDisabled
	}
	if t == nil {
		return "", errors.New("advice: no task")
	}
	text, err := a.Generator.Generate(ctx, Prompt(t))
	if err != nil {
		logging.OrNop(a.Logger).Warn("advice request failed", zap.String("id", t.ID), zap.Error(err))
		return "", fmt.Errorf("advice: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("advice: empty response")
	}
	return text, nil
}
