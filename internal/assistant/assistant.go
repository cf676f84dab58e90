package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/store"
)

var ErrEmptyPrompt = errors.New("prompt must not be empty")

// Assistant runs prompts through a Provider and appends the result to the
// store's history.
type Assistant struct {
	provider Provider
	store    *store.Store
}

func New(provider Provider, s *store.Store) *Assistant {
	return &Assistant{provider: provider, store: s}
}

// Ask generates suggestions for prompt. A provider failure leaves the history
// untouched.
func (a *Assistant) Ask(ctx context.Context, prompt string) (models.AIPromptHistory, error) {
	if strings.TrimSpace(prompt) == "" {
		return models.AIPromptHistory{}, ErrEmptyPrompt
	}

	entry, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return models.AIPromptHistory{}, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	a.store.AppendHistory(entry)
	log.Printf("assistant produced %d suggestion(s) for prompt %q", len(entry.Suggestions), prompt)
	return entry, nil
}
