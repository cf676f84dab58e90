// Package assistant produces menu suggestions from free-text prompts and
// records them in the project history.
package assistant

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/chrisdamba/menucraft/internal/factories"
	"github.com/chrisdamba/menucraft/internal/models"
)

// Provider turns a prompt into one history entry.
type Provider interface {
	Generate(ctx context.Context, prompt string) (models.AIPromptHistory, error)
}

const (
	ResponseWithSuggestions = "إليك بعض الاقتراحات لتحسين قائمتك. يمكنك تطبيق أي منها بنقرة واحدة."
	ResponseNoSuggestions   = "لم أجد اقتراحات مناسبة لطلبك. جرّب ذكر الأصناف أو الأطباق أو التصميم الذي تريده."
)

var keywords = map[string][]string{
	models.SuggestionCategory: {"category", "categories", "section", "menu", "صنف", "أصناف", "فئة", "قسم", "قائمة", "منيو"},
	models.SuggestionItem:     {"dish", "item", "food", "meal", "drink", "طبق", "أطباق", "عنصر", "وجبة", "مشروب", "أكل"},
	models.SuggestionStyle:    {"style", "color", "colour", "design", "theme", "look", "تصميم", "لون", "ألوان", "ستايل", "شكل"},
	models.SuggestionTemplate: {"template", "قالب", "قوالب"},
}

// suggestionOrder fixes the order in which matched types are emitted.
var suggestionOrder = []string{
	models.SuggestionCategory,
	models.SuggestionItem,
	models.SuggestionStyle,
	models.SuggestionTemplate,
}

// StubProvider answers from a small table of canned suggestions after a
// simulated processing delay.
type StubProvider struct {
	Delay time.Duration
	Rand  *rand.Rand
	NewID func() string
	Now   func() time.Time
}

func NewStubProvider(delay time.Duration) *StubProvider {
	return &StubProvider{
		Delay: delay,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		NewID: factories.NewID,
		Now:   time.Now,
	}
}

func (p *StubProvider) Generate(ctx context.Context, prompt string) (models.AIPromptHistory, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.AIPromptHistory{}, ctx.Err()
		case <-timer.C:
		}
	}

	now := p.now()
	var suggestions []models.AIMenuSuggestion
	for _, kind := range MatchTypes(prompt) {
		suggestions = append(suggestions, p.suggest(kind, now))
	}
	if len(suggestions) == 0 && p.intn(2) == 1 {
		kind := suggestionOrder[p.intn(len(suggestionOrder)-1)]
		suggestions = append(suggestions, p.suggest(kind, now))
	}
	if suggestions == nil {
		suggestions = []models.AIMenuSuggestion{}
	}

	response := ResponseNoSuggestions
	if len(suggestions) > 0 {
		response = ResponseWithSuggestions
	}

	return models.AIPromptHistory{
		ID:          p.newID(),
		Prompt:      prompt,
		Response:    response,
		Suggestions: suggestions,
		CreatedAt:   now,
	}, nil
}

// MatchTypes returns the suggestion types whose keywords occur in the prompt.
func MatchTypes(prompt string) []string {
	lower := strings.ToLower(prompt)
	var matched []string
	for _, kind := range suggestionOrder {
		for _, k := range keywords[kind] {
			if strings.Contains(lower, k) {
				matched = append(matched, kind)
				break
			}
		}
	}
	return matched
}

func (p *StubProvider) suggest(kind string, now time.Time) models.AIMenuSuggestion {
	options := cannedSuggestions[kind]
	c := options[p.intn(len(options))]
	return models.AIMenuSuggestion{
		ID:          p.newID(),
		Type:        kind,
		Name:        c.name,
		Description: c.description,
		Data:        c.data(),
		CreatedAt:   now,
		Applied:     false,
	}
}

func (p *StubProvider) intn(n int) int {
	if p.Rand == nil {
		return rand.Intn(n)
	}
	return p.Rand.Intn(n)
}

func (p *StubProvider) newID() string {
	if p.NewID == nil {
		return factories.NewID()
	}
	return p.NewID()
}

func (p *StubProvider) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
