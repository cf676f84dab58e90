package assistant

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(seed int64) *StubProvider {
	n := 0
	return &StubProvider{
		Rand: rand.New(rand.NewSource(seed)),
		NewID: func() string {
			n++
			return fmt.Sprintf("sg-%d", n)
		},
		Now: func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
	}
}

type failingProvider struct{}

func (failingProvider) Generate(ctx context.Context, prompt string) (models.AIPromptHistory, error) {
	return models.AIPromptHistory{}, errors.New("backend unavailable")
}

func TestMatchTypes(t *testing.T) {
	assert.Equal(t, []string{models.SuggestionCategory}, MatchTypes("Add a new MENU section"))
	assert.Equal(t, []string{models.SuggestionItem, models.SuggestionStyle}, MatchTypes("a spicy dish with a dark style"))
	assert.Equal(t, []string{models.SuggestionCategory, models.SuggestionItem}, MatchTypes("أريد قسم جديد مع طبق مميز"))
	assert.Equal(t, []string{models.SuggestionTemplate}, MatchTypes("اقترح قالب"))
	assert.Empty(t, MatchTypes("hello there"))
}

func TestStubProvider_OneSuggestionPerMatchedType(t *testing.T) {
	entry, err := testProvider(1).Generate(context.Background(), "new category, a dish and a fresh style")
	require.NoError(t, err)

	assert.Equal(t, "new category, a dish and a fresh style", entry.Prompt)
	assert.Equal(t, ResponseWithSuggestions, entry.Response)
	require.Len(t, entry.Suggestions, 3)

	assert.Equal(t, models.SuggestionCategory, entry.Suggestions[0].Type)
	assert.IsType(t, &models.MenuCategory{}, entry.Suggestions[0].Data)
	assert.Equal(t, models.SuggestionItem, entry.Suggestions[1].Type)
	assert.IsType(t, &models.MenuItem{}, entry.Suggestions[1].Data)
	assert.Equal(t, models.SuggestionStyle, entry.Suggestions[2].Type)
	assert.IsType(t, &models.StylePatch{}, entry.Suggestions[2].Data)

	for _, s := range entry.Suggestions {
		assert.False(t, s.Applied)
		assert.NotEmpty(t, s.ID)
	}
}

func TestStubProvider_NoMatchYieldsAtMostOne(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		entry, err := testProvider(seed).Generate(context.Background(), "hello")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(entry.Suggestions), 1)
		assert.NotNil(t, entry.Suggestions)
	}
}

func TestStubProvider_HonoursContext(t *testing.T) {
	p := testProvider(1)
	p.Delay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, "menu")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssistant_AskAppendsHistory(t *testing.T) {
	s := store.NewDefault(nil, nil, nil)
	a := New(testProvider(3), s)

	entry, err := a.Ask(context.Background(), "suggest a dish")
	require.NoError(t, err)

	history := s.Project().AIHistory
	require.Len(t, history, 1)
	assert.Equal(t, entry.ID, history[0].ID)
	assert.Equal(t, "suggest a dish", history[0].Prompt)
}

func TestAssistant_RejectsEmptyPrompt(t *testing.T) {
	s := store.NewDefault(nil, nil, nil)
	_, err := New(testProvider(1), s).Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Empty(t, s.Project().AIHistory)
}

func TestAssistant_ProviderFailureKeepsHistory(t *testing.T) {
	s := store.NewDefault(nil, nil, nil)
	a := New(testProvider(1), s)
	_, err := a.Ask(context.Background(), "menu")
	require.NoError(t, err)

	_, err = New(failingProvider{}, s).Ask(context.Background(), "menu")
	assert.ErrorContains(t, err, "backend unavailable")
	assert.Len(t, s.Project().AIHistory, 1)
}

func TestSuggestionLifecycle(t *testing.T) {
	s := store.NewDefault(nil, nil, nil)
	a := New(testProvider(5), s)

	entry, err := a.Ask(context.Background(), "add a category")
	require.NoError(t, err)
	require.Len(t, entry.Suggestions, 1)
	id := entry.Suggestions[0].ID

	_, err = s.ApplySuggestion(id)
	require.NoError(t, err)
	p := s.Project()
	require.Len(t, p.Categories, 1)
	assert.True(t, p.AIHistory[0].Suggestions[0].Applied)

	_, err = s.ApplySuggestion(id)
	require.NoError(t, err)
	assert.Len(t, s.Project().Categories, 1)
}
