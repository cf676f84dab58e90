package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// AIMenuSuggestion is one proposed change produced by the menu assistant.
// Data holds *MenuCategory, *MenuItem, *StylePatch or *TemplatePatch
// depending on Type.
type AIMenuSuggestion struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // "category", "item", "style", "template"
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Data        any       `json:"data"`
	CreatedAt   time.Time `json:"createdAt"`
	Applied     bool      `json:"applied"`
}

type AIPromptHistory struct {
	ID          string             `json:"id"`
	Prompt      string             `json:"prompt"`
	Response    string             `json:"response"`
	Suggestions []AIMenuSuggestion `json:"suggestions"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (s *AIMenuSuggestion) UnmarshalJSON(b []byte) error {
	type plain AIMenuSuggestion
	var raw struct {
		plain
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = AIMenuSuggestion(raw.plain)
	s.Data = nil
	if raw.Data == nil {
		return nil
	}

	data, err := DecodeSuggestionData(s.Type, raw.Data)
	if err != nil {
		return fmt.Errorf("suggestion %s: %w", s.ID, err)
	}
	s.Data = data
	return nil
}

// DecodeSuggestionData turns a loosely typed payload into the concrete type
// that matches the suggestion type. Numbers stored as strings are accepted.
func DecodeSuggestionData(kind string, raw map[string]any) (any, error) {
	var target any
	switch kind {
	case SuggestionCategory:
		target = &MenuCategory{}
	case SuggestionItem:
		target = &MenuItem{}
	case SuggestionStyle:
		target = &StylePatch{}
	case SuggestionTemplate:
		target = &TemplatePatch{}
	default:
		return nil, fmt.Errorf("unknown suggestion type %q", kind)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("unable to decode %s payload: %w", kind, err)
	}
	return target, nil
}

func (s AIMenuSuggestion) Clone() AIMenuSuggestion {
	c := s
	switch d := s.Data.(type) {
	case *MenuCategory:
		v := d.Clone()
		c.Data = &v
	case *MenuItem:
		v := d.Clone()
		c.Data = &v
	case *StylePatch:
		v := *d
		c.Data = &v
	case *TemplatePatch:
		v := *d
		c.Data = &v
	}
	return c
}

func (h AIPromptHistory) Clone() AIPromptHistory {
	c := h
	c.Suggestions = make([]AIMenuSuggestion, len(h.Suggestions))
	for i, s := range h.Suggestions {
		c.Suggestions[i] = s.Clone()
	}
	return c
}
