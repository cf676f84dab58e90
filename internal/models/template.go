package models

type MenuTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Preview     string    `json:"preview"`
	Style       MenuStyle `json:"style"`
	Layout      string    `json:"layout"`
	IsCustom    bool      `json:"isCustom,omitempty"`
	CreatedBy   string    `json:"createdBy,omitempty"`
}

func (t MenuTemplate) Clone() MenuTemplate {
	c := t
	c.Style = t.Style.Clone()
	return c
}

// TemplatePatch is the partial template carried by template suggestions.
type TemplatePatch struct {
	ID          *string     `json:"id,omitempty"`
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Preview     *string     `json:"preview,omitempty"`
	Style       *StylePatch `json:"style,omitempty"`
	Layout      *string     `json:"layout,omitempty"`
}
