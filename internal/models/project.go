package models

import "time"

// MenuProject is the aggregate root: everything needed to render one menu.
type MenuProject struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Restaurant RestaurantInfo    `json:"restaurant"`
	Template   MenuTemplate      `json:"template"`
	Categories []MenuCategory    `json:"categories"`
	Style      MenuStyle         `json:"style"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	HasCart    bool              `json:"hasCart"`
	Version    string            `json:"version,omitempty"`
	AIHistory  []AIPromptHistory `json:"aiHistory,omitempty"`
}

func (p MenuProject) Clone() MenuProject {
	c := p
	c.Template = p.Template.Clone()
	c.Style = p.Style.Clone()
	c.Categories = CloneCategories(p.Categories)
	if p.AIHistory != nil {
		c.AIHistory = make([]AIPromptHistory, len(p.AIHistory))
		for i, h := range p.AIHistory {
			c.AIHistory[i] = h.Clone()
		}
	}
	return c
}

// FindCategory returns the index of the category with the given id, or -1.
func (p MenuProject) FindCategory(categoryID string) int {
	for i, c := range p.Categories {
		if c.ID == categoryID {
			return i
		}
	}
	return -1
}

// ItemCount is the number of items across all categories.
func (p MenuProject) ItemCount() int {
	n := 0
	for _, c := range p.Categories {
		n += len(c.Items)
	}
	return n
}
