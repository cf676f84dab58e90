// Package store holds the active menu project and the custom template list.
// Every mutation builds a fresh snapshot from the previous one; getters hand
// out clones so callers never share slices with the store.
package store

import (
	"errors"
	"strings"
	"time"

	"github.com/chrisdamba/menucraft/internal/catalog"
	"github.com/chrisdamba/menucraft/internal/factories"
	"github.com/chrisdamba/menucraft/internal/models"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrNoTargetCategory   = errors.New("no category to add the suggested item to")
	ErrInvalidSuggestion  = errors.New("suggestion carries no usable data")
)

type Clock func() time.Time

type IDFunc func() string

type Store struct {
	project         models.MenuProject
	customTemplates []models.MenuTemplate

	now   Clock
	newID IDFunc
}

// New wraps an existing project. A nil clock or id function falls back to
// time.Now and cuid ids.
func New(project models.MenuProject, customTemplates []models.MenuTemplate, now Clock, newID IDFunc) *Store {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = factories.NewID
	}
	s := &Store{
		project:         project.Clone(),
		customTemplates: cloneTemplates(customTemplates),
		now:             now,
		newID:           newID,
	}
	if s.customTemplates == nil {
		s.customTemplates = []models.MenuTemplate{}
	}
	return s
}

// NewDefault starts from a freshly created project.
func NewDefault(customTemplates []models.MenuTemplate, now Clock, newID IDFunc) *Store {
	s := New(models.MenuProject{}, customTemplates, now, newID)
	s.CreateNewProject()
	return s
}

func (s *Store) Project() models.MenuProject {
	return s.project.Clone()
}

func (s *Store) CustomTemplates() []models.MenuTemplate {
	return cloneTemplates(s.customTemplates)
}

func (s *Store) NewID() string {
	return s.newID()
}

// commit applies fn to a copy of the active project, stamps updatedAt and
// swaps the copy in.
func (s *Store) commit(fn func(p *models.MenuProject)) {
	next := s.project.Clone()
	fn(&next)
	next.UpdatedAt = s.now()
	s.project = next
}

func (s *Store) UpdateRestaurantInfo(info models.RestaurantInfo) {
	s.commit(func(p *models.MenuProject) {
		p.Restaurant = info
	})
}

// UpdateTemplate selects a template. The project style is replaced by the
// template's style with the fixed opacity, radius, spacing and shadow defaults.
func (s *Store) UpdateTemplate(template models.MenuTemplate) {
	s.commit(func(p *models.MenuProject) {
		p.Template = template.Clone()
		p.Style = template.Style.Clone().WithTemplateDefaults()
	})
}

func (s *Store) UpdateCategories(categories []models.MenuCategory) {
	s.commit(func(p *models.MenuProject) {
		p.Categories = models.CloneCategories(categories)
		if p.Categories == nil {
			p.Categories = []models.MenuCategory{}
		}
	})
}

// UpdateStyle replaces the style. If both background fields end up set, the
// one that changed relative to the current style is kept.
func (s *Store) UpdateStyle(style models.MenuStyle) {
	prev := s.project.Style
	next := style.Clone()
	if next.BackgroundImage != "" && next.BackgroundVideo != "" {
		if next.BackgroundVideo != prev.BackgroundVideo && next.BackgroundImage == prev.BackgroundImage {
			next = next.WithBackgroundVideo(next.BackgroundVideo)
		} else {
			next = next.WithBackgroundImage(next.BackgroundImage)
		}
	}
	s.commit(func(p *models.MenuProject) {
		p.Style = next
	})
}

func (s *Store) SetBackgroundImage(src string) {
	s.commit(func(p *models.MenuProject) {
		p.Style = p.Style.WithBackgroundImage(src)
	})
}

func (s *Store) SetBackgroundVideo(src string) {
	s.commit(func(p *models.MenuProject) {
		p.Style = p.Style.WithBackgroundVideo(src)
	})
}

func (s *Store) ClearBackground() {
	s.commit(func(p *models.MenuProject) {
		p.Style = p.Style.WithoutBackground()
	})
}

// SetCurrency switches the restaurant currency. Unknown codes leave the
// project untouched and report false.
func (s *Store) SetCurrency(code string) bool {
	currency, ok := catalog.CurrencyByCode(code)
	if !ok {
		return false
	}
	s.commit(func(p *models.MenuProject) {
		p.Restaurant.Currency = currency
	})
	return true
}

// SaveProject replaces the active project as-is.
func (s *Store) SaveProject(project models.MenuProject) {
	s.project = project.Clone()
}

func (s *Store) LoadProject(project models.MenuProject) {
	s.project = project.Clone()
	if s.project.Categories == nil {
		s.project.Categories = []models.MenuCategory{}
	}
}

// CreateNewProject resets the active project to the defaults.
func (s *Store) CreateNewProject() {
	pf := factories.ProjectFactory{NewID: s.newID}
	s.project = pf.CreateProject(s.now())
}

func (s *Store) AddCategory(name, icon string) models.MenuCategory {
	category := models.MenuCategory{
		ID:    s.newID(),
		Name:  strings.TrimSpace(name),
		Icon:  icon,
		Items: []models.MenuItem{},
	}
	s.commit(func(p *models.MenuProject) {
		p.Categories = append(p.Categories, category.Clone())
	})
	return category
}

func (s *Store) UpdateCategory(categoryID, name, icon string) error {
	idx := s.project.FindCategory(categoryID)
	if idx < 0 {
		return ErrCategoryNotFound
	}
	s.commit(func(p *models.MenuProject) {
		p.Categories[idx].Name = strings.TrimSpace(name)
		p.Categories[idx].Icon = icon
	})
	return nil
}

func (s *Store) DeleteCategory(categoryID string) error {
	idx := s.project.FindCategory(categoryID)
	if idx < 0 {
		return ErrCategoryNotFound
	}
	s.commit(func(p *models.MenuProject) {
		p.Categories = append(p.Categories[:idx], p.Categories[idx+1:]...)
	})
	return nil
}

// AddItem appends item to the category, assigning an id when it has none.
func (s *Store) AddItem(categoryID string, item models.MenuItem) (models.MenuItem, error) {
	idx := s.project.FindCategory(categoryID)
	if idx < 0 {
		return models.MenuItem{}, ErrCategoryNotFound
	}
	item = item.Clone()
	if item.ID == "" {
		item.ID = s.newID()
	}
	s.commit(func(p *models.MenuProject) {
		p.Categories[idx].Items = append(p.Categories[idx].Items, item.Clone())
	})
	return item, nil
}

// UpdateItem replaces the item with the same id inside the category.
func (s *Store) UpdateItem(categoryID string, item models.MenuItem) error {
	idx := s.project.FindCategory(categoryID)
	if idx < 0 {
		return ErrCategoryNotFound
	}
	pos := s.project.Categories[idx].FindItem(item.ID)
	if pos < 0 {
		return ErrItemNotFound
	}
	s.commit(func(p *models.MenuProject) {
		p.Categories[idx].Items[pos] = item.Clone()
	})
	return nil
}

func (s *Store) DeleteItem(categoryID, itemID string) error {
	idx := s.project.FindCategory(categoryID)
	if idx < 0 {
		return ErrCategoryNotFound
	}
	pos := s.project.Categories[idx].FindItem(itemID)
	if pos < 0 {
		return ErrItemNotFound
	}
	s.commit(func(p *models.MenuProject) {
		items := p.Categories[idx].Items
		p.Categories[idx].Items = append(items[:pos], items[pos+1:]...)
	})
	return nil
}

// MoveItem moves an item to the end of another category. Moving within the
// same category or moving an unknown item changes nothing and reports false.
func (s *Store) MoveItem(fromCategoryID, toCategoryID, itemID string) (bool, error) {
	from := s.project.FindCategory(fromCategoryID)
	to := s.project.FindCategory(toCategoryID)
	if from < 0 || to < 0 {
		return false, ErrCategoryNotFound
	}
	if from == to {
		return false, nil
	}
	pos := s.project.Categories[from].FindItem(itemID)
	if pos < 0 {
		return false, nil
	}
	s.commit(func(p *models.MenuProject) {
		item := p.Categories[from].Items[pos]
		items := p.Categories[from].Items
		p.Categories[from].Items = append(items[:pos], items[pos+1:]...)
		p.Categories[to].Items = append(p.Categories[to].Items, item)
	})
	return true, nil
}

// ImportCategories replaces the categories with the result of an import.
func (s *Store) ImportCategories(categories []models.MenuCategory) {
	s.UpdateCategories(categories)
}

func (s *Store) AddCustomTemplate(template models.MenuTemplate) {
	next := cloneTemplates(s.customTemplates)
	s.customTemplates = append(next, template.Clone())
}

// UpdateCustomTemplate replaces the custom template with the same id.
func (s *Store) UpdateCustomTemplate(template models.MenuTemplate) {
	next := cloneTemplates(s.customTemplates)
	for i := range next {
		if next[i].ID == template.ID {
			next[i] = template.Clone()
		}
	}
	s.customTemplates = next
}

func (s *Store) DeleteCustomTemplate(templateID string) {
	next := make([]models.MenuTemplate, 0, len(s.customTemplates))
	for _, t := range s.customTemplates {
		if t.ID != templateID {
			next = append(next, t.Clone())
		}
	}
	s.customTemplates = next
}

// FindTemplate looks a template up among the built-in and custom templates.
func (s *Store) FindTemplate(templateID string) (models.MenuTemplate, bool) {
	if t, ok := catalog.TemplateByID(templateID); ok {
		return t, true
	}
	for _, t := range s.customTemplates {
		if t.ID == templateID {
			return t.Clone(), true
		}
	}
	return models.MenuTemplate{}, false
}

func (s *Store) AppendHistory(entry models.AIPromptHistory) {
	s.commit(func(p *models.MenuProject) {
		p.AIHistory = append(p.AIHistory, entry.Clone())
	})
}

// ApplySuggestion applies one suggestion from the assistant history and marks
// it applied. Applying an already applied suggestion is a no-op.
func (s *Store) ApplySuggestion(suggestionID string) (models.AIMenuSuggestion, error) {
	h, i := s.findSuggestion(suggestionID)
	if h < 0 {
		return models.AIMenuSuggestion{}, ErrSuggestionNotFound
	}
	suggestion := s.project.AIHistory[h].Suggestions[i].Clone()
	if suggestion.Applied {
		return suggestion, nil
	}

	var apply func(p *models.MenuProject)
	switch data := suggestion.Data.(type) {
	case *models.MenuCategory:
		category := data.Clone()
		if category.ID == "" {
			category.ID = s.newID()
		}
		for k := range category.Items {
			if category.Items[k].ID == "" {
				category.Items[k].ID = s.newID()
			}
		}
		apply = func(p *models.MenuProject) {
			p.Categories = append(p.Categories, category)
		}
	case *models.MenuItem:
		if len(s.project.Categories) == 0 {
			return suggestion, ErrNoTargetCategory
		}
		item := data.Clone()
		if item.ID == "" {
			item.ID = s.newID()
		}
		apply = func(p *models.MenuProject) {
			p.Categories[0].Items = append(p.Categories[0].Items, item)
		}
	case *models.StylePatch:
		patch := *data
		apply = func(p *models.MenuProject) {
			p.Style = patch.ApplyTo(p.Style)
		}
	case *models.TemplatePatch:
		apply = func(p *models.MenuProject) {}
	default:
		return suggestion, ErrInvalidSuggestion
	}

	s.commit(func(p *models.MenuProject) {
		apply(p)
		p.AIHistory[h].Suggestions[i].Applied = true
	})
	suggestion.Applied = true
	return suggestion, nil
}

func (s *Store) findSuggestion(suggestionID string) (int, int) {
	for h, entry := range s.project.AIHistory {
		for i, suggestion := range entry.Suggestions {
			if suggestion.ID == suggestionID {
				return h, i
			}
		}
	}
	return -1, -1
}

func cloneTemplates(templates []models.MenuTemplate) []models.MenuTemplate {
	if templates == nil {
		return nil
	}
	out := make([]models.MenuTemplate, len(templates))
	for i, t := range templates {
		out[i] = t.Clone()
	}
	return out
}
