package factories

import (
	"time"

	"github.com/chrisdamba/menucraft/internal/catalog"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/lucsky/cuid"
)

// NewID returns a collision resistant id for projects, categories, items,
// templates and suggestions.
func NewID() string {
	return cuid.New()
}

type ProjectFactory struct {
	NewID func() string
}

// CreateProject returns an empty project on the default template and currency.
func (pf *ProjectFactory) CreateProject(now time.Time) models.MenuProject {
	newID := pf.NewID
	if newID == nil {
		newID = NewID
	}
	template := catalog.DefaultTemplate()

	return models.MenuProject{
		ID:   newID(),
		Name: "",
		Restaurant: models.RestaurantInfo{
			LogoPosition: models.LogoTopCenter,
			Currency:     catalog.DefaultCurrency(),
		},
		Template:   template,
		Categories: []models.MenuCategory{},
		Style:      template.Style.Clone().WithTemplateDefaults(),
		CreatedAt:  now,
		UpdatedAt:  now,
		HasCart:    false,
	}
}
