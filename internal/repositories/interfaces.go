package repositories

import (
	"context"
	"errors"

	"github.com/chrisdamba/menucraft/internal/models"
)

// ErrNoCurrentProject is returned when the workspace holds no active project yet.
var ErrNoCurrentProject = errors.New("no active project in workspace")

// ProjectRepository is the saved-projects slot. It is always read and
// written as a whole.
type ProjectRepository interface {
	ReadAll(ctx context.Context) ([]models.MenuProject, error)
	WriteAll(ctx context.Context, projects []models.MenuProject) error
}

// TemplateRepository holds the user-authored templates.
type TemplateRepository interface {
	ReadAll(ctx context.Context) ([]models.MenuTemplate, error)
	WriteAll(ctx context.Context, templates []models.MenuTemplate) error
}

// WorkspaceRepository keeps the active project between commands.
type WorkspaceRepository interface {
	LoadCurrent(ctx context.Context) (*models.MenuProject, error)
	SaveCurrent(ctx context.Context, project *models.MenuProject) error
}
