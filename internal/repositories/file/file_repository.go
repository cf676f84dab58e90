package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/repositories"
)

const (
	ProjectsSlot  = "menuBuilderProjects.json"
	TemplatesSlot = "customTemplates.json"
	CurrentSlot   = "current.json"
)

// Repository stores every slot as one JSON document under dir.
type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

func (r *Repository) Dir() string {
	return r.dir
}

// Projects returns the saved-projects slot backed by this directory.
func (r *Repository) Projects() *ProjectRepository {
	return &ProjectRepository{repo: r}
}

func (r *Repository) Templates() *TemplateRepository {
	return &TemplateRepository{repo: r}
}

func (r *Repository) Workspace() *WorkspaceRepository {
	return &WorkspaceRepository{repo: r}
}

type ProjectRepository struct {
	repo *Repository
}

func (p *ProjectRepository) ReadAll(ctx context.Context) ([]models.MenuProject, error) {
	var projects []models.MenuProject
	if err := p.repo.read(ProjectsSlot, &projects); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.MenuProject{}, nil
		}
		return nil, err
	}
	return projects, nil
}

func (p *ProjectRepository) WriteAll(ctx context.Context, projects []models.MenuProject) error {
	if projects == nil {
		projects = []models.MenuProject{}
	}
	return p.repo.write(ProjectsSlot, projects)
}

type TemplateRepository struct {
	repo *Repository
}

func (t *TemplateRepository) ReadAll(ctx context.Context) ([]models.MenuTemplate, error) {
	var templates []models.MenuTemplate
	if err := t.repo.read(TemplatesSlot, &templates); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.MenuTemplate{}, nil
		}
		return nil, err
	}
	return templates, nil
}

func (t *TemplateRepository) WriteAll(ctx context.Context, templates []models.MenuTemplate) error {
	if templates == nil {
		templates = []models.MenuTemplate{}
	}
	return t.repo.write(TemplatesSlot, templates)
}

type WorkspaceRepository struct {
	repo *Repository
}

func (w *WorkspaceRepository) LoadCurrent(ctx context.Context) (*models.MenuProject, error) {
	var project models.MenuProject
	if err := w.repo.read(CurrentSlot, &project); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repositories.ErrNoCurrentProject
		}
		return nil, err
	}
	return &project, nil
}

func (w *WorkspaceRepository) SaveCurrent(ctx context.Context, project *models.MenuProject) error {
	return w.repo.write(CurrentSlot, project)
}

func (r *Repository) read(slot string, v any) error {
	data, err := os.ReadFile(filepath.Join(r.dir, slot))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt data in %s: %w", slot, err)
	}
	return nil
}

// write replaces the slot atomically so a failed write never leaves half a
// document behind.
func (r *Repository) write(slot string, v any) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", r.dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", slot, err)
	}

	tmp, err := os.CreateTemp(r.dir, slot+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(r.dir, slot))
}
