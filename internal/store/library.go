package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/repositories"
)

var (
	ErrProjectNotFound = errors.New("saved project not found")
	ErrEmptyName       = errors.New("project name must not be empty")
)

// Library manages the saved-projects slot on behalf of a Store.
type Library struct {
	store *Store
	repo  repositories.ProjectRepository
}

func NewLibrary(store *Store, repo repositories.ProjectRepository) *Library {
	return &Library{store: store, repo: repo}
}

func (l *Library) List(ctx context.Context) ([]models.MenuProject, error) {
	projects, err := l.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read saved projects: %w", err)
	}
	return projects, nil
}

// Save stores the active project under name, replacing an earlier save of
// the same project.
func (l *Library) Save(ctx context.Context, name string) (models.MenuProject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.MenuProject{}, ErrEmptyName
	}

	projects, err := l.List(ctx)
	if err != nil {
		return models.MenuProject{}, err
	}

	project := l.store.Project()
	project.Name = name
	project.UpdatedAt = l.store.now()

	replaced := false
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project.Clone()
			replaced = true
		}
	}
	if !replaced {
		projects = append(projects, project.Clone())
	}

	if err := l.repo.WriteAll(ctx, projects); err != nil {
		return models.MenuProject{}, fmt.Errorf("failed to save project: %w", err)
	}
	l.store.SaveProject(project)
	return project, nil
}

func (l *Library) Load(ctx context.Context, projectID string) (models.MenuProject, error) {
	projects, err := l.List(ctx)
	if err != nil {
		return models.MenuProject{}, err
	}
	for _, p := range projects {
		if p.ID == projectID {
			l.store.LoadProject(p)
			return p, nil
		}
	}
	return models.MenuProject{}, ErrProjectNotFound
}

// Delete removes one saved project and rewrites the slot. The active project
// is not touched.
func (l *Library) Delete(ctx context.Context, projectID string) error {
	projects, err := l.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.MenuProject, 0, len(projects))
	for _, p := range projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return ErrProjectNotFound
	}

	if err := l.repo.WriteAll(ctx, kept); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
