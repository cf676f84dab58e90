package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ProjectsSlot  = "menuBuilderProjects"
	TemplatesSlot = "customTemplates"
	CurrentSlot   = "current"
)

const createSlotsTable = `
    CREATE TABLE IF NOT EXISTS menu_slots (
        name       TEXT PRIMARY KEY,
        payload    JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    )
`

// SlotRepository keeps each named slot as a single jsonb document, mirroring
// the whole-slot reads and writes of the file store.
type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// Migrate creates the slots table if it does not exist.
func (r *SlotRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, createSlotsTable)
	return err
}

func (r *SlotRepository) Projects() *ProjectRepository {
	return &ProjectRepository{slots: r}
}

func (r *SlotRepository) Templates() *TemplateRepository {
	return &TemplateRepository{slots: r}
}

func (r *SlotRepository) Workspace() *WorkspaceRepository {
	return &WorkspaceRepository{slots: r}
}

func (r *SlotRepository) read(ctx context.Context, name string, v any) (bool, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, "SELECT payload FROM menu_slots WHERE name = $1", name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("corrupt data in slot %s: %w", name, err)
	}
	return true, nil
}

func (r *SlotRepository) write(ctx context.Context, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", name, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO menu_slots (name, payload, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (name) DO UPDATE
        SET payload = EXCLUDED.payload,
            updated_at = EXCLUDED.updated_at
    `
	if _, err = tx.Exec(ctx, query, name, payload, time.Now()); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

type ProjectRepository struct {
	slots *SlotRepository
}

func (p *ProjectRepository) ReadAll(ctx context.Context) ([]models.MenuProject, error) {
	projects := []models.MenuProject{}
	if _, err := p.slots.read(ctx, ProjectsSlot, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (p *ProjectRepository) WriteAll(ctx context.Context, projects []models.MenuProject) error {
	if projects == nil {
		projects = []models.MenuProject{}
	}
	return p.slots.write(ctx, ProjectsSlot, projects)
}

type TemplateRepository struct {
	slots *SlotRepository
}

func (t *TemplateRepository) ReadAll(ctx context.Context) ([]models.MenuTemplate, error) {
	templates := []models.MenuTemplate{}
	if _, err := t.slots.read(ctx, TemplatesSlot, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (t *TemplateRepository) WriteAll(ctx context.Context, templates []models.MenuTemplate) error {
	if templates == nil {
		templates = []models.MenuTemplate{}
	}
	return t.slots.write(ctx, TemplatesSlot, templates)
}

type WorkspaceRepository struct {
	slots *SlotRepository
}

func (w *WorkspaceRepository) LoadCurrent(ctx context.Context) (*models.MenuProject, error) {
	var project models.MenuProject
	found, err := w.slots.read(ctx, CurrentSlot, &project)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repositories.ErrNoCurrentProject
	}
	return &project, nil
}

func (w *WorkspaceRepository) SaveCurrent(ctx context.Context, project *models.MenuProject) error {
	return w.slots.write(ctx, CurrentSlot, project)
}
