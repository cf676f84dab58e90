package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/repositories"
	"github.com/chrisdamba/menucraft/internal/repositories/file"
	"github.com/chrisdamba/menucraft/internal/repositories/postgres"
	"github.com/chrisdamba/menucraft/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the per-command wiring: config, repositories and the store holding
// the workspace project.
type app struct {
	cfg       *models.Config
	projects  repositories.ProjectRepository
	templates repositories.TemplateRepository
	workspace repositories.WorkspaceRepository
	store     *store.Store
	close     func()
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := models.LoadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, close: func() {}}
	switch cfg.Storage.Driver {
	case "", "file":
		repo := file.NewRepository(cfg.Workspace)
		a.projects, a.templates, a.workspace = repo.Projects(), repo.Templates(), repo.Workspace()
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		repo := postgres.NewSlotRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		a.projects, a.templates, a.workspace = repo.Projects(), repo.Templates(), repo.Workspace()
		a.close = pool.Close
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}

	custom, err := a.templates.ReadAll(ctx)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to read custom templates: %w", err)
	}

	current, err := a.workspace.LoadCurrent(ctx)
	switch {
	case errors.Is(err, repositories.ErrNoCurrentProject):
		a.store = store.NewDefault(custom, nil, nil)
	case err != nil:
		a.close()
		return nil, fmt.Errorf("failed to load active project: %w", err)
	default:
		a.store = store.New(*current, custom, nil, nil)
	}
	return a, nil
}

// persist writes the active project and the custom templates back.
func (a *app) persist(ctx context.Context) error {
	project := a.store.Project()
	if err := a.workspace.SaveCurrent(ctx, &project); err != nil {
		return fmt.Errorf("failed to save active project: %w", err)
	}
	if err := a.templates.WriteAll(ctx, a.store.CustomTemplates()); err != nil {
		return fmt.Errorf("failed to save custom templates: %w", err)
	}
	return nil
}

func (a *app) library() *store.Library {
	return store.NewLibrary(a.store, a.projects)
}

type runFunc func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error

// readOnly runs fn against the workspace without writing it back.
func readOnly(fn runFunc) func(*cobra.Command, []string) error {
	return withApp(false, fn)
}

// mutating runs fn and persists the workspace when fn succeeds.
func mutating(fn runFunc) func(*cobra.Command, []string) error {
	return withApp(true, fn)
}

func withApp(persist bool, fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := fn(ctx, a, cmd, args); err != nil {
			return err
		}
		if !persist {
			return nil
		}
		if err := a.persist(ctx); err != nil {
			return err
		}
		log.Printf("workspace saved (%s storage)", a.cfg.Storage.Driver)
		return nil
	}
}
