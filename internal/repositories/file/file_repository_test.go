package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_EmptySlotReadsAsEmptyList(t *testing.T) {
	repo := NewRepository(t.TempDir()).Projects()

	projects, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectRepository_WriteAllThenReadAll(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(filepath.Join(t.TempDir(), "ws")).Projects()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	calories := 250

	in := []models.MenuProject{
		{ID: "p1", Name: "Lunch", CreatedAt: now, UpdatedAt: now, Categories: []models.MenuCategory{
			{ID: "c1", Name: "Mains", Items: []models.MenuItem{{ID: "i1", Name: "Burger", Price: 20, Calories: &calories}}},
		}},
		{ID: "p2", Name: "Dinner", CreatedAt: now, UpdatedAt: now, Categories: []models.MenuCategory{}},
	}
	require.NoError(t, repo.WriteAll(ctx, in))

	out, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Lunch", out[0].Name)
	assert.Equal(t, "Dinner", out[1].Name)
	require.NotNil(t, out[0].Categories[0].Items[0].Calories)
	assert.Equal(t, 250, *out[0].Categories[0].Items[0].Calories)
	assert.True(t, now.Equal(out[0].UpdatedAt))
}

func TestProjectRepository_CorruptSlot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectsSlot), []byte("{not json"), 0o644))

	_, err := NewRepository(dir).Projects().ReadAll(context.Background())
	assert.ErrorContains(t, err, "corrupt data")
}

func TestTemplateRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(t.TempDir()).Templates()

	require.NoError(t, repo.WriteAll(ctx, []models.MenuTemplate{{ID: "t1", Name: "Mine", IsCustom: true}}))
	out, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsCustom)
}

func TestWorkspaceRepository_Current(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(t.TempDir()).Workspace()

	_, err := repo.LoadCurrent(ctx)
	assert.ErrorIs(t, err, repositories.ErrNoCurrentProject)

	require.NoError(t, repo.SaveCurrent(ctx, &models.MenuProject{ID: "p1", Name: "Active"}))
	got, err := repo.LoadCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Active", got.Name)
}
