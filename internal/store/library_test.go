package store

import (
	"context"
	"errors"
	"testing"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProjectRepository struct {
	projects []models.MenuProject
	writeErr error
	writes   int
}

func (m *mockProjectRepository) ReadAll(ctx context.Context) ([]models.MenuProject, error) {
	out := make([]models.MenuProject, len(m.projects))
	for i, p := range m.projects {
		out[i] = p.Clone()
	}
	return out, nil
}

func (m *mockProjectRepository) WriteAll(ctx context.Context, projects []models.MenuProject) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.projects = projects
	return nil
}

func TestLibrary_SaveUpsertsByID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := &mockProjectRepository{}
	lib := NewLibrary(s, repo)

	saved, err := lib.Save(ctx, "Lunch")
	require.NoError(t, err)
	assert.Equal(t, "Lunch", saved.Name)
	assert.Equal(t, "Lunch", s.Project().Name)

	_, err = lib.Save(ctx, "Lunch v2")
	require.NoError(t, err)

	projects, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Lunch v2", projects[0].Name)
}

func TestLibrary_SaveRejectsEmptyName(t *testing.T) {
	s, _ := newTestStore(t)
	repo := &mockProjectRepository{}

	_, err := NewLibrary(s, repo).Save(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Zero(t, repo.writes)
}

func TestLibrary_SaveSurfacesWriteError(t *testing.T) {
	s, _ := newTestStore(t)
	repo := &mockProjectRepository{writeErr: errors.New("disk full")}

	_, err := NewLibrary(s, repo).Save(context.Background(), "Lunch")
	assert.ErrorContains(t, err, "disk full")
	assert.Empty(t, s.Project().Name)
}

func TestLibrary_DeletePreservesOtherEntries(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := &mockProjectRepository{projects: []models.MenuProject{
		{ID: "a", Name: "A", Version: "1"},
		{ID: "b", Name: "B", Version: "2"},
		{ID: "c", Name: "C", Version: "3"},
	}}
	lib := NewLibrary(s, repo)
	active := s.Project()

	require.NoError(t, lib.Delete(ctx, "b"))

	projects, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, models.MenuProject{ID: "a", Name: "A", Version: "1"}, projects[0])
	assert.Equal(t, models.MenuProject{ID: "c", Name: "C", Version: "3"}, projects[1])
	assert.Equal(t, active, s.Project())

	assert.ErrorIs(t, lib.Delete(ctx, "b"), ErrProjectNotFound)
}

func TestLibrary_LoadReplacesActiveProject(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	repo := &mockProjectRepository{projects: []models.MenuProject{
		{ID: "a", Name: "A", Categories: []models.MenuCategory{{ID: "c1", Name: "Mains"}}},
	}}
	lib := NewLibrary(s, repo)

	loaded, err := lib.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", loaded.Name)
	assert.Equal(t, "a", s.Project().ID)
	assert.Equal(t, "Mains", s.Project().Categories[0].Name)

	_, err = lib.Load(ctx, "zzz")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
