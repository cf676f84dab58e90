package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func currentProject(t *testing.T) models.MenuProject {
	t.Helper()
	out, err := execute(t, "show", "--json")
	require.NoError(t, err)
	var p models.MenuProject
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	return p
}

func TestCLI_EditAndExport(t *testing.T) {
	workspace := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MENUCRAFT_WORKSPACE", workspace)

	_, err := execute(t, "new")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(workspace, "current.json"))

	_, err = execute(t, "category", "add", "Mains", "--icon", "🍔")
	require.NoError(t, err)
	p := currentProject(t)
	require.Len(t, p.Categories, 1)
	categoryID := p.Categories[0].ID

	_, err = execute(t, "item", "add", categoryID, "Burger", "--price", "20")
	require.NoError(t, err)

	_, err = execute(t, "item", "add", categoryID, "Bad", "--price", "5", "--rating", "7")
	assert.ErrorContains(t, err, "Rating")

	_, err = execute(t, "style", "set", "--items-per-row", "9")
	assert.Error(t, err)

	_, err = execute(t, "currency", "set", "XYZ")
	assert.ErrorContains(t, err, "unknown currency")

	p = currentProject(t)
	require.Len(t, p.Categories[0].Items, 1)
	assert.Equal(t, "Burger", p.Categories[0].Items[0].Name)
	assert.Equal(t, 20.0, p.Categories[0].Items[0].Price)

	outDir := t.TempDir()
	_, err = execute(t, "export", "--format", "html", "--out", outDir)
	require.NoError(t, err)
	html, err := os.ReadFile(filepath.Join(outDir, "menu.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Burger")

	_, err = execute(t, "project", "save", "Lunch")
	require.NoError(t, err)
	out, err := execute(t, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch")
}
