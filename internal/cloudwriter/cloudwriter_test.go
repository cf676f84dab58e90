package cloudwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalWriterFactory_WritesBelowBaseDir(t *testing.T) {
	dir := t.TempDir()
	f := NewLocalWriterFactory(dir)

	w, err := f.NewWriter("", "menus/lunch.html")
	require.NoError(t, err)
	_, err = w.Write([]byte("<html></html>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(dir, "menus", "lunch.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestLocalWriterFactory_BucketIsSubdirectory(t *testing.T) {
	dir := t.TempDir()
	w, err := NewLocalWriterFactory(dir).NewWriter("archive", "a.pdf")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(filepath.Join(dir, "archive", "a.pdf"))
	assert.NoError(t, err)
}

func TestNewFactory_UnsupportedProvider(t *testing.T) {
	_, err := NewFactory("azure", "")
	assert.ErrorContains(t, err, "unsupported cloud storage provider")
}
