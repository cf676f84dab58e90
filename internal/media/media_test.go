package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDataURL_Image(t *testing.T) {
	url, kind, err := DataURL(bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	assert.Equal(t, KindImage, kind)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestDataURL_RejectsText(t *testing.T) {
	_, _, err := DataURL(strings.NewReader("just some notes"))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestFileDataURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0o644))

	url, kind, err := FileDataURL(path)
	require.NoError(t, err)
	assert.Equal(t, KindImage, kind)
	assert.Contains(t, url, "base64,")

	_, _, err = FileDataURL(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
