// Package media embeds image and video files into menus as data URLs.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrUnsupportedMedia = errors.New("only image and video files can be embedded")

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// DataURL reads r fully and returns it as a base64 data URL together with
// the detected media kind.
func DataURL(r io.Reader) (string, Kind, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("failed to read media: %w", err)
	}

	mtype := mimetype.Detect(data)
	kind, err := kindOf(mtype.String())
	if err != nil {
		return "", "", fmt.Errorf("%w: got %s", err, mtype.String())
	}

	var b bytes.Buffer
	b.WriteString("data:")
	b.WriteString(mediaType(mtype.String()))
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String(), kind, nil
}

func FileDataURL(path string) (string, Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return DataURL(f)
}

func kindOf(mime string) (Kind, error) {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage, nil
	case strings.HasPrefix(mime, "video/"):
		return KindVideo, nil
	default:
		return "", ErrUnsupportedMedia
	}
}

// mediaType drops parameters such as charset from a detected MIME string.
func mediaType(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		return strings.TrimSpace(mime[:i])
	}
	return mime
}
