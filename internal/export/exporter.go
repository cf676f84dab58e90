// Package export renders a menu project into downloadable artifacts. Every
// format is generated from the project data through the shared style
// resolver, so the HTML, PDF and PNG outputs agree with each other.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
)

type Format string

const (
	FormatHTML    Format = "html"
	FormatPDF     Format = "pdf"
	FormatPNG     Format = "png"
	FormatParquet Format = "parquet"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists every supported format in menu order.
func Formats() []Format {
	return []Format{FormatHTML, FormatPDF, FormatPNG, FormatParquet}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

type Options struct {
	ShowCurrencyFlag bool
	// FontPath points at a TTF used by the PDF and PNG renderers. Without it
	// they fall back to built-in Latin fonts.
	FontPath string
}

type Exporter interface {
	Format() Format
	Export(w io.Writer, project models.MenuProject) error
}

func New(format Format, opts Options) (Exporter, error) {
	switch format {
	case FormatHTML:
		return NewHTMLExporter(opts), nil
	case FormatPDF:
		return NewPDFExporter(opts), nil
	case FormatPNG:
		return NewPNGExporter(opts), nil
	case FormatParquet:
		return NewParquetExporter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileName names the artifact after the project, then the restaurant, then
// falls back to "menu".
func FileName(project models.MenuProject, format Format) string {
	name := strings.TrimSpace(project.Name)
	if name == "" {
		name = strings.TrimSpace(project.Restaurant.Name)
	}
	if name == "" {
		name = "menu"
	}
	name = strings.NewReplacer("/", "-", "\\", "-").Replace(name)
	return name + format.Extension()
}
