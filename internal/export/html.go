package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
)

//go:embed templates/menu.html.tmpl
var templateFS embed.FS

var menuTemplate = template.Must(template.New("menu.html.tmpl").
	Funcs(template.FuncMap{"media": mediaURL}).
	ParseFS(templateFS, "templates/menu.html.tmpl"))

type HTMLExporter struct {
	opts Options
}

func NewHTMLExporter(opts Options) *HTMLExporter {
	return &HTMLExporter{opts: opts}
}

func (e *HTMLExporter) Format() Format {
	return FormatHTML
}

type htmlPage struct {
	menuView
	CSS             template.CSS
	BackgroundImage template.URL
	BackgroundVideo template.URL
	Logo            template.URL
	Website         template.URL

	EmptyMenuMessage     string
	EmptyCategoryMessage string
	SpecialOfferLabel    string
	AllergensLabel       string
}

// Export writes a self-contained HTML document. The output depends only on
// the project and the options.
func (e *HTMLExporter) Export(w io.Writer, project models.MenuProject) error {
	v := buildView(project, e.opts)
	page := htmlPage{
		menuView:             v,
		CSS:                  stylesheet(v),
		Logo:                 optionalURL(v.Restaurant.Logo),
		Website:              optionalURL(v.Restaurant.Website),
		EmptyMenuMessage:     EmptyMenuMessage,
		EmptyCategoryMessage: EmptyCategoryMessage,
		SpecialOfferLabel:    SpecialOfferLabel,
		AllergensLabel:       AllergensLabel,
	}
	switch {
	case v.Style.BackgroundImage != "":
		page.BackgroundImage = optionalURL(v.Style.BackgroundImage)
	case v.Style.BackgroundVideo != "":
		page.BackgroundVideo = optionalURL(v.Style.BackgroundVideo)
	}

	if err := menuTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// mediaURL admits embedded image/video data, http(s) links and plain
// relative paths. Anything else is neutralised.
func mediaURL(s string) template.URL {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "data:image/"), strings.HasPrefix(lower, "data:video/"):
		return template.URL(s)
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		return template.URL(s)
	case s != "" && !strings.Contains(s, ":"):
		return template.URL(s)
	default:
		return template.URL("#")
	}
}

func optionalURL(s string) template.URL {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return mediaURL(s)
}
