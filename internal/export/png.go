package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	pngWidth   = 1200
	pngMargin  = 40.0
	pngPadding = 16.0
	pngMaxCols = 4
)

// PNGExporter rasterises the menu onto a single 1200px wide image.
type PNGExporter struct {
	opts Options
}

func NewPNGExporter(opts Options) *PNGExporter {
	return &PNGExporter{opts: opts}
}

func (e *PNGExporter) Format() Format {
	return FormatPNG
}

type pngRenderer struct {
	dc       *gg.Context
	draw     bool
	fontPath string
	faces    map[int]font.Face
	err      error
	view     menuView
	pal      palette
	y        float64
}

func (e *PNGExporter) Export(w io.Writer, project models.MenuProject) error {
	v := buildView(project, e.opts)
	faces := make(map[int]font.Face)

	// First pass measures the page height, second pass paints.
	measure := &pngRenderer{dc: gg.NewContext(pngWidth, 1), fontPath: e.opts.FontPath, faces: faces, view: v, pal: newPalette(v)}
	measure.render()
	if measure.err != nil {
		return fmt.Errorf("failed to load font: %w", measure.err)
	}

	height := int(measure.y + pngMargin)
	r := &pngRenderer{dc: gg.NewContext(pngWidth, height), draw: true, fontPath: e.opts.FontPath, faces: faces, view: v, pal: measure.pal}
	r.dc.SetColor(r.pal.background)
	r.dc.Clear()
	r.render()

	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// font selects the face for a pixel size and returns the line height.
func (r *pngRenderer) font(px int) float64 {
	if r.fontPath != "" && r.err == nil {
		face, ok := r.faces[px]
		if !ok {
			var err error
			face, err = gg.LoadFontFace(r.fontPath, float64(px))
			if err != nil {
				r.err = err
				return 20
			}
			r.faces[px] = face
		}
		r.dc.SetFontFace(face)
	}
	return r.dc.FontHeight() * 1.5
}

func (r *pngRenderer) text(s string, x, y float64, ax float64, c color.RGBA) {
	if !r.draw || s == "" {
		return
	}
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, x, y, ax, 1)
}

func (r *pngRenderer) render() {
	info := r.view.Restaurant
	fs := r.view.Style.FontSize
	r.y = pngMargin

	ax, x := 1.0, float64(pngWidth)-pngMargin
	switch r.view.HeaderAlign {
	case "center":
		ax, x = 0.5, pngWidth/2
	case "left":
		ax, x = 0, pngMargin
	}

	lh := r.font(positive(fs.Title, 32))
	r.text(info.Name, x, r.y, ax, r.pal.title)
	r.y += lh
	for _, meta := range []string{info.Description, info.Address, info.Phone, info.Website} {
		if meta == "" {
			continue
		}
		lh = r.font(14)
		r.text(meta, x, r.y, ax, r.pal.text)
		r.y += lh
	}
	r.y += 24

	if len(r.view.Categories) == 0 {
		lh = r.font(16)
		r.text(EmptyMenuMessage, pngWidth/2, r.y, 0.5, r.pal.text)
		r.y += lh
		return
	}

	cols := pageColumns(r.view, pngMaxCols)
	gap := float64(r.view.Presentation.Spacing)
	content := float64(pngWidth) - 2*pngMargin
	boxW := (content - float64(cols-1)*gap) / float64(cols)
	right := float64(pngWidth) - pngMargin

	for _, c := range r.view.Categories {
		title := c.Name
		if c.Icon != "" {
			title = c.Icon + " " + title
		}
		lh = r.font(positive(fs.Category, 24))
		r.text(title, right, r.y, 1, r.pal.category)
		r.y += lh
		if r.draw {
			r.dc.SetColor(r.pal.category)
			r.dc.SetLineWidth(2)
			r.dc.DrawLine(pngMargin, r.y, right, r.y)
			r.dc.Stroke()
		}
		r.y += 16

		if len(c.Items) == 0 {
			lh = r.font(14)
			r.text(EmptyCategoryMessage, pngWidth/2, r.y, 0.5, r.pal.text)
			r.y += lh + 24
			continue
		}

		for start := 0; start < len(c.Items); start += cols {
			end := start + cols
			if end > len(c.Items) {
				end = len(c.Items)
			}
			row := c.Items[start:end]
			rowH := 0.0
			for _, item := range row {
				if h := r.itemHeight(item, boxW); h > rowH {
					rowH = h
				}
			}
			for i, item := range row {
				x := right - float64(i+1)*boxW - float64(i)*gap
				r.item(item, x, r.y, boxW, rowH)
			}
			r.y += rowH + gap
		}
		r.y += 24
	}
}

func (r *pngRenderer) descriptionLines(item itemView, w float64) []string {
	if item.Description == "" {
		return nil
	}
	r.font(14)
	lines := r.dc.WordWrap(item.Description, w-2*pngPadding)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	return lines
}

func (r *pngRenderer) itemHeight(item itemView, w float64) float64 {
	fs := r.view.Style.FontSize
	h := 2 * pngPadding
	if item.SpecialOffer {
		h += r.font(12)
	}
	h += r.font(positive(fs.Item, 18))
	h += float64(len(r.descriptionLines(item, w))) * r.font(14)
	h += r.font(positive(fs.Price, 16))
	for _, m := range []string{item.Calories, item.Allergens, item.Rating} {
		if m != "" {
			h += r.font(12)
		}
	}
	return h
}

func (r *pngRenderer) item(item itemView, x, y, w, h float64) {
	if !r.draw {
		return
	}
	p := r.view.Presentation
	radius := float64(p.BorderRadius)
	fs := r.view.Style.FontSize

	if p.Layout != models.LayoutList {
		off := 1 + 2*float64(p.Shadow.Level)
		r.dc.SetColor(r.pal.shadow)
		r.dc.DrawRoundedRectangle(x+off, y+off, w, h, radius)
		r.dc.Fill()
	}
	r.dc.SetColor(r.pal.surface)
	r.dc.DrawRoundedRectangle(x, y, w, h, radius)
	r.dc.Fill()

	right := x + w - pngPadding
	yy := y + pngPadding
	line := func(s string, px int, c color.RGBA) {
		lh := r.font(px)
		r.text(s, right, yy, 1, c)
		yy += lh
	}

	if item.SpecialOffer {
		line(SpecialOfferLabel, 12, r.pal.accent)
	}
	line(item.Name, positive(fs.Item, 18), r.pal.itemName)
	for _, l := range r.descriptionLines(item, w) {
		line(l, 14, r.pal.text)
	}

	priceY := yy
	line(item.Price, positive(fs.Price, 16), r.pal.accent)
	if item.OriginalPrice != "" {
		pw, _ := r.dc.MeasureString(item.Price)
		r.font(12)
		ow, oh := r.dc.MeasureString(item.OriginalPrice)
		left := right - pw - 12 - ow
		r.text(item.OriginalPrice, left, priceY, 0, r.pal.text)
		r.dc.SetColor(r.pal.text)
		r.dc.SetLineWidth(1)
		r.dc.DrawLine(left, priceY+oh/2, left+ow, priceY+oh/2)
		r.dc.Stroke()
	}

	for _, m := range []string{item.Calories, allergensText(item), ratingText(item)} {
		if m != "" {
			line(m, 12, r.pal.text)
		}
	}
}
