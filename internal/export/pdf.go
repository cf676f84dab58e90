package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin  = 15.0
	pdfPadding = 4.0
	pxToMM     = 0.2646
	pxToPt     = 0.75
)

// PDFExporter lays the menu out on A4 pages directly from the project data.
// Background media is not embedded; the background color is.
type PDFExporter struct {
	opts Options
}

func NewPDFExporter(opts Options) *PDFExporter {
	return &PDFExporter{opts: opts}
}

func (e *PDFExporter) Format() Format {
	return FormatPDF
}

type pdfRenderer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	family string
	pal    palette
	view   menuView
	align  string
	pageW  float64
	pageH  float64
	y      float64
}

func (e *PDFExporter) Export(w io.Writer, project models.MenuProject) error {
	v := buildView(project, e.opts)
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(project.UpdatedAt)
	pdf.SetModificationDate(project.UpdatedAt)
	pdf.SetTitle(project.Restaurant.Name, true)
	pdf.SetAutoPageBreak(false, 0)

	r := &pdfRenderer{pdf: pdf, view: v, pal: newPalette(v), family: "Helvetica"}
	r.tr = pdf.UnicodeTranslatorFromDescriptor("")
	if e.opts.FontPath != "" {
		pdf.AddUTF8Font("menu", "", e.opts.FontPath)
		pdf.AddUTF8Font("menu", "B", e.opts.FontPath)
		r.family = "menu"
		r.tr = func(s string) string { return s }
	}
	r.pageW, r.pageH = pdf.GetPageSize()
	r.align = map[string]string{"center": "C", "right": "R"}[v.HeaderAlign]
	if r.align == "" {
		r.align = "L"
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(int(r.pal.background.R), int(r.pal.background.G), int(r.pal.background.B))
		pdf.Rect(0, 0, r.pageW, r.pageH, "F")
		r.y = pdfMargin
	})
	pdf.AddPage()

	r.header()
	r.categories()

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (r *pdfRenderer) color(c color.RGBA) {
	r.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (r *pdfRenderer) font(style string, px int) float64 {
	pt := float64(px) * pxToPt
	r.pdf.SetFont(r.family, style, pt)
	return pt * 0.3528 * 1.35
}

func (r *pdfRenderer) contentWidth() float64 {
	return r.pageW - 2*pdfMargin
}

func (r *pdfRenderer) ensure(h float64) {
	if r.y+h > r.pageH-pdfMargin {
		r.pdf.AddPage()
	}
}

func (r *pdfRenderer) line(text, style string, px int, c color.RGBA, align string) {
	lh := r.font(style, px)
	r.ensure(lh)
	r.color(c)
	r.pdf.SetXY(pdfMargin, r.y)
	r.pdf.CellFormat(r.contentWidth(), lh, r.tr(text), "", 0, align, false, 0, "")
	r.y += lh
}

func (r *pdfRenderer) header() {
	info := r.view.Restaurant
	fs := r.view.Style.FontSize
	r.line(info.Name, "B", positive(fs.Title, 32), r.pal.title, r.align)
	for _, meta := range []string{info.Description, info.Address, info.Phone, info.Website} {
		if meta != "" {
			r.line(meta, "", 14, r.pal.text, r.align)
		}
	}
	r.y += 8
}

func (r *pdfRenderer) categories() {
	fs := r.view.Style.FontSize
	if len(r.view.Categories) == 0 {
		r.line(EmptyMenuMessage, "", 16, r.pal.text, "C")
		return
	}

	cols := pageColumns(r.view, 3)
	gap := float64(r.view.Presentation.Spacing) * pxToMM
	boxW := (r.contentWidth() - float64(cols-1)*gap) / float64(cols)

	for _, c := range r.view.Categories {
		title := c.Name
		if c.Icon != "" {
			title = c.Icon + " " + title
		}
		r.ensure(20)
		r.line(title, "B", positive(fs.Category, 24), r.pal.category, "R")
		r.pdf.SetDrawColor(int(r.pal.category.R), int(r.pal.category.G), int(r.pal.category.B))
		r.pdf.SetLineWidth(0.5)
		r.pdf.Line(pdfMargin, r.y+1, r.pageW-pdfMargin, r.y+1)
		r.y += 5

		if len(c.Items) == 0 {
			r.line(EmptyCategoryMessage, "", 14, r.pal.text, "C")
			r.y += 6
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
			r.ensure(rowH)
			for i, item := range row {
				x := r.pageW - pdfMargin - float64(i+1)*boxW - float64(i)*gap
				r.item(item, x, r.y, boxW, rowH)
			}
			r.y += rowH + gap
		}
		r.y += 6
	}
}

func (r *pdfRenderer) descriptionLines(item itemView, w float64) []string {
	if item.Description == "" {
		return nil
	}
	r.font("", 14)
	lines := r.pdf.SplitText(r.tr(item.Description), w-2*pdfPadding)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	return lines
}

func (r *pdfRenderer) itemHeight(item itemView, w float64) float64 {
	fs := r.view.Style.FontSize
	h := 2 * pdfPadding
	if item.SpecialOffer {
		h += r.font("B", 12)
	}
	h += r.font("B", positive(fs.Item, 18))
	h += float64(len(r.descriptionLines(item, w))) * r.font("", 14)
	h += r.font("B", positive(fs.Price, 16))
	meta := r.font("", 12)
	for _, m := range []string{item.Calories, item.Allergens, item.Rating} {
		if m != "" {
			h += meta
		}
	}
	return h
}

func (r *pdfRenderer) item(item itemView, x, y, w, h float64) {
	p := r.view.Presentation
	radius := float64(p.BorderRadius) * pxToMM
	fs := r.view.Style.FontSize

	if p.Layout != models.LayoutList {
		off := 0.4 + 0.4*float64(p.Shadow.Level)
		r.pdf.SetFillColor(int(r.pal.shadow.R), int(r.pal.shadow.G), int(r.pal.shadow.B))
		r.pdf.RoundedRect(x+off, y+off, w, h, radius, "1234", "F")
	}
	r.pdf.SetFillColor(int(r.pal.surface.R), int(r.pal.surface.G), int(r.pal.surface.B))
	r.pdf.RoundedRect(x, y, w, h, radius, "1234", "F")

	inner := w - 2*pdfPadding
	yy := y + pdfPadding
	cell := func(text, style string, px int, c color.RGBA) {
		lh := r.font(style, px)
		r.color(c)
		r.pdf.SetXY(x+pdfPadding, yy)
		r.pdf.CellFormat(inner, lh, r.tr(text), "", 0, "R", false, 0, "")
		yy += lh
	}

	if item.SpecialOffer {
		cell(SpecialOfferLabel, "B", 12, r.pal.accent)
	}
	cell(item.Name, "B", positive(fs.Item, 18), r.pal.itemName)
	for _, l := range r.descriptionLines(item, w) {
		cell(l, "", 14, r.pal.text)
	}

	priceY := yy
	cell(item.Price, "B", positive(fs.Price, 16), r.pal.accent)
	if item.OriginalPrice != "" {
		lh := r.font("", 12)
		pw := r.pdf.GetStringWidth(r.tr(item.OriginalPrice))
		r.font("B", positive(fs.Price, 16))
		left := x + w - pdfPadding - r.pdf.GetStringWidth(r.tr(item.Price)) - 3 - pw
		r.font("", 12)
		r.color(r.pal.text)
		r.pdf.SetXY(left, priceY)
		r.pdf.CellFormat(pw, lh, r.tr(item.OriginalPrice), "", 0, "L", false, 0, "")
		r.pdf.SetDrawColor(int(r.pal.text.R), int(r.pal.text.G), int(r.pal.text.B))
		r.pdf.SetLineWidth(0.2)
		r.pdf.Line(left, priceY+lh/2, left+pw, priceY+lh/2)
	}

	for _, m := range []string{item.Calories, allergensText(item), ratingText(item)} {
		if m != "" {
			cell(m, "", 12, r.pal.text)
		}
	}
}

func allergensText(item itemView) string {
	if item.Allergens == "" {
		return ""
	}
	return AllergensLabel + " " + item.Allergens
}

func ratingText(item itemView) string {
	if item.Rating == "" {
		return ""
	}
	if item.ReviewCount != "" {
		return item.Rating + " " + item.ReviewCount
	}
	return item.Rating
}
