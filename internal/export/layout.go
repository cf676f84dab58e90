package export

import (
	"image/color"

	"github.com/chrisdamba/menucraft/internal/models"
)

// pageColumns is the column count used by the fixed-width PDF and PNG pages.
// Grids use their widest breakpoint capped at maxCols; card and list layouts
// stack one item per row.
func pageColumns(v menuView, maxCols int) int {
	if v.Presentation.Layout != models.LayoutGrid {
		return 1
	}
	cols := v.Presentation.Columns.Count
	if cols > maxCols {
		cols = maxCols
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// palette holds the opaque colors the raster and PDF renderers paint with.
type palette struct {
	background color.RGBA
	text       color.RGBA
	title      color.RGBA
	category   color.RGBA
	itemName   color.RGBA
	accent     color.RGBA
	surface    color.RGBA
	shadow     color.RGBA
}

func newPalette(v menuView) palette {
	p := v.Presentation
	bg := parseColor(p.BackgroundColor, white, white)
	text := parseColor(p.TextColor, bg, black)
	return palette{
		background: bg,
		text:       text,
		title:      parseColor(p.TitleColor, bg, text),
		category:   parseColor(p.CategoryColor, bg, text),
		itemName:   parseColor(p.ItemNameColor, bg, text),
		accent:     parseColor(p.AccentColor, bg, text),
		surface:    parseColor(p.ItemSurface, bg, bg),
		shadow:     darken(bg, 0.08+0.04*float64(p.Shadow.Level)),
	}
}
