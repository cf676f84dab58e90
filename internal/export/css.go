package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
)

// stylesheet builds the document CSS from the resolved presentation. User
// supplied colors and fonts are filtered before they reach the output.
func stylesheet(v menuView) template.CSS {
	p := v.Presentation
	var b strings.Builder
	w := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	bg := cssColor(p.BackgroundColor, "#FFFFFF")
	text := cssColor(p.TextColor, "#111827")
	title := cssColor(p.TitleColor, text)
	category := cssColor(p.CategoryColor, text)
	itemName := cssColor(p.ItemNameColor, text)
	accent := cssColor(p.AccentColor, title)
	surface := cssColor(p.ItemSurface, "transparent")
	fs := v.Style.FontSize

	w("*{margin:0;padding:0;box-sizing:border-box}")
	w("body{font-family:%q,sans-serif;background-color:%s;color:%s;line-height:1.6;padding:20px;min-height:100vh}", cssFont(p.FontFamily), bg, text)
	w(".menu-background{position:fixed;inset:0;width:100%%;height:100%%;object-fit:cover;z-index:-1;opacity:%s}", FormatPrice(p.Opacity))
	w(".container{max-width:1200px;margin:0 auto}")
	w(".header{text-align:%s;margin-bottom:30px}", v.HeaderAlign)
	w(".logo{width:80px;height:80px;object-fit:contain;border-radius:%dpx}", p.BorderRadius)
	w(".restaurant-name{font-size:%dpx;color:%s;font-weight:bold;margin:10px 0}", positive(fs.Title, 32), title)
	w(".restaurant-meta{font-size:14px;opacity:0.8}")
	w(".category{margin-bottom:40px}")
	w(".category-title{font-size:%dpx;color:%s;font-weight:bold;margin-bottom:20px;padding-bottom:10px;border-bottom:2px solid %s}", positive(fs.Category, 24), category, category)
	w(".item{border-radius:%dpx;padding:15px;background:%s;box-shadow:%s}", p.BorderRadius, surface, p.Shadow.CSS)
	w(".item-media{width:100%%;height:150px;object-fit:cover;border-radius:%dpx;margin-bottom:10px}", p.BorderRadius)
	w(".item-name{font-size:%dpx;font-weight:bold;color:%s;margin-bottom:5px}", positive(fs.Item, 18), itemName)
	w(".item-description{font-size:14px;opacity:0.8;margin-bottom:10px}")
	w(".item-price{font-size:%dpx;color:%s;font-weight:bold}", positive(fs.Price, 16), accent)
	w(".item-original-price{text-decoration:line-through;opacity:0.6;margin-inline-start:8px;font-size:0.85em}")
	w(".badge{display:inline-block;background:%s;color:#FFFFFF;border-radius:999px;padding:2px 10px;font-size:12px;margin-bottom:6px}", accent)
	w(".item-meta{font-size:12px;opacity:0.8;margin-top:6px}")
	w(".star{color:#D1D5DB}.star.filled{color:#FACC15}")
	w(".empty{text-align:center;opacity:0.7;padding:40px 0}")

	switch p.Layout {
	case models.LayoutList:
		w(".items{display:flex;flex-direction:column;gap:%dpx}", p.Spacing)
		w(".item{display:flex;justify-content:space-between;align-items:center;box-shadow:none;border-bottom:1px solid rgba(0,0,0,0.1);border-radius:0}")
		w(".item-media{width:64px;height:64px;margin:0 0 0 12px}")
	case models.LayoutCard:
		w(".items{display:flex;flex-direction:column;gap:%dpx}", p.Spacing)
		w(".item{padding:24px}")
	default:
		c := p.Columns
		w(".items{display:grid;grid-template-columns:repeat(1,minmax(0,1fr));gap:%dpx}", p.Spacing)
		w("@media (min-width:768px){.items{grid-template-columns:repeat(%d,minmax(0,1fr))}}", c.MD)
		w("@media (min-width:1024px){.items{grid-template-columns:repeat(%d,minmax(0,1fr))}}", c.LG)
		w("@media (min-width:1280px){.items{grid-template-columns:repeat(%d,minmax(0,1fr))}}", c.XL)
	}

	return template.CSS(b.String())
}

func positive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
