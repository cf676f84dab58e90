// Package style turns a declarative MenuStyle into the concrete presentation
// parameters every renderer uses. The HTML exporter, the PDF and PNG
// renderers and the preview server all go through Resolve so the grid, shadow
// and theme rules live in one place.
package style

import (
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
)

// Dark theme colors. They replace the stored background, text, primary and
// secondary colors; the accent color is never overridden.
const (
	DarkBackground   = "#1F2937"
	DarkText         = "#F9FAFB"
	DarkTitle        = "#F9FAFB"
	DarkCategory     = "#E5E7EB"
	DarkItemSurface  = "rgba(55,65,81,0.9)"
	LightItemSurface = "rgba(255,255,255,0.9)"
	Transparent      = "transparent"
)

const defaultColumns = 2

// Columns is the responsive column template for a grid layout. Count is the
// widest column count; the breakpoint fields describe how the grid grows
// from a single column on narrow screens.
type Columns struct {
	Count int
	MD    int // >= 768px
	LG    int // >= 1024px
	XL    int // >= 1280px
}

var columnTemplates = map[int]Columns{
	1: {Count: 1, MD: 1, LG: 1, XL: 1},
	2: {Count: 2, MD: 2, LG: 2, XL: 2},
	3: {Count: 3, MD: 2, LG: 3, XL: 3},
	4: {Count: 4, MD: 2, LG: 4, XL: 4},
	5: {Count: 5, MD: 2, LG: 3, XL: 5},
	6: {Count: 6, MD: 2, LG: 3, XL: 6},
}

// GridColumns maps itemsPerRow to its column template. Values outside 1..6
// fall back to the 2-column default.
func GridColumns(itemsPerRow int) Columns {
	if c, ok := columnTemplates[itemsPerRow]; ok {
		return c
	}
	return columnTemplates[defaultColumns]
}

// LayoutOf normalises the layout name; anything unknown renders as a grid.
func LayoutOf(layout string) string {
	switch layout {
	case models.LayoutCard, models.LayoutList:
		return layout
	default:
		return models.LayoutGrid
	}
}

// ShadowTier is one step of the discrete shadow scale.
type ShadowTier struct {
	Level int    // 0..4, monotonic in the intensity
	Name  string // sm, md, lg, xl, 2xl
	CSS   string // box-shadow value
}

var shadowTiers = [...]ShadowTier{
	{Level: 0, Name: "sm", CSS: "0 1px 2px 0 rgba(0,0,0,0.05)"},
	{Level: 1, Name: "md", CSS: "0 4px 6px -1px rgba(0,0,0,0.1), 0 2px 4px -2px rgba(0,0,0,0.1)"},
	{Level: 2, Name: "lg", CSS: "0 10px 15px -3px rgba(0,0,0,0.1), 0 4px 6px -4px rgba(0,0,0,0.1)"},
	{Level: 3, Name: "xl", CSS: "0 20px 25px -5px rgba(0,0,0,0.1), 0 8px 10px -6px rgba(0,0,0,0.1)"},
	{Level: 4, Name: "2xl", CSS: "0 25px 50px -12px rgba(0,0,0,0.25)"},
}

func ShadowTierOf(intensity int) ShadowTier {
	switch {
	case intensity <= 2:
		return shadowTiers[0]
	case intensity <= 4:
		return shadowTiers[1]
	case intensity <= 6:
		return shadowTiers[2]
	case intensity <= 8:
		return shadowTiers[3]
	default:
		return shadowTiers[4]
	}
}

// HeaderAlign returns the text alignment for the restaurant header.
func HeaderAlign(logoPosition string) string {
	switch {
	case strings.Contains(logoPosition, "center"):
		return "center"
	case strings.Contains(logoPosition, "right"):
		return "right"
	default:
		return "left"
	}
}

type Presentation struct {
	Layout  string
	Columns Columns
	Shadow  ShadowTier
	Dark    bool

	Spacing      int
	BorderRadius int
	Opacity      float64 // background media opacity, 0..1

	BackgroundColor string
	TextColor       string
	TitleColor      string
	CategoryColor   string
	ItemNameColor   string
	AccentColor     string
	ItemSurface     string // card background; transparent for list rows

	FontFamily string
	FontSize   models.FontSize
}

// Resolve is total over any MenuStyle; out of range numbers degrade to
// usable defaults instead of failing.
func Resolve(s models.MenuStyle) Presentation {
	p := Presentation{
		Layout:          LayoutOf(s.Layout),
		Columns:         GridColumns(s.ItemsPerRow),
		Shadow:          ShadowTierOf(s.ShadowIntensity),
		Dark:            s.Theme == models.ThemeDark,
		Spacing:         nonNegative(s.Spacing),
		BorderRadius:    nonNegative(s.BorderRadius),
		Opacity:         float64(clamp(s.BackgroundOpacity, 0, 100)) / 100,
		BackgroundColor: s.BackgroundColor,
		TextColor:       s.TextColor,
		TitleColor:      s.PrimaryColor,
		CategoryColor:   s.SecondaryColor,
		ItemNameColor:   s.TextColor,
		AccentColor:     s.AccentColor,
		ItemSurface:     LightItemSurface,
		FontFamily:      s.FontFamily,
		FontSize:        s.FontSize,
	}

	if p.Dark {
		p.BackgroundColor = DarkBackground
		p.TextColor = DarkText
		p.TitleColor = DarkTitle
		p.CategoryColor = DarkCategory
		p.ItemNameColor = DarkText
		p.ItemSurface = DarkItemSurface
	}
	if p.Layout == models.LayoutList {
		p.ItemSurface = Transparent
	}
	if p.FontFamily == "" {
		p.FontFamily = "Inter"
	}
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
