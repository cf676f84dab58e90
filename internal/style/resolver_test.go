package style

import (
	"testing"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestShadowTierOf_MonotonicStepFunction(t *testing.T) {
	prev := -1
	for intensity := 0; intensity <= 10; intensity++ {
		tier := ShadowTierOf(intensity)
		assert.GreaterOrEqual(t, tier.Level, prev, "intensity %d", intensity)
		prev = tier.Level
	}
}

func TestShadowTierOf_Thresholds(t *testing.T) {
	cases := map[int]string{
		0: "sm", 2: "sm",
		3: "md", 4: "md",
		5: "lg", 6: "lg",
		7: "xl", 8: "xl",
		9: "2xl", 10: "2xl",
	}
	for intensity, name := range cases {
		assert.Equal(t, name, ShadowTierOf(intensity).Name, "intensity %d", intensity)
	}
}

func TestGridColumns(t *testing.T) {
	for n := 1; n <= 6; n++ {
		assert.Equal(t, n, GridColumns(n).Count)
	}
	for _, n := range []int{-1, 0, 7, 100} {
		assert.Equal(t, 2, GridColumns(n).Count, "itemsPerRow %d", n)
	}
	assert.Equal(t, Columns{Count: 5, MD: 2, LG: 3, XL: 5}, GridColumns(5))
}

func TestLayoutOf_UnknownFallsBackToGrid(t *testing.T) {
	assert.Equal(t, models.LayoutCard, LayoutOf("card"))
	assert.Equal(t, models.LayoutList, LayoutOf("list"))
	assert.Equal(t, models.LayoutGrid, LayoutOf("grid"))
	assert.Equal(t, models.LayoutGrid, LayoutOf("masonry"))
	assert.Equal(t, models.LayoutGrid, LayoutOf(""))
}

func TestResolve_DarkThemeOverridesColorsButNotAccent(t *testing.T) {
	s := models.MenuStyle{
		PrimaryColor:    "#111111",
		SecondaryColor:  "#222222",
		AccentColor:     "#333333",
		BackgroundColor: "#FFFFFF",
		TextColor:       "#000000",
		Theme:           models.ThemeDark,
	}

	p := Resolve(s)

	assert.True(t, p.Dark)
	assert.Equal(t, DarkBackground, p.BackgroundColor)
	assert.Equal(t, DarkText, p.TextColor)
	assert.Equal(t, DarkTitle, p.TitleColor)
	assert.Equal(t, DarkCategory, p.CategoryColor)
	assert.Equal(t, "#333333", p.AccentColor)
	assert.Equal(t, DarkItemSurface, p.ItemSurface)
}

func TestResolve_LightThemeKeepsStoredColors(t *testing.T) {
	s := models.MenuStyle{
		PrimaryColor:    "#111111",
		SecondaryColor:  "#222222",
		BackgroundColor: "#FAFAFA",
		TextColor:       "#010101",
		Layout:          models.LayoutList,
	}

	p := Resolve(s)

	assert.Equal(t, "#FAFAFA", p.BackgroundColor)
	assert.Equal(t, "#111111", p.TitleColor)
	assert.Equal(t, "#222222", p.CategoryColor)
	assert.Equal(t, Transparent, p.ItemSurface)
}

func TestResolve_DegradesOutOfRangeNumbers(t *testing.T) {
	p := Resolve(models.MenuStyle{
		ItemsPerRow:       42,
		BackgroundOpacity: 250,
		Spacing:           -4,
		BorderRadius:      -1,
		ShadowIntensity:   -3,
		Layout:            "unknown",
	})

	assert.Equal(t, 2, p.Columns.Count)
	assert.Equal(t, 1.0, p.Opacity)
	assert.Equal(t, 0, p.Spacing)
	assert.Equal(t, 0, p.BorderRadius)
	assert.Equal(t, "sm", p.Shadow.Name)
	assert.Equal(t, models.LayoutGrid, p.Layout)
	assert.Equal(t, "Inter", p.FontFamily)
}

func TestHeaderAlign(t *testing.T) {
	assert.Equal(t, "center", HeaderAlign(models.LogoTopCenter))
	assert.Equal(t, "right", HeaderAlign(models.LogoTopRight))
	assert.Equal(t, "left", HeaderAlign(models.LogoTopLeft))
	assert.Equal(t, "left", HeaderAlign(""))
}
