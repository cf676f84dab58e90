package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/chrisdamba/menucraft/internal/catalog"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burgerProject() models.MenuProject {
	tmpl := catalog.DefaultTemplate()
	return models.MenuProject{
		ID:   "p1",
		Name: "Lunch",
		Restaurant: models.RestaurantInfo{
			Name:          "Cafe",
			LogoPosition:  models.LogoTopCenter,
			Currency:      catalog.DefaultCurrency(),
			ShowCalories:  true,
			ShowAllergens: true,
			ShowRatings:   true,
		},
		Template: tmpl,
		Style:    tmpl.Style.WithTemplateDefaults(),
		Categories: []models.MenuCategory{
			{ID: "c1", Name: "Mains", Items: []models.MenuItem{
				{ID: "i1", Name: "Burger", Price: 20},
			}},
		},
		UpdatedAt: time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC),
	}
}

func renderHTML(t *testing.T, p models.MenuProject, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewHTMLExporter(opts).Export(&buf, p))
	return buf.String()
}

func itemsSection(t *testing.T, doc string) string {
	t.Helper()
	start := strings.Index(doc, `<main class="menu">`)
	end := strings.Index(doc, "</main>")
	require.True(t, start >= 0 && end > start, "items section not found")
	return doc[start:end]
}

func TestHTMLExport_RoundTrip(t *testing.T) {
	doc := renderHTML(t, burgerProject(), Options{ShowCurrencyFlag: true})
	section := itemsSection(t, doc)

	assert.Equal(t, 1, strings.Count(section, "Mains"))
	assert.Equal(t, 1, strings.Count(section, "Burger"))
	assert.Equal(t, 1, strings.Count(section, "20"))

	assert.NotContains(t, section, "calories")
	assert.NotContains(t, section, "allergens")
	assert.NotContains(t, section, "rating")
	assert.NotContains(t, section, "star")
	assert.NotContains(t, section, SpecialOfferLabel)

	assert.Contains(t, doc, `<html lang="ar" dir="rtl">`)
}

func TestHTMLExport_IsDeterministic(t *testing.T) {
	p := burgerProject()
	assert.Equal(t, renderHTML(t, p, Options{}), renderHTML(t, p, Options{}))
}

func TestHTMLExport_EscapesUserText(t *testing.T) {
	p := burgerProject()
	p.Restaurant.Name = `<script>alert("x")</script>`
	p.Categories[0].Items[0].Description = `Tom & "Jerry" <b>`

	doc := renderHTML(t, p, Options{})
	assert.NotContains(t, doc, "<script>alert")
	assert.Contains(t, doc, "&lt;script&gt;")
	assert.Contains(t, doc, "Tom &amp; &#34;Jerry&#34; &lt;b&gt;")
}

func TestHTMLExport_OptionalFieldsNeedFlagAndValue(t *testing.T) {
	calories := 450
	rating := 3.5
	reviews := 12
	p := burgerProject()
	p.Categories[0].Items[0].Calories = &calories
	p.Categories[0].Items[0].Allergens = "gluten"
	p.Categories[0].Items[0].Rating = &rating
	p.Categories[0].Items[0].ReviewCount = &reviews

	section := itemsSection(t, renderHTML(t, p, Options{}))
	assert.Contains(t, section, "450 "+CaloriesUnit)
	assert.Contains(t, section, "gluten")
	assert.Equal(t, 4, strings.Count(section, `class="star filled"`))
	assert.Equal(t, 1, strings.Count(section, `class="star"`))
	assert.Contains(t, section, "(12)")

	p.Restaurant.ShowCalories = false
	p.Restaurant.ShowAllergens = false
	p.Restaurant.ShowRatings = false
	section = itemsSection(t, renderHTML(t, p, Options{}))
	assert.NotContains(t, section, CaloriesUnit)
	assert.NotContains(t, section, "gluten")
	assert.NotContains(t, section, "star")
}

func TestHTMLExport_SpecialOffer(t *testing.T) {
	original := 30.0
	p := burgerProject()
	p.Categories[0].Items[0].IsSpecialOffer = true
	p.Categories[0].Items[0].OriginalPrice = &original

	section := itemsSection(t, renderHTML(t, p, Options{}))
	assert.Contains(t, section, SpecialOfferLabel)
	assert.Contains(t, section, `<span class="item-original-price">30`)
}

func TestHTMLExport_CurrencyFlag(t *testing.T) {
	p := burgerProject()
	flag := p.Restaurant.Currency.Flag

	assert.Contains(t, itemsSection(t, renderHTML(t, p, Options{ShowCurrencyFlag: true})), flag+" 20 ")
	assert.NotContains(t, itemsSection(t, renderHTML(t, p, Options{ShowCurrencyFlag: false})), flag)
}

func TestHTMLExport_EmptyStates(t *testing.T) {
	p := burgerProject()
	p.Categories[0].Items = nil
	assert.Contains(t, renderHTML(t, p, Options{}), EmptyCategoryMessage)

	p.Categories = nil
	assert.Contains(t, renderHTML(t, p, Options{}), EmptyMenuMessage)
}

func TestHTMLExport_StyleRules(t *testing.T) {
	p := burgerProject()
	p.Style.ItemsPerRow = 5
	p.Style.Theme = models.ThemeDark
	p.Style.ShadowIntensity = 9
	p.Style = p.Style.WithBackgroundVideo("data:video/mp4;base64,AAAA")

	doc := renderHTML(t, p, Options{})
	assert.Contains(t, doc, "repeat(3,minmax(0,1fr))")
	assert.Contains(t, doc, "repeat(5,minmax(0,1fr))")
	assert.Contains(t, doc, "background-color:#1F2937")
	assert.Contains(t, doc, "0 25px 50px -12px")
	assert.Contains(t, doc, `<video class="menu-background" src="data:video/mp4;base64,AAAA"`)
	assert.NotContains(t, doc, `<img class="menu-background"`)
}

func TestHTMLExport_RejectsScriptURLs(t *testing.T) {
	p := burgerProject()
	p.Categories[0].Items[0].Image = "javascript:alert(1)"

	doc := renderHTML(t, p, Options{})
	assert.NotContains(t, doc, "javascript:")
}

func TestCSSColorFiltersInjection(t *testing.T) {
	assert.Equal(t, "#fff", cssColor("#fff", "x"))
	assert.Equal(t, "rgba(1,2,3,0.5)", cssColor("rgba(1,2,3,0.5)", "x"))
	assert.Equal(t, "x", cssColor("red;}body{display:none", "x"))
	assert.Equal(t, "Noto Kufi Arabic", cssFont(`Noto Kufi Arabic";}`))
}

func TestPDFExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPDFExporter(Options{}).Export(&buf, burgerProject()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPNGExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPNGExporter(Options{}).Export(&buf, burgerProject()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestParquetExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewParquetExporter(Options{}).Export(&buf, burgerProject()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PAR1")))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("PAR1")))

	rows := CatalogRows(burgerProject())
	require.Len(t, rows, 1)
	assert.Equal(t, "Mains", rows[0].Category)
	assert.Equal(t, "SAR", rows[0].Currency)
	assert.Nil(t, rows[0].Calories)
}

func TestNewAndParseFormat(t *testing.T) {
	for _, f := range Formats() {
		e, err := New(f, Options{})
		require.NoError(t, err)
		assert.Equal(t, f, e.Format())
	}

	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFileName(t *testing.T) {
	p := burgerProject()
	assert.Equal(t, "Lunch.html", FileName(p, FormatHTML))

	p.Name = ""
	assert.Equal(t, "Cafe.pdf", FileName(p, FormatPDF))

	p.Restaurant.Name = "  "
	assert.Equal(t, "menu.png", FileName(p, FormatPNG))

	p.Name = "a/b"
	assert.Equal(t, "a-b.parquet", FileName(p, FormatParquet))
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, white, parseColor("#FFF", black, black))
	assert.Equal(t, black, parseColor("nonsense", white, black))
	assert.Equal(t, white, parseColor("transparent", white, black))
	half := parseColor("rgba(0,0,0,0.5)", white, black)
	assert.InDelta(t, 128, int(half.R), 1)
}
