package catalog

import (
	"testing"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencies(t *testing.T) {
	list := Currencies()
	require.NotEmpty(t, list)
	assert.Equal(t, "SAR", DefaultCurrency().Code)

	seen := map[string]bool{}
	for _, c := range list {
		assert.False(t, seen[c.Code], "duplicate currency %s", c.Code)
		seen[c.Code] = true
		assert.NotEmpty(t, c.Symbol)
	}

	usd, ok := CurrencyByCode("USD")
	require.True(t, ok)
	assert.Equal(t, "$", usd.Symbol)
	_, ok = CurrencyByCode("usd")
	assert.False(t, ok)
}

func TestCurrencies_ReturnsCopy(t *testing.T) {
	list := Currencies()
	list[0].Code = "XXX"
	assert.Equal(t, "SAR", DefaultCurrency().Code)
}

func TestTemplates(t *testing.T) {
	list := Templates()
	require.NotEmpty(t, list)
	assert.Equal(t, list[0].ID, DefaultTemplate().ID)

	for _, tpl := range list {
		assert.False(t, tpl.IsCustom, tpl.ID)
		assert.Contains(t, []string{models.LayoutGrid, models.LayoutCard, models.LayoutList}, tpl.Style.Layout, tpl.ID)
		got, ok := TemplateByID(tpl.ID)
		require.True(t, ok, tpl.ID)
		assert.Equal(t, tpl.Name, got.Name)
	}

	_, ok := TemplateByID("nope")
	assert.False(t, ok)
}

func TestTemplates_ReturnsClones(t *testing.T) {
	list := Templates()
	list[0].Style.PrimaryColor = "#000001"
	assert.NotEqual(t, "#000001", DefaultTemplate().Style.PrimaryColor)
}
