package forms

import (
	"testing"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestItemForm_Validation(t *testing.T) {
	assert.NoError(t, Check(ItemForm{Name: "Burger", Price: 20}))
	assert.ErrorContains(t, Check(ItemForm{Price: 20}), "Name is required")
	assert.ErrorContains(t, Check(ItemForm{Name: "Burger", Price: -1}), "Price must be at least 0")
	assert.ErrorContains(t, Check(ItemForm{Name: "Burger", Rating: ptr(5.5)}), "Rating must be at most 5")
}

func TestItemForm_ToItem(t *testing.T) {
	item := ItemForm{Name: " Burger ", Price: 20, Calories: ptr(500)}.ToItem("i1")
	assert.Equal(t, "i1", item.ID)
	assert.Equal(t, "Burger", item.Name)
	require.NotNil(t, item.Calories)
	assert.Equal(t, 500, *item.Calories)
}

func TestItemPatch_KeepsUnsetFields(t *testing.T) {
	item := models.MenuItem{ID: "i1", Name: "Burger", Price: 20, Description: "Beef"}
	out := ItemPatch{Price: ptr(25.0)}.ApplyTo(item)

	assert.Equal(t, 25.0, out.Price)
	assert.Equal(t, "Beef", out.Description)
	assert.Equal(t, "Burger", out.Name)
}

func TestRestaurantForm(t *testing.T) {
	assert.ErrorContains(t, Check(RestaurantForm{LogoPosition: ptr("bottom")}), "LogoPosition must be one of")
	assert.NoError(t, Check(RestaurantForm{LogoPosition: ptr(models.LogoTopRight), Website: ptr("https://example.com")}))

	info := RestaurantForm{Name: ptr("Cafe"), ShowRatings: ptr(true)}.ApplyTo(models.RestaurantInfo{Phone: "123"})
	assert.Equal(t, "Cafe", info.Name)
	assert.True(t, info.ShowRatings)
	assert.Equal(t, "123", info.Phone)
}

func TestStyleForm_Ranges(t *testing.T) {
	assert.NoError(t, Check(StyleForm{ItemsPerRow: ptr(6), ShadowIntensity: ptr(10), BackgroundOpacity: ptr(0)}))
	assert.Error(t, Check(StyleForm{ItemsPerRow: ptr(7)}))
	assert.Error(t, Check(StyleForm{ItemsPerRow: ptr(0)}))
	assert.Error(t, Check(StyleForm{ShadowIntensity: ptr(11)}))
	assert.Error(t, Check(StyleForm{BackgroundOpacity: ptr(101)}))
	assert.Error(t, Check(StyleForm{Layout: ptr("masonry")}))
	assert.Error(t, Check(StyleForm{Theme: ptr("sepia")}))
	assert.Error(t, Check(StyleForm{PrimaryColor: ptr("not-a-color")}))
	assert.NoError(t, Check(StyleForm{PrimaryColor: ptr("#1F2937"), AccentColor: ptr("rgba(1,2,3,0.5)")}))
}

func TestStyleForm_ToPatchMergesFontSizes(t *testing.T) {
	current := models.FontSize{Title: 32, Category: 24, Item: 18, Price: 16}
	patch := StyleForm{PriceSize: ptr(20), Layout: ptr(models.LayoutList)}.ToPatch(current)

	require.NotNil(t, patch.FontSize)
	assert.Equal(t, models.FontSize{Title: 32, Category: 24, Item: 18, Price: 20}, *patch.FontSize)

	style := patch.ApplyTo(models.MenuStyle{FontSize: current, Layout: models.LayoutGrid})
	assert.Equal(t, models.LayoutList, style.Layout)
	assert.Nil(t, StyleForm{}.ToPatch(current).FontSize)
}
