// Package forms validates user input before it reaches the store. The store
// itself accepts anything; range and enum checks live here.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/go-playground/validator/v10"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates a form and flattens validation failures into one error.
func Check(form any) error {
	err := Validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "hexcolor|rgb|rgba":
		return field + " must be a hex, rgb or rgba color"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

type ItemForm struct {
	Name          string `validate:"required"`
	Description   string
	Price         float64 `validate:"gte=0"`
	Image         string
	Video         string
	Icon          string
	Calories      *int `validate:"omitempty,gte=0"`
	Allergens     string
	SpecialOffer  bool
	OriginalPrice *float64 `validate:"omitempty,gte=0"`
	Rating        *float64 `validate:"omitempty,gte=0,lte=5"`
	ReviewCount   *int     `validate:"omitempty,gte=0"`
}

func (f ItemForm) ToItem(id string) models.MenuItem {
	return models.MenuItem{
		ID:             id,
		Name:           strings.TrimSpace(f.Name),
		Description:    strings.TrimSpace(f.Description),
		Price:          f.Price,
		Image:          f.Image,
		Video:          f.Video,
		Icon:           f.Icon,
		Calories:       f.Calories,
		Allergens:      strings.TrimSpace(f.Allergens),
		IsSpecialOffer: f.SpecialOffer,
		OriginalPrice:  f.OriginalPrice,
		Rating:         f.Rating,
		ReviewCount:    f.ReviewCount,
	}
}

// ItemPatch edits an existing item; nil fields keep their value.
type ItemPatch struct {
	Name          *string `validate:"omitempty,min=1"`
	Description   *string
	Price         *float64 `validate:"omitempty,gte=0"`
	Image         *string
	Video         *string
	Icon          *string
	Calories      *int `validate:"omitempty,gte=0"`
	Allergens     *string
	SpecialOffer  *bool
	OriginalPrice *float64 `validate:"omitempty,gte=0"`
	Rating        *float64 `validate:"omitempty,gte=0,lte=5"`
	ReviewCount   *int     `validate:"omitempty,gte=0"`
}

func (p ItemPatch) ApplyTo(item models.MenuItem) models.MenuItem {
	out := item.Clone()
	set(&out.Name, p.Name)
	set(&out.Description, p.Description)
	set(&out.Price, p.Price)
	set(&out.Image, p.Image)
	set(&out.Video, p.Video)
	set(&out.Icon, p.Icon)
	set(&out.Allergens, p.Allergens)
	set(&out.IsSpecialOffer, p.SpecialOffer)
	if p.Calories != nil {
		out.Calories = p.Calories
	}
	if p.OriginalPrice != nil {
		out.OriginalPrice = p.OriginalPrice
	}
	if p.Rating != nil {
		out.Rating = p.Rating
	}
	if p.ReviewCount != nil {
		out.ReviewCount = p.ReviewCount
	}
	return out
}

type RestaurantForm struct {
	Name          *string
	Description   *string
	Logo          *string
	LogoPosition  *string `validate:"omitempty,oneof=top-left top-center top-right"`
	Address       *string
	Phone         *string
	Website       *string `validate:"omitempty,url"`
	ShowCalories  *bool
	ShowAllergens *bool
	ShowRatings   *bool
	EnableCart    *bool
}

func (f RestaurantForm) ApplyTo(info models.RestaurantInfo) models.RestaurantInfo {
	set(&info.Name, f.Name)
	set(&info.Description, f.Description)
	set(&info.Logo, f.Logo)
	set(&info.LogoPosition, f.LogoPosition)
	set(&info.Address, f.Address)
	set(&info.Phone, f.Phone)
	set(&info.Website, f.Website)
	set(&info.ShowCalories, f.ShowCalories)
	set(&info.ShowAllergens, f.ShowAllergens)
	set(&info.ShowRatings, f.ShowRatings)
	set(&info.EnableCart, f.EnableCart)
	return info
}

type StyleForm struct {
	PrimaryColor      *string `validate:"omitempty,hexcolor|rgb|rgba"`
	SecondaryColor    *string `validate:"omitempty,hexcolor|rgb|rgba"`
	AccentColor       *string `validate:"omitempty,hexcolor|rgb|rgba"`
	BackgroundColor   *string `validate:"omitempty,hexcolor|rgb|rgba"`
	TextColor         *string `validate:"omitempty,hexcolor|rgb|rgba"`
	FontFamily        *string `validate:"omitempty,min=1"`
	TitleSize         *int    `validate:"omitempty,gte=8,lte=96"`
	CategorySize      *int    `validate:"omitempty,gte=8,lte=96"`
	ItemSize          *int    `validate:"omitempty,gte=8,lte=96"`
	PriceSize         *int    `validate:"omitempty,gte=8,lte=96"`
	Layout            *string `validate:"omitempty,oneof=grid card list"`
	ItemsPerRow       *int    `validate:"omitempty,gte=1,lte=6"`
	BackgroundOpacity *int    `validate:"omitempty,gte=0,lte=100"`
	BorderRadius      *int    `validate:"omitempty,gte=0"`
	Spacing           *int    `validate:"omitempty,gte=0"`
	ShadowIntensity   *int    `validate:"omitempty,gte=0,lte=10"`
	Animations        *bool
	Theme             *string `validate:"omitempty,oneof=light dark"`
}

// ToPatch converts the form into a style patch. Font sizes are merged onto
// current because the patch replaces the font size block as a whole.
func (f StyleForm) ToPatch(current models.FontSize) models.StylePatch {
	patch := models.StylePatch{
		PrimaryColor:      f.PrimaryColor,
		SecondaryColor:    f.SecondaryColor,
		AccentColor:       f.AccentColor,
		BackgroundColor:   f.BackgroundColor,
		TextColor:         f.TextColor,
		FontFamily:        f.FontFamily,
		Layout:            f.Layout,
		ItemsPerRow:       f.ItemsPerRow,
		BackgroundOpacity: f.BackgroundOpacity,
		BorderRadius:      f.BorderRadius,
		Spacing:           f.Spacing,
		ShadowIntensity:   f.ShadowIntensity,
		Animations:        f.Animations,
		Theme:             f.Theme,
	}
	if f.TitleSize != nil || f.CategorySize != nil || f.ItemSize != nil || f.PriceSize != nil {
		sizes := current
		set(&sizes.Title, f.TitleSize)
		set(&sizes.Category, f.CategorySize)
		set(&sizes.Item, f.ItemSize)
		set(&sizes.Price, f.PriceSize)
		patch.FontSize = &sizes
	}
	return patch
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
