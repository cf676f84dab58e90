package export

import (
	"strconv"
	"strings"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/style"
)

// Empty state messages, shared with the live preview.
const (
	EmptyMenuMessage     = "لم يتم إضافة أصناف بعد"
	EmptyCategoryMessage = "لا توجد عناصر في هذا الصنف"
	SpecialOfferLabel    = "عرض خاص"
	CaloriesUnit         = "سعرة حرارية"
	AllergensLabel       = "مسببات الحساسية:"
)

type menuView struct {
	Restaurant   models.RestaurantInfo
	Style        models.MenuStyle
	Presentation style.Presentation
	HeaderAlign  string
	Categories   []categoryView
}

type categoryView struct {
	Name  string
	Icon  string
	Items []itemView
}

type itemView struct {
	Name          string
	Description   string
	Image         string
	Video         string
	Icon          string
	Price         string
	OriginalPrice string // set only for discounted special offers
	SpecialOffer  bool
	Calories      string
	Allergens     string
	Stars         []bool // five entries, true when filled; nil when ratings are hidden
	Rating        string
	ReviewCount   string
}

func buildView(project models.MenuProject, opts Options) menuView {
	r := project.Restaurant
	v := menuView{
		Restaurant:   r,
		Style:        project.Style,
		Presentation: style.Resolve(project.Style),
		HeaderAlign:  style.HeaderAlign(r.LogoPosition),
		Categories:   make([]categoryView, 0, len(project.Categories)),
	}

	for _, c := range project.Categories {
		cv := categoryView{Name: c.Name, Icon: c.Icon, Items: make([]itemView, 0, len(c.Items))}
		for _, item := range c.Items {
			cv.Items = append(cv.Items, buildItem(item, r, opts))
		}
		v.Categories = append(v.Categories, cv)
	}
	return v
}

func buildItem(item models.MenuItem, r models.RestaurantInfo, opts Options) itemView {
	iv := itemView{
		Name:         item.Name,
		Description:  item.Description,
		Image:        item.Image,
		Video:        item.Video,
		Icon:         item.Icon,
		Price:        priceLabel(item.Price, r.Currency, opts.ShowCurrencyFlag),
		SpecialOffer: item.IsSpecialOffer,
	}
	if item.HasDiscount() {
		iv.OriginalPrice = priceLabel(*item.OriginalPrice, r.Currency, false)
	}
	if r.ShowCalories && item.HasCalories() {
		iv.Calories = strconv.Itoa(*item.Calories) + " " + CaloriesUnit
	}
	if r.ShowAllergens && strings.TrimSpace(item.Allergens) != "" {
		iv.Allergens = item.Allergens
	}
	if r.ShowRatings && item.HasRating() {
		iv.Stars = stars(*item.Rating)
		iv.Rating = FormatPrice(*item.Rating) + "/5"
		if item.HasReviewCount() {
			iv.ReviewCount = "(" + strconv.Itoa(*item.ReviewCount) + ")"
		}
	}
	return iv
}

// FormatPrice prints the shortest decimal form of p.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func priceLabel(p float64, c models.Currency, showFlag bool) string {
	label := FormatPrice(p)
	if c.Symbol != "" {
		label += " " + c.Symbol
	}
	if showFlag && c.Flag != "" {
		label = c.Flag + " " + label
	}
	return label
}

// stars marks star i filled when i < rating.
func stars(rating float64) []bool {
	out := make([]bool, 5)
	for i := range out {
		out[i] = float64(i) < rating
	}
	return out
}
