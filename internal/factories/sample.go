package factories

import (
	"math/rand"
	"sort"

	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

var dishesByCategory = map[string][]string{
	"Pizza":    {"Margherita", "Pepperoni", "Hawaiian", "Veggie Supreme"},
	"Curry":    {"Chicken Tikka Masala", "Vegetable Curry", "Beef Madras", "Paneer Butter Masala"},
	"Burgers":  {"Classic Cheeseburger", "Veggie Burger", "BBQ Bacon Burger", "Mushroom Swiss Burger"},
	"Grill":    {"Grilled Chicken", "BBQ Ribs", "Grilled Salmon", "Mixed Grill Platter"},
	"Salads":   {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad"},
	"Shakes":   {"Chocolate Shake", "Vanilla Shake", "Strawberry Shake", "Oreo Shake"},
	"Japanese": {"Sushi Roll", "Ramen", "Tempura", "Miso Soup"},
	"Mexican":  {"Tacos", "Burrito", "Guacamole", "Quesadilla"},
	"Thai":     {"Pad Thai", "Green Curry", "Tom Yum Soup", "Mango Sticky Rice"},
	"Mezze":    {"Falafel", "Hummus", "Tabbouleh", "Grilled Halloumi"},
	"Desserts": {"Tiramisu", "Baklava", "Crème Brûlée", "Apple Pie"},
}

var allergens = []string{"Gluten", "Dairy", "Nuts", "Eggs", "Soy", "Shellfish", "Sesame"}

// SampleFactory fills projects with plausible demo content.
type SampleFactory struct {
	NewID func() string
	Rng   *rand.Rand
}

func (sf *SampleFactory) id() string {
	if sf.NewID != nil {
		return sf.NewID()
	}
	return NewID()
}

func (sf *SampleFactory) intn(n int) int {
	if sf.Rng != nil {
		return sf.Rng.Intn(n)
	}
	return rand.Intn(n)
}

// CreateRestaurant keeps the currency and logo position of base and fills
// in a random name, description, address and contact details.
func (sf *SampleFactory) CreateRestaurant(base models.RestaurantInfo) models.RestaurantInfo {
	info := base
	info.Name = fake.Company().Name()
	info.Description = fake.Lorem().Sentence(8)
	info.Address = fake.Address().Address()
	info.Phone = fake.Phone().Number()
	info.Website = fake.Internet().URL()
	info.ShowCalories = true
	info.ShowAllergens = true
	info.ShowRatings = true
	return info
}

// CreateCategories picks categoryCount distinct categories with up to
// itemsPerCategory dishes each.
func (sf *SampleFactory) CreateCategories(categoryCount, itemsPerCategory int) []models.MenuCategory {
	names := make([]string, 0, len(dishesByCategory))
	for name := range dishesByCategory {
		names = append(names, name)
	}
	// sorted first so an injected Rng fully determines the order
	sort.Strings(names)
	for i := len(names) - 1; i > 0; i-- {
		j := sf.intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}

	if categoryCount > len(names) {
		categoryCount = len(names)
	}

	categories := make([]models.MenuCategory, 0, categoryCount)
	for _, name := range names[:categoryCount] {
		dishes := dishesByCategory[name]
		count := itemsPerCategory
		if count > len(dishes) {
			count = len(dishes)
		}
		category := models.MenuCategory{ID: sf.id(), Name: name, Items: make([]models.MenuItem, 0, count)}
		for _, dish := range dishes[:count] {
			category.Items = append(category.Items, sf.CreateMenuItem(dish))
		}
		categories = append(categories, category)
	}
	return categories
}

func (sf *SampleFactory) CreateMenuItem(name string) models.MenuItem {
	price := fake.Float64(2, 5, 50)
	calories := fake.IntBetween(120, 950)
	rating := float64(fake.IntBetween(3, 5))
	reviews := fake.IntBetween(0, 400)

	item := models.MenuItem{
		ID:          sf.id(),
		Name:        name,
		Description: fake.Lorem().Sentence(10),
		Price:       price,
		Calories:    &calories,
		Rating:      &rating,
		ReviewCount: &reviews,
	}
	if sf.intn(3) == 0 {
		item.Allergens = allergens[sf.intn(len(allergens))]
	}
	if sf.intn(5) == 0 {
		original := price + fake.Float64(2, 1, 10)
		item.IsSpecialOffer = true
		item.OriginalPrice = &original
	}
	return item
}
