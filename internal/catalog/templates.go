package catalog

import "github.com/chrisdamba/menucraft/internal/models"

const previewBase = "https://images.pexels.com/photos/"

func preview(photo string) string {
	return previewBase + photo + "?auto=compress&cs=tinysrgb&w=400"
}

var templates = []models.MenuTemplate{
	{
		ID:          "modern-minimal",
		Name:        "Modern Minimal",
		Description: "Clean contemporary look for upscale restaurants",
		Preview:     preview("1640777/pexels-photo-1640777.jpeg"),
		Layout:      models.TemplateModern,
		Style: models.MenuStyle{
			PrimaryColor: "#1F2937", SecondaryColor: "#3B82F6", AccentColor: "#F59E0B",
			BackgroundColor: "#FFFFFF", TextColor: "#111827", FontFamily: "Inter",
			FontSize: models.FontSize{Title: 32, Category: 24, Item: 18, Price: 16},
			Layout:   models.LayoutGrid, ItemsPerRow: 2,
			BackgroundOpacity: 100, BorderRadius: 8, Spacing: 16, ShadowIntensity: 2,
		},
	},
	{
		ID:          "classic-elegant",
		Name:        "Classic Elegant",
		Description: "Classic, refined design for fine dining",
		Preview:     preview("1395967/pexels-photo-1395967.jpeg"),
		Layout:      models.TemplateClassic,
		Style: models.MenuStyle{
			PrimaryColor: "#7C2D12", SecondaryColor: "#DC2626", AccentColor: "#D97706",
			BackgroundColor: "#FEF7ED", TextColor: "#1C1917", FontFamily: "Georgia",
			FontSize: models.FontSize{Title: 36, Category: 28, Item: 16, Price: 18},
			Layout:   models.LayoutCard, ItemsPerRow: 1,
			BackgroundOpacity: 100, BorderRadius: 12, Spacing: 20, ShadowIntensity: 4,
		},
	},
	{
		ID:          "cafe-cozy",
		Name:        "Cafe Cozy",
		Description: "Warm and comfortable, made for coffee shops",
		Preview:     preview("302899/pexels-photo-302899.jpeg"),
		Layout:      models.TemplateRustic,
		Style: models.MenuStyle{
			PrimaryColor: "#92400E", SecondaryColor: "#059669", AccentColor: "#DC2626",
			BackgroundColor: "#FFFBEB", TextColor: "#78350F", FontFamily: "Inter",
			FontSize: models.FontSize{Title: 28, Category: 22, Item: 16, Price: 16},
			Layout:   models.LayoutGrid, ItemsPerRow: 3,
			BackgroundOpacity: 100, BorderRadius: 10, Spacing: 12, ShadowIntensity: 3,
		},
	},
	{
		ID:          "fast-food-vibrant",
		Name:        "Fast Food Vibrant",
		Description: "Bold and colourful for quick service",
		Preview:     preview("1633578/pexels-photo-1633578.jpeg"),
		Layout:      models.TemplateContemporary,
		Style: models.MenuStyle{
			PrimaryColor: "#DC2626", SecondaryColor: "#F59E0B", AccentColor: "#10B981",
			BackgroundColor: "#FEF2F2", TextColor: "#1F2937", FontFamily: "Inter",
			FontSize: models.FontSize{Title: 30, Category: 20, Item: 16, Price: 18},
			Layout:   models.LayoutGrid, ItemsPerRow: 4,
			BackgroundOpacity: 100, BorderRadius: 6, Spacing: 14, ShadowIntensity: 1,
		},
	},
	{
		ID:          "pizza-italian",
		Name:        "Pizza Italian",
		Description: "Mediterranean style for pizzerias and trattorias",
		Preview:     preview("315755/pexels-photo-315755.jpeg"),
		Layout:      models.TemplateVintage,
		Style: models.MenuStyle{
			PrimaryColor: "#DC2626", SecondaryColor: "#059669", AccentColor: "#FFFFFF",
			BackgroundColor: "#FEF7ED", TextColor: "#1C1917", FontFamily: "Georgia",
			FontSize: models.FontSize{Title: 34, Category: 26, Item: 17, Price: 17},
			Layout:   models.LayoutList, ItemsPerRow: 1,
			BackgroundOpacity: 100, BorderRadius: 8, Spacing: 18, ShadowIntensity: 2,
		},
	},
	{
		ID:          "sushi-zen",
		Name:        "Sushi Zen",
		Description: "Simple Japanese look for sushi and Asian cuisine",
		Preview:     preview("357756/pexels-photo-357756.jpeg"),
		Layout:      models.TemplateMinimal,
		Style: models.MenuStyle{
			PrimaryColor: "#1F2937", SecondaryColor: "#6B7280", AccentColor: "#DC2626",
			BackgroundColor: "#F9FAFB", TextColor: "#111827", FontFamily: "Inter",
			FontSize: models.FontSize{Title: 28, Category: 20, Item: 15, Price: 15},
			Layout:   models.LayoutCard, ItemsPerRow: 2,
			BackgroundOpacity: 100, BorderRadius: 4, Spacing: 10, ShadowIntensity: 1,
		},
	},
	{
		ID:          "bakery-sweet",
		Name:        "Bakery Sweet",
		Description: "Sweet and warm for bakeries and dessert shops",
		Preview:     preview("1854652/pexels-photo-1854652.jpeg"),
		Layout:      models.TemplateArtistic,
		Style: models.MenuStyle{
			PrimaryColor: "#BE185D", SecondaryColor: "#F59E0B", AccentColor: "#10B981",
			BackgroundColor: "#FDF2F8", TextColor: "#831843", FontFamily: "Inter",
			FontSize: models.FontSize{Title: 32, Category: 24, Item: 16, Price: 16},
			Layout:   models.LayoutGrid, ItemsPerRow: 3,
			BackgroundOpacity: 100, BorderRadius: 16, Spacing: 16, ShadowIntensity: 3,
		},
	},
	{
		ID:          "steakhouse-premium",
		Name:        "Steakhouse Premium",
		Description: "Luxurious design for premium steakhouses",
		Preview:     preview("361184/asparagus-steak-veal-steak-veal-361184.jpeg"),
		Layout:      models.TemplatePremium,
		Style: models.MenuStyle{
			PrimaryColor: "#000000", SecondaryColor: "#D97706", AccentColor: "#FFFFFF",
			BackgroundColor: "#1F2937", TextColor: "#F9FAFB", FontFamily: "Georgia",
			FontSize: models.FontSize{Title: 38, Category: 30, Item: 18, Price: 20},
			Layout:   models.LayoutCard, ItemsPerRow: 1,
			BackgroundOpacity: 100, BorderRadius: 12, Spacing: 24, ShadowIntensity: 5,
		},
	},
	{
		ID:          "food-truck-fun",
		Name:        "Food Truck Fun",
		Description: "Playful and lively for food trucks",
		Preview:     preview("1199960/pexels-photo-1199960.jpeg"),
		Layout:      models.TemplateDigital,
		Style: models.MenuStyle{
			PrimaryColor: "#7C3AED", SecondaryColor: "#F59E0B", AccentColor: "#DC2626",
			BackgroundColor: "#F3F4F6", TextColor: "#1F2937", FontFamily: "Inter",
			FontSize: models.FontSize{Title: 30, Category: 22, Item: 16, Price: 18},
			Layout:   models.LayoutGrid, ItemsPerRow: 4,
			BackgroundOpacity: 100, BorderRadius: 8, Spacing: 12, ShadowIntensity: 2,
		},
	},
	{
		ID:          "bar-cocktails",
		Name:        "Bar Cocktails",
		Description: "Sleek modern look for bars and cocktail lounges",
		Preview:     preview("2702674/pexels-photo-2702674.jpeg"),
		Layout:      models.TemplateElegant,
		Style: models.MenuStyle{
			PrimaryColor: "#1E293B", SecondaryColor: "#0EA5E9", AccentColor: "#F59E0B",
			BackgroundColor: "#0F172A", TextColor: "#E2E8F0", FontFamily: "Inter",
			FontSize: models.FontSize{Title: 34, Category: 26, Item: 17, Price: 19},
			Layout:   models.LayoutList, ItemsPerRow: 1,
			BackgroundOpacity: 100, BorderRadius: 6, Spacing: 16, ShadowIntensity: 4,
		},
	},
}

// Templates returns copies of the built-in templates in display order.
func Templates() []models.MenuTemplate {
	out := make([]models.MenuTemplate, len(templates))
	for i, t := range templates {
		out[i] = t.Clone()
	}
	return out
}

// DefaultTemplate is the template every new project starts from.
func DefaultTemplate() models.MenuTemplate {
	return templates[0].Clone()
}

func TemplateByID(id string) (models.MenuTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return models.MenuTemplate{}, false
}

// PreviewPlaceholder is the preview image used for user-authored templates.
var PreviewPlaceholder = preview("1640777/pexels-photo-1640777.jpeg")
