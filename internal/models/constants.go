package models

const (
	LayoutGrid = "grid"
	LayoutCard = "card"
	LayoutList = "list"

	ThemeLight = "light"
	ThemeDark  = "dark"

	LogoTopLeft   = "top-left"
	LogoTopCenter = "top-center"
	LogoTopRight  = "top-right"

	SuggestionCategory = "category"
	SuggestionItem     = "item"
	SuggestionStyle    = "style"
	SuggestionTemplate = "template"

	TemplateModern       = "modern"
	TemplateClassic      = "classic"
	TemplateMinimal      = "minimal"
	TemplateElegant      = "elegant"
	TemplateRustic       = "rustic"
	TemplateContemporary = "contemporary"
	TemplateVintage      = "vintage"
	TemplateArtistic     = "artistic"
	TemplateDigital      = "digital"
	TemplatePremium      = "premium"
	TemplateCustom       = "custom"
)

// fixed style values applied whenever a template is selected
const (
	DefaultBackgroundOpacity = 100
	DefaultBorderRadius      = 8
	DefaultSpacing           = 16
	DefaultShadowIntensity   = 2
)
