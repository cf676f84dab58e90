package models

type FontSize struct {
	Title    int `json:"title"`
	Category int `json:"category"`
	Item     int `json:"item"`
	Price    int `json:"price"`
}

type CustomTemplateOptions struct {
	SeasonalThemes     bool `json:"seasonalThemes,omitempty"`
	SpecialEvents      bool `json:"specialEvents,omitempty"`
	HolidayDecorations bool `json:"holidayDecorations,omitempty"`
}

type MenuStyle struct {
	PrimaryColor      string   `json:"primaryColor"`
	SecondaryColor    string   `json:"secondaryColor"`
	AccentColor       string   `json:"accentColor"`
	BackgroundColor   string   `json:"backgroundColor"`
	TextColor         string   `json:"textColor"`
	FontFamily        string   `json:"fontFamily"`
	FontSize          FontSize `json:"fontSize"`
	Layout            string   `json:"layout"` // "grid", "card", "list"
	ItemsPerRow       int      `json:"itemsPerRow"`
	BackgroundImage   string   `json:"backgroundImage,omitempty"`
	BackgroundVideo   string   `json:"backgroundVideo,omitempty"`
	BackgroundOpacity int      `json:"backgroundOpacity"`
	BorderRadius      int      `json:"borderRadius"`
	Spacing           int      `json:"spacing"`
	ShadowIntensity   int      `json:"shadowIntensity"`
	Animations        bool     `json:"animations,omitempty"`
	Theme             string   `json:"theme,omitempty"` // "light", "dark"

	EnableMotionEffects   bool                   `json:"enableMotionEffects,omitempty"`
	CustomFonts           []string               `json:"customFonts,omitempty"`
	EnableSearch          bool                   `json:"enableSearch,omitempty"`
	EnableFeaturedItems   bool                   `json:"enableFeaturedItems,omitempty"`
	EnableLivePreview     bool                   `json:"enableLivePreview,omitempty"`
	CustomTemplateOptions *CustomTemplateOptions `json:"customTemplateOptions,omitempty"`
}

// WithBackgroundImage sets the background image and drops any background video.
func (s MenuStyle) WithBackgroundImage(src string) MenuStyle {
	s.BackgroundImage = src
	s.BackgroundVideo = ""
	return s
}

// WithBackgroundVideo sets the background video and drops any background image.
func (s MenuStyle) WithBackgroundVideo(src string) MenuStyle {
	s.BackgroundVideo = src
	s.BackgroundImage = ""
	return s
}

func (s MenuStyle) WithoutBackground() MenuStyle {
	s.BackgroundImage = ""
	s.BackgroundVideo = ""
	return s
}

// WithTemplateDefaults resets opacity, radius, spacing and shadow to the values
// every freshly selected template starts from.
func (s MenuStyle) WithTemplateDefaults() MenuStyle {
	s.BackgroundOpacity = DefaultBackgroundOpacity
	s.BorderRadius = DefaultBorderRadius
	s.Spacing = DefaultSpacing
	s.ShadowIntensity = DefaultShadowIntensity
	return s
}

func (s MenuStyle) Clone() MenuStyle {
	c := s
	if s.CustomFonts != nil {
		c.CustomFonts = append([]string(nil), s.CustomFonts...)
	}
	c.CustomTemplateOptions = clonePtr(s.CustomTemplateOptions)
	return c
}

// StylePatch is a partial MenuStyle; nil fields are left untouched on merge.
type StylePatch struct {
	PrimaryColor      *string   `json:"primaryColor,omitempty"`
	SecondaryColor    *string   `json:"secondaryColor,omitempty"`
	AccentColor       *string   `json:"accentColor,omitempty"`
	BackgroundColor   *string   `json:"backgroundColor,omitempty"`
	TextColor         *string   `json:"textColor,omitempty"`
	FontFamily        *string   `json:"fontFamily,omitempty"`
	FontSize          *FontSize `json:"fontSize,omitempty"`
	Layout            *string   `json:"layout,omitempty"`
	ItemsPerRow       *int      `json:"itemsPerRow,omitempty"`
	BackgroundOpacity *int      `json:"backgroundOpacity,omitempty"`
	BorderRadius      *int      `json:"borderRadius,omitempty"`
	Spacing           *int      `json:"spacing,omitempty"`
	ShadowIntensity   *int      `json:"shadowIntensity,omitempty"`
	Animations        *bool     `json:"animations,omitempty"`
	Theme             *string   `json:"theme,omitempty"`
}

// ApplyTo shallow-merges the patch into style and returns the result.
func (p StylePatch) ApplyTo(style MenuStyle) MenuStyle {
	out := style.Clone()
	setIf(&out.PrimaryColor, p.PrimaryColor)
	setIf(&out.SecondaryColor, p.SecondaryColor)
	setIf(&out.AccentColor, p.AccentColor)
	setIf(&out.BackgroundColor, p.BackgroundColor)
	setIf(&out.TextColor, p.TextColor)
	setIf(&out.FontFamily, p.FontFamily)
	setIf(&out.FontSize, p.FontSize)
	setIf(&out.Layout, p.Layout)
	setIf(&out.ItemsPerRow, p.ItemsPerRow)
	setIf(&out.BackgroundOpacity, p.BackgroundOpacity)
	setIf(&out.BorderRadius, p.BorderRadius)
	setIf(&out.Spacing, p.Spacing)
	setIf(&out.ShadowIntensity, p.ShadowIntensity)
	setIf(&out.Animations, p.Animations)
	setIf(&out.Theme, p.Theme)
	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
