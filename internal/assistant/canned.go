package assistant

import "github.com/chrisdamba/menucraft/internal/models"

type canned struct {
	name        string
	description string
	data        func() any
}

func ptr[T any](v T) *T {
	return &v
}

var cannedSuggestions = map[string][]canned{
	models.SuggestionCategory: {
		{
			name:        "المشروبات الباردة",
			description: "أضف قسماً للمشروبات الباردة والعصائر الطازجة",
			data: func() any {
				return &models.MenuCategory{Name: "المشروبات الباردة", Icon: "🥤", Items: []models.MenuItem{
					{Name: "عصير برتقال طازج", Description: "برتقال معصور يومياً", Price: 12},
					{Name: "ليموناضة بالنعناع", Description: "ليمون ونعناع مع الثلج", Price: 14},
				}}
			},
		},
		{
			name:        "الحلويات",
			description: "قسم للحلويات الشرقية والغربية لزيادة متوسط الطلب",
			data: func() any {
				return &models.MenuCategory{Name: "الحلويات", Icon: "🍰", Items: []models.MenuItem{
					{Name: "كنافة بالقشطة", Description: "كنافة ناعمة مع قشطة طازجة", Price: 22},
					{Name: "تشيز كيك", Description: "تشيز كيك بصوص التوت", Price: 25},
				}}
			},
		},
		{
			name:        "المقبلات",
			description: "ابدأ قائمتك بمقبلات خفيفة ومشاركة",
			data: func() any {
				return &models.MenuCategory{Name: "المقبلات", Icon: "🥗", Items: []models.MenuItem{
					{Name: "حمص", Description: "حمص بالطحينة وزيت الزيتون", Price: 12},
				}}
			},
		},
	},
	models.SuggestionItem: {
		{
			name:        "برجر الشيف الخاص",
			description: "طبق مميز يجذب الانتباه في أعلى القائمة",
			data: func() any {
				return &models.MenuItem{
					Name:           "برجر الشيف الخاص",
					Description:    "لحم أنجوس مع جبنة شيدر مدخنة وصوص البيت",
					Price:          45,
					Calories:       ptr(780),
					IsSpecialOffer: true,
					OriginalPrice:  ptr(55.0),
				}
			},
		},
		{
			name:        "سلطة الكينوا",
			description: "خيار صحي لمحبي الأطباق الخفيفة",
			data: func() any {
				return &models.MenuItem{
					Name:        "سلطة الكينوا",
					Description: "كينوا مع خضار موسمية وصوص الليمون",
					Price:       28,
					Calories:    ptr(320),
					Allergens:   "مكسرات",
				}
			},
		},
		{
			name:        "لاتيه بالكراميل",
			description: "مشروب قهوة محبوب يناسب جميع الأوقات",
			data: func() any {
				return &models.MenuItem{
					Name:        "لاتيه بالكراميل",
					Description: "إسبريسو مع حليب مبخر وكراميل",
					Price:       18,
					Rating:      ptr(4.7),
					ReviewCount: ptr(126),
				}
			},
		},
	},
	models.SuggestionStyle: {
		{
			name:        "مظهر داكن أنيق",
			description: "ثيم داكن مع لمسات ذهبية يناسب المطاعم الراقية",
			data: func() any {
				return &models.StylePatch{
					Theme:       ptr(models.ThemeDark),
					AccentColor: ptr("#D4AF37"),
					FontFamily:  ptr("Playfair Display"),
				}
			},
		},
		{
			name:        "ألوان دافئة",
			description: "ألوان دافئة تفتح الشهية مع عرض البطاقات",
			data: func() any {
				return &models.StylePatch{
					PrimaryColor:   ptr("#C2410C"),
					SecondaryColor: ptr("#EA580C"),
					AccentColor:    ptr("#FACC15"),
					Layout:         ptr(models.LayoutCard),
					ItemsPerRow:    ptr(3),
				}
			},
		},
		{
			name:        "قائمة بسيطة",
			description: "عرض قائمي نظيف مع ظلال خفيفة",
			data: func() any {
				return &models.StylePatch{
					Layout:          ptr(models.LayoutList),
					ShadowIntensity: ptr(1),
					BorderRadius:    ptr(4),
				}
			},
		},
	},
	models.SuggestionTemplate: {
		{
			name:        "قالب موسمي",
			description: "قالب بألوان الموسم الحالي للعروض المؤقتة",
			data: func() any {
				return &models.TemplatePatch{
					Name:   ptr("قالب موسمي"),
					Layout: ptr(models.TemplateArtistic),
					Style:  &models.StylePatch{PrimaryColor: ptr("#15803D"), AccentColor: ptr("#F59E0B")},
				}
			},
		},
	},
}
