package models

type RestaurantInfo struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Logo          string   `json:"logo,omitempty"`
	LogoPosition  string   `json:"logoPosition"` // "top-left", "top-center", "top-right"
	Address       string   `json:"address,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Website       string   `json:"website,omitempty"`
	Currency      Currency `json:"currency"`
	ShowCalories  bool     `json:"showCalories,omitempty"`
	ShowAllergens bool     `json:"showAllergens,omitempty"`
	ShowRatings   bool     `json:"showRatings,omitempty"`
	EnableCart    bool     `json:"enableCart,omitempty"`

	// Feature flags below are stored with the project but nothing reads them yet.
	EnableBooking             bool `json:"enableBooking,omitempty"`
	EnableOnlineOrdering      bool `json:"enableOnlineOrdering,omitempty"`
	EnableLoyaltyProgram      bool `json:"enableLoyaltyProgram,omitempty"`
	EnableReviews             bool `json:"enableReviews,omitempty"`
	EnableMultiLanguage       bool `json:"enableMultiLanguage,omitempty"`
	EnableSocialSharing       bool `json:"enableSocialSharing,omitempty"`
	EnableAnalytics           bool `json:"enableAnalytics,omitempty"`
	EnableQRCode              bool `json:"enableQRCode,omitempty"`
	EnableAutoBackup          bool `json:"enableAutoBackup,omitempty"`
	EnableSeasonalMenus       bool `json:"enableSeasonalMenus,omitempty"`
	EnableTimeBasedMenus      bool `json:"enableTimeBasedMenus,omitempty"`
	EnablePromotions          bool `json:"enablePromotions,omitempty"`
	EnableInventoryManagement bool `json:"enableInventoryManagement,omitempty"`
}
