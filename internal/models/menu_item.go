package models

type MenuItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Image          string   `json:"image,omitempty"`
	Video          string   `json:"video,omitempty"`
	Icon           string   `json:"icon,omitempty"`
	Calories       *int     `json:"calories,omitempty"`
	Allergens      string   `json:"allergens,omitempty"`
	IsSpecialOffer bool     `json:"isSpecialOffer,omitempty"`
	OriginalPrice  *float64 `json:"originalPrice,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	ReviewCount    *int     `json:"reviewCount,omitempty"`
}

type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon,omitempty"`
	Items []MenuItem `json:"items"`
}

// HasCalories reports whether the item carries a non-zero calorie count.
func (i MenuItem) HasCalories() bool {
	return i.Calories != nil && *i.Calories != 0
}

func (i MenuItem) HasRating() bool {
	return i.Rating != nil && *i.Rating != 0
}

func (i MenuItem) HasReviewCount() bool {
	return i.ReviewCount != nil && *i.ReviewCount != 0
}

// HasDiscount is true only for special offers that carry an original price.
func (i MenuItem) HasDiscount() bool {
	return i.IsSpecialOffer && i.OriginalPrice != nil && *i.OriginalPrice != 0
}

func (i MenuItem) Clone() MenuItem {
	c := i
	c.Calories = clonePtr(i.Calories)
	c.OriginalPrice = clonePtr(i.OriginalPrice)
	c.Rating = clonePtr(i.Rating)
	c.ReviewCount = clonePtr(i.ReviewCount)
	return c
}

func (c MenuCategory) Clone() MenuCategory {
	out := c
	out.Items = make([]MenuItem, len(c.Items))
	for i, item := range c.Items {
		out.Items[i] = item.Clone()
	}
	return out
}

// FindItem returns the index of the item with the given id, or -1.
func (c MenuCategory) FindItem(itemID string) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

func CloneCategories(categories []MenuCategory) []MenuCategory {
	if categories == nil {
		return nil
	}
	out := make([]MenuCategory, len(categories))
	for i, c := range categories {
		out[i] = c.Clone()
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
