package enums

import "fmt"

// MenuCategory groups menu items for the storefront filter.
type MenuCategory string

const (
	MenuCategoryPizza    MenuCategory = "pizza"
	MenuCategoryBurgers  MenuCategory = "burgers"
	MenuCategoryDesi     MenuCategory = "desi"
	MenuCategoryDesserts MenuCategory = "desserts"
	MenuCategoryDrinks   MenuCategory = "drinks"
	MenuCategoryDeals    MenuCategory = "deals"
)

var validMenuCategories = []MenuCategory{
	MenuCategoryPizza,
	MenuCategoryBurgers,
	MenuCategoryDesi,
	MenuCategoryDesserts,
	MenuCategoryDrinks,
	MenuCategoryDeals,
}

// String implements fmt.Stringer.
func (m MenuCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MenuCategory.
func (m MenuCategory) IsValid() bool {
	for _, candidate := range validMenuCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMenuCategory converts raw input into a MenuCategory.
func ParseMenuCategory(value string) (MenuCategory, error) {
	for _, candidate := range validMenuCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu category %q", value)
}
