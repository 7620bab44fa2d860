package entity

import "time"

// Catalog sections the storefront recognizes. Category-filtered queries only
// return products whose category is one of these.
const (
	CategoryBlindsShades   = "Blinds & Shades"
	CategoryCurtainsDrapes = "Curtains & Drapes"
	CategoryFurnishings    = "Furnishings"
	CategorySmartHome      = "Smart Home"
	CategoryAccessories    = "Accessories"
)

// Categories lists every recognized catalog section.
var Categories = []string{
	CategoryBlindsShades,
	CategoryCurtainsDrapes,
	CategoryFurnishings,
	CategorySmartHome,
	CategoryAccessories,
}

// ValidCategory reports whether s is a recognized catalog section.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Product is a catalog entry. Prices are integer cents so order totals are
// exact sums. Stock is mutated only by the checkout workflow.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Images      []string
	Category    string
	Stock       int
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
