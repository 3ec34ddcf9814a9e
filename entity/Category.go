package entity

const (
	CategoryFood    = "Food"
	CategoryDrink   = "Drink"
	CategoryDessert = "Dessert"
)

func IsCategory(s string) bool {
	switch s {
	case CategoryFood, CategoryDrink, CategoryDessert:
		return true
	}
	return false
}

// NormalizeCategory coerces unrecognized stored values to Food for output.
// It never mutates the stored record.
func NormalizeCategory(s string) string {
	if IsCategory(s) {
		return s
	}
	return CategoryFood
}
