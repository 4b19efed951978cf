package types

// Category groups items for filtering. Records persisted before categories
// existed, or carrying a value not listed here, normalize to CategoryOther.
type Category string

// Recognized categories.
const (
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryGrains     Category = "grains"
	CategoryPulses     Category = "pulses"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategorySpices     Category = "spices"
	CategoryOther      Category = "other"
)

// validCategories is the set of recognized category values.
var validCategories = map[Category]bool{
	CategoryFruits:     true,
	CategoryVegetables: true,
	CategoryGrains:     true,
	CategoryPulses:     true,
	CategoryDairy:      true,
	CategoryMeat:       true,
	CategorySpices:     true,
	CategoryOther:      true,
}

// Valid reports whether c is one of the recognized category values.
func (c Category) Valid() bool {
	return validCategories[c]
}

// Categories returns the recognized categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFruits,
		CategoryVegetables,
		CategoryGrains,
		CategoryPulses,
		CategoryDairy,
		CategoryMeat,
		CategorySpices,
		CategoryOther,
	}
}
