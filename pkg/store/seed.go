package store

import (
	"github.com/shopspring/decimal"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// defaultItem describes a catalog entry seeded on first use.
type defaultItem struct {
	name     string
	perKg    string
	category types.Category
}

// defaultCatalog defines the items seeded when the store has never persisted
// an item document. Prices are per kilogram.
var defaultCatalog = []defaultItem{
	{"Rice", "75.5", types.CategoryGrains},
	{"Wheat Flour", "42", types.CategoryGrains},
	{"Sugar", "44.5", types.CategoryGrains},
	{"Toor Dal", "130", types.CategoryPulses},
	{"Onions", "35", types.CategoryVegetables},
	{"Tomatoes", "40", types.CategoryVegetables},
}

// seed builds the default catalog, persists it, and returns it. It runs only
// when no item document exists at all; a persisted empty catalog stays
// empty. Callers hold the store lock.
func (s *ItemStore) seed() ([]types.Item, error) {
	items := make([]types.Item, 0, len(defaultCatalog))
	for _, d := range defaultCatalog {
		items = append(items, types.Item{
			ID:         s.ids(),
			Name:       d.name,
			PricePerKg: decimal.RequireFromString(d.perKg),
			Category:   d.category,
		})
	}
	if err := s.write(items); err != nil {
		return []types.Item{}, err
	}
	s.log.Info("seeded default catalog", "items", len(items))
	return items, nil
}
