package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// ItemStore owns the persisted item catalog. Every mutation rewrites the
// whole document: the catalog is a handful of entries, not a database.
//
// Deleting an item also prunes its id from the recently-used document, so a
// later RecencyTracker.Resolve never has to chase a dangling reference.
type ItemStore struct {
	mu   sync.Mutex
	docs types.DocumentStore
	log  *slog.Logger

	// ids and now are swapped out by tests.
	ids func() string
	now func() time.Time
}

// NewItemStore returns an ItemStore persisting through docs. A nil logger
// falls back to the process default.
func NewItemStore(docs types.DocumentStore, log *slog.Logger) *ItemStore {
	return &ItemStore{
		docs: docs,
		log:  ensureLogger(log),
		ids:  newID,
		now:  time.Now,
	}
}

// ItemPatch carries the fields Update merges into an existing item. Nil
// fields stay untouched. The id is immutable and deliberately absent.
type ItemPatch struct {
	Name       *string
	PricePerKg *decimal.Decimal
	IsFavorite *bool
	Category   *types.Category
	LastUsed   *time.Time
}

// apply merges the set fields into item and re-normalizes the result.
func (p ItemPatch) apply(item types.Item) types.Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.PricePerKg != nil {
		item.PricePerKg = *p.PricePerKg
	}
	if p.IsFavorite != nil {
		item.IsFavorite = *p.IsFavorite
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.LastUsed != nil {
		item.LastUsed = p.LastUsed
	}
	return item.Normalize()
}

// List returns the whole catalog, upgraded to the current record shape. The
// first read of a store that has never persisted an item document seeds the
// default catalog; a document that exists but holds an empty array is
// returned as-is and never re-seeded. On storage failure List returns an
// empty slice alongside the error.
func (s *ItemStore) List() ([]types.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok, err := s.read()
	if err != nil {
		return []types.Item{}, err
	}
	if !ok {
		return s.seed()
	}
	return items, nil
}

// ByCategory returns the items in the given category. It is a filter over
// List, including its seeding behavior.
func (s *ItemStore) ByCategory(category types.Category) ([]types.Item, error) {
	items, err := s.List()
	if err != nil {
		return items, err
	}
	matched := []types.Item{}
	for _, item := range items {
		if item.Category == category {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Favorites returns the items flagged as favorites, a filter over List.
func (s *ItemStore) Favorites() ([]types.Item, error) {
	items, err := s.List()
	if err != nil {
		return items, err
	}
	matched := []types.Item{}
	for _, item := range items {
		if item.IsFavorite {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Get returns the item with the given id. ok is false when the catalog holds
// no such item; that is not an error.
func (s *ItemStore) Get(id string) (types.Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, _, err := s.read()
	if err != nil {
		return types.Item{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return types.Item{}, false, nil
}

// Add creates an item with a fresh time-ordered id and persists the catalog.
// Values arrive already validated by the caller; the store only assigns
// identity.
func (s *ItemStore) Add(name string, pricePerKg decimal.Decimal, category types.Category) (types.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, _, err := s.read()
	if err != nil {
		return types.Item{}, err
	}
	item := types.Item{
		ID:         s.ids(),
		Name:       name,
		PricePerKg: pricePerKg,
		Category:   category,
	}.Normalize()

	items = append(items, item)
	if err := s.write(items); err != nil {
		return types.Item{}, err
	}
	return item, nil
}

// Put reinserts a complete item snapshot, keeping its id. An existing item
// with the same id is replaced. Put is how an undone deletion comes back.
func (s *ItemStore) Put(item types.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, _, err := s.read()
	if err != nil {
		return err
	}
	item = item.Normalize()
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return s.write(items)
}

// Update merges the set fields of patch into the item with the given id and
// persists the catalog. An id with no matching item is silently ignored.
func (s *ItemStore) Update(id string, patch ItemPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, patch)
}

func (s *ItemStore) update(id string, patch ItemPatch) error {
	items, ok, err := s.read()
	if err != nil || !ok {
		return err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i] = patch.apply(items[i])
		return s.write(items)
	}
	return nil
}

// ToggleFavorite flips the favorite flag of the item with the given id. An
// id with no matching item is silently ignored.
func (s *ItemStore) ToggleFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok, err := s.read()
	if err != nil || !ok {
		return err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		flipped := !item.IsFavorite
		return s.update(id, ItemPatch{IsFavorite: &flipped})
	}
	return nil
}

// Delete removes the item with the given id, persists the catalog, and
// prunes the id from the recently-used document. An id with no matching item
// is silently ignored. The removed item is returned so callers can stage it
// for undo.
func (s *ItemStore) Delete(id string) (types.Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok, err := s.read()
	if err != nil || !ok {
		return types.Item{}, false, err
	}

	kept := make([]types.Item, 0, len(items))
	var removed types.Item
	found := false
	for _, item := range items {
		if item.ID == id {
			removed = item
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return types.Item{}, false, nil
	}
	if err := s.write(kept); err != nil {
		return types.Item{}, false, err
	}
	if err := pruneRecent(s.docs, s.log, id); err != nil {
		return removed, true, err
	}
	return removed, true, nil
}

// SetLastUsed stamps the item's LastUsed field. An id with no matching item
// is silently ignored.
func (s *ItemStore) SetLastUsed(id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, ItemPatch{LastUsed: &at})
}

// read fetches and decodes the item document, normalizing every record. It
// never seeds; ok reports whether a document existed.
func (s *ItemStore) read() ([]types.Item, bool, error) {
	items, ok, err := loadSlice[types.Item](s.docs, s.log, types.KeyItems)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	if items == nil {
		items = []types.Item{}
	}
	for i := range items {
		items[i] = items[i].Normalize()
	}
	return items, true, nil
}

func (s *ItemStore) write(items []types.Item) error {
	return storeSlice(s.docs, s.log, types.KeyItems, items)
}
