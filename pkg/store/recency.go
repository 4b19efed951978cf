package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// RecencyCap bounds the recently-used list.
const RecencyCap = 5

// RecencyTracker owns the ordered list of recently used item ids, persisted
// as its own document.
//
// Touch deliberately has a second effect outside its own document: using an
// item also stamps the item's LastUsed field through the ItemStore. Callers
// get both updates from the one call.
type RecencyTracker struct {
	mu    sync.Mutex
	docs  types.DocumentStore
	items *ItemStore
	log   *slog.Logger

	now func() time.Time
}

// NewRecencyTracker returns a RecencyTracker persisting through docs and
// stamping usage times through items. A nil logger falls back to the process
// default.
func NewRecencyTracker(docs types.DocumentStore, items *ItemStore, log *slog.Logger) *RecencyTracker {
	return &RecencyTracker{
		docs:  docs,
		items: items,
		log:   ensureLogger(log),
		now:   time.Now,
	}
}

// Touch records that the item was just used: its id moves (or is inserted)
// at the front of the list, the list is truncated to RecencyCap, persisted,
// and the item's LastUsed is set to now. Touching an id twice keeps a single
// entry at the front.
func (r *RecencyTracker) Touch(itemID string) error {
	if err := r.promote(itemID); err != nil {
		return err
	}
	return r.items.SetLastUsed(itemID, r.now())
}

// promote moves itemID to the front of the persisted id list.
func (r *RecencyTracker) promote(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, _, err := readRecent(r.docs, r.log)
	if err != nil {
		return err
	}
	next := make([]string, 0, len(ids)+1)
	next = append(next, itemID)
	for _, id := range ids {
		if id != itemID {
			next = append(next, id)
		}
	}
	if len(next) > RecencyCap {
		next = next[:RecencyCap]
	}
	return writeRecent(r.docs, r.log, next)
}

// IDs returns the stored id list, most recent first. On storage failure it
// returns an empty slice alongside the error.
func (r *RecencyTracker) IDs() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids, _, err := readRecent(r.docs, r.log)
	if err != nil {
		return []string{}, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Resolve maps the stored id list through the current catalog, most recent
// first. Ids whose item no longer exists are silently dropped; the stored
// list itself is not rewritten.
func (r *RecencyTracker) Resolve() ([]types.Item, error) {
	ids, err := r.IDs()
	if err != nil {
		return []types.Item{}, err
	}
	if len(ids) == 0 {
		return []types.Item{}, nil
	}

	items, err := r.items.List()
	if err != nil {
		return []types.Item{}, err
	}
	byID := make(map[string]types.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	resolved := make([]types.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			resolved = append(resolved, item)
		}
	}
	return resolved, nil
}

// readRecent loads the recently-used id list. ok is false when no document
// exists.
func readRecent(docs types.DocumentStore, log *slog.Logger) ([]string, bool, error) {
	return loadSlice[string](docs, log, types.KeyRecentItems)
}

// writeRecent persists the recently-used id list.
func writeRecent(docs types.DocumentStore, log *slog.Logger, ids []string) error {
	return storeSlice(docs, log, types.KeyRecentItems, ids)
}

// pruneRecent drops id from the persisted recently-used list, keeping the
// two documents coherent when an item is deleted. A list that never existed
// or does not contain id is left untouched.
func pruneRecent(docs types.DocumentStore, log *slog.Logger, id string) error {
	ids, ok, err := readRecent(docs, log)
	if err != nil || !ok {
		return err
	}
	kept := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return writeRecent(docs, log, kept)
}
