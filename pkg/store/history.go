package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// HistoryCap bounds the calculation log. When a new entry lands on a full
// log, the oldest entry falls off.
const HistoryCap = 50

// HistoryStore owns the bounded, newest-first calculation log. Entries are
// recorded verbatim: the log is a record of what the user saw, not a place
// to re-validate it.
type HistoryStore struct {
	mu   sync.Mutex
	docs types.DocumentStore
	log  *slog.Logger

	ids func() string
	now func() time.Time
}

// NewHistoryStore returns a HistoryStore persisting through docs. A nil
// logger falls back to the process default.
func NewHistoryStore(docs types.DocumentStore, log *slog.Logger) *HistoryStore {
	return &HistoryStore{
		docs: docs,
		log:  ensureLogger(log),
		ids:  newID,
		now:  time.Now,
	}
}

// Record stamps entry with a fresh id and the current time, prepends it to
// the log, truncates to the HistoryCap newest entries, and persists. The
// stamped entry is returned.
func (h *HistoryStore) Record(entry types.Calculation) (types.Calculation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, _, err := h.read()
	if err != nil {
		return types.Calculation{}, err
	}
	entry.ID = h.ids()
	entry.Timestamp = h.now()

	entries = append([]types.Calculation{entry}, entries...)
	if len(entries) > HistoryCap {
		entries = entries[:HistoryCap]
	}
	if err := h.write(entries); err != nil {
		return types.Calculation{}, err
	}
	return entry, nil
}

// List returns the stored log verbatim, newest first. On storage failure it
// returns an empty slice alongside the error.
func (h *HistoryStore) List() ([]types.Calculation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, _, err := h.read()
	if err != nil {
		return []types.Calculation{}, err
	}
	return entries, nil
}

// Clear removes the calculation document entirely. Clearing a store that
// never recorded anything succeeds.
func (h *HistoryStore) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.docs.Remove(types.KeyCalculations); err != nil {
		h.log.Error("removing document", "key", types.KeyCalculations, "error", err)
		return err
	}
	return nil
}

func (h *HistoryStore) read() ([]types.Calculation, bool, error) {
	entries, ok, err := loadSlice[types.Calculation](h.docs, h.log, types.KeyCalculations)
	if err != nil {
		return nil, false, err
	}
	if entries == nil {
		entries = []types.Calculation{}
	}
	return entries, ok, nil
}

func (h *HistoryStore) write(entries []types.Calculation) error {
	return storeSlice(h.docs, h.log, types.KeyCalculations, entries)
}
