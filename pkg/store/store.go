// Package store implements the persisted collections of the price
// calculator: the item catalog, the bounded calculation history, and the
// recently-used list. Each collection is one JSON document in a
// DocumentStore.
//
// Read failures are logged and degrade to empty collections alongside the
// returned error, so a broken data directory leaves the caller with a blank
// catalog rather than a crash. Write failures leave the stored document
// untouched.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// newID returns a time-ordered unique id (UUID v7), falling back to a random
// UUID if the system entropy source misbehaves.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// loadSlice reads the JSON array document under key and decodes it into a
// slice of T. ok is false when no document exists yet. Failures are logged
// and returned with a nil slice.
func loadSlice[T any](docs types.DocumentStore, log *slog.Logger, key string) ([]T, bool, error) {
	raw, ok, err := docs.Get(key)
	if err != nil {
		log.Error("reading document", "key", key, "error", err)
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var vals []T
	if err := json.Unmarshal(raw, &vals); err != nil {
		err = fmt.Errorf("decoding document %s: %w", key, err)
		log.Error("decoding document", "key", key, "error", err)
		return nil, false, err
	}
	return vals, true, nil
}

// storeSlice encodes vals as a JSON array and writes it under key. Failures
// are logged.
func storeSlice[T any](docs types.DocumentStore, log *slog.Logger, key string, vals []T) error {
	raw, err := json.Marshal(vals)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", key, err)
	}
	if err := docs.Set(key, raw); err != nil {
		log.Error("writing document", "key", key, "error", err)
		return err
	}
	return nil
}

// ensureLogger substitutes the process default for a nil logger.
func ensureLogger(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
