package types

import "errors"

// Document keys. Each collection persists as a single JSON document under a
// fixed key.
const (
	KeyItems        = "items"
	KeyCalculations = "calculations"
	KeyRecentItems  = "recent-items"
)

// Storage errors.
var (
	// ErrNotFound indicates the requested item does not exist in the catalog.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidKey indicates a document key outside the allowed character set.
	ErrInvalidKey = errors.New("invalid document key")

	// ErrNonPositivePrice indicates a per-kg price of zero or less.
	ErrNonPositivePrice = errors.New("price per kg must be positive")
)

// DocumentStore is the key-value document storage the calculator core
// persists through. Keys map to whole documents; there are no partial reads
// or writes.
//
// Implementations must tolerate keys that were never written: Get reports
// ok=false without error, and Remove succeeds.
type DocumentStore interface {
	// Get returns the raw document stored under key. ok is false when no
	// document exists under the key.
	Get(key string) (doc []byte, ok bool, err error)

	// Set stores doc under key, replacing any previous document.
	Set(key string, doc []byte) error

	// Remove deletes the document under key. Removing an absent key is not
	// an error.
	Remove(key string) error
}
