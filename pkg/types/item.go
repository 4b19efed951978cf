package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry priced per kilogram.
//
// The JSON field names are the persisted document format; they must not
// change, or previously stored documents stop decoding.
type Item struct {
	ID         string          `json:"id"`                 // UUID v7, assigned on creation, immutable.
	Name       string          `json:"name"`               // Display name.
	PricePerKg decimal.Decimal `json:"pricePerKg"`         // Price of one kilogram, always positive.
	IsFavorite bool            `json:"isFavorite"`         // Pinned by the user.
	Category   Category        `json:"category"`           // One of the Category constants.
	LastUsed   *time.Time      `json:"lastUsed,omitempty"` // Nil until the item is first used in a calculation.
}

// Normalize upgrades an item decoded from an older document to the current
// shape: an empty or unrecognized category becomes CategoryOther. A missing
// favorite flag already decodes to false, and LastUsed stays exactly as
// stored, so no other field needs repair. Normalizing a current item returns
// it unchanged; the operation is idempotent.
func (i Item) Normalize() Item {
	if !i.Category.Valid() {
		i.Category = CategoryOther
	}
	return i
}

// Used reports whether the item has ever been part of a calculation.
func (i Item) Used() bool {
	return i.LastUsed != nil
}
