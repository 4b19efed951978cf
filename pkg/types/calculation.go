package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation modes. Mode selects which way the conversion ran.
const (
	ModePrice  = "price"  // Input is a weight in kg, Result is a price.
	ModeWeight = "weight" // Input is an amount of money, Result is a weight in kg.
)

// Calculation is one past conversion kept in the bounded history log.
//
// ItemName and PerKgPrice are captured at calculation time so a history entry
// stays readable after the item is renamed, repriced, or deleted. Entries are
// recorded verbatim; the log performs no validation of its own.
type Calculation struct {
	ID         string          `json:"id"`         // UUID v7, stamped when recorded.
	ItemID     string          `json:"itemId"`     // Item the conversion used.
	ItemName   string          `json:"itemName"`   // Item name at calculation time.
	Mode       string          `json:"mode"`       // ModePrice or ModeWeight.
	Input      decimal.Decimal `json:"input"`      // Weight in kg (price mode) or money amount (weight mode).
	Result     decimal.Decimal `json:"result"`     // Computed price or weight.
	PerKgPrice decimal.Decimal `json:"perKgPrice"` // Per-kg price at calculation time.
	Timestamp  time.Time       `json:"timestamp"`  // Stamped when recorded.
}
