// Package document implements the DocumentStore backends for the price
// calculator core: an in-memory map, one JSON file per key, and a single
// SQLite database. All three share the same key discipline so a config
// change never strands data behind an unreachable key.
package document

import (
	"fmt"
	"regexp"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// keyPattern restricts keys to names that are safe as file names and as SQL
// text: lowercase letters, digits, and interior hyphens.
var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// validateKey returns ErrInvalidKey (wrapped with the offending key) when key
// is not usable by every backend.
func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", types.ErrInvalidKey, key)
	}
	return nil
}
