package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

// openBackends returns one instance of every backend, each on its own
// temporary directory, so the shared contract tests run against all of them.
func openBackends(t *testing.T) map[string]types.DocumentStore {
	t.Helper()

	file, err := NewFile(t.TempDir())
	require.NoError(t, err)

	sqlite, err := NewSQLite(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]types.DocumentStore{
		"memory": NewMemory(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestBackendsRoundTrip(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			doc := []byte(`[{"id":"i1","name":"Rice"}]`)
			require.NoError(t, store.Set("items", doc))

			got, ok, err := store.Get("items")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, doc, got)
		})
	}
}

func TestBackendsGetAbsentKey(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			doc, ok, err := store.Get("items")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, doc)
		})
	}
}

func TestBackendsOverwrite(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("items", []byte(`["old"]`)))
			require.NoError(t, store.Set("items", []byte(`["new"]`)))

			got, ok, err := store.Get("items")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`["new"]`), got)
		})
	}
}

func TestBackendsRemove(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			// Removing a key that was never written succeeds.
			require.NoError(t, store.Remove("calculations"))

			require.NoError(t, store.Set("calculations", []byte(`[]`)))
			require.NoError(t, store.Remove("calculations"))

			_, ok, err := store.Get("calculations")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestBackendsRejectInvalidKeys(t *testing.T) {
	invalid := []string{"", "Items", "a/b", "../etc", "items.json", "-items", "a b"}

	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range invalid {
				err := store.Set(key, []byte(`[]`))
				assert.True(t, errors.Is(err, types.ErrInvalidKey), "Set(%q) should reject key", key)

				_, _, err = store.Get(key)
				assert.True(t, errors.Is(err, types.ErrInvalidKey), "Get(%q) should reject key", key)
			}
		})
	}
}

func TestValidateKeyAcceptsDocumentKeys(t *testing.T) {
	for _, key := range []string{types.KeyItems, types.KeyCalculations, types.KeyRecentItems} {
		assert.NoError(t, validateKey(key))
	}
}
