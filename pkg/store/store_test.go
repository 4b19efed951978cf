package store

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/a-rout/price-calculator-app/internal/document"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

// testLogger keeps store logging out of test output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestItemStore returns an ItemStore on a fresh in-memory backend with a
// deterministic id sequence and clock.
func newTestItemStore() (*ItemStore, *document.Memory) {
	docs := document.NewMemory()
	s := NewItemStore(docs, testLogger())
	s.ids = sequentialIDs()
	s.now = fixedClock()
	return s, docs
}

// sequentialIDs returns an id source yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// fixedClock returns a clock advancing one second per call, starting from a
// fixed instant.
func fixedClock() func() time.Time {
	at := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

// failingStore is a DocumentStore whose every operation fails.
type failingStore struct {
	err error
}

func (f *failingStore) Get(string) ([]byte, bool, error) { return nil, false, f.err }
func (f *failingStore) Set(string, []byte) error         { return f.err }
func (f *failingStore) Remove(string) error              { return f.err }

var _ types.DocumentStore = (*failingStore)(nil)
