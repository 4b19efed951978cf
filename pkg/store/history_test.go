package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-rout/price-calculator-app/internal/document"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

func newTestHistoryStore() (*HistoryStore, *document.Memory) {
	docs := document.NewMemory()
	h := NewHistoryStore(docs, testLogger())
	h.ids = sequentialIDs()
	h.now = fixedClock()
	return h, docs
}

func sampleCalculation(name string) types.Calculation {
	return types.Calculation{
		ItemID:     "i1",
		ItemName:   name,
		Mode:       types.ModePrice,
		Input:      decimal.NewFromInt(2),
		Result:     decimal.NewFromInt(151),
		PerKgPrice: decimal.RequireFromString("75.5"),
	}
}

func TestRecordStampsAndPrepends(t *testing.T) {
	h, _ := newTestHistoryStore()

	first, err := h.Record(sampleCalculation("Rice"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	second, err := h.Record(sampleCalculation("Sugar"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Sugar", entries[0].ItemName)
	assert.Equal(t, "Rice", entries[1].ItemName)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
}

func TestRecordCapsLogAtFifty(t *testing.T) {
	h, _ := newTestHistoryStore()

	for i := 0; i < HistoryCap+5; i++ {
		_, err := h.Record(sampleCalculation(fmt.Sprintf("entry-%d", i)))
		require.NoError(t, err)
	}

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, HistoryCap)

	// Newest first; the five oldest fell off.
	assert.Equal(t, fmt.Sprintf("entry-%d", HistoryCap+4), entries[0].ItemName)
	assert.Equal(t, "entry-5", entries[HistoryCap-1].ItemName)
}

func TestRecordDoesNotValidate(t *testing.T) {
	h, _ := newTestHistoryStore()

	// The log stores what it is given, even nonsense.
	odd := types.Calculation{ItemName: "", Mode: "sideways", Input: decimal.NewFromInt(-3)}
	stamped, err := h.Record(odd)
	require.NoError(t, err)
	assert.Equal(t, "sideways", stamped.Mode)

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Input.Equal(decimal.NewFromInt(-3)))
}

func TestListEmptyHistory(t *testing.T) {
	h, _ := newTestHistoryStore()

	entries, err := h.List()
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestClearRemovesDocument(t *testing.T) {
	h, docs := newTestHistoryStore()

	_, err := h.Record(sampleCalculation("Rice"))
	require.NoError(t, err)

	require.NoError(t, h.Clear())

	_, ok, err := docs.Get(types.KeyCalculations)
	require.NoError(t, err)
	assert.False(t, ok, "clear must remove the document, not write an empty one")

	entries, err := h.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearEmptyHistorySucceeds(t *testing.T) {
	h, _ := newTestHistoryStore()
	assert.NoError(t, h.Clear())
}

func TestHistoryDegradesOnStorageFailure(t *testing.T) {
	broken := errors.New("disk gone")
	h := NewHistoryStore(&failingStore{err: broken}, testLogger())

	entries, err := h.List()
	assert.True(t, errors.Is(err, broken))
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, err = h.Record(sampleCalculation("Rice"))
	assert.True(t, errors.Is(err, broken))
}
