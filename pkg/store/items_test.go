package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-rout/price-calculator-app/pkg/types"
)

func TestListSeedsDefaultCatalogOnce(t *testing.T) {
	s, docs := newTestItemStore()

	first, err := s.List()
	require.NoError(t, err)
	require.Len(t, first, 6)

	names := make([]string, 0, len(first))
	for _, item := range first {
		names = append(names, item.Name)
		assert.NotEmpty(t, item.ID)
		assert.True(t, item.PricePerKg.IsPositive())
		assert.Nil(t, item.LastUsed)
		assert.False(t, item.IsFavorite)
	}
	assert.Equal(t, []string{"Rice", "Wheat Flour", "Sugar", "Toor Dal", "Onions", "Tomatoes"}, names)

	// A second read returns the same records, not a fresh seed.
	second, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The seed was persisted.
	_, ok, err := docs.Get(types.KeyItems)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListDoesNotReseedEmptyCatalog(t *testing.T) {
	s, docs := newTestItemStore()
	require.NoError(t, docs.Set(types.KeyItems, []byte(`[]`)))

	items, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListMigratesLegacyRecordsWithoutWriteBack(t *testing.T) {
	s, docs := newTestItemStore()
	legacy := []byte(`[{"id":"i1","name":"Rice","pricePerKg":75.5}]`)
	require.NoError(t, docs.Set(types.KeyItems, legacy))

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, types.CategoryOther, items[0].Category)
	assert.False(t, items[0].IsFavorite)
	assert.Nil(t, items[0].LastUsed)

	// Migration happens on read only; the stored document is untouched.
	raw, ok, err := docs.Get(types.KeyItems)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, legacy, raw)
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestItemStore()

	a, err := s.Add("Paneer", decimal.NewFromInt(320), types.CategoryDairy)
	require.NoError(t, err)
	b, err := s.Add("Milk", decimal.NewFromInt(60), types.CategoryDairy)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)

	got, ok, err := s.Get(b.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Milk", got.Name)
}

func TestAddNormalizesCategory(t *testing.T) {
	s, _ := newTestItemStore()

	item, err := s.Add("Mystery", decimal.NewFromInt(10), "cereal")
	require.NoError(t, err)
	assert.Equal(t, types.CategoryOther, item.Category)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	s, _ := newTestItemStore()
	seeded, err := s.List()
	require.NoError(t, err)
	rice := seeded[0]
	require.Equal(t, "Rice", rice.Name)
	require.True(t, rice.PricePerKg.Equal(decimal.RequireFromString("75.5")))

	// Change only the price; everything else must survive.
	newPrice := decimal.NewFromInt(80)
	require.NoError(t, s.Update(rice.ID, ItemPatch{PricePerKg: &newPrice}))

	got, ok, err := s.Get(rice.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rice", got.Name)
	assert.True(t, got.PricePerKg.Equal(newPrice))
	assert.Equal(t, rice.Category, got.Category)
	assert.Equal(t, rice.IsFavorite, got.IsFavorite)
	assert.Equal(t, rice.ID, got.ID)
}

func TestUpdateUnknownIDIsSilent(t *testing.T) {
	s, docs := newTestItemStore()
	before, err := s.List()
	require.NoError(t, err)
	rawBefore, _, err := docs.Get(types.KeyItems)
	require.NoError(t, err)

	name := "Ghost"
	require.NoError(t, s.Update("no-such-id", ItemPatch{Name: &name}))

	after, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// No write happened for the no-op.
	rawAfter, _, err := docs.Get(types.KeyItems)
	require.NoError(t, err)
	assert.Equal(t, rawBefore, rawAfter)
}

func TestToggleFavorite(t *testing.T) {
	s, _ := newTestItemStore()
	seeded, err := s.List()
	require.NoError(t, err)
	id := seeded[0].ID

	require.NoError(t, s.ToggleFavorite(id))
	got, _, err := s.Get(id)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	require.NoError(t, s.ToggleFavorite(id))
	got, _, err = s.Get(id)
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)

	// Unknown ids are ignored.
	require.NoError(t, s.ToggleFavorite("no-such-id"))
}

func TestDeleteRemovesItemAndPrunesRecency(t *testing.T) {
	s, docs := newTestItemStore()
	seeded, err := s.List()
	require.NoError(t, err)
	id := seeded[0].ID

	// The item is on the recently-used list before deletion.
	require.NoError(t, writeRecent(docs, testLogger(), []string{id, seeded[1].ID}))

	removed, found, err := s.Delete(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Rice", removed.Name)

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, 5)

	ids, _, err := readRecent(docs, testLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{seeded[1].ID}, ids)
}

func TestDeleteUnknownIDIsSilent(t *testing.T) {
	s, _ := newTestItemStore()
	_, err := s.List()
	require.NoError(t, err)

	_, found, err := s.Delete("no-such-id")
	require.NoError(t, err)
	assert.False(t, found)

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, 6)
}

func TestPutRestoresDeletedItem(t *testing.T) {
	s, _ := newTestItemStore()
	seeded, err := s.List()
	require.NoError(t, err)

	removed, found, err := s.Delete(seeded[2].ID)
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, s.Put(removed))

	got, ok, err := s.Get(removed.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, removed, got)

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, 6)
}

func TestByCategoryAndFavorites(t *testing.T) {
	s, _ := newTestItemStore()
	seeded, err := s.List()
	require.NoError(t, err)

	grains, err := s.ByCategory(types.CategoryGrains)
	require.NoError(t, err)
	assert.Len(t, grains, 3)

	vegetables, err := s.ByCategory(types.CategoryVegetables)
	require.NoError(t, err)
	assert.Len(t, vegetables, 2)

	dairy, err := s.ByCategory(types.CategoryDairy)
	require.NoError(t, err)
	assert.Empty(t, dairy)

	favorites, err := s.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favorites)

	require.NoError(t, s.ToggleFavorite(seeded[3].ID))
	favorites, err = s.Favorites()
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, seeded[3].ID, favorites[0].ID)
}

func TestListDegradesToEmptyOnStorageFailure(t *testing.T) {
	broken := errors.New("disk gone")
	s := NewItemStore(&failingStore{err: broken}, testLogger())

	items, err := s.List()
	assert.True(t, errors.Is(err, broken))
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = s.Add("Paneer", decimal.NewFromInt(320), types.CategoryDairy)
	assert.True(t, errors.Is(err, broken))
}

func TestListDegradesToEmptyOnCorruptDocument(t *testing.T) {
	s, docs := newTestItemStore()
	require.NoError(t, docs.Set(types.KeyItems, []byte(`{not json`)))

	items, err := s.List()
	assert.Error(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
