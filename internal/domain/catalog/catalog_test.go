package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntries() []Entry {
	return []Entry{
		{ID: "vitamin-d", Name: "비타민D", PricePerUnit: 300},
		{ID: "vitamin-c", Name: "비타민C", PricePerUnit: 200},
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("ValidEntries_ShouldIndexByIDAndName", func(t *testing.T) {
		cat, err := New(validEntries())
		require.NoError(t, err)
		require.NotNil(t, cat)

		assert.Equal(t, 2, cat.Len())

		byID, ok := cat.ByID("vitamin-d")
		require.True(t, ok)
		assert.Equal(t, "비타민D", byID.Name)

		byName, ok := cat.ByName("비타민C")
		require.True(t, ok)
		assert.Equal(t, "vitamin-c", byName.ID)
	})

	t.Run("EmptyCatalog_ShouldReturnError", func(t *testing.T) {
		cat, err := New(nil)
		assert.Nil(t, cat)
		assert.Equal(t, ErrEmptyCatalog, err)
	})

	t.Run("DuplicateID_ShouldReturnError", func(t *testing.T) {
		entries := validEntries()
		entries = append(entries, Entry{ID: "vitamin-d", Name: "비타민D3", PricePerUnit: 100})

		cat, err := New(entries)
		assert.Nil(t, cat)
		assert.Equal(t, ErrDuplicateID, err)
	})

	t.Run("DuplicateName_ShouldReturnError", func(t *testing.T) {
		entries := validEntries()
		entries = append(entries, Entry{ID: "vitamin-d3", Name: "비타민D", PricePerUnit: 100})

		cat, err := New(entries)
		assert.Nil(t, cat)
		assert.Equal(t, ErrDuplicateName, err)
	})

	t.Run("InvalidEntry_ShouldReturnError", func(t *testing.T) {
		_, err := New([]Entry{{ID: "", Name: "이름", PricePerUnit: 100}})
		assert.Equal(t, ErrEmptyID, err)

		_, err = New([]Entry{{ID: "id", Name: "", PricePerUnit: 100}})
		assert.Equal(t, ErrEmptyName, err)

		_, err = New([]Entry{{ID: "id", Name: "이름", PricePerUnit: -1}})
		assert.Equal(t, ErrNegativePrice, err)
	})

	t.Run("UnknownLookups_ShouldReportMiss", func(t *testing.T) {
		cat, err := New(validEntries())
		require.NoError(t, err)

		_, ok := cat.ByID("iron")
		assert.False(t, ok)
		_, ok = cat.ByName("철분")
		assert.False(t, ok)
	})
}

func TestCatalogEntriesReturnsCopy(t *testing.T) {
	cat, err := New(validEntries())
	require.NoError(t, err)

	entries := cat.Entries()
	entries[0].Name = "변경됨"

	original, ok := cat.ByID(entries[0].ID)
	require.True(t, ok)
	assert.Equal(t, "비타민D", original.Name)
}
