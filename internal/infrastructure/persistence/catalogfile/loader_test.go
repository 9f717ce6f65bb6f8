package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabox/v1/internal/domain/catalog"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultCatalog(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 11, cat.Len())

	entry, ok := cat.ByID(catalog.Omega3)
	require.True(t, ok)
	assert.Equal(t, "오메가3", entry.Name)
	require.NotNil(t, entry.DosageRule)
	assert.InDelta(t, 1000, entry.DosageRule.BaseAmount, 0.001)

	// Magnesium intentionally carries neither a recommended tablet
	// count nor a dosage rule.
	mg, ok := cat.ByID(catalog.Magnesium)
	require.True(t, ok)
	assert.Nil(t, mg.DosageRule)
	assert.Zero(t, mg.DosageInfo.RecommendedDailyTablets)
}

func TestLoadFromFile(t *testing.T) {
	t.Run("ValidFile", func(t *testing.T) {
		path := writeCatalogFile(t, `[
			{"id": "vitamin-d", "name": "비타민D", "price_per_unit": 300},
			{"id": "vitamin-c", "name": "비타민C", "price_per_unit": 200}
		]`)

		cat, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		path := writeCatalogFile(t, `{not json`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "could not parse")
	})

	t.Run("InvalidEntry", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"id": "vitamin-d", "name": "", "price_per_unit": 300}]`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		path := writeCatalogFile(t, `[
			{"id": "vitamin-d", "name": "비타민D", "price_per_unit": 300},
			{"id": "vitamin-d3", "name": "비타민D", "price_per_unit": 400}
		]`)
		_, err := Load(path)
		assert.ErrorIs(t, err, catalog.ErrDuplicateName)
	})
}
