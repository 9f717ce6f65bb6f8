package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/recommendation"
)

func newTestExtractor(t *testing.T) *FreeTextExtractor {
	t.Helper()
	return NewFreeTextExtractor(newTestCatalog(t))
}

func TestExtract(t *testing.T) {
	x := newTestExtractor(t)

	t.Run("InlineColonItem", func(t *testing.T) {
		reply := "충분한 수분 섭취를 권장합니다.\n[추천] 비타민C : 2정/일 식전"

		recs := x.Extract(reply, nil)

		require.Len(t, recs, 1)
		assert.Equal(t, catalog.VitaminC, recs[0].SupplementID)
		assert.Equal(t, "비타민C", recs[0].Name)
		assert.Equal(t, 2, recs[0].DailyDosage)
	})

	t.Run("BulletedBlock", func(t *testing.T) {
		reply := "피로 개선에는 다음 영양제를 추천드립니다.\n\n" +
			"[영양제 추천]\n- 오메가3 : 2정\n- 유산균 : 1정\n\n꾸준한 운동도 중요합니다"

		recs := x.Extract(reply, nil)

		require.Len(t, recs, 2)
		assert.Equal(t, catalog.Omega3, recs[0].SupplementID)
		assert.Equal(t, 2, recs[0].DailyDosage)
		assert.Equal(t, catalog.Probiotics, recs[1].SupplementID)
		assert.Equal(t, 1, recs[1].DailyDosage)
	})

	t.Run("TabletUnitWithoutColon", func(t *testing.T) {
		reply := "[영양제 추천]\n- 마그네슘 2정"

		recs := x.Extract(reply, nil)

		require.Len(t, recs, 1)
		assert.Equal(t, catalog.Magnesium, recs[0].SupplementID)
		assert.Equal(t, 2, recs[0].DailyDosage)
	})

	t.Run("BareNameDefaultsToOneTablet", func(t *testing.T) {
		reply := "[영양제 추천]\n- 루테인 매일 꾸준히"

		recs := x.Extract(reply, nil)

		require.Len(t, recs, 1)
		assert.Equal(t, catalog.Lutein, recs[0].SupplementID)
		assert.Equal(t, 1, recs[0].DailyDosage)
	})

	t.Run("UnknownNameDropped", func(t *testing.T) {
		reply := "[영양제 추천]\n- 철분 : 2정\n- 비타민C : 1정"

		recs := x.Extract(reply, nil)

		require.Len(t, recs, 1)
		assert.Equal(t, catalog.VitaminC, recs[0].SupplementID)
	})

	t.Run("SubscribedNameDropped", func(t *testing.T) {
		reply := "[영양제 추천]\n- 유산균 : 1정\n- 비타민C : 1정"

		recs := x.Extract(reply, []string{"유산균"})

		require.Len(t, recs, 1)
		assert.Equal(t, catalog.VitaminC, recs[0].SupplementID)
	})

	t.Run("DuplicateNameKeepsFirst", func(t *testing.T) {
		reply := "[추천] 비타민C : 2정\n[추천] 비타민C : 3정"

		recs := x.Extract(reply, nil)

		require.Len(t, recs, 1)
		assert.Equal(t, 2, recs[0].DailyDosage)
	})

	t.Run("ZeroDosageClampedToOne", func(t *testing.T) {
		reply := "[영양제 추천]\n- 비타민C : 0정"

		recs := x.Extract(reply, nil)

		require.Len(t, recs, 1)
		assert.Equal(t, 1, recs[0].DailyDosage)
	})

	t.Run("NoMarkerNoItems", func(t *testing.T) {
		assert.Empty(t, x.Extract("비타민C를 추천드립니다 : 하루 2정", nil))
		assert.Empty(t, x.Extract("", nil))
	})

	t.Run("MarkerWithNoParsableLines", func(t *testing.T) {
		assert.Empty(t, x.Extract("[영양제 추천]\n꾸준히 드세요", nil))
	})
}

func TestExtractedDosageUsedAsIs(t *testing.T) {
	x := newTestExtractor(t)

	// The parsed dosage drives both schedule and price directly; the
	// personalization formula is not re-run.
	recs := x.Extract("[영양제 추천]\n- 오메가3 : 5정", nil)

	require.Len(t, recs, 1)
	assert.Equal(t, 5, recs[0].DailyDosage)
	assert.Equal(t, 75000, recs[0].MonthlyPrice)

	total := 0
	for _, e := range recs[0].Schedule {
		total += e.Amount
	}
	assert.Equal(t, 5, total)
}

func TestMerge(t *testing.T) {
	structured := []recommendation.Recommendation{
		{SupplementID: catalog.VitaminC, Name: "비타민C", DailyDosage: 1},
		{SupplementID: catalog.Probiotics, Name: "유산균", DailyDosage: 1},
	}
	extracted := []recommendation.Recommendation{
		{SupplementID: catalog.VitaminC, Name: "비타민C", DailyDosage: 3},
		{SupplementID: catalog.Lutein, Name: "루테인", DailyDosage: 1},
	}

	merged := Merge(structured, extracted)

	require.Len(t, merged, 3)
	// The structured entry wins on a name collision.
	assert.Equal(t, 1, merged[0].DailyDosage)
	assert.Equal(t, "유산균", merged[1].Name)
	assert.Equal(t, "루테인", merged[2].Name)
}

func TestMergeEmptySides(t *testing.T) {
	one := []recommendation.Recommendation{{SupplementID: catalog.VitaminC, Name: "비타민C"}}

	assert.Equal(t, one, Merge(one, nil))
	assert.Equal(t, one, Merge(nil, one))
	assert.Empty(t, Merge(nil, nil))
}
