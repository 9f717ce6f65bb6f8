package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/profile"
	"github.com/vitabox/v1/internal/domain/recommendation"
)

func newTestSelector(t *testing.T) *RecommendationSelector {
	t.Helper()
	s := NewRecommendationSelector(newTestCatalog(t), zap.NewNop())
	s.now = fixedNow
	s.dosage.now = fixedNow
	return s
}

func recommendedIDs(recs []recommendation.Recommendation) []string {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.SupplementID)
	}
	return ids
}

func TestSelectMaleOverweightOverForty(t *testing.T) {
	s := newTestSelector(t)

	// 45 year old male, BMI 26.1.
	recs := s.Select(maleProfile(1980, 175, 80), nil)

	assert.Equal(t, []string{
		catalog.VitaminD,
		catalog.Omega3,
		catalog.CoenzymeQ10,
		catalog.Curcumin,
		catalog.VitaminC,
		catalog.Probiotics,
	}, recommendedIDs(recs))

	byID := make(map[string]recommendation.Recommendation, len(recs))
	for _, r := range recs {
		byID[r.SupplementID] = r
	}

	omega := byID[catalog.Omega3]
	assert.Equal(t, "오메가3", omega.Name)
	assert.Equal(t, 3, omega.DailyDosage)
	assert.Equal(t, 45000, omega.MonthlyPrice)
	require.Len(t, omega.Schedule, 2)

	curcumin := byID[catalog.Curcumin]
	assert.Equal(t, 2, curcumin.DailyDosage)
	assert.Equal(t, 27000, curcumin.MonthlyPrice)
}

func TestSelectYoungFemaleNormalBMI(t *testing.T) {
	s := newTestSelector(t)

	// 30 year old female, BMI 19.5: no magnesium (under 35), no BMI rule.
	recs := s.Select(femaleProfile(1995, 160, 50), nil)

	assert.Equal(t, []string{
		catalog.VitaminD,
		catalog.Calcium,
		catalog.VitaminC,
		catalog.Probiotics,
	}, recommendedIDs(recs))
}

func TestSelectFemaleOverThirtyFiveGetsMagnesium(t *testing.T) {
	s := newTestSelector(t)

	recs := s.Select(femaleProfile(1985, 160, 55), nil)
	ids := recommendedIDs(recs)
	assert.Contains(t, ids, catalog.Magnesium)

	for _, r := range recs {
		if r.SupplementID != catalog.Magnesium {
			continue
		}
		assert.Equal(t, 1, r.DailyDosage)
		require.Len(t, r.Schedule, 1)
		assert.Equal(t, recommendation.Bedtime, r.Schedule[0].Time)
	}
}

func TestSelectUnderweightGetsVitaminB(t *testing.T) {
	s := newTestSelector(t)

	// BMI 17.3.
	recs := s.Select(maleProfile(1990, 180, 56), nil)
	ids := recommendedIDs(recs)
	assert.Contains(t, ids, catalog.VitaminB)
	assert.NotContains(t, ids, catalog.Curcumin)
}

func TestSelectExcludesActiveSubscriptions(t *testing.T) {
	s := newTestSelector(t)
	p := maleProfile(1980, 175, 80)

	recs := s.Select(p, []string{"비타민D", "오메가3"})
	ids := recommendedIDs(recs)

	assert.NotContains(t, ids, catalog.VitaminD)
	assert.NotContains(t, ids, catalog.Omega3)
	assert.Contains(t, ids, catalog.CoenzymeQ10)
}

func TestSelectEmptyProfileStillRecommends(t *testing.T) {
	s := newTestSelector(t)

	// No gender, age or body metrics: only universal rules fire.
	recs := s.Select(profile.HealthProfile{}, nil)

	assert.Equal(t, []string{
		catalog.VitaminD,
		catalog.VitaminC,
		catalog.Probiotics,
	}, recommendedIDs(recs))
}

func TestSelectIsDeterministic(t *testing.T) {
	s := newTestSelector(t)
	p := femaleProfile(1985, 160, 55)

	first := s.Select(p, nil)
	second := s.Select(p, nil)

	assert.Equal(t, first, second)
}

func TestSelectNoDuplicateIDs(t *testing.T) {
	s := newTestSelector(t)

	for _, p := range []profile.HealthProfile{
		maleProfile(1980, 175, 80),
		femaleProfile(1985, 160, 55),
		femaleProfile(2000, 150, 90),
		{},
	} {
		recs := s.Select(p, nil)
		seen := make(map[string]struct{}, len(recs))
		for _, r := range recs {
			_, dup := seen[r.SupplementID]
			assert.False(t, dup, "duplicate %s", r.SupplementID)
			seen[r.SupplementID] = struct{}{}
		}
	}
}
