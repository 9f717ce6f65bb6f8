package engine

import (
	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/recommendation"
)

// Intake rationale strings. These are shown verbatim to the user and
// are part of the observable contract; one fixed string per strategy.
const (
	reasonFatSolubleSplit = "지용성 성분으로 식사와 함께 섭취 시 흡수율이 높아지며, 하루 2회 나누어 섭취하면 흡수에 더 효과적입니다"
	reasonWaterSoluble    = "수용성 비타민으로 공복에 섭취하면 흡수가 잘 됩니다"
	reasonGutFlora        = "위산 분비가 적은 공복에 섭취하면 유산균의 생존율이 높아집니다"
	reasonSleepMineral    = "근육 이완과 수면에 도움을 주므로 취침 전 섭취를 권장합니다"
	reasonFatSoluble      = "지용성 성분으로 식사와 함께 섭취 시 흡수율이 높아집니다"
	reasonMidday          = "점심 식사와 함께 섭취하면 하루 활동 시간의 흡수 효율이 가장 좋습니다"
	reasonLowBioavail     = "흡수율이 낮은 성분으로 지방이 포함된 식사와 함께 섭취하는 것이 좋습니다"
	reasonFastingSplit    = "공복에 흡수가 잘 되는 성분으로 아침과 저녁 공복에 나누어 섭취합니다"
	reasonDefault         = "식사와 함께 섭취하면 위 부담이 적고 흡수에 도움이 됩니다"
)

// ScheduleBuilder converts a supplement identity and daily dosage into
// an ordered intake schedule. The total scheduled amount always equals
// the daily dosage and the schedule is never empty.
type ScheduleBuilder struct{}

// NewScheduleBuilder creates a schedule builder.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{}
}

// Build returns the timed doses for the supplement identified by
// entryID. Dosages below one are treated as one.
func (b *ScheduleBuilder) Build(entryID string, dailyDosage int) []recommendation.ScheduleEntry {
	if dailyDosage < 1 {
		dailyDosage = 1
	}

	switch entryID {
	case catalog.Omega3, catalog.Calcium:
		return splitMorningEvening(dailyDosage, true, reasonFatSolubleSplit)
	case catalog.VitaminC:
		return single(recommendation.Morning, dailyDosage, false, reasonWaterSoluble)
	case catalog.Probiotics:
		return single(recommendation.Morning, dailyDosage, false, reasonGutFlora)
	case catalog.Magnesium:
		// Resolved divergence: bedtime dose is taken without a meal.
		return single(recommendation.Bedtime, dailyDosage, false, reasonSleepMineral)
	case catalog.VitaminD, catalog.CoenzymeQ10, catalog.VitaminB:
		return single(recommendation.Morning, dailyDosage, true, reasonFatSoluble)
	case catalog.Lutein:
		return single(recommendation.Noon, dailyDosage, true, reasonMidday)
	case catalog.Curcumin:
		return single(recommendation.Noon, dailyDosage, true, reasonLowBioavail)
	case catalog.Arginine:
		return splitMorningEvening(dailyDosage, false, reasonFastingSplit)
	default:
		return splitMorningEvening(dailyDosage, true, reasonDefault)
	}
}

func single(t recommendation.TimeOfDay, amount int, withMeal bool, reason string) []recommendation.ScheduleEntry {
	return []recommendation.ScheduleEntry{
		{Time: t, Amount: amount, WithMeal: withMeal, Reason: reason},
	}
}

// splitMorningEvening puts ceil(d/2) in the morning and floor(d/2) in
// the evening for dosages of two or more; single dosages stay in the
// morning slot.
func splitMorningEvening(dailyDosage int, withMeal bool, reason string) []recommendation.ScheduleEntry {
	if dailyDosage < 2 {
		return single(recommendation.Morning, dailyDosage, withMeal, reason)
	}
	morning := (dailyDosage + 1) / 2
	evening := dailyDosage / 2
	return []recommendation.ScheduleEntry{
		{Time: recommendation.Morning, Amount: morning, WithMeal: withMeal, Reason: reason},
		{Time: recommendation.Evening, Amount: evening, WithMeal: withMeal, Reason: reason},
	}
}
