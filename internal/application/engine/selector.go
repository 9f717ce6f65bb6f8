package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/pricing"
	"github.com/vitabox/v1/internal/domain/profile"
	"github.com/vitabox/v1/internal/domain/recommendation"
)

// Selection rationale strings, one per rule, shown verbatim.
const (
	reasonVitaminD  = "현대인 대부분에게 부족하기 쉬운 영양소로 누구에게나 권장됩니다"
	reasonOmega3    = "남성의 심혈관 건강 유지에 도움을 줍니다"
	reasonCoQ10     = "40대 이상 남성의 항산화와 에너지 대사를 돕습니다"
	reasonCalcium   = "여성의 뼈 건강 유지에 필수적인 영양소입니다"
	reasonMagnesium = "35세 이상 여성의 근육과 신경 건강을 돕습니다"
	reasonCurcumin  = "항염 작용으로 체중 관리와 대사 건강에 도움을 줍니다"
	reasonVitaminB  = "에너지 대사를 도와 체중 유지에 도움을 줍니다"
	reasonVitaminC  = "항산화 작용과 면역력 유지에 도움을 줍니다"
	reasonProbiotic = "장 건강과 면역력 유지에 도움을 줍니다"
)

// Thresholds for the profile-dependent selection rules.
const (
	coq10AgeThreshold     = 40
	magnesiumAgeThreshold = 35
	bmiOverweight         = 25.0
	bmiUnderweight        = 18.5
)

// RecommendationSelector applies the profile rules against the catalog
// and produces the ordered, deduplicated recommendation list.
type RecommendationSelector struct {
	catalog  *catalog.Catalog
	dosage   *DosageCalculator
	schedule *ScheduleBuilder
	now      func() time.Time
	logger   *zap.Logger
}

// NewRecommendationSelector creates a selector over the given catalog.
func NewRecommendationSelector(cat *catalog.Catalog, logger *zap.Logger) *RecommendationSelector {
	return &RecommendationSelector{
		catalog:  cat,
		dosage:   NewDosageCalculator(),
		schedule: NewScheduleBuilder(),
		now:      time.Now,
		logger:   logger.Named("selector"),
	}
}

// Select returns recommendations for the profile in rule insertion
// order, excluding supplements whose display name is already in the
// user's active subscription set. Rules whose profile inputs are
// missing are skipped rather than failing; the universal rules
// guarantee a non-empty result.
func (s *RecommendationSelector) Select(p profile.HealthProfile, activeNames []string) []recommendation.Recommendation {
	active := make(map[string]struct{}, len(activeNames))
	for _, n := range activeNames {
		active[n] = struct{}{}
	}

	age, hasAge := p.Age(s.now())
	bmi, hasBMI := p.BMI()
	gender := p.NormalizedGender()

	type pick struct {
		id     string
		reason string
	}
	var picks []pick

	picks = append(picks, pick{catalog.VitaminD, reasonVitaminD})

	switch gender {
	case profile.GenderMale:
		picks = append(picks, pick{catalog.Omega3, reasonOmega3})
		if hasAge && age >= coq10AgeThreshold {
			picks = append(picks, pick{catalog.CoenzymeQ10, reasonCoQ10})
		}
	case profile.GenderFemale:
		picks = append(picks, pick{catalog.Calcium, reasonCalcium})
		if hasAge && age >= magnesiumAgeThreshold {
			picks = append(picks, pick{catalog.Magnesium, reasonMagnesium})
		}
	}

	if hasBMI {
		if bmi > bmiOverweight {
			picks = append(picks, pick{catalog.Curcumin, reasonCurcumin})
		} else if bmi < bmiUnderweight {
			picks = append(picks, pick{catalog.VitaminB, reasonVitaminB})
		}
	}

	picks = append(picks,
		pick{catalog.VitaminC, reasonVitaminC},
		pick{catalog.Probiotics, reasonProbiotic},
	)

	seen := make(map[string]struct{}, len(picks))
	recs := make([]recommendation.Recommendation, 0, len(picks))
	for _, pk := range picks {
		if _, dup := seen[pk.id]; dup {
			continue
		}
		seen[pk.id] = struct{}{}

		entry, ok := s.catalog.ByID(pk.id)
		if !ok {
			s.logger.Warn("selection rule references missing catalog entry", zap.String("id", pk.id))
			continue
		}
		if _, subscribed := active[entry.Name]; subscribed {
			continue
		}

		recs = append(recs, s.build(entry, p, pk.reason))
	}

	return recs
}

func (s *RecommendationSelector) build(entry *catalog.Entry, p profile.HealthProfile, reason string) recommendation.Recommendation {
	dosage := s.dosage.Compute(entry, p)
	return recommendation.Recommendation{
		SupplementID: entry.ID,
		Name:         entry.Name,
		DailyDosage:  dosage,
		Schedule:     s.schedule.Build(entry.ID, dosage),
		Reason:       reason,
		MonthlyPrice: pricing.ItemMonthlyPrice(entry.PricePerUnit, dosage),
	}
}
