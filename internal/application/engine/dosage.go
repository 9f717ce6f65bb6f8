package engine

import (
	"math"
	"time"

	"github.com/vitabox/v1/internal/domain/catalog"
	"github.com/vitabox/v1/internal/domain/profile"
)

// fixedDailyTablets lists catalog-specific overrides for supplements
// that take a fixed tablet count regardless of body metrics.
var fixedDailyTablets = map[string]int{
	catalog.Magnesium: 1,
}

// DosageCalculator computes a personalized daily tablet count from a
// catalog entry and a health profile. It never fails; malformed or
// missing inputs degrade to the default dosage of one tablet.
type DosageCalculator struct {
	now func() time.Time
}

// NewDosageCalculator creates a dosage calculator using the wall clock.
func NewDosageCalculator() *DosageCalculator {
	return &DosageCalculator{now: time.Now}
}

// Compute returns the daily tablet count for entry given the profile.
// The result is always >= 1.
//
// Resolution order: explicit recommended tablet count, fixed-dose
// override, personalization formula, default of one.
func (d *DosageCalculator) Compute(entry *catalog.Entry, p profile.HealthProfile) int {
	if entry == nil {
		return 1
	}
	if entry.DosageInfo.RecommendedDailyTablets > 0 {
		return entry.DosageInfo.RecommendedDailyTablets
	}
	if fixed, ok := fixedDailyTablets[entry.ID]; ok {
		return fixed
	}
	if entry.DosageRule != nil {
		return d.applyRule(entry.DosageRule, p)
	}
	return 1
}

func (d *DosageCalculator) applyRule(rule *catalog.DosageRule, p profile.HealthProfile) int {
	amount := rule.BaseAmount
	if amount == 0 {
		amount = 1
	}

	if rule.WeightFactor != 0 && p.WeightKG > 0 && !math.IsNaN(p.WeightKG) && !math.IsInf(p.WeightKG, 0) {
		amount += p.WeightKG * rule.WeightFactor
	}

	if rule.GenderFactor != nil {
		switch p.NormalizedGender() {
		case profile.GenderMale:
			if rule.GenderFactor.Male != 0 {
				amount *= rule.GenderFactor.Male
			}
		case profile.GenderFemale:
			if rule.GenderFactor.Female != 0 {
				amount *= rule.GenderFactor.Female
			}
		}
	}

	if rule.AgeFactor != nil {
		if age, ok := p.Age(d.now()); ok {
			// Brackets are mutually exclusive; apply at most one.
			switch {
			case age < 30:
				if rule.AgeFactor.Under30 != 0 {
					amount *= rule.AgeFactor.Under30
				}
			case age <= 50:
				if rule.AgeFactor.Between30And50 != 0 {
					amount *= rule.AgeFactor.Between30And50
				}
			default:
				if rule.AgeFactor.Above50 != 0 {
					amount *= rule.AgeFactor.Above50
				}
			}
		}
	}

	if rule.MaxDosage > 0 && amount > rule.MaxDosage {
		amount = rule.MaxDosage
	}

	var tablets int
	if rule.BaseAmount > 0 {
		tablets = roundHalfUp(amount / rule.BaseAmount)
	} else {
		tablets = roundHalfUp(amount)
	}

	if tablets < 1 {
		return 1
	}
	return tablets
}

// roundHalfUp rounds to the nearest integer, halves away from zero
// on the positive axis.
func roundHalfUp(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	return int(math.Floor(v + 0.5))
}
