// Package profile contains the user health profile value object and
// the derived measures the recommendation rules depend on.
package profile

import (
	"strings"
	"time"
)

// Normalized gender values. Unrecognized input passes through
// unchanged and simply matches no gender-dependent rule.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// HealthProfile is the survey-derived input to the engine.
// Zero values mean the field was not provided; dependent rules are
// skipped rather than failing.
type HealthProfile struct {
	Gender    string
	HeightCM  float64
	WeightKG  float64
	BirthDate time.Time
}

// NormalizeGender maps locale spellings onto the canonical values.
// The Latin spellings are matched case-insensitively.
func NormalizeGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "남", "남성", "남자":
		return GenderMale
	case "female", "여", "여성", "여자":
		return GenderFemale
	}
	return gender
}

// NormalizedGender returns the canonical form of the profile's gender.
func (p HealthProfile) NormalizedGender() string {
	return NormalizeGender(p.Gender)
}

// Age derives age as calendar-year subtraction against ref.
// Month and day are deliberately ignored; this reproduces the
// survey's original age semantics. Returns false when no birth
// date is set.
func (p HealthProfile) Age(ref time.Time) (int, bool) {
	if p.BirthDate.IsZero() {
		return 0, false
	}
	return ref.Year() - p.BirthDate.Year(), true
}

// BMI returns weight / (height/100)^2. Returns false unless both
// height and weight are positive.
func (p HealthProfile) BMI() (float64, bool) {
	if p.HeightCM <= 0 || p.WeightKG <= 0 {
		return 0, false
	}
	m := p.HeightCM / 100
	return p.WeightKG / (m * m), true
}
