// Package catalog contains the supplement reference data domain.
// Catalog entries are immutable after load and shared by reference
// across all engine calls.
package catalog

// Entry represents one supplement in the reference catalog.
type Entry struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Benefits     []string `json:"benefits"`
	Precautions  []string `json:"precautions"`
	SideEffects  []string `json:"side_effects,omitempty"`
	Interactions []string `json:"interactions,omitempty"`
	FoodSources  []string `json:"food_sources,omitempty"`

	DosageInfo DosageInfo  `json:"dosage_info"`
	DosageRule *DosageRule `json:"dosage_calculation,omitempty"`

	// PricePerUnit is the daily unit price in KRW minor units.
	PricePerUnit float64 `json:"price_per_unit" validate:"gte=0"`
}

// DosageInfo carries fixed dosage guidance for an entry.
// RecommendedDailyTablets, when positive, overrides any computed dosage.
type DosageInfo struct {
	RecommendedDailyTablets int `json:"recommended_daily_tablets,omitempty"`
}

// DosageRule is the optional personalization formula for an entry.
// Absent factors are simply not applied.
type DosageRule struct {
	BaseAmount   float64       `json:"base_amount,omitempty"`
	WeightFactor float64       `json:"weight_factor,omitempty"`
	GenderFactor *GenderFactor `json:"gender_factor,omitempty"`
	AgeFactor    *AgeFactor    `json:"age_factor,omitempty"`
	MaxDosage    float64       `json:"max_dosage,omitempty"`
}

// GenderFactor holds multiplicative adjustments per normalized gender.
// A zero value means the factor is not defined for that gender.
type GenderFactor struct {
	Male   float64 `json:"male,omitempty"`
	Female float64 `json:"female,omitempty"`
}

// AgeFactor holds multiplicative adjustments per age bracket.
// Brackets are mutually exclusive: under 30, 30 to 50 inclusive, over 50.
type AgeFactor struct {
	Under30        float64 `json:"under_30,omitempty"`
	Between30And50 float64 `json:"between_30_and_50,omitempty"`
	Above50        float64 `json:"above_50,omitempty"`
}

// Validate checks the entry's structural invariants.
func (e Entry) Validate() error {
	if e.ID == "" {
		return ErrEmptyID
	}
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.PricePerUnit < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Well-known catalog entry IDs used by the selection rules.
const (
	VitaminD    = "vitamin-d"
	VitaminC    = "vitamin-c"
	VitaminB    = "vitamin-b-complex"
	Omega3      = "omega-3"
	CoenzymeQ10 = "coenzyme-q10"
	Calcium     = "calcium"
	Magnesium   = "magnesium"
	Curcumin    = "curcumin"
	Probiotics  = "probiotics"
	Lutein      = "lutein"
	Arginine    = "arginine"
)
