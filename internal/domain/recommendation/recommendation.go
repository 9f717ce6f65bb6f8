// Package recommendation contains the engine's output types: timed
// dosage schedules and the per-supplement recommendation unit.
package recommendation

// TimeOfDay is the intake slot shown to the user. The values are the
// Korean display strings and are part of the observable contract.
type TimeOfDay string

const (
	Morning TimeOfDay = "아침"
	Noon    TimeOfDay = "점심"
	Evening TimeOfDay = "저녁"
	Bedtime TimeOfDay = "취침전"
)

// ScheduleEntry is one timed dose with its meal relation and the
// rationale shown verbatim to the user.
type ScheduleEntry struct {
	Time     TimeOfDay `json:"time"`
	Amount   int       `json:"amount"`
	WithMeal bool      `json:"with_meal"`
	Reason   string    `json:"reason"`
}

// Recommendation is one recommended supplement with its personalized
// dosage, intake schedule and monthly price. Held in transient
// session state; persisted only when the user subscribes.
type Recommendation struct {
	SupplementID string          `json:"supplement_id"`
	Name         string          `json:"name"`
	DailyDosage  int             `json:"daily_dosage"`
	Schedule     []ScheduleEntry `json:"schedule"`
	Reason       string          `json:"reason"`
	MonthlyPrice int             `json:"monthly_price"`
}

// TotalAmount sums the scheduled dose amounts. It always equals
// DailyDosage for schedules produced by the engine.
func TotalAmount(schedule []ScheduleEntry) int {
	var total int
	for _, s := range schedule {
		total += s.Amount
	}
	return total
}
