// Package pricing contains subscription plan pricing: base prices,
// plan-dependent percentage discounts and the stacked flat subsidies.
// All computation is pure and in KRW integer amounts.
package pricing

import "math"

// Plan identifies a subscription plan tier.
type Plan string

const (
	PlanMonthly Plan = "monthly"
	PlanAnnual  Plan = "annual"
	PlanOnce    Plan = "once"
)

// Fixed currency amounts in KRW. ShippingCost and SurveyDiscount are
// displayed as marketing line items on every plan; only FirstSubsidy
// is subtracted numerically.
const (
	UnitPrice      = 10000
	ShippingCost   = 3000
	SurveyDiscount = 5000
	FirstSubsidy   = 10000
)

// Plan-dependent percentage discount rates.
const (
	monthlyDiscountRate = 0.05
	annualDiscountRate  = 0.15
)

// Quote is the itemized price for one plan tier.
type Quote struct {
	Plan            Plan `json:"plan"`
	SelectionCount  int  `json:"selection_count"`
	BasePrice       int  `json:"base_price"`
	PercentDiscount int  `json:"percent_discount"`
	FirstSubsidy    int  `json:"first_subsidy"`
	ShippingCost    int  `json:"shipping_cost"`
	SurveyDiscount  int  `json:"survey_discount"`
	Total           int  `json:"total"`
}

// PlanQuote prices selectionCount products on the given plan.
// The percentage discount applies first, then the flat first-time
// subsidy. Base price uses the flat per-product placeholder because
// individual dosages are not yet known at plan comparison time.
func PlanQuote(selectionCount int, plan Plan) Quote {
	if selectionCount < 0 {
		selectionCount = 0
	}

	base := selectionCount * UnitPrice
	q := Quote{
		Plan:           plan,
		SelectionCount: selectionCount,
		FirstSubsidy:   FirstSubsidy,
		ShippingCost:   ShippingCost,
		SurveyDiscount: SurveyDiscount,
	}

	switch plan {
	case PlanAnnual:
		q.BasePrice = base * 12
		q.PercentDiscount = int(math.Floor(float64(q.BasePrice) * annualDiscountRate))
	case PlanOnce:
		q.BasePrice = base
	default:
		q.Plan = PlanMonthly
		q.BasePrice = base
		q.PercentDiscount = int(math.Floor(float64(q.BasePrice) * monthlyDiscountRate))
	}

	q.Total = q.BasePrice - q.PercentDiscount - q.FirstSubsidy
	return q
}

// ComparePlans quotes every plan tier for the given selection count.
func ComparePlans(selectionCount int) []Quote {
	return []Quote{
		PlanQuote(selectionCount, PlanMonthly),
		PlanQuote(selectionCount, PlanAnnual),
		PlanQuote(selectionCount, PlanOnce),
	}
}

// ItemMonthlyPrice is the 30-day price for a single recommendation:
// round(pricePerUnit * dailyDosage * 30).
func ItemMonthlyPrice(pricePerUnit float64, dailyDosage int) int {
	return int(math.Floor(pricePerUnit*float64(dailyDosage)*30 + 0.5))
}

// SubscribePrice applies the flat 15% subscribe discount for display.
// The stored monthly price is not mutated.
func SubscribePrice(monthlyPrice int) int {
	return int(math.Floor(float64(monthlyPrice) * 0.85))
}
