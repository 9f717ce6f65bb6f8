package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanQuote(t *testing.T) {
	t.Run("MonthlyWithThreeProducts", func(t *testing.T) {
		q := PlanQuote(3, PlanMonthly)

		assert.Equal(t, PlanMonthly, q.Plan)
		assert.Equal(t, 30000, q.BasePrice)
		assert.Equal(t, 1500, q.PercentDiscount)
		assert.Equal(t, 10000, q.FirstSubsidy)
		assert.Equal(t, 18500, q.Total)
	})

	t.Run("OnceWithThreeProducts", func(t *testing.T) {
		q := PlanQuote(3, PlanOnce)

		assert.Equal(t, 30000, q.BasePrice)
		assert.Zero(t, q.PercentDiscount)
		assert.Equal(t, 20000, q.Total)
	})

	t.Run("AnnualWithThreeProducts", func(t *testing.T) {
		q := PlanQuote(3, PlanAnnual)

		assert.Equal(t, 360000, q.BasePrice)
		assert.Equal(t, 54000, q.PercentDiscount)
		assert.Equal(t, 296000, q.Total)
	})

	t.Run("DisplayLineItemsAreConstant", func(t *testing.T) {
		for _, plan := range []Plan{PlanMonthly, PlanAnnual, PlanOnce} {
			q := PlanQuote(2, plan)
			assert.Equal(t, ShippingCost, q.ShippingCost)
			assert.Equal(t, SurveyDiscount, q.SurveyDiscount)
			// Shipping and survey discount are display-only; the total
			// is base minus percent discount minus subsidy.
			assert.Equal(t, q.BasePrice-q.PercentDiscount-q.FirstSubsidy, q.Total)
		}
	})

	t.Run("UnknownPlanFallsBackToMonthly", func(t *testing.T) {
		q := PlanQuote(3, Plan("weekly"))
		assert.Equal(t, PlanMonthly, q.Plan)
		assert.Equal(t, 18500, q.Total)
	})

	t.Run("NegativeCountClampsToZero", func(t *testing.T) {
		q := PlanQuote(-2, PlanMonthly)
		assert.Zero(t, q.BasePrice)
		assert.Zero(t, q.SelectionCount)
	})
}

func TestAnnualRateBeatsMonthlyRate(t *testing.T) {
	// The flat subsidy applies once per order, so the plans are
	// compared on their percent-discounted base: annual must always
	// undercut monthly per month before the subsidy.
	for count := 1; count <= 10; count++ {
		t.Run(fmt.Sprintf("Count%d", count), func(t *testing.T) {
			monthly := PlanQuote(count, PlanMonthly)
			annual := PlanQuote(count, PlanAnnual)

			annualPerMonth := (annual.BasePrice - annual.PercentDiscount) / 12
			monthlyRate := monthly.BasePrice - monthly.PercentDiscount
			assert.Less(t, annualPerMonth, monthlyRate)
		})
	}
}

func TestComparePlans(t *testing.T) {
	quotes := ComparePlans(3)

	assert.Len(t, quotes, 3)
	assert.Equal(t, PlanMonthly, quotes[0].Plan)
	assert.Equal(t, PlanAnnual, quotes[1].Plan)
	assert.Equal(t, PlanOnce, quotes[2].Plan)
}

func TestItemMonthlyPrice(t *testing.T) {
	assert.Equal(t, 30000, ItemMonthlyPrice(500, 2))
	assert.Equal(t, 9000, ItemMonthlyPrice(300, 1))
	// Fractional per-unit prices round half up.
	assert.Equal(t, 15008, ItemMonthlyPrice(250.125, 2))
}

func TestSubscribePrice(t *testing.T) {
	assert.Equal(t, 15725, SubscribePrice(18500))
	assert.Equal(t, 8500, SubscribePrice(10000))
	assert.Zero(t, SubscribePrice(0))
}
