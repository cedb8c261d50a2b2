package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
)

func testCostModel() catalog.CostModel {
	return catalog.CostModel{
		Institution:          "MDC",
		InStatePerCredit:     100,
		OutStatePerCredit:    390,
		TechFeePerCredit:     10,
		TermFeeFlat:          50,
		BookAllowancePerTerm: 100,
		ProgramOverrides:     map[string]float64{"42": 5000},
	}
}

func TestRemainingCredits(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		earned int
		want   int
	}{
		{"normal", 60, 30, 30},
		{"earned exceeds total clamps to zero", 60, 80, 0},
		{"negative earned clamps to zero earned", 60, -5, 60},
		{"exact completion", 60, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingCredits(tt.total, tt.earned))
		})
	}
}

func TestEstimateTerms(t *testing.T) {
	tests := []struct {
		name string
		rem  int
		load int
		want int
	}{
		{"zero remaining", 0, 15, 0},
		{"negative remaining", -3, 15, 0},
		{"exact multiple", 30, 15, 2},
		{"partial term rounds up", 31, 15, 3},
		{"degenerate load treated as one", 5, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTerms(tt.rem, tt.load))
		})
	}
}

func TestEstimateCost_Formula(t *testing.T) {
	// 30 credits over 2 terms: tuition 3000, fees 30*10+2*50=400, books 200.
	cost := EstimateCost(30, 2, testCostModel(), 101)

	assert.Equal(t, 3000.0, cost.Tuition)
	assert.Equal(t, 400.0, cost.Fees)
	assert.Equal(t, 200.0, cost.Books)
	assert.Equal(t, 3600.0, cost.Total)
}

func TestEstimateCost_OverridePrecedence(t *testing.T) {
	for _, rem := range []int{0, 15, 120} {
		cost := EstimateCost(rem, EstimateTerms(rem, DefaultCreditLoadPerTerm), testCostModel(), 42)

		assert.Equal(t, 5000.0, cost.Total)
		assert.Equal(t, 5000.0, cost.Tuition)
		assert.Equal(t, 0.0, cost.Fees)
		assert.Equal(t, 0.0, cost.Books)
	}
}

func TestEstimateCost_MonotonicInRemainingCredits(t *testing.T) {
	cm := testCostModel()
	terms := 4

	prev := -1.0
	for rem := 0; rem <= 90; rem += 5 {
		cost := EstimateCost(rem, terms, cm, 101)
		assert.GreaterOrEqual(t, cost.Total, prev, "total decreased at rem=%d", rem)
		prev = cost.Total
	}
}

func TestEstimateCost_RoundsAtOutput(t *testing.T) {
	cm := testCostModel()
	cm.InStatePerCredit = 102.335
	cm.TechFeePerCredit = 11.111

	cost := EstimateCost(3, 1, cm, 101)

	assert.Equal(t, 307.01, cost.Tuition) // 307.005 rounds half away from zero
	assert.Equal(t, 83.33, cost.Fees)     // 33.333 + 50
	assert.Equal(t, 100.0, cost.Books)
	// Total is rounded from the unrounded accumulation, not from rounded parts.
	assert.Equal(t, 490.34, cost.Total)
}
