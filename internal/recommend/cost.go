package recommend

import (
	"math"
	"strconv"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
)

// DefaultCreditLoadPerTerm is the assumed full-time credit load.
const DefaultCreditLoadPerTerm = 15

// CostBreakdown is the per-program cost estimate returned to callers.
// Amounts are rounded to cents at the point of output only.
type CostBreakdown struct {
	Tuition float64 `json:"tuition"`
	Fees    float64 `json:"fees"`
	Books   float64 `json:"books"`
	Total   float64 `json:"total"`
}

// RemainingCredits returns total minus earned, floored at zero. Negative
// earned-credit inputs are clamped rather than rejected.
func RemainingCredits(totalCredits, earnedCredits int) int {
	if earnedCredits < 0 {
		earnedCredits = 0
	}
	rem := totalCredits - earnedCredits
	if rem < 0 {
		return 0
	}
	return rem
}

// EstimateTerms converts remaining credits into a term count at the given
// per-term load.
func EstimateTerms(remainingCredits, creditLoadPerTerm int) int {
	if remainingCredits <= 0 {
		return 0
	}
	if creditLoadPerTerm < 1 {
		creditLoadPerTerm = 1
	}
	return int(math.Ceil(float64(remainingCredits) / float64(creditLoadPerTerm)))
}

// EstimateCost produces a cost breakdown for the remaining credits. A program
// override in the cost model fully replaces the formulaic estimate: the
// override becomes tuition and total, fees and books are zero.
func EstimateCost(remainingCredits, terms int, cm catalog.CostModel, programID int) CostBreakdown {
	if override, ok := cm.ProgramOverrides[strconv.Itoa(programID)]; ok {
		return CostBreakdown{
			Tuition: override,
			Fees:    0,
			Books:   0,
			Total:   override,
		}
	}

	tuition := cm.InStatePerCredit * float64(remainingCredits)
	fees := cm.TechFeePerCredit*float64(remainingCredits) + cm.TermFeeFlat*float64(terms)
	books := cm.BookAllowancePerTerm * float64(terms)

	return CostBreakdown{
		Tuition: roundCents(tuition),
		Fees:    roundCents(fees),
		Books:   roundCents(books),
		Total:   roundCents(tuition + fees + books),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
