package catalog

import (
	"strings"

	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// Program is a single catalog offering. Rows are immutable once loaded;
// Tags keeps the raw semicolon-delimited form from the seed CSV.
type Program struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	AwardLevel   string `json:"award_level"`
	TotalCredits int    `json:"total_credits"`
	DeliveryMode string `json:"delivery_mode"`
	Campuses     string `json:"campuses"`
	URL          string `json:"url"`
	Tags         string `json:"tags"`
	Description  string `json:"description"`
}

// TagSet returns the program's tags as a lowercased set.
func (p Program) TagSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, tag := range strings.Split(strings.ToLower(p.Tags), ";") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

// Goal is a career goal with curated preferences used for score boosting.
type Goal struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	PreferredTags   []string `json:"preferred_tags"`
	PreferredAwards []string `json:"preferred_awards"`
}

// FitMapping rates how well one program serves one goal. Strength is an
// integer 1-5 sourced from curated goal-to-program mappings; multiple
// mappings for the same pair collapse to the maximum strength.
type FitMapping struct {
	GoalID      int    `json:"goal_id"`
	ProgramID   int    `json:"program_id"`
	FitStrength int    `json:"fit_strength"`
	Rationale   string `json:"rationale"`
}

// DefaultFitStrength is assumed when a mapping omits or mangles its strength.
const DefaultFitStrength = 3

// CostModel is the externally supplied pricing configuration. ProgramOverrides
// maps a program-id string to a flat total that fully replaces the formulaic
// estimate for that program.
type CostModel struct {
	Institution          string             `json:"institution"`
	InStatePerCredit     float64            `json:"in_state_per_credit"`
	OutStatePerCredit    float64            `json:"out_state_per_credit"`
	TechFeePerCredit     float64            `json:"tech_fee_per_credit"`
	TermFeeFlat          float64            `json:"term_fee_flat"`
	BookAllowancePerTerm float64            `json:"book_allowance_per_term"`
	AssumptionsNote      string             `json:"assumptions_note"`
	ProgramOverrides     map[string]float64 `json:"program_overrides"`
}

// Validate checks that all rate fields are non-negative. Field presence is
// enforced separately at load time.
func (m CostModel) Validate() error {
	rates := map[string]float64{
		"in_state_per_credit":     m.InStatePerCredit,
		"out_state_per_credit":    m.OutStatePerCredit,
		"tech_fee_per_credit":     m.TechFeePerCredit,
		"term_fee_flat":           m.TermFeeFlat,
		"book_allowance_per_term": m.BookAllowancePerTerm,
	}
	for name, v := range rates {
		if v < 0 {
			return types.NewError(types.COSTMODEL_INVALID, name+" must be non-negative")
		}
	}
	for id, total := range m.ProgramOverrides {
		if total < 0 {
			return types.NewError(types.COSTMODEL_INVALID, "program override for "+id+" must be non-negative")
		}
	}
	return nil
}
