package recommend

import (
	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
)

// ScoreCandidates reduces the fit mappings for one goal into base scores,
// keyed by program id. Multiple mappings for the same (goal, program) pair
// collapse to the maximum fit strength so a program reachable through several
// rationale paths is never under-scored. The reduction is order-independent.
func ScoreCandidates(goalID int, mappings []catalog.FitMapping) map[int]int {
	out := make(map[int]int)
	for _, m := range mappings {
		if m.GoalID != goalID {
			continue
		}
		fit := m.FitStrength
		if fit == 0 {
			fit = catalog.DefaultFitStrength
		}
		if fit > out[m.ProgramID] {
			out[m.ProgramID] = fit
		}
	}
	return out
}
