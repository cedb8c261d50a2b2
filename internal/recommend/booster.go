package recommend

import (
	"strings"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
)

// BoostByGoalPrefs applies the goal's declared preferences to a base score.
// Award alignment is asymmetric on purpose: a goal that declares preferred
// awards nudges matching programs up by 2 and everything else down by 2,
// while a goal with no declared awards leaves scores untouched. Tag overlap
// adds 2 per tag shared between the goal and the program.
func BoostByGoalPrefs(score int, program catalog.Program, goal catalog.Goal) int {
	if len(goal.PreferredAwards) > 0 {
		award := strings.ToUpper(strings.TrimSpace(program.AwardLevel))
		if containsFold(goal.PreferredAwards, award) {
			score += 2
		} else {
			score -= 2
		}
	}

	progTags := program.TagSet()
	for _, tag := range goal.PreferredTags {
		if _, ok := progTags[strings.ToLower(tag)]; ok {
			score += 2
		}
	}

	return score
}

// BoostByDelivery adds 1 when the caller prefers online delivery and the
// program is delivered online or hybrid. Callers without a delivery
// preference must not invoke this at all; the preference is request-scoped
// and never cached.
func BoostByDelivery(score int, deliveryMode string, preferOnline bool) int {
	if !preferOnline {
		return score
	}
	switch strings.ToLower(strings.TrimSpace(deliveryMode)) {
	case "online", "hybrid":
		return score + 1
	default:
		return score
	}
}

func containsFold(haystack []string, upper string) bool {
	for _, s := range haystack {
		if strings.ToUpper(strings.TrimSpace(s)) == upper {
			return true
		}
	}
	return false
}
