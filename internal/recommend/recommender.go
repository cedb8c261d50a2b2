package recommend

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
)

// MaxRecommendations caps the recommendation list returned to callers.
const MaxRecommendations = 3

// DefaultDisclaimer accompanies every recommendation response.
const DefaultDisclaimer = "Check the official MDC catalog/advisors for the most current requirements."

// Request is a single recommendation request. EarnedCredits below zero is
// clamped at use, not rejected.
type Request struct {
	PriorEducation string `json:"priorEducation"`
	GoalID         int    `json:"goalId"`
	EarnedCredits  int    `json:"earnedCredits"`
	PreferOnline   bool   `json:"preferOnline"`
}

// ProgramSummary is the projection of a program carried inside a recommendation.
type ProgramSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	AwardLevel   string `json:"award_level"`
	TotalCredits int    `json:"total_credits"`
	URL          string `json:"url"`
}

// Recommendation is one ranked program suggestion with its cost estimate.
type Recommendation struct {
	Score            int            `json:"score"`
	Program          ProgramSummary `json:"program"`
	RemainingCredits int            `json:"remaining_credits"`
	EstimatedTerms   int            `json:"estimated_terms"`
	EstimatedCost    CostBreakdown  `json:"estimated_cost"`
	WhyThis          string         `json:"why_this"`
}

// DebugInfo records which path produced a response.
type DebugInfo struct {
	Origin string `json:"origin"`
}

// Response is the recommendation payload shared by both the deterministic
// and the AI-assisted path.
type Response struct {
	Recommendations    []Recommendation `json:"recommendations"`
	AdvisingDisclaimer string           `json:"advising_disclaimer,omitempty"`
	Debug              *DebugInfo       `json:"debug,omitempty"`
}

// Recommender is the deterministic recommendation pipeline. It is pure over
// the store contents: identical inputs always yield identical ordered output.
// It is also the fallback of last resort for the AI path.
type Recommender struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewRecommender creates a deterministic recommender over the given store.
func NewRecommender(store *catalog.Store, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recommender{store: store, logger: logger}
}

// Recommend filters the catalog through the validity filter, scores the
// survivors for the requested goal, boosts by goal and delivery preferences,
// attaches cost estimates, and returns the top entries sorted by score
// descending with remaining credits ascending as the tie-break.
func (r *Recommender) Recommend(req Request) Response {
	baseScores := ScoreCandidates(req.GoalID, r.store.Mappings())
	goal, _ := r.store.GoalByID(req.GoalID)

	var recs []Recommendation
	for _, p := range r.store.ValidPrograms() {
		base, ok := baseScores[p.ID]
		if !ok || base <= 0 {
			continue
		}

		score := base
		if req.PreferOnline {
			score = BoostByDelivery(score, p.DeliveryMode, true)
		}
		score = BoostByGoalPrefs(score, p, goal)

		rem := RemainingCredits(p.TotalCredits, req.EarnedCredits)
		terms := EstimateTerms(rem, DefaultCreditLoadPerTerm)
		cost := EstimateCost(rem, terms, r.store.CostModel(), p.ID)

		recs = append(recs, Recommendation{
			Score: score,
			Program: ProgramSummary{
				ID:           p.ID,
				Name:         p.Name,
				AwardLevel:   p.AwardLevel,
				TotalCredits: p.TotalCredits,
				URL:          p.URL,
			},
			RemainingCredits: rem,
			EstimatedTerms:   terms,
			EstimatedCost:    cost,
			WhyThis:          whyThis(req.GoalID, base, p.DeliveryMode),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].RemainingCredits < recs[j].RemainingCredits
	})

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	return Response{
		Recommendations:    recs,
		AdvisingDisclaimer: DefaultDisclaimer,
	}
}

func whyThis(goalID, fitStrength int, deliveryMode string) string {
	delivery := "on-campus"
	switch strings.ToLower(strings.TrimSpace(deliveryMode)) {
	case "online", "hybrid":
		delivery = "online-friendly"
	}
	return fmt.Sprintf("Matched goal %d; fit_strength=%d; %s", goalID, fitStrength, delivery)
}
