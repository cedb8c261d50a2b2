package advisor

import (
	"log/slog"
	"sort"

	"github.com/goccy/go-json"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
	"github.com/gabrielc1317/mdc-pathfinder/internal/recommend"
	"github.com/gabrielc1317/mdc-pathfinder/internal/schema"
	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// Tool names form a closed set. A call naming anything else is the distinct
// unknown-tool case that terminates the exchange loop.
const (
	ToolSearchPrograms    = "searchPrograms"
	ToolGetProgramDetails = "getProgramDetails"
	ToolEstimateCost      = "estimateCost"
)

// MaxSearchResults caps the candidate list returned by searchPrograms.
const MaxSearchResults = 6

// ErrUnknownTool signals a call outside the fixed tool set.
var ErrUnknownTool = types.NewError(llm.ErrToolNotFound, "unknown tool")

// Dispatcher resolves tool calls from the model against the catalog. Every
// call is independent and stateless; nothing here mutates the store, and the
// scoring path is the same one the deterministic recommender uses so both
// paths see the same candidate universe.
type Dispatcher struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over the given store.
func NewDispatcher(store *catalog.Store, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{store: store, logger: logger}
}

// ToolDefs returns the three tool schemas advertised to the model.
func (d *Dispatcher) ToolDefs() []llm.ToolDef {
	return []llm.ToolDef{
		llm.NewToolDef(ToolSearchPrograms,
			"Search the catalog for programs matching a career goal, ranked by fit score. Returns at most 6 candidates.",
			schema.NewObjectSchema(map[string]schema.SchemaField{
				"goalId":         schema.NewIntegerField("Career goal identifier"),
				"priorEducation": schema.NewStringField("Student's prior education level, e.g. hs, some_college, aa"),
				"earnedCredits":  schema.NewIntegerField("College credits already earned").WithMin(0).WithDefault(0),
				"preferOnline":   schema.NewBooleanField("Whether the student prefers online delivery").WithDefault(false),
			}, []string{"goalId"})),
		llm.NewToolDef(ToolGetProgramDetails,
			"Look up the full details of one program by its id. Returns null when the program does not exist.",
			schema.NewObjectSchema(map[string]schema.SchemaField{
				"program_id": schema.NewIntegerField("Program identifier"),
			}, []string{"program_id"})),
		llm.NewToolDef(ToolEstimateCost,
			"Estimate tuition, fees, books, and term count for finishing a program given the remaining credits.",
			schema.NewObjectSchema(map[string]schema.SchemaField{
				"program_id":        schema.NewIntegerField("Program identifier"),
				"remaining_credits": schema.NewIntegerField("Credits still required").WithMin(0),
			}, []string{"program_id", "remaining_credits"})),
	}
}

// Dispatch executes one tool call and wraps the outcome as a tool result.
// Unknown tool names return ErrUnknownTool; malformed arguments come back as
// an error result the model can react to.
func (d *Dispatcher) Dispatch(call llm.ToolCall) (llm.ToolResult, error) {
	switch call.Name {
	case ToolSearchPrograms:
		var args searchProgramsArgs
		if err := call.ParseArguments(&args); err != nil {
			return llm.NewToolError(call.ID, "invalid searchPrograms arguments: "+err.Error()), nil
		}
		return d.marshalResult(call.ID, searchProgramsResult{Candidates: d.searchPrograms(args)})

	case ToolGetProgramDetails:
		var args programDetailsArgs
		if err := call.ParseArguments(&args); err != nil {
			return llm.NewToolError(call.ID, "invalid getProgramDetails arguments: "+err.Error()), nil
		}
		return d.marshalResult(call.ID, programDetailsResult{Program: d.programDetails(args.ProgramID)})

	case ToolEstimateCost:
		var args estimateCostArgs
		if err := call.ParseArguments(&args); err != nil {
			return llm.NewToolError(call.ID, "invalid estimateCost arguments: "+err.Error()), nil
		}
		return d.marshalResult(call.ID, estimateCostResult{Estimate: d.estimateCost(args)})

	default:
		d.logger.Warn("model requested unknown tool", "tool", call.Name)
		return llm.ToolResult{}, ErrUnknownTool
	}
}

type searchProgramsArgs struct {
	GoalID         int    `json:"goalId"`
	PriorEducation string `json:"priorEducation"`
	EarnedCredits  int    `json:"earnedCredits"`
	PreferOnline   bool   `json:"preferOnline"`
}

// SearchCandidate is one ranked entry in a searchPrograms result.
type SearchCandidate struct {
	ProgramID  int    `json:"program_id"`
	Name       string `json:"name"`
	AwardLevel string `json:"award_level"`
	URL        string `json:"url"`
	Score      int    `json:"score"`
}

type searchProgramsResult struct {
	Candidates []SearchCandidate `json:"candidates"`
}

func (d *Dispatcher) searchPrograms(args searchProgramsArgs) []SearchCandidate {
	baseScores := recommend.ScoreCandidates(args.GoalID, d.store.Mappings())
	goal, _ := d.store.GoalByID(args.GoalID)

	candidates := make([]SearchCandidate, 0, len(baseScores))
	for _, p := range d.store.ValidPrograms() {
		base, ok := baseScores[p.ID]
		if !ok {
			continue
		}

		score := base
		if args.PreferOnline {
			score = recommend.BoostByDelivery(score, p.DeliveryMode, true)
		}
		score = recommend.BoostByGoalPrefs(score, p, goal)

		candidates = append(candidates, SearchCandidate{
			ProgramID:  p.ID,
			Name:       p.Name,
			AwardLevel: p.AwardLevel,
			URL:        p.URL,
			Score:      score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > MaxSearchResults {
		candidates = candidates[:MaxSearchResults]
	}
	return candidates
}

type programDetailsArgs struct {
	ProgramID int `json:"program_id"`
}

// ProgramDetails is the full projection returned by getProgramDetails.
type ProgramDetails struct {
	ProgramID    int    `json:"program_id"`
	Name         string `json:"name"`
	AwardLevel   string `json:"award_level"`
	TotalCredits int    `json:"total_credits"`
	URL          string `json:"url"`
	DeliveryMode string `json:"delivery_mode"`
	Campuses     string `json:"campuses"`
	Tags         string `json:"tags"`
	Description  string `json:"description"`
}

type programDetailsResult struct {
	Program *ProgramDetails `json:"program"`
}

func (d *Dispatcher) programDetails(programID int) *ProgramDetails {
	p, ok := d.store.ValidProgramByID(programID)
	if !ok {
		return nil
	}
	return &ProgramDetails{
		ProgramID:    p.ID,
		Name:         p.Name,
		AwardLevel:   p.AwardLevel,
		TotalCredits: p.TotalCredits,
		URL:          p.URL,
		DeliveryMode: p.DeliveryMode,
		Campuses:     p.Campuses,
		Tags:         p.Tags,
		Description:  p.Description,
	}
}

type estimateCostArgs struct {
	ProgramID        int `json:"program_id"`
	RemainingCredits int `json:"remaining_credits"`
}

// CostEstimate is the estimateCost payload: a cost breakdown plus the derived
// term count.
type CostEstimate struct {
	Tuition        float64 `json:"tuition"`
	Fees           float64 `json:"fees"`
	Books          float64 `json:"books"`
	Total          float64 `json:"total"`
	EstimatedTerms int     `json:"estimated_terms"`
}

type estimateCostResult struct {
	Estimate CostEstimate `json:"estimate"`
}

func (d *Dispatcher) estimateCost(args estimateCostArgs) CostEstimate {
	terms := recommend.EstimateTerms(args.RemainingCredits, recommend.DefaultCreditLoadPerTerm)
	cost := recommend.EstimateCost(args.RemainingCredits, terms, d.store.CostModel(), args.ProgramID)
	return CostEstimate{
		Tuition:        cost.Tuition,
		Fees:           cost.Fees,
		Books:          cost.Books,
		Total:          cost.Total,
		EstimatedTerms: terms,
	}
}

func (d *Dispatcher) marshalResult(callID string, payload any) (llm.ToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return llm.NewToolError(callID, "failed to encode tool result"), nil
	}
	return llm.NewToolResult(callID, string(data)), nil
}
