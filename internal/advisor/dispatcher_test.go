package advisor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goccy/go-json"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
)

func fixtureStore() *catalog.Store {
	programs := []catalog.Program{
		{
			ID: 101, Name: "Computer Programming and Analysis", AwardLevel: "AA",
			TotalCredits: 60, DeliveryMode: "online", URL: "https://example.edu/101",
			Tags: "cs;software",
		},
		{
			ID: 102, Name: "Associate in Science Nursing", AwardLevel: "AS",
			TotalCredits: 72, DeliveryMode: "campus", URL: "https://example.edu/102",
			Tags: "health;nursing",
		},
		{
			ID: 103, Name: "Certificate in Cybersecurity", AwardLevel: "CERTIFICATE",
			TotalCredits: 18, DeliveryMode: "hybrid", URL: "https://example.edu/103",
			Tags: "cyber;security",
		},
		{
			ID: 104, Name: "Bachelor of Science in Information Systems Technology", AwardLevel: "BS",
			TotalCredits: 120, DeliveryMode: "online", URL: "https://example.edu/104",
			Tags: "cs;information",
		},
		// Rejected by the validity filter; must never surface from any tool.
		{
			ID: 900, Name: "students should see an advisor", AwardLevel: "AA",
			TotalCredits: 60, DeliveryMode: "online",
		},
	}

	goals := []catalog.Goal{
		{ID: 1, Name: "Software Developer"},
		{ID: 2, Name: "Security Analyst", PreferredTags: []string{"cyber"}, PreferredAwards: []string{"CERTIFICATE", "BS"}},
	}

	mappings := []catalog.FitMapping{
		{GoalID: 1, ProgramID: 101, FitStrength: 4},
		{GoalID: 1, ProgramID: 104, FitStrength: 3},
		{GoalID: 1, ProgramID: 900, FitStrength: 5},
		{GoalID: 2, ProgramID: 103, FitStrength: 5},
		{GoalID: 2, ProgramID: 101, FitStrength: 3},
		{GoalID: 2, ProgramID: 102, FitStrength: 2},
		{GoalID: 2, ProgramID: 104, FitStrength: 3},
	}

	return catalog.NewStore(programs, goals, mappings, catalog.CostModel{
		Institution:          "MDC",
		InStatePerCredit:     100,
		OutStatePerCredit:    390,
		TechFeePerCredit:     10,
		TermFeeFlat:          50,
		BookAllowancePerTerm: 100,
		ProgramOverrides:     map[string]float64{},
	})
}

// wideStore maps one goal onto more valid programs than the search cap.
func wideStore() *catalog.Store {
	var programs []catalog.Program
	var mappings []catalog.FitMapping
	for i := 0; i < 8; i++ {
		id := 200 + i
		programs = append(programs, catalog.Program{
			ID:           id,
			Name:         fmt.Sprintf("Associate in Science Accounting Track %d", i),
			AwardLevel:   "AS",
			TotalCredits: 60,
		})
		mappings = append(mappings, catalog.FitMapping{GoalID: 1, ProgramID: id, FitStrength: 1 + i%5})
	}
	goals := []catalog.Goal{{ID: 1, Name: "Accountant"}}
	return catalog.NewStore(programs, goals, mappings, catalog.CostModel{})
}

func dispatchCall(t *testing.T, d *Dispatcher, name, args string) llm.ToolResult {
	t.Helper()
	result, err := d.Dispatch(llm.ToolCall{ID: "call_1", Type: "function", Name: name, Arguments: args})
	require.NoError(t, err)
	return result
}

func TestToolDefs(t *testing.T) {
	d := NewDispatcher(fixtureStore(), nil)

	defs := d.ToolDefs()
	require.Len(t, defs, 3)

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		require.NoError(t, def.Validate())
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{ToolSearchPrograms, ToolGetProgramDetails, ToolEstimateCost}, names)
}

func TestDispatch_SearchPrograms(t *testing.T) {
	d := NewDispatcher(fixtureStore(), nil)

	result := dispatchCall(t, d, ToolSearchPrograms, `{"goalId":1,"preferOnline":true}`)
	require.False(t, result.IsError)

	var payload struct {
		Candidates []SearchCandidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Content), &payload))
	require.Len(t, payload.Candidates, 2)

	assert.Equal(t, 101, payload.Candidates[0].ProgramID)
	assert.Equal(t, 5, payload.Candidates[0].Score) // fit 4 + online boost
	assert.Equal(t, 104, payload.Candidates[1].ProgramID)
	assert.Equal(t, 4, payload.Candidates[1].Score)

	for _, c := range payload.Candidates {
		assert.NotEqual(t, 900, c.ProgramID, "validity-rejected row leaked from searchPrograms")
	}
}

func TestDispatch_SearchProgramsCapsResults(t *testing.T) {
	d := NewDispatcher(wideStore(), nil)

	result := dispatchCall(t, d, ToolSearchPrograms, `{"goalId":1}`)

	var payload struct {
		Candidates []SearchCandidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Content), &payload))
	assert.Len(t, payload.Candidates, MaxSearchResults)

	for i := 1; i < len(payload.Candidates); i++ {
		assert.GreaterOrEqual(t, payload.Candidates[i-1].Score, payload.Candidates[i].Score)
	}
}

func TestDispatch_GetProgramDetails(t *testing.T) {
	d := NewDispatcher(fixtureStore(), nil)

	result := dispatchCall(t, d, ToolGetProgramDetails, `{"program_id":103}`)

	var payload struct {
		Program *ProgramDetails `json:"program"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Content), &payload))
	require.NotNil(t, payload.Program)
	assert.Equal(t, "Certificate in Cybersecurity", payload.Program.Name)
	assert.Equal(t, 18, payload.Program.TotalCredits)
	assert.Equal(t, "hybrid", payload.Program.DeliveryMode)
}

func TestDispatch_GetProgramDetailsMissingIsNull(t *testing.T) {
	d := NewDispatcher(fixtureStore(), nil)

	for _, id := range []int{999999, 900} {
		result := dispatchCall(t, d, ToolGetProgramDetails, fmt.Sprintf(`{"program_id":%d}`, id))

		var payload struct {
			Program *ProgramDetails `json:"program"`
		}
		require.NoError(t, json.Unmarshal([]byte(result.Content), &payload))
		assert.Nil(t, payload.Program, "program %d should not resolve", id)
	}
}

func TestDispatch_EstimateCost(t *testing.T) {
	d := NewDispatcher(fixtureStore(), nil)

	result := dispatchCall(t, d, ToolEstimateCost, `{"program_id":101,"remaining_credits":30}`)

	var payload struct {
		Estimate CostEstimate `json:"estimate"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Content), &payload))
	assert.Equal(t, 2, payload.Estimate.EstimatedTerms)
	assert.Equal(t, 3000.0, payload.Estimate.Tuition)
	assert.Equal(t, 400.0, payload.Estimate.Fees)
	assert.Equal(t, 200.0, payload.Estimate.Books)
	assert.Equal(t, 3600.0, payload.Estimate.Total)
}

func TestDispatch_UnknownTool(t *testing.T) {
	d := NewDispatcher(fixtureStore(), nil)

	_, err := d.Dispatch(llm.ToolCall{ID: "call_1", Name: "dropTables"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTool))
}

func TestDispatch_MalformedArguments(t *testing.T) {
	d := NewDispatcher(fixtureStore(), nil)

	result, err := d.Dispatch(llm.ToolCall{ID: "call_1", Name: ToolSearchPrograms, Arguments: `{"goalId":`})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "invalid searchPrograms arguments")
}
