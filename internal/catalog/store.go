package catalog

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// Seed file names within the catalog data directory.
const (
	programsFile  = "programs_mdc.csv"
	goalsFile     = "career_goals.json"
	mappingsFile  = "goal_program_map_mdc.json"
	costModelFile = "cost_model.json"
)

// Store is a read-only repository over the catalog seed files. It is built
// once by Load, is immutable afterwards, and is safe for concurrent readers.
// No component mutates it; hot reload is owned by the surrounding service.
type Store struct {
	programs  []Program
	valid     []Program
	validByID map[int]Program
	byID      map[int]Program
	goals     []Goal
	goalByID  map[int]Goal
	mappings  []FitMapping
	costModel CostModel
}

// NewStore builds an in-memory store from already-materialized records.
// Intended for tests and embedded fixtures; Load is the file-backed path.
func NewStore(programs []Program, goals []Goal, mappings []FitMapping, costModel CostModel) *Store {
	s := &Store{
		programs:  programs,
		goals:     goals,
		mappings:  mappings,
		costModel: costModel,
	}
	s.index()
	return s
}

// Load reads the four seed files from dir and builds a store. A missing or
// unreadable seed file is fatal for the store as a whole.
func Load(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	programs, err := loadPrograms(filepath.Join(dir, programsFile), logger)
	if err != nil {
		return nil, err
	}

	goals, err := loadGoals(filepath.Join(dir, goalsFile))
	if err != nil {
		return nil, err
	}

	mappings, err := loadMappings(filepath.Join(dir, mappingsFile), logger)
	if err != nil {
		return nil, err
	}

	costModel, err := loadCostModel(filepath.Join(dir, costModelFile))
	if err != nil {
		return nil, err
	}

	s := NewStore(programs, goals, mappings, costModel)
	logger.Info("catalog loaded",
		"programs", len(s.programs),
		"valid_programs", len(s.valid),
		"goals", len(s.goals),
		"mappings", len(s.mappings))
	return s, nil
}

func (s *Store) index() {
	s.byID = make(map[int]Program, len(s.programs))
	s.validByID = make(map[int]Program)
	s.valid = s.valid[:0]
	for _, p := range s.programs {
		s.byID[p.ID] = p
		if IsValidProgram(p) {
			s.valid = append(s.valid, p)
			s.validByID[p.ID] = p
		}
	}

	s.goalByID = make(map[int]Goal, len(s.goals))
	for _, g := range s.goals {
		s.goalByID[g.ID] = g
	}
}

// Programs returns every catalog row, including rows the validity filter rejects.
func (s *Store) Programs() []Program {
	return s.programs
}

// ValidPrograms returns the rows accepted by the validity filter, in catalog order.
func (s *Store) ValidPrograms() []Program {
	return s.valid
}

// ProgramByID looks up any catalog row by id.
func (s *Store) ProgramByID(id int) (Program, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// ValidProgramByID looks up a row that also passed the validity filter.
func (s *Store) ValidProgramByID(id int) (Program, bool) {
	p, ok := s.validByID[id]
	return p, ok
}

// Goals returns all career goals.
func (s *Store) Goals() []Goal {
	return s.goals
}

// GoalByID looks up a goal by id.
func (s *Store) GoalByID(id int) (Goal, bool) {
	g, ok := s.goalByID[id]
	return g, ok
}

// Mappings returns all goal-to-program fit mappings.
func (s *Store) Mappings() []FitMapping {
	return s.mappings
}

// CostModel returns the pricing configuration.
func (s *Store) CostModel() CostModel {
	return s.costModel
}

func loadPrograms(path string, logger *slog.Logger) ([]Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError(types.CATALOG_LOAD_FAILED, "open "+filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, types.WrapError(types.CATALOG_PARSE_FAILED, "read csv header", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var programs []Program
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, types.WrapError(types.CATALOG_PARSE_FAILED, "read csv row", err)
		}

		id, err := strconv.Atoi(field(row, "id"))
		if err != nil {
			logger.Warn("skipping program row with non-numeric id", "raw", field(row, "id"))
			continue
		}

		// Unparseable credit counts become zero; the validity filter
		// rejects the row later instead of the loader failing here.
		credits, _ := strconv.Atoi(field(row, "total_credits"))

		programs = append(programs, Program{
			ID:           id,
			Name:         field(row, "name"),
			AwardLevel:   field(row, "award_level"),
			TotalCredits: credits,
			DeliveryMode: field(row, "delivery_mode"),
			Campuses:     field(row, "campuses"),
			URL:          field(row, "url"),
			Tags:         field(row, "tags"),
			Description:  field(row, "description"),
		})
	}

	return programs, nil
}

func loadGoals(path string) ([]Goal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.CATALOG_LOAD_FAILED, "open "+filepath.Base(path), err)
	}

	var goals []Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, types.WrapError(types.CATALOG_PARSE_FAILED, "parse "+filepath.Base(path), err)
	}
	return goals, nil
}

// rawMapping tolerates loosely typed seed rows: ids may arrive as numbers or
// numeric strings, and fit_strength may be absent or mangled.
type rawMapping struct {
	GoalID      any    `json:"goal_id"`
	ProgramID   any    `json:"program_id"`
	FitStrength any    `json:"fit_strength"`
	Rationale   string `json:"rationale"`
}

func loadMappings(path string, logger *slog.Logger) ([]FitMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.CATALOG_LOAD_FAILED, "open "+filepath.Base(path), err)
	}

	var raw []rawMapping
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, types.WrapError(types.CATALOG_PARSE_FAILED, "parse "+filepath.Base(path), err)
	}

	mappings := make([]FitMapping, 0, len(raw))
	for _, m := range raw {
		goalID, ok := coerceInt(m.GoalID)
		if !ok {
			logger.Warn("skipping mapping with non-numeric goal_id")
			continue
		}
		programID, ok := coerceInt(m.ProgramID)
		if !ok {
			logger.Warn("skipping mapping with non-numeric program_id", "goal_id", goalID)
			continue
		}

		fit, ok := coerceInt(m.FitStrength)
		if !ok {
			fit = DefaultFitStrength
		}

		mappings = append(mappings, FitMapping{
			GoalID:      goalID,
			ProgramID:   programID,
			FitStrength: fit,
			Rationale:   m.Rationale,
		})
	}

	return mappings, nil
}

// costModelRaw uses pointers so missing required fields are detectable;
// absence of a required field is a load-time error, not a runtime one.
type costModelRaw struct {
	Institution          *string            `json:"institution"`
	InStatePerCredit     *float64           `json:"in_state_per_credit"`
	OutStatePerCredit    *float64           `json:"out_state_per_credit"`
	TechFeePerCredit     *float64           `json:"tech_fee_per_credit"`
	TermFeeFlat          *float64           `json:"term_fee_flat"`
	BookAllowancePerTerm *float64           `json:"book_allowance_per_term"`
	AssumptionsNote      string             `json:"assumptions_note"`
	ProgramOverrides     map[string]float64 `json:"program_overrides"`
}

func loadCostModel(path string) (CostModel, error) {
	var zero CostModel

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, types.WrapError(types.CATALOG_LOAD_FAILED, "open "+filepath.Base(path), err)
	}

	var raw costModelRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return zero, types.WrapError(types.CATALOG_PARSE_FAILED, "parse "+filepath.Base(path), err)
	}

	required := map[string]bool{
		"institution":             raw.Institution != nil,
		"in_state_per_credit":     raw.InStatePerCredit != nil,
		"out_state_per_credit":    raw.OutStatePerCredit != nil,
		"tech_fee_per_credit":     raw.TechFeePerCredit != nil,
		"term_fee_flat":           raw.TermFeeFlat != nil,
		"book_allowance_per_term": raw.BookAllowancePerTerm != nil,
	}
	for name, present := range required {
		if !present {
			return zero, types.NewError(types.COSTMODEL_INVALID, "cost model missing required field "+name)
		}
	}

	overrides := raw.ProgramOverrides
	if overrides == nil {
		overrides = map[string]float64{}
	}

	cm := CostModel{
		Institution:          *raw.Institution,
		InStatePerCredit:     *raw.InStatePerCredit,
		OutStatePerCredit:    *raw.OutStatePerCredit,
		TechFeePerCredit:     *raw.TechFeePerCredit,
		TermFeeFlat:          *raw.TermFeeFlat,
		BookAllowancePerTerm: *raw.BookAllowancePerTerm,
		AssumptionsNote:      raw.AssumptionsNote,
		ProgramOverrides:     overrides,
	}
	if err := cm.Validate(); err != nil {
		return zero, err
	}
	return cm, nil
}

// coerceInt accepts the numeric shapes a loosely typed seed row can carry.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
