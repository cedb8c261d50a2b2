package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
	"github.com/gabrielc1317/mdc-pathfinder/internal/recommend"
	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"goals": s.store.Goals()})
}

// handleListPrograms returns valid catalog programs, optionally filtered to a
// comma-separated ids query. Unknown ids are skipped, not errors.
func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	idsParam := strings.TrimSpace(r.URL.Query().Get("ids"))
	if idsParam == "" {
		s.writeJSON(w, http.StatusOK, map[string]any{"programs": s.store.ValidPrograms()})
		return
	}

	var programs []catalog.Program
	for _, raw := range strings.Split(idsParam, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			s.writeError(w, types.NewError(types.REQUEST_INVALID,
				fmt.Sprintf("invalid program id: %q", raw)))
			return
		}
		if p, ok := s.store.ValidProgramByID(id); ok {
			programs = append(programs, p)
		}
	}
	if programs == nil {
		programs = []catalog.Program{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"programs": programs})
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, types.NewError(types.REQUEST_INVALID, "program id must be an integer"))
		return
	}

	p, ok := s.store.ValidProgramByID(id)
	if !ok {
		s.writeError(w, types.NewError(types.PROGRAM_NOT_FOUND,
			fmt.Sprintf("program %d not found", id)))
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// handleRecommendations is the deterministic path.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRecommendRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.recommender.Recommend(req))
}

// handleRecommendationsAI is the AI-assisted path. It shares the request
// shape with the deterministic path and degrades to it on any failure, so
// this endpoint never returns worse than /recommendations.
func (s *Server) handleRecommendationsAI(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRecommendRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.orchestrator.Recommend(r.Context(), req))
}

func (s *Server) decodeRecommendRequest(r *http.Request) (recommend.Request, error) {
	var req recommend.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, types.WrapError(types.REQUEST_INVALID, "malformed request body", err)
	}
	if req.GoalID <= 0 {
		return req, types.NewError(types.REQUEST_INVALID, "goalId is required and must be positive")
	}
	return req, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := types.ErrorCode("INTERNAL")
	status := http.StatusInternalServerError

	var pfErr *types.PathfinderError
	if errors.As(err, &pfErr) {
		code = pfErr.Code
		status = statusForCode(pfErr.Code)
	}

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = err.Error()
	s.writeJSON(w, status, body)
}

func statusForCode(code types.ErrorCode) int {
	switch code {
	case types.REQUEST_INVALID:
		return http.StatusBadRequest
	case types.PROGRAM_NOT_FOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
