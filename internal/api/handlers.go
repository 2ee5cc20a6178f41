package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bmtoptimizer/internal/assemble"
	"bmtoptimizer/internal/domain"
	"bmtoptimizer/internal/solver"
)

const serviceVersion = "1.0.0"

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   "bmt-optimizer",
		Version:   serviceVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) testHandler(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, domain.SampleRequest())
}

func (s *Server) optimizeHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMalformedRequest.Error())
		return
	}
	if req.Nurses == nil || req.Patients == nil {
		writeError(w, http.StatusBadRequest, domain.ErrMalformedRequest.Error())
		return
	}

	s.run(w, r, req)
}

// run executes the Validate -> Preprocess -> Build -> Solve ->
// (Extract | Fallback) -> Assemble pipeline shared by /optimize and /test.
func (s *Server) run(w http.ResponseWriter, r *http.Request, req domain.OptimizeRequest) {
	nurses, patients, verr := domain.Validate(req)
	if verr != nil {
		writeJSON(w, http.StatusOK, ErrorResponse{
			Error:   "Validation failed",
			Details: verr.Messages,
		})
		return
	}

	weights, err := domain.ResolveWeights(req.Config)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	patients = domain.Preprocess(patients)

	outcome := solver.Solve(r.Context(), nurses, patients, weights)

	if !outcome.Feasible {
		writeInternalError(w, domain.ErrNoFeasibleSolution)
		return
	}

	result := assemble.Build(
		nurses,
		patients,
		outcome.Assignments,
		outcome.BlockedAssignments,
		outcome.ObjectiveValue,
		outcome.SolutionTimeMS,
		outcome.Fallback,
		outcome.UnassignedPatients,
	)

	writeJSON(w, http.StatusOK, toResponse(result, outcome.Assignments))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes an ErrorResponse carrying message with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeInternalError maps a core error tag to the HTTP status dictated by
// the error-handling taxonomy, dispatching by errors.Is/errors.As rather
// than string matching, and writes the error with a timestamp.
func writeInternalError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status = http.StatusOK
	case errors.Is(err, domain.ErrMalformedRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSolverUnavailable), errors.Is(err, domain.ErrNoFeasibleSolution):
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, ErrorResponse{
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
