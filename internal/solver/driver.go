package solver

import (
	"context"
	"os"
	"sort"
	"strconv"
	"time"

	"bmtoptimizer/internal/domain"
)

// DefaultTimeLimit is the wall-clock deadline passed to the solver backend,
// per the 30-second budget in the system design. Overridable with
// SOLVER_TIME_LIMIT_MS so tests can exercise the fallback path quickly.
var DefaultTimeLimit = resolveTimeLimit()

func resolveTimeLimit() time.Duration {
	if raw := os.Getenv("SOLVER_TIME_LIMIT_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return 30 * time.Second
}

// DefaultWorkers bounds the branch-and-bound worker pool. The decision
// matrix here is tiny (at most 20 patients x ~10 nurses), so a handful of
// workers is already more than the problem can usefully parallelize.
const DefaultWorkers = 4

// Outcome is the result of either the MILP driver or the greedy fallback.
type Outcome struct {
	Assignments        []domain.Assignment
	ObjectiveValue     float64
	Optimal            bool
	Feasible           bool
	Fallback           bool
	UnassignedPatients int
	BlockedAssignments int
	SolutionTimeMS     int64
}

// Solve runs the MILP Builder & Solver Driver and, if it fails to produce
// any feasible assignment, transparently engages the greedy fallback.
// Patients must already be preprocessed (FinalAcuity/Vesicant set).
func Solve(ctx context.Context, nurses []domain.Nurse, patients []domain.Patient, weights domain.Weights) Outcome {
	return SolveWithLimits(ctx, nurses, patients, weights, DefaultTimeLimit, DefaultWorkers)
}

// SolveWithLimits is Solve with an explicit time limit and worker count,
// exposed so tests can exercise the fallback path deterministically with a
// short deadline.
func SolveWithLimits(ctx context.Context, nurses []domain.Nurse, patients []domain.Patient, weights domain.Weights, timeLimit time.Duration, workers int) Outcome {
	start := time.Now()

	p := buildProblem(nurses, patients, weights)

	cctx, cancel := context.WithTimeout(ctx, timeLimit)
	defer cancel()

	res := branchAndBound(cctx, p, workers)
	elapsed := time.Since(start)

	if !res.found {
		fb := Greedy(nurses, patients, weights)
		fb.SolutionTimeMS = elapsed.Milliseconds()
		return fb
	}

	return Outcome{
		Assignments:        extractAssignments(p, res.x),
		ObjectiveValue:      -res.objMin / domain.ScoreScale,
		Optimal:             res.optimal,
		Feasible:            true,
		BlockedAssignments:  p.blockedAssignments,
		SolutionTimeMS:      elapsed.Milliseconds(),
	}
}

func extractAssignments(p *problem, x []float64) []domain.Assignment {
	var out []domain.Assignment
	for idx, pr := range p.pairs {
		if x[idx] > 0.5 {
			out = append(out, domain.Assignment{
				NurseID:   p.nurses[pr.nurseIdx].NurseID,
				PatientID: p.patients[pr.patientIdx].PatientID,
			})
		}
	}
	return sortAssignments(out)
}

// sortAssignments applies the documented tie-breaking rule: re-sort by
// nurse_id, then by patient_id within a nurse, regardless of which path
// (solver or fallback) produced the assignment.
func sortAssignments(a []domain.Assignment) []domain.Assignment {
	sort.Slice(a, func(i, j int) bool {
		if a[i].NurseID != a[j].NurseID {
			return a[i].NurseID < a[j].NurseID
		}
		return a[i].PatientID < a[j].PatientID
	})
	return a
}
