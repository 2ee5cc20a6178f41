package solver

import (
	"math"
	"sort"

	"bmtoptimizer/internal/domain"
)

// Greedy is the deterministic fallback used when the MILP driver returns
// neither an optimal nor a feasible incumbent within the time limit. It
// reuses the Constraint Oracle and Score Function so the two paths never
// disagree on preference order.
func Greedy(nurses []domain.Nurse, patients []domain.Patient, weights domain.Weights) Outcome {
	order := make([]int, len(patients))
	for i := range patients {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return patients[order[a]].FinalAcuity > patients[order[b]].FinalAcuity
	})

	counts := make([]int, len(nurses))
	ivCounts := make([]int, len(nurses))
	acuityLoad := make([]int, len(nurses))

	var assignments []domain.Assignment
	totalAssigned := 0
	unassigned := 0
	objective := 0.0

	for _, pi := range order {
		p := patients[pi]

		if totalAssigned >= domain.UnitPatientCapacity {
			unassigned++
			continue
		}

		best := -1
		bestScore := math.Inf(-1)
		for ni, n := range nurses {
			if !domain.Admissible(n, p) {
				continue
			}
			if counts[ni] >= n.MaxPatients {
				continue
			}
			if p.ChemoType == "iv" && ivCounts[ni] >= domain.MaxIVChemoPerNurse {
				continue
			}
			s := domain.Score(n, p, weights) - domain.FallbackWorkloadPenalty*float64(acuityLoad[ni])
			if s > bestScore {
				bestScore = s
				best = ni
			}
		}

		if best == -1 {
			unassigned++
			continue
		}

		assignments = append(assignments, domain.Assignment{
			NurseID:   nurses[best].NurseID,
			PatientID: p.PatientID,
		})
		counts[best]++
		acuityLoad[best] += p.FinalAcuity
		if p.ChemoType == "iv" {
			ivCounts[best]++
		}
		totalAssigned++
		objective += domain.Score(nurses[best], p, weights)
	}

	return Outcome{
		Assignments:        sortAssignments(assignments),
		ObjectiveValue:      objective,
		Optimal:             false,
		Feasible:            len(assignments) > 0,
		Fallback:            true,
		UnassignedPatients:  unassigned,
		BlockedAssignments:  countBlocked(nurses, patients),
	}
}
