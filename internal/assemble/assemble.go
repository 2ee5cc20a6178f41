// Package assemble turns a flat assignment list into the per-nurse and
// unit-wide rollups the transport layer serializes back to the caller.
package assemble

import (
	"fmt"
	"time"

	"bmtoptimizer/internal/domain"
)

// Build groups assignments by nurse and computes the unit-wide statistics
// described by the Result Assembler. Nurses with zero assigned patients are
// omitted from the nurse list entirely.
func Build(nurses []domain.Nurse, patients []domain.Patient, assignments []domain.Assignment, blockedAssignments int, objectiveValue float64, solutionTimeMS int64, fallback bool, unassigned int) domain.Result {
	patientByID := make(map[string]domain.Patient, len(patients))
	for _, p := range patients {
		patientByID[p.PatientID] = p
	}
	nurseByID := make(map[string]domain.Nurse, len(nurses))
	for _, n := range nurses {
		nurseByID[n.NurseID] = n
	}

	order := make([]string, 0, len(nurses))
	grouped := make(map[string][]domain.Patient)
	for _, n := range nurses {
		grouped[n.NurseID] = nil
	}
	for _, a := range assignments {
		if _, ok := grouped[a.NurseID]; !ok {
			continue
		}
		grouped[a.NurseID] = append(grouped[a.NurseID], patientByID[a.PatientID])
	}
	for _, n := range nurses {
		if len(grouped[n.NurseID]) > 0 {
			order = append(order, n.NurseID)
		}
	}

	var summaries []domain.NurseSummary
	acuityTotals := make([]int, 0, len(order))

	for _, nid := range order {
		n := nurseByID[nid]
		ps := grouped[nid]

		s := domain.NurseSummary{
			NurseID:      n.NurseID,
			Name:         n.Name,
			Role:         n.Role,
			Phone:        n.Phone,
			SkillLevel:   n.SkillLevel,
			Patients:     ps,
			PatientCount: len(ps),
		}

		for _, p := range ps {
			s.TotalAcuity += p.FinalAcuity
			if p.ChemoType == "iv" {
				s.IVChemoCount++
			}
			if p.Vesicant {
				s.VesicantCount++
			}
			if p.LastNurse == n.NurseID {
				s.ContinuityCount++
			}
			if p.NewAdmit {
				s.NewAdmitCount++
			}
		}

		if s.PatientCount >= domain.MaxRatio {
			s.RatioStatus = "maximum"
		} else {
			s.RatioStatus = "ideal"
		}

		summaries = append(summaries, s)
		acuityTotals = append(acuityTotals, s.TotalAcuity)
	}

	stats := domain.UnitStats{
		TotalPatients:       len(patients),
		NursesUsed:          len(summaries),
		BlockedAssignments:  blockedAssignments,
		ObjectiveValue:      objectiveValue,
		SolutionTimeMS:      solutionTimeMS,
		GeneratedAt:         time.Now().UTC().Format("2006-01-02 15:04:05"),
		Fallback:            fallback,
		UnassignedPatients:  unassigned,
	}
	stats.UnitCapacityUsed = formatCapacityUsed(len(assignments))
	stats.UnitCapacityPercentage = float64(len(assignments)) / float64(domain.UnitPatientCapacity) * 100

	if len(acuityTotals) > 0 {
		minA, maxA, sum := acuityTotals[0], acuityTotals[0], 0
		for _, v := range acuityTotals {
			if v < minA {
				minA = v
			}
			if v > maxA {
				maxA = v
			}
			sum += v
		}
		stats.WorkloadVariance = maxA - minA
	}

	var acuitySum, acuityCount int
	for _, p := range patients {
		acuitySum += p.FinalAcuity
		acuityCount++
	}
	if acuityCount > 0 {
		stats.AverageAcuity = float64(acuitySum) / float64(acuityCount)
	}

	for _, s := range summaries {
		switch s.RatioStatus {
		case "ideal":
			stats.IdealRatios++
		case "maximum":
			stats.MaxRatios++
		}
		stats.ContinuityPreserved += s.ContinuityCount
	}

	return domain.Result{Nurses: summaries, Stats: stats}
}

func formatCapacityUsed(assigned int) string {
	return fmt.Sprintf("%d/%d", assigned, domain.UnitPatientCapacity)
}
