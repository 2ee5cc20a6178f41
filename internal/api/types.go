package api

import "bmtoptimizer/internal/domain"

// OptimizeResponse is the success-shaped body for POST /optimize and
// GET /test.
type OptimizeResponse struct {
	Success     bool            `json:"success"`
	Assignments []AssignmentOut `json:"assignments"`
	Nurses      []NurseOut      `json:"nurses"`
	Stats       StatsOut        `json:"stats"`
}

// AssignmentOut is one flat (nurse, patient) pairing in the response.
type AssignmentOut struct {
	NurseID   string `json:"nurse_id"`
	PatientID string `json:"patient_id"`
}

// NurseOut is the per-nurse rollup emitted alongside the flat assignment
// list, so a caller does not have to re-derive groupings client-side.
type NurseOut struct {
	NurseID         string   `json:"nurse_id"`
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	Phone           string   `json:"phone"`
	SkillLevel      int      `json:"skill_level"`
	PatientIDs      []string `json:"patient_ids"`
	PatientCount    int      `json:"patient_count"`
	TotalAcuity     int      `json:"total_acuity"`
	IVChemoCount    int      `json:"iv_chemo_count"`
	VesicantCount   int      `json:"vesicant_count"`
	ContinuityCount int      `json:"continuity_count"`
	NewAdmitCount   int      `json:"new_admit_count"`
	RatioStatus     string   `json:"ratio_status"`
}

// StatsOut is the unit-wide rollup.
type StatsOut struct {
	TotalPatients          int     `json:"total_patients"`
	NursesUsed             int     `json:"nurses_used"`
	UnitCapacityUsed       string  `json:"unit_capacity_used"`
	UnitCapacityPercentage float64 `json:"unit_capacity_percentage"`
	WorkloadVariance       int     `json:"workload_variance"`
	AverageAcuity          float64 `json:"average_acuity"`
	IdealRatios            int     `json:"ideal_ratios"`
	MaxRatios              int     `json:"max_ratios"`
	ContinuityPreserved    int     `json:"continuity_preserved"`
	BlockedAssignments     int     `json:"blocked_assignments"`
	ObjectiveValue         float64 `json:"objective_value"`
	SolutionTimeMS         int64   `json:"solution_time_ms"`
	GeneratedAt            string  `json:"generated_at"`
	Fallback               bool    `json:"fallback"`
	UnassignedPatients     int     `json:"unassigned_patients"`
}

// ErrorResponse is the shared error envelope for validation, malformed
// input, and internal failures.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Details   []string `json:"details,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// HealthResponse is the GET / body.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func toResponse(result domain.Result, assignments []domain.Assignment) OptimizeResponse {
	out := OptimizeResponse{
		Success:     true,
		Assignments: make([]AssignmentOut, 0, len(assignments)),
		Nurses:      make([]NurseOut, 0, len(result.Nurses)),
	}

	for _, a := range assignments {
		out.Assignments = append(out.Assignments, AssignmentOut{NurseID: a.NurseID, PatientID: a.PatientID})
	}

	for _, n := range result.Nurses {
		ids := make([]string, 0, len(n.Patients))
		for _, p := range n.Patients {
			ids = append(ids, p.PatientID)
		}
		out.Nurses = append(out.Nurses, NurseOut{
			NurseID:         n.NurseID,
			Name:            n.Name,
			Role:            n.Role,
			Phone:           n.Phone,
			SkillLevel:      n.SkillLevel,
			PatientIDs:      ids,
			PatientCount:    n.PatientCount,
			TotalAcuity:     n.TotalAcuity,
			IVChemoCount:    n.IVChemoCount,
			VesicantCount:   n.VesicantCount,
			ContinuityCount: n.ContinuityCount,
			NewAdmitCount:   n.NewAdmitCount,
			RatioStatus:     n.RatioStatus,
		})
	}

	s := result.Stats
	out.Stats = StatsOut{
		TotalPatients:          s.TotalPatients,
		NursesUsed:             s.NursesUsed,
		UnitCapacityUsed:       s.UnitCapacityUsed,
		UnitCapacityPercentage: s.UnitCapacityPercentage,
		WorkloadVariance:       s.WorkloadVariance,
		AverageAcuity:          s.AverageAcuity,
		IdealRatios:            s.IdealRatios,
		MaxRatios:              s.MaxRatios,
		ContinuityPreserved:    s.ContinuityPreserved,
		BlockedAssignments:     s.BlockedAssignments,
		ObjectiveValue:         s.ObjectiveValue,
		SolutionTimeMS:         s.SolutionTimeMS,
		GeneratedAt:            s.GeneratedAt,
		Fallback:               s.Fallback,
		UnassignedPatients:     s.UnassignedPatients,
	}

	return out
}
