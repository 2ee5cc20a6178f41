package domain

import (
	"fmt"
	"strings"
)

// Validate runs the Input Validator: structural required-field checks
// followed, only if those pass, by the §4.1 feasibility prechecks. On
// success it returns the converted nurse/patient slices ready for
// Preprocess. On failure it returns a *ValidationError carrying every
// message found; no solver invocation should follow.
func Validate(req OptimizeRequest) ([]Nurse, []Patient, *ValidationError) {
	var structural []string

	for i, n := range req.Nurses {
		structural = append(structural, missingNurseFields(i, n)...)
	}
	for i, p := range req.Patients {
		structural = append(structural, missingPatientFields(i, p)...)
	}

	if len(structural) > 0 {
		return nil, nil, NewValidationError(structural)
	}

	nurses := make([]Nurse, 0, len(req.Nurses))
	for _, n := range req.Nurses {
		nurses = append(nurses, toNurse(n))
	}
	patients := make([]Patient, 0, len(req.Patients))
	for _, p := range req.Patients {
		patients = append(patients, toPatient(p))
	}

	var feasibility []string
	feasibility = append(feasibility, checkUnitCapacity(patients)...)
	feasibility = append(feasibility, checkIVStaffing(nurses, patients)...)
	feasibility = append(feasibility, checkTotalCapacity(nurses, patients)...)

	if len(feasibility) > 0 {
		return nil, nil, NewValidationError(feasibility)
	}

	return nurses, patients, nil
}

func missingNurseFields(idx int, n NurseInput) []string {
	var msgs []string
	if n.NurseID == nil || strings.TrimSpace(*n.NurseID) == "" {
		msgs = append(msgs, fmt.Sprintf("nurse[%d]: missing required field nurse_id", idx))
	}
	if n.Name == nil || strings.TrimSpace(*n.Name) == "" {
		msgs = append(msgs, fmt.Sprintf("nurse[%d]: missing required field name", idx))
	}
	if n.SkillLevel == nil {
		msgs = append(msgs, fmt.Sprintf("nurse[%d]: missing required field skill_level", idx))
	}
	if n.IVCert == nil {
		msgs = append(msgs, fmt.Sprintf("nurse[%d]: missing required field iv_cert", idx))
	}
	if n.MaxPatients == nil {
		msgs = append(msgs, fmt.Sprintf("nurse[%d]: missing required field max_patients", idx))
	}
	return msgs
}

func missingPatientFields(idx int, p PatientInput) []string {
	var msgs []string
	if p.PatientID == nil || strings.TrimSpace(*p.PatientID) == "" {
		msgs = append(msgs, fmt.Sprintf("patient[%d]: missing required field patient_id", idx))
	}
	if p.Initials == nil || strings.TrimSpace(*p.Initials) == "" {
		msgs = append(msgs, fmt.Sprintf("patient[%d]: missing required field initials", idx))
	}
	if effectiveBaseAcuity(p) == nil {
		msgs = append(msgs, fmt.Sprintf("patient[%d]: missing required field base_acuity", idx))
	}
	if p.ChemoType == nil {
		msgs = append(msgs, fmt.Sprintf("patient[%d]: missing required field chemo_type", idx))
	}
	return msgs
}

// checkUnitCapacity enforces len(patients) <= UnitPatientCapacity.
func checkUnitCapacity(patients []Patient) []string {
	if len(patients) > UnitPatientCapacity {
		return []string{fmt.Sprintf(
			"unit over capacity: %d patients exceeds the %d-patient unit capacity",
			len(patients), UnitPatientCapacity,
		)}
	}
	return nil
}

// checkIVStaffing enforces IV-patient count <= 2 * IV-certified-nurse count.
func checkIVStaffing(nurses []Nurse, patients []Patient) []string {
	certified := 0
	for _, n := range nurses {
		if n.IVCert {
			certified++
		}
	}
	ivPatients := 0
	for _, p := range patients {
		if p.ChemoType == "iv" {
			ivPatients++
		}
	}
	if ivPatients > MaxIVChemoPerNurse*certified {
		return []string{fmt.Sprintf(
			"Insufficient IV certified nurses: %d IV chemo patients exceeds capacity of %d certified nurses (max %d each)",
			ivPatients, certified, MaxIVChemoPerNurse,
		)}
	}
	return nil
}

// checkTotalCapacity enforces sum(max_patients) >= len(patients).
func checkTotalCapacity(nurses []Nurse, patients []Patient) []string {
	sum := 0
	for _, n := range nurses {
		sum += n.MaxPatients
	}
	if sum < len(patients) {
		return []string{fmt.Sprintf(
			"insufficient total capacity: nurse max_patients sum to %d but %d patients need coverage",
			sum, len(patients),
		)}
	}
	return nil
}
