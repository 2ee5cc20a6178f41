package domain

import "strings"

// Preprocess derives FinalAcuity and Vesicant for every patient, returning
// a new slice so the caller's input is never mutated. Deterministic and
// order-independent: each patient's derived fields depend only on that
// patient's own attributes.
func Preprocess(patients []Patient) []Patient {
	out := make([]Patient, len(patients))
	for i, p := range patients {
		out[i] = preprocessOne(p)
	}
	return out
}

func preprocessOne(p Patient) Patient {
	acuity := p.BaseAcuity
	if p.NewAdmit {
		acuity++
	}
	if strings.EqualFold(p.ChemoFrequency, "multiple") {
		acuity++
	}
	if acuity > 10 {
		acuity = 10
	}
	p.FinalAcuity = acuity

	p.Vesicant = p.CentralLine == "peripheral" && (p.ChemoType == "iv" || containsVesicantMedication(p.IVMedications))

	return p
}

func containsVesicantMedication(meds string) bool {
	lower := strings.ToLower(meds)
	return strings.Contains(lower, "antiarrhythmics") || strings.Contains(lower, "vasopressors")
}
