package domain

import "strings"

// Admissible reports whether a (nurse, patient) pair is admissible under
// the hard safety and certification rules. An inadmissible pair MUST
// receive decision value 0 in the MILP and MUST be skipped by the greedy
// fallback.
func Admissible(n Nurse, p Patient) bool {
	ok, _ := AdmissibilityReason(n, p)
	return ok
}

// AdmissibilityReason is like Admissible but also names the first rule
// that fails, for diagnostics and the blocked-assignment count. The empty
// string is returned alongside true when the pair is admissible.
func AdmissibilityReason(n Nurse, p Patient) (bool, string) {
	if strings.EqualFold(p.ChemoType, "iv") && !n.IVCert {
		return false, "iv_certification"
	}
	if p.Vesicant && n.SkillLevel < 2 {
		return false, "vesicant_skill"
	}
	if p.FinalAcuity >= 8 && n.SkillLevel < 2 {
		return false, "high_acuity_skill"
	}
	if p.NewAdmit && n.SkillLevel < 2 {
		return false, "new_admit_skill"
	}
	if strings.EqualFold(p.CMVStatus, "positive") && strings.EqualFold(n.PregnancyStatus, "Y") {
		return false, "cmv_exclusion"
	}
	return true, ""
}
