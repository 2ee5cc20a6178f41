package domain

import "math"

// Score computes the preference score for an admissible (nurse, patient)
// pair given a weight configuration. Callers must check Admissible first;
// Score does not itself enforce safety rules. Scores may be negative.
func Score(n Nurse, p Patient, w Weights) float64 {
	score := 1.0

	if n.NurseID != "" && p.LastNurse != "" && n.NurseID == p.LastNurse {
		score += 10 * w.Continuity
	}

	score += geographyBonus(n, p) * w.Geography

	score += skillAcuityFit(n, p) * w.Skill

	if p.Vesicant && n.SkillLevel == 3 {
		score += 5 * w.Skill
	}
	if p.NewAdmit && n.SkillLevel >= 2 {
		score += 3 * w.Skill
	}

	return score
}

func geographyBonus(n Nurse, p Patient) float64 {
	if n.PodPref == "" || p.Pod == "" {
		return 0
	}
	if n.PodPref == p.Pod {
		return 8
	}
	if len(n.PodPref) == 1 && len(p.Pod) == 1 {
		diff := int(n.PodPref[0]) - int(p.Pod[0])
		if diff == 1 || diff == -1 {
			return 4
		}
	}
	return 0
}

// skillAcuityFit implements the exactly-one-branch skill/acuity table from
// the later (1-10 acuity scale) revision. The first matching branch fires;
// unmatched pairs fall through to the distance penalty.
func skillAcuityFit(n Nurse, p Patient) float64 {
	acuity := p.FinalAcuity
	switch {
	case n.SkillLevel == 3 && acuity >= 8:
		return 12
	case n.SkillLevel == 3 && acuity >= 5 && acuity <= 7:
		return 10
	case n.SkillLevel == 2 && acuity >= 4 && acuity <= 8:
		return 10
	case n.SkillLevel == 1 && acuity <= 5:
		return 8
	default:
		return -math.Abs(float64(3*n.SkillLevel-acuity))
	}
}
