package domain

// strPtr/intPtr are small helpers for building the pointer-typed Input
// structs inline, used by SampleRequest below and by tests.
func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SampleRequest reproduces the canned roster/census the original source's
// /test route exercised, so GET /test can run the exact same scenario
// through the full pipeline instead of a hand-rolled response.
func SampleRequest() OptimizeRequest {
	ivY := "Y"
	ivN := "N"
	iv := "iv"
	oral := "oral"
	none := "none"

	return OptimizeRequest{
		Nurses: []NurseInput{
			{NurseID: strPtr("N001"), Name: strPtr("Johnson, Sarah"), SkillLevel: intPtr(3), IVCert: &ivY, MaxPatients: intPtr(4), Phone: "+1234567890"},
			{NurseID: strPtr("N002"), Name: strPtr("Martinez, Lisa"), SkillLevel: intPtr(2), IVCert: &ivY, MaxPatients: intPtr(4), Phone: "+1234567891"},
			{NurseID: strPtr("N003"), Name: strPtr("Chen, Michael"), SkillLevel: intPtr(3), IVCert: &ivY, MaxPatients: intPtr(4), Phone: "+1234567892"},
			{NurseID: strPtr("N004"), Name: strPtr("Brown, James"), SkillLevel: intPtr(2), IVCert: &ivN, MaxPatients: intPtr(4), Phone: "+1234567893"},
		},
		Patients: []PatientInput{
			{PatientID: strPtr("301A"), Initials: strPtr("J.D."), BaseAcuity: intPtr(8), ChemoType: &iv, LastNurse: "N001"},
			{PatientID: strPtr("302A"), Initials: strPtr("M.K."), BaseAcuity: intPtr(5), ChemoType: &oral, LastNurse: "N001"},
			{PatientID: strPtr("303A"), Initials: strPtr("R.L."), BaseAcuity: intPtr(3), ChemoType: &none, LastNurse: "N004"},
			{PatientID: strPtr("304A"), Initials: strPtr("S.B."), BaseAcuity: intPtr(6), ChemoType: &iv, LastNurse: "N002"},
			{PatientID: strPtr("305B"), Initials: strPtr("T.M."), BaseAcuity: intPtr(9), ChemoType: &iv, LastNurse: "N003"},
			{PatientID: strPtr("306B"), Initials: strPtr("K.W."), BaseAcuity: intPtr(4), ChemoType: &oral, LastNurse: "N002"},
		},
	}
}
