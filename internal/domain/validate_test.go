package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func (s *ValidateSuite) validNurse(id string) NurseInput {
	return NurseInput{NurseID: strPtr(id), Name: strPtr("Nurse " + id), SkillLevel: intPtr(2), IVCert: strPtr("Y"), MaxPatients: intPtr(4)}
}

func (s *ValidateSuite) validPatient(id string) PatientInput {
	return PatientInput{PatientID: strPtr(id), Initials: strPtr("X.X."), BaseAcuity: intPtr(4), ChemoType: strPtr("none")}
}

func (s *ValidateSuite) TestSampleRequestIsValid() {
	nurses, patients, err := Validate(SampleRequest())
	s.Nil(err)
	s.Len(nurses, 4)
	s.Len(patients, 6)
}

func (s *ValidateSuite) TestMissingRequiredFieldReported() {
	req := OptimizeRequest{
		Nurses:   []NurseInput{{Name: strPtr("No ID")}},
		Patients: []PatientInput{s.validPatient("p1")},
	}
	_, _, err := Validate(req)
	s.Require().NotNil(err)
	s.Contains(err.Error(), "nurse_id")
}

func (s *ValidateSuite) TestUnitOverCapacity() {
	var patients []PatientInput
	for i := 0; i < 21; i++ {
		patients = append(patients, s.validPatient(fmt.Sprintf("p%d", i)))
	}
	req := OptimizeRequest{
		Nurses:   []NurseInput{s.validNurse("N001")},
		Patients: patients,
	}
	_, _, err := Validate(req)
	s.Require().NotNil(err)
	s.Contains(err.Error(), "unit over capacity")
}

func (s *ValidateSuite) TestInsufficientIVStaffing() {
	ivNo := "N"
	req := OptimizeRequest{
		Nurses: []NurseInput{
			{NurseID: strPtr("N001"), Name: strPtr("A"), SkillLevel: intPtr(2), IVCert: &ivNo, MaxPatients: intPtr(4)},
		},
		Patients: []PatientInput{
			{PatientID: strPtr("p1"), Initials: strPtr("A.A."), BaseAcuity: intPtr(4), ChemoType: strPtr("iv")},
			{PatientID: strPtr("p2"), Initials: strPtr("B.B."), BaseAcuity: intPtr(4), ChemoType: strPtr("iv")},
			{PatientID: strPtr("p3"), Initials: strPtr("C.C."), BaseAcuity: intPtr(4), ChemoType: strPtr("iv")},
		},
	}
	_, _, err := Validate(req)
	s.Require().NotNil(err)
	s.Contains(err.Error(), "Insufficient IV certified nurses")
}

func (s *ValidateSuite) TestInsufficientTotalCapacity() {
	req := OptimizeRequest{
		Nurses: []NurseInput{s.validNurse("N001")},
		Patients: []PatientInput{
			s.validPatient("p1"), s.validPatient("p2"),
			s.validPatient("p3"), s.validPatient("p4"), s.validPatient("p5"),
		},
	}
	_, _, err := Validate(req)
	s.Require().NotNil(err)
	s.Contains(err.Error(), "insufficient total capacity")
}

func (s *ValidateSuite) TestLegacyAcuityAlias() {
	req := OptimizeRequest{
		Nurses: []NurseInput{s.validNurse("N001")},
		Patients: []PatientInput{
			{PatientID: strPtr("p1"), Initials: strPtr("A.A."), Acuity: intPtr(6), ChemoType: strPtr("none")},
		},
	}
	_, patients, err := Validate(req)
	s.Nil(err)
	s.Equal(6, patients[0].BaseAcuity)
}
