package domain

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PreprocessSuite struct {
	suite.Suite
}

func TestPreprocessSuite(t *testing.T) {
	suite.Run(t, new(PreprocessSuite))
}

func (s *PreprocessSuite) TestFinalAcuityAddsNewAdmit() {
	in := []Patient{{PatientID: "p1", BaseAcuity: 5, NewAdmit: true}}
	out := Preprocess(in)
	s.Equal(6, out[0].FinalAcuity)
}

func (s *PreprocessSuite) TestFinalAcuityAddsMultipleChemo() {
	in := []Patient{{PatientID: "p1", BaseAcuity: 5, ChemoFrequency: "multiple"}}
	out := Preprocess(in)
	s.Equal(6, out[0].FinalAcuity)
}

func (s *PreprocessSuite) TestFinalAcuityCapsAtTen() {
	in := []Patient{{PatientID: "p1", BaseAcuity: 10, NewAdmit: true, ChemoFrequency: "multiple"}}
	out := Preprocess(in)
	s.Equal(10, out[0].FinalAcuity)
}

func (s *PreprocessSuite) TestDoesNotMutateInput() {
	in := []Patient{{PatientID: "p1", BaseAcuity: 5, NewAdmit: true}}
	_ = Preprocess(in)
	s.Equal(0, in[0].FinalAcuity)
}

func (s *PreprocessSuite) TestVesicantRequiresPeripheralLine() {
	in := []Patient{{PatientID: "p1", CentralLine: "peripheral", ChemoType: "iv"}}
	out := Preprocess(in)
	s.True(out[0].Vesicant)
}

func (s *PreprocessSuite) TestVesicantFalseWithCentralLine() {
	in := []Patient{{PatientID: "p1", CentralLine: "picc", ChemoType: "iv"}}
	out := Preprocess(in)
	s.False(out[0].Vesicant)
}

func (s *PreprocessSuite) TestVesicantFromMedicationList() {
	in := []Patient{{PatientID: "p1", CentralLine: "peripheral", ChemoType: "none", IVMedications: "Vasopressors, fluids"}}
	out := Preprocess(in)
	s.True(out[0].Vesicant)
}
