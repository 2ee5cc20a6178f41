package domain

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ScoreSuite struct {
	suite.Suite
	weights Weights
}

func TestScoreSuite(t *testing.T) {
	suite.Run(t, new(ScoreSuite))
}

func (s *ScoreSuite) SetupTest() {
	s.weights = DefaultWeights()
}

func (s *ScoreSuite) TestContinuityBonus() {
	base := Nurse{NurseID: "N001", SkillLevel: 2}
	withContinuity := Patient{PatientID: "p1", LastNurse: "N001", FinalAcuity: 5}
	withoutContinuity := Patient{PatientID: "p2", LastNurse: "N002", FinalAcuity: 5}

	s.Greater(Score(base, withContinuity, s.weights), Score(base, withoutContinuity, s.weights))
}

func (s *ScoreSuite) TestGeographyExactPodBeatsAdjacent() {
	n := Nurse{NurseID: "N001", PodPref: "A"}
	exact := Patient{PatientID: "p1", Pod: "A", FinalAcuity: 5}
	adjacent := Patient{PatientID: "p2", Pod: "B", FinalAcuity: 5}
	s.Greater(Score(n, exact, s.weights), Score(n, adjacent, s.weights))
}

func (s *ScoreSuite) TestSkillThreeHighAcuityIsBestFit() {
	n3 := Nurse{NurseID: "N001", SkillLevel: 3}
	n1 := Nurse{NurseID: "N002", SkillLevel: 1}
	p := Patient{PatientID: "p1", FinalAcuity: 9}
	s.Greater(Score(n3, p, s.weights), Score(n1, p, s.weights))
}

func (s *ScoreSuite) TestVesicantRewardsSkillThree() {
	n3 := Nurse{NurseID: "N001", SkillLevel: 3}
	n2 := Nurse{NurseID: "N002", SkillLevel: 2}
	p := Patient{PatientID: "p1", FinalAcuity: 5, Vesicant: true}
	s.Greater(Score(n3, p, s.weights), Score(n2, p, s.weights))
}

func (s *ScoreSuite) TestNewAdmitRewardsExperiencedNurse() {
	n2 := Nurse{NurseID: "N001", SkillLevel: 2}
	n1 := Nurse{NurseID: "N002", SkillLevel: 1}
	p := Patient{PatientID: "p1", FinalAcuity: 5, NewAdmit: true}
	s.Greater(Score(n2, p, s.weights), Score(n1, p, s.weights))
}

func (s *ScoreSuite) TestWeightMonotonicityOnContinuity() {
	n := Nurse{NurseID: "N001", SkillLevel: 2}
	p := Patient{PatientID: "p1", LastNurse: "N001", FinalAcuity: 5}

	low := s.weights
	low.Continuity = 0.1
	high := s.weights
	high.Continuity = 0.9

	s.Greater(Score(n, p, high), Score(n, p, low))
}
