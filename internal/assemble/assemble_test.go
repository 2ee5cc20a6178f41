package assemble

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"bmtoptimizer/internal/domain"
)

type AssembleSuite struct {
	suite.Suite
}

func TestAssembleSuite(t *testing.T) {
	suite.Run(t, new(AssembleSuite))
}

func (s *AssembleSuite) nurses() []domain.Nurse {
	return []domain.Nurse{
		{NurseID: "N001", Name: "Johnson, Sarah", MaxPatients: 4},
		{NurseID: "N002", Name: "Martinez, Lisa", MaxPatients: 4},
	}
}

func (s *AssembleSuite) patients() []domain.Patient {
	return []domain.Patient{
		{PatientID: "p1", FinalAcuity: 8, ChemoType: "iv", Vesicant: true, LastNurse: "N001", NewAdmit: true},
		{PatientID: "p2", FinalAcuity: 5, ChemoType: "oral"},
		{PatientID: "p3", FinalAcuity: 3, ChemoType: "none"},
	}
}

func (s *AssembleSuite) TestOmitsNursesWithNoAssignments() {
	result := Build(s.nurses(), s.patients(), []domain.Assignment{
		{NurseID: "N001", PatientID: "p1"},
	}, 0, 1.5, 10, false, 0)

	s.Len(result.Nurses, 1)
	s.Equal("N001", result.Nurses[0].NurseID)
}

func (s *AssembleSuite) TestPerNurseRollup() {
	result := Build(s.nurses(), s.patients(), []domain.Assignment{
		{NurseID: "N001", PatientID: "p1"},
		{NurseID: "N001", PatientID: "p2"},
	}, 2, 3.0, 15, false, 0)

	s.Require().Len(result.Nurses, 1)
	n := result.Nurses[0]
	s.Equal(2, n.PatientCount)
	s.Equal(13, n.TotalAcuity)
	s.Equal(1, n.IVChemoCount)
	s.Equal(1, n.VesicantCount)
	s.Equal(1, n.ContinuityCount)
	s.Equal(1, n.NewAdmitCount)
	s.Equal("ideal", n.RatioStatus)
}

func (s *AssembleSuite) TestRatioStatusMaximumAtFour() {
	nurses := []domain.Nurse{{NurseID: "N001", MaxPatients: 4}}
	patients := []domain.Patient{
		{PatientID: "p1"}, {PatientID: "p2"}, {PatientID: "p3"}, {PatientID: "p4"},
	}
	assignments := []domain.Assignment{
		{NurseID: "N001", PatientID: "p1"}, {NurseID: "N001", PatientID: "p2"},
		{NurseID: "N001", PatientID: "p3"}, {NurseID: "N001", PatientID: "p4"},
	}
	result := Build(nurses, patients, assignments, 0, 0, 0, false, 0)
	s.Equal("maximum", result.Nurses[0].RatioStatus)
}

func (s *AssembleSuite) TestUnitStats() {
	result := Build(s.nurses(), s.patients(), []domain.Assignment{
		{NurseID: "N001", PatientID: "p1"},
		{NurseID: "N002", PatientID: "p2"},
		{NurseID: "N002", PatientID: "p3"},
	}, 4, 9.5, 120, true, 1)

	s.Equal(3, result.Stats.TotalPatients)
	s.Equal(2, result.Stats.NursesUsed)
	s.Equal("3/20", result.Stats.UnitCapacityUsed)
	s.InDelta(15.0, result.Stats.UnitCapacityPercentage, 1e-9)
	s.Equal(4, result.Stats.BlockedAssignments)
	s.InDelta(9.5, result.Stats.ObjectiveValue, 1e-9)
	s.Equal(int64(120), result.Stats.SolutionTimeMS)
	s.True(result.Stats.Fallback)
	s.Equal(1, result.Stats.UnassignedPatients)
	s.NotEmpty(result.Stats.GeneratedAt)
}

func (s *AssembleSuite) TestWorkloadVariance() {
	nurses := []domain.Nurse{{NurseID: "N001", MaxPatients: 4}, {NurseID: "N002", MaxPatients: 4}}
	patients := []domain.Patient{
		{PatientID: "p1", FinalAcuity: 8},
		{PatientID: "p2", FinalAcuity: 2},
	}
	assignments := []domain.Assignment{
		{NurseID: "N001", PatientID: "p1"},
		{NurseID: "N002", PatientID: "p2"},
	}
	result := Build(nurses, patients, assignments, 0, 0, 0, false, 0)
	s.Equal(6, result.Stats.WorkloadVariance)
}
