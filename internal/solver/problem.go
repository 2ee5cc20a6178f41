// Package solver builds and solves the 0/1 assignment program described by
// the constraint oracle and score function, falling back to a greedy
// heuristic when the mixed-integer solver cannot produce a timely answer.
package solver

import (
	"gonum.org/v1/gonum/mat"

	"bmtoptimizer/internal/domain"
)

// pair identifies one (nurse, patient) decision variable by index into the
// caller's nurse/patient slices.
type pair struct {
	nurseIdx   int
	patientIdx int
}

// problem is the standard-form LP relaxation of the assignment MILP:
// minimize c^T x subject to A x = b, x >= 0. Binary x[i,j] columns come
// first, followed by continuous excess_i columns, followed by slack
// columns introduced to turn each inequality into an equality.
type problem struct {
	nurses   []domain.Nurse
	patients []domain.Patient
	weights  domain.Weights

	pairs     []pair     // admissible pairs, column order numX
	xColumn   map[pair]int
	excessCol []int // indexed by nurse index

	numX      int
	numCols   int
	A         *mat.Dense
	b         []float64
	c         []float64

	blockedAssignments int
}

// buildProblem assembles the baseline LP relaxation (no branch-and-bound
// fixing rows yet). Preprocessed patients (FinalAcuity/Vesicant set) are
// expected.
func buildProblem(nurses []domain.Nurse, patients []domain.Patient, weights domain.Weights) *problem {
	p := &problem{
		nurses:   nurses,
		patients: patients,
		weights:  weights,
		xColumn:  make(map[pair]int),
	}

	// Admissible pairs become decision variables; inadmissible pairs are
	// simply never created, which is equivalent to fixing them at 0. They
	// are counted below for blocked_assignments, which the Result Assembler
	// reports.
	for i, n := range nurses {
		for j, pt := range patients {
			if domain.Admissible(n, pt) {
				pr := pair{nurseIdx: i, patientIdx: j}
				p.xColumn[pr] = len(p.pairs)
				p.pairs = append(p.pairs, pr)
			}
		}
	}
	p.numX = len(p.pairs)
	p.blockedAssignments = countBlocked(nurses, patients)

	p.excessCol = make([]int, len(nurses))
	for i := range nurses {
		p.excessCol[i] = p.numX + i
	}
	firstSlack := p.numX + len(nurses)

	certifiedIdx := make([]int, 0, len(nurses))
	for i, n := range nurses {
		if n.IVCert {
			certifiedIdx = append(certifiedIdx, i)
		}
	}

	// slack layout: capacity(nurses), iv(certified), unit(1), excess(nurses)
	slackCap := firstSlack
	slackIV := slackCap + len(nurses)
	slackUnit := slackIV + len(certifiedIdx)
	slackExc := slackUnit + 1
	p.numCols = slackExc + len(nurses)

	numRows := len(patients) + len(nurses) + len(certifiedIdx) + 1 + len(nurses)

	p.A = mat.NewDense(numRows, p.numCols, nil)
	p.b = make([]float64, numRows)
	p.c = make([]float64, p.numCols)

	scale := domain.ScoreScale
	for idx, pr := range p.pairs {
		score := domain.Score(nurses[pr.nurseIdx], patients[pr.patientIdx], weights)
		p.c[idx] = -score * scale // minimize -score == maximize score
	}
	for i := range nurses {
		p.c[p.excessCol[i]] = domain.ExcessPenaltyPerPatient * scale
	}

	row := 0

	// 1. Patient coverage: sum_i x[i,j] == 1
	for j := range patients {
		for i := range nurses {
			if col, ok := p.xColumn[pair{i, j}]; ok {
				p.A.Set(row, col, 1)
			}
		}
		p.b[row] = 1
		row++
	}

	// 2. Nurse capacity: sum_j x[i,j] + slack_cap_i == max_patients_i
	for i, n := range nurses {
		for j := range patients {
			if col, ok := p.xColumn[pair{i, j}]; ok {
				p.A.Set(row, col, 1)
			}
		}
		p.A.Set(row, slackCap+i, 1)
		p.b[row] = float64(n.MaxPatients)
		row++
	}

	// 3. IV-chemo cap: sum_{j: iv} x[i,j] + slack_iv == 2, certified nurses only
	for k, i := range certifiedIdx {
		for j, pt := range patients {
			if pt.ChemoType != "iv" {
				continue
			}
			if col, ok := p.xColumn[pair{i, j}]; ok {
				p.A.Set(row, col, 1)
			}
		}
		p.A.Set(row, slackIV+k, 1)
		p.b[row] = domain.MaxIVChemoPerNurse
		row++
	}

	// 4. Unit cap: sum_{i,j} x[i,j] + slack_unit == 20
	for col := 0; col < p.numX; col++ {
		p.A.Set(row, col, 1)
	}
	p.A.Set(row, slackUnit, 1)
	p.b[row] = domain.UnitPatientCapacity
	row++

	// 5. Excess lower bound: sum_j x[i,j] - excess_i + slack_exc_i == 3
	// No row is added for the excess_i <= 4 upper bound: the capacity
	// constraint caps a nurse's patient count at max_patients, so for the
	// documented 1-4 range count - 3 never exceeds 1. Validate does not
	// check that range.
	for i := range nurses {
		for j := range patients {
			if col, ok := p.xColumn[pair{i, j}]; ok {
				p.A.Set(row, col, 1)
			}
		}
		p.A.Set(row, p.excessCol[i], -1)
		p.A.Set(row, slackExc+i, 1)
		p.b[row] = domain.IdealRatio
		row++
	}

	return p
}
