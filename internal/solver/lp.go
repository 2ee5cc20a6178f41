package solver

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// fixedVars maps a column index to the integer value it is pinned to for
// this branch-and-bound node (0 or 1, always an x[i,j] column).
type fixedVars map[int]int

// solveRelaxation solves the LP relaxation of p with the given variables
// pinned, returning the optimal x, the minimized objective, and whether a
// feasible basic solution was found. A non-feasible result (infeasible or
// otherwise unsolved) is a dead end for this branch-and-bound node.
func solveRelaxation(p *problem, fixed fixedVars) (x []float64, objMin float64, ok bool) {
	rows, cols := p.A.Dims()
	extra := len(fixed)

	A := mat.NewDense(rows+extra, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := p.A.At(i, j); v != 0 {
				A.Set(i, j, v)
			}
		}
	}
	b := make([]float64, rows+extra)
	copy(b, p.b)

	r := rows
	for col, val := range fixed {
		A.Set(r, col, 1)
		b[r] = float64(val)
		r++
	}

	optF, optX, err := lp.Simplex(p.c, A, b, 1e-10, nil)
	if err != nil {
		return nil, 0, false
	}
	return optX, optF, true
}
