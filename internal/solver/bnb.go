package solver

import (
	"container/heap"
	"context"
	"math"
	"sync"
)

// node is one branch-and-bound subproblem: a set of pinned x[i,j] columns
// plus its already-solved LP relaxation (bound + solution vector).
type node struct {
	fixed  fixedVars
	x      []float64
	objMin float64 // relaxation objective (minimized sense)
}

// nodeHeap is a min-heap on objMin: the most promising node (the one whose
// relaxation bound is still best) is explored first, mirroring a
// best-bound branch-and-bound search.
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].objMin < h[j].objMin }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

const fractionalTol = 1e-6

// mostFractional returns the x-column closest to 0.5, or -1 if every
// x-column is already within fractionalTol of an integer.
func mostFractional(p *problem, x []float64) int {
	best := -1
	bestDist := math.MaxFloat64
	for col := 0; col < p.numX; col++ {
		v := x[col]
		frac := v - math.Floor(v)
		if frac < fractionalTol || frac > 1-fractionalTol {
			continue
		}
		dist := math.Abs(frac - 0.5)
		if dist < bestDist {
			bestDist = dist
			best = col
		}
	}
	return best
}

func cloneFixed(f fixedVars) fixedVars {
	out := make(fixedVars, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	return out
}

// bnbResult is the outcome of a branch-and-bound search.
type bnbResult struct {
	x       []float64
	objMin  float64
	found   bool
	optimal bool // true if the search exhausted the tree before the deadline
}

// branchAndBound searches for the MILP optimum using best-bound
// branch-and-bound over the LP relaxation, with a fixed pool of worker
// goroutines draining a shared priority queue - mirroring the reference
// solver's worker-count parameter without its generic multi-problem
// machinery, since this program's variable count is always small.
func branchAndBound(ctx context.Context, p *problem, workers int) bnbResult {
	if workers < 1 {
		workers = 1
	}

	rootX, rootObj, ok := solveRelaxation(p, fixedVars{})
	if !ok {
		return bnbResult{found: false, optimal: true}
	}

	var (
		mu              sync.Mutex
		cond            = sync.NewCond(&mu)
		q               nodeHeap
		pending         = 1
		incumbentX      []float64
		incumbentObj    = math.Inf(1)
		incumbentFound  bool
		deadlineHit     bool
	)
	heap.Init(&q)
	heap.Push(&q, &node{fixed: fixedVars{}, x: rootX, objMin: rootObj})

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				for q.Len() == 0 && pending > 0 && !deadlineHit {
					cond.Wait()
				}
				if (q.Len() == 0 && pending == 0) || deadlineHit {
					mu.Unlock()
					return
				}
				if ctx.Err() != nil {
					deadlineHit = true
					cond.Broadcast()
					mu.Unlock()
					return
				}
				n := heap.Pop(&q).(*node)
				curIncumbent := incumbentObj
				mu.Unlock()

				// Prune: this node cannot beat the current incumbent.
				if n.objMin >= curIncumbent {
					mu.Lock()
					pending--
					if pending == 0 {
						cond.Broadcast()
					}
					mu.Unlock()
					continue
				}

				branchCol := mostFractional(p, n.x)

				if branchCol == -1 {
					// Integer-feasible candidate.
					mu.Lock()
					if n.objMin < incumbentObj {
						incumbentObj = n.objMin
						incumbentX = n.x
						incumbentFound = true
					}
					pending--
					if pending == 0 {
						cond.Broadcast()
					}
					mu.Unlock()
					continue
				}

				var children []*node
				for _, val := range [2]int{0, 1} {
					childFixed := cloneFixed(n.fixed)
					childFixed[branchCol] = val
					if ctx.Err() != nil {
						break
					}
					cx, cObj, cOk := solveRelaxation(p, childFixed)
					if !cOk {
						continue
					}
					mu.Lock()
					beat := cObj < incumbentObj
					mu.Unlock()
					if !beat {
						continue
					}
					children = append(children, &node{fixed: childFixed, x: cx, objMin: cObj})
				}

				mu.Lock()
				pending--
				for _, c := range children {
					heap.Push(&q, c)
					pending++
				}
				if ctx.Err() != nil {
					deadlineHit = true
				}
				cond.Broadcast()
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return bnbResult{
		x:       incumbentX,
		objMin:  incumbentObj,
		found:   incumbentFound,
		optimal: !deadlineHit,
	}
}
