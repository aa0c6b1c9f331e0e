package bnb

import "github.com/lal-project/linarr/graph"

// Objective selects whether Search hunts for the minimum or maximum
// Σ|π(u)-π(v)|.
type Objective int

const (
	Minimize Objective = iota
	Maximize
)

// Result is a found optimum: its cost and the position->vertex order
// that witnesses it.
type Result struct {
	Cost  uint64
	Order []int
}

// action names the branch spec.md §4.I.5 describes at each search node,
// grounded on the original's next_action.hpp state names. The original
// distinguishes two further states, actionContinueIndependentSet and
// actionContinueIndependentSetLeaves, for a closed-form independent-set
// fast path; this port doesn't implement that fast path, so both fold
// into actionContinueNormally and only two states remain in code.
type action int

const (
	actionBound action = iota
	actionContinueNormally
)

// frame is one choice point of the explicit-stack search: at pos, try
// every not-yet-placed vertex in candidates in turn.
type frame struct {
	pos          int
	candidates   []int
	idx          int
	placedVertex int
}

// engine holds all mutable search state as fields, per the teacher's
// bbEngine idiom.
type engine struct {
	n         int
	edges     []graph.Edge
	objective Objective

	placed   []bool
	posOf    []int
	vertexAt []int
	cost     uint64

	best    Result
	bestSet bool
}

// Search runs the exact branch-and-bound over every permutation of n
// vertices connected by edges, returning the optimal cost and a
// witnessing order for the requested objective.
func Search(n int, edges []graph.Edge, objective Objective) Result {
	if n == 0 {
		return Result{Order: []int{}}
	}
	if n == 1 {
		return Result{Cost: 0, Order: []int{0}}
	}

	e := &engine{
		n:         n,
		edges:     edges,
		objective: objective,
		placed:    make([]bool, n),
		posOf:     make([]int, n),
		vertexAt:  make([]int, n),
	}
	for i := range e.posOf {
		e.posOf[i] = -1
		e.vertexAt[i] = -1
	}
	e.run()
	return e.best
}

func (e *engine) run() {
	all := make([]int, e.n)
	for i := range all {
		all[i] = i
	}
	stack := []*frame{{pos: 0, candidates: all, idx: -1, placedVertex: -1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.placedVertex != -1 {
			e.unplace(f.placedVertex, f.pos)
			f.placedVertex = -1
		}
		f.idx++
		if f.idx >= len(f.candidates) {
			stack = stack[:len(stack)-1]
			continue
		}

		b := e.bound(f.pos)
		if e.classify(b) == actionBound {
			stack = stack[:len(stack)-1]
			continue
		}

		v := f.candidates[f.idx]
		e.place(v, f.pos)
		f.placedVertex = v

		if f.pos == e.n-1 {
			e.recordIfBetter()
			continue
		}

		remaining := make([]int, 0, len(f.candidates)-1)
		for _, c := range f.candidates {
			if c != v {
				remaining = append(remaining, c)
			}
		}
		stack = append(stack, &frame{pos: f.pos + 1, candidates: remaining, idx: -1, placedVertex: -1})
	}
}

// classify reports whether the current node should be pruned
// (actionBound) or explored (actionContinueNormally), given the bound
// on every edge not yet fully placed.
func (e *engine) classify(bound uint64) action {
	if !e.bestSet {
		return actionContinueNormally
	}
	switch e.objective {
	case Maximize:
		if e.cost+bound <= e.best.Cost {
			return actionBound
		}
	default:
		if e.cost+bound >= e.best.Cost {
			return actionBound
		}
	}
	return actionContinueNormally
}

// bound returns the sum, over every edge with at least one unplaced
// endpoint, of the most optimistic contribution it could still make
// (the largest for Maximize, the smallest for Minimize), given that
// positions [pos,n-1] remain unfilled.
func (e *engine) bound(pos int) uint64 {
	var b uint64
	remaining := e.n - pos
	for _, edge := range e.edges {
		up, vp := e.placed[edge.U], e.placed[edge.V]
		switch {
		case up && vp:
			continue
		case up != vp:
			placedPos := e.posOf[edge.U]
			if vp {
				placedPos = e.posOf[edge.V]
			}
			if e.objective == Maximize {
				b += uint64(e.n - 1 - placedPos)
			} else {
				b += uint64(pos - placedPos)
			}
		default:
			if e.objective == Maximize {
				b += uint64(e.n - 1 - pos)
			} else if remaining >= 2 {
				b++
			}
		}
	}
	return b
}

func (e *engine) place(v, pos int) {
	e.placed[v] = true
	e.posOf[v] = pos
	e.vertexAt[pos] = v
	for _, w := range e.incident(v) {
		if e.placed[w] {
			e.cost += absDiff(pos, e.posOf[w])
		}
	}
}

func (e *engine) unplace(v, pos int) {
	for _, w := range e.incident(v) {
		if e.placed[w] {
			e.cost -= absDiff(pos, e.posOf[w])
		}
	}
	e.placed[v] = false
	e.posOf[v] = -1
	e.vertexAt[pos] = -1
}

func (e *engine) incident(v int) []int {
	neighbors := make([]int, 0, 2)
	for _, edge := range e.edges {
		switch v {
		case edge.U:
			neighbors = append(neighbors, edge.V)
		case edge.V:
			neighbors = append(neighbors, edge.U)
		}
	}
	return neighbors
}

func absDiff(a, b int) uint64 {
	if a < b {
		return uint64(b - a)
	}
	return uint64(a - b)
}

func (e *engine) recordIfBetter() {
	better := !e.bestSet
	if e.bestSet {
		if e.objective == Maximize {
			better = e.cost > e.best.Cost
		} else {
			better = e.cost < e.best.Cost
		}
	}
	if !better {
		return
	}
	order := make([]int, e.n)
	copy(order, e.vertexAt)
	e.best = Result{Cost: e.cost, Order: order}
	e.bestSet = true
}
