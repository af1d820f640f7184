package sudoku

import (
	"math/rand"

	"github.com/matzehuels/gensudoku/pkg/exactcover"
)

// Solve completes g in place with a find-any exact cover search. The random
// source diversifies which solution is found when several exist; it may be
// nil for a deterministic search. Solve returns false when no complete
// assignment exists, leaving the grid unmodified.
//
// Matrix, graph, and solver are built fresh for this one call and released
// when it returns; nothing is shared with other solves.
func Solve(g *Grid, rng *rand.Rand) bool {
	return solve(g, rng, 0) == exactcover.OutcomeFound
}

// solve runs one find-any search with an optional step budget, filling the
// grid only on success.
func solve(g *Grid, rng *rand.Rand, limit int) exactcover.Outcome {
	graph := exactcover.Build(encode(g), true)
	s := exactcover.New(graph, rng)
	s.MaxSteps = limit

	set := make([]int, GridSize)
	out := s.Run(exactcover.ModeFindAny, set)
	if out == exactcover.OutcomeFound {
		fillSolution(g, set)
	}
	return out
}

// checkUnique rebuilds the exact cover instance for the grid's current state
// and counts its solutions, stopping early at the second one.
func checkUnique(g *Grid, limit int) exactcover.Outcome {
	graph := exactcover.Build(encode(g), true)
	s := exactcover.New(graph, nil)
	s.MaxSteps = limit
	return s.Run(exactcover.ModeCountUnique, make([]int, GridSize))
}

// fillSolution writes the placements named by a solution row set into the
// grid.
func fillSolution(g *Grid, set []int) {
	for _, row := range set {
		if row == exactcover.NoRow {
			continue
		}
		x, y, v := decodePlacement(row)
		g[Index(x, y)] = v
	}
}
