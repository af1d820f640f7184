package exactcover

import "math/rand"

// Mode selects the search behavior of a Solver.
type Mode int

const (
	// ModeFindAny stops at the first complete assignment, trying candidate
	// rows in random order.
	ModeFindAny Mode = iota

	// ModeCountUnique reports whether exactly one complete assignment
	// exists, abandoning the search as soon as a second one is found.
	ModeCountUnique
)

// Outcome is the result of a search.
type Outcome int

const (
	// OutcomeNone means no complete assignment exists.
	OutcomeNone Outcome = iota

	// OutcomeFound means find-any recorded a complete assignment.
	OutcomeFound

	// OutcomeUnique means exactly one complete assignment exists.
	OutcomeUnique

	// OutcomeMultiple means more than one complete assignment exists.
	OutcomeMultiple

	// OutcomeAborted means the step budget ran out before the search
	// finished. It is distinct from both success and failure.
	OutcomeAborted
)

// NoRow marks solution slots that were not used by the search.
const NoRow = -1

// Solver runs Algorithm X over a Graph. The search is destructive: it
// mutates the graph's links and does not restore them on success, so a
// Graph/Solver pair serves exactly one Run.
type Solver struct {
	// MaxSteps caps the number of candidate row expansions before the
	// search gives up with OutcomeAborted. Zero means no cap.
	MaxSteps int

	graph    *Graph
	rng      *rand.Rand
	mode     Mode
	solution []int
	found    int
	steps    int
	aborted  bool
}

// New creates a solver over g. The random source is used only by
// ModeFindAny to shuffle candidate rows; it may be nil, in which case rows
// are tried in ring order.
func New(g *Graph, rng *rand.Rand) *Solver {
	return &Solver{graph: g, rng: rng}
}

// Steps returns the number of candidate rows expanded by the last Run.
func (s *Solver) Steps() int { return s.steps }

// Run searches the graph in the given mode. solution receives the matrix
// row index chosen at each search depth; slots beyond the assignment are set
// to NoRow. Its length bounds the search depth and should be at least the
// number of rows a complete assignment can contain.
func (s *Solver) Run(mode Mode, solution []int) Outcome {
	s.mode = mode
	s.solution = solution
	s.found = 0
	s.steps = 0
	s.aborted = false
	for i := range solution {
		solution[i] = NoRow
	}

	done := s.search(0)

	switch {
	case s.aborted:
		return OutcomeAborted
	case mode == ModeFindAny:
		if done {
			return OutcomeFound
		}
		return OutcomeNone
	case s.found == 0:
		return OutcomeNone
	case s.found == 1:
		return OutcomeUnique
	default:
		return OutcomeMultiple
	}
}

// search tries to extend the partial assignment at depth k. It returns true
// when the search should unwind without further backtracking: a solution in
// find-any mode, a second solution in count-unique mode, or an exhausted
// step budget.
func (s *Solver) search(k int) bool {
	g := s.graph
	nd := g.nodes

	if nd[g.root].right == g.root {
		// Every constraint is satisfied. The same assignment cannot be
		// found twice, so this always counts a new solution.
		s.found++
		return s.mode == ModeFindAny || s.found > 1
	}

	if s.MaxSteps > 0 && s.steps >= s.MaxSteps {
		s.aborted = true
		return true
	}

	// Pick the live column with the fewest rows to minimize the branching
	// factor. Ties go to the column closest to the root in ring order.
	best := nd[g.root].right
	for c := nd[best].right; c != g.root; c = nd[c].right {
		if nd[c].count < nd[best].count {
			best = c
		}
	}

	g.cover(best)

	rows := make([]int32, 0, nd[best].count)
	for r := nd[best].down; r != best; r = nd[r].down {
		rows = append(rows, r)
	}
	if s.mode == ModeFindAny && s.rng != nil {
		s.rng.Shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})
	}

	for _, r := range rows {
		s.steps++
		s.solution[k] = int(nd[r].row)

		// Remove every other column this row satisfies, so no deeper row
		// can satisfy a constraint already handled here.
		for j := nd[r].right; j != r; j = nd[j].right {
			g.cover(nd[j].col)
		}

		if s.search(k + 1) {
			return true
		}

		// The row did not lead anywhere. Restore the columns in reverse
		// cover order before trying the next candidate.
		for j := nd[r].left; j != r; j = nd[j].left {
			g.uncover(nd[j].col)
		}
		s.solution[k] = NoRow
	}

	g.uncover(best)
	return false
}
