package sudoku

import (
	"errors"
	"math/rand"

	"github.com/matzehuels/gensudoku/pkg/exactcover"
)

var (
	// ErrGenerationFailed means the seeded initial solve did not produce a
	// full grid, so no puzzle was generated.
	ErrGenerationFailed = errors.New("could not solve seeded grid")

	// ErrBudgetExhausted means the step budget ran out during the initial
	// solve before a full grid was found.
	ErrBudgetExhausted = errors.New("search step budget exhausted")
)

// Options configure Generate.
type Options struct {
	// ExtraHints is the number of solution values copied back into the
	// puzzle after hint removal, to make it easier. Clamped to the number
	// of empty cells.
	ExtraHints int

	// StepLimit caps the search steps of each individual solver
	// invocation. Zero means no cap. When a per-hint uniqueness check runs
	// out of budget the hint is restored, which keeps the uniqueness
	// guarantee but may leave the puzzle with more hints than necessary.
	StepLimit int
}

// Generate produces a puzzle with exactly one solution together with that
// solution. All randomness comes from rng, which is consumed by every stage
// and never reseeded: the same seed and options reproduce the output
// byte for byte.
//
// On error the returned puzzle grid holds whatever partial state generation
// reached (the seeded first row), and the solution grid is zero.
func Generate(rng *rand.Rand, opts Options) (puzzle, solution Grid, err error) {
	seedFirstRow(&puzzle, rng)

	switch solve(&puzzle, rng, opts.StepLimit) {
	case exactcover.OutcomeFound:
	case exactcover.OutcomeAborted:
		return puzzle, Grid{}, ErrBudgetExhausted
	default:
		return puzzle, Grid{}, ErrGenerationFailed
	}

	// Keep the full grid aside before any hint is removed.
	solution = puzzle

	// Both removal stages visit the cells in the same random order.
	order := rng.Perm(GridSize)
	removeDeducedHints(&puzzle, order)
	removeNonUniqueHints(&puzzle, order, opts.StepLimit)

	addExtraHints(&puzzle, &solution, opts.ExtraHints, rng)
	return puzzle, solution, nil
}

// seedFirstRow fills the first row with a random permutation of 1..9. One
// permuted row is trivially a valid partial grid and narrows the search far
// more than solving from a blank grid would.
func seedFirstRow(g *Grid, rng *rand.Rand) {
	for x, v := range rng.Perm(Size) {
		g[Index(x, 0)] = uint8(v + 1)
	}
}

// removeDeducedHints clears hints that the remaining hints already imply.
// For a solved grid every row, column, and box mask starts with all nine
// values present; a hint is dropped only while the union of its three masks
// still shows every value represented. This is a cheap pre-filter for safe
// removal, not a uniqueness proof — removeNonUniqueHints provides the actual
// guarantee.
func removeDeducedHints(g *Grid, order []int) {
	var rows, cols, boxes [Size]uint16
	for i := 0; i < Size; i++ {
		rows[i], cols[i], boxes[i] = allValues, allValues, allValues
	}

	for _, idx := range order {
		x, y := idx%Size, idx/Size
		box := Box(x, y)
		if rows[y]|cols[x]|boxes[box] != allValues {
			continue
		}
		drop := ^(uint16(1) << g[idx])
		rows[y] &= drop
		cols[x] &= drop
		boxes[box] &= drop
		g[idx] = 0
	}
}

// removeNonUniqueHints tentatively clears each remaining hint and keeps the
// removal only if the puzzle still has exactly one solution. Every grid
// leaving this stage is guaranteed unique: each removal is verified against
// a freshly built exact cover instance, and anything else (multiple
// solutions, exhausted budget) restores the hint.
func removeNonUniqueHints(g *Grid, order []int, limit int) {
	for _, idx := range order {
		v := g[idx]
		if v == 0 {
			continue
		}
		g[idx] = 0
		if checkUnique(g, limit) != exactcover.OutcomeUnique {
			g[idx] = v
		}
	}
}

// addExtraHints copies n randomly chosen solution values back into empty
// cells. A reinserted cell holds its true solution value, so it can only
// narrow the space of completions of an already-unique puzzle — uniqueness
// is preserved without re-verification.
func addExtraHints(g, solution *Grid, n int, rng *rand.Rand) {
	if n <= 0 {
		return
	}

	empties := make([]int, 0, GridSize)
	for i, v := range g {
		if v == 0 {
			empties = append(empties, i)
		}
	}
	rng.Shuffle(len(empties), func(i, j int) {
		empties[i], empties[j] = empties[j], empties[i]
	})

	if n > len(empties) {
		n = len(empties)
	}
	for _, idx := range empties[:n] {
		g[idx] = solution[idx]
	}
}
