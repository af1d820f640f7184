package exactcover

import (
	"math/rand"
	"sort"
	"testing"
)

func TestCountUniqueStopsAtSecondSolution(t *testing.T) {
	g := Build(toyMatrix(), false)
	s := New(g, nil)

	solution := make([]int, 4)
	if got := s.Run(ModeCountUnique, solution); got != OutcomeMultiple {
		t.Fatalf("Run = %v, want OutcomeMultiple", got)
	}
	if s.found != 2 {
		t.Errorf("found = %d solutions, want search abandoned at exactly 2", s.found)
	}
}

func TestCountUniqueSingleSolution(t *testing.T) {
	// Only R1={C1} and R2={C2,C3} remain, so {R1,R2} is the sole cover.
	m := NewMatrix(2, 3)
	m.Set(0, 0)
	m.Set(1, 1)
	m.Set(1, 2)

	g := Build(m, false)
	if got := New(g, nil).Run(ModeCountUnique, make([]int, 2)); got != OutcomeUnique {
		t.Fatalf("Run = %v, want OutcomeUnique", got)
	}
}

func TestFindAnyReturnsRowSet(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(0, 0)
	m.Set(1, 1)
	m.Set(1, 2)

	g := Build(m, false)
	solution := make([]int, 2)
	if got := New(g, rand.New(rand.NewSource(1))).Run(ModeFindAny, solution); got != OutcomeFound {
		t.Fatalf("Run = %v, want OutcomeFound", got)
	}

	rows := usedRows(solution)
	if len(rows) != 2 || rows[0] != 0 || rows[1] != 1 {
		t.Errorf("solution rows = %v, want {0, 1}", rows)
	}
}

func TestFindAnyNoSolution(t *testing.T) {
	// C1 is wanted by both rows, but covering it removes them from C2 and
	// C3 as well, leaving those constraints unsatisfiable.
	m := NewMatrix(2, 3)
	m.Set(0, 0)
	m.Set(0, 1)
	m.Set(1, 0)
	m.Set(1, 2)

	g := Build(m, false)
	if got := New(g, nil).Run(ModeFindAny, make([]int, 2)); got != OutcomeNone {
		t.Fatalf("Run = %v, want OutcomeNone", got)
	}
}

func TestEmptyMatrixSucceedsImmediately(t *testing.T) {
	g := Build(NewMatrix(0, 0), false)
	solution := []int{7, 7, 7}

	if got := New(g, nil).Run(ModeFindAny, solution); got != OutcomeFound {
		t.Fatalf("Run = %v, want OutcomeFound", got)
	}
	for i, r := range solution {
		if r != NoRow {
			t.Errorf("solution[%d] = %d, want NoRow sentinel", i, r)
		}
	}
}

func TestStrictBuildFailsOnEmptyColumn(t *testing.T) {
	m := NewMatrix(1, 2)
	m.Set(0, 0) // column 1 unsatisfiable

	strict := Build(m, false)
	if got := New(strict, nil).Run(ModeFindAny, make([]int, 1)); got != OutcomeNone {
		t.Errorf("strict Run = %v, want OutcomeNone", got)
	}

	relaxed := Build(m, true)
	solution := make([]int, 1)
	if got := New(relaxed, nil).Run(ModeFindAny, solution); got != OutcomeFound {
		t.Errorf("relaxed Run = %v, want OutcomeFound", got)
	}
	if solution[0] != 0 {
		t.Errorf("relaxed solution = %v, want row 0", solution)
	}
}

func TestStepBudgetAborts(t *testing.T) {
	g := Build(toyMatrix(), false)
	s := New(g, nil)
	s.MaxSteps = 1

	if got := s.Run(ModeCountUnique, make([]int, 4)); got != OutcomeAborted {
		t.Fatalf("Run = %v, want OutcomeAborted", got)
	}
	if s.Steps() != 1 {
		t.Errorf("Steps() = %d, want 1", s.Steps())
	}
}

func TestFindAnyShuffleIsSeedDeterministic(t *testing.T) {
	run := func(seed int64) []int {
		g := Build(toyMatrix(), false)
		solution := make([]int, 4)
		if got := New(g, rand.New(rand.NewSource(seed))).Run(ModeFindAny, solution); got != OutcomeFound {
			t.Fatalf("Run = %v, want OutcomeFound", got)
		}
		return usedRows(solution)
	}

	a, b := run(42), run(42)
	if len(a) != len(b) {
		t.Fatalf("runs with the same seed differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs with the same seed differ: %v vs %v", a, b)
		}
	}
}

// usedRows returns the sorted non-sentinel entries of a solution buffer.
func usedRows(solution []int) []int {
	var rows []int
	for _, r := range solution {
		if r != NoRow {
			rows = append(rows, r)
		}
	}
	sort.Ints(rows)
	return rows
}
