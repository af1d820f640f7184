package sudoku

import (
	"math/rand"
	"testing"
)

func TestSolveEmptyGrid(t *testing.T) {
	var g Grid
	if !Solve(&g, rand.New(rand.NewSource(1))) {
		t.Fatal("Solve failed on the empty grid")
	}
	if !g.ValidSolution() {
		t.Errorf("Solve produced an invalid grid:\n%s", g.String())
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	g := mustParse(t, classicPuzzle)
	if !Solve(&g, rand.New(rand.NewSource(1))) {
		t.Fatal("Solve failed on a solvable puzzle")
	}
	if want := mustParse(t, classicSolution); g != want {
		t.Errorf("Solve found a different grid than the puzzle's unique solution:\n%s", g.String())
	}
}

func TestSolveIsSeedDeterministic(t *testing.T) {
	run := func() Grid {
		var g Grid
		if !Solve(&g, rand.New(rand.NewSource(99))) {
			t.Fatal("Solve failed")
		}
		return g
	}
	if run() != run() {
		t.Error("identical seeds produced different solutions")
	}
}

func TestSolveUnsatisfiableLeavesGridUntouched(t *testing.T) {
	// Columns 0 and 1 each contain every value except 5, forcing both of
	// their row-0 cells to be 5 — an impossible pair in one row.
	var g Grid
	col0 := []uint8{1, 2, 3, 4, 6, 7, 8, 9}
	col1 := []uint8{2, 3, 4, 6, 7, 8, 9, 1}
	for i := 0; i < 8; i++ {
		g[Index(0, i+1)] = col0[i]
		g[Index(1, i+1)] = col1[i]
	}

	before := g
	if Solve(&g, rand.New(rand.NewSource(1))) {
		t.Fatal("Solve succeeded on a contradictory grid")
	}
	if g != before {
		t.Error("failed Solve modified the grid")
	}
}
