// Package sudoku generates and solves 9×9 sudoku puzzles with a guaranteed
// unique solution.
//
// # Overview
//
// The package maps sudoku onto the exact cover problem solved by
// [github.com/matzehuels/gensudoku/pkg/exactcover]: every candidate placement
// of a value in an empty cell becomes one matrix row activating exactly four
// constraint columns (cell filled, value once per row, once per column, once
// per box). [Solve] completes a grid in place; [Generate] drives the solver
// through a multi-stage hint-reduction pipeline:
//
//  1. Seed the first row with a random permutation of 1..9.
//  2. Solve the seeded grid and snapshot the full solution.
//  3. Strip hints that the remaining hints already imply, using cheap
//     row/column/box occupancy masks.
//  4. For every surviving hint, tentatively remove it and keep the removal
//     only if the puzzle still has exactly one solution.
//  5. Copy a requested number of solution values back into empty cells to
//     soften the difficulty; reinserting true values cannot create or
//     destroy solutions, so uniqueness is preserved.
//
// # Randomness
//
// All randomness is drawn from the single *rand.Rand the caller passes in.
// The generator never reseeds it, so a fixed seed and extra-hint count
// reproduce the exact same puzzle and solution.
//
// # Concurrency
//
// Grids are plain value types. The functions in this package are pure apart
// from mutating the grid they are handed; they share no state and may run
// concurrently on distinct grids and random sources.
package sudoku
