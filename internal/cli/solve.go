package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gensudoku/pkg/errors"
	"github.com/matzehuels/gensudoku/pkg/sudoku"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "solve [puzzle-file]",
		Short: "Solve a puzzle from a file or stdin",
		Long: `Solve a sudoku puzzle.

The puzzle is read from the given file, or from stdin when no file is
given (or the file is "-"). The digits 1-9 are clues, '0' and '.' mark
empty cells, and separators or whitespace are ignored.

Puzzles with several solutions are legal input; the seed picks which one
is returned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return c.runSolve(input, seed)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed for ambiguous puzzles (0 picks one from the clock)")

	return cmd
}

// runSolve reads, solves, and prints a puzzle.
func (c *CLI) runSolve(input string, seed int64) error {
	text, err := readInput(input)
	if err != nil {
		return fmt.Errorf("read puzzle %s: %w", input, err)
	}

	grid, err := sudoku.Parse(text)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGrid, err, "parse puzzle")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	prog := newProgress(c.Logger)
	rng := rand.New(rand.NewSource(seed))
	if !sudoku.Solve(&grid, rng) || !grid.ValidSolution() {
		return errors.New(errors.ErrCodeNoSolution, "puzzle has no solution")
	}
	prog.done("Solved puzzle")

	fmt.Print(grid.String())
	return nil
}

// readInput returns the contents of path, or of stdin for "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
