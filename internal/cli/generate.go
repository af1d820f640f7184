package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gensudoku/pkg/errors"
	"github.com/matzehuels/gensudoku/pkg/sudoku"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		seed         int64
		extraHints   int
		showSolution bool
		output       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		Long: `Generate a sudoku puzzle with exactly one solution.

The generator derives a full solution from the seed, then removes hints as
long as the remaining puzzle stays uniquely solvable. Use --add-hints to put
some hints back and make the puzzle easier; the extra hints are taken from
the solution, so uniqueness is preserved.

The seed is printed alongside the puzzle so any run can be reproduced
exactly with --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), seed, extraHints, showSolution, output)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVarP(&extraHints, "add-hints", "a", c.Config.ExtraHints, "number of extra hints copied from the solution")
	cmd.Flags().BoolVar(&showSolution, "solution", false, "print the solution alongside the puzzle")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the puzzle to a file instead of stdout")

	return cmd
}

// runGenerate generates a puzzle and prints or writes it.
func (c *CLI) runGenerate(ctx context.Context, seed int64, extraHints int, showSolution bool, output string) error {
	if extraHints < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "extra hint count must be non-negative")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	spinner := newSpinnerWithContext(ctx, "Generating puzzle...")
	spinner.Start()

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	puzzle, solution, err := sudoku.Generate(rng, sudoku.Options{
		ExtraHints: extraHints,
		StepLimit:  c.Config.StepLimit,
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		code := errors.ErrCodeGenerationFailed
		if stderrors.Is(err, sudoku.ErrBudgetExhausted) {
			code = errors.ErrCodeBudgetExhausted
		}
		return errors.Wrap(code, err, "generate puzzle")
	}
	spinner.StopWithSuccess(fmt.Sprintf("Generated puzzle with %s hints in %s",
		StyleHighlight.Render(fmt.Sprintf("%d", puzzle.CountFilled())),
		time.Since(start).Round(time.Millisecond)))

	printKeyValue("seed", fmt.Sprintf("%d", seed))

	if output != "" {
		if err := os.WriteFile(output, []byte(puzzle.String()), 0o644); err != nil {
			return fmt.Errorf("write puzzle %s: %w", output, err)
		}
		printFile(output)
	} else {
		fmt.Print(puzzle.String())
	}

	if showSolution {
		printDetail("solution:")
		fmt.Print(solution.String())
	}
	return nil
}
