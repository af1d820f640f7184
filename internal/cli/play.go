package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gensudoku/pkg/errors"
	"github.com/matzehuels/gensudoku/pkg/sudoku"
)

// Board styles
var (
	boardGivenStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	boardRevealedStyle = lipgloss.NewStyle().Foreground(colorCyan)
	boardEmptyStyle    = lipgloss.NewStyle().Foreground(colorDim)
	boardCursorStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	boardGridStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		seed       int64
		extraHints int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Generate a puzzle and play it in the terminal",
		Long: `Generate a puzzle and browse it interactively.

Move the cursor with the arrow keys (or hjkl) and toggle the solution with
's'. The seed is shown so the same puzzle can be regenerated later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(seed, extraHints)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVarP(&extraHints, "add-hints", "a", c.Config.ExtraHints, "number of extra hints copied from the solution")

	return cmd
}

// runPlay generates a puzzle and starts the interactive viewer.
func (c *CLI) runPlay(seed int64, extraHints int) error {
	if extraHints < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "extra hint count must be non-negative")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	puzzle, solution, err := sudoku.Generate(rng, sudoku.Options{
		ExtraHints: extraHints,
		StepLimit:  c.Config.StepLimit,
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeGenerationFailed, err, "generate puzzle")
	}

	model := newPlayModel(puzzle, solution, seed)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// playModel - Interactive puzzle viewer
// =============================================================================

// playModel is the bubbletea model for browsing a generated puzzle.
type playModel struct {
	puzzle   sudoku.Grid
	solution sudoku.Grid
	seed     int64

	cursorX int
	cursorY int
	reveal  bool
}

// newPlayModel creates a viewer for the given puzzle.
func newPlayModel(puzzle, solution sudoku.Grid, seed int64) playModel {
	return playModel{puzzle: puzzle, solution: solution, seed: seed}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursorY > 0 {
				m.cursorY--
			}
		case "down", "j":
			if m.cursorY < sudoku.Size-1 {
				m.cursorY++
			}
		case "left", "h":
			if m.cursorX > 0 {
				m.cursorX--
			}
		case "right", "l":
			if m.cursorX < sudoku.Size-1 {
				m.cursorX++
			}
		case "s":
			m.reveal = !m.reveal
		}
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("gensudoku"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("seed %d · %d hints", m.seed, m.puzzle.CountFilled())))
	b.WriteString("\n\n")

	for y := 0; y < sudoku.Size; y++ {
		if y%3 == 0 && y != 0 {
			b.WriteString(boardGridStyle.Render("------+-------+------"))
			b.WriteString("\n")
		}
		for x := 0; x < sudoku.Size; x++ {
			if x%3 == 0 && x != 0 {
				b.WriteString(boardGridStyle.Render("| "))
			}
			b.WriteString(m.renderCell(x, y))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := "solution hidden"
	if m.reveal {
		status = "solution shown"
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ move  s toggle solution  q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderCell renders one cell, marking givens, revealed solution values,
// and the cursor position.
func (m playModel) renderCell(x, y int) string {
	given := m.puzzle.At(x, y)

	text := "."
	style := boardEmptyStyle
	switch {
	case given != 0:
		text = fmt.Sprintf("%d", given)
		style = boardGivenStyle
	case m.reveal:
		text = fmt.Sprintf("%d", m.solution.At(x, y))
		style = boardRevealedStyle
	}

	if x == m.cursorX && y == m.cursorY {
		return boardCursorStyle.Render(text)
	}
	return style.Render(text)
}
