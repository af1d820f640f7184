package cli

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gensudoku/pkg/sudoku"
)

func testPlayModel(t *testing.T) playModel {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	puzzle, solution, err := sudoku.Generate(rng, sudoku.Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return newPlayModel(puzzle, solution, 1)
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
}

func TestPlayModelCursorStaysOnBoard(t *testing.T) {
	m := testPlayModel(t)

	// The cursor starts at the top-left corner, so moving up or left
	// must not take it off the board.
	for _, key := range []string{"k", "h"} {
		updated, _ := m.Update(keyMsg(key))
		m = updated.(playModel)
	}
	if m.cursorX != 0 || m.cursorY != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", m.cursorX, m.cursorY)
	}

	for i := 0; i < 2*sudoku.Size; i++ {
		updated, _ := m.Update(keyMsg("down"))
		m = updated.(playModel)
		updated, _ = m.Update(keyMsg("right"))
		m = updated.(playModel)
	}
	if m.cursorX != sudoku.Size-1 || m.cursorY != sudoku.Size-1 {
		t.Errorf("cursor = (%d, %d), want (%d, %d)", m.cursorX, m.cursorY, sudoku.Size-1, sudoku.Size-1)
	}
}

func TestPlayModelToggleSolution(t *testing.T) {
	m := testPlayModel(t)

	if m.reveal {
		t.Fatal("solution should start hidden")
	}
	updated, _ := m.Update(keyMsg("s"))
	m = updated.(playModel)
	if !m.reveal {
		t.Error("pressing 's' should reveal the solution")
	}

	view := m.View()
	if strings.Contains(view, ".") {
		t.Error("revealed view should not contain empty cells")
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := testPlayModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("pressing 'q' should quit")
	}
}
