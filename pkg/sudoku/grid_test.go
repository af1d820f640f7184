package sudoku

import "testing"

const (
	classicPuzzle = "" +
		"53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"

	classicSolution = "" +
		"534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
)

func mustParse(t *testing.T, s string) Grid {
	t.Helper()
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func TestStringRendering(t *testing.T) {
	g := mustParse(t, classicPuzzle)

	want := "" +
		"5 3 . | . 7 . | . . . \n" +
		"6 . . | 1 9 5 | . . . \n" +
		". 9 8 | . . . | . 6 . \n" +
		"------+-------+------\n" +
		"8 . . | . 6 . | . . 3 \n" +
		"4 . . | 8 . 3 | . . 1 \n" +
		"7 . . | . 2 . | . . 6 \n" +
		"------+-------+------\n" +
		". 6 . | . . . | 2 8 . \n" +
		". . . | 4 1 9 | . . 5 \n" +
		". . . | . 8 . | . 7 9 \n"

	if got := g.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestParseRoundTripsRendering(t *testing.T) {
	g := mustParse(t, classicPuzzle)

	back, err := Parse(g.String())
	if err != nil {
		t.Fatalf("Parse(String()): %v", err)
	}
	if back != g {
		t.Error("parsing the rendered grid did not reproduce it")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "TooFewCells", input: "123456789"},
		{name: "TooManyCells", input: classicPuzzle + "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Error("Parse accepted malformed input")
			}
		})
	}
}

func TestValidSolution(t *testing.T) {
	solved := mustParse(t, classicSolution)
	if !solved.ValidSolution() {
		t.Error("known solution rejected")
	}

	partial := mustParse(t, classicPuzzle)
	if partial.ValidSolution() {
		t.Error("partial grid accepted as solution")
	}

	dup := solved
	dup[1] = dup[0] // duplicate in row 0
	if dup.ValidSolution() {
		t.Error("grid with duplicate value accepted as solution")
	}
}

func TestBoxIndex(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0}, {2, 2, 0}, {3, 0, 1}, {8, 0, 2},
		{0, 3, 3}, {4, 4, 4}, {8, 8, 8}, {6, 5, 5},
	}
	for _, tt := range tests {
		if got := Box(tt.x, tt.y); got != tt.want {
			t.Errorf("Box(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
