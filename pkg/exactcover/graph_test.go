package exactcover

import (
	"reflect"
	"testing"
)

// toyMatrix builds the matrix with columns {C1,C2,C3} and rows R1={C1},
// R2={C2,C3}, R3={C1,C2}, R4={C3}. It has exactly two disjoint exact covers:
// {R1,R2} and {R3,R4}.
func toyMatrix() *Matrix {
	m := NewMatrix(4, 3)
	m.Set(0, 0)
	m.Set(1, 1)
	m.Set(1, 2)
	m.Set(2, 0)
	m.Set(2, 1)
	m.Set(3, 2)
	return m
}

func TestBuildCounts(t *testing.T) {
	g := Build(toyMatrix(), false)

	if g.Cols() != 3 {
		t.Fatalf("Cols() = %d, want 3", g.Cols())
	}
	want := []int32{2, 2, 2}
	for c, n := range want {
		if got := g.nodes[c].count; got != n {
			t.Errorf("column %d count = %d, want %d", c, got, n)
		}
	}
	// 3 headers + root + 6 cell nodes.
	if len(g.nodes) != 10 {
		t.Errorf("arena size = %d, want 10", len(g.nodes))
	}
}

func TestBuildRelaxedUnlinksEmptyColumns(t *testing.T) {
	m := NewMatrix(1, 2)
	m.Set(0, 0) // column 1 has no rows

	strict := Build(m, false)
	if !ringContains(strict, 1) {
		t.Error("strict build should keep the empty column linked")
	}

	relaxed := Build(m, true)
	if ringContains(relaxed, 1) {
		t.Error("relaxed build should unlink the empty column")
	}
	if !ringContains(relaxed, 0) {
		t.Error("relaxed build unlinked a satisfiable column")
	}
}

// ringContains walks the header ring looking for column c.
func ringContains(g *Graph, c int32) bool {
	for h := g.nodes[g.root].right; h != g.root; h = g.nodes[h].right {
		if h == c {
			return true
		}
	}
	return false
}

func TestCoverUncoverRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(g *Graph) // bring the graph into some reachable state
		column  int32
	}{
		{name: "FreshGraph", prepare: func(*Graph) {}, column: 0},
		{name: "MiddleColumn", prepare: func(*Graph) {}, column: 1},
		{
			name:    "AfterOtherCover",
			prepare: func(g *Graph) { g.cover(0) },
			column:  2,
		},
		{
			name: "AfterCoverUncoverChurn",
			prepare: func(g *Graph) {
				g.cover(1)
				g.cover(2)
				g.uncover(2)
				g.uncover(1)
			},
			column: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(toyMatrix(), false)
			tt.prepare(g)

			snapshot := append([]gnode(nil), g.nodes...)
			g.cover(tt.column)
			g.uncover(tt.column)

			if !reflect.DeepEqual(snapshot, g.nodes) {
				t.Errorf("cover(%d)+uncover(%d) did not restore bit-identical links", tt.column, tt.column)
			}
		})
	}
}

func TestCoverRemovesIntersectingRows(t *testing.T) {
	g := Build(toyMatrix(), false)

	// Covering C1 uses up R1 and R3. R3 also intersects C2, so C2 must
	// drop to a single live row (R2).
	g.cover(0)
	if got := g.nodes[1].count; got != 1 {
		t.Errorf("after cover(C1): C2 count = %d, want 1", got)
	}
	if got := g.nodes[2].count; got != 2 {
		t.Errorf("after cover(C1): C3 count = %d, want 2", got)
	}
	if ringContains(g, 0) {
		t.Error("covered column still linked in header ring")
	}
}
