package exactcover

// nodeNone marks an unset arena link during construction.
const nodeNone int32 = -1

// gnode is one entry in the graph arena. All links are arena indices. Column
// headers use count; cell nodes use row. col points at the owning header and,
// for headers, at the header itself.
type gnode struct {
	left, right int32
	up, down    int32
	col         int32
	count       int32
	row         int32
}

// Graph is the toroidal doubly-linked view of a Matrix used by the solver.
// Arena layout: indices 0..Cols()-1 are the column headers, Cols() is the
// root of the header ring, and one node per set matrix cell follows.
type Graph struct {
	nodes []gnode
	root  int32
	cols  int
}

// Build constructs the linked graph for m.
//
// In relaxed mode, columns with no set cells are unlinked from the header
// ring at construction: they represent constraints that cannot and need not
// be satisfied for this instance. In strict mode they stay linked, so the
// search fails unless every column is satisfiable.
func Build(m *Matrix, relaxed bool) *Graph {
	cols := m.Cols()
	g := &Graph{
		nodes: make([]gnode, cols+1, cols+1+m.InUse()),
		root:  int32(cols),
		cols:  cols,
	}

	// Circular header ring: 0..cols-1 with the root closing the loop.
	ring := cols + 1
	for c := range g.nodes {
		g.nodes[c].left = int32((c + cols) % ring)
		g.nodes[c].right = int32((c + 1) % ring)
		g.nodes[c].up = int32(c)
		g.nodes[c].down = int32(c)
		g.nodes[c].col = int32(c)
	}

	// Vertical rings, one per column, in ascending row order. Remember each
	// cell node's arena index so the horizontal pass can find it.
	lookup := make([]int32, m.Rows()*cols)
	for i := range lookup {
		lookup[i] = nodeNone
	}
	for c := 0; c < cols; c++ {
		cur := int32(c)
		for r := 0; r < m.Rows(); r++ {
			if !m.At(r, c) {
				continue
			}
			n := int32(len(g.nodes))
			g.nodes = append(g.nodes, gnode{col: int32(c), row: int32(r)})
			g.nodes[cur].down = n
			g.nodes[n].up = cur
			g.nodes[c].count++
			lookup[r*cols+c] = n
			cur = n
		}
		g.nodes[cur].down = int32(c)
		g.nodes[c].up = cur
	}

	// Horizontal rings, one per row, in ascending column order.
	for r := 0; r < m.Rows(); r++ {
		first, prev := nodeNone, nodeNone
		for c := 0; c < cols; c++ {
			n := lookup[r*cols+c]
			if n == nodeNone {
				continue
			}
			if first == nodeNone {
				first = n
				g.nodes[n].left = n
				g.nodes[n].right = n
			} else {
				g.nodes[n].left = prev
				g.nodes[n].right = first
				g.nodes[prev].right = n
				g.nodes[first].left = n
			}
			prev = n
		}
	}

	if relaxed {
		for c := 0; c < cols; c++ {
			if g.nodes[c].count == 0 {
				g.nodes[g.nodes[c].left].right = g.nodes[c].right
				g.nodes[g.nodes[c].right].left = g.nodes[c].left
			}
		}
	}

	return g
}

// Cols returns the number of constraint columns the graph was built with.
func (g *Graph) Cols() int { return g.cols }

// cover unlinks column header c from the header ring, then unlinks every
// other node of every row under c from its own column's vertical ring. One
// of those rows will satisfy the constraint; the rest become unreachable for
// deeper search levels.
func (g *Graph) cover(c int32) {
	nd := g.nodes
	nd[nd[c].left].right = nd[c].right
	nd[nd[c].right].left = nd[c].left
	for i := nd[c].down; i != c; i = nd[i].down {
		for j := nd[i].right; j != i; j = nd[j].right {
			nd[nd[j].up].down = nd[j].down
			nd[nd[j].down].up = nd[j].up
			nd[nd[j].col].count--
		}
	}
}

// uncover is the exact mirror of cover, replayed in reverse row and column
// order. Each restored link is only valid because nothing else touched the
// structure in between, so cover followed by uncover reproduces bit-identical
// linkage and counts.
func (g *Graph) uncover(c int32) {
	nd := g.nodes
	for i := nd[c].up; i != c; i = nd[i].up {
		for j := nd[i].left; j != i; j = nd[j].left {
			nd[nd[j].col].count++
			nd[nd[j].up].down = j
			nd[nd[j].down].up = j
		}
	}
	nd[nd[c].left].right = c
	nd[nd[c].right].left = c
}
