// Package exactcover solves exact cover problems with Algorithm X over
// dancing links (DLX).
//
// # Overview
//
// An exact cover instance is a 0/1 matrix; a solution is a subset of rows
// such that every column contains exactly one selected row. The package
// splits the problem into three pieces:
//
//   - [Matrix]: a dense boolean incidence table the caller fills in
//   - [Graph]: a toroidal doubly-linked view of the matrix built once per
//     search, supporting O(1) column removal and exact restoration
//   - [Solver]: the recursive backtracking search over the graph
//
// # Node arena
//
// Instead of heap-allocated nodes joined by pointers, the graph stores all
// nodes in a single arena slice and links them by index. Nodes are never
// freed during a search, only relinked, so cover and uncover are pure index
// arithmetic. The first Cols() entries of the arena are the column headers,
// followed by the root of the header ring, followed by one node per set
// matrix cell.
//
// # Search modes
//
// [ModeFindAny] looks for one complete assignment, shuffling candidate rows
// with the solver's random source so repeated runs with fresh seeds diversify
// the solution found. [ModeCountUnique] reports whether exactly one
// assignment exists, abandoning the search as soon as a second one is found.
//
// A Graph/Solver pair is single-use: Run mutates the links destructively and
// does not restore them on success. Build a fresh graph for every search.
//
// # Concurrency
//
// None of the types are safe for concurrent use. All state is confined to
// one search on one goroutine.
package exactcover
