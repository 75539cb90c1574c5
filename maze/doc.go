// Package maze generates random perfect mazes as obstacle layouts for a
// grid.Board.
//
// What
//
//   - Generate returns a rows×cols [][]bool layout (true = obstacle)
//     forming a perfect maze: every corridor cell reachable from every
//     other, no cycles. Even dimensions snap down to the nearest odd
//     value. A Board adopts the layout via SetObstacles.
//
// Why
//
//   - Hand-drawn obstacle layouts exercise one search behavior at a time;
//     a maze exercises them all at once — long detours, dead ends, and a
//     single winding route the informed policies must still find.
//
// Algorithm
//
//	Growing-tree carve over the interior lattice: mostly depth-first, but
//	roughly one step in ten continues from a random earlier cell, which
//	breaks up the long twisting halls a pure depth-first carve produces.
//	With the same *rand.Rand seed the layout is reproducible.
//
// Complexity (R = rows, C = cols)
//
//   - Time and memory: O(R×C).
//
// Usage
//
//	layout, err := maze.Generate(41, 41, maze.WithRand(rand.New(rand.NewSource(7))))
//	if err != nil {
//		// ErrDimension
//	}
//	_ = board.SetObstacles(layout)
package maze
