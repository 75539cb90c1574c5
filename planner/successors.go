package planner

import (
	"github.com/katalvlaran/gridplan/grid"
)

// move is one admissible displacement. For a diagonal move, the two cells
// flanking the crossed corner are (row+dr, col) and (row, col+dc).
type move struct {
	dr, dc   int
	diagonal bool
}

// Priority order of moves. Orthogonally: Up, Right, Down, Left.
// With diagonals enabled the four diagonals interleave clockwise:
// Up, Up-right, Right, Down-right, Down, Down-left, Left, Up-left.
var (
	orthogonalMoves = []move{
		{-1, 0, false}, // up
		{0, 1, false},  // right
		{1, 0, false},  // down
		{0, -1, false}, // left
	}
	diagonalMoves = []move{
		{-1, 0, false},  // up
		{-1, 1, true},   // up-right
		{0, 1, false},   // right
		{1, 1, true},    // down-right
		{1, 0, false},   // down
		{1, -1, true},   // down-left
		{0, -1, false},  // left
		{-1, -1, true},  // up-left
	}
)

// successors produces the ordered admissible neighbors of current.
//
// A neighbor is admissible when it is in bounds and not an obstacle. A
// diagonal neighbor additionally requires at least one of its two corner
// cells to be free; two obstacles meeting at the crossed corner block the
// move entirely, even when the diagonal cell itself is empty.
//
// Per-algorithm behavior:
//
//   - DFS/BFS: neighbors already in OPEN or CLOSED are excluded (no
//     re-expansion), and the result is reversed for DFS because its OPEN
//     set is a stack filled one cell at a time at the front.
//   - AStar/Greedy: every admissible neighbor is returned as a fresh cell
//     with Prev pointing at current, so costs can be re-evaluated.
//   - Dijkstra: neighbors are looked up among the tracked component cells
//     so that Dist/Prev updates persist; cells no longer tracked (already
//     closed or outside the component) are skipped. With fresh set, a new
//     untracked cell is returned instead — the mode used only while the
//     connected component is being collected.
func (e *Engine) successors(current *grid.Cell, fresh bool) []*grid.Cell {
	moves := orthogonalMoves
	if e.diagonal {
		moves = diagonalMoves
	}

	out := make([]*grid.Cell, 0, len(moves))
	for _, m := range moves {
		p := grid.Coord{Row: current.Row + m.dr, Col: current.Col + m.dc}
		if !e.board.InBounds(p) || e.board.StateAt(p) == grid.Obstacle {
			continue
		}
		if m.diagonal && !e.cornerFree(current.Coord, m) {
			continue
		}

		switch {
		case e.algo == Dijkstra && fresh:
			out = append(out, grid.NewCell(p.Row, p.Col))
		case e.algo == Dijkstra:
			if tracked, ok := e.graphCells[p]; ok {
				out = append(out, tracked)
			}
		case e.algo == DFS || e.algo == BFS:
			if e.openSet.Has(p) || e.closedSet.Has(p) {
				continue
			}
			cell := grid.NewCell(p.Row, p.Col)
			cell.Prev = current
			out = append(out, cell)
		default: // AStar, Greedy
			cell := grid.NewCell(p.Row, p.Col)
			cell.Prev = current
			out = append(out, cell)
		}
	}

	// DFS pushes cells to the front of OPEN one at a time; reversing here
	// leaves the highest-priority successor at the front of the stack.
	if e.algo == DFS {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// cornerFree reports whether the diagonal move m from p crosses a passable
// corner: at least one of the two orthogonally adjacent corner cells must
// not be an obstacle.
func (e *Engine) cornerFree(p grid.Coord, m move) bool {
	vertical := grid.Coord{Row: p.Row + m.dr, Col: p.Col}
	horizontal := grid.Coord{Row: p.Row, Col: p.Col + m.dc}

	return e.board.StateAt(vertical) != grid.Obstacle ||
		e.board.StateAt(horizontal) != grid.Obstacle
}
