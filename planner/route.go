package planner

import (
	"math"

	"github.com/katalvlaran/gridplan/grid"
)

// Route is the reconstructed robot-to-target path.
//
// Steps is the number of predecessor links traversed. Distance is the
// geometric length of the path: Euclidean per link when diagonal movement
// is enabled, exactly 1.0 per link otherwise — regardless of the algorithm
// that produced it, so DFS routes report comparable figures. Cells lists
// the path coordinates from start to target inclusive.
type Route struct {
	Steps    int
	Distance float64
	Cells    []grid.Coord
}

// Route walks the predecessor links from the target back to the start and
// tags every intermediate cell Route on the board; the start keeps its
// Robot tag and the target its Target tag.
//
// Returns ErrNotFound unless the engine is in the Found state.
func (e *Engine) Route() (Route, error) {
	if e.status != Found {
		return Route{}, ErrNotFound
	}

	// The target's entry in CLOSED carries the Prev chain to follow.
	i := indexOf(e.closed, e.target)
	if i < 0 {
		return Route{}, ErrNotFound
	}
	cur := e.closed[i]
	e.board.Mark(cur.Coord, grid.Target)

	route := Route{Cells: []grid.Coord{cur.Coord}}
	for cur.Coord != e.start {
		route.Steps++
		if e.diagonal {
			dr := float64(cur.Row - cur.Prev.Row)
			dc := float64(cur.Col - cur.Prev.Col)
			route.Distance += math.Sqrt(dr*dr + dc*dc)
		} else {
			route.Distance += 1.0
		}
		cur = cur.Prev
		e.board.Mark(cur.Coord, grid.Route)
		route.Cells = append(route.Cells, cur.Coord)
	}
	e.board.Mark(e.start, grid.Robot)

	// Walked target→start; present it start→target.
	for i, j := 0, len(route.Cells)-1; i < j; i, j = i+1, j-1 {
		route.Cells[i], route.Cells[j] = route.Cells[j], route.Cells[i]
	}

	return route, nil
}
