// Package planner implements the search engine behind the grid motion
// planner: five expansion policies over shared OPEN/CLOSED collections,
// driven one node expansion at a time.
package planner

import (
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridplan/grid"
)

// Engine holds the mutable state of one search session. It borrows the
// Board for tag updates only; creating a new Engine starts a fresh session
// and wipes the previous session's artifacts from the board.
//
// Membership in OPEN, CLOSED and the Dijkstra component is always decided
// by coordinates alone: the ordered slices keep expansion order while the
// mapset mirrors answer "is this cell already known" in O(1).
type Engine struct {
	board    *grid.Board
	algo     Algorithm
	diagonal bool

	start  grid.Coord
	target grid.Coord

	open      []*grid.Cell
	openSet   mapset.Set[grid.Coord]
	closed    []*grid.Cell
	closedSet mapset.Set[grid.Coord]

	// Dijkstra only: the distance-ordered frontier over the start's
	// connected component, and a coordinate index of the cells still in it.
	graph      []*grid.Cell
	graphCells map[grid.Coord]*grid.Cell

	status   Status
	expanded int
}

// New starts a search session on board, applying any number of functional
// Options. The board's previous session artifacts are reset, the robot
// position becomes the start, and — for Dijkstra — the connected-component
// preprocessing runs immediately, so obstacles must already be in place.
//
// Returns ErrNilBoard for a nil board.
func New(board *grid.Board, opts ...Option) (*Engine, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	board.ResetSession()
	e := &Engine{
		board:     board,
		algo:      o.Algorithm,
		diagonal:  o.Diagonal,
		start:     board.Robot(),
		target:    board.Target(),
		openSet:   mapset.New[grid.Coord](),
		closedSet: mapset.New[grid.Coord](),
		status:    Idle,
	}

	if e.algo == Dijkstra {
		e.initDijkstra()
	} else {
		root := grid.NewCell(e.start.Row, e.start.Col)
		e.open = append(e.open, root)
		e.openSet.Put(root.Coord)
	}

	return e, nil
}

// Status returns the engine lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Expanded returns the number of nodes expanded so far. The closure that
// turns out to be the target is not counted.
func (e *Engine) Expanded() int { return e.expanded }

// Start returns the session's start coordinate (robot position at New).
func (e *Engine) Start() grid.Coord { return e.start }

// Target returns the session's target coordinate.
func (e *Engine) Target() grid.Coord { return e.target }

// ExpandOne performs a single node expansion and returns the resulting
// status. Once the engine is terminal, further calls are no-ops.
//
// Each call either:
//  1. detects an empty frontier and terminates with NoSolution,
//  2. closes the target and terminates with Found, or
//  3. closes one cell, generates its successors, and applies the
//     algorithm-specific frontier update.
func (e *Engine) ExpandOne() Status {
	if e.status.Terminal() {
		return e.status
	}
	e.status = Running

	if e.algo == Dijkstra {
		return e.expandDijkstra()
	}

	return e.expandOpenSet()
}

// expandOpenSet is the shared DFS/BFS/AStar/Greedy expansion step.
func (e *Engine) expandOpenSet() Status {
	if len(e.open) == 0 {
		return e.noSolution()
	}

	// Select the next cell. DFS and BFS both pop the front: DFS inserted
	// at the front (stack), BFS appended at the back (queue). AStar and
	// Greedy first order OPEN by f ascending; the sort is stable so ties
	// keep their insertion order.
	if e.algo == AStar || e.algo == Greedy {
		sort.SliceStable(e.open, func(i, j int) bool { return e.open[i].F < e.open[j].F })
	}
	current := e.open[0]
	e.open = e.open[1:]
	e.openSet.Remove(current.Coord)

	e.closed = append([]*grid.Cell{current}, e.closed...)
	e.closedSet.Put(current.Coord)
	e.board.Mark(current.Coord, grid.Closed)

	if current.Coord == e.target {
		e.status = Found
		return e.status
	}
	e.expanded++

	successors := e.successors(current, false)
	switch e.algo {
	case DFS:
		for _, s := range successors {
			e.open = append([]*grid.Cell{s}, e.open...)
			e.openSet.Put(s.Coord)
			e.board.Mark(s.Coord, grid.Frontier)
		}
	case BFS:
		for _, s := range successors {
			e.open = append(e.open, s)
			e.openSet.Put(s.Coord)
			e.board.Mark(s.Coord, grid.Frontier)
		}
	default:
		for _, s := range successors {
			e.relaxOpenSet(current, s)
		}
	}

	return e.status
}

// relaxOpenSet applies the AStar/Greedy cost update for successor s of
// current: compute g, h and f, then insert, replace, or reopen depending
// on where a cell with the same coordinates already lives.
func (e *Engine) relaxOpenSet(current, s *grid.Cell) {
	if e.algo == Greedy {
		// Greedy ignores cost-to-come entirely, making f = h.
		s.G = 0
	} else {
		s.G = current.G + e.metric(current.Coord, s.Coord)
	}
	s.H = e.metric(s.Coord, e.target)
	s.F = s.G + s.H

	switch {
	case !e.openSet.Has(s.Coord) && !e.closedSet.Has(s.Coord):
		e.open = append(e.open, s)
		e.openSet.Put(s.Coord)
		e.board.Mark(s.Coord, grid.Frontier)

	case e.openSet.Has(s.Coord):
		i := indexOf(e.open, s.Coord)
		if e.open[i].F <= s.F {
			return // the stored evaluation is at least as good
		}
		e.open = append(e.open[:i], e.open[i+1:]...)
		e.open = append(e.open, s)
		e.board.Mark(s.Coord, grid.Frontier)

	default: // in CLOSED: reopen when the new evaluation is strictly better
		i := indexOf(e.closed, s.Coord)
		if e.closed[i].F <= s.F {
			return
		}
		e.closed = append(e.closed[:i], e.closed[i+1:]...)
		e.closedSet.Remove(s.Coord)
		e.open = append(e.open, s)
		e.openSet.Put(s.Coord)
		e.board.Mark(s.Coord, grid.Frontier)
	}
}

// expandDijkstra closes the component cell with the smallest distance
// label and relaxes its neighbors, keeping the graph sorted by Dist.
func (e *Engine) expandDijkstra() Status {
	if len(e.graph) == 0 {
		return e.noSolution()
	}

	u := e.graph[0]
	e.graph = e.graph[1:]
	delete(e.graphCells, u.Coord)

	e.closed = append(e.closed, u)
	e.closedSet.Put(u.Coord)

	if u.Coord == e.target {
		e.status = Found
		return e.status
	}
	e.expanded++
	e.board.Mark(u.Coord, grid.Closed)

	// A minimum of +Inf means the remaining component is unreachable;
	// the frontier will drain to NoSolution without further relaxation.
	if math.IsInf(u.Dist, 1) {
		return e.status
	}

	for _, v := range e.successors(u, false) {
		alt := u.Dist + e.metric(u.Coord, v.Coord)
		if alt < v.Dist {
			v.Dist = alt
			v.Prev = u
			e.board.Mark(v.Coord, grid.Frontier)
			sort.SliceStable(e.graph, func(i, j int) bool { return e.graph[i].Dist < e.graph[j].Dist })
		}
	}

	return e.status
}

// noSolution terminates the session with an exhausted frontier and
// restores the Robot tag, which the expansion of the start cell had
// overwritten with Closed.
func (e *Engine) noSolution() Status {
	e.status = NoSolution
	e.board.Mark(e.start, grid.Robot)

	return e.status
}

// metric returns the distance between two coordinates under the session's
// movement rules: Euclidean with diagonal movement enabled, Manhattan
// otherwise. It serves as heuristic, step cost and edge weight alike.
func (e *Engine) metric(a, b grid.Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	if e.diagonal {
		return math.Sqrt(dr*dr + dc*dc)
	}

	return math.Abs(dr) + math.Abs(dc)
}

// indexOf returns the position of the cell with coordinate p, or -1.
// Callers only invoke it after a membership-set hit, so -1 is unexpected.
func indexOf(cells []*grid.Cell, p grid.Coord) int {
	for i, c := range cells {
		if c.Coord == p {
			return i
		}
	}

	return -1
}
