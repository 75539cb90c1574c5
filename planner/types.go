// Package planner defines core types and configuration options
// for the grid motion-planning search engine.
//
// The engine runs one of five search strategies over a grid.Board,
// one node expansion per call, so an external driver can single-step,
// animate, or run to completion. Explored cells are tagged on the board
// (Frontier / Closed / Route) for a rendering collaborator to color.
//
// Strategies:
//
//	– DFS:      OPEN set is a stack; successors pushed at the front.
//	– BFS:      OPEN set is a queue; successors appended at the back.
//	– AStar:    OPEN sorted ascending by f = g + h; cheapest expanded first.
//	– Greedy:   A* with g forced to 0, i.e. pure heuristic descent.
//	– Dijkstra: distance-ordered frontier over the start's connected
//	  component, built once by a preprocessing pass.
//
// Movement:
//
//	Orthogonal order is Up, Right, Down, Left; enabling diagonal movement
//	interleaves the four diagonals clockwise. A diagonal move is refused
//	when both cells flanking the shared corner are obstacles — the robot
//	has volume and cannot slip between them.
//
// Errors (sentinel):
//
//	– ErrNilBoard     if a nil *grid.Board is passed to New.
//	– ErrNotFound     if a route is requested before the target is found.
//	– ErrBadAlgorithm if an unknown Algorithm value is configured.
package planner

import (
	"errors"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilBoard indicates that a nil *grid.Board was passed to New.
	ErrNilBoard = errors.New("planner: board is nil")

	// ErrNotFound indicates a route was requested while the engine has not
	// reached the Found state.
	ErrNotFound = errors.New("planner: no route available")

	// ErrBadAlgorithm indicates an Algorithm value outside the known set.
	ErrBadAlgorithm = errors.New("planner: unknown algorithm")
)

// Algorithm selects the expansion policy applied by ExpandOne.
type Algorithm int

const (
	// DFS is depth-first search: newest frontier cell expands first.
	DFS Algorithm = iota
	// BFS is breadth-first search: oldest frontier cell expands first.
	BFS
	// AStar expands the open cell minimizing f = g + h.
	AStar
	// Greedy expands the open cell minimizing h alone (g is kept at 0).
	Greedy
	// Dijkstra expands the component cell with the smallest distance label.
	Dijkstra
)

// String returns the conventional name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case DFS:
		return "DFS"
	case BFS:
		return "BFS"
	case AStar:
		return "A*"
	case Greedy:
		return "Greedy"
	case Dijkstra:
		return "Dijkstra"
	default:
		return "Unknown"
	}
}

// valid reports whether a names one of the five strategies.
func (a Algorithm) valid() bool {
	return a >= DFS && a <= Dijkstra
}

// Status is the engine lifecycle: Idle until the first expansion, Running
// while the frontier is being consumed, then exactly one of the terminal
// states. ExpandOne on a terminal engine is a no-op.
type Status int

const (
	// Idle means no expansion has happened yet.
	Idle Status = iota
	// Running means the search is underway and the frontier is non-empty.
	Running
	// Found means the target has been closed; a route can be reconstructed.
	Found
	// NoSolution means the frontier emptied without reaching the target.
	NoSolution
)

// Terminal reports whether s is one of the two end states.
func (s Status) Terminal() bool { return s == Found || s == NoSolution }

// String returns the state name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Found:
		return "Found"
	case NoSolution:
		return "NoSolution"
	default:
		return "Unknown"
	}
}

// Options configures a search session.
//
// Algorithm – one of the five strategies (default DFS).
// Diagonal  – whether diagonal movement is allowed. The flag also selects
// the metric: Euclidean distances for heuristic, step cost and route
// accounting when set, Manhattan otherwise.
type Options struct {
	Algorithm Algorithm
	Diagonal  bool
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithAlgorithm selects the expansion policy.
// Panics with ErrBadAlgorithm for values outside the known set.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if !a.valid() {
			panic(ErrBadAlgorithm.Error())
		}
		o.Algorithm = a
	}
}

// WithDiagonal enables diagonal movement and the Euclidean metric.
func WithDiagonal() Option {
	return func(o *Options) {
		o.Diagonal = true
	}
}

// DefaultOptions returns the defaults: DFS, orthogonal movement only.
func DefaultOptions() Options {
	return Options{Algorithm: DFS, Diagonal: false}
}
