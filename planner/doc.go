// Package planner provides the step-wise search engine for grid motion
// planning: five expansion policies — DFS, BFS, A*, Greedy best-first, and
// Dijkstra — behind a single one-expansion-per-call primitive.
//
// What
//
//   - Engine: one search session over a grid.Board, created with New and
//     driven by ExpandOne. Lifecycle Idle → Running → {Found, NoSolution};
//     terminal states make further calls no-ops.
//   - Successor generation in a fixed priority order (Up, Right, Down,
//     Left; diagonals interleaved clockwise when enabled), with diagonal
//     corner-cut prevention: a diagonal move is inadmissible when both
//     cells flanking the crossed corner are obstacles.
//   - A*/Greedy cost updates with stale-entry replacement and reopening
//     from CLOSED; Greedy forces g = 0 so f equals the heuristic.
//   - Dijkstra preprocessing: the start's connected component is collected
//     up front, labelled Dist = +Inf (start 0), and kept as a frontier
//     sorted ascending by Dist with stable ties.
//   - Route: predecessor-link reconstruction with step and distance
//     accounting, tagging the board for display.
//
// Why
//
//   - Driving every algorithm through the same single-expansion surface
//     lets one driver implement stepping, animation and run-to-completion
//     without caring which policy is active, and makes each intermediate
//     frontier/closed state observable on the board.
//
// Metric
//
//	Heuristic, step cost and edge weight are the same function: Euclidean
//	distance with diagonal movement enabled, Manhattan otherwise. Route
//	distances use the same rule, so expansion accounting and route figures
//	agree for every algorithm.
//
// Complexity (N = admissible cells)
//
//   - DFS/BFS: O(N) expansions, O(1) per-successor membership tests.
//   - A*/Greedy: O(N log N) from the stable sort of OPEN per expansion.
//   - Dijkstra: O(N) component collection, then O(N log N) re-sorts.
//
// Errors
//
//   - ErrNilBoard: New received a nil board.
//   - ErrNotFound: Route requested before the engine reached Found.
//   - ErrBadAlgorithm: WithAlgorithm received an unknown value (panics, as
//     option validation does throughout this module).
//
// Usage
//
//	eng, err := planner.New(board, planner.WithAlgorithm(planner.AStar))
//	if err != nil {
//		// ErrNilBoard
//	}
//	for st := eng.Status(); !st.Terminal(); st = eng.ExpandOne() {
//	}
//	route, err := eng.Route() // ErrNotFound unless Found
package planner
