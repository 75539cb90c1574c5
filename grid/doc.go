// Package grid provides the editable state model for robot motion planning
// on a bounded 2-D grid: coordinates, cells, state tags, and the Board that
// enforces the placement rules.
//
// What
//
//   - Coord: a comparable (Row, Col) identity. Every membership and removal
//     decision in the search collections compares coordinates only.
//   - Cell: a Coord plus search metadata (G, H, F, Dist, Prev). Metadata
//     never participates in identity.
//   - State: the seven cell tags — Empty, Obstacle, Robot, Target,
//     Frontier, Closed, Route.
//   - Board: a rows×cols state array with exactly one Robot and one Target
//     at all times, obstacle editing, robot/target relocation, session
//     reset and two-stage clearing, per-cell queries and a deep-copy
//     snapshot for renderers.
//
// Why
//
//   - The search engine needs a substrate whose invariants it can trust:
//     dimensions validated once at construction, placements always legal,
//     and a clean separation between layout (obstacles, robot, target) and
//     session artifacts (frontier, closed, route tags).
//
// Invariants
//
//   - rows, cols ∈ [5, 83]; ErrDimension otherwise, at construction only.
//   - Exactly one Robot and one Target; obstacles never coincide with
//     either. MoveRobot/MoveTarget require an empty destination
//     (ErrOccupied) inside the board (ErrOutOfBounds).
//   - ResetSession clears Frontier/Closed/Route and re-asserts the Robot
//     and Target tags; Clear additionally removes obstacles and restores
//     the default corners (robot at (rows-2, 1), target at (1, cols-2)).
//
// Complexity (R = rows, C = cols)
//
//   - Single-cell operations: O(1).
//   - ResetSession, Clear, SetObstacles, States: O(R×C).
//
// Usage
//
//	b, err := grid.NewBoard(21, 21)
//	if err != nil {
//		// ErrDimension
//	}
//	_ = b.SetObstacle(grid.Coord{Row: 3, Col: 7})
//	snapshot := b.States() // deep copy, safe to hand to a renderer
package grid
