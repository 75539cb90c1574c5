// Package grid models the editable state of a robot motion-planning grid:
// a rectangular array of tagged cells with exactly one robot and one
// target, plus the session bookkeeping a search engine layers on top.
//
// A Board is created once per grid-size change and then mutated in place
// by the editor (obstacles, robot, target) and by the engine (Frontier /
// Closed / Route tags only). The engine borrows the Board per call and
// never retains it across sessions.
package grid

// Board owns the rows×cols state array and the robot/target placement.
//
// Invariants:
//
//   - exactly one cell is tagged Robot and one Target at any time;
//   - Obstacle cells never coincide with Robot or Target;
//   - every tag other than Obstacle/Robot/Target is a search artifact,
//     reset by ResetSession before a new search starts.
type Board struct {
	rows, cols int
	states     [][]State
	robot      Coord
	target     Coord
}

// NewBoard constructs a Board with all cells Empty, the robot at
// (rows-2, 1) and the target at (1, cols-2).
// Returns ErrDimension unless rows and cols are both in [5, 83].
func NewBoard(rows, cols int) (*Board, error) {
	if rows < MinDimension || rows > MaxDimension ||
		cols < MinDimension || cols > MaxDimension {
		return nil, ErrDimension
	}
	states := make([][]State, rows)
	for r := range states {
		states[r] = make([]State, cols)
	}
	b := &Board{rows: rows, cols: cols, states: states}
	b.robot = Coord{Row: rows - 2, Col: 1}
	b.target = Coord{Row: 1, Col: cols - 2}
	b.states[b.robot.Row][b.robot.Col] = Robot
	b.states[b.target.Row][b.target.Col] = Target

	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Robot returns the robot's current coordinate (the search start).
func (b *Board) Robot() Coord { return b.robot }

// Target returns the target's current coordinate.
func (b *Board) Target() Coord { return b.target }

// InBounds reports whether p lies within the board.
func (b *Board) InBounds(p Coord) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// StateAt returns the tag at p, or Empty if p is out of bounds.
func (b *Board) StateAt(p Coord) State {
	if !b.InBounds(p) {
		return Empty
	}

	return b.states[p.Row][p.Col]
}

// States returns a deep copy of the full tag array, row-major.
// Intended for rendering snapshots; mutating the copy has no effect.
func (b *Board) States() [][]State {
	out := make([][]State, b.rows)
	for r := range out {
		out[r] = make([]State, b.cols)
		copy(out[r], b.states[r])
	}

	return out
}

// Mark overwrites the tag at p. It is the engine's tag-update primitive
// (Frontier/Closed/Route coloring); out-of-bounds coordinates are ignored.
// Editor mutations should use the checked SetObstacle/MoveRobot family
// instead.
func (b *Board) Mark(p Coord, s State) {
	if b.InBounds(p) {
		b.states[p.Row][p.Col] = s
	}
}

// SetObstacle places an obstacle at p.
// Returns ErrOutOfBounds or, if p is not Empty, ErrOccupied.
func (b *Board) SetObstacle(p Coord) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	if b.states[p.Row][p.Col] != Empty {
		return ErrOccupied
	}
	b.states[p.Row][p.Col] = Obstacle

	return nil
}

// ClearObstacle removes the obstacle at p, leaving the cell Empty.
// Returns ErrOutOfBounds, or ErrOccupied if p holds no obstacle.
func (b *Board) ClearObstacle(p Coord) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	if b.states[p.Row][p.Col] != Obstacle {
		return ErrOccupied
	}
	b.states[p.Row][p.Col] = Empty

	return nil
}

// ToggleObstacle flips p between Empty and Obstacle, the single-click
// editing gesture. Cells holding the robot or the target are left alone.
// Returns ErrOutOfBounds for coordinates off the board.
func (b *Board) ToggleObstacle(p Coord) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	switch b.states[p.Row][p.Col] {
	case Empty:
		b.states[p.Row][p.Col] = Obstacle
	case Obstacle:
		b.states[p.Row][p.Col] = Empty
	}

	return nil
}

// MoveRobot relocates the robot to p, which must be an Empty cell.
// The vacated cell becomes Empty.
func (b *Board) MoveRobot(p Coord) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	if b.states[p.Row][p.Col] != Empty {
		return ErrOccupied
	}
	b.states[b.robot.Row][b.robot.Col] = Empty
	b.robot = p
	b.states[p.Row][p.Col] = Robot

	return nil
}

// MoveTarget relocates the target to p, which must be an Empty cell.
// The vacated cell becomes Empty.
func (b *Board) MoveTarget(p Coord) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	if b.states[p.Row][p.Col] != Empty {
		return ErrOccupied
	}
	b.states[b.target.Row][b.target.Col] = Empty
	b.target = p
	b.states[p.Row][p.Col] = Target

	return nil
}

// SetObstacles adopts an obstacle layout, e.g. one produced by the maze
// generator. layout must match the board dimensions exactly
// (ErrDimension otherwise). Only Empty cells are converted, so the robot
// and the target survive the import.
func (b *Board) SetObstacles(layout [][]bool) error {
	if len(layout) != b.rows {
		return ErrDimension
	}
	for r, row := range layout {
		if len(row) != b.cols {
			return ErrDimension
		}
		for c, wall := range row {
			if wall && b.states[r][c] == Empty {
				b.states[r][c] = Obstacle
			}
		}
	}

	return nil
}

// ResetSession wipes the search artifacts (Frontier, Closed, Route) back
// to Empty and re-asserts the Robot and Target tags, leaving obstacles in
// place. Call it before starting a new search on the same layout.
func (b *Board) ResetSession() {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			switch b.states[r][c] {
			case Frontier, Closed, Route:
				b.states[r][c] = Empty
			}
		}
	}
	b.states[b.robot.Row][b.robot.Col] = Robot
	b.states[b.target.Row][b.target.Col] = Target
}

// Clear removes everything: search artifacts, obstacles, and returns the
// robot and target to their default corners. Second stage of the clearing
// gesture, with ResetSession as the first.
func (b *Board) Clear() {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			b.states[r][c] = Empty
		}
	}
	b.robot = Coord{Row: b.rows - 2, Col: 1}
	b.target = Coord{Row: 1, Col: b.cols - 2}
	b.states[b.robot.Row][b.robot.Col] = Robot
	b.states[b.target.Row][b.target.Col] = Target
}
