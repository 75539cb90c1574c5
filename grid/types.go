// Package grid defines core types, constants, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridplan.
package grid

import (
	"errors"
)

// Dimension limits for a Board, inclusive.
const (
	MinDimension = 5
	MaxDimension = 83
)

// Sentinel errors for grid operations.
var (
	// ErrDimension indicates rows or columns outside [MinDimension, MaxDimension].
	ErrDimension = errors.New("grid: rows and columns must be between 5 and 83")
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrOccupied indicates a placement onto a cell that cannot accept it.
	ErrOccupied = errors.New("grid: cell is not empty")
)

// State tags a single board cell. Empty, Obstacle, Robot and Target describe
// the editable layout; Frontier, Closed and Route are search-session
// artifacts mirroring the OPEN set, the CLOSED set and the reconstructed
// path, and are wiped whenever a new session starts.
type State uint8

const (
	Empty State = iota
	Obstacle
	Robot
	Target
	Frontier
	Closed
	Route
)

// String returns the tag name, mainly for test failure messages.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Obstacle:
		return "Obstacle"
	case Robot:
		return "Robot"
	case Target:
		return "Target"
	case Frontier:
		return "Frontier"
	case Closed:
		return "Closed"
	case Route:
		return "Route"
	default:
		return "Unknown"
	}
}

// Coord identifies a cell by (Row, Col). Row 0 is the top, Col 0 the left.
// Coord is the identity of a cell: two cells are the same element exactly
// when their Coords are equal. All membership and removal tests in search
// collections compare Coords, never search metadata.
type Coord struct {
	Row, Col int
}

// Cell carries a Coord plus mutable search metadata. G, H and F are the
// cost fields of A* and Greedy; Dist is the Dijkstra distance label, with
// math.Inf(1) as the infinity sentinel; Prev is a non-owning back-reference
// to the expanding parent, used only for path reconstruction.
//
// Metadata never participates in identity. Compare cells with Same.
type Cell struct {
	Coord
	G, H, F float64
	Dist    float64
	Prev    *Cell
}

// NewCell returns a fresh cell at (row, col) with zeroed metadata.
func NewCell(row, col int) *Cell {
	return &Cell{Coord: Coord{Row: row, Col: col}}
}

// Same reports whether c and other denote the same board cell,
// i.e. whether their coordinates match.
func (c *Cell) Same(other *Cell) bool {
	return other != nil && c.Coord == other.Coord
}

// At reports whether c sits at the given coordinate.
func (c *Cell) At(p Coord) bool {
	return c.Coord == p
}
