// Package maze generates random perfect mazes (no cycles) as obstacle
// layouts for a grid.Board. The search core never depends on this
// package; it only consumes the layout via Board.SetObstacles.
//
// The generator runs a growing-tree carve over an interior lattice of
// (rows/2)×(cols/2) cells: mostly depth-first, but roughly one carve step
// in ten continues from a random earlier cell instead of the newest one,
// which breaks up the long twisting halls that make depth-first mazes
// easy. Corridors occupy odd indices of the emitted layout, walls the
// even ones, so even requested dimensions are snapped down to odd.
package maze

import (
	"errors"
	"math/rand"
)

// Dimension limits for a generated layout, inclusive. They match the
// board limits, since the layout exists to be adopted by a Board.
const (
	MinDimension = 5
	MaxDimension = 83
)

// ErrDimension indicates requested dimensions outside [5, 83].
var ErrDimension = errors.New("maze: rows and columns must be between 5 and 83")

// Options configures maze generation.
type Options struct {
	// Rand is the randomness source; a fixed seed reproduces a maze.
	Rand *rand.Rand
}

// Option is a functional option for configuring Generate.
type Option func(*Options)

// WithRand sets the randomness source, e.g. for reproducible layouts.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// cell is an interior lattice cell during generation. Carved passages are
// recorded as neighbor links; linked cells share an open wall.
type cell struct {
	row, col int
	open     bool // not yet reached by the carve
	links    []*cell
}

// Generate returns a rows×cols obstacle layout (true = obstacle) forming
// a perfect maze. Even dimensions are snapped down to the nearest odd
// value, so inspect the returned layout for the effective size.
// Returns ErrDimension outside [5, 83].
func Generate(rows, cols int, opts ...Option) ([][]bool, error) {
	if rows < MinDimension || rows > MaxDimension ||
		cols < MinDimension || cols > MaxDimension {
		return nil, ErrDimension
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	lattice := carve(rows/2, cols/2, rng)

	return render(lattice, rows, cols), nil
}

// carve builds the spanning tree of passages over a dimR×dimC lattice.
func carve(dimR, dimC int, rng *rand.Rand) [][]*cell {
	lattice := make([][]*cell, dimR)
	for r := range lattice {
		lattice[r] = make([]*cell, dimC)
		for c := range lattice[r] {
			lattice[r][c] = &cell{row: r, col: c, open: true}
		}
	}

	at := func(r, c int) *cell {
		if r < 0 || r >= dimR || c < 0 || c >= dimC {
			return nil
		}

		return lattice[r][c]
	}

	start := lattice[0][0]
	start.open = false
	active := []*cell{start}
	for len(active) > 0 {
		// Usually continue from the newest cell; now and then jump to a
		// random earlier one to vary the texture.
		var i int
		if rng.Intn(10) == 0 {
			i = rng.Intn(len(active))
		} else {
			i = len(active) - 1
		}
		cur := active[i]
		active = append(active[:i], active[i+1:]...)

		var frontier []*cell
		for _, n := range []*cell{
			at(cur.row+1, cur.col), at(cur.row, cur.col+1),
			at(cur.row-1, cur.col), at(cur.row, cur.col-1),
		} {
			if n != nil && n.open {
				frontier = append(frontier, n)
			}
		}
		if len(frontier) == 0 {
			continue
		}

		next := frontier[rng.Intn(len(frontier))]
		next.open = false
		cur.links = append(cur.links, next)
		next.links = append(next.links, cur)
		active = append(active, cur, next)
	}

	return lattice
}

// render projects the carved lattice onto the rows×cols layout: walls on
// every even row/column, corridors at odd indices, with the wall between
// two linked cells knocked through.
func render(lattice [][]*cell, rows, cols int) [][]bool {
	walls := make([][]bool, rows)
	for r := range walls {
		walls[r] = make([]bool, cols)
		for c := range walls[r] {
			walls[r][c] = r%2 == 0 || c%2 == 0
		}
	}

	for _, row := range lattice {
		for _, cur := range row {
			gr, gc := cur.row*2+1, cur.col*2+1
			walls[gr][gc] = false
			for _, n := range cur.links {
				if n.row == cur.row+1 {
					walls[gr+1][gc] = false
				}
				if n.col == cur.col+1 {
					walls[gr][gc+1] = false
				}
			}
		}
	}

	return walls
}
