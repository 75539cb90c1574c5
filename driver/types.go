// Package driver defines configuration options and sentinel errors for
// the step driver sitting between the UI and the search engine.
package driver

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridplan/planner"
)

// Sentinel errors returned by the driver.
var (
	// ErrNilBoard indicates that a nil *grid.Board was passed to New.
	ErrNilBoard = errors.New("driver: board is nil")

	// ErrDelay indicates a negative animation delay.
	ErrDelay = errors.New("driver: animation delay must be non-negative")
)

// Options configures a Driver.
//
// Algorithm and Diagonal are handed to the engine when a session starts.
// Delay is the pause between animated expansions; it is captured once when
// an animation starts, so changing it mid-run takes effect on the next
// start only.
type Options struct {
	Algorithm planner.Algorithm
	Diagonal  bool
	Delay     time.Duration
}

// Option is a functional option for configuring the Driver.
type Option func(*Options)

// WithAlgorithm selects the search strategy for subsequent sessions.
func WithAlgorithm(a planner.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithDiagonal enables diagonal movement for subsequent sessions.
func WithDiagonal() Option {
	return func(o *Options) {
		o.Diagonal = true
	}
}

// WithDelay sets the animation delay.
// Panics with ErrDelay for negative values.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrDelay.Error())
		}
		o.Delay = d
	}
}

// DefaultOptions returns the defaults: DFS, orthogonal movement,
// 500ms between animated expansions.
func DefaultOptions() Options {
	return Options{
		Algorithm: planner.DFS,
		Diagonal:  false,
		Delay:     500 * time.Millisecond,
	}
}
