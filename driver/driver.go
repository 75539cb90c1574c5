// Package driver exposes the three driving modes of the search engine —
// single-step, timed animation, and immediate real-time — all built from
// the engine's single ExpandOne primitive. It is the only caller of
// ExpandOne, and it serializes expansions against placement edits so the
// engine never runs concurrently with an edit.
package driver

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

// Driver drives a search session over a Board.
//
// A session starts lazily on the first Step (or explicitly via Animate or
// RealTime) and ends when the engine reaches a terminal status or Reset is
// called. While a non-real-time session is active, placement edits are
// rejected as no-ops; in real-time mode every accepted edit discards the
// partial search, reruns the Dijkstra preprocessing when applicable, and
// replans from scratch.
type Driver struct {
	mu    sync.Mutex
	board *grid.Board
	opts  Options

	eng      *planner.Engine
	realTime bool
	ctx      context.Context // replanning context while real-time is active
}

// New returns a Driver over board, applying any number of functional
// Options. Returns ErrNilBoard for a nil board.
func New(board *grid.Board, opts ...Option) (*Driver, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Driver{board: board, opts: o}, nil
}

// SetDelay changes the animation delay for the next animation start.
// A run already underway keeps the delay it captured. Returns ErrDelay
// for negative values.
func (d *Driver) SetDelay(delay time.Duration) error {
	if delay < 0 {
		return ErrDelay
	}
	d.mu.Lock()
	d.opts.Delay = delay
	d.mu.Unlock()

	return nil
}

// Step performs exactly one node expansion, starting a session if none is
// active. Engine state persists between calls, so a stepped search can be
// paused indefinitely. Stepping a terminal session is a no-op that
// reports the terminal status.
func (d *Driver) Step() (planner.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.eng == nil {
		if err := d.startSession(); err != nil {
			return planner.Idle, err
		}
	}

	return d.eng.ExpandOne(), nil
}

// Animate repeatedly expands with a fixed pause between expansions until
// the search terminates or ctx is cancelled. The delay value is captured
// once, here; the run flag is the context, checked before every scheduled
// continuation. Returns the last observed status, with ctx.Err() when the
// run was cancelled.
func (d *Driver) Animate(ctx context.Context) (planner.Status, error) {
	d.mu.Lock()
	delay := d.opts.Delay
	d.mu.Unlock()

	for {
		st, err := d.Step()
		if err != nil {
			return st, err
		}
		if st.Terminal() {
			return st, nil
		}
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// RealTime runs the search to termination immediately and leaves the
// driver in real-time mode: placement edits remain accepted and each one
// triggers a full replan under the same ctx. A second call while
// real-time is already active reports the current status.
func (d *Driver) RealTime(ctx context.Context) (planner.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.realTime && d.eng != nil {
		return d.eng.Status(), nil
	}
	d.realTime = true
	d.ctx = ctx
	if err := d.startSession(); err != nil {
		return planner.Idle, err
	}

	return d.runAll(ctx)
}

// ToggleObstacle flips a cell between empty and obstacle. The edit is
// rejected (returning false) while a non-real-time session is active, or
// when the board refuses the coordinate. In real-time mode every press
// replans immediately, accepted or not, so the coloring always reflects
// the current layout.
func (d *Driver) ToggleObstacle(p grid.Coord) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearForEdit()
	ok := d.editable() && d.board.ToggleObstacle(p) == nil
	d.replan()

	return ok
}

// MoveRobot relocates the robot, under the same session rules as
// ToggleObstacle.
func (d *Driver) MoveRobot(p grid.Coord) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearForEdit()
	ok := d.editable() && d.board.MoveRobot(p) == nil
	d.replan()

	return ok
}

// MoveTarget relocates the target, under the same session rules as
// ToggleObstacle.
func (d *Driver) MoveTarget(p grid.Coord) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearForEdit()
	ok := d.editable() && d.board.MoveTarget(p) == nil
	d.replan()

	return ok
}

// Route reconstructs the found path. Returns planner.ErrNotFound when no
// session has run or the target was not reached.
func (d *Driver) Route() (planner.Route, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.eng == nil {
		return planner.Route{}, planner.ErrNotFound
	}

	return d.eng.Route()
}

// Status reports the engine status, or planner.Idle before any session.
func (d *Driver) Status() planner.Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.eng == nil {
		return planner.Idle
	}

	return d.eng.Status()
}

// Expanded reports the engine's expanded-node count for the current
// session, or 0 before any session.
func (d *Driver) Expanded() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.eng == nil {
		return 0
	}

	return d.eng.Expanded()
}

// Reset ends the session and wipes the search artifacts from the board,
// keeping obstacles and placements — the first click of the clearing
// gesture. Editing becomes possible again.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.eng = nil
	d.realTime = false
	d.ctx = nil
	d.board.ResetSession()
}

// Clear ends the session and returns the board to a blank layout with
// default robot and target — the second click of the clearing gesture.
func (d *Driver) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.eng = nil
	d.realTime = false
	d.ctx = nil
	d.board.Clear()
}

// editable reports whether placement edits are currently accepted:
// always outside a session, and always in real-time mode.
func (d *Driver) editable() bool {
	return d.eng == nil || d.realTime
}

// clearForEdit wipes the previous run's search tags before an edit is
// validated in real-time mode, so a cell tagged Frontier or Closed by the
// run being discarded does not block the edit. Callers hold d.mu.
func (d *Driver) clearForEdit() {
	if d.realTime && d.eng != nil {
		d.board.ResetSession()
	}
}

// startSession creates a fresh engine over the board with the configured
// algorithm and movement rules. Callers hold d.mu.
func (d *Driver) startSession() error {
	popts := []planner.Option{planner.WithAlgorithm(d.opts.Algorithm)}
	if d.opts.Diagonal {
		popts = append(popts, planner.WithDiagonal())
	}
	eng, err := planner.New(d.board, popts...)
	if err != nil {
		return err
	}
	d.eng = eng

	return nil
}

// replan restarts the search after an edit in real-time mode:
// the partial OPEN/CLOSED/Graph state is discarded rather than resumed,
// so the coloring never reflects a layout that no longer exists.
// Outside real-time mode (no active session) it does nothing.
// Callers hold d.mu.
func (d *Driver) replan() {
	if !d.realTime || d.eng == nil {
		return
	}
	if err := d.startSession(); err != nil {
		return
	}
	_, _ = d.runAll(d.ctx)
}

// runAll expands until terminal, checking ctx before every continuation.
// Callers hold d.mu.
func (d *Driver) runAll(ctx context.Context) (planner.Status, error) {
	for {
		select {
		case <-ctx.Done():
			return d.eng.Status(), ctx.Err()
		default:
		}
		if st := d.eng.ExpandOne(); st.Terminal() {
			return st, nil
		}
	}
}
