// File: driver/driver_test.go
//
// Driving-mode tests: stepped sessions, animation, real-time replanning,
// and the session/edit exclusion rules.
package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridplan/driver"
	"github.com/katalvlaran/gridplan/grid"
	"github.com/katalvlaran/gridplan/planner"
)

func newDriver(t *testing.T, opts ...driver.Option) (*driver.Driver, *grid.Board) {
	t.Helper()
	b, err := grid.NewBoard(5, 5)
	require.NoError(t, err)
	d, err := driver.New(b, opts...)
	require.NoError(t, err)

	return d, b
}

// wallOff surrounds the target (1,3) so no route exists.
func wallOff(t *testing.T, d *driver.Driver) {
	t.Helper()
	for _, p := range []grid.Coord{{Row: 0, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 2}, {Row: 1, Col: 4}} {
		require.True(t, d.ToggleObstacle(p))
	}
}

func TestNew_NilBoard(t *testing.T) {
	_, err := driver.New(nil)
	require.ErrorIs(t, err, driver.ErrNilBoard)
}

func TestStep_LazyStartAndPersistence(t *testing.T) {
	d, _ := newDriver(t, driver.WithAlgorithm(planner.BFS))
	require.Equal(t, planner.Idle, d.Status())

	st, err := d.Step()
	require.NoError(t, err)
	require.Equal(t, planner.Running, st)

	// The session survives between calls: stepping to the end succeeds
	// without restarting, and the target on the empty 5x5 board is found.
	for i := 0; i < 100 && !st.Terminal(); i++ {
		st, err = d.Step()
		require.NoError(t, err)
	}
	require.Equal(t, planner.Found, st)

	r, err := d.Route()
	require.NoError(t, err)
	require.Equal(t, 4, r.Steps)
}

func TestStep_TerminalIsNoOp(t *testing.T) {
	d, _ := newDriver(t, driver.WithAlgorithm(planner.BFS))

	var st planner.Status
	for i := 0; i < 100 && !st.Terminal(); i++ {
		var err error
		st, err = d.Step()
		require.NoError(t, err)
	}
	require.Equal(t, planner.Found, st)
	before := d.Expanded()

	st, err := d.Step()
	require.NoError(t, err)
	require.Equal(t, planner.Found, st)
	require.Equal(t, before, d.Expanded())
}

func TestEdits_RejectedDuringSteppedSession(t *testing.T) {
	d, b := newDriver(t)
	_, err := d.Step()
	require.NoError(t, err)

	p := grid.Coord{Row: 2, Col: 2}
	require.False(t, d.ToggleObstacle(p))
	require.False(t, d.MoveRobot(p))
	require.False(t, d.MoveTarget(p))
	require.Equal(t, grid.Empty, b.StateAt(p))

	// Reset ends the session, so edits are accepted again.
	d.Reset()
	require.Equal(t, planner.Idle, d.Status())
	require.True(t, d.ToggleObstacle(p))
	require.Equal(t, grid.Obstacle, b.StateAt(p))
}

func TestEdits_OutOfBoundsRejected(t *testing.T) {
	d, _ := newDriver(t)
	require.False(t, d.ToggleObstacle(grid.Coord{Row: -1, Col: 0}))
	require.False(t, d.MoveRobot(grid.Coord{Row: 9, Col: 9}))
}

func TestAnimate_ZeroDelayRunsToFound(t *testing.T) {
	d, _ := newDriver(t, driver.WithAlgorithm(planner.AStar), driver.WithDelay(0))

	st, err := d.Animate(context.Background())
	require.NoError(t, err)
	require.Equal(t, planner.Found, st)

	r, err := d.Route()
	require.NoError(t, err)
	require.Equal(t, 4.0, r.Distance)
}

func TestAnimate_CancelledContextStopsAfterOneStep(t *testing.T) {
	d, _ := newDriver(t, driver.WithDelay(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := d.Animate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, planner.Running, st)

	// The paused session remains steppable.
	_, err = d.Step()
	require.NoError(t, err)
}

func TestSetDelay(t *testing.T) {
	d, _ := newDriver(t)
	require.ErrorIs(t, d.SetDelay(-time.Millisecond), driver.ErrDelay)
	require.NoError(t, d.SetDelay(0))
}

func TestRealTime_RunsImmediatelyAndReplansOnEdit(t *testing.T) {
	d, _ := newDriver(t, driver.WithAlgorithm(planner.BFS))

	st, err := d.RealTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, planner.Found, st)

	// Edits stay accepted in real-time mode. Sealing the target off must
	// flip the replanned outcome to NoSolution.
	wallOff(t, d)
	require.Equal(t, planner.NoSolution, d.Status())
	_, err = d.Route()
	require.ErrorIs(t, err, planner.ErrNotFound)

	// Opening the wall replans back to Found.
	require.True(t, d.ToggleObstacle(grid.Coord{Row: 2, Col: 3}))
	require.Equal(t, planner.Found, d.Status())
}

func TestRealTime_MoveTargetReplans(t *testing.T) {
	d, b := newDriver(t, driver.WithAlgorithm(planner.Dijkstra))

	_, err := d.RealTime(context.Background())
	require.NoError(t, err)

	dst := grid.Coord{Row: 3, Col: 3}
	require.True(t, d.MoveTarget(dst))
	require.Equal(t, planner.Found, d.Status())
	require.Equal(t, dst, b.Target())

	r, err := d.Route()
	require.NoError(t, err)
	require.Equal(t, dst, r.Cells[len(r.Cells)-1])
	require.Equal(t, 2, r.Steps)
}

func TestRealTime_SecondCallReportsStatus(t *testing.T) {
	d, _ := newDriver(t)

	first, err := d.RealTime(context.Background())
	require.NoError(t, err)
	st, err := d.RealTime(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, st)
}

func TestResetThenClear_TwoStageGesture(t *testing.T) {
	d, b := newDriver(t, driver.WithAlgorithm(planner.BFS))
	p := grid.Coord{Row: 2, Col: 2}
	require.True(t, d.ToggleObstacle(p))

	_, err := d.RealTime(context.Background())
	require.NoError(t, err)

	// First stage: search artifacts go, obstacles stay.
	d.Reset()
	require.Equal(t, planner.Idle, d.Status())
	require.Equal(t, grid.Obstacle, b.StateAt(p))

	// Second stage: blank layout, default placements.
	d.Clear()
	require.Equal(t, grid.Empty, b.StateAt(p))
	require.Equal(t, grid.Coord{Row: 3, Col: 1}, b.Robot())
	require.Equal(t, grid.Coord{Row: 1, Col: 3}, b.Target())
}

func TestAccessors_BeforeAnySession(t *testing.T) {
	d, _ := newDriver(t)
	require.Equal(t, planner.Idle, d.Status())
	require.Zero(t, d.Expanded())
	_, err := d.Route()
	require.ErrorIs(t, err, planner.ErrNotFound)
}
