// File: grid/board_test.go
package grid

import (
	"testing"
)

// TestNewBoard_Dimensions ensures the [5,83] range is enforced at the
// construction boundary, never deeper in.
func TestNewBoard_Dimensions(t *testing.T) {
	for _, bad := range [][2]int{{4, 10}, {10, 4}, {84, 10}, {10, 84}, {0, 0}} {
		if _, err := NewBoard(bad[0], bad[1]); err != ErrDimension {
			t.Errorf("NewBoard(%d,%d): got %v; want ErrDimension", bad[0], bad[1], err)
		}
	}
	for _, ok := range [][2]int{{5, 5}, {83, 83}, {41, 41}, {5, 83}} {
		if _, err := NewBoard(ok[0], ok[1]); err != nil {
			t.Errorf("NewBoard(%d,%d): unexpected error %v", ok[0], ok[1], err)
		}
	}
}

// TestNewBoard_DefaultPlacement verifies the robot and target corners and
// that exactly one cell carries each tag.
func TestNewBoard_DefaultPlacement(t *testing.T) {
	b, err := NewBoard(7, 9)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if got, want := b.Robot(), (Coord{Row: 5, Col: 1}); got != want {
		t.Errorf("Robot() = %v; want %v", got, want)
	}
	if got, want := b.Target(), (Coord{Row: 1, Col: 7}); got != want {
		t.Errorf("Target() = %v; want %v", got, want)
	}

	robots, targets := 0, 0
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			switch b.StateAt(Coord{Row: r, Col: c}) {
			case Robot:
				robots++
			case Target:
				targets++
			}
		}
	}
	if robots != 1 || targets != 1 {
		t.Errorf("got %d robots, %d targets; want exactly 1 of each", robots, targets)
	}
}

func TestBoard_ObstacleEditing(t *testing.T) {
	b, _ := NewBoard(5, 5)

	p := Coord{Row: 2, Col: 2}
	if err := b.SetObstacle(p); err != nil {
		t.Fatalf("SetObstacle: %v", err)
	}
	if b.StateAt(p) != Obstacle {
		t.Fatalf("StateAt(%v) = %v; want Obstacle", p, b.StateAt(p))
	}
	// Obstacles never coincide with the robot or the target.
	if err := b.SetObstacle(b.Robot()); err != ErrOccupied {
		t.Errorf("SetObstacle on robot: got %v; want ErrOccupied", err)
	}
	if err := b.SetObstacle(b.Target()); err != ErrOccupied {
		t.Errorf("SetObstacle on target: got %v; want ErrOccupied", err)
	}
	if err := b.SetObstacle(Coord{Row: -1, Col: 0}); err != ErrOutOfBounds {
		t.Errorf("SetObstacle out of bounds: got %v; want ErrOutOfBounds", err)
	}

	// Toggling flips Empty↔Obstacle and leaves robot/target untouched.
	if err := b.ToggleObstacle(p); err != nil {
		t.Fatalf("ToggleObstacle: %v", err)
	}
	if b.StateAt(p) != Empty {
		t.Errorf("after toggle StateAt(%v) = %v; want Empty", p, b.StateAt(p))
	}
	if err := b.ToggleObstacle(b.Robot()); err != nil {
		t.Fatalf("ToggleObstacle on robot: %v", err)
	}
	if b.StateAt(b.Robot()) != Robot {
		t.Errorf("toggle must not change the robot cell")
	}

	if err := b.ClearObstacle(p); err != ErrOccupied {
		t.Errorf("ClearObstacle on empty cell: got %v; want ErrOccupied", err)
	}
}

func TestBoard_MoveRobotAndTarget(t *testing.T) {
	b, _ := NewBoard(5, 5)
	oldRobot := b.Robot()

	dst := Coord{Row: 2, Col: 2}
	if err := b.MoveRobot(dst); err != nil {
		t.Fatalf("MoveRobot: %v", err)
	}
	if b.Robot() != dst || b.StateAt(dst) != Robot {
		t.Errorf("robot not relocated to %v", dst)
	}
	if b.StateAt(oldRobot) != Empty {
		t.Errorf("vacated robot cell = %v; want Empty", b.StateAt(oldRobot))
	}

	// Occupied destinations are refused.
	if err := b.MoveTarget(dst); err != ErrOccupied {
		t.Errorf("MoveTarget onto robot: got %v; want ErrOccupied", err)
	}
	_ = b.SetObstacle(Coord{Row: 0, Col: 0})
	if err := b.MoveRobot(Coord{Row: 0, Col: 0}); err != ErrOccupied {
		t.Errorf("MoveRobot onto obstacle: got %v; want ErrOccupied", err)
	}
}

// TestBoard_ResetSession checks that search artifacts vanish while the
// layout survives, and that Clear wipes everything back to defaults.
func TestBoard_ResetSession(t *testing.T) {
	b, _ := NewBoard(5, 5)
	_ = b.SetObstacle(Coord{Row: 2, Col: 2})
	b.Mark(Coord{Row: 0, Col: 0}, Frontier)
	b.Mark(Coord{Row: 0, Col: 1}, Closed)
	b.Mark(Coord{Row: 0, Col: 2}, Route)

	b.ResetSession()
	for _, p := range []Coord{{0, 0}, {0, 1}, {0, 2}} {
		if b.StateAt(p) != Empty {
			t.Errorf("StateAt(%v) = %v after reset; want Empty", p, b.StateAt(p))
		}
	}
	if b.StateAt(Coord{Row: 2, Col: 2}) != Obstacle {
		t.Errorf("obstacle lost by ResetSession")
	}
	if b.StateAt(b.Robot()) != Robot || b.StateAt(b.Target()) != Target {
		t.Errorf("robot/target tags not re-asserted by ResetSession")
	}

	b.Clear()
	if b.StateAt(Coord{Row: 2, Col: 2}) != Empty {
		t.Errorf("obstacle survived Clear")
	}
	if got, want := b.Robot(), (Coord{Row: 3, Col: 1}); got != want {
		t.Errorf("Robot() after Clear = %v; want %v", got, want)
	}
}

func TestBoard_SetObstacles(t *testing.T) {
	b, _ := NewBoard(5, 5)

	layout := make([][]bool, 5)
	for r := range layout {
		layout[r] = make([]bool, 5)
	}
	layout[0][0] = true
	layout[b.Robot().Row][b.Robot().Col] = true // must not displace the robot

	if err := b.SetObstacles(layout); err != nil {
		t.Fatalf("SetObstacles: %v", err)
	}
	if b.StateAt(Coord{Row: 0, Col: 0}) != Obstacle {
		t.Errorf("layout obstacle not adopted")
	}
	if b.StateAt(b.Robot()) != Robot {
		t.Errorf("layout overwrote the robot cell")
	}

	if err := b.SetObstacles(layout[:4]); err != ErrDimension {
		t.Errorf("mismatched layout: got %v; want ErrDimension", err)
	}
}

// TestBoard_StatesSnapshot ensures States() is a deep copy.
func TestBoard_StatesSnapshot(t *testing.T) {
	b, _ := NewBoard(5, 5)
	snap := b.States()
	snap[0][0] = Obstacle
	if b.StateAt(Coord{Row: 0, Col: 0}) != Empty {
		t.Errorf("mutating the snapshot leaked into the board")
	}
}
