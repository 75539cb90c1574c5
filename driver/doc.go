// Package driver sits between a UI and the search engine, turning the
// engine's single-expansion primitive into three driving modes and
// enforcing the session/edit exclusion rules.
//
// What
//
//   - Step: one node expansion per call; the session starts lazily and
//     persists between calls, so a search can be paused indefinitely.
//   - Animate: expansions separated by a fixed delay, captured once when
//     the run starts; cancellation is cooperative through the context,
//     checked before every scheduled continuation.
//   - RealTime: the search runs to termination immediately, and placement
//     edits stay accepted — each one discards the partial search and
//     replans from scratch, rerunning the Dijkstra preprocessing when that
//     algorithm is selected.
//   - ToggleObstacle/MoveRobot/MoveTarget: rejected as no-ops (false)
//     while a non-real-time session is active; in real-time mode they are
//     validated against a session-cleared board and always trigger a
//     replan.
//   - Reset and Clear: the two-stage clearing gesture — first search
//     artifacts only, then the whole layout.
//
// Why
//
//   - The engine assumes a single logical thread of control: expansions
//     must never interleave with layout edits. The driver owns that
//     serialization with one mutex, so the engine itself stays lock-free.
//
// Errors
//
//   - ErrNilBoard: New received a nil board.
//   - ErrDelay: a negative animation delay (SetDelay returns it, WithDelay
//     panics).
//
// Usage
//
//	d, err := driver.New(board,
//		driver.WithAlgorithm(planner.Dijkstra),
//		driver.WithDelay(50*time.Millisecond),
//	)
//	if err != nil {
//		// ErrNilBoard
//	}
//	st, err := d.Animate(ctx) // (status, ctx.Err()) when cancelled
package driver
