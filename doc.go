// Package gridplan is an in-memory motion-planning engine for robots on
// 2-D grids: five search policies behind one step-wise driving surface.
//
// 🚀 What is gridplan?
//
//	A small, thread-safe library that brings together:
//		• Board model: bounded grids, obstacle editing, robot & target placement
//		• Uninformed search: DFS, BFS
//		• Informed search: A*, Greedy best-first
//		• Uniform-cost search: Dijkstra over the start's connected component
//		• Diagonal movement with corner-cut prevention
//		• Driving modes: single-step, timed animation, immediate real-time
//		• Maze generation: random perfect mazes as ready-made layouts
//
// ✨ Why choose gridplan?
//
//   - Step-by-step – every algorithm exposes the same one-expansion primitive
//   - Observable – the board carries frontier/closed/route tags as the search runs
//   - Faithful accounting – expansion counts, step counts and route distances agree
//   - Pure Go – no cgo
//
// Everything is organized under four subpackages:
//
//	grid/    — Board, Cell and State: the grid model and its editing rules
//	planner/ — the search engine: five policies over shared OPEN/CLOSED state
//	driver/  — driving modes and the session/edit exclusion rules
//	maze/    — random perfect-maze layouts for Board.SetObstacles
//
// Quick ASCII example (5×5, robot R, target T, BFS route ·):
//
//	. . . . .
//	. . . · T
//	. . · · .
//	. R · . .
//	. . . . .
//
// Dive into the package docs for the exact expansion semantics: successor
// ordering, corner-cut rules, and the Dijkstra component preprocessing.
//
//	go get github.com/katalvlaran/gridplan
package gridplan
