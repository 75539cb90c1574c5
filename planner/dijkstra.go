package planner

import (
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridplan/grid"
)

// initDijkstra is the preprocessing pass that must run immediately before
// a Dijkstra session starts, after every obstacle edit: it depends on the
// obstacle placement in force at that moment.
//
// Dijkstra keeps looking for the target while its queue is non-empty, so a
// negative answer is only possible when the queue is confined to the start's
// connected component — a target in a different component then surfaces as
// NoSolution once the component drains, never as a crash. Hence:
//
//  1. Collect the connected component containing the start, using the same
//     admissibility and corner rules as expansion (fresh-cell mode).
//  2. Initialize every member with Dist = +Inf and no predecessor; the
//     start alone gets Dist = 0.
//  3. Sort the component ascending by Dist to form the initial frontier.
func (e *Engine) initDijkstra() {
	start := grid.NewCell(e.start.Row, e.start.Col)

	component := []*grid.Cell{start}
	seen := mapset.New[grid.Coord]()
	seen.Put(start.Coord)

	stack := []*grid.Cell{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range e.successors(v, true) {
			if seen.Has(c.Coord) {
				continue
			}
			seen.Put(c.Coord)
			stack = append(stack, c)
			component = append(component, c)
		}
	}

	for _, v := range component {
		v.Dist = math.Inf(1)
		v.Prev = nil
	}
	component[0].Dist = 0 // the start is always the first cell collected

	sort.SliceStable(component, func(i, j int) bool { return component[i].Dist < component[j].Dist })

	e.graph = component
	e.graphCells = make(map[grid.Coord]*grid.Cell, len(component))
	for _, v := range component {
		e.graphCells[v.Coord] = v
	}
}
