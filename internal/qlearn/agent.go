package qlearn

import "lifegrid/internal/core"

// Agent is the tree grower's position and the action it took last.
type Agent struct {
	Row, Col int
	Prev     Action
}

// StartAgent returns the agent at the bottom centre of an n×n grid.
func StartAgent(n int) Agent {
	return Agent{Row: n - 1, Col: n / 2}
}

// Advance returns the agent after it performs act.
func Advance(a Agent, act Action) Agent {
	if act == GrowTrunk && a.Row > 0 {
		a.Row--
	}
	a.Prev = act
	return a
}

// CellEffect returns the state of (row, col) after an agent at a performs
// act, given the cell currently holds cur. Cells outside the action's
// footprint keep cur.
func CellEffect(a Agent, act Action, row, col int, cur core.Cell) core.Cell {
	switch act {
	case GrowTrunk:
		if row == a.Row && col == a.Col {
			return core.Trunk
		}
	case SproutLeaves:
		if row == a.Row && col >= a.Col-1 && col <= a.Col+1 {
			return core.Leaf
		}
	}
	return cur
}

// footprint calls set for every cell act writes. Off-grid cells are passed
// through; set decides what to do with them.
func footprint(a Agent, act Action, set func(row, col int, c core.Cell)) {
	switch act {
	case GrowTrunk:
		set(a.Row, a.Col, core.Trunk)
	case SproutLeaves:
		set(a.Row, a.Col-1, core.Leaf)
		set(a.Row, a.Col+1, core.Leaf)
		set(a.Row, a.Col, core.Leaf)
	}
}

// apply performs act in place on g and returns the agent's next state.
func apply(g *core.Grid, a Agent, act Action) Agent {
	footprint(a, act, g.Set)
	return Advance(a, act)
}
