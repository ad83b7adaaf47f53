package rules

import (
	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
)

// tree copies every cell except those touched by the agent's move.
func tree(g *core.Grid, row, col int, mv Move) core.Cell {
	return qlearn.CellEffect(mv.Agent, mv.Action, row, col, g.At(row, col))
}

// Plan decides the tree agent's move for the generation about to be computed
// from g. It is taken once per step, before any cell is evaluated.
func Plan(p qlearn.Policy, g *core.Grid, a qlearn.Agent) Move {
	return Move{Agent: a, Action: qlearn.Decide(p, g, a)}
}
