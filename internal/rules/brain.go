package rules

import "lifegrid/internal/core"

func brain(g *core.Grid, row, col int) core.Cell {
	switch g.At(row, col) {
	case core.Alive:
		return core.Dying
	case core.Dying:
		return core.Dead
	}
	if core.CountNeighbors(g, row, col, isAlive) == 2 {
		return core.Alive
	}
	return core.Dead
}
