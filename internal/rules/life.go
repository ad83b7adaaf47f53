package rules

import "lifegrid/internal/core"

// conway implements B3/S23 on a bounded grid.
func conway(g *core.Grid, row, col int) core.Cell {
	n := core.CountNeighbors(g, row, col, isAlive)
	if n < 2 || n > 3 {
		return core.Dead
	}
	if n == 3 {
		return core.Alive
	}
	return g.At(row, col)
}

// highLife is Conway with an extra birth on six neighbours.
func highLife(g *core.Grid, row, col int) core.Cell {
	n := core.CountNeighbors(g, row, col, isAlive)
	if n == 3 || n == 6 {
		return core.Alive
	}
	if n < 2 || n > 3 {
		return core.Dead
	}
	return g.At(row, col)
}

// seeds kills every live cell; dead cells with exactly two live neighbours
// are born.
func seeds(g *core.Grid, row, col int) core.Cell {
	if g.At(row, col) == core.Alive {
		return core.Dead
	}
	if core.CountNeighbors(g, row, col, isAlive) == 2 {
		return core.Alive
	}
	return core.Dead
}
