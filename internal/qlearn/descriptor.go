package qlearn

import "lifegrid/internal/core"

// Side is a neighbour observation; OK is false when the neighbour is off the
// grid.
type Side struct {
	Cell core.Cell
	OK   bool
}

// Is reports whether the neighbour exists and holds c.
func (s Side) Is(c core.Cell) bool { return s.OK && s.Cell == c }

func side(g *core.Grid, row, col int) Side {
	c, ok := g.Lookup(row, col)
	return Side{Cell: c, OK: ok}
}

// Descriptor is the abstracted state the policy is keyed by. It is
// comparable and used directly as a map key.
type Descriptor struct {
	Left, Right, Down Side
	Current           core.Cell
	Row, Col          int
	// Bottom is set when the agent stands on the last row.
	Bottom bool
}

// Observe builds the descriptor for an agent standing at (row, col).
func Observe(g *core.Grid, row, col int) Descriptor {
	return Descriptor{
		Left:    side(g, row, col-1),
		Right:   side(g, row, col+1),
		Down:    side(g, row+1, col),
		Current: g.At(row, col),
		Row:     row,
		Col:     col,
		Bottom:  row == g.N-1,
	}
}
