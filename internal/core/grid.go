package core

import (
	"errors"
	"fmt"
)

// ErrSize reports a grid dimension that cannot be simulated.
var ErrSize = errors.New("core: invalid grid size")

// Cell is the state of a single grid cell. Two-state rules use Dead and Alive;
// three-state rules add Dying. The Tree rule reads the same tags as Empty,
// Leaf and Trunk.
type Cell uint8

const (
	Dead Cell = iota
	Alive
	Dying
)

const (
	Empty = Dead
	Leaf  = Alive
	Trunk = Dying
)

// Valid reports whether c is one of the known tags.
func (c Cell) Valid() bool { return c <= Dying }

func (c Cell) String() string {
	switch c {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid stores an N×N square of cells in row-major order.
type Grid struct {
	N    int
	data []uint8
}

// NewGrid allocates an all-Dead grid with n rows and n columns.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, n)
	}
	return &Grid{N: n, data: make([]uint8, n*n)}, nil
}

// MustGrid is NewGrid for sizes known to be valid.
func MustGrid(n int) *Grid {
	g, err := NewGrid(n)
	if err != nil {
		panic(err)
	}
	return g
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.N + col }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// At returns the cell at (row, col). Callers must stay in bounds.
func (g *Grid) At(row, col int) Cell { return Cell(g.data[g.Index(row, col)]) }

// Lookup returns the cell at (row, col) and false when it is off the grid.
func (g *Grid) Lookup(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Dead, false
	}
	return Cell(g.data[g.Index(row, col)]), true
}

// Set writes c at (row, col). Off-grid writes are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[g.Index(row, col)] = uint8(c)
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.data {
		g.data[i] = uint8(c)
	}
}

// Clear fills the grid with Dead cells.
func (g *Grid) Clear() { g.Fill(Dead) }

// CopyFrom overwrites g with the contents of src. Both grids must share N.
func (g *Grid) CopyFrom(src *Grid) {
	if g.N != src.N {
		panic(fmt.Sprintf("core: copy between %dx%d and %dx%d grids", src.N, src.N, g.N, g.N))
	}
	copy(g.data, src.data)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{N: g.N, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.data {
		if Cell(v) == c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.N != o.N {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
