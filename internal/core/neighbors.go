package core

var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors returns how many of the Moore neighbours of (row, col)
// satisfy pred. Neighbours off the grid are never counted; there is no
// wraparound.
func CountNeighbors(g *Grid, row, col int, pred func(Cell) bool) int {
	n := 0
	for _, off := range mooreOffsets {
		nr, nc := row+off[0], col+off[1]
		if nr < 0 || nr >= g.N || nc < 0 || nc >= g.N {
			continue
		}
		if pred(Cell(g.data[nr*g.N+nc])) {
			n++
		}
	}
	return n
}

// Is returns a predicate matching exactly c.
func Is(c Cell) func(Cell) bool {
	return func(v Cell) bool { return v == c }
}
