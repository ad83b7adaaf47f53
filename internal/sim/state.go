// Package sim drives the automata: it owns the current/buffer grid pair, the
// tree agent and the active mode, and advances them one generation at a time.
package sim

import (
	"fmt"
	"math/rand/v2"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"
)

// State is everything that survives between frames. Operations take a State
// and return the updated one; the grids are shared, not copied.
type State struct {
	Mode       rules.Kind
	Grid       *core.Grid
	Buf        *core.Grid
	Agent      qlearn.Agent
	Generation int
}

// NewState allocates an n×n grid pair in the base state of mode.
func NewState(n int, mode rules.Kind) (State, error) {
	cur, err := core.NewGrid(n)
	if err != nil {
		return State{}, err
	}
	buf, err := core.NewGrid(n)
	if err != nil {
		return State{}, err
	}
	return Reset(State{Mode: mode, Grid: cur, Buf: buf}), nil
}

// N returns the grid dimension.
func (s State) N() int { return s.Grid.N }

func (s State) mustMatch() {
	if s.Grid == nil || s.Buf == nil || s.Grid.N != s.Buf.N {
		panic(fmt.Sprintf("sim: grid and buffer dimensions differ (%v, %v)", dims(s.Grid), dims(s.Buf)))
	}
}

func dims(g *core.Grid) string {
	if g == nil {
		return "nil"
	}
	return fmt.Sprintf("%dx%d", g.N, g.N)
}

// Reset clears both grids to the mode's base tag and puts the agent back at
// its start position.
func Reset(s State) State {
	s.mustMatch()
	s.Grid.Fill(s.Mode.Base())
	s.Buf.Fill(s.Mode.Base())
	s.Agent = qlearn.StartAgent(s.Grid.N)
	s.Generation = 0
	return s
}

// Randomize resets s and then seeds every cell independently with
// probability p.
func Randomize(s State, rng *rand.Rand, p float64) State {
	s = Reset(s)
	core.Scatter(rng, s.Grid, s.Mode.Seed(), p)
	return s
}

// SelectMode switches to mode, resetting and re-seeding the grid.
func SelectMode(s State, mode rules.Kind, rng *rand.Rand, p float64) State {
	s.Mode = mode
	return Randomize(s, rng, p)
}

// LiveCells counts the cells holding the mode's live tag.
func LiveCells(s State) int {
	return s.Grid.Count(s.Mode.Live())
}

// SetAlive writes c into every in-bounds coordinate and returns how many
// cells were written.
func SetAlive(g *core.Grid, coords []core.Coord, c core.Cell) int {
	n := 0
	for _, p := range coords {
		if !g.InBounds(p.Row, p.Col) {
			continue
		}
		g.Set(p.Row, p.Col, c)
		n++
	}
	return n
}

// ClickCluster returns the clicked cell with its right, below and diagonal
// neighbours, dropping any that fall outside an n×n grid.
func ClickCluster(row, col, n int) []core.Coord {
	out := make([]core.Coord, 0, 4)
	for _, p := range [...]core.Coord{
		{Row: row, Col: col},
		{Row: row, Col: col + 1},
		{Row: row + 1, Col: col},
		{Row: row + 1, Col: col + 1},
	} {
		if p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n {
			out = append(out, p)
		}
	}
	return out
}
