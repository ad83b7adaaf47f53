package sim

import (
	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"

	"golang.org/x/sync/errgroup"
)

// Stepper advances a State by one generation.
type Stepper struct {
	// Policy drives the tree agent; nil makes the agent idle.
	Policy qlearn.Policy
	// Workers splits non-agent rules into row bands evaluated concurrently.
	// Values below 2 step on the calling goroutine.
	Workers int
}

// Step writes the next generation into the buffer, swaps the grids and
// returns the new state with its live cell count. It panics if the grid and
// buffer sizes differ.
func (st *Stepper) Step(s State) (State, int) {
	s.mustMatch()

	var mv rules.Move
	if s.Mode.Agent() {
		mv = rules.Plan(st.Policy, s.Grid, s.Agent)
	}

	if st.Workers > 1 && !s.Mode.Agent() {
		st.fillParallel(s, mv)
	} else {
		fillRows(s.Mode, s.Grid, s.Buf, 0, s.Grid.N, mv)
	}

	s.Grid, s.Buf = s.Buf, s.Grid
	if s.Mode.Agent() {
		s.Agent = qlearn.Advance(s.Agent, mv.Action)
	}
	s.Generation++
	return s, LiveCells(s)
}

func (st *Stepper) fillParallel(s State, mv rules.Move) {
	var (
		eg            errgroup.Group
		n             = s.Grid.N
		rowsPerWorker = (n + st.Workers - 1) / st.Workers
	)
	for start := 0; start < n; start += rowsPerWorker {
		end := min(start+rowsPerWorker, n)
		eg.Go(func() error {
			fillRows(s.Mode, s.Grid, s.Buf, start, end, mv)
			return nil
		})
	}
	_ = eg.Wait()
}

func fillRows(k rules.Kind, cur, buf *core.Grid, from, to int, mv rules.Move) {
	for row := from; row < to; row++ {
		for col := 0; col < cur.N; col++ {
			buf.Set(row, col, rules.Next(k, cur, row, col, mv))
		}
	}
}
