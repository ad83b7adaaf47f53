package sim

import (
	"context"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"
)

func TestStepBlinker(t *testing.T) {
	st := mustState(t, 5, rules.Conway)
	SetAlive(st.Grid, []core.Coord{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}, core.Alive)
	original := st.Grid.Clone()

	var stepper Stepper
	st, live := stepper.Step(st)
	if live != 3 {
		t.Fatalf("blinker should keep 3 live cells, got %d", live)
	}
	if st.Grid.Equal(original) {
		t.Fatal("blinker should change after one step")
	}
	st, _ = stepper.Step(st)
	if !st.Grid.Equal(original) {
		t.Fatal("blinker should return after two steps")
	}
	if st.Generation != 2 {
		t.Fatalf("expected generation 2, got %d", st.Generation)
	}
}

func TestStepParallelMatchesSequential(t *testing.T) {
	for _, k := range []rules.Kind{rules.Conway, rules.HighLife, rules.Seeds, rules.BriansBrain} {
		a := Randomize(mustState(t, 37, k), core.NewRNG(4).Source(), 0.3)
		b := Randomize(mustState(t, 37, k), core.NewRNG(4).Source(), 0.3)

		seq := Stepper{Workers: 1}
		par := Stepper{Workers: 4}
		for i := 0; i < 10; i++ {
			var la, lb int
			a, la = seq.Step(a)
			b, lb = par.Step(b)
			if la != lb || !a.Grid.Equal(b.Grid) {
				t.Fatalf("%v: parallel step %d diverged (%d vs %d live)", k, i, la, lb)
			}
		}
	}
}

func TestStepLiveCountMatchesGrid(t *testing.T) {
	st := Randomize(mustState(t, 20, rules.BriansBrain), core.NewRNG(2).Source(), 0.2)
	var stepper Stepper
	for i := 0; i < 5; i++ {
		var live int
		st, live = stepper.Step(st)
		if live != st.Grid.Count(core.Alive) {
			t.Fatalf("step %d reported %d live, grid has %d", i, live, st.Grid.Count(core.Alive))
		}
	}
}

func TestStepPanicsOnMismatchedBuffer(t *testing.T) {
	st := mustState(t, 4, rules.Conway)
	st.Buf = core.MustGrid(5)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched grid and buffer")
		}
	}()
	var stepper Stepper
	stepper.Step(st)
}

func TestTreeWithoutPolicyIsIdle(t *testing.T) {
	st := mustState(t, 8, rules.Tree)
	var stepper Stepper
	st, live := stepper.Step(st)
	if live != 0 || st.Grid.Count(core.Empty) != 64 {
		t.Fatal("idle agent should leave the grid empty")
	}
	if st.Agent.Prev != qlearn.DoNothing || st.Agent.Row != 7 {
		t.Fatalf("idle agent should stay put and remember do-nothing, got %+v", st.Agent)
	}
}

func TestTrainedTreeStaysInBounds(t *testing.T) {
	const n = 8
	cfg := qlearn.DefaultConfig()
	cfg.Iterations = 20_000
	cfg.ReportEvery = 0
	table, err := qlearn.Train(context.Background(), n, cfg, nil)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	st := mustState(t, n, rules.Tree)
	stepper := Stepper{Policy: table}
	for i := 0; i < 4*n; i++ {
		before := st.Grid.Clone()
		agent := st.Agent
		st, _ = stepper.Step(st)

		if st.Agent.Row < 0 || st.Agent.Row >= n || st.Agent.Col < 0 || st.Agent.Col >= n {
			t.Fatalf("step %d: agent left the grid: %+v", i, st.Agent)
		}
		if st.Agent.Prev == qlearn.SproutLeaves {
			if below, ok := before.Lookup(agent.Row+1, agent.Col); !ok || below != core.Trunk {
				t.Fatalf("step %d: sprouted without trunk below", i)
			}
		}
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if row == agent.Row && col >= agent.Col-1 && col <= agent.Col+1 {
					continue
				}
				if st.Grid.At(row, col) != before.At(row, col) {
					t.Fatalf("step %d: cell (%d,%d) outside the agent footprint changed", i, row, col)
				}
			}
		}
	}
	if st.Grid.Count(core.Trunk) == 0 {
		t.Fatal("trained agent should have grown some trunk")
	}
}
