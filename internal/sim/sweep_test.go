package sim

import (
	"context"
	"errors"
	"testing"

	"lifegrid/internal/qlearn"
)

func sweepBase() qlearn.Config {
	cfg := qlearn.DefaultConfig()
	cfg.Iterations = 3000
	cfg.ReportEvery = 0
	return cfg
}

func TestGridCombinesEveryPair(t *testing.T) {
	cands := Grid([]float64{0.1, 0.2}, []float64{0.01, 0.5, 0.9})
	if len(cands) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(cands))
	}
	if cands[0] != (Candidate{LearningRate: 0.1, Discount: 0.01}) || cands[5] != (Candidate{LearningRate: 0.2, Discount: 0.9}) {
		t.Fatalf("unexpected order %+v", cands)
	}
}

func TestSweepOrdersBestFirst(t *testing.T) {
	cands := Grid([]float64{0.2, 0.5}, []float64{0.01, 0.3})
	res, err := Sweep(context.Background(), 9, sweepBase(), cands, 30, 3)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(res) != len(cands) {
		t.Fatalf("expected %d results, got %d", len(cands), len(res))
	}
	for i := 1; i < len(res); i++ {
		if res[i].Leaves > res[i-1].Leaves {
			t.Fatalf("result %d has more leaves than %d", i, i-1)
		}
	}
	for _, r := range res {
		if r.Estimates == 0 {
			t.Fatalf("candidate %+v trained nothing", r.Candidate)
		}
		if r.Leaves+r.Trunks > 9*9 {
			t.Fatalf("more marked cells than the board holds: %+v", r)
		}
	}
}

func TestSweepMatchesSequentialEvaluate(t *testing.T) {
	c := Candidate{LearningRate: 0.2, Discount: 0.01}
	want, err := Evaluate(context.Background(), 9, sweepBase(), c, 25)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	got, err := Sweep(context.Background(), 9, sweepBase(), []Candidate{c}, 25, 4)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got[0] != want {
		t.Fatalf("sweep %+v differs from evaluate %+v", got[0], want)
	}
}

func TestSweepRejectsInvalidCandidate(t *testing.T) {
	_, err := Sweep(context.Background(), 9, sweepBase(), []Candidate{{LearningRate: 0, Discount: 0.1}}, 5, 1)
	if !errors.Is(err, qlearn.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestSweepHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	base := sweepBase()
	base.Iterations = 5000
	if _, err := Sweep(ctx, 9, base, Grid([]float64{0.2}, []float64{0.01}), 5, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
