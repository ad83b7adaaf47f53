package sim

import (
	"context"
	"fmt"
	"sort"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"

	"golang.org/x/sync/errgroup"
)

// Candidate is one point of a learning-rate / discount sweep.
type Candidate struct {
	LearningRate float64
	Discount     float64
}

// SweepResult is what a trained candidate grows in a fixed number of steps.
type SweepResult struct {
	Candidate
	Leaves    int
	Trunks    int
	Estimates int
	// Stalled is the generation after which the agent only did nothing, or
	// -1 when it was still acting at the end.
	Stalled int
}

// Grid returns every combination of the given learning rates and discounts.
func Grid(rates, discounts []float64) []Candidate {
	out := make([]Candidate, 0, len(rates)*len(discounts))
	for _, a := range rates {
		for _, g := range discounts {
			out = append(out, Candidate{LearningRate: a, Discount: g})
		}
	}
	return out
}

// Evaluate trains a policy for c on top of base and runs the tree agent
// for steps generations on an empty n×n board.
func Evaluate(ctx context.Context, n int, base qlearn.Config, c Candidate, steps int) (SweepResult, error) {
	tc := base
	tc.LearningRate = c.LearningRate
	tc.Discount = c.Discount
	table, err := qlearn.Train(ctx, n, tc, nil)
	if err != nil {
		return SweepResult{}, fmt.Errorf("candidate α=%g γ=%g: %w", c.LearningRate, c.Discount, err)
	}

	st, err := NewState(n, rules.Tree)
	if err != nil {
		return SweepResult{}, err
	}
	stepper := Stepper{Policy: table}
	res := SweepResult{Candidate: c, Estimates: table.Entries(), Stalled: -1}
	for i := 0; i < steps; i++ {
		st, _ = stepper.Step(st)
		if st.Agent.Prev != qlearn.DoNothing {
			res.Stalled = -1
		} else if res.Stalled < 0 {
			res.Stalled = st.Generation
		}
	}
	res.Leaves = st.Grid.Count(core.Leaf)
	res.Trunks = st.Grid.Count(core.Trunk)
	return res, nil
}

// Sweep evaluates candidates on at most workers goroutines and returns the
// results ordered best first: most leaves, then most trunk, then the
// original candidate order.
func Sweep(ctx context.Context, n int, base qlearn.Config, candidates []Candidate, steps, workers int) ([]SweepResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]SweepResult, len(candidates))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range candidates {
		eg.Go(func() error {
			res, err := Evaluate(ctx, n, base, c, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Leaves != results[j].Leaves {
			return results[i].Leaves > results[j].Leaves
		}
		return results[i].Trunks > results[j].Trunks
	})
	return results, nil
}
