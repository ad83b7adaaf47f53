package qlearn

import (
	"context"
	"fmt"

	"lifegrid/internal/core"
)

// Progress is reported periodically while training.
type Progress struct {
	Iteration int
	Episodes  int
	Entries   int
	Reward    float64
}

// ProgressFunc is invoked every Config.ReportEvery iterations.
type ProgressFunc func(context.Context, Progress)

// Train runs tabular Q-learning with uniformly random exploration over the
// legal actions of an n×n environment and returns the frozen table. The
// iteration budget is fixed; ctx only aborts early.
func Train(ctx context.Context, n int, cfg Config, progress ProgressFunc) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env, err := NewEnvironment(n, cfg)
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(cfg.Seed).Source()
	table := NewTable()
	episodes := 1

	for it := 1; it <= cfg.Iterations; it++ {
		if it&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("training stopped at iteration %d: %w", it, err)
			}
		}

		s := env.Observe()
		legal := Legal(s)
		act := legal[rng.IntN(len(legal))]
		env.Step(act)
		next := env.Observe()
		reward := env.Reward()

		old, ok := table.ExpectedValue(s, act)
		if !ok {
			old = cfg.InitialValue
		}
		best, ok := table.max(next)
		if !ok {
			best = cfg.InitialValue
		}
		table.set(s, act, old+cfg.LearningRate*(reward+cfg.Discount*best-old))

		if cfg.RestartWhenStuck && len(Legal(next)) == 1 {
			env.Reset()
			episodes++
		}

		if progress != nil && cfg.ReportEvery > 0 && it%cfg.ReportEvery == 0 {
			progress(ctx, Progress{Iteration: it, Episodes: episodes, Entries: table.Entries(), Reward: reward})
		}
	}
	return table, nil
}
