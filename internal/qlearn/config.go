package qlearn

import (
	"errors"
	"fmt"
)

// ErrConfig reports unusable training hyper-parameters.
var ErrConfig = errors.New("qlearn: invalid training config")

// Config holds the training hyper-parameters.
type Config struct {
	// Iterations is the fixed number of sampled transitions.
	Iterations int `yaml:"iterations"`
	// LearningRate is alpha in the Q-learning update.
	LearningRate float64 `yaml:"learning_rate"`
	// Discount is gamma in the Q-learning update.
	Discount float64 `yaml:"discount"`
	// InitialValue stands in for estimates that do not exist yet.
	InitialValue float64 `yaml:"initial_value"`
	TrunkWeight  float64 `yaml:"trunk_weight"`
	LeafWeight   float64 `yaml:"leaf_weight"`
	// RestartWhenStuck starts a fresh episode once DoNothing is the only
	// legal action left. Off by default: a single run spends the rest of its
	// budget in the final state.
	RestartWhenStuck bool `yaml:"restart_when_stuck"`
	// ReportEvery is the progress callback period in iterations; 0 disables it.
	ReportEvery int   `yaml:"report_every"`
	Seed        int64 `yaml:"seed"`
}

// DefaultConfig returns the standard hyper-parameters.
func DefaultConfig() Config {
	return Config{
		Iterations:       100_000,
		LearningRate:     0.2,
		Discount:         0.01,
		InitialValue:     -10,
		TrunkWeight:      0.01,
		LeafWeight:       1,
		ReportEvery:      25_000,
		Seed:             1,
	}
}

// Validate checks the ranges the update rule depends on.
func (c Config) Validate() error {
	switch {
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations %d", ErrConfig, c.Iterations)
	case c.LearningRate <= 0 || c.LearningRate > 1:
		return fmt.Errorf("%w: learning rate %g not in (0,1]", ErrConfig, c.LearningRate)
	case c.Discount < 0 || c.Discount > 1:
		return fmt.Errorf("%w: discount %g not in [0,1]", ErrConfig, c.Discount)
	case c.ReportEvery < 0:
		return fmt.Errorf("%w: report period %d", ErrConfig, c.ReportEvery)
	}
	return nil
}
