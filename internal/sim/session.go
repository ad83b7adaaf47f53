package sim

import (
	"context"
	"log"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
	"lifegrid/internal/rules"
)

// TrainPolicy builds the tree policy for cfg.Size, logging progress.
func TrainPolicy(ctx context.Context, cfg Config) (*qlearn.Table, error) {
	log.Printf("training tree policy on %dx%d for %d iterations", cfg.Size, cfg.Size, cfg.Training.Iterations)
	table, err := qlearn.Train(ctx, cfg.Size, cfg.Training, func(_ context.Context, p qlearn.Progress) {
		log.Printf("  iteration %d: %d episodes, %d estimates, reward %.2f", p.Iteration, p.Episodes, p.Entries, p.Reward)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("tree policy ready: %d states, %d estimates", table.States(), table.Entries())
	return table, nil
}

var (
	_ core.Sim               = (*Session)(nil)
	_ core.ParameterProvider = (*Session)(nil)
)

// Session adapts the engine to the frame-driven hosts. It holds the state
// across frames together with the RNG used for seeding.
type Session struct {
	cfg     Config
	stepper Stepper
	state   State
	rng     *core.RNG
	seed    int64
	live    int

	// OnStep, when set, is called after every generation with its live count.
	OnStep func(generation, live int)
}

// NewSession validates cfg and seeds the starting mode. policy may be nil
// when the tree mode is never used.
func NewSession(cfg Config, policy qlearn.Policy) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := cfg.Kind()
	if err != nil {
		return nil, err
	}
	st, err := NewState(cfg.Size, mode)
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:     cfg,
		stepper: Stepper{Policy: policy, Workers: cfg.Workers},
		state:   st,
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the active mode name.
func (s *Session) Name() string { return s.state.Mode.String() }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.state.N(), H: s.state.N()} }

// Cells exposes the current grid values.
func (s *Session) Cells() []uint8 { return s.state.Grid.Cells() }

// LiveCells returns the live count of the current grid.
func (s *Session) LiveCells() int { return s.live }

// Mode returns the active automaton.
func (s *Session) Mode() rules.Kind { return s.state.Mode }

// Agent returns the tree agent state.
func (s *Session) Agent() qlearn.Agent { return s.state.Agent }

// Generation returns the number of steps since the last reset.
func (s *Session) Generation() int { return s.state.Generation }

// State returns the underlying state. The grids are shared with the session.
func (s *Session) State() State { return s.state }

// Reset reseeds the RNG and re-randomizes the active mode.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.rng = core.NewRNG(seed)
	s.Randomize()
}

// Randomize re-seeds the grid from the session RNG stream.
func (s *Session) Randomize() {
	s.state = Randomize(s.state, s.rng.Source(), s.cfg.Density(s.state.Mode))
	s.live = LiveCells(s.state)
}

// Clear empties the grid without seeding.
func (s *Session) Clear() {
	s.state = Reset(s.state)
	s.live = 0
}

// SelectMode switches automaton, resetting and re-seeding the grid.
func (s *Session) SelectMode(k rules.Kind) {
	s.state = SelectMode(s.state, k, s.rng.Source(), s.cfg.Density(k))
	s.live = LiveCells(s.state)
}

// Click activates the cluster around (row, col).
func (s *Session) Click(row, col int) {
	SetAlive(s.state.Grid, ClickCluster(row, col, s.state.N()), s.state.Mode.Seed())
	s.live = LiveCells(s.state)
}

// Step advances one generation.
func (s *Session) Step() {
	s.state, s.live = s.stepper.Step(s.state)
	if s.OnStep != nil {
		s.OnStep(s.state.Generation, s.live)
	}
}

// Parameters implements core.ParameterProvider.
func (s *Session) Parameters() core.ParameterSnapshot {
	a := s.state.Agent
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", s.state.Mode.String()),
				core.IntParam("size", "Size", s.state.N()),
				core.IntParam("seed", "Seed", int(s.seed)),
				core.FloatParam("density", "Density", s.cfg.Density(s.state.Mode)),
				core.IntParam("workers", "Workers", s.cfg.Workers),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.state.Generation),
				core.IntParam("live", "Live cells", s.live),
			},
		},
	}
	if s.state.Mode.Agent() {
		groups = append(groups, core.ParameterGroup{
			Name: "Agent",
			Params: []core.Parameter{
				core.IntParam("agent_row", "Row", a.Row),
				core.IntParam("agent_col", "Column", a.Col),
				core.StringParam("agent_prev", "Last action", a.Prev.String()),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}
