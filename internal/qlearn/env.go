package qlearn

import "lifegrid/internal/core"

// Environment is the training world: an n×n board grown by a single agent.
// Trunk and leaf totals are tracked incrementally so the reward is O(1).
type Environment struct {
	board  *core.Grid
	agent  Agent
	trunks int
	leaves int

	trunkWeight, leafWeight float64
}

// NewEnvironment returns an empty board with the agent at its start position.
func NewEnvironment(n int, cfg Config) (*Environment, error) {
	g, err := core.NewGrid(n)
	if err != nil {
		return nil, err
	}
	return &Environment{
		board:       g,
		agent:       StartAgent(n),
		trunkWeight: cfg.TrunkWeight,
		leafWeight:  cfg.LeafWeight,
	}, nil
}

// Reset clears the board and returns the agent to its start position.
func (e *Environment) Reset() {
	e.board.Clear()
	e.agent = StartAgent(e.board.N)
	e.trunks, e.leaves = 0, 0
}

// Board exposes the board for inspection.
func (e *Environment) Board() *core.Grid { return e.board }

// Agent returns the current agent state.
func (e *Environment) Agent() Agent { return e.agent }

// Observe returns the descriptor at the agent position.
func (e *Environment) Observe() Descriptor {
	return Observe(e.board, e.agent.Row, e.agent.Col)
}

// Reward is the weighted count of trunk and leaf cells on the board.
func (e *Environment) Reward() float64 {
	return e.trunkWeight*float64(e.trunks) + e.leafWeight*float64(e.leaves)
}

// Step applies act and keeps the counters in sync.
func (e *Environment) Step(act Action) {
	footprint(e.agent, act, e.set)
	e.agent = Advance(e.agent, act)
}

func (e *Environment) set(row, col int, c core.Cell) {
	old, ok := e.board.Lookup(row, col)
	if !ok || old == c {
		return
	}
	e.count(old, -1)
	e.count(c, 1)
	e.board.Set(row, col, c)
}

func (e *Environment) count(c core.Cell, delta int) {
	switch c {
	case core.Trunk:
		e.trunks += delta
	case core.Leaf:
		e.leaves += delta
	}
}
