package qlearn

import "lifegrid/internal/core"

// Policy answers expected-value queries for the Tree rule. ok is false when
// no estimate exists for the pair.
type Policy interface {
	ExpectedValue(d Descriptor, act Action) (v float64, ok bool)
}

// Table is a tabular action-value function. It is written only by Train and
// read-only afterwards.
type Table struct {
	q map[Descriptor]map[Action]float64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{q: make(map[Descriptor]map[Action]float64)}
}

// ExpectedValue implements Policy.
func (t *Table) ExpectedValue(d Descriptor, act Action) (float64, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t.q[d][act]
	return v, ok
}

// States returns the number of distinct descriptors with at least one estimate.
func (t *Table) States() int { return len(t.q) }

// Entries returns the number of (descriptor, action) estimates.
func (t *Table) Entries() int {
	n := 0
	for _, m := range t.q {
		n += len(m)
	}
	return n
}

func (t *Table) set(d Descriptor, act Action, v float64) {
	m, ok := t.q[d]
	if !ok {
		m = make(map[Action]float64, len(Actions))
		t.q[d] = m
	}
	m[act] = v
}

func (t *Table) max(d Descriptor) (float64, bool) {
	m, ok := t.q[d]
	if !ok || len(m) == 0 {
		return 0, false
	}
	first := true
	best := 0.0
	for _, v := range m {
		if first || v > best {
			best, first = v, false
		}
	}
	return best, true
}

// Choose picks the legal action from d with the highest expected value.
// Missing estimates are skipped; when nothing is estimated or the top value
// is shared by several actions the agent does nothing.
func Choose(p Policy, d Descriptor) Action {
	if p == nil {
		return DoNothing
	}
	best := DoNothing
	bestV := 0.0
	found, tie := false, false
	for _, act := range Legal(d) {
		v, ok := p.ExpectedValue(d, act)
		if !ok {
			continue
		}
		switch {
		case !found || v > bestV:
			best, bestV, found, tie = act, v, true, false
		case v == bestV:
			tie = true
		}
	}
	if !found || tie {
		return DoNothing
	}
	return best
}

// Decide observes g around the agent and chooses its next action.
func Decide(p Policy, g *core.Grid, a Agent) Action {
	if !g.InBounds(a.Row, a.Col) {
		return DoNothing
	}
	return Choose(p, Observe(g, a.Row, a.Col))
}
