// Package rules holds the per-cell transition functions of every supported
// automaton behind a closed Kind enumeration.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/qlearn"
)

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("rules: unknown automaton")

// Kind selects an automaton.
type Kind uint8

const (
	Conway Kind = iota
	BriansBrain
	HighLife
	Seeds
	Tree
)

// Kinds lists every automaton in menu order.
var Kinds = [...]Kind{Conway, BriansBrain, HighLife, Seeds, Tree}

var names = [...]string{
	Conway:      "conway",
	BriansBrain: "brain",
	HighLife:    "highlife",
	Seeds:       "seeds",
	Tree:        "tree",
}

var aliases = map[string]Kind{
	"life":        Conway,
	"briansbrain": BriansBrain,
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a name such as "conway" or "tree" to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return Kind(i), nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Base is the tag a cleared grid holds.
func (k Kind) Base() core.Cell { return core.Dead }

// Seed is the tag random seeding and clicks write.
func (k Kind) Seed() core.Cell { return core.Alive }

// Live is the tag counted as a live cell after each step.
func (k Kind) Live() core.Cell { return core.Alive }

// States returns how many tags the automaton uses.
func (k Kind) States() int {
	switch k {
	case BriansBrain, Tree:
		return 3
	default:
		return 2
	}
}

// Agent reports whether the automaton is driven by the tree agent.
func (k Kind) Agent() bool { return k == Tree }

// Move is the tree agent's decision for the current step. Other automata
// ignore it.
type Move struct {
	Agent  qlearn.Agent
	Action qlearn.Action
}

// Next returns the state of (row, col) in the next generation. It reads g
// only, so cells can be evaluated in any order.
func Next(k Kind, g *core.Grid, row, col int, mv Move) core.Cell {
	switch k {
	case Conway:
		return conway(g, row, col)
	case BriansBrain:
		return brain(g, row, col)
	case HighLife:
		return highLife(g, row, col)
	case Seeds:
		return seeds(g, row, col)
	case Tree:
		return tree(g, row, col, mv)
	default:
		return g.At(row, col)
	}
}

var isAlive = core.Is(core.Alive)
