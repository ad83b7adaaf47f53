// Package qlearn implements the tabular Q-learning agent that grows the Tree
// automaton: the abstracted local state, the legal-action policy shared by
// training and inference, the frozen value table and the offline trainer.
package qlearn

import "fmt"

// Action is a move available to the tree agent. The zero value means no
// action has been taken yet.
type Action uint8

const (
	NoAction Action = iota
	// DoNothing leaves the board and the agent untouched.
	DoNothing
	// GrowTrunk turns the agent cell into trunk and moves the agent up a row.
	GrowTrunk
	// SproutLeaves turns the agent cell and its left/right neighbours into leaves.
	SproutLeaves
)

// Actions lists every real action in a stable order.
var Actions = [...]Action{DoNothing, GrowTrunk, SproutLeaves}

func (a Action) String() string {
	switch a {
	case NoAction:
		return "none"
	case DoNothing:
		return "do-nothing"
	case GrowTrunk:
		return "grow-trunk"
	case SproutLeaves:
		return "sprout-leaves"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}
