package qlearn

import "lifegrid/internal/core"

// Legal returns the actions the agent may take from d. DoNothing is always
// first.
func Legal(d Descriptor) []Action {
	acts := make([]Action, 1, len(Actions))
	acts[0] = DoNothing
	if canGrow(d) {
		acts = append(acts, GrowTrunk)
	}
	if canSprout(d) {
		acts = append(acts, SproutLeaves)
	}
	return acts
}

// allowed reports whether act is legal from d.
func allowed(d Descriptor, act Action) bool {
	switch act {
	case DoNothing:
		return true
	case GrowTrunk:
		return canGrow(d)
	case SproutLeaves:
		return canSprout(d)
	default:
		return false
	}
}

// Trunk can start on the ground between two free cells, or continue upward
// from the trunk below as long as there is a row above.
func canGrow(d Descriptor) bool {
	if d.Bottom && d.Left.Is(core.Empty) && d.Right.Is(core.Empty) {
		return true
	}
	return d.Down.Is(core.Trunk) && d.Row > 0
}

func canSprout(d Descriptor) bool {
	return d.Down.Is(core.Trunk) && d.Current != core.Leaf
}
