package hypercuboid

import (
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/state"
)

// MateType classifies a position with respect to the mover's ability to
// finish the turn.
type MateType int

const (
	// MateNone: a non-branching legal action exists, or legal actions
	// exist and at least one of them travels backward in time.
	MateNone MateType = iota
	// Softmate: legal actions exist, but every one of them branches and
	// none travels backward in time.
	Softmate
	// Checkmate: no legal action exists and the opponent threatens a
	// royal capture even if the mover could pass everywhere.
	Checkmate
	// Stalemate: no legal action exists and no royal is threatened.
	Stalemate
)

func (m MateType) String() string {
	switch m {
	case MateNone:
		return "none"
	case Softmate:
		return "softmate"
	case Checkmate:
		return "checkmate"
	default:
		return "stalemate"
	}
}

// GetMateType decides the position's outcome. The non-branching stratum
// is searched first: any action there means play continues. Otherwise
// the branching strata are searched; an action with a net backward time
// step also means play continues, any other action makes the position a
// softmate. With no action anywhere, the phantom test (would the
// opponent capture a royal if the mover passed everywhere?) separates
// checkmate from stalemate.
//
// Lives here rather than on State because the decision runs the action
// search; State never imports this package.
func GetMateType(s *state.State) MateType {
	info, worklist := Build(s)
	last := len(worklist) - 1
	nonBranching := worklist[last:]
	branching := worklist[:last]

	if _, ok := info.Search(nonBranching).Next(); ok {
		return MateNone
	}

	soft := false
	it := info.Search(branching)
	for {
		act, ok := it.Next()
		if !ok {
			break
		}
		soft = true
		for _, em := range act {
			if em.To.T-em.From.T < 0 {
				return MateNone
			}
		}
	}
	if soft {
		return Softmate
	}
	if len(s.Phantom().FindChecks(s.Present.Color.Other())) > 0 {
		return Checkmate
	}
	return Stalemate
}

// SearchLegalActions starts an enumeration over the full choice space of
// s, fewer-branch actions first.
func SearchLegalActions(s *state.State) *Search {
	info, worklist := Build(s)
	return info.Search(worklist)
}

// CountActions counts legal actions, stopping early at limit when
// limit > 0. A submit-only position (nothing forced, turn finishable as
// is) counts the bare submit as its one action.
func CountActions(s *state.State, limit int) int {
	if _, ok := s.CanSubmit(); ok {
		return 1
	}
	n := 0
	it := SearchLegalActions(s)
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
		if limit > 0 && n >= limit {
			return n
		}
	}
}

// SuggestAction returns the first legal action found, or ok=false when
// the position is mated or stalemated.
func SuggestAction(s *state.State) (move.Action, bool) {
	it := SearchLegalActions(s)
	return it.Next()
}
