package hypercuboid

import (
	"sort"

	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/piece"
	"github.com/Oliverans/fivedchess/internal/state"
)

// SortCanonical reorders an action in place into the canonical
// application order: intra-timeline moves and non-branching jumps first,
// sorted by destination line outward from the mover's side, then the
// branch-creating jumps. A jump also counts as branch-creating when an
// earlier move in the action already played on its destination line,
// since applying it second would find the tail advanced.
func SortCanonical(s *state.State, mvs []move.Ext) []move.Ext {
	player := s.Present.Color
	branchingIndex := 0
	movedLines := map[int]bool{}
	for i := range mvs {
		p, q := mvs[i].From, mvs[i].To
		tc1 := board.Turn{T: q.T, Color: player}
		tc2 := s.M.GetTimelineEnd(q.L)
		branching := tc1.Less(tc2) || (tc1.Equal(tc2) && movedLines[q.L])
		movedLines[p.L] = true
		if branching {
			mvs[i], mvs[branchingIndex] = mvs[branchingIndex], mvs[i]
			branchingIndex++
		} else {
			movedLines[q.L] = true
		}
	}
	if branchingIndex < len(mvs) {
		sign := 1
		if player == piece.Black {
			sign = -1
		}
		rest := mvs[branchingIndex:]
		sort.SliceStable(rest, func(i, j int) bool {
			return sign*rest[i].To.L < sign*rest[j].To.L
		})
		out := append(append([]move.Ext(nil), rest...), mvs[:branchingIndex]...)
		copy(mvs, out)
	}
	return mvs
}
