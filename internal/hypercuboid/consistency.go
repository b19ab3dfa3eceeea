package hypercuboid

import (
	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
)

// jumpOrderConsistent rejects points whose branching jumps cannot be
// put in a well-defined order. Two defects exist:
//
// Case 1: a branching jump lands on (l', t') while axis l' plays a pass
// and (t', mover) is still the tail of line l'. The jump could have been
// the non-branching arrival on axis l' instead, so the branching form is
// redundant and would double-count the action.
//
// Case 2: a later branching jump departs from the (l, t) board that an
// earlier branching jump in the same point arrived on. The order of that
// arrival and departure is ambiguous, so the later axis's departures from
// that board are banned together with the earlier axis's arrivals onto it.
func (info *Info) jumpOrderConsistent(p []int, hc *cuboid) (slice, bool) {
	jumpMap := map[coord.Vec4]int{}
	c := info.s.Present.Color

	for n := info.newAxis; n < info.dimension; n++ {
		loc := info.axisCoords[n][p[n]]
		if loc.kind == smNull {
			// The worklist is stratified by branch count: once one
			// branching axis passes, every later one does too.
			break
		}
		from, to := loc.m.From, loc.m.To

		if m, ok := info.lineToAxis[to.L]; ok && m < info.newAxis {
			loc2 := info.axisCoords[m][p[m]]
			end := info.s.M.GetTimelineEnd(to.L)
			if loc2.kind == smNull && end.Equal(board.Turn{T: to.T, Color: c}) {
				arrives := newEmptySet(len(info.axisCoords[n]))
				for _, i := range hc.axes[n].members() {
					loc3 := info.axisCoords[n][i]
					if loc3.kind == smArriving && loc3.m.To.TL() == to.TL() {
						arrives.insert(i)
					}
				}
				pass := newEmptySet(p[m] + 1)
				pass.insert(p[m])
				return slice{n: arrives, m: pass}, true
			}
		}

		critical := from.TL()
		if axisBranch, ok := jumpMap[critical]; ok {
			s1 := newEmptySet(len(info.axisCoords[n]))
			for _, i := range hc.axes[n].members() {
				loc1 := info.axisCoords[n][i]
				if loc1.kind == smArriving && loc1.m.From.TL() == critical {
					s1.insert(i)
				}
			}
			s2 := newEmptySet(len(info.axisCoords[axisBranch]))
			for _, i := range hc.axes[axisBranch].members() {
				loc2 := info.axisCoords[axisBranch][i]
				if loc2.kind == smArriving && loc2.m.To.TL() == critical {
					s2.insert(i)
				}
			}
			return slice{n: s1, axisBranch: s2}, true
		}
		jumpMap[to.TL()] = n
	}
	return nil, false
}
