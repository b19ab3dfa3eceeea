package hypercuboid

import (
	"github.com/Oliverans/fivedchess/internal/piece"
)

// testPresent simulates present advancement for the point: branching
// axes are replayed in order, growing the lines range and the active
// range under the same balance rule Multiverse.InsertBoard applies (the
// rule is deliberately re-run here against the hypothetical ranges
// rather than shared, since nothing may mutate the live multiverse).
// The point is rejected when a mandatory line plays a pass yet its tail
// would still be the new present, meaning the turn cannot be submitted.
func (info *Info) testPresent(p []int, hc *cuboid) (slice, bool) {
	s := info.s
	oldPresent := s.Present.T
	c := s.Present.Color
	l0min, l0max := s.M.GetInitialLinesRange()
	lMin, lMax := s.M.GetLinesRange()
	l1min, l1max := lMin, lMax
	activeMin, activeMax := s.M.GetActiveRange()

	mint := oldPresent
	passN, passI := -1, -1
	reactivateMoveAxis := -1

	for _, l := range info.mandatory {
		n := info.lineToAxis[l]
		if info.axisCoords[n][p[n]].kind == smNull {
			passN, passI = n, p[n]
		}
	}

	for n := info.newAxis; n < info.dimension; n++ {
		loc := info.axisCoords[n][p[n]]
		if loc.kind == smNull {
			break
		}
		reactivated := 0
		hasReactivated := false
		var lNew int
		if c == piece.White {
			l1max++
			lNew = l1max
		} else {
			l1min--
			lNew = l1min
		}
		whitesLines := l1max - l0max
		blacksLines := l0min - l1min
		if lNew > l0max && whitesLines <= blacksLines+1 && lNew > activeMax {
			activeMax++
			if l1min < activeMin {
				activeMin--
				reactivated, hasReactivated = activeMin, true
			}
		} else if lNew < l0min && blacksLines <= whitesLines+1 && lNew < activeMin {
			activeMin--
			if l1max > activeMax {
				activeMax++
				reactivated, hasReactivated = activeMax, true
			}
		}

		tl := loc.tlOf()
		if tl.T < mint && activeMin <= lNew && lNew <= activeMax {
			mint = tl.T
			// A backward jump moves the present behind every tail, so
			// the pass recorded so far is no longer blocking.
			passN, passI = -1, -1
			reactivateMoveAxis = -1
		}
		if hasReactivated {
			end := s.M.GetTimelineEnd(reactivated)
			if end.T < mint && end.Color == c {
				mint = end.T
				n1 := info.lineToAxis[reactivated]
				if info.axisCoords[n1][p[n1]].kind == smNull {
					passN, passI = n1, p[n1]
					reactivateMoveAxis = n
				}
			}
		}
	}

	if passN < 0 {
		return nil, false
	}

	problem := slice{}
	pass := newEmptySet(passI + 1)
	pass.insert(passI)
	problem[passN] = pass

	// Every branching axis inside the tail-advantage window could have
	// rescued the pass by creating an active branch before mint; ban the
	// combinations where none of them does.
	whitesLines := lMax - l0max
	blacksLines := l0min - lMin
	advantage := blacksLines - whitesLines
	if c == piece.Black {
		advantage = whitesLines - blacksLines
	}
	limit := advantage + info.newAxis
	if limit > info.dimension-1 {
		limit = info.dimension - 1
	}
	for n := info.newAxis; n <= limit; n++ {
		if n == reactivateMoveAxis {
			continue
		}
		set := newEmptySet(len(info.axisCoords[n]))
		for _, i := range hc.axes[n].members() {
			loc := info.axisCoords[n][i]
			if loc.kind == smNull || loc.m.To.T >= mint {
				set.insert(i)
			}
		}
		problem[n] = set
	}
	return problem, true
}
