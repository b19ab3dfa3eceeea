package hypercuboid

import (
	"golang.org/x/exp/slices"

	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// Search is a restartable pull iterator over the legal actions of the
// state an Info was built from. Dropping it cancels the enumeration;
// every legal action in the worklist it was started with is yielded
// exactly once.
type Search struct {
	info *Info
	ss   []cuboid
}

// Search starts an enumeration over the given worklist. The worklist is
// consumed back-to-front; Build's stratification therefore yields
// actions with fewer branching jumps before actions with more.
func (info *Info) Search(ss []cuboid) *Search {
	owned := make([]cuboid, len(ss))
	for i, hc := range ss {
		owned[i] = hc.clone()
	}
	return &Search{info: info, ss: owned}
}

// Next returns the next legal action, or ok=false when the worklist is
// exhausted.
func (g *Search) Next() (move.Action, bool) {
	for len(g.ss) > 0 {
		hc := g.ss[len(g.ss)-1]
		g.ss = g.ss[:len(g.ss)-1]
		p, ok := g.info.takePoint(&hc)
		if !ok {
			continue
		}
		if problem, found := g.info.findProblem(p, &hc); found {
			g.ss = append(g.ss, hc.removeSlice(problem)...)
			continue
		}
		act := g.info.toAction(p)
		g.ss = append(g.ss, hc.removePoint(p)...)
		return act, true
	}
	return nil, false
}

// takePoint picks one point of hc: on each axis the first pass or
// physical entry is the default; axes carrying only jump halves must be
// covered by matched arriving/departing pairs, found by saturating them
// in the graph whose edges join each arrival's axis to its departure's
// axis. Arriving entries whose departing partner has left hc are erased
// here, the only in-place mutation of hc.
func (info *Info) takePoint(hc *cuboid) ([]int, bool) {
	adj := make([][]int, info.dimension)
	edgeRefs := map[[2]int]int{}
	result := make([]int, info.dimension)
	var mustInclude []int

	for n := 0; n < info.dimension; n++ {
		result[n] = -1
		hasNonjump := false
		var ghosts []int
		for _, i := range hc.axes[n].members() {
			loc := info.axisCoords[n][i]
			switch loc.kind {
			case smPhysical, smNull:
				if !hasNonjump {
					hasNonjump = true
					result[n] = i
				}
			case smArriving:
				fromAxis := info.lineToAxis[loc.m.From.L]
				if !hc.axes[fromAxis].contains(loc.idx) {
					ghosts = append(ghosts, i)
					continue
				}
				if _, ok := edgeRefs[[2]int{fromAxis, n}]; !ok {
					adj[fromAxis] = append(adj[fromAxis], n)
					adj[n] = append(adj[n], fromAxis)
					edgeRefs[[2]int{fromAxis, n}] = loc.idx
					edgeRefs[[2]int{n, fromAxis}] = i
				}
			}
		}
		for _, i := range ghosts {
			hc.axes[n].erase(i)
		}
		if hc.axes[n].empty() {
			return nil, false
		}
		if !hasNonjump {
			mustInclude = append(mustInclude, n)
		}
	}

	partner, ok := findMatching(adj, mustInclude)
	if !ok {
		return nil, false
	}
	for u, v := range partner {
		result[u] = edgeRefs[[2]int{u, v}]
	}
	return result, true
}

// findProblem runs the three legality analyses in order; the first that
// rejects the point returns the slice of sibling points sharing its
// defect.
func (info *Info) findProblem(p []int, hc *cuboid) (slice, bool) {
	if problem, found := info.jumpOrderConsistent(p, hc); found {
		return problem, true
	}
	if problem, found := info.testPresent(p, hc); found {
		return problem, true
	}
	return info.findChecks(p, hc)
}

// toAction collects the point's played moves, one per axis, skipping
// passes and the departing halves of jumps (each jump is represented
// once, by its arrival). Lines are visited in ascending order and the
// result reversed for Black, so that intra-timeline moves apply before
// the branch-creating jumps and the branching axes fill in creation
// order for either color.
func (info *Info) toAction(p []int) move.Action {
	lines := make([]int, 0, len(info.lineToAxis))
	for l := range info.lineToAxis {
		lines = append(lines, l)
	}
	slices.Sort(lines)

	var mvs move.Action
	for _, l := range lines {
		n := info.lineToAxis[l]
		loc := info.axisCoords[n][p[n]]
		if loc.kind == smPhysical || loc.kind == smArriving {
			mvs = append(mvs, move.Ext{Full: loc.m})
		}
	}
	if info.s.Present.Color == piece.Black {
		for i, j := 0, len(mvs)-1; i < j; i, j = i+1, j-1 {
			mvs[i], mvs[j] = mvs[j], mvs[i]
		}
	}
	return mvs
}
