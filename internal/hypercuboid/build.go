package hypercuboid

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/Oliverans/fivedchess/internal/bitboard"
	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/movegen"
	"github.com/Oliverans/fivedchess/internal/piece"
	"github.com/Oliverans/fivedchess/internal/state"
)

// Info is the immutable model of one turn's choice space: the state it
// was built from, the per-axis semimove lists, the full universe cuboid,
// and the axis layout. Axes [0, newAxis) are the playable timelines in
// ascending line order; axes [newAxis, dimension) are identical copies
// of the branching axis, one per possible simultaneous branch.
type Info struct {
	s          *state.State
	lineToAxis map[int]int
	axisCoords [][]semimove
	universe   cuboid
	newAxis    int
	dimension  int
	mandatory  []int
}

// Build models the turn available in s. The returned worklist is
// stratified by branch count: its last element covers the points with no
// branching jumps, the element before it the points with exactly the
// first branching axis live, and so on, so that a search popping from
// the back discovers less-branching actions first.
//
// Callers should resolve CanSubmit before building: a state whose turn
// is already finishable without any move would admit the empty action.
func Build(s *state.State) (*Info, []cuboid) {
	mandatory, optional, _ := s.GetTimelineStatus()
	playable := append(append([]int(nil), mandatory...), optional...)
	slices.Sort(playable)
	player := s.Present.Color
	presentT := s.Present.T
	sizeX, sizeY := s.M.GetBoardSize()

	// Generate every pseudo-legal move, split by how it relates to its
	// line: stays on it, departs from it, or arrives to it. Departs from
	// the same square are merged (one departing semimove serves every
	// jump out of that square).
	arrivesTo := map[int][]move.Full{}
	staysOn := map[int][]move.Full{}
	departsFrom := map[int][]coord.Vec4{}
	jumpIndices := map[coord.Vec4]int{}

	for _, from := range s.GenMovablePieces() {
		k := s.M.GetPiece(from, player)
		hasDepart := false
		for _, tgt := range movegen.AllMoves(s.M, from, player, k) {
			for _, sq := range descendingToAscending(bitboard.MarkedPos(tgt.To)) {
				to := coord.V4(sq%8, sq/8, tgt.Board.T, tgt.Board.L)
				m := move.Full{From: from, To: to}
				if from.TL() != to.TL() {
					if !hasDepart {
						departsFrom[from.L] = append(departsFrom[from.L], from)
						hasDepart = true
					}
					arrivesTo[to.L] = append(arrivesTo[to.L], m)
				} else {
					staysOn[from.L] = append(staysOn[from.L], m)
				}
			}
		}
	}

	var axisCoords [][]semimove
	lineToAxis := map[int]int{}

	// One axis per playable line: a pass, the line's surviving physical
	// moves, its departing squares, and any non-branching arrivals.
	// Every candidate's resulting board is built up front and dropped
	// outright if it leaves a friendly royal attacked on that board.
	for _, l := range playable {
		locs := []semimove{{kind: smNull, tl: coord.V4(0, 0, presentT, l)}}
		for _, m := range staysOn[l] {
			b, _ := s.M.GetBoard(m.From.L, m.From.T, player)
			k := b.GetPiece(m.From.XY())
			nb := physicalResult(b, m.From, m.To, k, player, sizeX, sizeY)
			if !hasPhysicalCheck(&nb, player) {
				nbp := nb
				locs = append(locs, semimove{kind: smPhysical, m: m, b: &nbp})
			}
		}
		for _, p := range departsFrom[l] {
			b, _ := s.M.GetBoard(p.L, p.T, player)
			nb := b.ReplacePiece(p.XY(), piece.Empty)
			if !hasPhysicalCheck(&nb, player) {
				nbp := nb
				jumpIndices[p] = len(locs)
				locs = append(locs, semimove{kind: smDeparting, from: p, b: &nbp})
			}
		}
		for _, m := range arrivesTo[l] {
			end := s.M.GetTimelineEnd(m.To.L)
			if end.T != m.To.T || end.Color != player {
				continue // branching arrival, handled on the branching axis
			}
			nb := arrivalResult(s, m, player, sizeY)
			if !hasPhysicalCheck(&nb, player) {
				nbp := nb
				locs = append(locs, semimove{kind: smArriving, m: m, b: &nbp, idx: -1})
			}
		}
		lineToAxis[l] = len(axisCoords)
		axisCoords = append(axisCoords, locs)
	}

	newAxis := len(axisCoords)

	// The branching axis: a pass plus every arriving semimove whose
	// departing half survived the physical-check prune. One copy of this
	// axis exists per line that can still supply a departure, since no
	// turn can branch more times than it has departing pieces.
	maxBranch := 0
	departLines := maps.Keys(departsFrom)
	slices.Sort(departLines)
	for _, l := range departLines {
		for _, p := range departsFrom[l] {
			if _, ok := jumpIndices[p]; ok {
				maxBranch++
				break
			}
		}
	}
	branchLocs := []semimove{{kind: smNull, tl: coord.V4(0, 0, presentT, s.NewLine())}}
	arriveLines := maps.Keys(arrivesTo)
	slices.Sort(arriveLines)
	for _, l := range arriveLines {
		for _, m := range arrivesTo[l] {
			if _, ok := jumpIndices[m.From]; !ok {
				continue
			}
			nb := arrivalResult(s, m, player, sizeY)
			if !hasPhysicalCheck(&nb, player) {
				nbp := nb
				branchLocs = append(branchLocs, semimove{kind: smArriving, m: m, b: &nbp, idx: jumpIndices[m.From]})
			}
		}
	}
	newL := s.NewLine()
	sign := 1
	if newL < 0 {
		sign = -1
	}
	for i := 0; i < maxBranch; i++ {
		lineToAxis[newL+sign*i] = newAxis + i
		axisCoords = append(axisCoords, branchLocs)
	}
	dimension := len(axisCoords)

	universe := cuboid{axes: make([]coordSet, dimension)}
	for n := 0; n < dimension; n++ {
		universe.axes[n] = newFullSet(len(axisCoords[n]))
	}

	// Resolve each non-branching arriving semimove to its departing
	// partner's slot; an arrival whose departure was pruned can never be
	// played and leaves the universe here.
	for n := 0; n < newAxis; n++ {
		for i, loc := range axisCoords[n] {
			if loc.kind != smArriving {
				continue
			}
			if idx, ok := jumpIndices[loc.m.From]; ok {
				axisCoords[n][i].idx = idx
			} else {
				universe.axes[n].erase(i)
			}
		}
	}

	info := &Info{
		s:          s,
		lineToAxis: lineToAxis,
		axisCoords: axisCoords,
		universe:   universe,
		newAxis:    newAxis,
		dimension:  dimension,
		mandatory:  mandatory,
	}

	// Stratify by branch count: worklist back = zero branches, then one,
	// two, ... toward the front. Branching axes are interchangeable
	// copies, so the k-branch stratum pins exactly the first k of them
	// to their non-pass entries and the rest to the pass.
	zero := newEmptySet(1)
	zero.insert(0)
	nonNull := newEmptySet(len(branchLocs))
	for i := 1; i < len(branchLocs); i++ {
		nonNull.insert(i)
	}
	stratum := universe.clone()
	for n := newAxis; n < dimension; n++ {
		stratum.axes[n] = zero.clone()
	}
	worklist := []cuboid{stratum.clone()}
	for n := newAxis; n < dimension; n++ {
		stratum.axes[n] = nonNull.clone()
		worklist = append([]cuboid{stratum.clone()}, worklist...)
	}
	return info, worklist
}

// descendingToAscending flips MarkedPos's high-to-low order so the axis
// lists enumerate squares low-to-high, keeping the candidate ordering
// aligned with the physical move generator's square numbering.
func descendingToAscending(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// hasPhysicalCheck reports whether any royal piece of color c is
// attacked on b. Semimoves failing this test on their own resulting
// board can never be part of a legal action.
func hasPhysicalCheck(b *board.Board, c piece.Color) bool {
	for _, pos := range bitboard.MarkedPos(b.RoyalBB(c)) {
		if b.IsUnderAttack(pos, c) != 0 {
			return true
		}
	}
	return false
}

// physicalResult builds the board that results from playing the
// physical move p->q with piece k. The branching here must stay in
// lockstep with State.ApplyMove's physical case: en passant clears the
// bypassed pawn, a pawn or brawn reaching the far rank promotes, a
// multi-square king move carries its rook.
func physicalResult(b *board.Board, p, q coord.Vec4, k piece.Kind, c piece.Color, sizeX, sizeY int) board.Board {
	d := q.Sub(p)
	fam := k.Family()
	pawnlike := fam == piece.FamilyPawn || fam == piece.FamilyBrawn
	switch {
	case pawnlike && d.X != 0 && b.GetPiece(q.XY()).IsEmpty():
		capSq := coord.V4(q.X, p.Y, 0, 0).XY()
		return b.ReplacePiece(capSq, piece.Empty).MovePiece(p.XY(), q.XY())
	case pawnlike && (q.Y == 0 || q.Y == sizeY-1):
		promoted := piece.FromFamily(piece.FamilyQueen, c, false)
		return b.ReplacePiece(p.XY(), piece.Empty).ReplacePiece(q.XY(), promoted)
	case (fam == piece.FamilyKing || fam == piece.FamilyCommonKing) && abs(d.X) > 1:
		rookFrom := 0
		if d.X > 0 {
			rookFrom = sizeX - 1
		}
		rookTo := q.X - 1
		if d.X < 0 {
			rookTo = q.X + 1
		}
		return b.MovePiece(coord.V4(rookFrom, p.Y, 0, 0).XY(), coord.V4(rookTo, q.Y, 0, 0).XY()).
			MovePiece(p.XY(), q.XY())
	default:
		return b.MovePiece(p.XY(), q.XY())
	}
}

// arrivalResult builds the destination board of a jump: the moved piece
// overwrites its landing square, promoting when a brawn lands on the far
// rank.
func arrivalResult(s *state.State, m move.Full, c piece.Color, sizeY int) board.Board {
	k := s.M.GetPiece(m.From, c)
	dest, _ := s.M.GetBoard(m.To.L, m.To.T, c)
	if k.Family() == piece.FamilyBrawn && (m.To.Y == 0 || m.To.Y == sizeY-1) {
		promoted := piece.FromFamily(piece.FamilyQueen, c, false)
		return dest.ReplacePiece(m.To.XY(), promoted)
	}
	return dest.ReplacePiece(m.To.XY(), k.Moved())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
