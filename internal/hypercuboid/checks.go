package hypercuboid

import (
	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/piece"
	"github.com/Oliverans/fivedchess/internal/state"
)

// findChecks plays the point's action on a scratch copy of the state,
// submits, and asks whether the opponent can now capture one of the
// mover's royals. If so, the check move is analyzed into a slice of
// sibling points that all leave the same capture open:
//
//   - on the checker's source axis, every semimove whose resulting board
//     keeps an equivalent attacker on the source square;
//   - on the checked royal's destination axis, every semimove that again
//     leaves a friendly royal on the captured square (only when the
//     point actually placed a fresh board there);
//   - on each axis crossed by a sliding checker's path, every semimove
//     that fails to interpose (an empty square, a hostile slider of the
//     checker's own class, or a friendly royal all count as failing).
func (info *Info) findChecks(p []int, hc *cuboid) (slice, bool) {
	c := info.s.Present.Color
	opp := c.Other()
	mvs := info.toAction(p)

	ns := info.s.Clone()
	for _, em := range mvs {
		ns.ApplyMoveUnsafe(em.Full, em.Promotion)
	}
	ns.Submit(true)

	checks := ns.FindChecks(opp)
	if len(checks) == 0 {
		return nil, false
	}
	check := checks[0]
	path, slidingType := movePath(ns, check, opp)

	isNext := func(t1, t2 int) bool {
		if c == piece.Black {
			return t1+1 == t2
		}
		return t1 == t2
	}

	problem := slice{}

	if n1, ok := info.lineToAxis[check.From.L]; ok {
		checkerKind := ns.M.GetPiece(check.From, opp)
		notTaking := newEmptySet(len(info.axisCoords[n1]))
		for _, i := range hc.axes[n1].members() {
			loc := info.axisCoords[n1][i]
			if loc.kind == smNull || !isNext(loc.tlOf().T, check.From.T) {
				continue
			}
			if slidingType > 0 {
				bb := loc.b.Friendly(opp) & classBB(loc.b, opp, slidingType)
				if bb&bit(check.From.XY()) != 0 {
					notTaking.insert(i)
				}
			} else if loc.b.GetPiece(check.From.XY()) == checkerKind {
				notTaking.insert(i)
			}
		}
		problem[n1] = notTaking
	}

	if n2, ok := info.lineToAxis[check.To.L]; ok {
		loc0 := info.axisCoords[n2][p[n2]]
		if loc0.kind != smNull && isNext(loc0.tlOf().T, check.To.T) {
			exposeRoyal := newEmptySet(len(info.axisCoords[n2]))
			for _, i := range hc.axes[n2].members() {
				loc := info.axisCoords[n2][i]
				if loc.kind == smNull || !isNext(loc.tlOf().T, check.To.T) {
					continue
				}
				if loc.b.RoyalBB(c)&bit(check.To.XY()) != 0 {
					exposeRoyal.insert(i)
				}
			}
			problem[n2] = exposeRoyal
		}
	}

	for _, crossed := range path {
		n, ok := info.lineToAxis[crossed.L]
		if !ok {
			continue
		}
		loc0 := info.axisCoords[n][p[n]]
		if loc0.kind == smNull || !isNext(loc0.tlOf().T, crossed.T) {
			continue
		}
		z := bit(crossed.XY())
		notBlocking := newEmptySet(len(info.axisCoords[n]))
		for _, i := range hc.axes[n].members() {
			loc := info.axisCoords[n][i]
			if loc.kind == smNull || !isNext(loc.tlOf().T, crossed.T) {
				continue
			}
			if z&loc.b.Occupied() == 0 {
				notBlocking.insert(i)
				continue
			}
			if slidingType > 0 && z&loc.b.Friendly(opp)&classBB(loc.b, opp, slidingType) != 0 {
				notBlocking.insert(i)
				continue
			}
			if z&loc.b.RoyalBB(c) != 0 {
				notBlocking.insert(i)
			}
		}
		problem[n] = notBlocking
	}

	return problem, true
}

// movePath returns the strictly-between squares a sliding check crosses,
// plus its ray class: 1 for one-axis (rook-like), 2 for two-axis
// (bishop-like), 3 for three-axis (unicorn-like), 4 for four-axis
// (dragon-like) rays. Non-sliding checkers return an empty path and
// class 0.
func movePath(ns *state.State, check move.Full, checker piece.Color) ([]coord.Vec4, int) {
	k := ns.M.GetPiece(check.From, checker)
	switch k.Family() {
	case piece.FamilyRook, piece.FamilyBishop, piece.FamilyQueen,
		piece.FamilyPrincess, piece.FamilyRoyalQueen,
		piece.FamilyUnicorn, piece.FamilyDragon:
	default:
		return nil, 0
	}
	d := check.To.Sub(check.From)
	step := coord.V4(sign(d.X), sign(d.Y), sign(d.T), sign(d.L))
	slidingType := 0
	uniform := 0
	for _, v := range []int{d.X, d.Y, d.T, d.L} {
		if v == 0 {
			continue
		}
		slidingType++
		if uniform == 0 {
			uniform = abs(v)
		} else if uniform != abs(v) {
			return nil, 0
		}
	}
	if slidingType == 0 {
		return nil, 0
	}
	var path []coord.Vec4
	for r := check.From.Add(step); r != check.To; r = r.Add(step) {
		path = append(path, r)
	}
	return path, slidingType
}

// classBB returns color c's pieces whose sliding repertoire includes the
// given ray class, so that a "blocker" of that class is recognized as
// continuing the check rather than stopping it.
func classBB(b *board.Board, c piece.Color, slidingType int) uint64 {
	switch slidingType {
	case 1:
		return b.RookRayBB(c)
	case 2:
		return b.BishopRayBB(c)
	case 3:
		return b.UnicornRayBB(c)
	default:
		return b.DragonRayBB(c)
	}
}

func bit(sq int) uint64 {
	return uint64(1) << uint(sq)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
