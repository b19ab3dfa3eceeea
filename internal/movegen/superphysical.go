package movegen

import (
	"github.com/Oliverans/fivedchess/internal/bitboard"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// axes selects which kind of step a super-physical move takes in (t, l)
// space, or which shape of ray it slides along in (x, y) space.
type axes int

const (
	orthogonal axes = iota // a single time or timeline step, or a rook-shaped ray
	diagonal                // a combined time+timeline step, or a bishop-shaped ray
	both
)

// tlDeltas are the (t, l) steps a piece may take across boards without
// changing (x, y). Forward-in-time-only, same-timeline is never a
// super-physical step (that is just "wait a turn", not a move); every
// other direction in the grids below is a legal step.
var orthogonalTLDeltas = []coord.Vec4{
	coord.V4(0, 0, 0, 1),
	coord.V4(0, 0, 0, -1),
	coord.V4(0, 0, -1, 0),
}

var diagonalTLDeltas = []coord.Vec4{
	coord.V4(0, 0, 1, 1),
	coord.V4(0, 0, 1, -1),
	coord.V4(0, 0, -1, 1),
	coord.V4(0, 0, -1, -1),
}

var bothTLDeltas = append(append([]coord.Vec4{}, orthogonalTLDeltas...), diagonalTLDeltas...)

var knightSingleStepDeltas = []coord.Vec4{
	coord.V4(0, 0, 2, 1), coord.V4(0, 0, 1, 2), coord.V4(0, 0, -2, 1), coord.V4(0, 0, 1, -2),
	coord.V4(0, 0, 2, -1), coord.V4(0, 0, -1, 2), coord.V4(0, 0, -2, -1), coord.V4(0, 0, -1, -2),
}

var knightDoubleStepDeltas = []coord.Vec4{
	coord.V4(0, 0, 0, 2),
	coord.V4(0, 0, 0, -2),
	coord.V4(0, 0, -2, 0),
}

func tlDeltas(mode axes) []coord.Vec4 {
	switch mode {
	case orthogonal:
		return orthogonalTLDeltas
	case diagonal:
		return diagonalTLDeltas
	default:
		return bothTLDeltas
	}
}

// NonBranchingSlide generates a rook/bishop/queen-family piece's
// non-branching jumps: staying on its own square, it walks boards along
// tlMode's directions until a friendly piece blocks it or a hostile one
// is captured, exactly as it would slide along a rank on a single board.
// Rook/Princess/Queen/Royal-Queen share the orthogonal direction set,
// Bishop/Princess/Queen/Royal-Queen the diagonal one.
func NonBranchingSlide(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color, tlMode axes) []Target {
	bit := uint64(1) << uint(p.XY())
	var out []Target
	for _, d := range tlDeltas(tlMode) {
		remaining := bit
		q := p.Add(d)
		for remaining != 0 && mv.Inbound(q, color) {
			b, _ := mv.GetBoard(q.L, q.T, color)
			remaining &^= b.Friendly(color) & bit
			if remaining != 0 {
				out = append(out, Target{Board: q.TL(), To: remaining})
				remaining &^= b.Hostile(color) & bit
			}
			q = q.Add(d)
		}
	}
	return out
}

// NonBranchingKnightStep generates a knight's single-board-step
// non-branching jumps, landing on the same square it started on.
// Grounded on gen_purely_sp_knight_moves.
func NonBranchingKnightStep(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color) []Target {
	bit := uint64(1) << uint(p.XY())
	var out []Target
	for _, d := range knightSingleStepDeltas {
		q := p.Add(d)
		if mv.Inbound(q, color) {
			b, _ := mv.GetBoard(q.L, q.T, color)
			if remaining := bit &^ b.Friendly(color); remaining != 0 {
				out = append(out, Target{Board: q.TL(), To: remaining})
			}
		}
	}
	return out
}

// jumpPattern generates a piece's non-branching jump to an adjacent
// board, landing anywhere a leaper attack pattern of the given shape
// reaches (not just its own square) — how King and Knight's double-step
// super-physical jumps work, since unlike a Rook/Bishop a leaper doesn't
// "stay put" relative to its own board distance when it crosses boards.
func jumpPattern(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color, deltas []coord.Vec4, pattern uint64) []Target {
	var out []Target
	for _, d := range deltas {
		q := p.Add(d)
		if mv.Inbound(q, color) {
			b, _ := mv.GetBoard(q.L, q.T, color)
			if bb := pattern &^ b.Friendly(color); bb != 0 {
				out = append(out, Target{Board: q.TL(), To: bb})
			}
		}
	}
	return out
}

// King and Common-King take a single step along any of the seven (t, l)
// directions, landing anywhere in the king attack pattern: a leaper's
// cross-board landing shape matches its physical one.
func kingJump(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color) []Target {
	return jumpPattern(mv, p, color, bothTLDeltas, bitboard.KingAttack(p.XY()))
}

// Knight additionally jumps single boards along the orthogonal set and
// double-distance boards, both landing on the knight attack pattern.
func knightJumps(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color) []Target {
	pattern := bitboard.KnightAttack(p.XY())
	out := jumpPattern(mv, p, color, orthogonalTLDeltas, pattern)
	return append(out, jumpPattern(mv, p, color, knightDoubleStepDeltas, pattern)...)
}

// compound generates a branching compound move: the piece slides through
// a stack of boards along tlMode's directions, each board's occupancy
// copied into the origin board's frame through a cone mask of the shape
// xyMode names, then a single xyMode-shaped ray is cast through the
// composited occupancy; every square that ray reaches, on whichever
// board the corresponding cone-mask ring belongs to, is a landing
// candidate. A missing board blocks the ray as if it were entirely
// occupied by the mover's own pieces, so a slider never continues
// through a coordinate where no board exists.
func compound(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color, tlMode, xyMode axes) []Target {
	pos := p.XY()
	copyMask := copyMaskFn(xyMode)
	attack := attackFn(xyMode)

	var out []Target
	for _, d := range tlDeltas(tlMode) {
		var occ, fri uint64
		q := p
		for n := 1; n < 8; n++ {
			cm := copyMask(pos, n)
			q = q.Add(d)
			if mv.Inbound(q, color) {
				b, _ := mv.GetBoard(q.L, q.T, color)
				occ |= cm & b.Occupied()
				fri |= cm & b.Friendly(color)
			} else {
				occ |= cm
				fri |= cm
				break
			}
		}
		loc := attack(pos, occ) &^ fri

		q = p
		for n := 1; n < 8; n++ {
			cm := copyMask(pos, n)
			q = q.Add(d)
			c := loc & cm
			if c == 0 {
				break
			}
			out = append(out, Target{Board: q.TL(), To: c})
		}
	}
	return out
}

func copyMaskFn(mode axes) func(pos, n int) uint64 {
	switch mode {
	case orthogonal:
		return bitboard.RookCopyMask
	case diagonal:
		return bitboard.BishopCopyMask
	default:
		return bitboard.QueenCopyMask
	}
}

func attackFn(mode axes) func(pos int, occ uint64) uint64 {
	switch mode {
	case orthogonal:
		return bitboard.RookAttack
	case diagonal:
		return bitboard.BishopAttack
	default:
		return bitboard.QueenAttack
	}
}
