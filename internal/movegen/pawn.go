package movegen

import (
	"github.com/Oliverans/fivedchess/internal/bitboard"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// A pawn's cross-board forward step points one timeline in its color's
// forward direction (White toward lower l, Black toward higher l); its
// cross-board captures reach the diagonally-adjacent boards on that side.
func pawnForwardTLDelta(color piece.Color) coord.Vec4 {
	if color == piece.White {
		return coord.V4(0, 0, 0, -1)
	}
	return coord.V4(0, 0, 0, 1)
}

func pawnCaptureTLDeltas(color piece.Color) []coord.Vec4 {
	if color == piece.White {
		return []coord.Vec4{coord.V4(0, 0, 1, -1), coord.V4(0, 0, -1, -1)}
	}
	return []coord.Vec4{coord.V4(0, 0, 1, 1), coord.V4(0, 0, -1, 1)}
}

// PawnSuperphysical generates a pawn or brawn's cross-board moves: the
// diagonal-timeline capture of a piece standing on the same square on an
// adjacent board, the non-capturing step to the same square one timeline
// forward for its color, the unmoved piece's further double step, and (for
// Brawn) an extra sideways/forward capture on the landing board.
func PawnSuperphysical(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color, k piece.Kind) []Target {
	z := uint64(1) << uint(p.XY())
	var out []Target

	for _, d := range pawnCaptureTLDeltas(color) {
		q := p.Add(d)
		if mv.Inbound(q, color) {
			b, _ := mv.GetBoard(q.L, q.T, color)
			if bb := z & b.Hostile(color); bb != 0 {
				out = append(out, Target{Board: q.TL(), To: bb})
			}
		}
	}

	q := p.Add(pawnForwardTLDelta(color))
	if !mv.Inbound(q, color) {
		return out
	}
	b, _ := mv.GetBoard(q.L, q.T, color)
	bb := z &^ b.Occupied()

	if k.IsUnmoved() && bb != 0 {
		r := q.Add(pawnForwardTLDelta(color))
		if mv.Inbound(r, color) {
			b1, _ := mv.GetBoard(r.L, r.T, color)
			if bc := z &^ b1.Occupied(); bc != 0 {
				out = append(out, Target{Board: r.TL(), To: bc})
			}
		}
	}

	if k.Family() == piece.FamilyBrawn {
		forward := bitboard.ShiftN
		if color == piece.Black {
			forward = bitboard.ShiftS
		}
		mask := forward(z) | bitboard.ShiftW(z) | bitboard.ShiftE(z)
		bb |= mask & b.Hostile(color)
	}
	if bb != 0 {
		out = append(out, Target{Board: q.TL(), To: bb})
	}
	return out
}
