package board

import (
	"github.com/Oliverans/fivedchess/internal/bitboard"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// IsUnderAttack returns a bitboard of every square holding a piece of the
// opposite color that attacks pos: each attacker-class attack pattern is
// run outward from pos and intersected with that class's pieces of the
// attacking color. The sliding-class aggregates RookRayBB/BishopRayBB let
// Queen/Princess/Royal-Queen share the same ray scan as Rook/Bishop.
func (b *Board) IsUnderAttack(pos int, defender piece.Color) uint64 {
	attacker := defender.Other()
	occ := b.Occupied()

	var attackers uint64
	attackers |= bitboard.KingAttack(pos) & b.KingPatternBB(attacker)
	attackers |= bitboard.KnightAttack(pos) & b.KnightBB(attacker)
	attackers |= bitboard.RookAttack(pos, occ) & b.RookRayBB(attacker)
	attackers |= bitboard.BishopAttack(pos, occ) & b.BishopRayBB(attacker)

	// Pawn diagonal captures: a reverse lookup via the opposite color's
	// pawn-attack-from-pos pattern, the standard bitboard symmetry trick.
	if attacker == piece.White {
		attackers |= bitboard.BlackPawnAttack(pos) & b.PawnBB(piece.White)
	} else {
		attackers |= bitboard.WhitePawnAttack(pos) & b.PawnBB(piece.Black)
	}

	// Brawns have an irregular capture pattern (diagonal-forward, plus
	// straight-forward, plus sideways), so there is no single symmetric
	// bitboard trick; the few brawns on the board are checked directly.
	posBB := uint64(1) << uint(pos)
	for _, s := range bitboard.MarkedPos(b.BrawnBB(attacker)) {
		if brawnCaptureSquares(s, attacker, b.sizeX, b.sizeY)&posBB != 0 {
			attackers |= uint64(1) << uint(s)
		}
	}

	return attackers
}

// pawnCaptureSquares returns the diagonal-forward squares a pawn at sq of
// color c captures on, clipped to a board of size (sizeX, sizeY).
func pawnCaptureSquares(sq int, c piece.Color, sizeX, sizeY int) uint64 {
	var m uint64
	if c == piece.White {
		m = bitboard.WhitePawnAttack(sq)
	} else {
		m = bitboard.BlackPawnAttack(sq)
	}
	return clip(m, sizeX, sizeY)
}

// brawnCaptureSquares returns every square a brawn at sq of color c
// captures on: diagonal-forward (like a pawn), straight-forward, and
// sideways on the same rank.
func brawnCaptureSquares(sq int, c piece.Color, sizeX, sizeY int) uint64 {
	m := pawnCaptureSquares(sq, c, sizeX, sizeY)
	bb := uint64(1) << uint(sq)
	if c == piece.White {
		m |= bitboard.ShiftN(bb)
	} else {
		m |= bitboard.ShiftS(bb)
	}
	m |= bitboard.ShiftE(bb) | bitboard.ShiftW(bb)
	return clip(m, sizeX, sizeY)
}

// clip masks off any bit outside the logical sizeX x sizeY board (the
// bitboard kernel always operates over a full 8x8 grid).
func clip(m uint64, sizeX, sizeY int) uint64 {
	if sizeX >= 8 && sizeY >= 8 {
		return m
	}
	var boardMask uint64
	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			boardMask |= uint64(1) << uint(y*8+x)
		}
	}
	return m & boardMask
}
