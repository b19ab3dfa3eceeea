package bitboard

import "github.com/dylhunn/dragontoothmg"

// RookAttack, BishopAttack and QueenAttack are the magic-bitboard
// sliding attack generators. They delegate straight into
// github.com/dylhunn/dragontoothmg's exported
// CalculateRookMoveBitboard/CalculateBishopMoveBitboard; internal/board
// keeps a dragontooth-compatible square layout for exactly this reason.
func RookAttack(pos int, occ uint64) uint64 {
	return dragontoothmg.CalculateRookMoveBitboard(uint8(pos), occ)
}

func BishopAttack(pos int, occ uint64) uint64 {
	return dragontoothmg.CalculateBishopMoveBitboard(uint8(pos), occ)
}

func QueenAttack(pos int, occ uint64) uint64 {
	return RookAttack(pos, occ) | BishopAttack(pos, occ)
}
