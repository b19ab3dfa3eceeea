// Package movegen generates the candidate landing squares for a single
// piece, split into a same-board "physical" half (rank/file/diagonal
// rays, leaper patterns, castling, en passant, double-step) and a
// cross-board "super-physical" half (non-branching jumps that keep the
// piece's (x,y) fixed while stepping to an adjacent timeline or an
// earlier time, and compound moves that slide through a stack of boards
// with a cone of copied occupancy). Movegen never decides legality
// against check; internal/state and internal/hypercuboid filter the raw
// candidates this package returns.
package movegen

import (
	"github.com/Oliverans/fivedchess/internal/bitboard"
	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// Target is one super-physical landing board plus the bitboard of
// squares reachable on it. A Target with an empty bitboard is never
// emitted; callers may still receive zero Targets.
type Target struct {
	Board coord.Vec4 // T, L populated; X, Y always 0
	To    uint64
}

// Physical returns the bitboard of same-board landing squares for the
// piece at `from` (on the board (from.L, from.T) for `color`), dispatched
// by family. mv is consulted only to read the one earlier-in-time board
// an en passant capture needs.
func Physical(mv *multiverse.Multiverse, from coord.Vec4, color piece.Color, k piece.Kind) uint64 {
	b, ok := mv.GetBoard(from.L, from.T, color)
	if !ok {
		return 0
	}
	pos := from.XY()
	friendly := b.Friendly(color)
	hostile := b.Hostile(color)
	occ := b.Occupied()
	sizeX, sizeY := b.Size()

	switch k.Family() {
	case piece.FamilyKing, piece.FamilyCommonKing:
		a := bitboard.KingAttack(pos) &^ friendly
		if k.Family() == piece.FamilyKing && k.IsUnmoved() {
			a |= castleTargets(b, from, color)
		}
		return clip(a, sizeX, sizeY)
	case piece.FamilyRook:
		return clip(bitboard.RookAttack(pos, occ)&^friendly, sizeX, sizeY)
	case piece.FamilyBishop:
		return clip(bitboard.BishopAttack(pos, occ)&^friendly, sizeX, sizeY)
	case piece.FamilyQueen, piece.FamilyPrincess, piece.FamilyRoyalQueen:
		return clip(bitboard.QueenAttack(pos, occ)&^friendly, sizeX, sizeY)
	case piece.FamilyKnight:
		return clip(bitboard.KnightAttack(pos)&^friendly, sizeX, sizeY)
	case piece.FamilyPawn, piece.FamilyBrawn:
		return clip(pawnPhysical(mv, b, from, color, k, occ, hostile), sizeX, sizeY)
	default:
		return 0
	}
}

// castleTargets scans both horizontal directions from an unmoved king for
// an unmoved friendly rook standing at the edge of the board, with every
// square strictly between them empty and every square the king actually
// crosses (the first two steps) not attacked.
func castleTargets(b *board.Board, from coord.Vec4, color piece.Color) uint64 {
	sizeX, _ := b.Size()
	if isUnderAttackXY(b, from.X, from.Y, color) {
		return 0
	}
	var a uint64
	for _, dx := range []int{1, -1} {
		x := from.X
		i := 0
		for {
			x += dx
			if x < 0 || x >= sizeX {
				break
			}
			sq := from.Y*8 + x
			if i < 2 && isUnderAttackXY(b, x, from.Y, color) {
				break
			}
			k := b.GetPiece(sq)
			if k == pieceUnmovedRook(color) {
				if x+dx < 0 || x+dx >= sizeX {
					a |= uint64(1) << uint(from.Y*8+from.X+2*dx)
				}
				break
			}
			if k != piece.Empty {
				break
			}
			i++
		}
	}
	return a
}

func isUnderAttackXY(b *board.Board, x, y int, color piece.Color) bool {
	return b.IsUnderAttack(y*8+x, color) != 0
}

func pieceUnmovedRook(c piece.Color) piece.Kind {
	if c == piece.White {
		return piece.WhiteRookUnmoved
	}
	return piece.BlackRookUnmoved
}

// pawnPhysical implements the forward step, double step, diagonal
// capture, and en passant of a pawn/brawn staying on its own board.
func pawnPhysical(mv *multiverse.Multiverse, b *board.Board, from coord.Vec4, color piece.Color, k piece.Kind, occ, hostile uint64) uint64 {
	pos := from.XY()
	z := uint64(1) << uint(pos)
	empty := ^occ

	var patt uint64
	var forward func(uint64) uint64
	var back func(uint64) uint64
	if color == piece.White {
		patt = bitboard.WhitePawnAttack(pos)
		forward, back = bitboard.ShiftN, bitboard.ShiftS
	} else {
		patt = bitboard.BlackPawnAttack(pos)
		forward, back = bitboard.ShiftS, bitboard.ShiftN
	}

	a := (patt & hostile) | (forward(z) & empty)

	// En passant: an adjacent pawn that just arrived via a double step on
	// the immediately preceding half-turn on this same timeline
	// leaves its origin square empty and itself two ranks forward of
	// where it is now. The prior board must still show the piece there
	// unmoved: a jump can park a moved pawn on the home rank, and that
	// pawn never double-stepped.
	r := (bitboard.ShiftW(z) | bitboard.ShiftE(z)) & hostile & b.PawnBB(color.Other())
	s := forward(forward(r)) & empty
	if s != 0 {
		prev := board.Turn{T: from.T, Color: color}.Prev()
		if prevBoard, ok := mv.GetBoard(from.L, prev.T, prev.Color); ok {
			j := s & ^b.Friendly(color) & prevBoard.UnmovedPawnBB(color.Other())
			a |= back(j)
		}
	}

	if k.IsUnmoved() {
		a |= forward(forward(z)&empty) & empty
	}

	if k.Family() == piece.FamilyBrawn {
		mask := forward(z) | bitboard.ShiftW(z) | bitboard.ShiftE(z)
		a |= mask & hostile
	}
	return a
}

// clip masks off bits outside the logical board for boards smaller than
// 8x8.
func clip(m uint64, sizeX, sizeY int) uint64 {
	if sizeX >= 8 && sizeY >= 8 {
		return m
	}
	var mask uint64
	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			mask |= uint64(1) << uint(y*8+x)
		}
	}
	return m & mask
}
