// Package board implements a single 2D chess position: piece-kind
// bitboards plus derived aggregates (friendly/hostile, royal,
// sliders-by-ray-class). Boards are immutable under single-move
// application: every mutator returns a new Board value, and since a
// Board is nothing but fixed-size arrays, a Go value copy gives
// copy-on-write for free.
package board

import (
	"github.com/Oliverans/fivedchess/internal/piece"
)

// Board is one 2D position of up to 8x8 squares.
type Board struct {
	sizeX, sizeY int
	byKind       [piece.NumKinds]uint64
	squares      [64]piece.Kind
}

// New builds an empty board of the given size (each <= 8).
func New(sizeX, sizeY int) Board {
	return Board{sizeX: sizeX, sizeY: sizeY}
}

// Size returns the board's (width, height).
func (b *Board) Size() (int, int) { return b.sizeX, b.sizeY }

// GetPiece returns the piece kind occupying sq (0..63, rank-major).
func (b *Board) GetPiece(sq int) piece.Kind { return b.squares[sq] }

// setRaw is the only place that touches the two parallel
// representations (the per-kind bitboards and the per-square array); it
// keeps them synchronized by construction.
func (b *Board) setRaw(sq int, k piece.Kind) {
	old := b.squares[sq]
	if old != piece.Empty {
		b.byKind[old] &^= uint64(1) << uint(sq)
	}
	b.squares[sq] = k
	if k != piece.Empty {
		b.byKind[k] |= uint64(1) << uint(sq)
	}
}

// MovePiece returns a new board where sq `from` becomes empty and sq `to`
// is overwritten by the piece that was on `from`, losing its unmoved
// flag in the process.
func (b Board) MovePiece(from, to int) Board {
	moved := b.squares[from].Moved()
	b.setRaw(from, piece.Empty)
	b.setRaw(to, moved)
	return b
}

// ReplacePiece returns a new board with sq set to kind, which may be
// piece.Empty to clear a square.
func (b Board) ReplacePiece(sq int, kind piece.Kind) Board {
	b.setRaw(sq, kind)
	return b
}

// KindBB returns the raw bitboard of squares occupied by exactly this
// kind.
func (b *Board) KindBB(k piece.Kind) uint64 { return b.byKind[k] }

// Occupied returns every non-empty square, including walls.
func (b *Board) Occupied() uint64 {
	var occ uint64
	for _, k := range piece.All() {
		occ |= b.byKind[k]
	}
	return occ | b.byKind[piece.Wall]
}

// WallBB returns the wall squares.
func (b *Board) WallBB() uint64 { return b.byKind[piece.Wall] }

var royalFamilies = map[piece.Family]bool{
	piece.FamilyKing:      true,
	piece.FamilyRoyalQueen: true,
}

var kingPatternFamilies = map[piece.Family]bool{
	piece.FamilyKing:       true,
	piece.FamilyCommonKing: true,
}

var rookRayFamilies = map[piece.Family]bool{
	piece.FamilyRook:       true,
	piece.FamilyQueen:      true,
	piece.FamilyPrincess:   true,
	piece.FamilyRoyalQueen: true,
}

var bishopRayFamilies = map[piece.Family]bool{
	piece.FamilyBishop:     true,
	piece.FamilyQueen:      true,
	piece.FamilyPrincess:   true,
	piece.FamilyRoyalQueen: true,
}

// aggregate ORs together the bitboards of every concrete Kind of color
// `c` whose family satisfies `want`; kinds of the other color are never
// included.
func (b *Board) aggregate(c piece.Color, want map[piece.Family]bool) uint64 {
	var m uint64
	for _, k := range piece.All() {
		if k.Color() == c && want[k.Family()] {
			m |= b.byKind[k]
		}
	}
	return m
}

// Friendly returns every square occupied by a piece of color c.
func (b *Board) Friendly(c piece.Color) uint64 {
	var m uint64
	for _, k := range piece.All() {
		if k.Color() == c {
			m |= b.byKind[k]
		}
	}
	return m
}

// Hostile returns every square occupied by a piece of the opposing color.
func (b *Board) Hostile(c piece.Color) uint64 { return b.Friendly(c.Other()) }

// RoyalBB returns every square occupied by a royal piece (King,
// Royal-Queen) of color c. Losing every bit of this set to capture ends
// the game for c.
func (b *Board) RoyalBB(c piece.Color) uint64 { return b.aggregate(c, royalFamilies) }

// KingPatternBB returns the squares holding a piece that moves
// physically like a king (King, Common-King) of color c.
func (b *Board) KingPatternBB(c piece.Color) uint64 { return b.aggregate(c, kingPatternFamilies) }

// RookRayBB returns the squares holding a piece whose physical attack
// includes a rook ray (Rook, Queen, Princess, Royal-Queen) of color c.
func (b *Board) RookRayBB(c piece.Color) uint64 { return b.aggregate(c, rookRayFamilies) }

// BishopRayBB returns the squares holding a piece whose physical attack
// includes a bishop ray (Bishop, Queen, Princess, Royal-Queen) of color
// c.
func (b *Board) BishopRayBB(c piece.Color) uint64 { return b.aggregate(c, bishopRayFamilies) }

var unicornRayFamilies = map[piece.Family]bool{
	piece.FamilyUnicorn:    true,
	piece.FamilyQueen:      true,
	piece.FamilyRoyalQueen: true,
}

var dragonRayFamilies = map[piece.Family]bool{
	piece.FamilyDragon:     true,
	piece.FamilyQueen:      true,
	piece.FamilyRoyalQueen: true,
}

// UnicornRayBB returns the squares holding a piece whose cross-board
// slide includes three-axis (unicorn-shaped) rays, for color c.
func (b *Board) UnicornRayBB(c piece.Color) uint64 { return b.aggregate(c, unicornRayFamilies) }

// DragonRayBB returns the squares holding a piece whose cross-board
// slide includes four-axis (dragon-shaped) rays, for color c.
func (b *Board) DragonRayBB(c piece.Color) uint64 { return b.aggregate(c, dragonRayFamilies) }

// KnightBB returns the knight squares of color c.
func (b *Board) KnightBB(c piece.Color) uint64 {
	return b.aggregate(c, map[piece.Family]bool{piece.FamilyKnight: true})
}

// PawnBB returns the pawn squares (both unmoved and moved) of color c.
func (b *Board) PawnBB(c piece.Color) uint64 {
	return b.aggregate(c, map[piece.Family]bool{piece.FamilyPawn: true})
}

// UnmovedPawnBB returns the squares of color c's pawns and brawns still
// carrying their unmoved flag. En passant consults this on the prior
// half-turn's board: only a piece that was unmoved there can have
// double-stepped since.
func (b *Board) UnmovedPawnBB(c piece.Color) uint64 {
	if c == piece.White {
		return b.byKind[piece.WhitePawnUnmoved] | b.byKind[piece.WhiteBrawnUnmoved]
	}
	return b.byKind[piece.BlackPawnUnmoved] | b.byKind[piece.BlackBrawnUnmoved]
}

// BrawnBB returns the brawn squares of color c.
func (b *Board) BrawnBB(c piece.Color) uint64 {
	return b.aggregate(c, map[piece.Family]bool{piece.FamilyBrawn: true})
}

// UnicornBB returns the unicorn squares of color c.
func (b *Board) UnicornBB(c piece.Color) uint64 {
	return b.aggregate(c, map[piece.Family]bool{piece.FamilyUnicorn: true})
}

// DragonBB returns the dragon squares of color c.
func (b *Board) DragonBB(c piece.Color) uint64 {
	return b.aggregate(c, map[piece.Family]bool{piece.FamilyDragon: true})
}
