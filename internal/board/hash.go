package board

import (
	"math/rand"

	"github.com/Oliverans/fivedchess/internal/piece"
)

// zobristPiece is filled once at package init from a fixed-seed
// math/rand source: one key per square per piece kind, giving a single
// 2D board a content hash for cheap equality and round-trip checks.
var zobristPiece [piece.NumKinds][64]uint64

func init() {
	rnd := rand.New(rand.NewSource(0x5D0C4E55))
	for k := 0; k < piece.NumKinds; k++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[k][sq] = rnd.Uint64()
		}
	}
}

// Hash computes a Zobrist-style content hash of the board (pieces only;
// side-to-move and en passant live at the State/Multiverse level, not on
// a single board).
func (b *Board) Hash() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if k := b.squares[sq]; k != piece.Empty {
			key ^= zobristPiece[k][sq]
		}
	}
	return key
}

// Equal reports whether two boards have identical size and piece
// placement.
func (b *Board) Equal(o *Board) bool {
	if b.sizeX != o.sizeX || b.sizeY != o.sizeY {
		return false
	}
	return b.squares == o.squares
}
