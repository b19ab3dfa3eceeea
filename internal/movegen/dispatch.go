package movegen

import (
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// Superphysical generates every cross-board landing target for the
// piece k at p, dispatched by family. Each slider family combines the
// non-branching slide sets and compound (timeline x board-ray) sets
// belonging to its movement repertoire.
func Superphysical(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color, k piece.Kind) []Target {
	switch k.Family() {
	case piece.FamilyKing, piece.FamilyCommonKing:
		return kingJump(mv, p, color)
	case piece.FamilyRook:
		return NonBranchingSlide(mv, p, color, orthogonal)
	case piece.FamilyBishop:
		out := NonBranchingSlide(mv, p, color, diagonal)
		return append(out, compound(mv, p, color, orthogonal, orthogonal)...)
	case piece.FamilyPrincess:
		out := NonBranchingSlide(mv, p, color, orthogonal)
		out = append(out, NonBranchingSlide(mv, p, color, diagonal)...)
		return append(out, compound(mv, p, color, orthogonal, orthogonal)...)
	case piece.FamilyQueen, piece.FamilyRoyalQueen:
		out := NonBranchingSlide(mv, p, color, orthogonal)
		out = append(out, NonBranchingSlide(mv, p, color, diagonal)...)
		return append(out, compound(mv, p, color, both, both)...)
	case piece.FamilyKnight:
		return append(NonBranchingKnightStep(mv, p, color), knightJumps(mv, p, color)...)
	case piece.FamilyUnicorn:
		out := compound(mv, p, color, orthogonal, diagonal)
		return append(out, compound(mv, p, color, diagonal, orthogonal)...)
	case piece.FamilyDragon:
		return compound(mv, p, color, diagonal, diagonal)
	case piece.FamilyPawn, piece.FamilyBrawn:
		return PawnSuperphysical(mv, p, color, k)
	default:
		return nil
	}
}

// AllMoves returns every landing target for the piece k at p: its
// same-board physical moves (as a Target whose Board equals p.TL()) and
// every cross-board super-physical target.
func AllMoves(mv *multiverse.Multiverse, p coord.Vec4, color piece.Color, k piece.Kind) []Target {
	out := Superphysical(mv, p, color, k)
	if bb := Physical(mv, p, color, k); bb != 0 {
		out = append([]Target{{Board: p.TL(), To: bb}}, out...)
	}
	return out
}
