package notation

import (
	"fmt"

	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// FormatLong renders a candidate move in fully-qualified long notation
// (every optional field populated), the form move resolution re-parses
// for comparison against the user's input AST.
//
// A castling king's move is formatted in plain algebraic form (e.g.
// "Ke1g1"), not as "O-O": the castle literal carries no file/rank data,
// so round-tripping through it would throw away the destination square
// Matches needs. Recognizing a user's "O-O" against this plain-form
// candidate is Matches' job (see matchPhysical's castle handling).
func FormatLong(mv *multiverse.Multiverse, color piece.Color, k piece.Kind, ext move.Ext, capture bool) string {
	from, to := ext.From, ext.To
	letter := string(k.Moved().Letter())
	fromSq := square(from)
	toSq := square(to)
	capTok := ""
	if capture {
		capTok = "x"
	}
	promote := ""
	if ext.Promotion != piece.Empty {
		promote = "=" + string(ext.Promotion.Letter())
	}

	if !ext.IsSuperphysical() {
		board := fmt.Sprintf("(%sT%d)", mv.PrettyL(from.L), from.T)
		return fmt.Sprintf("%s%s%s%s%s%s", board, letter, fromSq, capTok, toSq, promote)
	}

	fromBoard := fmt.Sprintf("(%sT%d)", mv.PrettyL(from.L), from.T)
	toBoard := fmt.Sprintf("(%sT%d)", mv.PrettyL(to.L), to.T)
	jump := ">"
	if isBranching(mv, color, to) {
		jump = ">>"
	}
	return fmt.Sprintf("%s%s%s%s%s%s%s%s", fromBoard, letter, fromSq, jump, capTok, toBoard, toSq, promote)
}

// isBranching reports whether landing on `to` forks a new timeline: a
// jump is non-branching iff its destination board is exactly the current
// tail of its line for the mover's color; any earlier board branches.
func isBranching(mv *multiverse.Multiverse, color piece.Color, to coord.Vec4) bool {
	tail := mv.GetTimelineEnd(to.L)
	return !(tail.T == to.T && tail.Color == color)
}

func square(v coord.Vec4) string {
	return fmt.Sprintf("%c%c", 'a'+byte(v.X), '1'+byte(v.Y))
}
