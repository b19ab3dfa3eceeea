package notation

import (
	"testing"

	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

func TestParsePhysicalMoveFields(t *testing.T) {
	mv, err := Parse("(0T1)Nf3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mv.Physical == nil {
		t.Fatalf("expected a physical move, got %+v", mv)
	}
	p := mv.Physical
	if p.Board == nil || *p.Board.Line != 0 || *p.Board.Time != 1 {
		t.Fatalf("board tag = %+v, want L0 T1", p.Board)
	}
	if p.PieceName == nil || *p.PieceName != 'N' {
		t.Fatalf("piece = %v, want N", p.PieceName)
	}
	if p.ToFile != 'f' || p.ToRank != '3' {
		t.Fatalf("to square = %c%c, want f3", p.ToFile, p.ToRank)
	}
}

func TestParseBareToSquareMove(t *testing.T) {
	mv, err := Parse("e4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mv.Physical == nil || mv.Physical.ToFile != 'e' || mv.Physical.ToRank != '4' {
		t.Fatalf("Parse(%q) = %+v", "e4", mv)
	}
}

func TestParseCastle(t *testing.T) {
	mv, err := Parse("O-O")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mv.Physical == nil || mv.Physical.Castle != Kingside {
		t.Fatalf("Parse(O-O) = %+v, want Kingside castle", mv)
	}
}

func TestParseSuperphysicalAbsoluteToBoard(t *testing.T) {
	mv, err := Parse("(0T1)Q>(1T1)e4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sm := mv.Superphysical
	if sm == nil {
		t.Fatalf("expected a superphysical move, got %+v", mv)
	}
	if sm.Jump != NonBranchingJump {
		t.Fatalf("jump = %v, want NonBranchingJump", sm.Jump)
	}
	if sm.ToAbs == nil || *sm.ToAbs.Line != 1 || *sm.ToAbs.Time != 1 {
		t.Fatalf("to-board = %+v, want L1 T1", sm.ToAbs)
	}
}

func TestParseSuperphysicalRelativeToBoard(t *testing.T) {
	mv, err := Parse("(0T1)Q>>$(+1T=)e4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sm := mv.Superphysical
	if sm == nil || sm.ToRel == nil {
		t.Fatalf("expected a relative to-board, got %+v", mv)
	}
	if sm.ToRel.LineDelta == nil || *sm.ToRel.LineDelta != 1 {
		t.Fatalf("line delta = %v, want +1", sm.ToRel.LineDelta)
	}
	if !sm.ToRel.TimeSame {
		t.Fatalf("expected time to be marked same (=)")
	}
}

func TestCastleMatchesEquivalentKingMove(t *testing.T) {
	user, err := Parse("O-O")
	if err != nil {
		t.Fatalf("Parse(O-O): %v", err)
	}
	// FormatLong always renders a castling king's move in plain algebraic
	// form, never as a literal "O-O" token (see format.go).
	candidate, err := Parse("(0T0)Ke1g1")
	if err != nil {
		t.Fatalf("Parse candidate: %v", err)
	}
	if !Matches(user, candidate) {
		t.Fatalf("O-O should match the equivalent king two-square move")
	}

	userLong, err := Parse("(0T0)Ke1g1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Matches(userLong, candidate) {
		t.Fatalf("explicit king move should match the same candidate")
	}
}

func TestCastleDoesNotMatchWrongSide(t *testing.T) {
	user, err := Parse("O-O-O")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	candidate, err := Parse("(0T0)Ke1g1") // kingside shape
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if Matches(user, candidate) {
		t.Fatalf("O-O-O must not match a kingside-shaped king move")
	}
}

func TestMatchesRejectsWrongDestination(t *testing.T) {
	user, err := Parse("Nf3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	candidate, err := Parse("(0T0)Ng3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if Matches(user, candidate) {
		t.Fatalf("Nf3 must not match a candidate landing on g3")
	}
}

func TestFormatLongPhysicalRoundTrip(t *testing.T) {
	b, err := board.Parse("8/8/8/8/8/8/8/R7", 8, 8)
	if err != nil {
		t.Fatalf("board.Parse: %v", err)
	}
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{{L: 0, T: 0, Color: piece.White, Board: b}})
	if err != nil {
		t.Fatalf("multiverse.New: %v", err)
	}
	ext := move.Ext{Full: move.Full{From: coord.V4(0, 0, 0, 0), To: coord.V4(0, 5, 0, 0)}}
	s := FormatLong(mv, piece.White, piece.WhiteRook, ext, false)
	parsed, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(FormatLong(...)) = %v, input %q", err, s)
	}
	if parsed.Physical == nil || parsed.Physical.ToFile != 'a' || parsed.Physical.ToRank != '6' {
		t.Fatalf("round-tripped move = %+v from %q", parsed.Physical, s)
	}
}

func TestFormatLongCastleShapeMatchesUserOO(t *testing.T) {
	b, err := board.Parse("8/8/8/8/8/8/8/4K*2R*", 8, 8)
	if err != nil {
		t.Fatalf("board.Parse: %v", err)
	}
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{{L: 0, T: 0, Color: piece.White, Board: b}})
	if err != nil {
		t.Fatalf("multiverse.New: %v", err)
	}
	ext := move.Ext{Full: move.Full{From: coord.V4(4, 0, 0, 0), To: coord.V4(6, 0, 0, 0)}}
	s := FormatLong(mv, piece.White, piece.WhiteKingUnmoved, ext, false)
	candidate, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	user, err := Parse("O-O")
	if err != nil {
		t.Fatalf("Parse(O-O): %v", err)
	}
	if !Matches(user, candidate) {
		t.Fatalf("FormatLong(%q) should match a user's O-O", s)
	}
}
