package state

import (
	"testing"

	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

func mustBoard(t *testing.T, fen string) board.Board {
	t.Helper()
	b, err := board.Parse(fen, 8, 8)
	if err != nil {
		t.Fatalf("board.Parse(%q): %v", fen, err)
	}
	return b
}

func singleBoardState(t *testing.T, fen string, color piece.Color) *State {
	t.Helper()
	b := mustBoard(t, fen)
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{{L: 0, T: 0, Color: color, Board: b}})
	if err != nil {
		t.Fatalf("multiverse.New: %v", err)
	}
	return New(mv)
}

func TestApplyMoveNormalAdvancesBoard(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	fm := move.Full{From: coord.V4(0, 0, 0, 0), To: coord.V4(0, 5, 0, 0)}
	if !s.ApplyMove(fm, piece.Empty) {
		t.Fatalf("ApplyMove rejected a legal rook slide")
	}
	end := s.M.GetTimelineEnd(0)
	b, ok := s.M.GetBoard(0, end.T, end.Color)
	if !ok {
		t.Fatalf("no board after ApplyMove")
	}
	if b.GetPiece(coord.V4(0, 5, 0, 0).XY()) != piece.WhiteRook {
		t.Fatalf("rook did not land on a6")
	}
	if !b.GetPiece(coord.V4(0, 0, 0, 0).XY()).IsEmpty() {
		t.Fatalf("a1 should be empty after the rook left")
	}
}

func TestApplyMoveRejectsIllegalTarget(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	fm := move.Full{From: coord.V4(0, 0, 0, 0), To: coord.V4(1, 1, 0, 0)}
	if s.ApplyMove(fm, piece.Empty) {
		t.Fatalf("ApplyMove accepted a non-rook-shaped move")
	}
}

func TestApplyMoveCastlingMovesBothPieces(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/4K*2R*", piece.White)
	fm := move.Full{From: coord.V4(4, 0, 0, 0), To: coord.V4(6, 0, 0, 0)}
	if !s.ApplyMove(fm, piece.Empty) {
		t.Fatalf("ApplyMove rejected castling")
	}
	end := s.M.GetTimelineEnd(0)
	b, _ := s.M.GetBoard(0, end.T, end.Color)
	if b.GetPiece(coord.V4(6, 0, 0, 0).XY()) != piece.WhiteKing {
		t.Fatalf("king did not land on g1")
	}
	if b.GetPiece(coord.V4(5, 0, 0, 0).XY()) != piece.WhiteRook {
		t.Fatalf("rook did not land on f1")
	}
}

func TestApplyMovePhysicalPromotion(t *testing.T) {
	s := singleBoardState(t, "8/P7/8/8/8/8/8/8", piece.White)
	fm := move.Full{From: coord.V4(0, 6, 0, 0), To: coord.V4(0, 7, 0, 0)}
	if !s.ApplyMove(fm, piece.WhiteQueen) {
		t.Fatalf("ApplyMove rejected a promoting pawn push")
	}
	end := s.M.GetTimelineEnd(0)
	b, _ := s.M.GetBoard(0, end.T, end.Color)
	if b.GetPiece(coord.V4(0, 7, 0, 0).XY()) != piece.WhiteQueen {
		t.Fatalf("pawn did not promote to a queen")
	}
}

func TestSubmitFailsWhileStillToMove(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	if s.Submit(false) {
		t.Fatalf("Submit should fail before the mover has moved on the present timeline")
	}
}

func TestSubmitSucceedsAfterMove(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	fm := move.Full{From: coord.V4(0, 0, 0, 0), To: coord.V4(0, 5, 0, 0)}
	if !s.ApplyMove(fm, piece.Empty) {
		t.Fatalf("ApplyMove: unexpected rejection")
	}
	if !s.Submit(false) {
		t.Fatalf("Submit should succeed once White has moved on the only active line")
	}
	if s.Present.Color != piece.Black {
		t.Fatalf("Present should hand off to Black, got %v", s.Present.Color)
	}
}

func TestGetTimelineStatusSingleLineIsMandatory(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	mandatory, optional, unplayable := s.GetTimelineStatus()
	if len(mandatory) != 1 || mandatory[0] != 0 {
		t.Fatalf("mandatory = %v, want [0]", mandatory)
	}
	if len(optional) != 0 || len(unplayable) != 0 {
		t.Fatalf("optional/unplayable = %v/%v, want both empty", optional, unplayable)
	}
}

func TestGenMovablePiecesFindsTheOnlyPiece(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	pieces := s.GenMovablePieces()
	if len(pieces) != 1 || pieces[0] != coord.V4(0, 0, 0, 0) {
		t.Fatalf("GenMovablePieces = %v, want [a1]", pieces)
	}
}

func TestFindChecksDetectsRookCheck(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R3k3", piece.White)
	checks := s.FindChecks(piece.White)
	if len(checks) == 0 {
		t.Fatalf("expected the rook on a1 to check the king on e1")
	}
}

func TestParseMoveResolvesUniquePhysicalMove(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	res, err := s.ParseMove("Ra6")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if !res.Found {
		t.Fatalf("ParseMove(%q) should resolve uniquely, candidates=%v", "Ra6", res.Candidates)
	}
	if res.Move.To != coord.V4(0, 5, 0, 0) {
		t.Fatalf("ParseMove resolved to %v, want a6", res.Move.To)
	}
}

func TestParseMoveBareSquareResolvesPawnPush(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/P*7/8", piece.White)
	res, err := s.ParseMove("a4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if !res.Found {
		t.Fatalf("ParseMove(%q) should resolve uniquely, candidates=%v", "a4", res.Candidates)
	}
	if res.Move.To != coord.V4(0, 3, 0, 0) {
		t.Fatalf("ParseMove resolved to %v, want a4 (double step)", res.Move.To)
	}
}

func TestParseMoveUnknownSquareFindsNoCandidates(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	res, err := s.ParseMove("Rh8")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if res.Found {
		t.Fatalf("ParseMove(%q) should not resolve: a rook on a1 cannot reach h8", "Rh8")
	}
}

func TestPhantomAppendsPassBoardForMover(t *testing.T) {
	s := singleBoardState(t, "8/8/8/8/8/8/8/R7", piece.White)
	ph := s.Phantom()
	end := ph.M.GetTimelineEnd(0)
	if end.Color != piece.Black {
		t.Fatalf("phantom pass should hand the tail to Black, got %v", end.Color)
	}
}
