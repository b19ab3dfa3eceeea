package movegen

import (
	"math/bits"
	"testing"

	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

func mustParse(t *testing.T, fen string) board.Board {
	b, err := board.Parse(fen, 8, 8)
	if err != nil {
		t.Fatalf("Parse(%q): %v", fen, err)
	}
	return b
}

func singleLineMV(t *testing.T, fen string) *multiverse.Multiverse {
	b := mustParse(t, fen)
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{{L: 0, T: 0, Color: piece.White, Board: b}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return mv
}

func TestPhysicalRookMovesUnblocked(t *testing.T) {
	mv := singleLineMV(t, "8/8/8/8/8/8/8/R7")
	bb := Physical(mv, coord.V4(0, 0, 0, 0), piece.White, piece.WhiteRook)
	if got := bits.OnesCount64(bb); got != 14 {
		t.Fatalf("rook mobility from a1 on an empty board = %d squares, want 14", got)
	}
}

func TestPhysicalQueenAtCenterUnblocked(t *testing.T) {
	mv := singleLineMV(t, "8/8/8/8/4Q3/8/8/8")
	bb := Physical(mv, coord.V4(4, 3, 0, 0), piece.White, piece.WhiteQueen)
	if got := bits.OnesCount64(bb); got != 27 {
		t.Fatalf("queen mobility from e4 on an empty board = %d squares, want 27", got)
	}
}

func TestCastleTargetIncludesKingsideWhenClear(t *testing.T) {
	mv := singleLineMV(t, "8/8/8/8/8/8/8/4K*2R*")
	bb := Physical(mv, coord.V4(4, 0, 0, 0), piece.White, piece.WhiteKingUnmoved)
	g1 := uint64(1) << uint(coord.V4(6, 0, 0, 0).XY())
	if bb&g1 == 0 {
		t.Fatalf("castling target g1 missing from king's physical moves: %064b", bb)
	}
}

func TestCastleTargetBlockedByAttackedTransitSquare(t *testing.T) {
	// A black rook on f8 attacks f1 (the king's first transit square),
	// so kingside castling must not be offered.
	mv := singleLineMV(t, "5r2/8/8/8/8/8/8/4K*2R*")
	bb := Physical(mv, coord.V4(4, 0, 0, 0), piece.White, piece.WhiteKingUnmoved)
	g1 := uint64(1) << uint(coord.V4(6, 0, 0, 0).XY())
	if bb&g1 != 0 {
		t.Fatalf("castling target g1 should be suppressed by an attacked transit square")
	}
}

func TestNonBranchingSlideCrossesToAdjacentTimelineOnly(t *testing.T) {
	b0 := mustParse(t, "8/8/8/8/8/8/8/R7")
	b1 := mustParse(t, "8/8/8/8/8/8/8/r7")
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{
		{L: 0, T: 0, Color: piece.White, Board: b0},
		{L: 1, T: 0, Color: piece.White, Board: b1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	targets := NonBranchingSlide(mv, coord.V4(0, 0, 0, 0), piece.White, orthogonal)
	if len(targets) != 1 {
		t.Fatalf("non-branching rook slide found %d targets, want 1 (toward L1 only)", len(targets))
	}
	want := coord.V4(0, 0, 0, 1)
	if targets[0].Board != want {
		t.Fatalf("target board = %+v, want %+v", targets[0].Board, want)
	}
	a1 := uint64(1) << uint(coord.V4(0, 0, 0, 0).XY())
	if targets[0].To != a1 {
		t.Fatalf("target squares = %064b, want exactly a1 (capturing the black rook there)", targets[0].To)
	}
}

func TestNonBranchingSlideBlockedByFriendlyPiece(t *testing.T) {
	b0 := mustParse(t, "8/8/8/8/8/8/8/R7")
	b1 := mustParse(t, "8/8/8/8/8/8/8/R7")
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{
		{L: 0, T: 0, Color: piece.White, Board: b0},
		{L: 1, T: 0, Color: piece.White, Board: b1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	targets := NonBranchingSlide(mv, coord.V4(0, 0, 0, 0), piece.White, orthogonal)
	if len(targets) != 0 {
		t.Fatalf("non-branching rook slide into a friendly-occupied square found %d targets, want 0", len(targets))
	}
}

func TestCompoundMoveIsEmptyWithNoFurtherBoards(t *testing.T) {
	mv := singleLineMV(t, "8/8/8/8/4B3/8/8/8")
	targets := Superphysical(mv, coord.V4(4, 3, 0, 0), piece.White, piece.WhiteBishop)
	for _, tg := range targets {
		if tg.Board.T != 0 || tg.Board.L != 0 {
			t.Fatalf("compound bishop move produced a cross-board target %+v with no boards beyond the origin", tg)
		}
	}
}

func TestPawnSuperphysicalDiagonalCapture(t *testing.T) {
	b0 := mustParse(t, "8/8/8/8/4P3/8/8/8")
	dummy := board.New(8, 8)
	target := mustParse(t, "8/8/8/8/4p3/8/8/8")

	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{
		{L: 0, T: 0, Color: piece.White, Board: b0},
		{L: -1, T: 0, Color: piece.White, Board: dummy},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := mv.AppendBoard(-1, dummy); err != nil { // L-1 v1: T0 Black placeholder
		t.Fatalf("AppendBoard: %v", err)
	}
	if err := mv.AppendBoard(-1, target); err != nil { // L-1 v2: T1 White, holds the capturable piece
		t.Fatalf("AppendBoard: %v", err)
	}

	targets := PawnSuperphysical(mv, coord.V4(4, 3, 0, 0), piece.White, piece.WhitePawn)
	found := false
	for _, tg := range targets {
		if tg.Board == coord.V4(0, 0, 1, -1) {
			found = true
			e4 := uint64(1) << uint(coord.V4(4, 3, 0, 0).XY())
			if tg.To != e4 {
				t.Fatalf("diagonal capture target squares = %064b, want exactly e4", tg.To)
			}
		}
	}
	if !found {
		t.Fatalf("expected a diagonal-timeline pawn capture onto L-1 T1")
	}
}

func TestPawnEnPassantNeedsPriorBoardEvidence(t *testing.T) {
	// Black's d-pawn double-stepped between (0T0) and (0T1): on the
	// current board it sits beside the white e5 pawn, and the prior
	// half-turn's board still shows it unmoved on d7. The white pawn may
	// capture onto d6.
	before := mustParse(t, "8/3p*4/8/4P3/8/8/8/8")
	after := mustParse(t, "8/8/8/3pP3/8/8/8/8")
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{
		{L: 0, T: 0, Color: piece.White, Board: before},
		{L: 0, T: 0, Color: piece.Black, Board: before},
		{L: 0, T: 1, Color: piece.White, Board: after},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	from := coord.V4(4, 4, 1, 0)
	a := Physical(mv, from, piece.White, piece.WhitePawn)
	d6 := uint64(1) << uint(coord.V4(3, 5, 0, 0).XY())
	if a&d6 == 0 {
		t.Fatalf("en passant capture d6 missing from pawn targets %064b", a)
	}

	// Without the double-step evidence (the prior board already shows
	// the pawn on d5), the capture is not offered.
	mv2, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{
		{L: 0, T: 0, Color: piece.White, Board: after},
		{L: 0, T: 0, Color: piece.Black, Board: after},
		{L: 0, T: 1, Color: piece.White, Board: after},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a2 := Physical(mv2, from, piece.White, piece.WhitePawn); a2&d6 != 0 {
		t.Fatalf("en passant offered without a double step: %064b", a2)
	}

	// A moved pawn parked on d7 by a jump also doesn't qualify: the
	// piece on the prior board must still carry its unmoved flag.
	movedBefore := mustParse(t, "8/3p4/8/4P3/8/8/8/8")
	mv3, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{
		{L: 0, T: 0, Color: piece.White, Board: movedBefore},
		{L: 0, T: 0, Color: piece.Black, Board: movedBefore},
		{L: 0, T: 1, Color: piece.White, Board: after},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a3 := Physical(mv3, from, piece.White, piece.WhitePawn); a3&d6 != 0 {
		t.Fatalf("en passant offered against a moved pawn: %064b", a3)
	}
}
