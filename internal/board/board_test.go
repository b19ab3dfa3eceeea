package board

import (
	"testing"

	"github.com/Oliverans/fivedchess/internal/piece"
)

func mustParse(t *testing.T, fen string) Board {
	t.Helper()
	b, err := Parse(fen, 8, 8)
	if err != nil {
		t.Fatalf("Parse(%q): %v", fen, err)
	}
	return b
}

func TestMovePieceLeavesOriginalUntouched(t *testing.T) {
	b := mustParse(t, "8/8/8/8/8/8/8/R3K3")
	before := b.Hash()
	nb := b.MovePiece(0, 16)
	if nb.Hash() == before {
		t.Fatalf("MovePiece returned an identical board")
	}
	if b.Hash() != before {
		t.Fatalf("MovePiece mutated its receiver")
	}
	if b.GetPiece(0) != piece.WhiteRook {
		t.Fatalf("original board lost its rook")
	}
	if nb.GetPiece(16) != piece.WhiteRook || !nb.GetPiece(0).IsEmpty() {
		t.Fatalf("moved board has rook misplaced")
	}
}

func TestMovePieceClearsUnmovedFlag(t *testing.T) {
	b := mustParse(t, "8/8/8/8/8/8/8/R*7")
	nb := b.MovePiece(0, 8)
	if nb.GetPiece(8) != piece.WhiteRook {
		t.Fatalf("rook kept its unmoved flag after moving: %v", nb.GetPiece(8))
	}
}

func TestReplacePieceLeavesOriginalUntouched(t *testing.T) {
	b := mustParse(t, "8/8/8/8/8/8/8/8")
	nb := b.ReplacePiece(27, piece.BlackQueen)
	if !b.GetPiece(27).IsEmpty() {
		t.Fatalf("ReplacePiece mutated its receiver")
	}
	if nb.GetPiece(27) != piece.BlackQueen {
		t.Fatalf("ReplacePiece did not set the square")
	}
}

func TestFENRoundTripPreservesBoard(t *testing.T) {
	fens := []string{
		"r*n*b*q*k*b*n*r*/p*p*p*p*p*p*p*p*/8/8/8/8/P*P*P*P*P*P*P*P*/R*N*B*Q*K*B*N*R*",
		"4k3/8/2w5/8/3U4/8/8/R3K2D",
		"8/8/8/8/8/8/8/8",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		rt := mustParse(t, b.FEN(true))
		if !b.Equal(&rt) {
			t.Fatalf("FEN round trip changed the board for %q: got %q", fen, b.FEN(true))
		}
	}
}

func TestFENWithoutUmoveFlagDropsStars(t *testing.T) {
	b := mustParse(t, "8/8/8/8/8/8/8/R*7")
	if got := b.FEN(false); got != "8/8/8/8/8/8/8/R7" {
		t.Fatalf("FEN(false) = %q, want stars dropped", got)
	}
	rt := mustParse(t, b.FEN(false))
	if rt.GetPiece(0) != piece.WhiteRook {
		t.Fatalf("reparsed board lost the rook or kept the unmoved flag")
	}
}

func TestBitboardAggregatesStayDisjoint(t *testing.T) {
	b := mustParse(t, "r*n*b*q*k*b*n*r*/p*p*p*p*p*p*p*p*/8/8/8/8/P*P*P*P*P*P*P*P*/R*N*B*Q*K*B*N*R*")
	if b.Friendly(piece.White)&b.Friendly(piece.Black) != 0 {
		t.Fatalf("white and black occupancy overlap")
	}
	union := b.Friendly(piece.White) | b.Friendly(piece.Black) | b.WallBB()
	if union != b.Occupied() {
		t.Fatalf("occupancy aggregate disagrees with its constituents")
	}
}

func TestIsUnderAttackFindsRookAndKnight(t *testing.T) {
	b := mustParse(t, "8/8/8/8/8/5n2/8/4K2r")
	attackers := b.IsUnderAttack(4, piece.White)
	if attackers == 0 {
		t.Fatalf("e1 not seen as attacked")
	}
	want := uint64(1)<<7 | uint64(1)<<21 // rook h1, knight f3
	if attackers != want {
		t.Fatalf("attackers = %064b, want rook h1 and knight f3", attackers)
	}
}

func TestWallAbsorbsAttackRays(t *testing.T) {
	b := mustParse(t, "8/8/8/8/8/8/4w3/4K2r")
	// A wall on e2 does not shield e1 from the rook on h1, but the rook
	// ray itself must stop at walls elsewhere: from h5 through a wall on
	// e5 the square d5 is safe.
	b2 := mustParse(t, "8/8/8/3Kw2r/8/8/8/8")
	if b2.IsUnderAttack(35, piece.White) != 0 {
		t.Fatalf("rook attack crossed a wall square")
	}
	if b.IsUnderAttack(4, piece.White) == 0 {
		t.Fatalf("rank-1 rook check missing")
	}
}
